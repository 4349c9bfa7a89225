// Package ai maps provider tags from the user's settings to the repair
// providers that serve them. Exactly two variants exist: the managed Gemini
// provider and the configurable OpenAI-compatible provider. Adding a third
// means registering one more [repair.Provider]; callers only ever ask the
// [Registry] for the provider behind a tag.
package ai
