// Package openai is the configurable repair provider. It talks to any
// OpenAI-compatible chat completions endpoint whose base URL, key and model
// come from the user's settings on every call:
//
//	POST {baseUrl}/chat/completions
//	Authorization: Bearer {apiKey}
//
// The answer is read from choices[0].message.content and fence-stripped.
package openai
