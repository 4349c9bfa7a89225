// Package repair defines the contract for escalating text that local
// recovery could not fix to a language-model provider.
//
// A [Provider] sends the fixed [Instructions] plus the raw text in one
// non-streaming request and returns the model's answer with any surrounding
// code fence removed by [StripFences]. Providers never validate the answer;
// callers run it back through the strict parser before trusting it.
//
// Failures fall into three classes, each with a sentinel for errors.Is and a
// typed error for errors.As: [ErrConfig]/[ConfigError] for missing or bad
// credentials, [ErrTransport]/[TransportError] for network failures and
// non-success statuses, and [ErrContent]/[ContentError] for responses without
// the expected text. [Guard] rejects overlapping calls with [ErrBusy].
package repair
