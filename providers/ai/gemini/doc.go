// Package gemini is the managed-credential repair provider. The API key is
// never part of the user's settings: it is read from GEMINI_API_KEY (or
// API_KEY) when the provider is built, and a missing key surfaces as a
// repair.ConfigError on the first call.
//
// Requests go to the generateContent endpoint with the repair instructions as
// the system instruction, temperature 0, one candidate and a zero thinking
// budget. The text parts of the first candidate are concatenated, thought
// summaries skipped, and any code fence is stripped before returning.
package gemini
