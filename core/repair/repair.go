package repair

import (
	"context"

	"github.com/leofalp/jsonalchemist/core/settings"
)

// Provider repairs text with a language model. Implementations are safe for
// concurrent use; concurrent calls are independent.
type Provider interface {
	// Name identifies the provider in logs and spans.
	Name() string
	// Repair returns the model's answer for text, fence-stripped but not
	// validated. cfg is read-only.
	Repair(ctx context.Context, text string, cfg settings.Settings) (string, error)
}

// Instructions is the task description sent with every repair request,
// identical for all providers.
const Instructions = `You are a strict JSON converter and repair engine.
Input: A potentially malformed JSON string, JSON5 string, or a Golang struct/map dump.

Task:
1. If the input is Golang (structs, maps, slices):
   - Convert it to valid JSON.
   - Convert "map[string]interface{}" syntax to JSON objects "{}".
   - Convert "StructName{}" syntax to JSON objects "{}".
   - Quote all object keys.
   - If a value is a variable reference or function call, convert it to a string.
2. If the input is malformed JSON/JSON5:
   - Fix syntax errors.
   - Remove comments.
3. If the input looks like LLM conversation history (array of objects with role/content fields), treat it as regular JSON:
   - Fix any syntax errors
   - Ensure output is valid standard JSON format
4. If the input looks like natural language instructions rather than JSON data:
   - Try to convert it to valid JSON if possible
   - For example, extract JSON-like structures or convert the intent into JSON format
5. Return ONLY the valid, minified JSON string.
6. Do not wrap the output in markdown code blocks.
7. Do not include any explanation.`
