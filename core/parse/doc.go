// Package parse is the strict JSON layer of the recovery pipeline. [Parse]
// accepts only well-formed JSON and builds a [Value] tree whose objects keep
// their keys in the order they were encountered, so [Pretty] and [Compact]
// reproduce the input key order instead of sorting it.
//
// Parse failures are reported as [*SyntaxError], which carries the parser
// message, the byte offset and the derived line and column.
package parse
