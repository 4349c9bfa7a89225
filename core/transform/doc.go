// Package transform holds the local, deterministic text rewrites used to coerce
// near-JSON into strict JSON: comment stripping, single-quote normalization,
// and the named [Chain] values that compose them.
//
// Every transform is a total function. Malformed input never produces an
// error here; whatever the rewrite emits is handed to the strict parser, which
// is the only component allowed to reject it.
package transform
