// Package recovery turns near-JSON into parsed JSON by trying a fixed
// battery of local rewrites against the strict parser.
//
// The chains run in order: identity, quote normalization, comment stripping,
// then comment stripping followed by quote normalization. The first candidate
// that parses wins. When every chain fails the caller gets the identity
// chain's *parse.SyntaxError, since rewrites shift positions and hide the
// real problem.
//
//	r := recovery.New()
//	out, err := r.Recover(`{'a': 1} // note`)
//	if err != nil {
//	    var syntaxErr *parse.SyntaxError
//	    errors.As(err, &syntaxErr)
//	}
//	fmt.Println(parse.Pretty(out.Value), out.Chain)
package recovery
