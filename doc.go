// Package jsonalchemist turns near-JSON into JSON.
//
// An [Alchemist] composes the local pipeline (comment stripping, quote
// normalization and strict parsing, see core/recovery) with the language
// model escalation in providers/ai. Local work is synchronous and always
// tried first; a repair provider is only called when every local chain has
// failed, and its answer is parsed again before it is returned.
//
//	a := jsonalchemist.New()
//	res, err := a.Fix(ctx, `map[string]interface{}{"a": 1}`, settings.Default())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Pretty, res.Source)
package jsonalchemist
