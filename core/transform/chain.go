package transform

// ChainName identifies a transform chain in outcomes, logs and metrics.
type ChainName string

const (
	ChainIdentity                   ChainName = "identity"
	ChainQuoteNormalize             ChainName = "quote_normalize"
	ChainStripComments              ChainName = "strip_comments"
	ChainQuoteNormalizeStripComment ChainName = "quote_normalize+strip_comments"
	ChainLocalRepair                ChainName = "local_repair"
)

// Func is a single total text rewrite.
type Func func(string) string

// Chain is an ordered sequence of rewrites applied to the original input to
// produce one candidate. Steps run first to last.
type Chain struct {
	Name  ChainName
	Steps []Func
}

// NewChain builds a chain from the given steps.
func NewChain(name ChainName, steps ...Func) Chain {
	return Chain{Name: name, Steps: steps}
}

// Apply runs every step in order and returns the resulting candidate. The
// input string is never modified.
func (c Chain) Apply(text string) string {
	for _, step := range c.Steps {
		text = step(text)
	}
	return text
}

// DefaultChains returns the four recovery chains in their fixed order:
// identity, quote normalization, comment stripping, and comment stripping
// followed by quote normalization.
func DefaultChains(mode CommentMode) []Chain {
	strip := Func(mode.Stripper())
	return []Chain{
		NewChain(ChainIdentity),
		NewChain(ChainQuoteNormalize, NormalizeQuotes),
		NewChain(ChainStripComments, strip),
		NewChain(ChainQuoteNormalizeStripComment, strip, NormalizeQuotes),
	}
}
