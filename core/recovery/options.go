package recovery

import (
	"github.com/leofalp/jsonalchemist/core/transform"
	"github.com/leofalp/jsonalchemist/providers/observability"
)

// Option configures a Recoverer.
type Option func(*Recoverer)

// WithCommentMode selects the comment stripper used by the comment chains.
func WithCommentMode(mode transform.CommentMode) Option {
	return func(r *Recoverer) {
		r.mode = mode
	}
}

// WithJSONRepair appends a fifth chain that runs the input through
// jsonrepair. It is tried only after the four fixed chains fail and never
// changes which error is reported.
func WithJSONRepair() Option {
	return func(r *Recoverer) {
		r.localRepair = true
	}
}

// WithObserver records a span and an outcome counter for every call.
func WithObserver(observer observability.Provider) Option {
	return func(r *Recoverer) {
		r.observer = observer
	}
}
