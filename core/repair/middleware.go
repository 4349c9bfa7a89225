package repair

import (
	"context"

	"github.com/leofalp/jsonalchemist/core/settings"
)

// Func is one step of a repair call, the unit threaded through middleware.
type Func func(ctx context.Context, text string, cfg settings.Settings) (string, error)

// Middleware wraps a Func. The first middleware given to Wrap is the
// outermost.
type Middleware func(next Func) Func

// Wrap returns a Provider that runs p's Repair through the middlewares. The
// wrapper keeps p's name. With no middlewares p is returned unchanged.
func Wrap(p Provider, middlewares ...Middleware) Provider {
	if len(middlewares) == 0 {
		return p
	}

	chain := Func(p.Repair)
	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}
	return &wrapped{name: p.Name(), call: chain}
}

type wrapped struct {
	name string
	call Func
}

func (w *wrapped) Name() string { return w.name }

func (w *wrapped) Repair(ctx context.Context, text string, cfg settings.Settings) (string, error) {
	return w.call(ctx, text, cfg)
}
