package repair

import (
	"context"

	"golang.org/x/sync/semaphore"

	"github.com/leofalp/jsonalchemist/core/settings"
)

// Guard wraps a Provider so that at most one repair runs at a time. A call
// made while another is in flight fails immediately with ErrBusy instead of
// queueing.
type Guard struct {
	provider Provider
	sem      *semaphore.Weighted
}

var _ Provider = (*Guard)(nil)

// NewGuard wraps p.
func NewGuard(p Provider) *Guard {
	return &Guard{provider: p, sem: semaphore.NewWeighted(1)}
}

func (g *Guard) Name() string { return g.provider.Name() }

// Busy reports whether a repair is currently in flight.
func (g *Guard) Busy() bool {
	if !g.sem.TryAcquire(1) {
		return true
	}
	g.sem.Release(1)
	return false
}

func (g *Guard) Repair(ctx context.Context, text string, cfg settings.Settings) (string, error) {
	if !g.sem.TryAcquire(1) {
		return "", ErrBusy
	}
	defer g.sem.Release(1)
	return g.provider.Repair(ctx, text, cfg)
}
