package game

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/inconvenience/internal/core"
)

// ErrInputClosed is returned by an Input that has no more events to give.
var ErrInputClosed = errors.New("game: input closed")

// Input is the blocking side of the loop: it satisfies a core.Wait by
// returning the next key press or a timeout event.
type Input interface {
	Next(ctx context.Context, w core.Wait) (core.Event, error)
}

// Run drives the engine until it quits, the input closes or ctx is done.
// Each tick awaits input, updates and draws. Tick errors are logged and
// the loop carries on from the engine's last valid state.
func Run(ctx context.Context, g *Engine, in Input, r core.Renderer) error {
	g.Draw(r)
	for !g.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev, err := in.Next(ctx, g.Await())
		if errors.Is(err, ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := g.Update(ev); err != nil {
			g.logger.Error("tick failed", "state", g.state, "error", err)
		}
		g.Draw(r)
	}
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
