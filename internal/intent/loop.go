package intent

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aurumworks/showcase/internal/catalog"
	"github.com/aurumworks/showcase/internal/nav"
)

// ErrStopped is returned when an intent is dispatched after the loop shut
// down.
var ErrStopped = errors.New("intent loop stopped")

type request struct {
	intent Intent
	reply  chan response
}

type response struct {
	result Result
	err    error
}

// Loop applies intents to the store and navigation controller from a single
// goroutine. Dispatchers block until their intent has been applied.
type Loop struct {
	store    *catalog.Store
	nav      *nav.Controller
	requests chan request
	done     chan struct{}
}

// NewLoop creates a loop over the given store and controller.
func NewLoop(store *catalog.Store, controller *nav.Controller) *Loop {
	return &Loop{
		store:    store,
		nav:      controller,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
}

// Run processes intents until the context is cancelled.
func (l *Loop) Run(ctx context.Context) {
	slog.Info("intent loop: starting")
	defer close(l.done)

	for {
		select {
		case <-ctx.Done():
			slog.Info("intent loop: shutting down")
			return
		case req := <-l.requests:
			result, err := l.apply(req.intent)
			req.reply <- response{result: result, err: err}
		}
	}
}

// Dispatch submits an intent and waits for its result. The returned error
// is the rejected-operation error for invalid intents, ErrStopped when the
// loop is gone, or the context error.
func (l *Loop) Dispatch(ctx context.Context, in Intent) (Result, error) {
	req := request{intent: in, reply: make(chan response, 1)}

	select {
	case l.requests <- req:
	case <-l.done:
		return Result{}, ErrStopped
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	select {
	case resp := <-req.reply:
		return resp.result, resp.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (l *Loop) apply(in Intent) (Result, error) {
	switch v := in.(type) {
	case SelectColor:
		if err := l.store.SelectColor(v.Product, v.Color); err != nil {
			return Result{}, err
		}
		return Result{ChangedProduct: v.Product, ScrollOffset: l.nav.Offset()}, nil

	case Navigate:
		offset := l.nav.Advance(v.Direction)
		return Result{Navigated: true, ScrollOffset: offset}, nil

	case Swipe:
		direction, ok := l.nav.HandleSwipe(v.StartX, v.EndX)
		if !ok {
			// A tap, not a swipe
			return Result{ScrollOffset: l.nav.Offset()}, nil
		}
		offset := l.nav.Advance(direction)
		return Result{Navigated: true, ScrollOffset: offset}, nil

	default:
		return Result{}, errors.New("unknown intent")
	}
}
