package service

import (
	"context"
	"time"
)

// Pacer throttles between dispatch batches. Tests inject a zero-delay or
// mocked pacer; production uses a fixed delay against transport rate limits.
type Pacer interface {
	Pause(ctx context.Context) error
}

type fixedDelayPacer struct {
	delay time.Duration
}

func NewFixedDelayPacer(delay time.Duration) Pacer {
	return &fixedDelayPacer{delay: delay}
}

func (p *fixedDelayPacer) Pause(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	select {
	case <-time.After(p.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
