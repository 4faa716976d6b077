package backoff

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// Strategy returns the wait before the attempt following `count` failures
type Strategy func(count int, start time.Duration) time.Duration

// Backoff waits longer after every failure, up to limit
type Backoff struct {
	Last time.Duration
	Next time.Duration

	start    time.Duration
	limit    time.Duration
	count    int
	strategy Strategy
}

func New(strategy Strategy, start, limit time.Duration) *Backoff {
	b := &Backoff{strategy: strategy, start: start, limit: limit}
	b.Reset()
	return b
}

func (b *Backoff) Reset() {
	b.count = 0
	b.Last = 0
	b.Next = b.next()
}

func (b *Backoff) Count() int {
	return b.count
}

// Wait sleeps for Next. It returns ctx.Err() if ctx ends first.
func (b *Backoff) Wait(ctx context.Context) error {
	t := time.NewTimer(b.Next)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}
	b.count++
	b.Last = b.Next
	b.Next = b.next()
	return nil
}

func (b *Backoff) next() time.Duration {
	d := b.strategy(b.count, b.start)
	if b.limit > 0 && d > b.limit {
		d = b.limit
	}
	return d
}

func exponential(count int, start time.Duration) time.Duration {
	return time.Duration(math.Pow(2, float64(count))) * start
}

// jittered adds up to start to the exponential wait
func jittered(count int, start time.Duration) time.Duration {
	return exponential(count, start) + time.Duration(rand.Int63n(int64(start)+1))
}

func NewExponential(start, limit time.Duration) *Backoff {
	return New(exponential, start, limit)
}

func NewJittered(start, limit time.Duration) *Backoff {
	return New(jittered, start, limit)
}
