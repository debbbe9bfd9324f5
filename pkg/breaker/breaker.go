package breaker

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

var ErrOpen = errors.New("circuit breaker is open")

type state uint8

const (
	closed state = iota
	open
	halfOpen
)

// Breaker fails fast after maxFails consecutive errors and lets a single
// probe call through once the cooldown has passed. It never retries.
type Breaker struct {
	mu       sync.Mutex
	state    state
	fails    int
	maxFails int
	cooldown time.Duration
	openedAt time.Time
}

func New(maxFails int, cooldown time.Duration) *Breaker {
	return &Breaker{
		state:    closed,
		maxFails: maxFails,
		cooldown: cooldown,
	}
}

func (b *Breaker) Call(fn func() error) error {
	b.mu.Lock()
	if b.state == open {
		if time.Since(b.openedAt) < b.cooldown {
			b.mu.Unlock()
			return ErrOpen
		}
		b.state = halfOpen
	}
	b.mu.Unlock()

	err := fn()

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		b.fails++
		if b.state == halfOpen || b.fails >= b.maxFails {
			b.state = open
			b.openedAt = time.Now()
		}
		return err
	}

	b.state = closed
	b.fails = 0
	return nil
}
