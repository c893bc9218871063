// Package publisher delivers audit events to a store, either inline or
// through a bounded background buffer.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	audit "personnummer/pkg/platform/audit"
	"personnummer/pkg/platform/sentinel"
)

// ErrBufferFull is returned in async mode when the buffer cannot take another
// event. The event is dropped.
var ErrBufferFull = fmt.Errorf("audit buffer full: %w", sentinel.ErrUnavailable)

// ErrClosed is returned by Emit after Close.
var ErrClosed = fmt.Errorf("audit publisher closed: %w", sentinel.ErrUnavailable)

type Publisher struct {
	store  audit.Store
	logger *slog.Logger
	clock  func() time.Time

	buffer int
	events chan audit.Event
	wg     sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

type Option func(*Publisher)

// WithAsyncBuffer makes Emit non-blocking, queuing up to size events for a
// background writer.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.buffer = size
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithClock(clock func() time.Time) Option {
	return func(p *Publisher) {
		p.clock = clock
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{
		store:  store,
		logger: slog.New(slog.DiscardHandler),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer > 0 {
		p.events = make(chan audit.Event, p.buffer)
		p.wg.Add(1)
		go p.run()
	}
	return p
}

// Emit records event, stamping it with the current time when it has none.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = p.clock()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	if p.events == nil {
		return p.store.Append(ctx, event)
	}

	select {
	case p.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", event.Action,
			"request_id", event.RequestID,
		)
		return ErrBufferFull
	}
}

// List returns up to limit recent events from the underlying store.
func (p *Publisher) List(ctx context.Context, limit int) ([]audit.Event, error) {
	return p.store.ListRecent(ctx, limit)
}

// Close stops accepting events and, in async mode, waits for the buffer to
// drain. It is safe to call more than once.
func (p *Publisher) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	if p.events != nil {
		close(p.events)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.store.Append(context.Background(), event); err != nil {
			p.logger.Error("failed to store audit event",
				"action", event.Action,
				"request_id", event.RequestID,
				"error", err,
			)
		}
	}
}
