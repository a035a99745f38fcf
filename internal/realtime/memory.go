package realtime

import (
	"context"
	"sync"

	"github.com/squaredcircle/promoter-backend/internal/logger"
)

type memoryBus struct {
	log *logger.Logger

	mu         sync.RWMutex
	forwarders []func(ev RosterEvent)
	closed     bool
}

func NewMemoryBus(log *logger.Logger) Bus {
	return &memoryBus{log: log.With("service", "MemoryRosterBus")}
}

func (b *memoryBus) Publish(ctx context.Context, ev RosterEvent) error {
	b.mu.RLock()
	handlers := make([]func(ev RosterEvent), len(b.forwarders))
	copy(handlers, b.forwarders)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
	return nil
}

func (b *memoryBus) StartForwarder(ctx context.Context, onEvent func(ev RosterEvent)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.forwarders = append(b.forwarders, onEvent)
	return nil
}

func (b *memoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.forwarders = nil
	return nil
}
