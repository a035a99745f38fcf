// Package realtime fans out roster change notifications. The admin UI
// polls tables; publishing a change event lets any interested consumer
// (UI refresh, audit tail) react without re-querying everything.
package realtime

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

// RosterEvent describes one status transition.
type RosterEvent struct {
	Kind        types.EntityKind `json:"kind"`
	EntityID    uuid.UUID        `json:"entity_id"`
	Transition  string           `json:"transition"`
	EffectiveAt time.Time        `json:"effective_at"`
}

type Bus interface {
	Publish(ctx context.Context, ev RosterEvent) error
	StartForwarder(ctx context.Context, onEvent func(ev RosterEvent)) error
	Close() error
}

// NewBus returns a Redis-backed bus when REDIS_ADDR is set, otherwise
// an in-process bus. Single-node deployments don't need Redis.
func NewBus(log *logger.Logger) (Bus, error) {
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		return NewRedisBus(log)
	}
	return NewMemoryBus(log), nil
}
