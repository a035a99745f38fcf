// Package lifecycle holds the status transition rules for roster
// entities. Every rule operates on a snapshot of the entity's open
// status records; nothing in here touches the database. Services build
// a snapshot inside a transaction, consult the guards, then apply the
// record mutations the transition calls for.
package lifecycle

import (
	"time"

	"github.com/squaredcircle/promoter-backend/internal/types"
)

// EmploymentState collapses an entity's employment history into the
// four cases the guards care about.
type EmploymentState int

const (
	// EmploymentNever: no employment record exists.
	EmploymentNever EmploymentState = iota
	// EmploymentFuture: the latest record starts after now.
	EmploymentFuture
	// EmploymentCurrent: the latest record has started and not ended.
	EmploymentCurrent
	// EmploymentReleased: the latest record has ended.
	EmploymentReleased
)

func (s EmploymentState) String() string {
	switch s {
	case EmploymentNever:
		return "never_employed"
	case EmploymentFuture:
		return "future_employment"
	case EmploymentCurrent:
		return "employed"
	case EmploymentReleased:
		return "released"
	default:
		return "unknown"
	}
}

// ActivationState is the equivalent collapse for stables and titles.
type ActivationState int

const (
	ActivationNever ActivationState = iota
	ActivationFuture
	ActivationCurrent
	ActivationEnded
)

func (s ActivationState) String() string {
	switch s {
	case ActivationNever:
		return "never_activated"
	case ActivationFuture:
		return "future_activation"
	case ActivationCurrent:
		return "active"
	case ActivationEnded:
		return "inactive"
	default:
		return "unknown"
	}
}

// EmploymentStateOf derives the state from the latest employment
// record. Records are expected newest-first; only the head matters.
func EmploymentStateOf(latest *types.Employment, now time.Time) EmploymentState {
	if latest == nil {
		return EmploymentNever
	}
	if latest.StartedAt.After(now) {
		return EmploymentFuture
	}
	if latest.EndedAt == nil {
		return EmploymentCurrent
	}
	return EmploymentReleased
}

// ActivationStateOf derives the state from the latest activation
// record.
func ActivationStateOf(latest *types.Activation, now time.Time) ActivationState {
	if latest == nil {
		return ActivationNever
	}
	if latest.StartedAt.After(now) {
		return ActivationFuture
	}
	if latest.EndedAt == nil {
		return ActivationCurrent
	}
	return ActivationEnded
}
