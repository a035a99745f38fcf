package lifecycle

import "github.com/squaredcircle/promoter-backend/internal/types"

// StableSnapshot summarizes the open status records of a stable.
type StableSnapshot struct {
	Activation  ActivationState
	Retired     bool
	MemberCount int
}

func (s StableSnapshot) Status() types.ActivationStatus {
	if s.Retired {
		return types.ActivationRetired
	}
	switch s.Activation {
	case ActivationNever:
		return types.ActivationNone
	case ActivationFuture:
		return types.ActivationFuture
	case ActivationEnded:
		return types.ActivationEnded
	default:
		return types.ActivationActive
	}
}

// CanBeEstablished fails when the stable is already running. The
// member-count minimum is checked by the service so the error can name
// the shortfall.
func (s StableSnapshot) CanBeEstablished() error {
	if s.Retired {
		return ErrRetired
	}
	if s.Activation == ActivationCurrent {
		return ErrAlreadyActive
	}
	return nil
}

func (s StableSnapshot) CanBeDisbanded() error {
	if s.Activation != ActivationCurrent {
		return ErrNotActive
	}
	return nil
}

func (s StableSnapshot) CanBeRetired() error {
	if s.Retired {
		return ErrAlreadyRetired
	}
	switch s.Activation {
	case ActivationNever:
		return ErrNeverActivated
	case ActivationFuture:
		return ErrFutureActivation
	}
	return nil
}

func (s StableSnapshot) CanBeUnretired() error {
	if !s.Retired {
		return ErrNotRetired
	}
	return nil
}
