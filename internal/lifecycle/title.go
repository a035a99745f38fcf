package lifecycle

import "github.com/squaredcircle/promoter-backend/internal/types"

// TitleSnapshot summarizes the open status records of a title.
type TitleSnapshot struct {
	Activation  ActivationState
	Retired     bool
	HasChampion bool
}

func (s TitleSnapshot) Status() types.ActivationStatus {
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

// IsCompetable reports whether the title can be put on the line.
func (s TitleSnapshot) IsCompetable() bool {
	return s.Status() == types.ActivationActive
}

// CanBeDebuted fails once a debut is already active or booked for a
// future date. Pulled titles come back via reactivation, which uses
// the same guard.
func (s TitleSnapshot) CanBeDebuted() error {
	if s.Retired {
		return ErrRetired
	}
	switch s.Activation {
	case ActivationCurrent:
		return ErrAlreadyActive
	case ActivationFuture:
		return ErrFutureActivation
	}
	return nil
}

func (s TitleSnapshot) CanBePulled() error {
	if s.Activation != ActivationCurrent {
		return ErrNotActive
	}
	return nil
}

func (s TitleSnapshot) CanBeRetired() error {
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

func (s TitleSnapshot) CanBeUnretired() error {
	if !s.Retired {
		return ErrNotRetired
	}
	return nil
}
