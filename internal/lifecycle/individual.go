package lifecycle

import "github.com/squaredcircle/promoter-backend/internal/types"

// IndividualSnapshot summarizes the open status records of a wrestler,
// manager or referee at a point in time.
type IndividualSnapshot struct {
	Employment EmploymentState
	Injured    bool
	Suspended  bool
	Retired    bool
}

// Status derives the computed roster status. An open retirement trumps
// everything; injury and suspension trump the employment state.
func (s IndividualSnapshot) Status() types.RosterStatus {
	if s.Retired {
		return types.StatusRetired
	}
	if s.Injured {
		return types.StatusInjured
	}
	if s.Suspended {
		return types.StatusSuspended
	}
	switch s.Employment {
	case EmploymentNever:
		return types.StatusUnemployed
	case EmploymentFuture:
		return types.StatusFutureEmployment
	case EmploymentReleased:
		return types.StatusReleased
	default:
		return types.StatusBookable
	}
}

// IsBookable reports whether the individual can be put in a match.
func (s IndividualSnapshot) IsBookable() bool {
	return s.Status() == types.StatusBookable
}

// CanBeEmployed fails when there is an open contract. Retirees must be
// unretired first. Signing someone with future employment is allowed:
// the service moves the start date instead of stacking records.
func (s IndividualSnapshot) CanBeEmployed() error {
	if s.Retired {
		return ErrRetired
	}
	if s.Employment == EmploymentCurrent {
		return ErrAlreadyEmployed
	}
	return nil
}

func (s IndividualSnapshot) CanBeReleased() error {
	switch s.Employment {
	case EmploymentNever:
		return ErrNeverEmployed
	case EmploymentFuture:
		return ErrFutureEmployment
	case EmploymentReleased:
		return ErrAlreadyReleased
	}
	if s.Retired {
		return ErrRetired
	}
	return nil
}

func (s IndividualSnapshot) CanBeInjured() error {
	if s.Retired {
		return ErrRetired
	}
	switch s.Employment {
	case EmploymentNever:
		return ErrNeverEmployed
	case EmploymentFuture:
		return ErrFutureEmployment
	case EmploymentReleased:
		return ErrReleased
	}
	if s.Injured {
		return ErrAlreadyInjured
	}
	if s.Suspended {
		return ErrSuspended
	}
	return nil
}

func (s IndividualSnapshot) CanBeClearedFromInjury() error {
	if !s.Injured {
		return ErrNotInjured
	}
	return nil
}

func (s IndividualSnapshot) CanBeSuspended() error {
	if s.Retired {
		return ErrRetired
	}
	switch s.Employment {
	case EmploymentNever:
		return ErrNeverEmployed
	case EmploymentFuture:
		return ErrFutureEmployment
	case EmploymentReleased:
		return ErrReleased
	}
	if s.Suspended {
		return ErrAlreadySuspended
	}
	if s.Injured {
		return ErrInjured
	}
	return nil
}

func (s IndividualSnapshot) CanBeReinstated() error {
	if !s.Suspended {
		return ErrNotSuspended
	}
	return nil
}

// CanBeRetired allows retirement from the employed and released
// states. Someone never employed, or signed but not started, has
// nothing to retire from.
func (s IndividualSnapshot) CanBeRetired() error {
	if s.Retired {
		return ErrAlreadyRetired
	}
	switch s.Employment {
	case EmploymentNever:
		return ErrNeverEmployed
	case EmploymentFuture:
		return ErrFutureEmployment
	}
	return nil
}

func (s IndividualSnapshot) CanBeUnretired() error {
	if !s.Retired {
		return ErrNotRetired
	}
	return nil
}
