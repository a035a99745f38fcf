package lifecycle

import "github.com/squaredcircle/promoter-backend/internal/types"

// TagTeamSnapshot summarizes the open status records of a tag team.
// Teams carry no injury state; an injured partner is the partner's
// problem, not the team record's.
type TagTeamSnapshot struct {
	Employment   EmploymentState
	Suspended    bool
	Retired      bool
	PartnerCount int
}

func (s TagTeamSnapshot) Status() types.RosterStatus {
	if s.Retired {
		return types.StatusRetired
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

// IsBookable requires an employed, unsuspended, unretired team with a
// full complement of partners.
func (s TagTeamSnapshot) IsBookable() bool {
	return s.Status() == types.StatusBookable && s.PartnerCount >= types.MinPartners
}

func (s TagTeamSnapshot) CanBeEmployed() error {
	if s.Retired {
		return ErrRetired
	}
	if s.Employment == EmploymentCurrent {
		return ErrAlreadyEmployed
	}
	return nil
}

func (s TagTeamSnapshot) CanBeReleased() error {
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

func (s TagTeamSnapshot) CanBeSuspended() error {
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
	return nil
}

func (s TagTeamSnapshot) CanBeReinstated() error {
	if !s.Suspended {
		return ErrNotSuspended
	}
	return nil
}

func (s TagTeamSnapshot) CanBeRetired() error {
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

func (s TagTeamSnapshot) CanBeUnretired() error {
	if !s.Retired {
		return ErrNotRetired
	}
	return nil
}
