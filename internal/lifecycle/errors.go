package lifecycle

import "errors"

// Guard failures. Each transition check walks its guards in a fixed
// order and returns the first violation.
var (
	ErrNeverEmployed    = errors.New("has never been employed")
	ErrFutureEmployment = errors.New("has employment that has not started yet")
	ErrAlreadyEmployed  = errors.New("is already employed")
	ErrReleased         = errors.New("was released")
	ErrAlreadyReleased  = errors.New("is already released")
	ErrInjured          = errors.New("is currently injured")
	ErrAlreadyInjured   = errors.New("is already injured")
	ErrNotInjured       = errors.New("is not injured")
	ErrSuspended        = errors.New("is currently suspended")
	ErrAlreadySuspended = errors.New("is already suspended")
	ErrNotSuspended     = errors.New("is not suspended")
	ErrRetired          = errors.New("is retired")
	ErrAlreadyRetired   = errors.New("is already retired")
	ErrNotRetired       = errors.New("is not retired")
	ErrNeverActivated   = errors.New("has never been activated")
	ErrFutureActivation = errors.New("has activation that has not started yet")
	ErrAlreadyActive    = errors.New("is already active")
	ErrNotActive        = errors.New("is not currently active")
)
