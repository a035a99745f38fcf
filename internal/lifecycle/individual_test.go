package lifecycle

import (
	"errors"
	"testing"

	"github.com/squaredcircle/promoter-backend/internal/types"
)

func TestIndividualStatus(t *testing.T) {
	cases := []struct {
		name string
		snap IndividualSnapshot
		want types.RosterStatus
	}{
		{
			name: "never_employed",
			snap: IndividualSnapshot{Employment: EmploymentNever},
			want: types.StatusUnemployed,
		},
		{
			name: "future_employment",
			snap: IndividualSnapshot{Employment: EmploymentFuture},
			want: types.StatusFutureEmployment,
		},
		{
			name: "employed_is_bookable",
			snap: IndividualSnapshot{Employment: EmploymentCurrent},
			want: types.StatusBookable,
		},
		{
			name: "released",
			snap: IndividualSnapshot{Employment: EmploymentReleased},
			want: types.StatusReleased,
		},
		{
			name: "injury_trumps_employment",
			snap: IndividualSnapshot{Employment: EmploymentCurrent, Injured: true},
			want: types.StatusInjured,
		},
		{
			name: "suspension_trumps_employment",
			snap: IndividualSnapshot{Employment: EmploymentCurrent, Suspended: true},
			want: types.StatusSuspended,
		},
		{
			name: "injury_trumps_suspension",
			snap: IndividualSnapshot{Employment: EmploymentCurrent, Injured: true, Suspended: true},
			want: types.StatusInjured,
		},
		{
			name: "retirement_trumps_everything",
			snap: IndividualSnapshot{Employment: EmploymentReleased, Injured: true, Retired: true},
			want: types.StatusRetired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.snap.Status(); got != tc.want {
				t.Fatalf("Status()=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestIndividualCanBeEmployed(t *testing.T) {
	cases := []struct {
		name    string
		snap    IndividualSnapshot
		wantErr error
	}{
		{name: "unemployed_ok", snap: IndividualSnapshot{Employment: EmploymentNever}},
		{name: "released_ok", snap: IndividualSnapshot{Employment: EmploymentReleased}},
		{name: "future_employment_ok", snap: IndividualSnapshot{Employment: EmploymentFuture}},
		{
			name:    "already_employed",
			snap:    IndividualSnapshot{Employment: EmploymentCurrent},
			wantErr: ErrAlreadyEmployed,
		},
		{
			name:    "retired_must_unretire_first",
			snap:    IndividualSnapshot{Employment: EmploymentReleased, Retired: true},
			wantErr: ErrRetired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.snap.CanBeEmployed()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CanBeEmployed()=%v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIndividualCanBeReleased(t *testing.T) {
	cases := []struct {
		name    string
		snap    IndividualSnapshot
		wantErr error
	}{
		{name: "employed_ok", snap: IndividualSnapshot{Employment: EmploymentCurrent}},
		{name: "suspended_ok", snap: IndividualSnapshot{Employment: EmploymentCurrent, Suspended: true}},
		{
			name:    "never_employed",
			snap:    IndividualSnapshot{Employment: EmploymentNever},
			wantErr: ErrNeverEmployed,
		},
		{
			name:    "future_employment",
			snap:    IndividualSnapshot{Employment: EmploymentFuture},
			wantErr: ErrFutureEmployment,
		},
		{
			name:    "already_released",
			snap:    IndividualSnapshot{Employment: EmploymentReleased},
			wantErr: ErrAlreadyReleased,
		},
		{
			name:    "retired",
			snap:    IndividualSnapshot{Employment: EmploymentCurrent, Retired: true},
			wantErr: ErrRetired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.snap.CanBeReleased()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CanBeReleased()=%v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIndividualCanBeInjured(t *testing.T) {
	cases := []struct {
		name    string
		snap    IndividualSnapshot
		wantErr error
	}{
		{name: "employed_ok", snap: IndividualSnapshot{Employment: EmploymentCurrent}},
		{
			name:    "never_employed",
			snap:    IndividualSnapshot{Employment: EmploymentNever},
			wantErr: ErrNeverEmployed,
		},
		{
			name:    "future_employment",
			snap:    IndividualSnapshot{Employment: EmploymentFuture},
			wantErr: ErrFutureEmployment,
		},
		{
			name:    "released",
			snap:    IndividualSnapshot{Employment: EmploymentReleased},
			wantErr: ErrReleased,
		},
		{
			name:    "already_injured",
			snap:    IndividualSnapshot{Employment: EmploymentCurrent, Injured: true},
			wantErr: ErrAlreadyInjured,
		},
		{
			name:    "suspended_cannot_be_injured",
			snap:    IndividualSnapshot{Employment: EmploymentCurrent, Suspended: true},
			wantErr: ErrSuspended,
		},
		{
			name:    "retired",
			snap:    IndividualSnapshot{Employment: EmploymentReleased, Retired: true},
			wantErr: ErrRetired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.snap.CanBeInjured()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CanBeInjured()=%v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIndividualCanBeSuspended(t *testing.T) {
	cases := []struct {
		name    string
		snap    IndividualSnapshot
		wantErr error
	}{
		{name: "employed_ok", snap: IndividualSnapshot{Employment: EmploymentCurrent}},
		{
			name:    "never_employed",
			snap:    IndividualSnapshot{Employment: EmploymentNever},
			wantErr: ErrNeverEmployed,
		},
		{
			name:    "future_employment",
			snap:    IndividualSnapshot{Employment: EmploymentFuture},
			wantErr: ErrFutureEmployment,
		},
		{
			name:    "released",
			snap:    IndividualSnapshot{Employment: EmploymentReleased},
			wantErr: ErrReleased,
		},
		{
			name:    "already_suspended",
			snap:    IndividualSnapshot{Employment: EmploymentCurrent, Suspended: true},
			wantErr: ErrAlreadySuspended,
		},
		{
			name:    "injured_cannot_be_suspended",
			snap:    IndividualSnapshot{Employment: EmploymentCurrent, Injured: true},
			wantErr: ErrInjured,
		},
		{
			name:    "retired",
			snap:    IndividualSnapshot{Employment: EmploymentReleased, Retired: true},
			wantErr: ErrRetired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.snap.CanBeSuspended()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CanBeSuspended()=%v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIndividualCanBeRetired(t *testing.T) {
	cases := []struct {
		name    string
		snap    IndividualSnapshot
		wantErr error
	}{
		{name: "employed_ok", snap: IndividualSnapshot{Employment: EmploymentCurrent}},
		{name: "released_ok", snap: IndividualSnapshot{Employment: EmploymentReleased}},
		{name: "injured_ok", snap: IndividualSnapshot{Employment: EmploymentCurrent, Injured: true}},
		{name: "suspended_ok", snap: IndividualSnapshot{Employment: EmploymentCurrent, Suspended: true}},
		{
			name:    "never_employed",
			snap:    IndividualSnapshot{Employment: EmploymentNever},
			wantErr: ErrNeverEmployed,
		},
		{
			name:    "future_employment",
			snap:    IndividualSnapshot{Employment: EmploymentFuture},
			wantErr: ErrFutureEmployment,
		},
		{
			name:    "already_retired",
			snap:    IndividualSnapshot{Employment: EmploymentReleased, Retired: true},
			wantErr: ErrAlreadyRetired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.snap.CanBeRetired()
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("CanBeRetired()=%v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestIndividualRecoveryGuards(t *testing.T) {
	injured := IndividualSnapshot{Employment: EmploymentCurrent, Injured: true}
	if err := injured.CanBeClearedFromInjury(); err != nil {
		t.Fatalf("CanBeClearedFromInjury()=%v, want nil", err)
	}
	healthy := IndividualSnapshot{Employment: EmploymentCurrent}
	if err := healthy.CanBeClearedFromInjury(); !errors.Is(err, ErrNotInjured) {
		t.Fatalf("CanBeClearedFromInjury()=%v, want %v", err, ErrNotInjured)
	}

	suspended := IndividualSnapshot{Employment: EmploymentCurrent, Suspended: true}
	if err := suspended.CanBeReinstated(); err != nil {
		t.Fatalf("CanBeReinstated()=%v, want nil", err)
	}
	if err := healthy.CanBeReinstated(); !errors.Is(err, ErrNotSuspended) {
		t.Fatalf("CanBeReinstated()=%v, want %v", err, ErrNotSuspended)
	}

	retired := IndividualSnapshot{Employment: EmploymentReleased, Retired: true}
	if err := retired.CanBeUnretired(); err != nil {
		t.Fatalf("CanBeUnretired()=%v, want nil", err)
	}
	if err := healthy.CanBeUnretired(); !errors.Is(err, ErrNotRetired) {
		t.Fatalf("CanBeUnretired()=%v, want %v", err, ErrNotRetired)
	}
}
