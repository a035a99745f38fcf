package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/squaredcircle/promoter-backend/internal/types"
)

func TestStableGuards(t *testing.T) {
	cases := []struct {
		name    string
		snap    StableSnapshot
		check   func(StableSnapshot) error
		wantErr error
	}{
		{
			name:  "establish_new_stable",
			snap:  StableSnapshot{Activation: ActivationNever, MemberCount: 3},
			check: StableSnapshot.CanBeEstablished,
		},
		{
			name:  "reestablish_disbanded_stable",
			snap:  StableSnapshot{Activation: ActivationEnded, MemberCount: 3},
			check: StableSnapshot.CanBeEstablished,
		},
		{
			name:    "establish_active_stable",
			snap:    StableSnapshot{Activation: ActivationCurrent},
			check:   StableSnapshot.CanBeEstablished,
			wantErr: ErrAlreadyActive,
		},
		{
			name:    "establish_retired_stable",
			snap:    StableSnapshot{Activation: ActivationEnded, Retired: true},
			check:   StableSnapshot.CanBeEstablished,
			wantErr: ErrRetired,
		},
		{
			name:  "disband_active_stable",
			snap:  StableSnapshot{Activation: ActivationCurrent},
			check: StableSnapshot.CanBeDisbanded,
		},
		{
			name:    "disband_inactive_stable",
			snap:    StableSnapshot{Activation: ActivationEnded},
			check:   StableSnapshot.CanBeDisbanded,
			wantErr: ErrNotActive,
		},
		{
			name:  "retire_active_stable",
			snap:  StableSnapshot{Activation: ActivationCurrent},
			check: StableSnapshot.CanBeRetired,
		},
		{
			name:  "retire_disbanded_stable",
			snap:  StableSnapshot{Activation: ActivationEnded},
			check: StableSnapshot.CanBeRetired,
		},
		{
			name:    "retire_unactivated_stable",
			snap:    StableSnapshot{Activation: ActivationNever},
			check:   StableSnapshot.CanBeRetired,
			wantErr: ErrNeverActivated,
		},
		{
			name:    "retire_future_activation",
			snap:    StableSnapshot{Activation: ActivationFuture},
			check:   StableSnapshot.CanBeRetired,
			wantErr: ErrFutureActivation,
		},
		{
			name:    "retire_retired_stable",
			snap:    StableSnapshot{Activation: ActivationEnded, Retired: true},
			check:   StableSnapshot.CanBeRetired,
			wantErr: ErrAlreadyRetired,
		},
		{
			name:  "unretire_retired_stable",
			snap:  StableSnapshot{Activation: ActivationEnded, Retired: true},
			check: StableSnapshot.CanBeUnretired,
		},
		{
			name:    "unretire_active_stable",
			snap:    StableSnapshot{Activation: ActivationCurrent},
			check:   StableSnapshot.CanBeUnretired,
			wantErr: ErrNotRetired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.snap)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("guard err=%v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestTitleGuards(t *testing.T) {
	cases := []struct {
		name    string
		snap    TitleSnapshot
		check   func(TitleSnapshot) error
		wantErr error
	}{
		{
			name:  "debut_new_title",
			snap:  TitleSnapshot{Activation: ActivationNever},
			check: TitleSnapshot.CanBeDebuted,
		},
		{
			name:  "reactivate_pulled_title",
			snap:  TitleSnapshot{Activation: ActivationEnded},
			check: TitleSnapshot.CanBeDebuted,
		},
		{
			name:    "debut_active_title",
			snap:    TitleSnapshot{Activation: ActivationCurrent},
			check:   TitleSnapshot.CanBeDebuted,
			wantErr: ErrAlreadyActive,
		},
		{
			name:    "debut_with_future_activation",
			snap:    TitleSnapshot{Activation: ActivationFuture},
			check:   TitleSnapshot.CanBeDebuted,
			wantErr: ErrFutureActivation,
		},
		{
			name:    "debut_retired_title",
			snap:    TitleSnapshot{Activation: ActivationEnded, Retired: true},
			check:   TitleSnapshot.CanBeDebuted,
			wantErr: ErrRetired,
		},
		{
			name:  "pull_active_title",
			snap:  TitleSnapshot{Activation: ActivationCurrent},
			check: TitleSnapshot.CanBePulled,
		},
		{
			name:    "pull_inactive_title",
			snap:    TitleSnapshot{Activation: ActivationEnded},
			check:   TitleSnapshot.CanBePulled,
			wantErr: ErrNotActive,
		},
		{
			name:  "retire_active_title",
			snap:  TitleSnapshot{Activation: ActivationCurrent, HasChampion: true},
			check: TitleSnapshot.CanBeRetired,
		},
		{
			name:    "retire_undebuted_title",
			snap:    TitleSnapshot{Activation: ActivationNever},
			check:   TitleSnapshot.CanBeRetired,
			wantErr: ErrNeverActivated,
		},
		{
			name:    "retire_retired_title",
			snap:    TitleSnapshot{Activation: ActivationEnded, Retired: true},
			check:   TitleSnapshot.CanBeRetired,
			wantErr: ErrAlreadyRetired,
		},
		{
			name:  "unretire_retired_title",
			snap:  TitleSnapshot{Activation: ActivationEnded, Retired: true},
			check: TitleSnapshot.CanBeUnretired,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.snap)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("guard err=%v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestEmploymentStateOf(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	cases := []struct {
		name   string
		latest *types.Employment
		want   EmploymentState
	}{
		{name: "no_record", latest: nil, want: EmploymentNever},
		{
			name:   "future_start",
			latest: &types.Employment{StartedAt: future},
			want:   EmploymentFuture,
		},
		{
			name:   "open_record",
			latest: &types.Employment{StartedAt: past},
			want:   EmploymentCurrent,
		},
		{
			name:   "ended_record",
			latest: &types.Employment{StartedAt: past, EndedAt: &now},
			want:   EmploymentReleased,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EmploymentStateOf(tc.latest, now); got != tc.want {
				t.Fatalf("EmploymentStateOf()=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestActivationStateOf(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)

	if got := ActivationStateOf(nil, now); got != ActivationNever {
		t.Fatalf("ActivationStateOf(nil)=%v, want %v", got, ActivationNever)
	}
	open := &types.Activation{StartedAt: past}
	if got := ActivationStateOf(open, now); got != ActivationCurrent {
		t.Fatalf("ActivationStateOf(open)=%v, want %v", got, ActivationCurrent)
	}
	ended := &types.Activation{StartedAt: past, EndedAt: &now}
	if got := ActivationStateOf(ended, now); got != ActivationEnded {
		t.Fatalf("ActivationStateOf(ended)=%v, want %v", got, ActivationEnded)
	}
}
