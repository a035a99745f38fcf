package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

func newWrestlerService(t *testing.T, env *statusEnv, wrestlers *fakeWrestlerRepo) WrestlerService {
	t.Helper()
	return NewWrestlerService(
		testDB(t), testLogger(t), wrestlers, env.status,
		env.employments, env.injuries, env.suspensions, env.retirements,
		nil, nil,
	)
}

func TestWrestlerCreateValidation(t *testing.T) {
	cases := []struct {
		name     string
		input    CreateWrestlerInput
		wantCode string
	}{
		{
			name:     "missing name",
			input:    CreateWrestlerInput{HeightFeet: 6, HeightInches: 2, WeightLbs: 240, Hometown: "Chicago, IL"},
			wantCode: "invalid_input",
		},
		{
			name:     "inches out of range",
			input:    CreateWrestlerInput{Name: "Big Cat", HeightFeet: 6, HeightInches: 12, WeightLbs: 240, Hometown: "Chicago, IL"},
			wantCode: "invalid_input",
		},
		{
			name:     "zero weight",
			input:    CreateWrestlerInput{Name: "Big Cat", HeightFeet: 6, HeightInches: 2, Hometown: "Chicago, IL"},
			wantCode: "invalid_input",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newWrestlerService(t, newStatusEnv(t), &fakeWrestlerRepo{})
			_, err := svc.Create(context.Background(), tc.input)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := apierr.CodeOf(err); got != tc.wantCode {
				t.Fatalf("code = %q, want %q", got, tc.wantCode)
			}
		})
	}
}

func TestWrestlerCreateDuplicateName(t *testing.T) {
	wrestlers := &fakeWrestlerRepo{}
	svc := newWrestlerService(t, newStatusEnv(t), wrestlers)

	input := CreateWrestlerInput{Name: "Big Cat", HeightFeet: 6, HeightInches: 2, WeightLbs: 240, Hometown: "Chicago, IL"}
	w, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if w.HeightInches != 74 {
		t.Fatalf("HeightInches = %d, want 74", w.HeightInches)
	}

	_, err = svc.Create(context.Background(), input)
	if apierr.CodeOf(err) != "name_taken" {
		t.Fatalf("code = %q, want name_taken", apierr.CodeOf(err))
	}
	if apierr.StatusOf(err, 0) != http.StatusConflict {
		t.Fatalf("status = %d, want 409", apierr.StatusOf(err, 0))
	}
}

func TestWrestlerEmploymentFlow(t *testing.T) {
	env := newStatusEnv(t)
	wrestlers := &fakeWrestlerRepo{}
	svc := newWrestlerService(t, env, wrestlers)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWrestlerInput{Name: "Big Cat", HeightFeet: 6, HeightInches: 2, WeightLbs: 240, Hometown: "Chicago, IL"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := svc.Get(ctx, w.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Status != types.StatusUnemployed {
		t.Fatalf("status = %q, want unemployed", view.Status)
	}

	if err := svc.Release(ctx, w.ID, time.Time{}); err == nil {
		t.Fatal("release before employment should fail")
	}

	if err := svc.Employ(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("employ: %v", err)
	}
	view, _ = svc.Get(ctx, w.ID)
	if view.Status != types.StatusBookable {
		t.Fatalf("status = %q, want bookable", view.Status)
	}

	if err := svc.Employ(ctx, w.ID, time.Time{}); apierr.CodeOf(err) != "cannot_employ" {
		t.Fatalf("second employ code = %q, want cannot_employ", apierr.CodeOf(err))
	}

	if err := svc.Suspend(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	view, _ = svc.Get(ctx, w.ID)
	if view.Status != types.StatusSuspended {
		t.Fatalf("status = %q, want suspended", view.Status)
	}

	// Injuring a suspended wrestler is refused.
	if err := svc.Injure(ctx, w.ID, time.Time{}); apierr.CodeOf(err) != "cannot_injure" {
		t.Fatalf("injure while suspended code = %q, want cannot_injure", apierr.CodeOf(err))
	}

	// Release ends the suspension along with the contract.
	if err := svc.Release(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("release: %v", err)
	}
	view, _ = svc.Get(ctx, w.ID)
	if view.Status != types.StatusReleased {
		t.Fatalf("status = %q, want released", view.Status)
	}
	if open, _ := env.suspensions.Open(ctx, nil, types.EntityKindWrestler, w.ID); open != nil {
		t.Fatal("suspension should have been ended by release")
	}
}

func TestWrestlerFutureEmploymentPulledForward(t *testing.T) {
	env := newStatusEnv(t)
	wrestlers := &fakeWrestlerRepo{}
	svc := newWrestlerService(t, env, wrestlers)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWrestlerInput{Name: "Big Cat", HeightFeet: 6, HeightInches: 2, WeightLbs: 240, Hometown: "Chicago, IL"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	future := time.Now().UTC().Add(30 * 24 * time.Hour)
	if err := svc.Employ(ctx, w.ID, future); err != nil {
		t.Fatalf("employ future: %v", err)
	}
	view, _ := svc.Get(ctx, w.ID)
	if view.Status != types.StatusFutureEmployment {
		t.Fatalf("status = %q, want future_employment", view.Status)
	}

	if err := svc.Employ(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("employ now: %v", err)
	}
	if len(env.employments.recs) != 1 {
		t.Fatalf("employment records = %d, want the future one moved, not stacked", len(env.employments.recs))
	}
	view, _ = svc.Get(ctx, w.ID)
	if view.Status != types.StatusBookable {
		t.Fatalf("status = %q, want bookable", view.Status)
	}
}

func TestWrestlerRetireAndUnretire(t *testing.T) {
	env := newStatusEnv(t)
	wrestlers := &fakeWrestlerRepo{}
	svc := newWrestlerService(t, env, wrestlers)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWrestlerInput{Name: "Big Cat", HeightFeet: 6, HeightInches: 2, WeightLbs: 240, Hometown: "Chicago, IL"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Retire(ctx, w.ID, time.Time{}); apierr.CodeOf(err) != "cannot_retire" {
		t.Fatalf("retire before employment code = %q, want cannot_retire", apierr.CodeOf(err))
	}

	if err := svc.Employ(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("employ: %v", err)
	}
	if err := svc.Injure(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("injure: %v", err)
	}

	// Retiring ends the injury and the contract.
	if err := svc.Retire(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("retire: %v", err)
	}
	view, _ := svc.Get(ctx, w.ID)
	if view.Status != types.StatusRetired {
		t.Fatalf("status = %q, want retired", view.Status)
	}
	if open, _ := env.injuries.Open(ctx, nil, types.EntityKindWrestler, w.ID); open != nil {
		t.Fatal("injury should have been ended by retirement")
	}
	latest, _ := env.employments.Latest(ctx, nil, types.EntityKindWrestler, w.ID)
	if latest.EndedAt == nil {
		t.Fatal("contract should have been ended by retirement")
	}

	// Coming back opens a fresh contract.
	if err := svc.Unretire(ctx, w.ID, time.Time{}); err != nil {
		t.Fatalf("unretire: %v", err)
	}
	view, _ = svc.Get(ctx, w.ID)
	if view.Status != types.StatusBookable {
		t.Fatalf("status = %q, want bookable", view.Status)
	}
	if len(env.employments.recs) != 2 {
		t.Fatalf("employment records = %d, want 2", len(env.employments.recs))
	}
}

func TestWrestlerListStatusFilter(t *testing.T) {
	env := newStatusEnv(t)
	wrestlers := &fakeWrestlerRepo{}
	svc := newWrestlerService(t, env, wrestlers)
	ctx := context.Background()

	names := []string{"Big Cat", "The Anvil", "Night Train"}
	ids := make([]uuid.UUID, 0, len(names))
	for _, name := range names {
		w, err := svc.Create(ctx, CreateWrestlerInput{Name: name, HeightFeet: 6, HeightInches: 0, WeightLbs: 230, Hometown: "Chicago, IL"})
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		ids = append(ids, w.ID)
	}
	if err := svc.Employ(ctx, ids[0], time.Time{}); err != nil {
		t.Fatalf("employ: %v", err)
	}
	if err := svc.Employ(ctx, ids[1], time.Time{}); err != nil {
		t.Fatalf("employ: %v", err)
	}
	if err := svc.Suspend(ctx, ids[1], time.Time{}); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	bookable := types.StatusBookable
	views, err := svc.List(ctx, &bookable)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(views) != 1 || views[0].Wrestler.ID != ids[0] {
		t.Fatalf("bookable filter returned %d rows", len(views))
	}

	all, err := svc.List(ctx, nil)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered list returned %d rows, want 3", len(all))
	}
}

func TestWrestlerBackdatedTransitionRejected(t *testing.T) {
	env := newStatusEnv(t)
	wrestlers := &fakeWrestlerRepo{}
	svc := newWrestlerService(t, env, wrestlers)
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateWrestlerInput{Name: "Big Cat", HeightFeet: 6, HeightInches: 2, WeightLbs: 240, Hometown: "Chicago, IL"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	hired := time.Now().UTC().Add(-24 * time.Hour)
	if err := svc.Employ(ctx, w.ID, hired); err != nil {
		t.Fatalf("employ: %v", err)
	}

	err = svc.Release(ctx, w.ID, hired.Add(-48*time.Hour))
	if apierr.CodeOf(err) != "invalid_date" {
		t.Fatalf("backdated release code = %q, want invalid_date", apierr.CodeOf(err))
	}
	if apierr.StatusOf(err, 0) != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", apierr.StatusOf(err, 0))
	}

	view, err := svc.Get(ctx, w.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Status != types.StatusBookable {
		t.Fatalf("status after refused release = %q, want bookable", view.Status)
	}

	suspended := time.Now().UTC().Add(-2 * time.Hour)
	if err := svc.Suspend(ctx, w.ID, suspended); err != nil {
		t.Fatalf("suspend: %v", err)
	}
	err = svc.Reinstate(ctx, w.ID, suspended.Add(-time.Hour))
	if apierr.CodeOf(err) != "invalid_date" {
		t.Fatalf("backdated reinstate code = %q, want invalid_date", apierr.CodeOf(err))
	}
	view, _ = svc.Get(ctx, w.ID)
	if view.Status != types.StatusSuspended {
		t.Fatalf("status after refused reinstate = %q, want suspended", view.Status)
	}
}
