package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/squaredcircle/promoter-backend/internal/types"
)

type tagTeamFixture struct {
	env       *statusEnv
	teams     *fakeTagTeamRepo
	wrestlers *fakeWrestlerRepo
	svc       TagTeamService
}

func newTagTeamFixture(t *testing.T) *tagTeamFixture {
	t.Helper()
	f := &tagTeamFixture{
		env:       newStatusEnv(t),
		teams:     &fakeTagTeamRepo{},
		wrestlers: &fakeWrestlerRepo{},
	}
	f.svc = NewTagTeamService(
		testDB(t), testLogger(t), f.teams, f.env.partners, f.wrestlers,
		f.env.status, f.env.employments, f.env.suspensions, f.env.retirements,
		nil,
	)
	return f
}

func (f *tagTeamFixture) addWrestler(t *testing.T, name string) uuid.UUID {
	t.Helper()
	w, err := f.wrestlers.Create(context.Background(), nil, &types.Wrestler{Name: name})
	if err != nil {
		t.Fatalf("create wrestler: %v", err)
	}
	return w.ID
}

func TestTagTeamEmployAlsoEmploysPartners(t *testing.T) {
	f := newTagTeamFixture(t)
	ctx := context.Background()

	a := f.addWrestler(t, "Big Cat")
	b := f.addWrestler(t, "The Anvil")

	team, err := f.svc.Create(ctx, CreateTagTeamInput{Name: "The Wrecking Crew", WrestlerIDs: []uuid.UUID{a, b}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// One partner already has a contract; the other is signed along
	// with the team.
	_, err = f.env.employments.Create(ctx, nil, &types.Employment{
		EntityType: types.EntityKindWrestler,
		EntityID:   a,
		StartedAt:  time.Now().UTC().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("employ partner: %v", err)
	}

	if err := f.svc.Employ(ctx, team.ID, time.Time{}); err != nil {
		t.Fatalf("employ team: %v", err)
	}

	for _, id := range []uuid.UUID{a, b} {
		snap, err := f.env.status.IndividualSnapshot(ctx, nil, types.EntityKindWrestler, id, time.Now().UTC())
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if snap.Status() != types.StatusBookable {
			t.Fatalf("partner %s status = %q, want bookable", id, snap.Status())
		}
	}

	// The already-employed partner keeps a single contract.
	history, _ := f.env.employments.History(ctx, nil, types.EntityKindWrestler, a)
	if len(history) != 1 {
		t.Fatalf("partner a contracts = %d, want 1", len(history))
	}
}

func TestTagTeamBookabilityNeedsTwoPartners(t *testing.T) {
	f := newTagTeamFixture(t)
	ctx := context.Background()

	a := f.addWrestler(t, "Big Cat")
	b := f.addWrestler(t, "The Anvil")

	team, err := f.svc.Create(ctx, CreateTagTeamInput{Name: "The Wrecking Crew", WrestlerIDs: []uuid.UUID{a, b}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := f.svc.Employ(ctx, team.ID, time.Time{}); err != nil {
		t.Fatalf("employ: %v", err)
	}

	view, err := f.svc.Get(ctx, team.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !view.Bookable {
		t.Fatal("employed team with two partners should be bookable")
	}

	if err := f.svc.RemovePartner(ctx, team.ID, b, time.Time{}); err != nil {
		t.Fatalf("remove partner: %v", err)
	}
	view, _ = f.svc.Get(ctx, team.ID)
	if view.Bookable {
		t.Fatal("a one-man team is not bookable")
	}
	if view.Status != types.StatusBookable {
		t.Fatalf("status stays %q while short-handed, got %q", types.StatusBookable, view.Status)
	}
}

func TestTagTeamRetireLeavesPartnersAlone(t *testing.T) {
	f := newTagTeamFixture(t)
	ctx := context.Background()

	a := f.addWrestler(t, "Big Cat")
	b := f.addWrestler(t, "The Anvil")

	team, err := f.svc.Create(ctx, CreateTagTeamInput{Name: "The Wrecking Crew", WrestlerIDs: []uuid.UUID{a, b}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := f.svc.Employ(ctx, team.ID, time.Time{}); err != nil {
		t.Fatalf("employ: %v", err)
	}
	if err := f.svc.Retire(ctx, team.ID, time.Time{}); err != nil {
		t.Fatalf("retire: %v", err)
	}

	view, _ := f.svc.Get(ctx, team.ID)
	if view.Status != types.StatusRetired {
		t.Fatalf("team status = %q, want retired", view.Status)
	}

	for _, id := range []uuid.UUID{a, b} {
		snap, err := f.env.status.IndividualSnapshot(ctx, nil, types.EntityKindWrestler, id, time.Now().UTC())
		if err != nil {
			t.Fatalf("snapshot: %v", err)
		}
		if snap.Status() != types.StatusBookable {
			t.Fatalf("partner %s status = %q, want bookable", id, snap.Status())
		}
	}
}
