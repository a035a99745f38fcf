package services

import (
	"context"
	"testing"
	"time"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

type managerFixture struct {
	env         *statusEnv
	managers    *fakeManagerRepo
	managements *fakeManagementRepo
	svc         ManagerService
}

func newManagerFixture(t *testing.T) *managerFixture {
	t.Helper()
	f := &managerFixture{
		env:         newStatusEnv(t),
		managers:    &fakeManagerRepo{},
		managements: &fakeManagementRepo{},
	}
	f.svc = NewManagerService(
		testDB(t), testLogger(t), f.managers, f.managements, f.env.status,
		f.env.employments, f.env.injuries, f.env.suspensions, f.env.retirements,
		nil, nil,
	)
	return f
}

func TestManagerClients(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, CreateManagerInput{FirstName: "Paul", LastName: "Sterling"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	client := newBookableWrestlerID(t, f.env)

	if err := f.svc.HireClient(ctx, m.ID, types.EntityKindReferee, client, time.Time{}); apierr.CodeOf(err) != "invalid_input" {
		t.Fatalf("referee client code = %q, want invalid_input", apierr.CodeOf(err))
	}

	if err := f.svc.HireClient(ctx, m.ID, types.EntityKindWrestler, client, time.Time{}); err != nil {
		t.Fatalf("hire: %v", err)
	}
	if err := f.svc.HireClient(ctx, m.ID, types.EntityKindWrestler, client, time.Time{}); apierr.CodeOf(err) != "already_managed" {
		t.Fatalf("repeat hire code = %q, want already_managed", apierr.CodeOf(err))
	}

	open, err := f.svc.Clients(ctx, m.ID)
	if err != nil {
		t.Fatalf("clients: %v", err)
	}
	if len(open) != 1 {
		t.Fatalf("open clients = %d, want 1", len(open))
	}

	if err := f.svc.DropClient(ctx, m.ID, types.EntityKindWrestler, client, time.Time{}); err != nil {
		t.Fatalf("drop: %v", err)
	}
	open, _ = f.svc.Clients(ctx, m.ID)
	if len(open) != 0 {
		t.Fatalf("open clients after drop = %d, want 0", len(open))
	}
}

func TestManagerRetireEndsManagements(t *testing.T) {
	f := newManagerFixture(t)
	ctx := context.Background()

	m, err := f.svc.Create(ctx, CreateManagerInput{FirstName: "Paul", LastName: "Sterling"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := f.svc.Employ(ctx, m.ID, time.Time{}); err != nil {
		t.Fatalf("employ: %v", err)
	}

	client := newBookableWrestlerID(t, f.env)
	if err := f.svc.HireClient(ctx, m.ID, types.EntityKindWrestler, client, time.Time{}); err != nil {
		t.Fatalf("hire: %v", err)
	}

	if err := f.svc.Retire(ctx, m.ID, time.Time{}); err != nil {
		t.Fatalf("retire: %v", err)
	}

	open, _ := f.svc.Clients(ctx, m.ID)
	if len(open) != 0 {
		t.Fatalf("open clients after retirement = %d, want 0", len(open))
	}

	view, err := f.svc.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Status != types.StatusRetired {
		t.Fatalf("status = %q, want retired", view.Status)
	}

	// A retired manager takes no new clients.
	if err := f.svc.HireClient(ctx, m.ID, types.EntityKindWrestler, newBookableWrestlerID(t, f.env), time.Time{}); apierr.CodeOf(err) != "cannot_hire" {
		t.Fatalf("hire while retired code = %q, want cannot_hire", apierr.CodeOf(err))
	}
}
