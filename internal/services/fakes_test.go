package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

// The fakes below hold records in slices and ignore the tx handle.
// Services still get a real in-memory database so their transactions
// have something to begin and commit against.

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return db
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("dev")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	return log
}

// fakeEndBeforeStartErr mirrors the refusal the real status repos
// return when a close date lands before the record it closes.
func fakeEndBeforeStartErr() error {
	return apierr.New(http.StatusUnprocessableEntity, "invalid_date", errors.New("record cannot end before it started"))
}

type fakeEmploymentRepo struct {
	recs []*types.Employment
}

func (f *fakeEmploymentRepo) Create(_ context.Context, _ *gorm.DB, rec *types.Employment) (*types.Employment, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeEmploymentRepo) Latest(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*types.Employment, error) {
	var latest *types.Employment
	for _, r := range f.recs {
		if r.EntityType != kind || r.EntityID != entityID {
			continue
		}
		if latest == nil || r.StartedAt.After(latest.StartedAt) {
			latest = r
		}
	}
	return latest, nil
}

func (f *fakeEmploymentRepo) History(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*types.Employment, error) {
	var out []*types.Employment
	for _, r := range f.recs {
		if r.EntityType == kind && r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEmploymentRepo) EndOpen(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.EntityType == kind && r.EntityID == entityID && r.EndedAt == nil {
			if at.Before(r.StartedAt) {
				return fakeEndBeforeStartErr()
			}
			end := at
			r.EndedAt = &end
		}
	}
	return nil
}

func (f *fakeEmploymentRepo) UpdateStart(_ context.Context, _ *gorm.DB, recID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.ID == recID {
			r.StartedAt = at
		}
	}
	return nil
}

// fakeStatusRepo mirrors the shared injury/suspension/retirement repo
// with closures over the record shape, the same trick the real one
// uses.
type fakeStatusRepo[T any] struct {
	recs    []*T
	build   func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *T
	match   func(rec *T, kind types.EntityKind, entityID uuid.UUID) bool
	isOpen  func(rec *T) bool
	startOf func(rec *T) time.Time
	end     func(rec *T, at time.Time)
}

func newFakeInjuryRepo() *fakeStatusRepo[types.Injury] {
	return &fakeStatusRepo[types.Injury]{
		build: func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *types.Injury {
			return &types.Injury{ID: uuid.New(), EntityType: kind, EntityID: entityID, StartedAt: at}
		},
		match: func(rec *types.Injury, kind types.EntityKind, entityID uuid.UUID) bool {
			return rec.EntityType == kind && rec.EntityID == entityID
		},
		isOpen:  func(rec *types.Injury) bool { return rec.EndedAt == nil },
		startOf: func(rec *types.Injury) time.Time { return rec.StartedAt },
		end:     func(rec *types.Injury, at time.Time) { rec.EndedAt = &at },
	}
}

func newFakeSuspensionRepo() *fakeStatusRepo[types.Suspension] {
	return &fakeStatusRepo[types.Suspension]{
		build: func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *types.Suspension {
			return &types.Suspension{ID: uuid.New(), EntityType: kind, EntityID: entityID, StartedAt: at}
		},
		match: func(rec *types.Suspension, kind types.EntityKind, entityID uuid.UUID) bool {
			return rec.EntityType == kind && rec.EntityID == entityID
		},
		isOpen:  func(rec *types.Suspension) bool { return rec.EndedAt == nil },
		startOf: func(rec *types.Suspension) time.Time { return rec.StartedAt },
		end:     func(rec *types.Suspension, at time.Time) { rec.EndedAt = &at },
	}
}

func newFakeRetirementRepo() *fakeStatusRepo[types.Retirement] {
	return &fakeStatusRepo[types.Retirement]{
		build: func(kind types.EntityKind, entityID uuid.UUID, at time.Time) *types.Retirement {
			return &types.Retirement{ID: uuid.New(), EntityType: kind, EntityID: entityID, StartedAt: at}
		},
		match: func(rec *types.Retirement, kind types.EntityKind, entityID uuid.UUID) bool {
			return rec.EntityType == kind && rec.EntityID == entityID
		},
		isOpen:  func(rec *types.Retirement) bool { return rec.EndedAt == nil },
		startOf: func(rec *types.Retirement) time.Time { return rec.StartedAt },
		end:     func(rec *types.Retirement, at time.Time) { rec.EndedAt = &at },
	}
}

func (f *fakeStatusRepo[T]) Open(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*T, error) {
	for _, r := range f.recs {
		if f.match(r, kind, entityID) && f.isOpen(r) {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStatusRepo[T]) Start(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) (*T, error) {
	rec := f.build(kind, entityID, at)
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeStatusRepo[T]) EndOpen(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if f.match(r, kind, entityID) && f.isOpen(r) {
			if at.Before(f.startOf(r)) {
				return fakeEndBeforeStartErr()
			}
			f.end(r, at)
		}
	}
	return nil
}

func (f *fakeStatusRepo[T]) History(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*T, error) {
	var out []*T
	for _, r := range f.recs {
		if f.match(r, kind, entityID) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeActivationRepo struct {
	recs []*types.Activation
}

func (f *fakeActivationRepo) Create(_ context.Context, _ *gorm.DB, rec *types.Activation) (*types.Activation, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeActivationRepo) Latest(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID) (*types.Activation, error) {
	var latest *types.Activation
	for _, r := range f.recs {
		if r.EntityType != kind || r.EntityID != entityID {
			continue
		}
		if latest == nil || r.StartedAt.After(latest.StartedAt) {
			latest = r
		}
	}
	return latest, nil
}

func (f *fakeActivationRepo) History(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID) ([]*types.Activation, error) {
	var out []*types.Activation
	for _, r := range f.recs {
		if r.EntityType == kind && r.EntityID == entityID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeActivationRepo) EndOpen(_ context.Context, _ *gorm.DB, kind types.EntityKind, entityID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.EntityType == kind && r.EntityID == entityID && r.EndedAt == nil {
			if at.Before(r.StartedAt) {
				return fakeEndBeforeStartErr()
			}
			end := at
			r.EndedAt = &end
		}
	}
	return nil
}

type fakeTagTeamPartnerRepo struct {
	recs []*types.TagTeamPartner
}

func (f *fakeTagTeamPartnerRepo) Add(_ context.Context, _ *gorm.DB, tagTeamID, wrestlerID uuid.UUID, at time.Time) (*types.TagTeamPartner, error) {
	rec := &types.TagTeamPartner{ID: uuid.New(), TagTeamID: tagTeamID, WrestlerID: wrestlerID, JoinedAt: at}
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeTagTeamPartnerRepo) End(_ context.Context, _ *gorm.DB, tagTeamID, wrestlerID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.TagTeamID == tagTeamID && r.WrestlerID == wrestlerID && r.LeftAt == nil {
			end := at
			r.LeftAt = &end
		}
	}
	return nil
}

func (f *fakeTagTeamPartnerRepo) Current(_ context.Context, _ *gorm.DB, tagTeamID uuid.UUID) ([]*types.TagTeamPartner, error) {
	var out []*types.TagTeamPartner
	for _, r := range f.recs {
		if r.TagTeamID == tagTeamID && r.LeftAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeTagTeamPartnerRepo) CurrentTeamsFor(_ context.Context, _ *gorm.DB, wrestlerID uuid.UUID) ([]*types.TagTeamPartner, error) {
	var out []*types.TagTeamPartner
	for _, r := range f.recs {
		if r.WrestlerID == wrestlerID && r.LeftAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeStableMemberRepo struct {
	recs []*types.StableMember
}

func (f *fakeStableMemberRepo) Add(_ context.Context, _ *gorm.DB, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) (*types.StableMember, error) {
	rec := &types.StableMember{ID: uuid.New(), StableID: stableID, MemberType: memberKind, MemberID: memberID, JoinedAt: at}
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeStableMemberRepo) End(_ context.Context, _ *gorm.DB, stableID uuid.UUID, memberKind types.EntityKind, memberID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.StableID == stableID && r.MemberType == memberKind && r.MemberID == memberID && r.LeftAt == nil {
			end := at
			r.LeftAt = &end
		}
	}
	return nil
}

func (f *fakeStableMemberRepo) EndAll(_ context.Context, _ *gorm.DB, stableID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.StableID == stableID && r.LeftAt == nil {
			end := at
			r.LeftAt = &end
		}
	}
	return nil
}

func (f *fakeStableMemberRepo) Current(_ context.Context, _ *gorm.DB, stableID uuid.UUID) ([]*types.StableMember, error) {
	var out []*types.StableMember
	for _, r := range f.recs {
		if r.StableID == stableID && r.LeftAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeChampionshipRepo struct {
	recs []*types.Championship
}

func (f *fakeChampionshipRepo) Award(_ context.Context, _ *gorm.DB, titleID uuid.UUID, championKind types.EntityKind, championID uuid.UUID, at time.Time) (*types.Championship, error) {
	rec := &types.Championship{ID: uuid.New(), TitleID: titleID, ChampionType: championKind, ChampionID: championID, WonAt: at}
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeChampionshipRepo) Current(_ context.Context, _ *gorm.DB, titleID uuid.UUID) (*types.Championship, error) {
	for _, r := range f.recs {
		if r.TitleID == titleID && r.LostAt == nil {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeChampionshipRepo) EndOpen(_ context.Context, _ *gorm.DB, titleID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.TitleID == titleID && r.LostAt == nil {
			end := at
			r.LostAt = &end
		}
	}
	return nil
}

func (f *fakeChampionshipRepo) HistoryForTitle(_ context.Context, _ *gorm.DB, titleID uuid.UUID) ([]*types.Championship, error) {
	var out []*types.Championship
	for _, r := range f.recs {
		if r.TitleID == titleID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeChampionshipRepo) HistoryForChampion(_ context.Context, _ *gorm.DB, championKind types.EntityKind, championID uuid.UUID) ([]*types.Championship, error) {
	var out []*types.Championship
	for _, r := range f.recs {
		if r.ChampionType == championKind && r.ChampionID == championID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeWrestlerRepo struct {
	recs []*types.Wrestler
}

func (f *fakeWrestlerRepo) Create(_ context.Context, _ *gorm.DB, w *types.Wrestler) (*types.Wrestler, error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	f.recs = append(f.recs, w)
	return w, nil
}

func (f *fakeWrestlerRepo) Update(_ context.Context, _ *gorm.DB, w *types.Wrestler) (*types.Wrestler, error) {
	return w, nil
}

func (f *fakeWrestlerRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Wrestler, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeWrestlerRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.Wrestler, error) {
	var out []*types.Wrestler
	for _, id := range ids {
		for _, r := range f.recs {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeWrestlerRepo) List(_ context.Context, _ *gorm.DB) ([]*types.Wrestler, error) {
	return f.recs, nil
}

func (f *fakeWrestlerRepo) NameExists(_ context.Context, _ *gorm.DB, name string) (bool, error) {
	for _, r := range f.recs {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeWrestlerRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeWrestlerRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

type fakeTagTeamRepo struct {
	recs []*types.TagTeam
}

func (f *fakeTagTeamRepo) Create(_ context.Context, _ *gorm.DB, tt *types.TagTeam) (*types.TagTeam, error) {
	if tt.ID == uuid.Nil {
		tt.ID = uuid.New()
	}
	f.recs = append(f.recs, tt)
	return tt, nil
}

func (f *fakeTagTeamRepo) Update(_ context.Context, _ *gorm.DB, tt *types.TagTeam) (*types.TagTeam, error) {
	return tt, nil
}

func (f *fakeTagTeamRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.TagTeam, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeTagTeamRepo) List(_ context.Context, _ *gorm.DB) ([]*types.TagTeam, error) {
	return f.recs, nil
}

func (f *fakeTagTeamRepo) NameExists(_ context.Context, _ *gorm.DB, name string) (bool, error) {
	for _, r := range f.recs {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTagTeamRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeTagTeamRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

type fakeStableRepo struct {
	recs []*types.Stable
}

func (f *fakeStableRepo) Create(_ context.Context, _ *gorm.DB, s *types.Stable) (*types.Stable, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.recs = append(f.recs, s)
	return s, nil
}

func (f *fakeStableRepo) Update(_ context.Context, _ *gorm.DB, s *types.Stable) (*types.Stable, error) {
	return s, nil
}

func (f *fakeStableRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Stable, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeStableRepo) List(_ context.Context, _ *gorm.DB) ([]*types.Stable, error) {
	return f.recs, nil
}

func (f *fakeStableRepo) NameExists(_ context.Context, _ *gorm.DB, name string) (bool, error) {
	for _, r := range f.recs {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStableRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeStableRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

type fakeTitleRepo struct {
	recs []*types.Title
}

func (f *fakeTitleRepo) Create(_ context.Context, _ *gorm.DB, tt *types.Title) (*types.Title, error) {
	if tt.ID == uuid.Nil {
		tt.ID = uuid.New()
	}
	f.recs = append(f.recs, tt)
	return tt, nil
}

func (f *fakeTitleRepo) Update(_ context.Context, _ *gorm.DB, tt *types.Title) (*types.Title, error) {
	return tt, nil
}

func (f *fakeTitleRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Title, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeTitleRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.Title, error) {
	var out []*types.Title
	for _, id := range ids {
		for _, r := range f.recs {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeTitleRepo) List(_ context.Context, _ *gorm.DB) ([]*types.Title, error) {
	return f.recs, nil
}

func (f *fakeTitleRepo) NameExists(_ context.Context, _ *gorm.DB, name string) (bool, error) {
	for _, r := range f.recs {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTitleRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeTitleRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

type fakeManagerRepo struct {
	recs []*types.Manager
}

func (f *fakeManagerRepo) Create(_ context.Context, _ *gorm.DB, m *types.Manager) (*types.Manager, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.recs = append(f.recs, m)
	return m, nil
}

func (f *fakeManagerRepo) Update(_ context.Context, _ *gorm.DB, m *types.Manager) (*types.Manager, error) {
	return m, nil
}

func (f *fakeManagerRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Manager, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeManagerRepo) List(_ context.Context, _ *gorm.DB) ([]*types.Manager, error) {
	return f.recs, nil
}

func (f *fakeManagerRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeManagerRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

type fakeManagementRepo struct {
	recs []*types.Management
}

func (f *fakeManagementRepo) Hire(_ context.Context, _ *gorm.DB, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) (*types.Management, error) {
	rec := &types.Management{ID: uuid.New(), ManagerID: managerID, ClientType: clientKind, ClientID: clientID, HiredAt: at}
	f.recs = append(f.recs, rec)
	return rec, nil
}

func (f *fakeManagementRepo) EndOpen(_ context.Context, _ *gorm.DB, managerID uuid.UUID, clientKind types.EntityKind, clientID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.ManagerID == managerID && r.ClientType == clientKind && r.ClientID == clientID && r.LeftAt == nil {
			end := at
			r.LeftAt = &end
		}
	}
	return nil
}

func (f *fakeManagementRepo) EndAllForManager(_ context.Context, _ *gorm.DB, managerID uuid.UUID, at time.Time) error {
	for _, r := range f.recs {
		if r.ManagerID == managerID && r.LeftAt == nil {
			end := at
			r.LeftAt = &end
		}
	}
	return nil
}

func (f *fakeManagementRepo) OpenForManager(_ context.Context, _ *gorm.DB, managerID uuid.UUID) ([]*types.Management, error) {
	var out []*types.Management
	for _, r := range f.recs {
		if r.ManagerID == managerID && r.LeftAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeManagementRepo) OpenForClient(_ context.Context, _ *gorm.DB, clientKind types.EntityKind, clientID uuid.UUID) ([]*types.Management, error) {
	var out []*types.Management
	for _, r := range f.recs {
		if r.ClientType == clientKind && r.ClientID == clientID && r.LeftAt == nil {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeRefereeRepo struct {
	recs []*types.Referee
}

func (f *fakeRefereeRepo) Create(_ context.Context, _ *gorm.DB, ref *types.Referee) (*types.Referee, error) {
	if ref.ID == uuid.Nil {
		ref.ID = uuid.New()
	}
	f.recs = append(f.recs, ref)
	return ref, nil
}

func (f *fakeRefereeRepo) Update(_ context.Context, _ *gorm.DB, ref *types.Referee) (*types.Referee, error) {
	return ref, nil
}

func (f *fakeRefereeRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Referee, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRefereeRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*types.Referee, error) {
	var out []*types.Referee
	for _, id := range ids {
		for _, r := range f.recs {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeRefereeRepo) List(_ context.Context, _ *gorm.DB) ([]*types.Referee, error) {
	return f.recs, nil
}

func (f *fakeRefereeRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeRefereeRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

type fakeEventRepo struct {
	recs []*types.Event
}

func (f *fakeEventRepo) Create(_ context.Context, _ *gorm.DB, e *types.Event) (*types.Event, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	f.recs = append(f.recs, e)
	return e, nil
}

func (f *fakeEventRepo) Update(_ context.Context, _ *gorm.DB, e *types.Event) (*types.Event, error) {
	return e, nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Event, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) List(_ context.Context, _ *gorm.DB) ([]*types.Event, error) {
	return f.recs, nil
}

func (f *fakeEventRepo) ListScheduledBetween(_ context.Context, _ *gorm.DB, from, to time.Time) ([]*types.Event, error) {
	var out []*types.Event
	for _, r := range f.recs {
		if r.Date != nil && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) NameExists(_ context.Context, _ *gorm.DB, name string) (bool, error) {
	for _, r := range f.recs {
		if r.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeEventRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

type fakeMatchRepo struct {
	recs []*types.Match
}

func (f *fakeMatchRepo) Create(_ context.Context, _ *gorm.DB, m *types.Match) (*types.Match, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	f.recs = append(f.recs, m)
	return m, nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Match, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeMatchRepo) ListForEvent(_ context.Context, _ *gorm.DB, eventID uuid.UUID) ([]*types.Match, error) {
	var out []*types.Match
	for _, r := range f.recs {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeMatchRepo) NextMatchNumber(_ context.Context, _ *gorm.DB, eventID uuid.UUID) (int, error) {
	max := 0
	for _, r := range f.recs {
		if r.EventID == eventID && r.MatchNumber > max {
			max = r.MatchNumber
		}
	}
	return max + 1, nil
}

func (f *fakeMatchRepo) CreateResult(_ context.Context, _ *gorm.DB, res *types.MatchResult) (*types.MatchResult, error) {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	for _, r := range f.recs {
		if r.ID == res.MatchID {
			r.Result = res
		}
	}
	return res, nil
}

func (f *fakeMatchRepo) Delete(_ context.Context, _ *gorm.DB, id uuid.UUID) error {
	for i, r := range f.recs {
		if r.ID == id {
			f.recs = append(f.recs[:i], f.recs[i+1:]...)
			return nil
		}
	}
	return nil
}

// statusEnv bundles the record fakes with a real status service so
// transition tests read the same state they mutate.
type statusEnv struct {
	employments *fakeEmploymentRepo
	injuries    *fakeStatusRepo[types.Injury]
	suspensions *fakeStatusRepo[types.Suspension]
	retirements *fakeStatusRepo[types.Retirement]
	activations *fakeActivationRepo
	partners    *fakeTagTeamPartnerRepo
	members     *fakeStableMemberRepo
	reigns      *fakeChampionshipRepo
	status      StatusService
}

func newStatusEnv(t *testing.T) *statusEnv {
	t.Helper()
	env := &statusEnv{
		employments: &fakeEmploymentRepo{},
		injuries:    newFakeInjuryRepo(),
		suspensions: newFakeSuspensionRepo(),
		retirements: newFakeRetirementRepo(),
		activations: &fakeActivationRepo{},
		partners:    &fakeTagTeamPartnerRepo{},
		members:     &fakeStableMemberRepo{},
		reigns:      &fakeChampionshipRepo{},
	}
	env.status = NewStatusService(
		testLogger(t),
		env.employments,
		env.injuries,
		env.suspensions,
		env.retirements,
		env.activations,
		env.partners,
		env.members,
		env.reigns,
	)
	return env
}

// newBookableWrestlerID opens a contract for a fresh id so status
// checks see a bookable wrestler.
func newBookableWrestlerID(t *testing.T, env *statusEnv) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := env.employments.Create(context.Background(), nil, &types.Employment{
		EntityType: types.EntityKindWrestler,
		EntityID:   id,
		StartedAt:  time.Now().UTC().Add(-time.Hour),
	})
	if err != nil {
		t.Fatalf("employ wrestler: %v", err)
	}
	return id
}

type fakeVenueRepo struct {
	recs []*types.Venue
}

func (f *fakeVenueRepo) Create(_ context.Context, _ *gorm.DB, v *types.Venue) (*types.Venue, error) {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	f.recs = append(f.recs, v)
	return v, nil
}

func (f *fakeVenueRepo) Update(_ context.Context, _ *gorm.DB, v *types.Venue) (*types.Venue, error) {
	return v, nil
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*types.Venue, error) {
	for _, r := range f.recs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) GetByName(_ context.Context, _ *gorm.DB, name string) (*types.Venue, error) {
	for _, r := range f.recs {
		if r.Name == name {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeVenueRepo) List(_ context.Context, _ *gorm.DB) ([]*types.Venue, error) {
	return f.recs, nil
}

func (f *fakeVenueRepo) Archive(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }
func (f *fakeVenueRepo) Restore(_ context.Context, _ *gorm.DB, id uuid.UUID) error { return nil }

var _ repos.EmploymentRepo = (*fakeEmploymentRepo)(nil)
var _ repos.InjuryRepo = (*fakeStatusRepo[types.Injury])(nil)
var _ repos.ActivationRepo = (*fakeActivationRepo)(nil)
var _ repos.TagTeamPartnerRepo = (*fakeTagTeamPartnerRepo)(nil)
var _ repos.StableMemberRepo = (*fakeStableMemberRepo)(nil)
var _ repos.ChampionshipRepo = (*fakeChampionshipRepo)(nil)
var _ repos.WrestlerRepo = (*fakeWrestlerRepo)(nil)
var _ repos.TagTeamRepo = (*fakeTagTeamRepo)(nil)
var _ repos.StableRepo = (*fakeStableRepo)(nil)
var _ repos.TitleRepo = (*fakeTitleRepo)(nil)
var _ repos.RefereeRepo = (*fakeRefereeRepo)(nil)
var _ repos.ManagerRepo = (*fakeManagerRepo)(nil)
var _ repos.ManagementRepo = (*fakeManagementRepo)(nil)
var _ repos.EventRepo = (*fakeEventRepo)(nil)
var _ repos.MatchRepo = (*fakeMatchRepo)(nil)
var _ repos.VenueRepo = (*fakeVenueRepo)(nil)
