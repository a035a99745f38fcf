package seed

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/services"
)

// File is the on-disk seed format. Everything is matched by name, so
// running the same file twice leaves the database unchanged.
type File struct {
	Venues []struct {
		Name          string `yaml:"name"`
		StreetAddress string `yaml:"street_address"`
		City          string `yaml:"city"`
		State         string `yaml:"state"`
		Zipcode       string `yaml:"zipcode"`
	} `yaml:"venues"`
	Wrestlers []struct {
		Name          string  `yaml:"name"`
		HeightFeet    int     `yaml:"height_feet"`
		HeightInches  int     `yaml:"height_inches"`
		WeightLbs     int     `yaml:"weight_lbs"`
		Hometown      string  `yaml:"hometown"`
		SignatureMove *string `yaml:"signature_move"`
		Employed      bool    `yaml:"employed"`
	} `yaml:"wrestlers"`
	Managers []struct {
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Employed  bool   `yaml:"employed"`
	} `yaml:"managers"`
	Referees []struct {
		FirstName string `yaml:"first_name"`
		LastName  string `yaml:"last_name"`
		Employed  bool   `yaml:"employed"`
	} `yaml:"referees"`
	TagTeams []struct {
		Name          string   `yaml:"name"`
		SignatureMove *string  `yaml:"signature_move"`
		Wrestlers     []string `yaml:"wrestlers"`
		Employed      bool     `yaml:"employed"`
	} `yaml:"tag_teams"`
	Titles []struct {
		Name  string `yaml:"name"`
		Debut bool   `yaml:"debut"`
	} `yaml:"titles"`
}

type Seeder struct {
	log       *logger.Logger
	wrestlers services.WrestlerService
	managers  services.ManagerService
	referees  services.RefereeService
	teams     services.TagTeamService
	titles    services.TitleService
	venues    services.VenueService
}

func NewSeeder(
	log *logger.Logger,
	wrestlers services.WrestlerService,
	managers services.ManagerService,
	referees services.RefereeService,
	teams services.TagTeamService,
	titles services.TitleService,
	venues services.VenueService,
) *Seeder {
	return &Seeder{
		log:       log.With("service", "Seeder"),
		wrestlers: wrestlers,
		managers:  managers,
		referees:  referees,
		teams:     teams,
		titles:    titles,
		venues:    venues,
	}
}

// Apply loads a YAML seed file and creates whatever is not already
// present. Name conflicts are treated as "already seeded" and skipped.
func (s *Seeder) Apply(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	now := time.Now().UTC()

	for _, v := range file.Venues {
		_, err := s.venues.Create(ctx, services.CreateVenueInput{
			Name:          v.Name,
			StreetAddress: v.StreetAddress,
			City:          v.City,
			State:         v.State,
			Zipcode:       v.Zipcode,
		})
		if s.skipOrFail("venue", v.Name, err) != nil {
			return err
		}
	}

	// Wrestler names feed the tag team sections below, so resolve ids as
	// we go.
	wrestlerIDs := map[string]uuid.UUID{}
	for _, w := range file.Wrestlers {
		created, err := s.wrestlers.Create(ctx, services.CreateWrestlerInput{
			Name:          w.Name,
			HeightFeet:    w.HeightFeet,
			HeightInches:  w.HeightInches,
			WeightLbs:     w.WeightLbs,
			Hometown:      w.Hometown,
			SignatureMove: w.SignatureMove,
		})
		if err != nil {
			if s.skipOrFail("wrestler", w.Name, err) != nil {
				return err
			}
			continue
		}
		wrestlerIDs[w.Name] = created.ID
		if w.Employed {
			if err := s.wrestlers.Employ(ctx, created.ID, now); err != nil {
				return fmt.Errorf("employ wrestler %q: %w", w.Name, err)
			}
		}
	}

	for _, m := range file.Managers {
		created, err := s.managers.Create(ctx, services.CreateManagerInput{
			FirstName: m.FirstName,
			LastName:  m.LastName,
		})
		if err != nil {
			if s.skipOrFail("manager", m.FirstName+" "+m.LastName, err) != nil {
				return err
			}
			continue
		}
		if m.Employed {
			if err := s.managers.Employ(ctx, created.ID, now); err != nil {
				return fmt.Errorf("employ manager %q: %w", m.FirstName+" "+m.LastName, err)
			}
		}
	}

	for _, r := range file.Referees {
		created, err := s.referees.Create(ctx, services.CreateRefereeInput{
			FirstName: r.FirstName,
			LastName:  r.LastName,
		})
		if err != nil {
			if s.skipOrFail("referee", r.FirstName+" "+r.LastName, err) != nil {
				return err
			}
			continue
		}
		if r.Employed {
			if err := s.referees.Employ(ctx, created.ID, now); err != nil {
				return fmt.Errorf("employ referee %q: %w", r.FirstName+" "+r.LastName, err)
			}
		}
	}

	for _, t := range file.TagTeams {
		input := services.CreateTagTeamInput{Name: t.Name, SignatureMove: t.SignatureMove}
		for _, name := range t.Wrestlers {
			id, ok := wrestlerIDs[name]
			if !ok {
				s.log.Warn("tag team references unknown wrestler, skipping member", "team", t.Name, "wrestler", name)
				continue
			}
			input.WrestlerIDs = append(input.WrestlerIDs, id)
		}
		created, err := s.teams.Create(ctx, input)
		if err != nil {
			if s.skipOrFail("tag team", t.Name, err) != nil {
				return err
			}
			continue
		}
		if t.Employed {
			if err := s.teams.Employ(ctx, created.ID, now); err != nil {
				return fmt.Errorf("employ tag team %q: %w", t.Name, err)
			}
		}
	}

	for _, t := range file.Titles {
		created, err := s.titles.Create(ctx, services.CreateTitleInput{Name: t.Name})
		if err != nil {
			if s.skipOrFail("title", t.Name, err) != nil {
				return err
			}
			continue
		}
		if t.Debut {
			if err := s.titles.Debut(ctx, created.ID, now); err != nil {
				return fmt.Errorf("debut title %q: %w", t.Name, err)
			}
		}
	}

	s.log.Info("seed applied", "path", path)
	return nil
}

func (s *Seeder) skipOrFail(kind, name string, err error) error {
	if err == nil {
		return nil
	}
	if apierr.StatusOf(err, 0) == http.StatusConflict {
		s.log.Debug("already seeded, skipping", "kind", kind, "name", name)
		return nil
	}
	return fmt.Errorf("seed %s %q: %w", kind, name, err)
}
