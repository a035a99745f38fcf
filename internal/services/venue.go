package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/squaredcircle/promoter-backend/internal/apierr"
	"github.com/squaredcircle/promoter-backend/internal/logger"
	"github.com/squaredcircle/promoter-backend/internal/repos"
	"github.com/squaredcircle/promoter-backend/internal/types"
)

type CreateVenueInput struct {
	Name          string `json:"name"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Zipcode       string `json:"zipcode"`
}

type UpdateVenueInput struct {
	Name          *string `json:"name,omitempty"`
	StreetAddress *string `json:"street_address,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
	Zipcode       *string `json:"zipcode,omitempty"`
}

type VenueService interface {
	Create(ctx context.Context, input CreateVenueInput) (*types.Venue, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateVenueInput) (*types.Venue, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Venue, error)
	List(ctx context.Context) ([]*types.Venue, error)
	Archive(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) error
}

type venueService struct {
	db     *gorm.DB
	log    *logger.Logger
	venues repos.VenueRepo
}

func NewVenueService(db *gorm.DB, log *logger.Logger, venues repos.VenueRepo) VenueService {
	return &venueService{
		db:     db,
		log:    log.With("service", "VenueService"),
		venues: venues,
	}
}

func validateZipcode(zip string) error {
	if len(zip) != 5 {
		return apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("zipcode must be 5 digits"))
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("zipcode must be 5 digits"))
		}
	}
	return nil
}

func (vs *venueService) Create(ctx context.Context, input CreateVenueInput) (*types.Venue, error) {
	if input.Name == "" || input.StreetAddress == "" || input.City == "" || input.State == "" {
		return nil, apierr.New(http.StatusBadRequest, "invalid_input", fmt.Errorf("name and address fields are required"))
	}
	if err := validateZipcode(input.Zipcode); err != nil {
		return nil, err
	}
	existing, err := vs.venues.GetByName(ctx, nil, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("venue name %q is already in use", input.Name))
	}
	return vs.venues.Create(ctx, nil, &types.Venue{
		Name:          input.Name,
		StreetAddress: input.StreetAddress,
		City:          input.City,
		State:         input.State,
		Zipcode:       input.Zipcode,
	})
}

func (vs *venueService) Update(ctx context.Context, id uuid.UUID, input UpdateVenueInput) (*types.Venue, error) {
	v, err := vs.venues.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("venue %s not found", id))
	}
	if input.Name != nil && *input.Name != v.Name {
		existing, err := vs.venues.GetByName(ctx, nil, *input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apierr.New(http.StatusConflict, "name_taken", fmt.Errorf("venue name %q is already in use", *input.Name))
		}
		v.Name = *input.Name
	}
	if input.StreetAddress != nil {
		v.StreetAddress = *input.StreetAddress
	}
	if input.City != nil {
		v.City = *input.City
	}
	if input.State != nil {
		v.State = *input.State
	}
	if input.Zipcode != nil {
		if err := validateZipcode(*input.Zipcode); err != nil {
			return nil, err
		}
		v.Zipcode = *input.Zipcode
	}
	return vs.venues.Update(ctx, nil, v)
}

func (vs *venueService) Get(ctx context.Context, id uuid.UUID) (*types.Venue, error) {
	v, err := vs.venues.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("venue %s not found", id))
	}
	return v, nil
}

func (vs *venueService) List(ctx context.Context) ([]*types.Venue, error) {
	return vs.venues.List(ctx, nil)
}

func (vs *venueService) Archive(ctx context.Context, id uuid.UUID) error {
	v, err := vs.venues.GetByID(ctx, nil, id)
	if err != nil {
		return err
	}
	if v == nil {
		return apierr.New(http.StatusNotFound, "not_found", fmt.Errorf("venue %s not found", id))
	}
	return vs.venues.Archive(ctx, nil, id)
}

func (vs *venueService) Restore(ctx context.Context, id uuid.UUID) error {
	return vs.venues.Restore(ctx, nil, id)
}
