package business

import (
	"strings"
	"time"

	"marketplace-api/internal/pkg/patch"

	"github.com/google/uuid"
)

// Service is something a business sells. Bookings copy its name, price and
// duration at creation time.
type Service struct {
	id              uuid.UUID
	businessID      uuid.UUID
	name            string
	description     string
	priceCents      int64
	durationMinutes int
	active          bool
	createdAt       time.Time
	updatedAt       time.Time
}

type ServiceInput struct {
	Name            string
	Description     string
	PriceCents      int64
	DurationMinutes int
}

func NewService(businessID uuid.UUID, in ServiceInput, now time.Time) (*Service, error) {
	s := &Service{
		id:         uuid.New(),
		businessID: businessID,
		active:     true,
		createdAt:  now,
		updatedAt:  now,
	}
	if err := s.set(in.Name, in.Description, in.PriceCents, in.DurationMinutes); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructService(
	id, businessID uuid.UUID,
	name, description string,
	priceCents int64,
	durationMinutes int,
	active bool,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:              id,
		businessID:      businessID,
		name:            name,
		description:     description,
		priceCents:      priceCents,
		durationMinutes: durationMinutes,
		active:          active,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

type ServiceUpdate struct {
	Name            patch.Field[string]
	Description     patch.Field[string]
	PriceCents      patch.Field[int64]
	DurationMinutes patch.Field[int]
	Active          patch.Field[bool]
}

// Update changes the catalogue entry only. Existing bookings keep their
// snapshot.
func (s *Service) Update(u ServiceUpdate, now time.Time) error {
	err := s.set(
		u.Name.Apply(s.name),
		u.Description.Apply(s.description),
		u.PriceCents.Apply(s.priceCents),
		u.DurationMinutes.Apply(s.durationMinutes),
	)
	if err != nil {
		return err
	}
	s.active = u.Active.Apply(s.active)
	s.updatedAt = now
	return nil
}

func (s *Service) set(name, description string, priceCents int64, durationMinutes int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrServiceNameRequired
	}
	if priceCents < 0 {
		return ErrInvalidPrice
	}
	if durationMinutes <= 0 {
		return ErrInvalidDuration
	}
	s.name = name
	s.description = strings.TrimSpace(description)
	s.priceCents = priceCents
	s.durationMinutes = durationMinutes
	return nil
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) BusinessID() uuid.UUID { return s.businessID }
func (s *Service) Name() string          { return s.name }
func (s *Service) Description() string   { return s.description }
func (s *Service) PriceCents() int64     { return s.priceCents }
func (s *Service) DurationMinutes() int  { return s.durationMinutes }
func (s *Service) Active() bool          { return s.active }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }
func (s *Service) UpdatedAt() time.Time  { return s.updatedAt }
