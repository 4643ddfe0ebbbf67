package business

import (
	"slices"
	"strings"
	"time"

	"marketplace-api/internal/domain/schedule"
	"marketplace-api/internal/pkg/patch"

	"github.com/google/uuid"
)

type Business struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         string
	description  string
	address      string
	phone        string
	workingHours schedule.WorkingHours
	employees    []Employee
	rating       float64
	numReviews   int
	createdAt    time.Time
	updatedAt    time.Time
}

type Profile struct {
	Name         string
	Description  string
	Address      string
	Phone        string
	WorkingHours schedule.WorkingHours
}

func NewBusiness(ownerID uuid.UUID, p Profile, now time.Time) (*Business, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if err := p.WorkingHours.Validate(); err != nil {
		return nil, err
	}
	return &Business{
		id:           uuid.New(),
		ownerID:      ownerID,
		name:         name,
		description:  strings.TrimSpace(p.Description),
		address:      strings.TrimSpace(p.Address),
		phone:        strings.TrimSpace(p.Phone),
		workingHours: p.WorkingHours,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

type ReconstructParams struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	Description  string
	Address      string
	Phone        string
	WorkingHours schedule.WorkingHours
	Employees    []Employee
	Rating       float64
	NumReviews   int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func Reconstruct(p ReconstructParams) *Business {
	return &Business{
		id:           p.ID,
		ownerID:      p.OwnerID,
		name:         p.Name,
		description:  p.Description,
		address:      p.Address,
		phone:        p.Phone,
		workingHours: p.WorkingHours,
		employees:    p.Employees,
		rating:       p.Rating,
		numReviews:   p.NumReviews,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}
}

// ProfileUpdate distinguishes an absent field from an explicit null or empty
// value. Null and "" both clear the optional text fields; the name can never
// be cleared.
type ProfileUpdate struct {
	Name         patch.Field[string]
	Description  patch.Field[string]
	Address      patch.Field[string]
	Phone        patch.Field[string]
	WorkingHours patch.Field[schedule.WorkingHours]
}

func (b *Business) UpdateProfile(u ProfileUpdate, now time.Time) error {
	name := b.name
	if u.Name.Set {
		name = strings.TrimSpace(u.Name.Value)
		if name == "" {
			return ErrNameRequired
		}
	}
	hours := b.workingHours
	if u.WorkingHours.Set {
		hours = u.WorkingHours.Value
		if err := hours.Validate(); err != nil {
			return err
		}
	}

	b.name = name
	b.workingHours = hours
	b.description = strings.TrimSpace(u.Description.Apply(b.description))
	b.address = strings.TrimSpace(u.Address.Apply(b.address))
	b.phone = strings.TrimSpace(u.Phone.Apply(b.phone))
	b.updatedAt = now
	return nil
}

// SetRating stores an aggregate computed from the business's bookings.
func (b *Business) SetRating(average float64, count int, now time.Time) {
	b.rating = average
	b.numReviews = count
	b.updatedAt = now
}

func (b *Business) IsOwner(userID uuid.UUID) bool { return b.ownerID == userID }

func (b *Business) ID() uuid.UUID                       { return b.id }
func (b *Business) OwnerID() uuid.UUID                  { return b.ownerID }
func (b *Business) Name() string                        { return b.name }
func (b *Business) Description() string                 { return b.description }
func (b *Business) Address() string                     { return b.address }
func (b *Business) Phone() string                       { return b.phone }
func (b *Business) WorkingHours() schedule.WorkingHours { return b.workingHours }
func (b *Business) Employees() []Employee               { return slices.Clone(b.employees) }
func (b *Business) Rating() float64                     { return b.rating }
func (b *Business) NumReviews() int                     { return b.numReviews }
func (b *Business) CreatedAt() time.Time                { return b.createdAt }
func (b *Business) UpdatedAt() time.Time                { return b.updatedAt }
