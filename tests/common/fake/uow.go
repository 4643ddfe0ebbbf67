//go:build unit

// Package fake holds an in-memory UnitOfWork for use case tests. Every
// transaction works on a private copy of the store that replaces it on commit
// and is dropped on error, so rollback is observable.
package fake

import (
	"context"
	"maps"
	"sync"

	"marketplace-api/internal/domain/booking"
	"marketplace-api/internal/domain/business"
	"marketplace-api/internal/domain/rating"
	"marketplace-api/internal/infra"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// Failure points understood by FailOn.
const (
	OpBookingCreate   = "bookings.create"
	OpBookingUpdate   = "bookings.update"
	OpBookingDelete   = "bookings.delete"
	OpBusinessCreate  = "businesses.create"
	OpBusinessUpdate  = "businesses.update"
	OpServiceCreate   = "services.create"
	OpServiceUpdate   = "services.update"
	OpServiceDelete   = "services.delete"
	OpRatingRecompute = "ratings.recompute"
)

type state struct {
	bookings   map[uuid.UUID]*booking.Booking
	businesses map[uuid.UUID]*business.Business
	services   map[uuid.UUID]*business.Service
}

func (s state) clone() state {
	return state{
		bookings:   maps.Clone(s.bookings),
		businesses: maps.Clone(s.businesses),
		services:   maps.Clone(s.services),
	}
}

type UoW struct {
	mu        sync.Mutex
	committed state
	failures  map[string]error

	Commits   int
	Rollbacks int
}

func NewUoW() *UoW {
	return &UoW{
		committed: state{
			bookings:   map[uuid.UUID]*booking.Booking{},
			businesses: map[uuid.UUID]*business.Business{},
			services:   map[uuid.UUID]*business.Service{},
		},
		failures: map[string]error{},
	}
}

// FailOn makes the named write return err until cleared with a nil err.
func (u *UoW) FailOn(op string, err error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err == nil {
		delete(u.failures, op)
		return
	}
	u.failures[op] = err
}

func (u *UoW) SeedBusiness(b *business.Business) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed.businesses[b.ID()] = cloneBusiness(b)
}

func (u *UoW) SeedService(s *business.Service) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed.services[s.ID()] = cloneService(s)
}

func (u *UoW) SeedBooking(b *booking.Booking) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.committed.bookings[b.ID()] = cloneBooking(b)
}

// Booking returns the committed booking, or nil.
func (u *UoW) Booking(id uuid.UUID) *booking.Booking {
	u.mu.Lock()
	defer u.mu.Unlock()
	if b, ok := u.committed.bookings[id]; ok {
		return cloneBooking(b)
	}
	return nil
}

func (u *UoW) Business(id uuid.UUID) *business.Business {
	u.mu.Lock()
	defer u.mu.Unlock()
	if b, ok := u.committed.businesses[id]; ok {
		return cloneBusiness(b)
	}
	return nil
}

func (u *UoW) Service(id uuid.UUID) *business.Service {
	u.mu.Lock()
	defer u.mu.Unlock()
	if s, ok := u.committed.services[id]; ok {
		return cloneService(s)
	}
	return nil
}

func (u *UoW) BookingCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.committed.bookings)
}

// Within serializes transactions; the tests never need real concurrency.
func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	tx := &fakeTx{st: u.committed.clone(), failures: u.failures}
	if err := fn(ctx, tx); err != nil {
		u.Rollbacks++
		return err
	}
	u.committed = tx.st
	u.Commits++
	return nil
}

// CommandReads reads committed state outside any transaction.
func (u *UoW) CommandReads() shared.CommandReads {
	return &committedReads{uow: u}
}

type committedReads struct {
	uow *UoW
}

func (r *committedReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return reads{st: &r.uow.committed}.BookingByID(ctx, id)
}

func (r *committedReads) BusinessByID(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return reads{st: &r.uow.committed}.BusinessByID(ctx, id)
}

func (r *committedReads) ServiceByID(ctx context.Context, id uuid.UUID) (*business.Service, error) {
	r.uow.mu.Lock()
	defer r.uow.mu.Unlock()
	return reads{st: &r.uow.committed}.ServiceByID(ctx, id)
}

type fakeTx struct {
	st       state
	failures map[string]error
}

func (t *fakeTx) fail(op string) error { return t.failures[op] }

func (t *fakeTx) Bookings() shared.BookingRepository    { return bookingRepo{t} }
func (t *fakeTx) Businesses() shared.BusinessRepository { return businessRepo{t} }
func (t *fakeTx) Services() shared.ServiceRepository    { return serviceRepo{t} }
func (t *fakeTx) Ratings() shared.RatingRepository      { return ratingRepo{t} }
func (t *fakeTx) Reads() shared.CommandReads            { return reads{st: &t.st} }

type reads struct {
	st *state
}

func (r reads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.st.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return cloneBooking(b), nil
}

func (r reads) BusinessByID(_ context.Context, id uuid.UUID) (*business.Business, error) {
	b, ok := r.st.businesses[id]
	if !ok {
		return nil, infra.NotFound("business not found")
	}
	return cloneBusiness(b), nil
}

func (r reads) ServiceByID(_ context.Context, id uuid.UUID) (*business.Service, error) {
	s, ok := r.st.services[id]
	if !ok {
		return nil, infra.NotFound("service not found")
	}
	return cloneService(s), nil
}

type bookingRepo struct{ tx *fakeTx }

func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.tx.fail(OpBookingCreate); err != nil {
		return err
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if err := r.tx.fail(OpBookingUpdate); err != nil {
		return err
	}
	if _, ok := r.tx.st.bookings[b.ID()]; !ok {
		return infra.NotFound("booking not found")
	}
	r.tx.st.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r bookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.tx.fail(OpBookingDelete); err != nil {
		return err
	}
	if _, ok := r.tx.st.bookings[id]; !ok {
		return infra.NotFound("booking not found")
	}
	delete(r.tx.st.bookings, id)
	return nil
}

type businessRepo struct{ tx *fakeTx }

func (r businessRepo) Create(_ context.Context, b *business.Business) error {
	if err := r.tx.fail(OpBusinessCreate); err != nil {
		return err
	}
	r.tx.st.businesses[b.ID()] = cloneBusiness(b)
	return nil
}

func (r businessRepo) Update(_ context.Context, b *business.Business) error {
	if err := r.tx.fail(OpBusinessUpdate); err != nil {
		return err
	}
	if _, ok := r.tx.st.businesses[b.ID()]; !ok {
		return infra.NotFound("business not found")
	}
	r.tx.st.businesses[b.ID()] = cloneBusiness(b)
	return nil
}

type serviceRepo struct{ tx *fakeTx }

func (r serviceRepo) Create(_ context.Context, s *business.Service) error {
	if err := r.tx.fail(OpServiceCreate); err != nil {
		return err
	}
	r.tx.st.services[s.ID()] = cloneService(s)
	return nil
}

func (r serviceRepo) Update(_ context.Context, s *business.Service) error {
	if err := r.tx.fail(OpServiceUpdate); err != nil {
		return err
	}
	if _, ok := r.tx.st.services[s.ID()]; !ok {
		return infra.NotFound("service not found")
	}
	r.tx.st.services[s.ID()] = cloneService(s)
	return nil
}

// Delete detaches bookings from the service like ON DELETE SET NULL; their
// snapshot stays.
func (r serviceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if err := r.tx.fail(OpServiceDelete); err != nil {
		return err
	}
	if _, ok := r.tx.st.services[id]; !ok {
		return infra.NotFound("service not found")
	}
	delete(r.tx.st.services, id)
	for bid, b := range r.tx.st.bookings {
		if b.Service().ID == id {
			r.tx.st.bookings[bid] = withoutService(b)
		}
	}
	return nil
}

type ratingRepo struct{ tx *fakeTx }

func (r ratingRepo) Recompute(_ context.Context, businessID uuid.UUID) (rating.Summary, error) {
	if err := r.tx.fail(OpRatingRecompute); err != nil {
		return rating.Summary{}, err
	}
	biz, ok := r.tx.st.businesses[businessID]
	if !ok {
		return rating.Summary{}, infra.NotFound("business not found")
	}
	var values []int
	for _, b := range r.tx.st.bookings {
		if b.BusinessID() == businessID && b.HasRating() {
			values = append(values, *b.RatingValue())
		}
	}
	summary := rating.Aggregate(values)
	updated := cloneBusiness(biz)
	updated.SetRating(summary.Average, summary.Count, biz.UpdatedAt())
	r.tx.st.businesses[businessID] = updated
	return summary, nil
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	return booking.Reconstruct(bookingParams(b))
}

func withoutService(b *booking.Booking) *booking.Booking {
	p := bookingParams(b)
	p.Service.ID = uuid.Nil
	return booking.Reconstruct(p)
}

func bookingParams(b *booking.Booking) booking.ReconstructParams {
	return booking.ReconstructParams{
		ID:                 b.ID(),
		UserID:             b.UserID(),
		BusinessID:         b.BusinessID(),
		Service:            b.Service(),
		Date:               b.Date(),
		StartTime:          b.StartTime(),
		EndTime:            b.EndTime(),
		Status:             b.Status(),
		PaymentStatus:      b.PaymentStatus(),
		TotalPriceCents:    b.TotalPriceCents(),
		Rating:             b.RatingValue(),
		Review:             b.ReviewText(),
		CancellationReason: b.CancellationReason(),
		Notes:              b.Notes(),
		CreatedAt:          b.CreatedAt(),
		UpdatedAt:          b.UpdatedAt(),
	}
}

func cloneBusiness(b *business.Business) *business.Business {
	return business.Reconstruct(business.ReconstructParams{
		ID:           b.ID(),
		OwnerID:      b.OwnerID(),
		Name:         b.Name(),
		Description:  b.Description(),
		Address:      b.Address(),
		Phone:        b.Phone(),
		WorkingHours: maps.Clone(b.WorkingHours()),
		Employees:    b.Employees(),
		Rating:       b.Rating(),
		NumReviews:   b.NumReviews(),
		CreatedAt:    b.CreatedAt(),
		UpdatedAt:    b.UpdatedAt(),
	})
}

func cloneService(s *business.Service) *business.Service {
	return business.ReconstructService(
		s.ID(), s.BusinessID(),
		s.Name(), s.Description(),
		s.PriceCents(), s.DurationMinutes(), s.Active(),
		s.CreatedAt(), s.UpdatedAt(),
	)
}

// Publisher records events instead of sending them.
type Publisher struct {
	mu     sync.Mutex
	Err    error
	Events []shared.BookingEvent
}

func (p *Publisher) Publish(_ context.Context, ev shared.BookingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, ev)
	return nil
}

func (p *Publisher) Types() []shared.BookingEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.BookingEventType, len(p.Events))
	for i, ev := range p.Events {
		out[i] = ev.Type
	}
	return out
}
