// Package testfixtures provides in-memory implementations of the repositories
// and collaborators used by services, usecases and handlers in tests.
package testfixtures

import (
	"context"
	"sort"
	"sync"

	"github.com/m04kA/SMC-AssistantBooking/internal/domain"
	assistantRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/assistant"
	periodRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/period"
	resourceRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/resource"
	reservationRepo "github.com/m04kA/SMC-AssistantBooking/internal/infra/storage/reservation"
)

// Store holds every entity behind one mutex. Values are copied on the way in
// and out so callers never share slices with the store.
type Store struct {
	mu           sync.Mutex
	periods      map[string]domain.Period
	resources    map[string]domain.Resource
	reservations map[string]domain.Reservation
	assistants   map[string]domain.Assistant
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		periods:      make(map[string]domain.Period),
		resources:    make(map[string]domain.Resource),
		reservations: make(map[string]domain.Reservation),
		assistants:   make(map[string]domain.Assistant),
	}
}

// PutPeriod seeds a period
func (s *Store) PutPeriod(p domain.Period) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods[p.ID] = p
}

// PutResource seeds a resource
func (s *Store) PutResource(r domain.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[r.ID] = copyResource(r)
}

// PutReservation seeds a reservation
func (s *Store) PutReservation(r domain.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[r.ID] = r
}

// PutAssistant seeds an assistant
func (s *Store) PutAssistant(a domain.Assistant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assistants[a.ID] = a
}

// Resource returns a copy of the stored resource
func (s *Store) Resource(id string) (domain.Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.resources[id]
	return copyResource(r), ok
}

// Reservation returns a copy of the stored reservation
func (s *Store) Reservation(id string) (domain.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	return r, ok
}

// Assistant returns a copy of the stored assistant
func (s *Store) Assistant(id string) (domain.Assistant, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.assistants[id]
	return a, ok
}

// Period returns a copy of the stored period
func (s *Store) Period(id string) (domain.Period, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.periods[id]
	return p, ok
}

// PeriodRepo in-memory period repository
type PeriodRepo struct {
	Store *Store
	Err   error
}

func (r *PeriodRepo) GetByID(_ context.Context, id string) (*domain.Period, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	p, ok := r.Store.Period(id)
	if !ok {
		return nil, periodRepo.ErrPeriodNotFound
	}
	return &p, nil
}

func (r *PeriodRepo) UpdateStatus(_ context.Context, id string, status domain.PeriodStatus) error {
	if r.Err != nil {
		return r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	p, ok := r.Store.periods[id]
	if !ok {
		return periodRepo.ErrPeriodNotFound
	}
	p.Status = status
	r.Store.periods[id] = p
	return nil
}

func (r *PeriodRepo) Create(_ context.Context, p *domain.Period) (*domain.Period, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Store.PutPeriod(*p)
	return p, nil
}

// List orders by From descending like the SQL repository
func (r *PeriodRepo) List(_ context.Context, filter domain.PeriodFilter) ([]*domain.Period, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	out := make([]*domain.Period, 0)
	for _, p := range r.Store.periods {
		if filter.Status != nil && p.Status != *filter.Status {
			continue
		}
		p := p
		out = append(out, &p)
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].From.Equal(out[j].From) {
			return out[i].From.After(out[j].From)
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// ResourceRepo in-memory resource repository
type ResourceRepo struct {
	Store *Store
	Err   error
}

func (r *ResourceRepo) Create(_ context.Context, res *domain.Resource) (*domain.Resource, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Store.PutResource(*res)
	return res, nil
}

func (r *ResourceRepo) GetByID(_ context.Context, id string) (*domain.Resource, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	res, ok := r.Store.Resource(id)
	if !ok {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return &res, nil
}

func (r *ResourceRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Resource, error) {
	return r.GetByID(ctx, id)
}

func (r *ResourceRepo) UpdateLedger(_ context.Context, id string, ledger domain.Ledger) error {
	if r.Err != nil {
		return r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	res, ok := r.Store.resources[id]
	if !ok {
		return resourceRepo.ErrResourceNotFound
	}
	res.Ledger = ledger
	r.Store.resources[id] = copyResource(res)
	return nil
}

func (r *ResourceRepo) List(_ context.Context, filter domain.ResourceFilter) ([]*domain.Resource, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	out := make([]*domain.Resource, 0)
	for _, res := range r.Store.resources {
		if filter.Kind != nil && res.Kind != *filter.Kind {
			continue
		}
		if filter.PeriodID != nil && res.PeriodID != *filter.PeriodID {
			continue
		}
		if filter.FromDate != nil && res.Date.Before(*filter.FromDate) {
			continue
		}
		if filter.PeriodStatus != nil {
			p, ok := r.Store.periods[res.PeriodID]
			if !ok || p.Status != *filter.PeriodStatus {
				continue
			}
		}
		res := copyResource(res)
		out = append(out, &res)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		if a.StartTime != b.StartTime {
			return a.StartTime < b.StartTime
		}
		return a.ID < b.ID
	})
	return out, nil
}

// Delete removes the resource and cascades to its reservations
func (r *ResourceRepo) Delete(_ context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	if _, ok := r.Store.resources[id]; !ok {
		return resourceRepo.ErrResourceNotFound
	}
	delete(r.Store.resources, id)
	for rid, res := range r.Store.reservations {
		if res.ResourceID == id {
			delete(r.Store.reservations, rid)
		}
	}
	return nil
}

// ReservationRepo in-memory reservation repository
type ReservationRepo struct {
	Store *Store
	Err   error
}

func (r *ReservationRepo) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Store.PutReservation(*res)
	return res, nil
}

func (r *ReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	res, ok := r.Store.Reservation(id)
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return &res, nil
}

func (r *ReservationRepo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.GetByID(ctx, id)
}

func (r *ReservationRepo) Update(_ context.Context, res *domain.Reservation) error {
	if r.Err != nil {
		return r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	if _, ok := r.Store.reservations[res.ID]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	r.Store.reservations[res.ID] = *res
	return nil
}

func (r *ReservationRepo) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	out := make([]*domain.Reservation, 0)
	for _, res := range r.Store.reservations {
		if !matches(res, filter) {
			continue
		}
		res := res
		out = append(out, &res)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.ResourceDate.Equal(b.ResourceDate) {
			return a.ResourceDate.Before(b.ResourceDate)
		}
		if a.ResourceTime != b.ResourceTime {
			return a.ResourceTime < b.ResourceTime
		}
		if !a.BookedAt.Equal(b.BookedAt) {
			return a.BookedAt.Before(b.BookedAt)
		}
		return a.ID < b.ID
	})
	return out, nil
}

// AssistantRepo in-memory assistant repository
type AssistantRepo struct {
	Store *Store
	Err   error
}

func (r *AssistantRepo) GetByID(_ context.Context, id string) (*domain.Assistant, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	a, ok := r.Store.Assistant(id)
	if !ok {
		return nil, assistantRepo.ErrAssistantNotFound
	}
	return &a, nil
}

func (r *AssistantRepo) SetDisabled(_ context.Context, id string, disabled bool) error {
	if r.Err != nil {
		return r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	a, ok := r.Store.assistants[id]
	if !ok {
		return assistantRepo.ErrAssistantNotFound
	}
	a.Disabled = disabled
	r.Store.assistants[id] = a
	return nil
}

func (r *AssistantRepo) Delete(_ context.Context, id string) error {
	if r.Err != nil {
		return r.Err
	}
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()
	if _, ok := r.Store.assistants[id]; !ok {
		return assistantRepo.ErrAssistantNotFound
	}
	delete(r.Store.assistants, id)
	return nil
}

func matches(res domain.Reservation, f domain.ReservationFilter) bool {
	if f.Kind != nil && res.Kind != *f.Kind {
		return false
	}
	if f.ResourceID != nil && res.ResourceID != *f.ResourceID {
		return false
	}
	if f.PeriodID != nil && res.PeriodID != *f.PeriodID {
		return false
	}
	if f.AssistantID != nil && res.AssistantID != *f.AssistantID {
		return false
	}
	if f.FromDate != nil && res.ResourceDate.Before(*f.FromDate) {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, s := range f.Statuses {
			if res.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func copyResource(r domain.Resource) domain.Resource {
	r.Ledger = domain.Ledger{
		Slots:       append([]int(nil), r.Ledger.Slots...),
		Allocations: append([]int(nil), r.Ledger.Allocations...),
		Accepted:    append([]string{}, r.Ledger.Accepted...),
	}
	return r
}
