package booking

import (
	"context"
	"evorgs/src/models"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is the reference Repository implementation. All reads
// return copies so callers can never mutate a stored booking without going
// through Save.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]models.Booking
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{bookings: make(map[uuid.UUID]models.Booking)}
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b := clone(stored)
	return &b, nil
}

func (r *MemoryRepository) List(_ context.Context, f Filters) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Booking, 0)
	for _, b := range r.bookings {
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.ServiceType != "" && b.ServiceType != f.ServiceType {
			continue
		}
		if f.UserID != 0 && b.UserID != f.UserID {
			continue
		}
		if f.VendorID != 0 && b.VendorID != f.VendorID {
			continue
		}
		if f.DateFrom != nil && b.EventDate.Before(*f.DateFrom) {
			continue
		}
		if f.DateTo != nil && b.EventDate.After(*f.DateTo) {
			continue
		}
		matched = append(matched, clone(b))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	limit := f.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if f.Offset >= len(matched) {
		return []models.Booking{}, nil
	}
	matched = matched[f.Offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *MemoryRepository) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[booking.ID]; ok {
		return fmt.Errorf("booking %s already exists", booking.ID)
	}
	if booking.Version == 0 {
		booking.Version = 1
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	r.bookings[booking.ID] = clone(*booking)
	return nil
}

func (r *MemoryRepository) Save(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.bookings[booking.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != booking.Version {
		return ErrConcurrentModification
	}
	booking.Version++
	booking.UpdatedAt = time.Now()
	r.bookings[booking.ID] = clone(*booking)
	return nil
}

func clone(b models.Booking) models.Booking {
	c := b
	if b.VisitPreferredFor != nil {
		t := *b.VisitPreferredFor
		c.VisitPreferredFor = &t
	}
	if b.VisitScheduledFor != nil {
		t := *b.VisitScheduledFor
		c.VisitScheduledFor = &t
	}
	if b.CanceledAt != nil {
		t := *b.CanceledAt
		c.CanceledAt = &t
	}
	if b.CancellationReason != nil {
		s := *b.CancellationReason
		c.CancellationReason = &s
	}
	return c
}
