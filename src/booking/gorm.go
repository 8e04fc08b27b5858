package booking

import (
	"context"
	"errors"
	"evorgs/src/models"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormRepository persists bookings in postgres. The version check rides on
// the UPDATE's WHERE clause so the compare-and-swap needs no row locks.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(&models.Booking{ID: id}).
		First(&booking).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (r *GormRepository) List(ctx context.Context, f Filters) ([]models.Booking, error) {
	q := r.db.WithContext(ctx).Model(&models.Booking{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ServiceType != "" {
		q = q.Where("service_type = ?", f.ServiceType)
	}
	if f.UserID != 0 {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.VendorID != 0 {
		q = q.Where("vendor_id = ?", f.VendorID)
	}
	if f.DateFrom != nil {
		q = q.Where("event_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		q = q.Where("event_date <= ?", *f.DateTo)
	}
	limit := f.Limit
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	var bookings []models.Booking
	err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(f.Offset).
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *GormRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *GormRepository) Save(ctx context.Context, booking *models.Booking) error {
	fields := map[string]any{
		"event_date":          booking.EventDate,
		"event_start_time":    booking.EventStartTime,
		"event_end_time":      booking.EventEndTime,
		"number_of_guests":    booking.NumberOfGuests,
		"special_requests":    booking.SpecialRequests,
		"total_amount":        booking.TotalAmount,
		"advance_amount":      booking.AdvanceAmount,
		"balance_amount":      booking.BalanceAmount,
		"status":              booking.Status,
		"payment_status":      booking.PaymentStatus,
		"visit_requested":     booking.VisitRequested,
		"visit_status":        booking.VisitStatus,
		"visit_preferred_for": booking.VisitPreferredFor,
		"visit_scheduled_for": booking.VisitScheduledFor,
		"cancellation_reason": booking.CancellationReason,
		"canceled_at":         booking.CanceledAt,
		"updated_at":          time.Now(),
		"version":             booking.Version + 1,
	}
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND version = ?", booking.ID, booking.Version).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish a lost race from a vanished row.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConcurrentModification
	}
	booking.Version++
	return nil
}
