package models

import (
	"evorgs/src/types"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID       uuid.UUID         `gorm:"type:uuid;primarykey" json:"id"`
	UserID   uint              `json:"user_id,omitempty"`
	VendorID uint              `json:"vendor_id,omitempty"`
	// ServiceType names the catalog ServiceID points into; it is never
	// inferred from the shape of the referenced row.
	ServiceType types.ServiceType `json:"service_type,omitempty"`
	ServiceID   uint              `json:"service_id,omitempty"`

	EventDate       time.Time `json:"event_date,omitempty"`
	EventStartTime  string    `json:"event_start_time,omitempty"`
	EventEndTime    string    `json:"event_end_time,omitempty"`
	NumberOfGuests  uint      `json:"number_of_guests,omitempty"`
	SpecialRequests string    `json:"special_requests,omitempty"`

	TotalAmount   float64 `json:"total_amount"`
	AdvanceAmount float64 `json:"advance_amount"`
	BalanceAmount float64 `json:"balance_amount"`

	Status        types.BookingStatus `gorm:"default:'pending'" json:"status,omitempty"`
	PaymentStatus types.PaymentStatus `gorm:"default:'awaiting_advance'" json:"payment_status,omitempty"`

	VisitRequested    bool              `json:"visit_requested"`
	VisitStatus       types.VisitStatus `gorm:"default:'not_requested'" json:"visit_status,omitempty"`
	VisitPreferredFor *time.Time        `json:"visit_preferred_for,omitempty"`
	VisitScheduledFor *time.Time        `json:"visit_scheduled_for,omitempty"`

	CancellationReason *string    `json:"cancellation_reason,omitempty"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`

	BookingReference string `gorm:"uniqueIndex" json:"booking_reference,omitempty"`
	Version          uint   `gorm:"default:1" json:"version"`

	types.Timestamps
}
