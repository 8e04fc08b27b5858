package types

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

type Timestamps struct {
	CreatedAt time.Time      `gorm:"autoCreateTime:nano" json:"created_at,omitempty"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime:nano" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty,omitnil"`
}

type ServiceType string

const (
	SERVICE_VENUE       ServiceType = "venue"
	SERVICE_FARMHOUSE   ServiceType = "farmhouse"
	SERVICE_CATERING    ServiceType = "catering"
	SERVICE_PHOTOGRAPHY ServiceType = "photography"
)

type PricingUnit string

const (
	PRICE_PER_EVENT   PricingUnit = "per_event"
	PRICE_PER_NIGHT   PricingUnit = "per_night"
	PRICE_PER_GUEST   PricingUnit = "per_guest"
	PRICE_PER_PACKAGE PricingUnit = "per_package"
)

type BookingStatus string

const (
	BOOKING_PENDING   BookingStatus = "pending"
	BOOKING_CONFIRMED BookingStatus = "confirmed"
	BOOKING_COMPLETED BookingStatus = "completed"
	BOOKING_CANCELED  BookingStatus = "canceled"
)

type PaymentStatus string

const (
	PAYMENT_AWAITING_ADVANCE PaymentStatus = "awaiting_advance"
	PAYMENT_ADVANCE_PAID     PaymentStatus = "advance_paid"
	PAYMENT_PARTIALLY_PAID   PaymentStatus = "partially_paid"
	PAYMENT_FULLY_PAID       PaymentStatus = "fully_paid"
	PAYMENT_REFUNDED         PaymentStatus = "refunded"
	PAYMENT_CANCELED         PaymentStatus = "canceled"
)

type VisitStatus string

const (
	VISIT_NOT_REQUESTED VisitStatus = "not_requested"
	VISIT_REQUESTED     VisitStatus = "requested"
	VISIT_SCHEDULED     VisitStatus = "scheduled"
	VISIT_COMPLETED     VisitStatus = "completed"
)

type CreateBookingRequestBody struct {
	ServiceType     string `json:"service_type" binding:"required,oneof=venue farmhouse catering photography"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	EventDate       string `json:"event_date" binding:"required,bookabledate"`
	EventStartTime  string `json:"event_start_time,omitempty" binding:"omitempty,timeofday"`
	EventEndTime    string `json:"event_end_time,omitempty" binding:"omitempty,timeofday"`
	NumberOfGuests  uint   `json:"number_of_guests,omitempty"`
	SpecialRequests string `json:"special_requests,omitempty"`
	VisitRequested  bool   `json:"visit_requested,omitempty"`
}

type UpdateBookingRequestBody struct {
	EventDate       *string `json:"event_date,omitempty" binding:"omitempty,bookabledate"`
	EventStartTime  *string `json:"event_start_time,omitempty" binding:"omitempty,timeofday"`
	EventEndTime    *string `json:"event_end_time,omitempty" binding:"omitempty,timeofday"`
	NumberOfGuests  *uint   `json:"number_of_guests,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type CancelBookingRequestBody struct {
	Reason string `json:"reason" binding:"required"`
}

type PaymentRequestBody struct {
	Amount float64 `json:"amount" binding:"required"`
}

type RequestVisitRequestBody struct {
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredTime string `json:"preferred_time" binding:"required,timeofday"`
}

type ScheduleVisitRequestBody struct {
	ScheduledDate string `json:"scheduled_date" binding:"required"`
	ScheduledTime string `json:"scheduled_time" binding:"required,timeofday"`
}

type BookingQueryFilters struct {
	Status      string `form:"status" binding:"omitempty,oneof=pending confirmed completed canceled"`
	ServiceType string `form:"service_type" binding:"omitempty,oneof=venue farmhouse catering photography"`
	From        string `form:"from" binding:"omitempty"`
	To          string `form:"to" binding:"omitempty"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset      int    `form:"offset" binding:"omitempty,min=0"`
}

type BookingURIParams struct {
	ID string `uri:"id" binding:"required,uuid"`
}

type ServiceURIParams struct {
	Type string `uri:"type" binding:"required,oneof=venue farmhouse catering photography"`
	ID   uint   `uri:"id" binding:"required"`
}

type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Vendor   uint   `json:"vendor,omitempty"`
	jwt.RegisteredClaims
}
