package booking

import (
	"context"
	"evorgs/src/catalog"
	"evorgs/src/models"
	"evorgs/src/types"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// Engine is the booking lifecycle state machine. It is the only component
// that writes Booking.Status; money lives in Ledger and the site-visit
// sub-workflow in VisitScheduler. Every operation is a single
// load-validate-save unit: preconditions are checked against the freshly
// loaded row and the save is a compare-and-swap on Version.
type Engine struct {
	repo     Repository
	catalog  catalog.Resolver
	Payments *Ledger
	Visits   *VisitScheduler
	now      func() time.Time
}

func NewEngine(repo Repository, resolver catalog.Resolver) *Engine {
	return &Engine{
		repo:     repo,
		catalog:  resolver,
		Payments: &Ledger{repo: repo},
		Visits:   &VisitScheduler{repo: repo, now: time.Now},
		now:      time.Now,
	}
}

type CreateParams struct {
	UserID          uint
	ServiceType     types.ServiceType
	ServiceID       uint
	EventDate       time.Time
	EventStartTime  string
	EventEndTime    string
	NumberOfGuests  uint
	SpecialRequests string
	VisitRequested  bool
}

func (e *Engine) Create(ctx context.Context, p CreateParams) (*models.Booking, error) {
	desc, err := e.catalog.Resolve(ctx, p.ServiceType, p.ServiceID)
	if err != nil {
		return nil, err
	}
	total, err := priceFor(desc, p.NumberOfGuests)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		ID:               uuid.New(),
		UserID:           p.UserID,
		VendorID:         desc.VendorID,
		ServiceType:      p.ServiceType,
		ServiceID:        p.ServiceID,
		EventDate:        p.EventDate,
		EventStartTime:   p.EventStartTime,
		EventEndTime:     p.EventEndTime,
		NumberOfGuests:   p.NumberOfGuests,
		SpecialRequests:  p.SpecialRequests,
		TotalAmount:      total,
		Status:           types.BOOKING_PENDING,
		PaymentStatus:    types.PAYMENT_AWAITING_ADVANCE,
		VisitRequested:   p.VisitRequested,
		VisitStatus:      types.VISIT_NOT_REQUESTED,
		BookingReference: NewReference(desc.Name),
		Version:          1,
	}
	if p.VisitRequested {
		booking.VisitStatus = types.VISIT_REQUESTED
	}
	if err := e.repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	log.Printf("Created booking %s (%s) for user %d\n", booking.ID, booking.BookingReference, booking.UserID)
	return booking, nil
}

// priceFor applies the catalog's pricing unit to the booking details.
// per_guest multiplies by the guest count; the other units bill one event,
// one night or one package flat.
func priceFor(desc *catalog.ServiceDescriptor, guests uint) (float64, error) {
	if desc.PricingUnit == types.PRICE_PER_GUEST {
		if guests < 1 {
			return 0, fmt.Errorf("%w: number_of_guests is required for per-guest pricing", ErrInvalidAmount)
		}
		return desc.BasePrice * float64(guests), nil
	}
	return desc.BasePrice, nil
}

func (e *Engine) Confirm(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(booking.Status) {
		return nil, ErrAlreadyTerminal
	}
	if booking.Status != types.BOOKING_PENDING {
		return nil, fmt.Errorf("%w: cannot confirm from %s", ErrInvalidTransition, booking.Status)
	}
	if booking.PaymentStatus != types.PAYMENT_ADVANCE_PAID && booking.PaymentStatus != types.PAYMENT_FULLY_PAID {
		return nil, fmt.Errorf("%w: advance not received", ErrInvalidTransition)
	}
	booking.Status = types.BOOKING_CONFIRMED
	if err := e.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (e *Engine) Complete(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(booking.Status) {
		return nil, ErrAlreadyTerminal
	}
	if booking.Status != types.BOOKING_CONFIRMED {
		return nil, fmt.Errorf("%w: cannot complete from %s", ErrInvalidTransition, booking.Status)
	}
	if booking.PaymentStatus != types.PAYMENT_FULLY_PAID {
		return nil, fmt.Errorf("%w: balance outstanding", ErrInvalidTransition)
	}
	if booking.VisitRequested && booking.VisitStatus != types.VISIT_COMPLETED {
		return nil, fmt.Errorf("%w: requested site visit has not completed", ErrInvalidTransition)
	}
	booking.Status = types.BOOKING_COMPLETED
	if err := e.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (e *Engine) Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.Booking, error) {
	booking, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(booking.Status) {
		return nil, ErrAlreadyTerminal
	}
	refund(booking)
	now := e.now()
	booking.Status = types.BOOKING_CANCELED
	booking.CancellationReason = &reason
	booking.CanceledAt = &now
	if err := e.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	log.Printf("Canceled booking %s: %s\n", booking.ID, reason)
	return booking, nil
}

type DetailUpdates struct {
	EventDate       *time.Time
	EventStartTime  *string
	EventEndTime    *string
	NumberOfGuests  *uint
	SpecialRequests *string
}

// UpdateDetails edits the event attributes, allowed only while the booking
// is still pending. Guest-count changes on per-guest services reprice the
// total, but never below what has already been paid.
func (e *Engine) UpdateDetails(ctx context.Context, id uuid.UUID, u DetailUpdates) (*models.Booking, error) {
	booking, err := e.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(booking.Status) {
		return nil, ErrAlreadyTerminal
	}
	if booking.Status != types.BOOKING_PENDING {
		return nil, fmt.Errorf("%w: details are frozen once confirmed", ErrInvalidTransition)
	}
	if u.EventDate != nil {
		booking.EventDate = *u.EventDate
	}
	if u.EventStartTime != nil {
		booking.EventStartTime = *u.EventStartTime
	}
	if u.EventEndTime != nil {
		booking.EventEndTime = *u.EventEndTime
	}
	if u.SpecialRequests != nil {
		booking.SpecialRequests = *u.SpecialRequests
	}
	if u.NumberOfGuests != nil && *u.NumberOfGuests != booking.NumberOfGuests {
		desc, err := e.catalog.Resolve(ctx, booking.ServiceType, booking.ServiceID)
		if err != nil {
			return nil, err
		}
		total, err := priceFor(desc, *u.NumberOfGuests)
		if err != nil {
			return nil, err
		}
		if total < booking.AdvanceAmount+booking.BalanceAmount {
			return nil, fmt.Errorf("%w: new total is below the amount already paid", ErrAmountExceedsDue)
		}
		booking.NumberOfGuests = *u.NumberOfGuests
		booking.TotalAmount = total
		if booking.PaymentStatus == types.PAYMENT_FULLY_PAID && booking.AdvanceAmount+booking.BalanceAmount < total {
			booking.PaymentStatus = types.PAYMENT_PARTIALLY_PAID
		}
	}
	if err := e.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (e *Engine) Get(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return e.repo.GetByID(ctx, id)
}

func (e *Engine) List(ctx context.Context, f Filters) ([]models.Booking, error) {
	return e.repo.List(ctx, f)
}

func isTerminal(s types.BookingStatus) bool {
	return s == types.BOOKING_COMPLETED || s == types.BOOKING_CANCELED
}
