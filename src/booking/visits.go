package booking

import (
	"context"
	"evorgs/src/models"
	"evorgs/src/types"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// VisitScheduler owns the optional pre-booking site visit. The workflow only
// moves forward: not_requested -> requested -> scheduled -> completed. It
// never touches Booking.Status or the money fields.
type VisitScheduler struct {
	repo Repository
	now  func() time.Time
}

func (v *VisitScheduler) Request(ctx context.Context, id uuid.UUID, preferredFor time.Time) (*models.Booking, error) {
	booking, err := v.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status != types.BOOKING_PENDING {
		return nil, fmt.Errorf("%w: visits can only be requested while pending", ErrInvalidVisitTransition)
	}
	if booking.VisitStatus != types.VISIT_NOT_REQUESTED {
		return nil, fmt.Errorf("%w: visit already requested", ErrInvalidVisitTransition)
	}
	booking.VisitRequested = true
	booking.VisitStatus = types.VISIT_REQUESTED
	booking.VisitPreferredFor = &preferredFor
	if err := v.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (v *VisitScheduler) Schedule(ctx context.Context, id uuid.UUID, scheduledFor time.Time) (*models.Booking, error) {
	booking, err := v.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(booking.Status) {
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidVisitTransition, booking.Status)
	}
	if booking.VisitStatus != types.VISIT_REQUESTED {
		return nil, fmt.Errorf("%w: visit is %s", ErrInvalidVisitTransition, booking.VisitStatus)
	}
	booking.VisitStatus = types.VISIT_SCHEDULED
	booking.VisitScheduledFor = &scheduledFor
	if err := v.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (v *VisitScheduler) Complete(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := v.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if isTerminal(booking.Status) {
		return nil, fmt.Errorf("%w: booking is %s", ErrInvalidVisitTransition, booking.Status)
	}
	if booking.VisitStatus != types.VISIT_SCHEDULED || booking.VisitScheduledFor == nil {
		return nil, fmt.Errorf("%w: visit is %s", ErrInvalidVisitTransition, booking.VisitStatus)
	}
	if v.now().Before(*booking.VisitScheduledFor) {
		return nil, fmt.Errorf("%w: visit has not taken place yet", ErrInvalidVisitTransition)
	}
	booking.VisitStatus = types.VISIT_COMPLETED
	if err := v.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
