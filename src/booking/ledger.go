package booking

import (
	"context"
	"evorgs/src/models"
	"evorgs/src/types"
	"fmt"

	"github.com/google/uuid"
)

// Ledger owns the monetary fields of a booking. advance + balance never
// exceeds total, and both only grow until a refund resets them. The ledger
// never writes Booking.Status.
type Ledger struct {
	repo Repository
}

func (l *Ledger) PayAdvance(ctx context.Context, id uuid.UUID, amount float64) (*models.Booking, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	booking, err := l.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != types.PAYMENT_AWAITING_ADVANCE {
		return nil, fmt.Errorf("%w: advance already settled (%s)", ErrInvalidPaymentState, booking.PaymentStatus)
	}
	if amount > booking.TotalAmount {
		return nil, ErrAmountExceedsDue
	}
	booking.AdvanceAmount = amount
	booking.PaymentStatus = types.PAYMENT_ADVANCE_PAID
	if amount == booking.TotalAmount {
		booking.PaymentStatus = types.PAYMENT_FULLY_PAID
	}
	if err := l.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (l *Ledger) PayBalance(ctx context.Context, id uuid.UUID, amount float64) (*models.Booking, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	booking, err := l.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != types.PAYMENT_ADVANCE_PAID && booking.PaymentStatus != types.PAYMENT_PARTIALLY_PAID {
		return nil, fmt.Errorf("%w: balance payable only after the advance (%s)", ErrInvalidPaymentState, booking.PaymentStatus)
	}
	if booking.AdvanceAmount+booking.BalanceAmount+amount > booking.TotalAmount {
		return nil, ErrAmountExceedsDue
	}
	booking.BalanceAmount += amount
	if booking.AdvanceAmount+booking.BalanceAmount == booking.TotalAmount {
		booking.PaymentStatus = types.PAYMENT_FULLY_PAID
	} else {
		booking.PaymentStatus = types.PAYMENT_PARTIALLY_PAID
	}
	if err := l.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (l *Ledger) PayFull(ctx context.Context, id uuid.UUID, amount float64) (*models.Booking, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	booking, err := l.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != types.PAYMENT_AWAITING_ADVANCE {
		return nil, fmt.Errorf("%w: payments already in progress (%s)", ErrInvalidPaymentState, booking.PaymentStatus)
	}
	if amount > booking.TotalAmount {
		return nil, ErrAmountExceedsDue
	}
	if amount < booking.TotalAmount {
		return nil, fmt.Errorf("%w: full payment must equal the total amount", ErrInvalidAmount)
	}
	booking.AdvanceAmount = booking.TotalAmount
	booking.BalanceAmount = 0
	booking.PaymentStatus = types.PAYMENT_FULLY_PAID
	if err := l.repo.Save(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (l *Ledger) load(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.Status == types.BOOKING_CANCELED {
		return nil, fmt.Errorf("%w: booking is canceled", ErrInvalidPaymentState)
	}
	return booking, nil
}

// refund zeroes the ledger during cancellation. It mutates the loaded
// aggregate only; the lifecycle engine owns the save.
func refund(booking *models.Booking) {
	if booking.AdvanceAmount+booking.BalanceAmount > 0 {
		booking.PaymentStatus = types.PAYMENT_REFUNDED
	} else {
		booking.PaymentStatus = types.PAYMENT_CANCELED
	}
	booking.AdvanceAmount = 0
	booking.BalanceAmount = 0
}
