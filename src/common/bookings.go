package common

import (
	"context"
	"errors"
	"evorgs/src/booking"
	"evorgs/src/config"
	"evorgs/src/lib"
	"evorgs/src/types"
	"log"
	"time"
)

const expiryReason = "expired: advance not received"

// ExpirePendingBookings cancels bookings that sat pending past the expiry
// window with no advance paid. Cancellation goes through the engine so the
// refund and status rules apply; losing a version race just means somebody
// else acted on the booking first, and the next sweep moves on.
func ExpirePendingBookings(engine *booking.Engine, maxAge time.Duration) {
	ctx := context.Background()
	cutoff := time.Now().Add(-maxAge)
	pending, err := engine.List(ctx, booking.Filters{Status: types.BOOKING_PENDING})
	if err != nil {
		log.Printf("[sweep] Error listing pending bookings: %s\n", err.Error())
		return
	}
	expired := 0
	for _, b := range pending {
		if b.PaymentStatus != types.PAYMENT_AWAITING_ADVANCE {
			continue
		}
		if b.CreatedAt.After(cutoff) {
			continue
		}
		if _, err := engine.Cancel(ctx, b.ID, expiryReason); err != nil {
			if errors.Is(err, booking.ErrConcurrentModification) || errors.Is(err, booking.ErrAlreadyTerminal) {
				continue
			}
			log.Printf("[sweep] Error canceling booking %s: %s\n", b.ID, err.Error())
			continue
		}
		expired++
	}
	if expired > 0 {
		log.Printf("[sweep] Expired %d pending bookings\n", expired)
	}
}

func StartExpirySweep(engine *booking.Engine) {
	id, err := lib.CreateCronJob(func() {
		ExpirePendingBookings(engine, config.BookingExpiry())
	}, time.Hour)
	if err != nil {
		log.Printf("[sweep] Error scheduling expiry job: %s\n", err.Error())
		return
	}
	log.Printf("[sweep] Scheduled expiry job: %s\n", *id)
}
