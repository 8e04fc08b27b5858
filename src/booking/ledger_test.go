package booking

import (
	"context"
	"evorgs/src/models"
	"evorgs/src/types"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaidBooking(t *testing.T, engine *Engine) *models.Booking {
	t.Helper()
	b, err := engine.Create(context.Background(), CreateParams{
		UserID:         11,
		ServiceType:    types.SERVICE_CATERING,
		ServiceID:      1,
		EventDate:      time.Now().AddDate(0, 1, 0),
		NumberOfGuests: 10,
	})
	require.NoError(t, err)
	require.Equal(t, float64(200), b.TotalAmount)
	return b
}

func TestPayAdvance(t *testing.T) {
	ctx := context.Background()

	t.Run("records the advance", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		b, err := engine.Payments.PayAdvance(ctx, b.ID, 80)
		require.NoError(t, err)
		assert.Equal(t, float64(80), b.AdvanceAmount)
		assert.Equal(t, float64(0), b.BalanceAmount)
		assert.Equal(t, types.PAYMENT_ADVANCE_PAID, b.PaymentStatus)
	})

	t.Run("promotes to fully paid when advance covers the total", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		b, err := engine.Payments.PayAdvance(ctx, b.ID, 200)
		require.NoError(t, err)
		assert.Equal(t, types.PAYMENT_FULLY_PAID, b.PaymentStatus)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		_, err := engine.Payments.PayAdvance(ctx, b.ID, 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = engine.Payments.PayAdvance(ctx, b.ID, -10)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("rejects amounts above the total", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		_, err := engine.Payments.PayAdvance(ctx, b.ID, 250)
		assert.ErrorIs(t, err, ErrAmountExceedsDue)

		unchanged, err := engine.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(0), unchanged.AdvanceAmount)
		assert.Equal(t, types.PAYMENT_AWAITING_ADVANCE, unchanged.PaymentStatus)
	})

	t.Run("rejects a second advance", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		_, err := engine.Payments.PayAdvance(ctx, b.ID, 80)
		require.NoError(t, err)
		_, err = engine.Payments.PayAdvance(ctx, b.ID, 80)
		assert.ErrorIs(t, err, ErrInvalidPaymentState)
	})
}

func TestPayBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("accumulates installments until fully paid", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)
		_, err := engine.Payments.PayAdvance(ctx, b.ID, 80)
		require.NoError(t, err)

		b, err = engine.Payments.PayBalance(ctx, b.ID, 50)
		require.NoError(t, err)
		assert.Equal(t, types.PAYMENT_PARTIALLY_PAID, b.PaymentStatus)
		assert.Equal(t, float64(50), b.BalanceAmount)

		b, err = engine.Payments.PayBalance(ctx, b.ID, 70)
		require.NoError(t, err)
		assert.Equal(t, types.PAYMENT_FULLY_PAID, b.PaymentStatus)
		assert.Equal(t, b.TotalAmount, b.AdvanceAmount+b.BalanceAmount)
	})

	t.Run("requires the advance first", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		_, err := engine.Payments.PayBalance(ctx, b.ID, 50)
		assert.ErrorIs(t, err, ErrInvalidPaymentState)
	})

	t.Run("rejects overpayment and leaves fields unchanged", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)
		_, err := engine.Payments.PayAdvance(ctx, b.ID, 80)
		require.NoError(t, err)

		_, err = engine.Payments.PayBalance(ctx, b.ID, 121)
		assert.ErrorIs(t, err, ErrAmountExceedsDue)

		unchanged, err := engine.Get(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(80), unchanged.AdvanceAmount)
		assert.Equal(t, float64(0), unchanged.BalanceAmount)
		assert.Equal(t, types.PAYMENT_ADVANCE_PAID, unchanged.PaymentStatus)
	})

	t.Run("rejects payment after fully paid", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)
		_, err := engine.Payments.PayFull(ctx, b.ID, 200)
		require.NoError(t, err)

		_, err = engine.Payments.PayBalance(ctx, b.ID, 1)
		assert.ErrorIs(t, err, ErrInvalidPaymentState)
	})
}

func TestPayFull(t *testing.T) {
	ctx := context.Background()

	t.Run("settles everything in one payment", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		b, err := engine.Payments.PayFull(ctx, b.ID, 200)
		require.NoError(t, err)
		assert.Equal(t, float64(200), b.AdvanceAmount)
		assert.Equal(t, float64(0), b.BalanceAmount)
		assert.Equal(t, types.PAYMENT_FULLY_PAID, b.PaymentStatus)
	})

	t.Run("must equal the total exactly", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)

		_, err := engine.Payments.PayFull(ctx, b.ID, 150)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = engine.Payments.PayFull(ctx, b.ID, 250)
		assert.ErrorIs(t, err, ErrAmountExceedsDue)
	})

	t.Run("not allowed once installments started", func(t *testing.T) {
		engine := newTestEngine()
		b := newPaidBooking(t, engine)
		_, err := engine.Payments.PayAdvance(ctx, b.ID, 80)
		require.NoError(t, err)

		_, err = engine.Payments.PayFull(ctx, b.ID, 200)
		assert.ErrorIs(t, err, ErrInvalidPaymentState)
	})
}

func TestConservationInvariant(t *testing.T) {
	// advance + balance never exceeds total at any step of a mixed flow
	ctx := context.Background()
	engine := newTestEngine()
	b := newPaidBooking(t, engine)

	steps := []func() (*models.Booking, error){
		func() (*models.Booking, error) { return engine.Payments.PayAdvance(ctx, b.ID, 60) },
		func() (*models.Booking, error) { return engine.Payments.PayBalance(ctx, b.ID, 40) },
		func() (*models.Booking, error) { return engine.Payments.PayBalance(ctx, b.ID, 100) },
	}
	for _, step := range steps {
		got, err := step()
		require.NoError(t, err)
		assert.LessOrEqual(t, got.AdvanceAmount+got.BalanceAmount, got.TotalAmount)
	}

	got, err := engine.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, types.PAYMENT_FULLY_PAID, got.PaymentStatus)
}
