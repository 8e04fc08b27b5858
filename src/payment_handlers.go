package main

import (
	"evorgs/src/booking"
	"evorgs/src/models"
	"evorgs/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func paymentHandlers(g *gin.RouterGroup, engine *booking.Engine) *gin.RouterGroup {
	pay := func(op func(ctx *gin.Context, id uuid.UUID, amount float64) (*models.Booking, error)) gin.HandlerFunc {
		return func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			var body types.PaymentRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := op(ctx, id, body.Amount)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}
	}

	g.
		POST("/bookings/:id/payments/advance", pay(func(ctx *gin.Context, id uuid.UUID, amount float64) (*models.Booking, error) {
			return engine.Payments.PayAdvance(ctx.Request.Context(), id, amount)
		})).
		POST("/bookings/:id/payments/balance", pay(func(ctx *gin.Context, id uuid.UUID, amount float64) (*models.Booking, error) {
			return engine.Payments.PayBalance(ctx.Request.Context(), id, amount)
		})).
		POST("/bookings/:id/payments/full", pay(func(ctx *gin.Context, id uuid.UUID, amount float64) (*models.Booking, error) {
			return engine.Payments.PayFull(ctx.Request.Context(), id, amount)
		}))
	return g
}
