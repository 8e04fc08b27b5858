package main

import (
	"errors"
	"evorgs/src/booking"
	"evorgs/src/catalog"
	"evorgs/src/config"
	"evorgs/src/types"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respondBookingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound), errors.Is(err, catalog.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidAmount):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrConcurrentModification):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrAlreadyTerminal),
		errors.Is(err, booking.ErrInvalidPaymentState),
		errors.Is(err, booking.ErrInvalidVisitTransition),
		errors.Is(err, booking.ErrAmountExceedsDue),
		errors.Is(err, catalog.ErrServiceUnavailable):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Printf("Could not complete request: %s\n", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error while processing request"})
	}
}

func bookingID(ctx *gin.Context) (uuid.UUID, bool) {
	var params types.BookingURIParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(params.ID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return uuid.Nil, false
	}
	return id, true
}

func bookingHandlers(g *gin.RouterGroup, engine *booking.Engine) *gin.RouterGroup {
	g.
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			eventDate, err := time.Parse(config.DATE_PARSE_FORMAT, body.EventDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			created, err := engine.Create(ctx.Request.Context(), booking.CreateParams{
				UserID:          ctx.GetUint("id"),
				ServiceType:     types.ServiceType(body.ServiceType),
				ServiceID:       body.ServiceID,
				EventDate:       eventDate,
				EventStartTime:  body.EventStartTime,
				EventEndTime:    body.EventEndTime,
				NumberOfGuests:  body.NumberOfGuests,
				SpecialRequests: body.SpecialRequests,
				VisitRequested:  body.VisitRequested,
			})
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"data": created})
		}).
		GET("/bookings", func(ctx *gin.Context) {
			var query types.BookingQueryFilters
			if err := ctx.ShouldBindQuery(&query); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			filters := booking.Filters{
				Status:      types.BookingStatus(query.Status),
				ServiceType: types.ServiceType(query.ServiceType),
				Limit:       query.Limit,
				Offset:      query.Offset,
			}
			if query.From != "" {
				from, err := time.Parse(config.DATE_PARSE_FORMAT, query.From)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				filters.DateFrom = &from
			}
			if query.To != "" {
				to, err := time.Parse(config.DATE_PARSE_FORMAT, query.To)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				filters.DateTo = &to
			}
			switch ctx.GetString("role") {
			case "vendor":
				filters.VendorID = ctx.GetUint("vendor")
			case "admin":
			default:
				filters.UserID = ctx.GetUint("id")
			}
			bookings, err := engine.List(ctx.Request.Context(), filters)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": bookings, "count": len(bookings)})
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			b, err := engine.Get(ctx.Request.Context(), id)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PATCH("/bookings/:id", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			var body types.UpdateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			updates := booking.DetailUpdates{
				EventStartTime:  body.EventStartTime,
				EventEndTime:    body.EventEndTime,
				NumberOfGuests:  body.NumberOfGuests,
				SpecialRequests: body.SpecialRequests,
			}
			if body.EventDate != nil {
				eventDate, err := time.Parse(config.DATE_PARSE_FORMAT, *body.EventDate)
				if err != nil {
					ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				updates.EventDate = &eventDate
			}
			b, err := engine.UpdateDetails(ctx.Request.Context(), id, updates)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PUT("/bookings/:id/confirm", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			b, err := engine.Confirm(ctx.Request.Context(), id)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PUT("/bookings/:id/complete", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			b, err := engine.Complete(ctx.Request.Context(), id)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PUT("/bookings/:id/cancel", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			var body types.CancelBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := engine.Cancel(ctx.Request.Context(), id, body.Reason)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		})
	return g
}
