package main

import (
	"evorgs/src/booking"
	"evorgs/src/config"
	"evorgs/src/types"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func parseVisitDateTime(date, clock string) (time.Time, error) {
	return time.Parse(config.DATE_PARSE_FORMAT+" "+config.TIME_PARSE_FORMAT, date+" "+clock)
}

func visitHandlers(g *gin.RouterGroup, engine *booking.Engine) *gin.RouterGroup {
	g.
		POST("/bookings/:id/visit", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			var body types.RequestVisitRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			preferredFor, err := parseVisitDateTime(body.PreferredDate, body.PreferredTime)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := engine.Visits.Request(ctx.Request.Context(), id, preferredFor)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PUT("/bookings/:id/visit/schedule", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			var body types.ScheduleVisitRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			scheduledFor, err := parseVisitDateTime(body.ScheduledDate, body.ScheduledTime)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			b, err := engine.Visits.Schedule(ctx.Request.Context(), id, scheduledFor)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		}).
		PUT("/bookings/:id/visit/complete", func(ctx *gin.Context) {
			id, ok := bookingID(ctx)
			if !ok {
				return
			}
			b, err := engine.Visits.Complete(ctx.Request.Context(), id)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": b})
		})
	return g
}
