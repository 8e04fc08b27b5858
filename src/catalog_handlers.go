package main

import (
	"evorgs/src/catalog"
	"evorgs/src/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

func catalogHandlers(g *gin.RouterGroup, resolver catalog.Resolver) *gin.RouterGroup {
	g.
		GET("/services/:type/:id", func(ctx *gin.Context) {
			var params types.ServiceURIParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			desc, err := resolver.Resolve(ctx.Request.Context(), types.ServiceType(params.Type), params.ID)
			if err != nil {
				respondBookingError(ctx, err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"data": desc})
		})
	return g
}
