package routes

import (
	handlers "ridepool/internal/handlers/shared"

	"github.com/gin-gonic/gin"
)

// SetupSearchRoutes sets up the ride search and offer routes
func SetupSearchRoutes(r *gin.RouterGroup, searchHandler *handlers.SearchHandler, offerHandler *handlers.OfferHandler) {
	search := r.Group("/search")
	{
		search.POST("/", searchHandler.SearchRides)
	}

	offers := r.Group("/offers")
	{
		offers.POST("/", offerHandler.PublishOffer)
		offers.GET("/", offerHandler.ListActiveOffers)
		offers.GET("/:id", offerHandler.GetOffer)
		offers.PUT("/:id/complete", offerHandler.CompleteOffer)
		offers.GET("/drivers/:driver_id", offerHandler.ListDriverOffers)
	}
}
