package handlers

import (
	"net/http"

	"ridepool/internal/models"
	"ridepool/internal/services"
	"ridepool/internal/utils"
	"ridepool/internal/validators"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// SearchRides runs a ride search for the requester described in the body.
func (h *SearchHandler) SearchRides(c *gin.Context) {
	var request validators.SearchRideRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateSearchRequest(&request); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	result := h.searchService.Search(c.Request.Context(), request.ToModel())

	switch result.Outcome {
	case models.MatchOutcomeMatched:
		utils.SuccessResponse(c, "Ride found", result)
	case models.MatchOutcomeNoResults:
		utils.SuccessResponse(c, "No rides found", result)
	default:
		utils.ErrorResponse(c, http.StatusBadGateway, "SEARCH_FAILED", utils.ErrSearchFailed+": "+result.Reason)
	}
}
