package handlers

import (
	"ridepool/internal/services"
	"ridepool/internal/utils"
	"ridepool/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfferHandler struct {
	offerService services.OfferService
}

func NewOfferHandler(offerService services.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// PublishOffer creates a new active ride offer.
func (h *OfferHandler) PublishOffer(c *gin.Context) {
	var request validators.PublishOfferRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidatePublishOfferRequest(&request); errs != nil {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	offer, err := h.offerService.PublishOffer(c.Request.Context(), request.ToModel())
	if err != nil {
		utils.BadRequestResponse(c, err.Error())
		return
	}

	utils.CreatedResponse(c, "Offer published", offer)
}

// GetOffer returns a single offer by id.
func (h *OfferHandler) GetOffer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid offer ID")
		return
	}

	offer, err := h.offerService.GetOffer(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, utils.ErrOfferNotFound)
		return
	}

	utils.SuccessResponse(c, "Offer retrieved", offer)
}

// ListActiveOffers returns the full active pool.
func (h *OfferHandler) ListActiveOffers(c *gin.Context) {
	offers, err := h.offerService.ListActiveOffers(c.Request.Context())
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Active offers retrieved", offers)
}

// ListDriverOffers returns a driver's active offers.
func (h *OfferHandler) ListDriverOffers(c *gin.Context) {
	driverID, err := primitive.ObjectIDFromHex(c.Param("driver_id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid driver ID")
		return
	}

	offers, err := h.offerService.ListDriverOffers(c.Request.Context(), driverID)
	if err != nil {
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Driver offers retrieved", offers)
}

// CompleteOffer transitions an offer to completed.
func (h *OfferHandler) CompleteOffer(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid offer ID")
		return
	}

	if err := h.offerService.CompleteOffer(c.Request.Context(), id); err != nil {
		utils.NotFoundResponse(c, utils.ErrOfferNotFound)
		return
	}

	utils.SuccessResponse(c, "Offer completed", nil)
}
