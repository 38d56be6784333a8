package interfaces

import (
	"context"
	"time"

	"ridepool/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OfferRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, offer *models.RideOffer) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideOffer, error)
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Status operations
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OfferStatus) error

	// Pool reads. GetActiveOffers returns the full active pool in stable
	// publication order; matching happens client-side over the whole set.
	GetActiveOffers(ctx context.Context) ([]*models.RideOffer, error)
	GetActiveOffersByDriver(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideOffer, error)
	GetOffersByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.RideOffer, error)
}
