package services

import (
	"context"
	"fmt"

	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
	"ridepool/pkg/cache"
	"ridepool/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OfferService owns the offer lifecycle around the matcher: publish,
// complete, read. Offers are immutable once published; only status moves.
type OfferService interface {
	PublishOffer(ctx context.Context, offer *models.RideOffer) (*models.RideOffer, error)
	CompleteOffer(ctx context.Context, id primitive.ObjectID) error
	GetOffer(ctx context.Context, id primitive.ObjectID) (*models.RideOffer, error)
	ListActiveOffers(ctx context.Context) ([]*models.RideOffer, error)
	ListDriverOffers(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideOffer, error)
}

type offerService struct {
	offers interfaces.OfferRepository
	cache  *cache.RedisCache
	log    *logger.Logger
}

func NewOfferService(offers interfaces.OfferRepository, redisCache *cache.RedisCache, log *logger.Logger) OfferService {
	return &offerService{
		offers: offers,
		cache:  redisCache,
		log:    log,
	}
}

func (s *offerService) PublishOffer(ctx context.Context, offer *models.RideOffer) (*models.RideOffer, error) {
	if _, err := offer.FareRateValue(); err != nil {
		return nil, fmt.Errorf("invalid offer: %w", err)
	}
	if offer.SeatsAvailable < 0 || offer.SeatsAvailable > utils.MaxSeatsPerOffer {
		return nil, fmt.Errorf("invalid offer: seats_available must be between 0 and %d", utils.MaxSeatsPerOffer)
	}
	if len(offer.GenderPreferences) == 0 {
		return nil, fmt.Errorf("invalid offer: gender preference list is empty")
	}

	offer.Status = models.OfferStatusActive
	if err := s.offers.Create(ctx, offer); err != nil {
		return nil, err
	}

	s.invalidatePool(ctx)
	s.log.LogOfferEvent(offer.ID, "published", map[string]interface{}{
		"driver_id": offer.DriverID.Hex(),
		"seats":     offer.SeatsAvailable,
	})

	return offer, nil
}

func (s *offerService) CompleteOffer(ctx context.Context, id primitive.ObjectID) error {
	if err := s.offers.UpdateStatus(ctx, id, models.OfferStatusCompleted); err != nil {
		return err
	}

	s.invalidatePool(ctx)
	s.log.LogOfferEvent(id, "completed", nil)

	return nil
}

func (s *offerService) GetOffer(ctx context.Context, id primitive.ObjectID) (*models.RideOffer, error) {
	return s.offers.GetByID(ctx, id)
}

func (s *offerService) ListActiveOffers(ctx context.Context) ([]*models.RideOffer, error) {
	return s.offers.GetActiveOffers(ctx)
}

func (s *offerService) ListDriverOffers(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideOffer, error) {
	return s.offers.GetActiveOffersByDriver(ctx, driverID)
}

// invalidatePool drops the cached active-offer snapshot after any write
// that changes pool membership.
func (s *offerService) invalidatePool(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, utils.CacheKeyActiveOffers); err != nil {
		s.log.WithError(err).Warn("Active offer cache invalidation failed")
	}
}
