package services

import (
	"context"
	"fmt"
	"time"

	"ridepool/internal/matching"
	"ridepool/internal/models"
	"ridepool/internal/repositories/interfaces"
	"ridepool/internal/utils"
	"ridepool/pkg/cache"
	"ridepool/pkg/logger"
	"ridepool/pkg/maps"

	"github.com/google/uuid"
)

// SearchService runs ride searches end to end: optional coordinate
// resolution through the geocoding collaborator, pool fetch with a short
// Redis snapshot cache in front of the store, the matching pipeline, and
// match-event publication.
type SearchService interface {
	Search(ctx context.Context, req *models.SearchRequest) *models.MatchResult
}

type searchService struct {
	offers   interfaces.OfferRepository
	cache    *cache.RedisCache
	geocoder maps.Geocoder
	matcher  *matching.Matcher
	log      *logger.Logger
	poolTTL  time.Duration
}

func NewSearchService(
	offers interfaces.OfferRepository,
	redisCache *cache.RedisCache,
	geocoder maps.Geocoder,
	log *logger.Logger,
	poolTTL time.Duration,
) SearchService {
	if poolTTL <= 0 {
		poolTTL = utils.DefaultPoolCacheTTL
	}

	s := &searchService{
		offers:   offers,
		cache:    redisCache,
		geocoder: geocoder,
		log:      log,
		poolTTL:  poolTTL,
	}
	s.matcher = matching.NewMatcher(s, log)
	return s
}

func (s *searchService) Search(ctx context.Context, req *models.SearchRequest) *models.MatchResult {
	searchID := uuid.NewString()

	// Short inputs never reach the geocoder or the store.
	if !matching.QueryLongEnough(req) {
		return models.NoResults()
	}

	req = s.resolveCoordinates(ctx, req)

	result := s.matcher.Search(ctx, req)

	s.countSearch(ctx)
	s.log.LogSearchEvent(searchID, string(result.Outcome), map[string]interface{}{
		"requester_id": req.RequesterID,
		"coordinates":  req.HasCoordinates(),
	})

	if result.Outcome == models.MatchOutcomeMatched {
		s.publishMatchEvent(ctx, searchID, req, result.Offer)
	}

	return result
}

// GetActiveOffers satisfies matching.OfferSource. The Redis snapshot absorbs
// rapid-fire searches; a miss or a cache error falls through to Mongo.
func (s *searchService) GetActiveOffers(ctx context.Context) ([]*models.RideOffer, error) {
	if s.cache != nil {
		var cached []*models.RideOffer
		err := s.cache.Get(ctx, utils.CacheKeyActiveOffers, &cached)
		if err == nil {
			return cached, nil
		}
		if !cache.IsMiss(err) {
			s.log.WithError(err).Warn("Active offer cache read failed")
		}
	}

	offers, err := s.offers.GetActiveOffers(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, utils.CacheKeyActiveOffers, offers, s.poolTTL); err != nil {
			s.log.WithError(err).Warn("Active offer cache write failed")
		}
	}

	return offers, nil
}

// resolveCoordinates upgrades a text-only request to the coordinate path
// when the geocoder can resolve both endpoints. Failure is not an error;
// the request proceeds down the text fallback.
func (s *searchService) resolveCoordinates(ctx context.Context, req *models.SearchRequest) *models.SearchRequest {
	if s.geocoder == nil || req.HasCoordinates() {
		return req
	}

	origin := s.geocode(ctx, req.OriginText)
	if origin == nil {
		return req
	}
	dest := s.geocode(ctx, req.DestinationText)
	if dest == nil {
		return req
	}

	resolved := *req
	resolved.OriginCoord = origin
	resolved.DestinationCoord = dest
	return &resolved
}

func (s *searchService) geocode(ctx context.Context, address string) *models.Coordinate {
	resp, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		s.log.WithError(err).WithField("address", address).Debug("Geocoding failed, using text fallback")
		return nil
	}
	best := resp.Best()
	if best == nil {
		return nil
	}
	return &models.Coordinate{
		Latitude:  best.Coordinates.Latitude,
		Longitude: best.Coordinates.Longitude,
	}
}

func (s *searchService) publishMatchEvent(ctx context.Context, searchID string, req *models.SearchRequest, offer *models.RideOffer) {
	if s.cache == nil {
		return
	}

	event := &models.MatchEvent{
		SearchID:    searchID,
		RequesterID: req.RequesterID,
		OfferID:     offer.ID.Hex(),
		DriverID:    offer.DriverID.Hex(),
		MatchedAt:   time.Now(),
	}
	if err := s.cache.Publish(ctx, utils.ChannelMatchEvents, event); err != nil {
		s.log.WithError(err).WithOfferID(offer.ID).Warn("Match event publish failed")
	}
}

func (s *searchService) countSearch(ctx context.Context) {
	if s.cache == nil {
		return
	}

	key := fmt.Sprintf("%s:%s", utils.CacheKeySearchCount, time.Now().Format("2006-01-02"))
	if _, err := s.cache.Increment(ctx, key); err != nil {
		s.log.WithError(err).Debug("Search counter increment failed")
	}
}
