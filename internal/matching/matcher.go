package matching

import (
	"context"
	"strings"

	"ridepool/internal/models"
	"ridepool/internal/utils"

	"ridepool/pkg/logger"
)

// OfferSource supplies the full active-offer pool. The matcher does not
// assume any server-side filtering and applies all compatibility logic
// itself over the returned set.
type OfferSource interface {
	GetActiveOffers(ctx context.Context) ([]*models.RideOffer, error)
}

// Matcher computes the compatible subset of a ride-offer pool for a search
// request and selects a result. All filtering is synchronous and pure; the
// pool fetch is the only operation that may block.
type Matcher struct {
	source OfferSource
	log    *logger.Logger
}

func NewMatcher(source OfferSource, log *logger.Logger) *Matcher {
	return &Matcher{
		source: source,
		log:    log,
	}
}

// Search runs the full pipeline: input validation, pool fetch, gender,
// locality and date filters, then first-in-pool-order selection. Requests
// whose trimmed origin or destination text is shorter than three characters
// resolve to NoResults before the pool is fetched.
func (m *Matcher) Search(ctx context.Context, req *models.SearchRequest) *models.MatchResult {
	if !QueryLongEnough(req) {
		return models.NoResults()
	}

	pool, err := m.source.GetActiveOffers(ctx)
	if err != nil {
		m.log.WithError(err).Error("Offer pool fetch failed")
		return models.Failed(err.Error())
	}

	for _, offer := range pool {
		if m.offerMatches(req, offer) {
			return models.Matched(offer)
		}
	}

	return models.NoResults()
}

// QueryLongEnough reports whether both address texts survive the minimum
// length check after trimming. Short inputs are treated as still-typing and
// never reach the store.
func QueryLongEnough(req *models.SearchRequest) bool {
	return len(strings.TrimSpace(req.OriginText)) >= utils.MinQueryLength &&
		len(strings.TrimSpace(req.DestinationText)) >= utils.MinQueryLength
}

// offerMatches applies every filter stage to a single offer. A malformed
// offer (bad fare, missing coordinates on the coordinate path, empty
// preference list) is excluded rather than failing the search.
func (m *Matcher) offerMatches(req *models.SearchRequest, offer *models.RideOffer) bool {
	if !offer.IsActive() {
		return false
	}
	if _, err := offer.FareRateValue(); err != nil {
		m.log.WithError(err).WithOfferID(offer.ID).Debug("Excluding offer with malformed fare rate")
		return false
	}
	if !GenderMatches(offer, req.RequesterGender) {
		return false
	}
	if req.HasCoordinates() {
		if !m.withinRadius(req, offer) {
			return false
		}
	} else if !textualLocalityMatch(req, offer) {
		return false
	}
	if req.Date != nil && !utils.SameCalendarDay(offer.DepartureTime, *req.Date) {
		return false
	}
	return true
}

// GenderMatches implements the compatibility policy between an offer and a
// requester gender. Male requesters only ever match male drivers, on top of
// the offer's own preference list; other requesters are governed by the
// preference list alone. An empty preference list admits nobody.
func GenderMatches(offer *models.RideOffer, requester models.Gender) bool {
	allowed := false
	for _, pref := range offer.GenderPreferences {
		pref = strings.ToLower(pref)
		if pref == models.GenderPreferenceAll || pref == string(requester) {
			allowed = true
			break
		}
	}

	if requester == models.GenderMale {
		return offer.DriverGender == models.GenderMale && allowed
	}
	return allowed
}

// withinRadius is the coordinate matching path: the pickup and drop radii
// are a function of the requested trip length only, never of the offer.
func (m *Matcher) withinRadius(req *models.SearchRequest, offer *models.RideOffer) bool {
	if !offer.Origin.HasCoordinates() || !offer.Destination.HasCoordinates() {
		return false
	}

	tripKM := utils.CalculateDistance(
		req.OriginCoord.Latitude, req.OriginCoord.Longitude,
		req.DestinationCoord.Latitude, req.DestinationCoord.Longitude,
	)
	pickupKM, dropKM := RadiiForTrip(tripKM)

	return utils.IsWithinRadius(
		req.OriginCoord.Latitude, req.OriginCoord.Longitude,
		offer.Origin.Latitude(), offer.Origin.Longitude(),
		pickupKM,
	) && utils.IsWithinRadius(
		req.DestinationCoord.Latitude, req.DestinationCoord.Longitude,
		offer.Destination.Latitude(), offer.Destination.Longitude(),
		dropKM,
	)
}

// textualLocalityMatch is the fallback when the request carries no resolved
// coordinates. Both endpoints must overlap.
func textualLocalityMatch(req *models.SearchRequest, offer *models.RideOffer) bool {
	return addressesOverlap(req.OriginText, offer.Origin.Address) &&
		addressesOverlap(req.DestinationText, offer.Destination.Address)
}
