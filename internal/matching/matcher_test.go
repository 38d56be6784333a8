package matching

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"ridepool/internal/models"
	"ridepool/pkg/logger"
)

type fakeOfferSource struct {
	offers []*models.RideOffer
	err    error
	calls  int
}

func (f *fakeOfferSource) GetActiveOffers(ctx context.Context) ([]*models.RideOffer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.offers, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

// Request origin/destination roughly MG Road -> Electronic City, Bangalore;
// about a 15 km trip, so the 5-20 km bracket (pickup 2 km, drop 4 km).
var (
	reqOrigin = models.Coordinate{Latitude: 12.9716, Longitude: 77.5946}
	reqDest   = models.Coordinate{Latitude: 12.8452, Longitude: 77.6602}
)

func testOffer(mutate ...func(*models.RideOffer)) *models.RideOffer {
	offer := &models.RideOffer{
		ID:           primitive.NewObjectID(),
		DriverID:     primitive.NewObjectID(),
		DriverName:   "Arjun",
		DriverGender: models.GenderMale,
		// About 0.4 km from the request origin.
		Origin: models.NewLocation("MG Road, Bangalore", 12.9752, 77.5946),
		// About 0.5 km from the request destination.
		Destination:       models.NewLocation("Electronic City", 12.8500, 77.6602),
		DepartureTime:     time.Now(),
		SeatsAvailable:    3,
		Vehicle:           models.VehicleCategoryCar,
		FareRate:          "12.50",
		GenderPreferences: []string{"all"},
		Status:            models.OfferStatusActive,
	}
	for _, fn := range mutate {
		fn(offer)
	}
	return offer
}

func coordRequest(gender models.Gender) *models.SearchRequest {
	origin := reqOrigin
	dest := reqDest
	date := time.Now()
	return &models.SearchRequest{
		RequesterID:      "rider-1",
		RequesterGender:  gender,
		OriginText:       "MG Road, Bangalore",
		DestinationText:  "Electronic City",
		OriginCoord:      &origin,
		DestinationCoord: &dest,
		Date:             &date,
	}
}

func TestSearchMatchesNearbyOffer(t *testing.T) {
	offer := testOffer()
	source := &fakeOfferSource{offers: []*models.RideOffer{offer}}
	m := NewMatcher(source, newTestLogger(t))

	result := m.Search(context.Background(), coordRequest(models.GenderFemale))

	if result.Outcome != models.MatchOutcomeMatched {
		t.Fatalf("outcome = %v, want matched", result.Outcome)
	}
	if diff := cmp.Diff(offer, result.Offer); diff != "" {
		t.Errorf("matched offer mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchMaleRequesterNeverMatchesNonMaleDriver(t *testing.T) {
	// Preference list explicitly admits male requesters, but the driver
	// gender rule still blocks the match.
	offer := testOffer(func(o *models.RideOffer) {
		o.DriverGender = models.GenderFemale
		o.GenderPreferences = []string{"male", "female", "all"}
	})
	source := &fakeOfferSource{offers: []*models.RideOffer{offer}}
	m := NewMatcher(source, newTestLogger(t))

	result := m.Search(context.Background(), coordRequest(models.GenderMale))

	if result.Outcome != models.MatchOutcomeNoResults {
		t.Fatalf("outcome = %v, want no_results", result.Outcome)
	}
}

func TestSearchShortInputSkipsPoolFetch(t *testing.T) {
	source := &fakeOfferSource{offers: []*models.RideOffer{testOffer()}}
	m := NewMatcher(source, newTestLogger(t))

	req := coordRequest(models.GenderFemale)
	req.OriginText = "Ho"
	req.DestinationText = "Ch"

	result := m.Search(context.Background(), req)

	if result.Outcome != models.MatchOutcomeNoResults {
		t.Fatalf("outcome = %v, want no_results", result.Outcome)
	}
	if source.calls != 0 {
		t.Errorf("pool fetched %d times, want 0", source.calls)
	}
}

func TestSearchPoolFetchFailure(t *testing.T) {
	source := &fakeOfferSource{err: errors.New("connection refused")}
	m := NewMatcher(source, newTestLogger(t))

	result := m.Search(context.Background(), coordRequest(models.GenderFemale))

	if result.Outcome != models.MatchOutcomeFailed {
		t.Fatalf("outcome = %v, want failed", result.Outcome)
	}
	if result.Reason != "connection refused" {
		t.Errorf("reason = %q, want the collaborator's error text", result.Reason)
	}
}

func TestSearchExcludesMalformedOffer(t *testing.T) {
	bad := testOffer(func(o *models.RideOffer) { o.FareRate = "free!!" })
	good := testOffer()
	source := &fakeOfferSource{offers: []*models.RideOffer{bad, good}}
	m := NewMatcher(source, newTestLogger(t))

	result := m.Search(context.Background(), coordRequest(models.GenderFemale))

	if result.Outcome != models.MatchOutcomeMatched {
		t.Fatalf("outcome = %v, want matched", result.Outcome)
	}
	if result.Offer.ID != good.ID {
		t.Errorf("matched the malformed offer")
	}
}

func TestSearchFirstInPoolOrderWins(t *testing.T) {
	first := testOffer()
	second := testOffer(func(o *models.RideOffer) {
		// Closer to the request than the first offer, but later in the pool.
		o.Origin = models.NewLocation("MG Road, Bangalore", 12.9716, 77.5946)
		o.Destination = models.NewLocation("Electronic City", 12.8452, 77.6602)
	})
	source := &fakeOfferSource{offers: []*models.RideOffer{first, second}}
	m := NewMatcher(source, newTestLogger(t))

	result := m.Search(context.Background(), coordRequest(models.GenderFemale))

	if result.Outcome != models.MatchOutcomeMatched {
		t.Fatalf("outcome = %v, want matched", result.Outcome)
	}
	if result.Offer.ID != first.ID {
		t.Errorf("selection is not first-in-pool-order")
	}
}

func TestSearchDateWildcard(t *testing.T) {
	tomorrow := testOffer(func(o *models.RideOffer) {
		o.DepartureTime = time.Now().AddDate(0, 0, 1)
	})
	source := &fakeOfferSource{offers: []*models.RideOffer{tomorrow}}
	m := NewMatcher(source, newTestLogger(t))

	dated := coordRequest(models.GenderFemale)
	if result := m.Search(context.Background(), dated); result.Outcome != models.MatchOutcomeNoResults {
		t.Fatalf("dated search outcome = %v, want no_results", result.Outcome)
	}

	wildcard := coordRequest(models.GenderFemale)
	wildcard.Date = nil
	if result := m.Search(context.Background(), wildcard); result.Outcome != models.MatchOutcomeMatched {
		t.Fatalf("wildcard search outcome = %v, want matched", result.Outcome)
	}
}

func TestSearchTextFallback(t *testing.T) {
	offer := testOffer(func(o *models.RideOffer) {
		o.Origin = models.Location{Address: "MG Road, Bangalore"}
		o.Destination = models.Location{Address: "Electronic City Phase 1"}
	})
	source := &fakeOfferSource{offers: []*models.RideOffer{offer}}
	m := NewMatcher(source, newTestLogger(t))

	req := coordRequest(models.GenderFemale)
	req.OriginCoord = nil
	req.DestinationCoord = nil
	req.OriginText = "mg road"
	req.DestinationText = "electronic city"

	result := m.Search(context.Background(), req)

	if result.Outcome != models.MatchOutcomeMatched {
		t.Fatalf("outcome = %v, want matched", result.Outcome)
	}
}

func TestSearchSkipsInactiveAndFarOffers(t *testing.T) {
	completed := testOffer(func(o *models.RideOffer) { o.Status = models.OfferStatusCompleted })
	farAway := testOffer(func(o *models.RideOffer) {
		// Hebbal, roughly 8 km north of the request origin.
		o.Origin = models.NewLocation("Hebbal, Bangalore", 13.0359, 77.5970)
	})
	noCoords := testOffer(func(o *models.RideOffer) {
		o.Origin = models.Location{Address: "MG Road, Bangalore"}
	})
	source := &fakeOfferSource{offers: []*models.RideOffer{completed, farAway, noCoords}}
	m := NewMatcher(source, newTestLogger(t))

	result := m.Search(context.Background(), coordRequest(models.GenderFemale))

	if result.Outcome != models.MatchOutcomeNoResults {
		t.Fatalf("outcome = %v, want no_results", result.Outcome)
	}
}

func TestGenderMatches(t *testing.T) {
	tests := []struct {
		name         string
		driverGender models.Gender
		prefs        []string
		requester    models.Gender
		want         bool
	}{
		{"all admits female", models.GenderMale, []string{"all"}, models.GenderFemale, true},
		{"all admits other", models.GenderMale, []string{"all"}, models.GenderOther, true},
		{"explicit female pref", models.GenderFemale, []string{"female"}, models.GenderFemale, true},
		{"female not in prefs", models.GenderMale, []string{"male"}, models.GenderFemale, false},
		{"male requester male driver", models.GenderMale, []string{"male"}, models.GenderMale, true},
		{"male requester female driver", models.GenderFemale, []string{"male"}, models.GenderMale, false},
		{"male requester all prefs female driver", models.GenderFemale, []string{"all"}, models.GenderMale, false},
		{"case-insensitive prefs", models.GenderMale, []string{"ALL"}, models.GenderFemale, true},
		{"empty prefs admit nobody", models.GenderMale, nil, models.GenderMale, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := testOffer(func(o *models.RideOffer) {
				o.DriverGender = tt.driverGender
				o.GenderPreferences = tt.prefs
			})
			if got := GenderMatches(offer, tt.requester); got != tt.want {
				t.Errorf("GenderMatches(driver=%s prefs=%v, %s) = %v, want %v",
					tt.driverGender, tt.prefs, tt.requester, got, tt.want)
			}
		})
	}
}
