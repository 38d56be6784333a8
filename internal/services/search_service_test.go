package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"ridepool/internal/models"
	"ridepool/pkg/logger"
	"ridepool/pkg/maps"
)

type fakeOfferRepository struct {
	offers []*models.RideOffer
	err    error
	calls  int
}

func (f *fakeOfferRepository) Create(ctx context.Context, offer *models.RideOffer) error { return nil }
func (f *fakeOfferRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RideOffer, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeOfferRepository) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }
func (f *fakeOfferRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.OfferStatus) error {
	return nil
}
func (f *fakeOfferRepository) GetActiveOffers(ctx context.Context) ([]*models.RideOffer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.offers, nil
}
func (f *fakeOfferRepository) GetActiveOffersByDriver(ctx context.Context, driverID primitive.ObjectID) ([]*models.RideOffer, error) {
	return f.offers, nil
}
func (f *fakeOfferRepository) GetOffersByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*models.RideOffer, error) {
	return f.offers, nil
}

type fakeGeocoder struct {
	coords map[string]maps.Location
}

func (f *fakeGeocoder) Geocode(ctx context.Context, address string) (*maps.GeocodeResponse, error) {
	loc, ok := f.coords[address]
	if !ok {
		return nil, errors.New("no results")
	}
	return &maps.GeocodeResponse{Results: []maps.GeocodeResult{{
		Address:     address,
		Coordinates: loc,
	}}}, nil
}

func (f *fakeGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (*maps.GeocodeResponse, error) {
	return nil, errors.New("no results")
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func poolOffer() *models.RideOffer {
	return &models.RideOffer{
		ID:                primitive.NewObjectID(),
		DriverID:          primitive.NewObjectID(),
		DriverName:        "Meera",
		DriverGender:      models.GenderFemale,
		Origin:            models.NewLocation("MG Road, Bangalore", 12.9752, 77.5946),
		Destination:       models.NewLocation("Electronic City", 12.8500, 77.6602),
		DepartureTime:     time.Now(),
		SeatsAvailable:    2,
		Vehicle:           models.VehicleCategoryCar,
		FareRate:          "10",
		GenderPreferences: []string{"all"},
		Status:            models.OfferStatusActive,
	}
}

func textRequest() *models.SearchRequest {
	return &models.SearchRequest{
		RequesterID:     "rider-9",
		RequesterGender: models.GenderFemale,
		OriginText:      "Brigade Road",
		DestinationText: "Silk Board",
	}
}

func TestSearchServicePoolFetchFailure(t *testing.T) {
	repo := &fakeOfferRepository{err: errors.New("mongo: network timeout")}
	svc := NewSearchService(repo, nil, nil, newTestLogger(t), 0)

	req := textRequest()
	req.OriginText = "MG Road"
	req.DestinationText = "Electronic City"

	result := svc.Search(context.Background(), req)

	if result.Outcome != models.MatchOutcomeFailed {
		t.Fatalf("outcome = %v, want failed", result.Outcome)
	}
	if result.Reason == "" {
		t.Error("failed result carries no reason")
	}
}

func TestSearchServiceShortInputSkipsEverything(t *testing.T) {
	repo := &fakeOfferRepository{offers: []*models.RideOffer{poolOffer()}}
	svc := NewSearchService(repo, nil, nil, newTestLogger(t), 0)

	req := textRequest()
	req.OriginText = "Ho"
	req.DestinationText = "Ch"

	result := svc.Search(context.Background(), req)

	if result.Outcome != models.MatchOutcomeNoResults {
		t.Fatalf("outcome = %v, want no_results", result.Outcome)
	}
	if repo.calls != 0 {
		t.Errorf("pool fetched %d times, want 0", repo.calls)
	}
}

func TestSearchServiceGeocoderUpgradesToCoordinatePath(t *testing.T) {
	repo := &fakeOfferRepository{offers: []*models.RideOffer{poolOffer()}}

	// The request texts share no substring with the offer addresses, so the
	// text fallback cannot match; only resolved coordinates can.
	geocoder := &fakeGeocoder{coords: map[string]maps.Location{
		"Brigade Road": {Latitude: 12.9750, Longitude: 77.6000},
		"Silk Board":   {Latitude: 12.8500, Longitude: 77.6650},
	}}

	withGeocoder := NewSearchService(repo, nil, geocoder, newTestLogger(t), 0)
	if result := withGeocoder.Search(context.Background(), textRequest()); result.Outcome != models.MatchOutcomeMatched {
		t.Fatalf("with geocoder: outcome = %v, want matched", result.Outcome)
	}

	withoutGeocoder := NewSearchService(repo, nil, nil, newTestLogger(t), 0)
	if result := withoutGeocoder.Search(context.Background(), textRequest()); result.Outcome != models.MatchOutcomeNoResults {
		t.Fatalf("without geocoder: outcome = %v, want no_results", result.Outcome)
	}
}

func TestSearchServiceGeocoderFailureFallsBackToText(t *testing.T) {
	offer := poolOffer()
	repo := &fakeOfferRepository{offers: []*models.RideOffer{offer}}
	geocoder := &fakeGeocoder{coords: map[string]maps.Location{}}

	svc := NewSearchService(repo, nil, geocoder, newTestLogger(t), 0)

	req := textRequest()
	req.OriginText = "mg road"
	req.DestinationText = "electronic city"

	result := svc.Search(context.Background(), req)

	if result.Outcome != models.MatchOutcomeMatched {
		t.Fatalf("outcome = %v, want matched via text fallback", result.Outcome)
	}
	if result.Offer.ID != offer.ID {
		t.Error("unexpected offer matched")
	}
}
