package validators

import (
	"time"

	"ridepool/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SearchRideRequest struct {
	RequesterID      string             `json:"requester_id" validate:"required"`
	RequesterGender  string             `json:"requester_gender" validate:"required,gender"`
	OriginText       string             `json:"origin_text" validate:"required"`
	DestinationText  string             `json:"destination_text" validate:"required"`
	OriginCoord      *CoordinateRequest `json:"origin_coord" validate:"omitempty"`
	DestinationCoord *CoordinateRequest `json:"destination_coord" validate:"omitempty"`
	Date             *time.Time         `json:"date"`
}

type CoordinateRequest struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
}

type PublishOfferRequest struct {
	DriverID          string          `json:"driver_id" validate:"required,object_id"`
	DriverName        string          `json:"driver_name" validate:"required,max=100"`
	DriverGender      string          `json:"driver_gender" validate:"required,gender"`
	Origin            LocationRequest `json:"origin" validate:"required"`
	Destination       LocationRequest `json:"destination" validate:"required"`
	DepartureTime     time.Time       `json:"departure_time" validate:"required"`
	SeatsAvailable    int             `json:"seats_available" validate:"min=0,max=6"`
	Vehicle           string          `json:"vehicle" validate:"required,oneof=car bike"`
	FareRate          string          `json:"fare_rate" validate:"required,fare_rate"`
	GenderPreferences []string        `json:"gender_preferences" validate:"required,min=1,dive,gender_preference"`
}

type LocationRequest struct {
	Address   string   `json:"address" validate:"required,min=3,max=255"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

func ValidateSearchRequest(req *SearchRideRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidatePublishOfferRequest(req *PublishOfferRequest) ValidationErrors {
	return ValidateStruct(req)
}

// ToModel converts a validated search request into the matcher's input.
func (r *SearchRideRequest) ToModel() *models.SearchRequest {
	req := &models.SearchRequest{
		RequesterID:     r.RequesterID,
		RequesterGender: models.Gender(r.RequesterGender),
		OriginText:      r.OriginText,
		DestinationText: r.DestinationText,
		Date:            r.Date,
	}
	if r.OriginCoord != nil {
		req.OriginCoord = &models.Coordinate{
			Latitude:  r.OriginCoord.Latitude,
			Longitude: r.OriginCoord.Longitude,
		}
	}
	if r.DestinationCoord != nil {
		req.DestinationCoord = &models.Coordinate{
			Latitude:  r.DestinationCoord.Latitude,
			Longitude: r.DestinationCoord.Longitude,
		}
	}
	return req
}

// ToModel converts a validated publish request into a ride offer. The
// driver id is already checked by the object_id validator.
func (r *PublishOfferRequest) ToModel() *models.RideOffer {
	driverID, _ := primitive.ObjectIDFromHex(r.DriverID)

	return &models.RideOffer{
		DriverID:          driverID,
		DriverName:        r.DriverName,
		DriverGender:      models.Gender(r.DriverGender),
		Origin:            r.Origin.toLocation(),
		Destination:       r.Destination.toLocation(),
		DepartureTime:     r.DepartureTime,
		SeatsAvailable:    r.SeatsAvailable,
		Vehicle:           models.VehicleCategory(r.Vehicle),
		FareRate:          r.FareRate,
		GenderPreferences: r.GenderPreferences,
		Status:            models.OfferStatusActive,
	}
}

func (l LocationRequest) toLocation() models.Location {
	if l.Latitude != nil && l.Longitude != nil {
		return models.NewLocation(l.Address, *l.Latitude, *l.Longitude)
	}
	return models.Location{Address: l.Address}
}
