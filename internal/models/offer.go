package models

import (
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Gender string
type VehicleCategory string
type OfferStatus string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"

	VehicleCategoryCar  VehicleCategory = "car"
	VehicleCategoryBike VehicleCategory = "bike"

	OfferStatusActive    OfferStatus = "active"
	OfferStatusCompleted OfferStatus = "completed"

	// GenderPreferenceAll in an offer's preference list admits every
	// requester gender.
	GenderPreferenceAll = "all"
)

// RideOffer is a published ride awaiting passenger matches. Immutable once
// published; only the lifecycle status transitions afterwards.
type RideOffer struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	DriverID          primitive.ObjectID `json:"driver_id" bson:"driver_id" validate:"required"`
	DriverName        string             `json:"driver_name" bson:"driver_name"`
	DriverGender      Gender             `json:"driver_gender" bson:"driver_gender" validate:"required"`
	Origin            Location           `json:"origin" bson:"origin" validate:"required"`
	Destination       Location           `json:"destination" bson:"destination" validate:"required"`
	DepartureTime     time.Time          `json:"departure_time" bson:"departure_time" validate:"required"`
	SeatsAvailable    int                `json:"seats_available" bson:"seats_available" validate:"min=0"`
	Vehicle           VehicleCategory    `json:"vehicle" bson:"vehicle" validate:"required"`
	FareRate          string             `json:"fare_rate" bson:"fare_rate"`
	GenderPreferences []string           `json:"gender_preferences" bson:"gender_preferences"`
	Status            OfferStatus        `json:"status" bson:"status" default:"active"`
	CreatedAt         time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at" bson:"updated_at"`
}

// FareRateValue parses the stored per-kilometer rate. The rate is kept as a
// decimal string in the store; a value that does not parse to a non-negative
// number marks the offer malformed.
func (o *RideOffer) FareRateValue() (float64, error) {
	rate, err := strconv.ParseFloat(o.FareRate, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fare rate %q: %w", o.FareRate, err)
	}
	if rate < 0 {
		return 0, fmt.Errorf("negative fare rate %q", o.FareRate)
	}
	return rate, nil
}

func (o *RideOffer) IsActive() bool {
	return o.Status == OfferStatusActive
}
