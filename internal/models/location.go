package models

import (
	"time"
)

type Location struct {
	Type        string    `json:"type" bson:"type" default:"Point"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
	Address     string    `json:"address" bson:"address"`
	City        string    `json:"city" bson:"city"`
	PlaceID     string    `json:"place_id" bson:"place_id"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// Coordinate is a plain latitude/longitude pair, used where GeoJSON
// framing is not needed (search requests, geocoder results).
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewLocation(address string, lat, lng float64) Location {
	return Location{
		Type:        "Point",
		Coordinates: []float64{lng, lat},
		Address:     address,
		Timestamp:   time.Now(),
	}
}

func (l Location) Latitude() float64 {
	if len(l.Coordinates) >= 2 {
		return l.Coordinates[1]
	}
	return 0
}

func (l Location) Longitude() float64 {
	if len(l.Coordinates) >= 1 {
		return l.Coordinates[0]
	}
	return 0
}

// HasCoordinates reports whether the location carries a usable lat/lng
// pair. Offers published from freeform address entry may not have one.
func (l Location) HasCoordinates() bool {
	return len(l.Coordinates) >= 2 && (l.Coordinates[0] != 0 || l.Coordinates[1] != 0)
}
