package utils

import "time"

// Application Constants
const (
	AppName    = "RidePool"
	AppVersion = "1.0.0"

	// Default values
	DefaultLanguage = "en"
	DefaultCurrency = "INR"
	DefaultTimeZone = "UTC"

	// Geodesy
	EarthRadiusKM = 6371.0

	// Search Constants
	MinQueryLength       = 3
	DefaultDebounceDelay = 350 * time.Millisecond
	DefaultPoolCacheTTL  = 15 * time.Second
	MaxSearchRadius      = 50.0 // kilometers
	DefaultSearchTimeout = 10 * time.Second

	// Offer Constants
	MaxSeatsPerOffer = 6
	MaxFareRate      = 1000.0 // currency per kilometer

	// Response statuses
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error message constants
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrOfferNotFound    = "Offer not found"
	ErrSearchFailed     = "Search failed"
)

// Cache keys and channels
const (
	CacheKeyActiveOffers = "offers:active"
	CacheKeySearchCount  = "search:count"
	ChannelMatchEvents   = "events:match"
)
