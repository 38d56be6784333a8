package models

import (
	"time"
)

type MatchOutcome string

const (
	MatchOutcomeMatched   MatchOutcome = "matched"
	MatchOutcomeNoResults MatchOutcome = "no_results"
	MatchOutcomeFailed    MatchOutcome = "failed"
)

// SearchRequest is built fresh per user search action and discarded after
// producing a MatchResult. Requester identity is carried explicitly; the
// matcher never consults ambient auth state.
type SearchRequest struct {
	RequesterID      string      `json:"requester_id"`
	RequesterGender  Gender      `json:"requester_gender"`
	OriginText       string      `json:"origin_text"`
	DestinationText  string      `json:"destination_text"`
	OriginCoord      *Coordinate `json:"origin_coord,omitempty"`
	DestinationCoord *Coordinate `json:"destination_coord,omitempty"`
	// Date restricts matches to a single calendar day; nil means any date.
	Date *time.Time `json:"date,omitempty"`
}

// HasCoordinates reports whether both endpoints carry resolved coordinates,
// which selects the radius-based matching path over the text fallback.
func (r *SearchRequest) HasCoordinates() bool {
	return r.OriginCoord != nil && r.DestinationCoord != nil
}

type MatchResult struct {
	Outcome MatchOutcome `json:"outcome"`
	Offer   *RideOffer   `json:"offer,omitempty"`
	Reason  string       `json:"reason,omitempty"`
}

func Matched(offer *RideOffer) *MatchResult {
	return &MatchResult{Outcome: MatchOutcomeMatched, Offer: offer}
}

func NoResults() *MatchResult {
	return &MatchResult{Outcome: MatchOutcomeNoResults}
}

func Failed(reason string) *MatchResult {
	return &MatchResult{Outcome: MatchOutcomeFailed, Reason: reason}
}

// MatchEvent is published when a search produces a match. Delivery to the
// interested parties is handled outside this service.
type MatchEvent struct {
	SearchID    string    `json:"search_id"`
	RequesterID string    `json:"requester_id"`
	OfferID     string    `json:"offer_id"`
	DriverID    string    `json:"driver_id"`
	MatchedAt   time.Time `json:"matched_at"`
}
