package matching

// radiusBracket maps a trip-length band to the pickup and drop radii used
// by the coordinate matching path. Longer trips tolerate larger detours to
// reach a compatible offer.
type radiusBracket struct {
	minTripKM float64
	pickupKM  float64
	dropKM    float64
}

// Brackets are half-open on the trip distance: a boundary value belongs to
// the higher bracket (a 5.0 km trip uses the 5–20 band).
var radiusBrackets = []radiusBracket{
	{minTripKM: 0, pickupKM: 1.0, dropKM: 3.0},
	{minTripKM: 5, pickupKM: 2.0, dropKM: 4.0},
	{minTripKM: 20, pickupKM: 3.0, dropKM: 6.0},
	{minTripKM: 80, pickupKM: 5.0, dropKM: 10.0},
}

// RadiiForTrip returns the pickup and drop radii for a trip of the given
// straight-line length between the requested origin and destination.
func RadiiForTrip(tripKM float64) (pickupKM, dropKM float64) {
	bracket := radiusBrackets[0]
	for _, b := range radiusBrackets[1:] {
		if tripKM >= b.minTripKM {
			bracket = b
		}
	}
	return bracket.pickupKM, bracket.dropKM
}
