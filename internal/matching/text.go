package matching

import (
	"strings"
)

var addressStripper = strings.NewReplacer(" ", "", ",", "", ".", "")

// NormalizeAddress lower-cases an address string and strips spaces, commas
// and periods, so "MG Road, Bangalore" and "mg road bangalore" compare equal.
func NormalizeAddress(s string) string {
	return addressStripper.Replace(strings.ToLower(s))
}

// addressesOverlap is the text-fallback locality test: either normalized
// string containing the other counts as a match. An empty normalized string
// never matches.
func addressesOverlap(a, b string) bool {
	na := NormalizeAddress(a)
	nb := NormalizeAddress(b)
	if na == "" || nb == "" {
		return false
	}
	return strings.Contains(na, nb) || strings.Contains(nb, na)
}
