package matching

import (
	"testing"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MG Road, Bangalore", "mgroadbangalore"},
		{"  Electronic City.  ", "electroniccity"},
		{"HSR Layout", "hsrlayout"},
		{", . ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeAddress(tt.in); got != tt.want {
			t.Errorf("NormalizeAddress(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddressesOverlap(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{"request inside offer", "MG Road", "MG Road, Bangalore", true},
		{"offer inside request", "MG Road, Bangalore", "mg road", true},
		{"punctuation and spacing ignored", "Indiranagar.", "indira nagar", true},
		{"no overlap", "Whitefield", "Koramangala", false},
		{"identical after normalization", "H.S.R. Layout", "hsr layout", true},
		{"empty never matches", "", "MG Road", false},
		{"punctuation-only never matches", ", .", "MG Road", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := addressesOverlap(tt.a, tt.b); got != tt.want {
				t.Errorf("addressesOverlap(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// The test is bidirectional: swapping arguments must not
			// change the outcome.
			if got := addressesOverlap(tt.b, tt.a); got != tt.want {
				t.Errorf("addressesOverlap(%q, %q) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}
