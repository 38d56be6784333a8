package matching

import (
	"testing"
)

func TestRadiiForTrip(t *testing.T) {
	tests := []struct {
		name       string
		tripKM     float64
		wantPickup float64
		wantDrop   float64
	}{
		{"short hop", 0.5, 1.0, 3.0},
		{"just under first boundary", 4.99, 1.0, 3.0},
		{"exactly on first boundary", 5.0, 2.0, 4.0},
		{"mid city trip", 12.0, 2.0, 4.0},
		{"exactly on second boundary", 20.0, 3.0, 6.0},
		{"long trip", 50.0, 3.0, 6.0},
		{"exactly on third boundary", 80.0, 5.0, 10.0},
		{"intercity", 400.0, 5.0, 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pickup, drop := RadiiForTrip(tt.tripKM)
			if pickup != tt.wantPickup || drop != tt.wantDrop {
				t.Errorf("RadiiForTrip(%v) = (%v, %v), want (%v, %v)",
					tt.tripKM, pickup, drop, tt.wantPickup, tt.wantDrop)
			}
		})
	}
}

func TestRadiiMonotonicity(t *testing.T) {
	prevPickup, prevDrop := RadiiForTrip(0)
	for _, tripKM := range []float64{1, 5, 10, 20, 40, 80, 200} {
		pickup, drop := RadiiForTrip(tripKM)
		if pickup < prevPickup || drop < prevDrop {
			t.Fatalf("radii shrank at trip %v km: (%v, %v) after (%v, %v)",
				tripKM, pickup, drop, prevPickup, prevDrop)
		}
		prevPickup, prevDrop = pickup, drop
	}
}
