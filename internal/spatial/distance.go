package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// EarthRadiusMiles is the earth radius used for great-circle distances.
const EarthRadiusMiles = 3959.0

// DistanceMiles calculates the great-circle distance between two points in
// statute miles, rounded to one decimal place. Inputs are degrees.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	miles := p1.Distance(p2).Radians() * EarthRadiusMiles
	return math.Round(miles*10) / 10
}
