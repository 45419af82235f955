// Package geo provides the approximate planar geometry used by the
// synthetic data generators: ray-cast containment, polygon construction
// around a center point, and haversine distance. Coordinates are
// [longitude, latitude] pairs as in GeoJSON.
package geo

import (
	"math"
	"math/rand"
)

// DegreesPerKm converts kilometers to degrees at Indian latitudes.
const DegreesPerKm = 1.0 / 111.0

// PointInPolygon reports whether the point (lon, lat) lies inside the ring
// using ray casting. The ring may be open or closed.
func PointInPolygon(lon, lat float64, ring [][]float64) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	// Ignore an explicit closing point.
	if ring[0][0] == ring[n-1][0] && ring[0][1] == ring[n-1][1] {
		n--
	}
	inside := false
	p1x, p1y := ring[0][0], ring[0][1]
	for i := 1; i <= n; i++ {
		p2x, p2y := ring[i%n][0], ring[i%n][1]
		if lat > math.Min(p1y, p2y) && lat <= math.Max(p1y, p2y) && lon <= math.Max(p1x, p2x) {
			var xinters float64
			if p1y != p2y {
				xinters = (lat-p1y)*(p2x-p1x)/(p2y-p1y) + p1x
			}
			if p1x == p2x || lon <= xinters {
				inside = !inside
			}
		}
		p1x, p1y = p2x, p2y
	}
	return inside
}

// RandomPointInPolygon samples a point inside the ring by rejection over the
// bounding box, falling back to the box center after maxAttempts.
func RandomPointInPolygon(rng *rand.Rand, ring [][]float64, maxAttempts int) (lon, lat float64) {
	minLon, minLat := math.Inf(1), math.Inf(1)
	maxLon, maxLat := math.Inf(-1), math.Inf(-1)
	for _, p := range ring {
		minLon = math.Min(minLon, p[0])
		maxLon = math.Max(maxLon, p[0])
		minLat = math.Min(minLat, p[1])
		maxLat = math.Max(maxLat, p[1])
	}
	for i := 0; i < maxAttempts; i++ {
		lon = minLon + rng.Float64()*(maxLon-minLon)
		lat = minLat + rng.Float64()*(maxLat-minLat)
		if PointInPolygon(lon, lat, ring) {
			return lon, lat
		}
	}
	return (minLon + maxLon) / 2, (minLat + maxLat) / 2
}

// RadiusDegForHectares converts a target area in hectares to an equivalent
// circle radius in degrees (1 ha = 0.01 km2, 111 km per degree).
func RadiusDegForHectares(areaHectares float64) float64 {
	radiusKm := math.Sqrt(areaHectares / 100.0 / math.Pi)
	return radiusKm * DegreesPerKm
}

// IrregularPolygon builds a closed ring of numPoints vertices around the
// center, with each vertex radius perturbed by a factor in [jitterMin,
// jitterMax]. Used for forest boundaries and community areas.
func IrregularPolygon(rng *rand.Rand, centerLat, centerLon, radiusDeg float64, numPoints int, jitterMin, jitterMax float64) [][]float64 {
	if numPoints < 3 {
		numPoints = 3
	}
	ring := make([][]float64, 0, numPoints+1)
	for i := 0; i < numPoints; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numPoints)
		r := radiusDeg * (jitterMin + rng.Float64()*(jitterMax-jitterMin))
		lat := centerLat + r*math.Cos(angle)
		lon := centerLon + r*math.Sin(angle)
		ring = append(ring, []float64{lon, lat})
	}
	ring = append(ring, []float64{ring[0][0], ring[0][1]})
	return ring
}

// RotatedRect builds a closed rectangular ring of the given width and height
// in degrees, rotated by a random angle in [-maxRotation, maxRotation].
// Typical for agricultural and individual plots.
func RotatedRect(rng *rand.Rand, centerLat, centerLon, width, height, maxRotation float64) [][]float64 {
	rotation := -maxRotation + rng.Float64()*2*maxRotation
	corners := [][2]float64{
		{-width / 2, -height / 2},
		{width / 2, -height / 2},
		{width / 2, height / 2},
		{-width / 2, height / 2},
	}
	ring := make([][]float64, 0, 5)
	for _, c := range corners {
		x := c[0]*math.Cos(rotation) - c[1]*math.Sin(rotation)
		y := c[0]*math.Sin(rotation) + c[1]*math.Cos(rotation)
		ring = append(ring, []float64{centerLon + x, centerLat + y})
	}
	ring = append(ring, []float64{ring[0][0], ring[0][1]})
	return ring
}

// Distance returns the haversine distance in kilometers.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadius = 6371.0 // Earth's radius in kilometers

	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

// ApproxAreaKm2 returns the approximate area of a closed ring in square
// kilometers, via the shoelace formula with a cos-latitude correction.
// Good enough for demo-data plausibility, not survey work.
func ApproxAreaKm2(ring [][]float64) float64 {
	n := len(ring)
	if n < 4 {
		return 0
	}
	var sum, latSum float64
	for i := 0; i < n-1; i++ {
		sum += ring[i][0]*ring[i+1][1] - ring[i+1][0]*ring[i][1]
		latSum += ring[i][1]
	}
	meanLat := latSum / float64(n-1) * math.Pi / 180
	areaDeg2 := math.Abs(sum) / 2
	return areaDeg2 * 111.0 * 111.0 * math.Cos(meanLat)
}
