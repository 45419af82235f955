package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unitSquare = [][]float64{
	{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0},
}

func TestPointInPolygon(t *testing.T) {
	assert.True(t, PointInPolygon(0.5, 0.5, unitSquare))
	assert.False(t, PointInPolygon(1.5, 0.5, unitSquare))
	assert.False(t, PointInPolygon(0.5, -0.1, unitSquare))

	// Open rings work too.
	open := unitSquare[:4]
	assert.True(t, PointInPolygon(0.5, 0.5, open))

	// Degenerate ring.
	assert.False(t, PointInPolygon(0, 0, [][]float64{{0, 0}, {1, 1}}))
}

func TestRandomPointInPolygon(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		lon, lat := RandomPointInPolygon(rng, unitSquare, 100)
		assert.True(t, PointInPolygon(lon, lat, unitSquare))
	}
}

func TestRandomPointInPolygonFallsBackToCenter(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	// Zero attempts forces the bbox-center fallback.
	lon, lat := RandomPointInPolygon(rng, unitSquare, 0)
	assert.Equal(t, 0.5, lon)
	assert.Equal(t, 0.5, lat)
}

func TestRadiusDegForHectares(t *testing.T) {
	// 100 ha = 1 km2, so radius is sqrt(1/pi) km.
	expected := math.Sqrt(1/math.Pi) / 111.0
	assert.InDelta(t, expected, RadiusDegForHectares(100), 1e-12)

	// Monotonic in area.
	assert.Greater(t, RadiusDegForHectares(2000), RadiusDegForHectares(500))
}

func TestIrregularPolygonClosedRing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ring := IrregularPolygon(rng, 18.5, 79.0, 0.05, 12, 0.7, 1.3)
	require.Len(t, ring, 13)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	// Every vertex stays within the jitter envelope of the center.
	for _, p := range ring {
		d := math.Hypot(p[0]-79.0, p[1]-18.5)
		assert.LessOrEqual(t, d, 0.05*1.3+1e-9)
	}
}

func TestRotatedRectClosedRing(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ring := RotatedRect(rng, 18.5, 79.0, 0.01, 0.02, math.Pi/4)
	require.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	// Rotation preserves the diagonal length.
	diag := math.Hypot(ring[2][0]-ring[0][0], ring[2][1]-ring[0][1])
	assert.InDelta(t, math.Hypot(0.01, 0.02), diag, 1e-9)
}

func TestDistance(t *testing.T) {
	// Hyderabad to Bhopal, roughly 662 km.
	d := Distance(17.385, 78.4867, 23.2599, 77.4126)
	assert.InDelta(t, 662, d, 10)

	assert.Zero(t, Distance(18.5, 79.0, 18.5, 79.0))
}

func TestApproxAreaKm2(t *testing.T) {
	// Unit square at the equator: 111 * 111 km2 with small cos correction.
	area := ApproxAreaKm2(unitSquare)
	assert.InDelta(t, 111.0*111.0, area, 111.0*111.0*0.01)

	assert.Zero(t, ApproxAreaKm2([][]float64{{0, 0}, {1, 1}, {0, 0}}))
}
