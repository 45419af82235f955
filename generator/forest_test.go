package generator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanachitra/geo"
)

func squareRing(centerLon, centerLat, half float64) [][]float64 {
	return [][]float64{
		{centerLon - half, centerLat - half},
		{centerLon + half, centerLat - half},
		{centerLon + half, centerLat + half},
		{centerLon - half, centerLat + half},
		{centerLon - half, centerLat - half},
	}
}

func TestForestPolygonsFromLanduse(t *testing.T) {
	fc := GenerateLanduse(rand.New(rand.NewSource(5)), "telangana")
	require.NotNil(t, fc)

	polys := ForestPolygonsFromLanduse(fc)
	require.NotEmpty(t, polys)

	treeCover := 0
	for _, f := range fc.Features {
		if f.Properties["landuse_type"] == "Tree cover" {
			treeCover++
		}
	}
	assert.Len(t, polys, treeCover)

	for _, p := range polys {
		assert.GreaterOrEqual(t, len(p.Ring), 4)
		assert.NotEmpty(t, p.District)
		assert.Greater(t, p.AreaKm2, 0.0)
	}
}

func TestForestPolygonsFromLanduseNilCollection(t *testing.T) {
	assert.Empty(t, ForestPolygonsFromLanduse(nil))
}

func TestLargestForestPolygons(t *testing.T) {
	polys := []ForestPolygon{
		{Ring: squareRing(79, 18, 0.01)},
		{Ring: squareRing(79, 18, 0.1)},
		{Ring: squareRing(79, 18, 0.05)},
	}

	kept := LargestForestPolygons(polys, 2)
	require.Len(t, kept, 2)
	assert.Greater(t, ringArea(kept[0].Ring), ringArea(kept[1].Ring))

	// minCount larger than the input is clamped.
	assert.Len(t, LargestForestPolygons(polys, 10), 3)
}

func TestBuildForestLayer(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	polys := []ForestPolygon{
		{Ring: squareRing(79, 18, 0.1), District: "Adilabad"},
		{Ring: squareRing(80, 18.5, 0.05), District: "Khammam", AreaKm2: 42.5},
	}

	fc := BuildForestLayer(rng, polys)
	require.Len(t, fc.Features, 2)
	assert.Equal(t, 2, fc.Properties["total_features"])

	first := fc.Features[0].Properties
	assert.Equal(t, "FOREST_TG_0001", first["forest_id"])
	assert.Equal(t, "Adilabad", first["district"])
	assert.Equal(t, "Telangana", first["state"])
	// Missing area falls back to the ring's approximate area.
	assert.InDelta(t, geo.ApproxAreaKm2(squareRing(79, 18, 0.1)), first["area_km2"].(float64), 0.01)

	second := fc.Features[1].Properties
	assert.Equal(t, 42.5, second["area_km2"])
	assert.Equal(t, 4250.0, second["area_hectares"])
}

func TestGenerateConstrainedFRAPlacement(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	forest := ForestPolygon{Ring: squareRing(79.0, 18.0, 1.0), District: "Adilabad", AreaKm2: 1000}

	fc := GenerateConstrainedFRA(rng, []ForestPolygon{forest}, 1)
	require.NotEmpty(t, fc.Features)
	assert.Equal(t, 1, fc.Properties["forest_polygons_used"])

	counts := make(map[string]int)
	for _, f := range fc.Features {
		claimType := f.Properties["claim_type"].(string)
		counts[claimType]++

		assert.Equal(t, "Telangana", f.Properties["state"])
		assert.Equal(t, "Adilabad", f.Properties["district"])
		assert.Equal(t, true, f.Properties["forest_constrained"])

		// Centers are rejection-sampled inside the forest ring and claim
		// radii top out below 0.02 degrees, so every vertex stays within
		// the slightly padded boundary. Unconstrained state-center
		// placement would scatter rings far outside it.
		ring := f.Geometry.PolygonRing()
		require.GreaterOrEqual(t, len(ring), 4)
		padded := squareRing(79.0, 18.0, 1.02)
		for _, p := range ring {
			assert.True(t, geo.PointInPolygon(p[0], p[1], padded),
				"vertex outside forest boundary: %v", p)
		}
	}
	assert.Equal(t, 1, counts["CFR"])
	assert.GreaterOrEqual(t, counts["IFR"], 15)
	assert.GreaterOrEqual(t, counts["CR"], 3)
}

func TestGenerateConstrainedFRAClampsVillages(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	forest := ForestPolygon{Ring: squareRing(79.0, 18.0, 0.5), District: "Nirmal"}

	fc := GenerateConstrainedFRA(rng, []ForestPolygon{forest}, 6)

	cfrs := 0
	for _, f := range fc.Features {
		if f.Properties["claim_type"] == "CFR" {
			cfrs++
		}
	}
	assert.Equal(t, 1, cfrs)
}

func TestConstrainedRingPullsVerticesInward(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	// Boundary covers only the eastern half around the center, so the
	// western vertices land outside and must be pulled toward the center.
	boundary := [][]float64{
		{79.0, 17.0}, {80.0, 17.0}, {80.0, 19.0}, {79.0, 19.0}, {79.0, 17.0},
	}
	centerLat, centerLon := 18.0, 79.0005

	ring := constrainedRing(rng, centerLat, centerLon, 400, boundary)
	require.GreaterOrEqual(t, len(ring), 7)
	assert.Equal(t, ring[0], ring[len(ring)-1])

	radiusDeg := geo.RadiusDegForHectares(400) * 0.8
	for _, p := range ring {
		d := math.Hypot(p[0]-centerLon, p[1]-centerLat)
		if geo.PointInPolygon(p[0], p[1], boundary) {
			assert.LessOrEqual(t, d, radiusDeg*1.001)
		} else {
			// An outside vertex was retried at half radius.
			assert.LessOrEqual(t, d, radiusDeg*0.5*1.001)
		}
	}
}

func TestPointInsideBoth(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	boundary := squareRing(79.0, 18.0, 0.5)
	inner := squareRing(79.1, 18.1, 0.05)

	for i := 0; i < 25; i++ {
		lon, lat := pointInsideBoth(rng, inner, boundary)
		assert.True(t, geo.PointInPolygon(lon, lat, inner))
		assert.True(t, geo.PointInPolygon(lon, lat, boundary))
	}
}
