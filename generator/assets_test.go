package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAssetsDeterministic(t *testing.T) {
	a := GenerateAssets(rand.New(rand.NewSource(31)), 2)
	b := GenerateAssets(rand.New(rand.NewSource(31)), 2)

	require.Equal(t, len(a.Features), len(b.Features))
	for i := range a.Features {
		assert.Equal(t, a.Features[i].Properties["class"], b.Features[i].Properties["class"])
		assert.Equal(t, a.Features[i].Properties["area_km2"], b.Features[i].Properties["area_km2"])
	}
}

func TestGenerateAssetsProperties(t *testing.T) {
	fc := GenerateAssets(rand.New(rand.NewSource(19)), 2)
	require.NotEmpty(t, fc.Features)
	assert.Equal(t, len(fc.Features), fc.Properties["total_features"])

	classIDs := map[string]int{"water": 1, "forest": 2, "agricultural": 3, "homestead": 4}
	states := make(map[string]bool)

	for _, f := range fc.Features {
		props := f.Properties
		className := props["class"].(string)
		wantID, known := classIDs[className]
		require.True(t, known, "unexpected class %q", className)
		assert.Equal(t, wantID, props["class_id"])

		class := assetClasses[className]
		area := props["area_km2"].(float64)
		assert.GreaterOrEqual(t, area, class.MinKm2)
		assert.LessOrEqual(t, area, class.MaxKm2)
		assert.InDelta(t, area*100, props["area_hectares"].(float64), 0.5)

		conf := props["confidence"].(float64)
		assert.GreaterOrEqual(t, conf, 0.5)
		assert.LessOrEqual(t, conf, 1.0)

		lat := props["centroid_lat"].(float64)
		lon := props["centroid_lon"].(float64)
		assert.GreaterOrEqual(t, lat, indiaLatMin)
		assert.LessOrEqual(t, lat, indiaLatMax)
		assert.GreaterOrEqual(t, lon, indiaLonMin)
		assert.LessOrEqual(t, lon, indiaLonMax)

		ring := f.Geometry.PolygonRing()
		require.GreaterOrEqual(t, len(ring), 4)
		assert.Equal(t, ring[0], ring[len(ring)-1])

		states[props["state"].(string)] = true
	}

	assert.Len(t, states, len(assetStates))
}

func TestGenerateAssetsClassSpecificFields(t *testing.T) {
	fc := GenerateAssets(rand.New(rand.NewSource(23)), 1)

	for _, f := range fc.Features {
		props := f.Properties
		switch props["class"] {
		case "water":
			assert.Contains(t, props, "water_type")
		case "forest":
			assert.Contains(t, props, "forest_type")
			assert.Contains(t, props, "canopy_cover")
		case "agricultural":
			assert.Contains(t, props, "crop_type")
			assert.Contains(t, props, "irrigation_type")
		case "homestead":
			assert.Contains(t, props, "settlement_type")
			assert.Contains(t, props, "population_estimate")
		}
	}
}

func TestGenerateAssetsTerrainWeighting(t *testing.T) {
	fc := GenerateAssets(rand.New(rand.NewSource(29)), 10)

	waterByState := make(map[string]int)
	forestByState := make(map[string]int)
	for _, f := range fc.Features {
		state := f.Properties["state"].(string)
		switch f.Properties["class"] {
		case "water":
			waterByState[state]++
		case "forest":
			forestByState[state]++
		}
	}

	// Coastal plains carry extra water bodies, hill plateaus extra forest.
	assert.Equal(t, 15, waterByState["Odisha"])
	assert.Equal(t, 10, waterByState["Telangana"])
	assert.Equal(t, 13, forestByState["Jharkhand"])
	assert.Equal(t, 10, forestByState["Kerala"])
}
