package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLanduseKnownStates(t *testing.T) {
	for _, state := range LanduseStateNames() {
		fc := GenerateLanduse(rand.New(rand.NewSource(4)), state)
		require.NotNil(t, fc, state)
		assert.NotEmpty(t, fc.Features, state)
		assert.Equal(t, len(fc.Features), fc.Properties["total_features"])
	}
}

func TestGenerateLanduseCaseInsensitive(t *testing.T) {
	fc := GenerateLanduse(rand.New(rand.NewSource(4)), "Telangana")
	assert.NotNil(t, fc)

	assert.Nil(t, GenerateLanduse(rand.New(rand.NewSource(4)), "goa"))
}

func TestGenerateLanduseDeterministic(t *testing.T) {
	a := GenerateLanduse(rand.New(rand.NewSource(8)), "odisha")
	b := GenerateLanduse(rand.New(rand.NewSource(8)), "odisha")
	require.Equal(t, len(a.Features), len(b.Features))
	for i := range a.Features {
		assert.Equal(t, a.Features[i].Properties["landuse_type"], b.Features[i].Properties["landuse_type"])
		assert.Equal(t, a.Features[i].Geometry, b.Features[i].Geometry)
	}
}

func TestGenerateLanduseProperties(t *testing.T) {
	fc := GenerateLanduse(rand.New(rand.NewSource(6)), "madhya pradesh")
	legend := LanduseLegend()
	for _, f := range fc.Features {
		landuseType := f.Properties["landuse_type"].(string)
		cat, ok := legend[landuseType]
		require.True(t, ok, landuseType)
		assert.Equal(t, cat.Code, f.Properties["landuse_code"])
		assert.Equal(t, cat.Color, f.Properties["color"])
		assert.Equal(t, "Madhya Pradesh", f.Properties["state"])

		area := f.Properties["area_km2"].(float64)
		assert.Greater(t, area, 0.0)
		assert.InDelta(t, area*100, f.Properties["area_hectares"].(float64), 0.5)
	}
}

func TestLanduseLegendComplete(t *testing.T) {
	legend := LanduseLegend()
	assert.Len(t, legend, 7)
	assert.Equal(t, 10, legend["Tree cover"].Code)
	assert.Equal(t, 80, legend["Permanent water bodies"].Code)
}
