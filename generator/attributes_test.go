package generator

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanachitra/models"
)

func TestGenerateAttributesTypeConditioning(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	for i := 0; i < 20; i++ {
		attrs := GenerateAttributes(rng, "Water Body")
		require.NotNil(t, attrs.WaterLevel)
		assert.GreaterOrEqual(t, *attrs.WaterLevel, 120.0)

		attrs = GenerateAttributes(rng, models.FRATypeCFR)
		require.NotNil(t, attrs.ForestCoverPercentage)
		assert.GreaterOrEqual(t, *attrs.ForestCoverPercentage, 50.0)

		attrs = GenerateAttributes(rng, "Agriculture")
		require.NotNil(t, attrs.CropYield)
		assert.GreaterOrEqual(t, *attrs.CropYield, 10.0)
		assert.LessOrEqual(t, *attrs.ForestCoverPercentage, 90.0)
	}
}

func TestGenerateAttributesSoilPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 50; i++ {
		attrs := GenerateAttributes(rng, models.FRATypeCR)
		require.NotNil(t, attrs.SoilQuality)
		assert.Contains(t, []string{"Moderate", "Good"}, *attrs.SoilQuality)
	}
}

func TestBuildAttributeCacheCoversAllClaims(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	fc := GenerateClaims(rng)

	cache := BuildAttributeCache(rng, fc)
	assert.Equal(t, len(fc.Features), cache.Count)
	assert.Len(t, cache.Items, cache.Count)
	assert.NotEmpty(t, cache.GeneratedAt)

	for _, f := range fc.Features {
		id := f.Properties["claim_id"].(string)
		attrs, ok := cache.Items[id]
		require.True(t, ok, id)
		assert.False(t, attrs.Empty())
	}
}

func TestBuildAttributeCacheSkipsUnidentifiedFeatures(t *testing.T) {
	fc := models.NewFeatureCollection()
	fc.Features = append(fc.Features, models.Feature{
		Type:       "Feature",
		Properties: map[string]interface{}{"note": "no identifier"},
	})
	cache := BuildAttributeCache(rand.New(rand.NewSource(1)), fc)
	assert.Zero(t, cache.Count)
}

func TestWriteJSONCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.json")
	require.NoError(t, WriteJSON(path, map[string]int{"a": 1}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc map[string]int
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 1, doc["a"])
}
