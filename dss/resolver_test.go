package dss

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanachitra/models"
)

func TestSynthesizeDeterministic(t *testing.T) {
	a := Synthesize("CFR_OD_KPT_0001")
	b := Synthesize("CFR_OD_KPT_0001")
	assert.Equal(t, a, b)

	c := Synthesize("CFR_OD_KPT_0002")
	assert.NotEqual(t, a, c)
}

func TestSynthesizeValueRanges(t *testing.T) {
	ids := []string{"IFR_TG_ADB_0007", "CR_TR_DHL_0003", "AGRI_MP_BTL_0042", "x"}
	for _, id := range ids {
		attrs := Synthesize(id)
		require.NotNil(t, attrs.WaterLevel)
		assert.GreaterOrEqual(t, *attrs.WaterLevel, 50.0)
		assert.LessOrEqual(t, *attrs.WaterLevel, 200.0)

		require.NotNil(t, attrs.GroundwaterIndex)
		assert.GreaterOrEqual(t, *attrs.GroundwaterIndex, 0.3)
		assert.LessOrEqual(t, *attrs.GroundwaterIndex, 0.9)

		require.NotNil(t, attrs.SoilQuality)
		assert.Contains(t, []string{"Poor", "Moderate", "Good"}, *attrs.SoilQuality)

		require.NotNil(t, attrs.CropYield)
		assert.GreaterOrEqual(t, *attrs.CropYield, 5.0)
		assert.LessOrEqual(t, *attrs.CropYield, 25.0)

		require.NotNil(t, attrs.ForestCoverPercentage)
		assert.GreaterOrEqual(t, *attrs.ForestCoverPercentage, 20.0)
		assert.LessOrEqual(t, *attrs.ForestCoverPercentage, 80.0)

		require.NotNil(t, attrs.PovertyIndex)
		assert.GreaterOrEqual(t, *attrs.PovertyIndex, 0.0)
		assert.LessOrEqual(t, *attrs.PovertyIndex, 1.0)
	}
}

func TestResolvePrefersJSONCache(t *testing.T) {
	dir := t.TempDir()
	cachePath := filepath.Join(dir, "polygon_attributes.json")

	cache := attributeCache{
		GeneratedAt: "2025-01-01T00:00:00Z",
		Count:       1,
		Items: map[string]models.PolygonAttributes{
			"CFR_OD_KPT_0001": {
				WaterLevel:  models.Float(42),
				SoilQuality: models.String("Good"),
			},
		},
	}
	data, err := json.Marshal(cache)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cachePath, data, 0o644))

	r := &Resolver{CachePath: cachePath}
	attrs := r.Resolve(context.Background(), "CFR_OD_KPT_0001")
	require.NotNil(t, attrs.WaterLevel)
	assert.Equal(t, 42.0, *attrs.WaterLevel)
	require.NotNil(t, attrs.SoilQuality)
	assert.Equal(t, "Good", *attrs.SoilQuality)
}

func TestResolveFallsThroughToSynthesis(t *testing.T) {
	// Unknown id in the cache falls through to deterministic synthesis.
	r := &Resolver{CachePath: filepath.Join(t.TempDir(), "missing.json")}
	attrs := r.Resolve(context.Background(), "CFR_OD_KPT_0099")
	assert.Equal(t, Synthesize("CFR_OD_KPT_0099"), attrs)
}

func TestResolveNeverNil(t *testing.T) {
	r := &Resolver{}
	attrs := r.Resolve(context.Background(), "")
	require.NotNil(t, attrs)
	assert.False(t, attrs.Empty())
}
