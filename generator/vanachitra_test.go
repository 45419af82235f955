package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vanachitra/geo"
	"vanachitra/models"
)

func TestGenerateVanachitraHierarchy(t *testing.T) {
	fc := GenerateVanachitra(rand.New(rand.NewSource(9)), 2)

	// Per CFR: the CFR itself, 12 IFRs, 3 CRs, 8 agriculture plots.
	assert.Len(t, fc.Features, 4*2*(1+12+3+8))
	assert.Equal(t, len(fc.Features), fc.Properties["total_features"])

	counts := make(map[string]int)
	for _, f := range fc.Features {
		switch {
		case f.Properties["claim_type"] != nil:
			counts[f.Properties["claim_type"].(string)]++
		case f.Properties["feature_type"] != nil:
			counts[f.Properties["feature_type"].(string)]++
		}
	}
	assert.Equal(t, 8, counts["CFR"])
	assert.Equal(t, 96, counts["IFR"])
	assert.Equal(t, 24, counts["CR"])
	assert.Equal(t, 64, counts["Agriculture"])
}

func TestGenerateVanachitraChildrenInsideCFR(t *testing.T) {
	fc := GenerateVanachitra(rand.New(rand.NewSource(9)), 1)

	var cfrRing [][]float64
	for _, f := range fc.Features {
		if f.Properties["claim_type"] == "CFR" && f.Properties["state"] == "Telangana" {
			cfrRing = f.Geometry.PolygonRing()
			break
		}
	}
	require.NotNil(t, cfrRing)

	// Every Telangana point CR sits inside its parent CFR.
	for _, f := range fc.Features {
		if f.Properties["claim_type"] == "CR" && f.Properties["state"] == "Telangana" &&
			f.Geometry.Type == "Point" {
			coords := f.Geometry.Coordinates.([]interface{})
			lon := coords[0].(float64)
			lat := coords[1].(float64)
			assert.True(t, geo.PointInPolygon(lon, lat, cfrRing))
		}
	}
}

func TestGenerateVanachitraCFRSeparation(t *testing.T) {
	fc := GenerateVanachitra(rand.New(rand.NewSource(21)), 3)

	byState := make(map[string][][2]float64)
	for _, f := range fc.Features {
		if f.Properties["claim_type"] != "CFR" {
			continue
		}
		ring := f.Geometry.PolygonRing()
		var lat, lon float64
		for _, p := range ring[:len(ring)-1] {
			lon += p[0]
			lat += p[1]
		}
		n := float64(len(ring) - 1)
		state := f.Properties["state"].(string)
		byState[state] = append(byState[state], [2]float64{lat / n, lon / n})
	}

	// Centroids of sibling CFRs stay at least a few kilometers apart.
	for _, centers := range byState {
		for i := 0; i < len(centers); i++ {
			for j := i + 1; j < len(centers); j++ {
				d := geo.Distance(centers[i][0], centers[i][1], centers[j][0], centers[j][1])
				assert.Greater(t, d, 3.0)
			}
		}
	}
}

func TestGenerateVanachitraCFRProperties(t *testing.T) {
	fc := GenerateVanachitra(rand.New(rand.NewSource(2)), 1)
	for _, f := range fc.Features {
		if f.Properties["claim_type"] != "CFR" {
			continue
		}
		assert.Equal(t, models.FRATypeCFR, f.Properties["fra_type"])
		area := f.Properties["area_claimed"].(float64)
		assert.GreaterOrEqual(t, area, 500.0)
		assert.LessOrEqual(t, area, 2000.0)
		assert.Equal(t, true, f.Properties["community_management"])
	}
}
