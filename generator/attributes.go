package generator

import (
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"vanachitra/models"
)

// AttributeCache is the JSON side-table consumed by the DSS resolver.
type AttributeCache struct {
	GeneratedAt string                              `json:"generated_at"`
	Count       int                                 `json:"count"`
	Items       map[string]models.PolygonAttributes `json:"items"`
}

var soilByType = map[string][]string{
	models.FRATypeCFR: {"Good", "Excellent", "Moderate"},
	models.FRATypeIFR: {"Moderate", "Good", "Poor"},
	models.FRATypeCR:  {"Moderate", "Good"},
	"Agriculture":     {"Poor", "Moderate", "Good"},
	"Water Body":      {"Moderate", "Good"},
}

// GenerateAttributes fabricates type-conditioned attributes for a claim:
// water bodies sit on high water tables, agriculture on high yields,
// community forest on high forest cover.
func GenerateAttributes(rng *rand.Rand, fraType string) models.PolygonAttributes {
	var waterLevel float64
	var groundwater, cropYield, forestCover float64

	switch fraType {
	case "Water Body":
		waterLevel = float64(120 + rng.Intn(131))
		groundwater = 0.5 + rng.Float64()*0.4
		cropYield = 5 + rng.Float64()*10
		forestCover = 10 + rng.Float64()*30
	case "Agriculture":
		waterLevel = float64(40 + rng.Intn(101))
		groundwater = 0.2 + rng.Float64()*0.5
		cropYield = 10 + rng.Float64()*25
		forestCover = rng.Float64() * 20
	case models.FRATypeCFR:
		waterLevel = float64(60 + rng.Intn(101))
		groundwater = 0.3 + rng.Float64()*0.5
		cropYield = 8 + rng.Float64()*17
		forestCover = 50 + rng.Float64()*40
	case models.FRATypeCR:
		waterLevel = float64(50 + rng.Intn(101))
		groundwater = 0.3 + rng.Float64()*0.4
		cropYield = 8 + rng.Float64()*14
		forestCover = 30 + rng.Float64()*40
	default: // IFR or unknown
		waterLevel = float64(50 + rng.Intn(101))
		groundwater = 0.2 + rng.Float64()*0.5
		cropYield = 10 + rng.Float64()*18
		forestCover = 10 + rng.Float64()*40
	}

	soils, ok := soilByType[fraType]
	if !ok {
		soils = []string{"Moderate", "Good"}
	}

	return models.PolygonAttributes{
		WaterLevel:            models.Float(waterLevel),
		GroundwaterIndex:      models.Float(roundTo(groundwater, 2)),
		SoilQuality:           models.String(choice(rng, soils)),
		CropYield:             models.Float(roundTo(cropYield, 1)),
		ForestCoverPercentage: models.Float(roundTo(forestCover, 1)),
		PovertyIndex:          models.Float(roundTo(0.3+rng.Float64()*0.6, 2)),
		InfraIndex:            models.Float(roundTo(0.2+rng.Float64()*0.7, 2)),
	}
}

// BuildAttributeCache generates attributes for every identifiable feature
// in the collection.
func BuildAttributeCache(rng *rand.Rand, fc *models.FeatureCollection) *AttributeCache {
	cache := &AttributeCache{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Items:       make(map[string]models.PolygonAttributes),
	}
	for _, f := range fc.Features {
		info := models.ExtractClaimInfo(f.Properties)
		if info.ClaimID == "" {
			continue
		}
		fraType := info.FRAType
		switch info.ClaimType {
		case "CFR":
			fraType = models.FRATypeCFR
		case "IFR":
			fraType = models.FRATypeIFR
		case "CR":
			fraType = models.FRATypeCR
		}
		cache.Items[info.ClaimID] = GenerateAttributes(rng, fraType)
	}
	cache.Count = len(cache.Items)
	return cache
}

// WriteJSON writes any document as indented JSON, creating the directory.
func WriteJSON(path string, doc interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
