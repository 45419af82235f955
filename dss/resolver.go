package dss

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"math/rand"
	"os"

	"vanachitra/models"
	"vanachitra/store"
)

// Resolver resolves polygon attributes in strict priority order:
// PostgreSQL (when configured), then the local JSON cache, then
// deterministic synthesis seeded by the polygon id.
type Resolver struct {
	Store     *store.Store
	CachePath string
}

// attributeCache is the on-disk JSON cache written by the seeder.
type attributeCache struct {
	GeneratedAt string                              `json:"generated_at"`
	Count       int                                 `json:"count"`
	Items       map[string]models.PolygonAttributes `json:"items"`
}

// Resolve returns attributes for the polygon id. Never fails: the synthetic
// tier always produces a result.
func (r *Resolver) Resolve(ctx context.Context, polygonID string) *models.PolygonAttributes {
	if r.Store != nil {
		attrs, err := r.Store.GetAttributes(ctx, polygonID)
		if err != nil {
			log.Printf("polygon_attributes DB lookup failed for %s: %v", polygonID, err)
		} else if !attrs.Empty() {
			return attrs
		}
	}
	if attrs := r.fromCache(polygonID); !attrs.Empty() {
		return attrs
	}
	return Synthesize(polygonID)
}

func (r *Resolver) fromCache(polygonID string) *models.PolygonAttributes {
	if r.CachePath == "" {
		return nil
	}
	data, err := os.ReadFile(r.CachePath)
	if err != nil {
		return nil
	}
	var cache attributeCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil
	}
	if attrs, ok := cache.Items[polygonID]; ok {
		return &attrs
	}
	return nil
}

// Synthesize generates attributes from a PRNG seeded by the character sum
// of the polygon id, so the same id always yields the same values.
func Synthesize(polygonID string) *models.PolygonAttributes {
	var seed int64
	for _, c := range polygonID {
		seed += int64(c)
	}
	rng := rand.New(rand.NewSource(seed))

	soilChoices := []string{"Poor", "Moderate", "Good"}
	soil := soilChoices[rng.Intn(len(soilChoices))]

	return &models.PolygonAttributes{
		WaterLevel:            models.Float(float64(50 + rng.Intn(151))),
		GroundwaterIndex:      models.Float(round2(0.3 + rng.Float64()*0.6)),
		SoilQuality:           models.String(soil),
		CropYield:             models.Float(round1(5 + rng.Float64()*20)),
		ForestCoverPercentage: models.Float(round1(20 + rng.Float64()*60)),
		PovertyIndex:          models.Float(round2(rng.Float64())),
		InfraIndex:            models.Float(round2(rng.Float64())),
	}
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
