package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"vanachitra/geo"
	"vanachitra/models"
)

// ForestPolygon is one Tree cover polygon extracted from a land-use
// layer, used as a placement boundary for forest-constrained claims.
type ForestPolygon struct {
	Ring     [][]float64
	District string
	AreaKm2  float64
}

var telanganaForestDistricts = []string{
	"Adilabad", "Kumuram Bheem", "Mancherial", "Nirmal", "Khammam", "Warangal",
}

var forestTypes = []string{"Dry Deciduous", "Moist Deciduous", "Scrub Forest"}

// ForestPolygonsFromLanduse extracts every Tree cover polygon from a
// land-use collection as an individual forest area.
func ForestPolygonsFromLanduse(fc *models.FeatureCollection) []ForestPolygon {
	var polys []ForestPolygon
	if fc == nil {
		return polys
	}
	for _, f := range fc.Features {
		landuseType, _ := f.Properties["landuse_type"].(string)
		if landuseType != "Tree cover" {
			continue
		}
		ring := f.Geometry.PolygonRing()
		if len(ring) < 4 {
			continue
		}
		district, _ := f.Properties["district"].(string)
		area, _ := f.Properties["area_km2"].(float64)
		polys = append(polys, ForestPolygon{Ring: ring, District: district, AreaKm2: area})
	}
	return polys
}

// LargestForestPolygons orders forest polygons by ring area, largest
// first, and keeps the ones suitable for CFR placement.
func LargestForestPolygons(polys []ForestPolygon, minCount int) []ForestPolygon {
	sorted := make([]ForestPolygon, len(polys))
	copy(sorted, polys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ringArea(sorted[i].Ring) > ringArea(sorted[j].Ring)
	})
	keep := minCount
	if third := len(sorted) / 3; third > keep {
		keep = third
	}
	if keep > len(sorted) {
		keep = len(sorted)
	}
	return sorted[:keep]
}

// ringArea is the plain shoelace area in square degrees, enough to rank
// polygons by size.
func ringArea(ring [][]float64) float64 {
	var sum float64
	n := len(ring)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return math.Abs(sum) / 2
}

// BuildForestLayer turns forest polygons into the dense forest boundary
// layer the map overlays on top of the claim data.
func BuildForestLayer(rng *rand.Rand, polys []ForestPolygon) *models.FeatureCollection {
	fc := models.NewFeatureCollection()
	for i, p := range polys {
		areaKm2 := p.AreaKm2
		if areaKm2 == 0 {
			areaKm2 = roundTo(geo.ApproxAreaKm2(p.Ring), 2)
		}
		district := p.District
		if district == "" {
			district = choice(rng, telanganaForestDistricts)
		}
		fc.Features = append(fc.Features, models.Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"forest_id":     fmt.Sprintf("FOREST_TG_%04d", i+1),
				"district":      district,
				"state":         "Telangana",
				"forest_type":   choice(rng, forestTypes),
				"canopy_cover":  roundTo(0.4+rng.Float64()*0.55, 2),
				"area_km2":      areaKm2,
				"area_hectares": roundTo(areaKm2*100, 2),
				"data_source":   "ESA WorldCover 2021 (Simulated)",
			},
			Geometry: &models.Geometry{Type: "Polygon", Coordinates: []interface{}{p.Ring}},
		})
	}
	fc.Properties = map[string]interface{}{
		"name":           "Telangana Dense Forest Boundaries",
		"total_features": len(fc.Features),
		"generated_at":   time.Now().Format(time.RFC3339),
		"projection":     "EPSG:4326",
	}
	return fc
}

// GenerateConstrainedFRA builds Telangana FRA claims placed strictly
// inside forest boundaries: each village gets one CFR inside a large
// forest polygon, with IFR and CR features inside both the CFR and the
// forest ring.
func GenerateConstrainedFRA(rng *rand.Rand, forests []ForestPolygon, numVillages int) *models.FeatureCollection {
	fc := models.NewFeatureCollection()
	suitable := LargestForestPolygons(forests, numVillages)
	if numVillages > len(suitable) {
		numVillages = len(suitable)
	}

	telangana := forestStates[0]
	for v := 0; v < numVillages; v++ {
		forest := suitable[v]
		district := forest.District
		if district == "" {
			district = choice(rng, telanganaForestDistricts)
		}
		village := villageName(rng, telangana)
		community := choice(rng, telangana.Communities)

		cfrLon, cfrLat := geo.RandomPointInPolygon(rng, forest.Ring, 200)
		cfrAreaHa := 200 + rng.Float64()*300
		cfrRing := constrainedRing(rng, cfrLat, cfrLon, cfrAreaHa, forest.Ring)

		fc.Features = append(fc.Features, models.Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"claim_id":             fmt.Sprintf("CFR_TG_%s_%03d", districtCode(district), v+1),
				"claim_type":           "CFR",
				"fra_type":             models.FRATypeCFR,
				"village":              village,
				"district":             district,
				"state":                "Telangana",
				"area_claimed":         roundTo(cfrAreaHa, 2),
				"area_unit":            "hectares",
				"status":               weightedChoice(rng, claimStatusWeights),
				"tribal_community":     community,
				"gram_sabha":           village + " Gram Sabha",
				"total_households":     50 + rng.Intn(100),
				"forest_type":          choice(rng, forestTypes),
				"submission_date":      randomDate(rng, 2020, 2024),
				"community_management": true,
				"forest_constrained":   true,
			},
			Geometry: &models.Geometry{Type: "Polygon", Coordinates: []interface{}{cfrRing}},
		})

		numIFRs := 15 + rng.Intn(11)
		for i := 0; i < numIFRs; i++ {
			centerLon, centerLat := pointInsideBoth(rng, cfrRing, forest.Ring)
			areaHa := 0.1 + rng.Float64()*1.4
			ring := constrainedRing(rng, centerLat, centerLon, areaHa, forest.Ring)
			fc.Features = append(fc.Features, models.Feature{
				Type: "Feature",
				Properties: map[string]interface{}{
					"claim_id":           fmt.Sprintf("IFR_TG_%s_%03d", districtCode(district), v*100+i+1),
					"claim_type":         "IFR",
					"fra_type":           models.FRATypeIFR,
					"village":            village,
					"district":           district,
					"state":              "Telangana",
					"area_claimed":       roundTo(areaHa, 2),
					"area_unit":          "hectares",
					"status":             weightedChoice(rng, claimStatusWeights),
					"tribal_community":   community,
					"family_members":     3 + rng.Intn(6),
					"livelihood":         choice(rng, []string{"Agriculture", "NTFP Collection", "Animal Husbandry", "Mixed"}),
					"submission_date":    randomDate(rng, 2020, 2024),
					"survey_number":      fmt.Sprintf("SY_%d", 100+rng.Intn(900)),
					"forest_constrained": true,
				},
				Geometry: &models.Geometry{Type: "Polygon", Coordinates: []interface{}{ring}},
			})
		}

		numCRs := 3 + rng.Intn(3)
		for i := 0; i < numCRs; i++ {
			centerLon, centerLat := pointInsideBoth(rng, cfrRing, forest.Ring)
			areaHa := 1.0 + rng.Float64()*11.0
			ring := constrainedRing(rng, centerLat, centerLon, areaHa, forest.Ring)
			fc.Features = append(fc.Features, models.Feature{
				Type: "Feature",
				Properties: map[string]interface{}{
					"claim_id":               fmt.Sprintf("CR_TG_%s_%03d", districtCode(district), v*100+i+1),
					"claim_type":             "CR",
					"fra_type":               models.FRATypeCR,
					"resource_type":          choice(rng, []string{"Grazing Ground", "NTFP Collection Area", "Sacred Grove", "Community Water Source"}),
					"village":                village,
					"district":               district,
					"state":                  "Telangana",
					"area_claimed":           roundTo(areaHa, 2),
					"area_unit":              "hectares",
					"status":                 weightedChoice(rng, claimStatusWeights),
					"tribal_community":       community,
					"beneficiary_households": 20 + rng.Intn(60),
					"community_management":   true,
					"forest_constrained":     true,
				},
				Geometry: &models.Geometry{Type: "Polygon", Coordinates: []interface{}{ring}},
			})
		}
	}

	fc.Properties = map[string]interface{}{
		"name":                 "Telangana FRA Data (Forest-Constrained)",
		"description":          "FRA claims positioned only within Tree cover boundaries",
		"state":                "Telangana",
		"total_features":       len(fc.Features),
		"forest_polygons_used": len(suitable),
		"generated_at":         time.Now().Format(time.RFC3339),
	}
	return fc
}

// constrainedRing builds a small closed ring around the center whose
// vertices stay inside the boundary ring; a vertex landing outside is
// pulled halfway back toward the center.
func constrainedRing(rng *rand.Rand, centerLat, centerLon, areaHa float64, boundary [][]float64) [][]float64 {
	// Shrink the radius so the ring has room inside the boundary.
	radiusDeg := geo.RadiusDegForHectares(areaHa) * 0.8
	numPoints := 6 + rng.Intn(3)
	ring := make([][]float64, 0, numPoints+1)
	for i := 0; i < numPoints; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numPoints)
		r := radiusDeg * (0.7 + rng.Float64()*0.3)
		lat := centerLat + r*math.Cos(angle)
		lon := centerLon + r*math.Sin(angle)
		if !geo.PointInPolygon(lon, lat, boundary) {
			lat = centerLat + r*0.5*math.Cos(angle)
			lon = centerLon + r*0.5*math.Sin(angle)
		}
		ring = append(ring, []float64{lon, lat})
	}
	ring = append(ring, []float64{ring[0][0], ring[0][1]})
	return ring
}

// pointInsideBoth samples a point contained in the inner ring and the
// boundary ring, falling back to the inner ring's box center.
func pointInsideBoth(rng *rand.Rand, inner, boundary [][]float64) (lon, lat float64) {
	minLon, minLat := math.Inf(1), math.Inf(1)
	maxLon, maxLat := math.Inf(-1), math.Inf(-1)
	for _, p := range inner {
		minLon = math.Min(minLon, p[0])
		maxLon = math.Max(maxLon, p[0])
		minLat = math.Min(minLat, p[1])
		maxLat = math.Max(maxLat, p[1])
	}
	for i := 0; i < 200; i++ {
		lon = minLon + rng.Float64()*(maxLon-minLon)
		lat = minLat + rng.Float64()*(maxLat-minLat)
		if geo.PointInPolygon(lon, lat, inner) && geo.PointInPolygon(lon, lat, boundary) {
			return lon, lat
		}
	}
	return (minLon + maxLon) / 2, (minLat + maxLat) / 2
}
