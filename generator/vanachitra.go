package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"vanachitra/geo"
	"vanachitra/models"
)

// forestState describes a state's forest belt for the hierarchical
// CFR -> IFR/CR/Agriculture generator.
type forestState struct {
	Name        string
	CenterLat   float64
	CenterLon   float64
	Districts   []string
	Communities []string
	Suffixes    []string
	BaseNames   []string
}

var forestStates = []forestState{
	{
		Name: "Telangana", CenterLat: 18.1124, CenterLon: 79.0193,
		Districts:   []string{"Adilabad", "Kumuram Bheem", "Mancherial", "Nirmal", "Nizamabad"},
		Communities: []string{"Gond", "Koya", "Lambada", "Yerukala", "Chenchu"},
		Suffixes:    []string{"palli", "guda", "nagar", "puram"},
		BaseNames:   []string{"Ramagundam", "Venkatesh", "Lakshmi", "Srinivas", "Ananda"},
	},
	{
		Name: "Madhya Pradesh", CenterLat: 22.9734, CenterLon: 78.6569,
		Districts:   []string{"Balaghat", "Dindori", "Mandla", "Seoni", "Chhindwara"},
		Communities: []string{"Gond", "Bhil", "Baiga", "Kol", "Korku"},
		Suffixes:    []string{"gaon", "khurd", "kalan", "tola"},
		BaseNames:   []string{"Rampur", "Shivpur", "Krishnanagar", "Rajpur", "Devgarh"},
	},
	{
		Name: "Odisha", CenterLat: 20.9517, CenterLon: 85.0985,
		Districts:   []string{"Mayurbhanj", "Keonjhar", "Sundargarh", "Sambalpur", "Kalahandi"},
		Communities: []string{"Santhal", "Kond", "Saora", "Munda", "Ho"},
		Suffixes:    []string{"sahi", "palli", "para", "gaon"},
		BaseNames:   []string{"Jagannath", "Rama", "Krishna", "Balaram", "Hanuman"},
	},
	{
		Name: "Tripura", CenterLat: 23.9408, CenterLon: 91.9882,
		Districts:   []string{"West Tripura", "South Tripura", "Dhalai", "North Tripura"},
		Communities: []string{"Tripuri", "Reang", "Jamatia", "Chakma", "Halam"},
		Suffixes:    []string{"para", "khorang", "bari", "tilla"},
		BaseNames:   []string{"Agartala", "Udaipur", "Dharmanagar", "Ambassa", "Belonia"},
	},
}

var crResourceTypes = []string{
	"Grazing Ground", "Community Pond", "NTFP Collection Area", "Sacred Grove", "Community Well",
}

// Separation fallbacks for CFR placement, in degrees (roughly 15km down to 5km).
var cfrSeparations = []float64{0.15, 0.1, 0.08, 0.05}

// GenerateVanachitra builds the hierarchical FRA dataset: per state,
// cfrPerState community forest resource polygons, each containing
// individual rights plots, community rights features and agriculture plots.
func GenerateVanachitra(rng *rand.Rand, cfrPerState int) *models.FeatureCollection {
	fc := models.NewFeatureCollection()

	for _, state := range forestStates {
		var usedCenters [][2]float64 // [lat, lon]

		for n := 0; n < cfrPerState; n++ {
			district := choice(rng, state.Districts)
			community := choice(rng, state.Communities)
			village := villageName(rng, state)

			centerLat, centerLon := placeCFRCenter(rng, state, usedCenters)
			usedCenters = append(usedCenters, [2]float64{centerLat, centerLon})

			areaHa := 500 + rng.Float64()*1500
			radiusDeg := geo.RadiusDegForHectares(areaHa)
			ring := geo.IrregularPolygon(rng, centerLat, centerLon, radiusDeg, 8+rng.Intn(5), 0.7, 1.4)

			cfrID := fmt.Sprintf("CFR_%s_%s_%03d", stateCode(state.Name), districtCode(district), n+1)
			fc.Features = append(fc.Features, models.Feature{
				Type: "Feature",
				Properties: map[string]interface{}{
					"claim_id":               cfrID,
					"claim_type":             "CFR",
					"fra_type":               models.FRATypeCFR,
					"village":                village,
					"district":               district,
					"state":                  state.Name,
					"area_claimed":           roundTo(areaHa, 2),
					"area_unit":              "hectares",
					"status":                 weightedChoice(rng, claimStatusWeights),
					"tribal_community":       community,
					"beneficiary_households": 50 + rng.Intn(150),
					"submission_date":        randomDate(rng, 2020, 2024),
					"community_management":   true,
				},
				Geometry: &models.Geometry{Type: "Polygon", Coordinates: []interface{}{ring}},
			})

			fc.Features = append(fc.Features, generateIFRs(rng, ring, state.Name, district, village, community, 12)...)
			fc.Features = append(fc.Features, generateCRs(rng, ring, state.Name, district, village, community, 3)...)
			fc.Features = append(fc.Features, generateAgriculture(rng, ring, state.Name, district, village, 8)...)
		}
	}

	fc.Properties = map[string]interface{}{
		"name":           "Vanachitra FRA Spatial Hierarchy",
		"generated_at":   time.Now().Format(time.RFC3339),
		"total_features": len(fc.Features),
	}
	return fc
}

// placeCFRCenter picks a center near the state's forest belt, keeping a
// minimum separation from already placed CFRs, relaxing the separation
// when the belt fills up.
func placeCFRCenter(rng *rand.Rand, state forestState, used [][2]float64) (lat, lon float64) {
	for _, sep := range cfrSeparations {
		for attempt := 0; attempt < 20; attempt++ {
			lat = state.CenterLat + (rng.Float64()*3 - 1.5)
			lon = state.CenterLon + (rng.Float64()*3 - 1.5)
			tooClose := false
			for _, c := range used {
				if geo.Distance(lat, lon, c[0], c[1]) < sep*111.0 {
					tooClose = true
					break
				}
			}
			if !tooClose {
				return lat, lon
			}
		}
	}
	// Last resort: accept the overlap.
	return state.CenterLat + (rng.Float64()*3 - 1.5), state.CenterLon + (rng.Float64()*3 - 1.5)
}

func generateIFRs(rng *rand.Rand, cfrRing [][]float64, state, district, village, community string, count int) []models.Feature {
	householdHeads := []string{
		"Ram Singh", "Shyam Lal", "Ganga Devi", "Sita Bai",
		"Ravi Kumar", "Lakshmi Devi", "Suresh Rao", "Kamala Bai",
	}
	features := make([]models.Feature, 0, count)
	for i := 0; i < count; i++ {
		areaHa := 1.0 + rng.Float64()*4.0
		radiusDeg := geo.RadiusDegForHectares(areaHa)

		centerLon, centerLat := geo.RandomPointInPolygon(rng, cfrRing, 50)

		width := radiusDeg * (0.8 + rng.Float64()*0.7)
		height := radiusDeg * radiusDeg / width
		ring := geo.RotatedRect(rng, centerLat, centerLon, width, height, 0.3926991) // pi/8

		features = append(features, models.Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"claim_id":           fmt.Sprintf("IFR_%s_%s_%03d", stateCode(state), districtCode(district), i+1),
				"claim_type":         "IFR",
				"fra_type":           models.FRATypeIFR,
				"village":            village,
				"district":           district,
				"state":              state,
				"area_claimed":       roundTo(areaHa, 2),
				"area_unit":          "hectares",
				"status":             weightedChoice(rng, claimStatusWeights),
				"tribal_community":   community,
				"household_head":     choice(rng, householdHeads),
				"family_members":     3 + rng.Intn(6),
				"livelihood":         choice(rng, []string{"Agriculture", "NTFP Collection", "Animal Husbandry", "Mixed"}),
				"submission_date":    randomDate(rng, 2020, 2024),
				"survey_number":      fmt.Sprintf("SY_%d", 100+rng.Intn(900)),
				"gps_verified":       rng.Float64() < 0.5,
				"documents_complete": rng.Float64() < 0.5,
			},
			Geometry: &models.Geometry{Type: "Polygon", Coordinates: []interface{}{ring}},
		})
	}
	return features
}

func generateCRs(rng *rand.Rand, cfrRing [][]float64, state, district, village, community string, count int) []models.Feature {
	features := make([]models.Feature, 0, count)
	for i := 0; i < count; i++ {
		resourceType := choice(rng, crResourceTypes)
		centerLon, centerLat := geo.RandomPointInPolygon(rng, cfrRing, 50)

		props := map[string]interface{}{
			"claim_id":               fmt.Sprintf("CR_%s_%s_%03d", stateCode(state), districtCode(district), i+1),
			"claim_type":             "CR",
			"fra_type":               models.FRATypeCR,
			"resource_type":          resourceType,
			"village":                village,
			"district":               district,
			"state":                  state,
			"status":                 weightedChoice(rng, claimStatusWeights),
			"tribal_community":       community,
			"beneficiary_households": 20 + rng.Intn(60),
			"usage_pattern":          choice(rng, []string{"Seasonal", "Year-round", "Occasional"}),
			"submission_date":        randomDate(rng, 2020, 2024),
			"traditional_use":        rng.Float64() < 0.5,
			"community_management":   true,
		}

		var geom *models.Geometry
		if resourceType == "Community Pond" || resourceType == "Community Well" {
			// Wells and small ponds are point features.
			geom = &models.Geometry{Type: "Point", Coordinates: []interface{}{centerLon, centerLat}}
		} else {
			areaHa := 5.0 + rng.Float64()*45.0
			radiusDeg := geo.RadiusDegForHectares(areaHa)
			ring := geo.IrregularPolygon(rng, centerLat, centerLon, radiusDeg, 6+rng.Intn(5), 0.7, 1.3)
			props["area_claimed"] = roundTo(areaHa, 2)
			props["area_unit"] = "hectares"
			geom = &models.Geometry{Type: "Polygon", Coordinates: []interface{}{ring}}
		}

		features = append(features, models.Feature{Type: "Feature", Properties: props, Geometry: geom})
	}
	return features
}

func generateAgriculture(rng *rand.Rand, cfrRing [][]float64, state, district, village string, count int) []models.Feature {
	cropTypes := []string{"Rice", "Wheat", "Maize", "Millet", "Pulses", "Vegetables", "Mixed Crops"}
	features := make([]models.Feature, 0, count)
	for i := 0; i < count; i++ {
		centerLon, centerLat := geo.RandomPointInPolygon(rng, cfrRing, 50)

		areaHa := 0.5 + rng.Float64()*2.5
		width := 0.002 + rng.Float64()*0.006
		height := areaHa / 100 / (width * 111.0) / 111.0
		ring := geo.RotatedRect(rng, centerLat, centerLon, width, height, 0)

		features = append(features, models.Feature{
			Type: "Feature",
			Properties: map[string]interface{}{
				"feature_id":   fmt.Sprintf("AGR_%s_%s_%03d", stateCode(state), districtCode(district), i+1),
				"feature_type": "Agriculture",
				"crop_type":    choice(rng, cropTypes),
				"village":      village,
				"district":     district,
				"state":        state,
				"area_claimed": roundTo(areaHa, 2),
				"area_unit":    "hectares",
				"irrigated":    rng.Float64() < 0.4,
			},
			Geometry: &models.Geometry{Type: "Polygon", Coordinates: []interface{}{ring}},
		})
	}
	return features
}

func villageName(rng *rand.Rand, state forestState) string {
	return choice(rng, state.BaseNames) + choice(rng, state.Suffixes)
}

func stateCode(state string) string {
	return strings.ToUpper(state[:2])
}

func districtCode(district string) string {
	code := district
	if len(code) > 3 {
		code = code[:3]
	}
	return strings.ToUpper(code)
}
