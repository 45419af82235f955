// Package generator fabricates the synthetic GeoJSON/JSON data files the
// server serves: FRA claims, the CFR/IFR/CR spatial hierarchy, land-use
// polygons and polygon attributes. Output is illustrative demo data;
// polygons are plausible, not survey-grade.
package generator

import (
	"fmt"
	"math/rand"
	"time"

	"vanachitra/geo"
	"vanachitra/models"
)

type stateProfile struct {
	Lat           float64
	Lon           float64
	Scale         float64
	TribalDensity float64
}

// States with significant tribal populations and FRA implementation.
var fraStates = map[string]stateProfile{
	"Odisha":         {20.9517, 85.0985, 0.8, 0.7},
	"Chhattisgarh":   {21.2787, 81.8661, 0.7, 0.8},
	"Jharkhand":      {23.6102, 85.2799, 0.6, 0.9},
	"Madhya Pradesh": {22.9734, 78.6569, 0.9, 0.6},
	"Maharashtra":    {19.7515, 75.7139, 0.9, 0.5},
	"Andhra Pradesh": {15.9129, 79.7400, 0.8, 0.4},
	"Telangana":      {18.1124, 79.0193, 0.6, 0.5},
	"Gujarat":        {23.0225, 72.5714, 0.8, 0.6},
	"Rajasthan":      {27.0238, 74.2179, 0.9, 0.3},
	"West Bengal":    {22.9868, 87.8550, 0.7, 0.4},
	"Assam":          {26.2006, 92.9376, 0.7, 0.6},
	"Karnataka":      {15.3173, 75.7139, 0.8, 0.3},
	"Kerala":         {10.8505, 76.2711, 0.5, 0.2},
}

// Iteration order must be stable for reproducible output.
var fraStateOrder = []string{
	"Odisha", "Chhattisgarh", "Jharkhand", "Madhya Pradesh", "Maharashtra",
	"Andhra Pradesh", "Telangana", "Gujarat", "Rajasthan", "West Bengal",
	"Assam", "Karnataka", "Kerala",
}

var tribalCommunities = []string{
	"Gond", "Santal", "Munda", "Oraon", "Ho", "Kurukh", "Kharia", "Bhumij",
	"Sabar", "Lodha", "Mahli", "Karmali", "Chik Baraik", "Lohra", "Kisan",
	"Bhuiya", "Kharwar", "Chero", "Korwa", "Asur", "Birhor", "Paharia",
}

var fraTypeCodes = map[string]string{
	"IFR": models.FRATypeIFR,
	"CFR": models.FRATypeCFR,
	"CR":  models.FRATypeCR,
}

var claimStatusWeights = []weighted{
	{models.StatusSubmitted, 0.10},
	{models.StatusUnderReview, 0.20},
	{models.StatusFieldVerification, 0.15},
	{models.StatusApproved, 0.40},
	{models.StatusRejected, 0.10},
	{models.StatusAppealed, 0.03},
	{models.StatusDisputed, 0.02},
}

var fraTypeWeights = []weighted{
	{"IFR", 0.6},
	{"CFR", 0.3},
	{"CR", 0.1},
}

type weighted struct {
	Value  string
	Weight float64
}

func weightedChoice(rng *rand.Rand, choices []weighted) string {
	r := rng.Float64()
	var acc float64
	for _, c := range choices {
		acc += c.Weight
		if r < acc {
			return c.Value
		}
	}
	return choices[len(choices)-1].Value
}

func choice(rng *rand.Rand, values []string) string {
	return values[rng.Intn(len(values))]
}

// GenerateClaims fabricates FRA claims across all profiled states, with
// claim counts scaled by tribal density.
func GenerateClaims(rng *rand.Rand) *models.FeatureCollection {
	fc := models.NewFeatureCollection()
	claimID := 1

	for _, stateName := range fraStateOrder {
		info := fraStates[stateName]
		numClaims := int(info.TribalDensity * info.Scale * 50)

		for i := 0; i < numClaims; i++ {
			baseLat := info.Lat + (rng.Float64()*2-1)*info.Scale
			baseLon := info.Lon + (rng.Float64()*2-1)*info.Scale
			baseLat = clamp(baseLat, 6.4, 37.1)
			baseLon = clamp(baseLon, 68.1, 97.4)

			size := (0.01 + rng.Float64()*0.09) * info.Scale
			ring := geo.IrregularPolygon(rng, baseLat, baseLon, size, 12, 0.3, 1.0)

			fraType := weightedChoice(rng, fraTypeWeights)
			props := claimProperties(rng, claimID, stateName, fraType)

			fc.Features = append(fc.Features, models.Feature{
				Type:       "Feature",
				Properties: props,
				Geometry: &models.Geometry{
					Type:        "Polygon",
					Coordinates: []interface{}{ring},
				},
			})
			claimID++
		}
	}

	fc.Properties = map[string]interface{}{
		"name":         "FRA Claims",
		"generated_at": time.Now().Format(time.RFC3339),
		"total_claims": len(fc.Features),
	}
	return fc
}

func claimProperties(rng *rand.Rand, claimID int, state, fraType string) map[string]interface{} {
	status := weightedChoice(rng, claimStatusWeights)

	props := map[string]interface{}{
		"claim_id":         fmt.Sprintf("FRA_%06d", claimID),
		"fra_type":         fraType,
		"fra_type_name":    fraTypeCodes[fraType],
		"state":            state,
		"district":         fmt.Sprintf("District_%d", 1+rng.Intn(19)),
		"block":            fmt.Sprintf("Block_%d", 1+rng.Intn(49)),
		"village":          fmt.Sprintf("Village_%d", 1+rng.Intn(999)),
		"panchayat":        fmt.Sprintf("Panchayat_%d", 1+rng.Intn(99)),
		"claim_area_ha":    roundTo(0.5+rng.Float64()*49.5, 2),
		"claim_area_acres": roundTo(1.2+rng.Float64()*122.3, 2),
		"status":           status,
		"status_name":      models.StatusNames[status],
		"submission_date":  randomDate(rng, 2020, 2024),
		"last_updated":     randomDate(rng, 2023, 2024),
		"tribal_community": choice(rng, tribalCommunities),
	}

	if fraType == "IFR" {
		props["applicant_type"] = "Individual"
		props["applicant_name"] = fmt.Sprintf("Applicant_%d", claimID)
		props["family_members"] = 1 + rng.Intn(7)
		props["household_id"] = fmt.Sprintf("HH_%06d", claimID)
	} else {
		props["applicant_type"] = "Community"
		props["community_name"] = fmt.Sprintf("Community_%d", claimID)
		props["community_members"] = 10 + rng.Intn(190)
		props["community_id"] = fmt.Sprintf("COMM_%06d", claimID)
	}

	// Forest and land details
	props["forest_type"] = choice(rng, []string{
		"Tropical Evergreen", "Tropical Semi-Evergreen", "Tropical Moist Deciduous",
		"Tropical Dry Deciduous", "Tropical Thorn", "Subtropical Pine", "Mangrove",
	})
	props["land_use"] = choice(rng, []string{
		"Forest Land", "Revenue Land", "Common Property Resource",
		"Traditional Forest Area", "Sacred Grove",
	})
	props["biodiversity_rich"] = rng.Float64() < 0.7
	props["water_source"] = rng.Float64() < 0.6
	props["wildlife_corridor"] = rng.Float64() < 0.3

	// Documentation and verification
	props["documents_submitted"] = 3 + rng.Intn(5)
	props["field_verification_done"] = status == models.StatusFieldVerification ||
		status == models.StatusApproved || status == models.StatusRejected
	props["satellite_verification"] = rng.Float64() < 0.8
	props["gps_coordinates_verified"] = rng.Float64() < 0.9
	props["boundary_demarcated"] = status == models.StatusFieldVerification ||
		status == models.StatusApproved

	// Economic and livelihood data
	props["annual_income_rs"] = 10000 + rng.Intn(90000)
	props["dependence_level"] = weightedChoice(rng, []weighted{
		{"High", 0.5}, {"Medium", 0.3}, {"Low", 0.2},
	})

	// Legal and administrative
	props["frc_constituted"] = rng.Float64() < 0.8
	props["frc_meetings_held"] = rng.Intn(10)
	props["objections_received"] = rng.Intn(5)
	props["appeal_filed"] = status == models.StatusAppealed
	props["court_case"] = status == models.StatusDisputed

	// Quality and confidence metrics
	props["data_quality_score"] = roundTo(0.6+rng.Float64()*0.4, 2)
	props["completeness_score"] = roundTo(0.7+rng.Float64()*0.3, 2)
	props["accuracy_score"] = roundTo(0.8+rng.Float64()*0.2, 2)
	props["verification_level"] = weightedChoice(rng, []weighted{
		{"High", 0.6}, {"Medium", 0.3}, {"Low", 0.1},
	})

	return props
}

func randomDate(rng *rand.Rand, startYear, endYear int) string {
	start := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, rng.Intn(days)).Format("2006-01-02")
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundTo(v float64, places int) float64 {
	pow := 1.0
	for i := 0; i < places; i++ {
		pow *= 10
	}
	return float64(int(v*pow+0.5)) / pow
}
