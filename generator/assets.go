package generator

import (
	"math"
	"math/rand"
	"sort"
	"time"

	"vanachitra/geo"
	"vanachitra/models"
)

// assetClass describes the satellite-imagery signature of one asset
// type: typical polygon shapes, size and confidence ranges, and an
// NDVI-like vegetation index band.
type assetClass struct {
	ID        int
	Shapes    []string
	MinKm2    float64
	MaxKm2    float64
	MinConf   float64
	MaxConf   float64
	MinElev   int
	MaxElev   int
	MinVegIdx float64
	MaxVegIdx float64
}

var assetClassOrder = []string{"water", "forest", "agricultural", "homestead"}

var assetClasses = map[string]assetClass{
	"water":        {1, []string{"irregular", "elongated", "circular"}, 0.5, 150.0, 0.85, 0.98, 0, 500, 0.1, 0.3},
	"forest":       {2, []string{"irregular"}, 2.0, 500.0, 0.75, 0.95, 200, 2500, 0.7, 0.95},
	"agricultural": {3, []string{"rectangular", "irregular"}, 0.1, 25.0, 0.80, 0.97, 0, 1000, 0.4, 0.8},
	"homestead":    {4, []string{"rectangular", "cluster"}, 0.01, 2.0, 0.70, 0.92, 0, 800, 0.2, 0.6},
}

type assetState struct {
	CenterLat float64
	CenterLon float64
	Terrain   string
}

var assetStates = map[string]assetState{
	"Andhra Pradesh": {15.9129, 79.7400, "coastal_plains"},
	"Assam":          {26.2006, 92.9376, "river_valley"},
	"Chhattisgarh":   {21.2787, 81.8661, "hills_plateaus"},
	"Gujarat":        {22.2587, 71.1924, "arid_plains"},
	"Jharkhand":      {23.6102, 85.2799, "hills_plateaus"},
	"Karnataka":      {15.3173, 75.7139, "diverse"},
	"Kerala":         {10.8505, 76.2711, "coastal_hills"},
	"Madhya Pradesh": {22.9734, 78.6569, "central_highlands"},
	"Maharashtra":    {19.7515, 75.7139, "diverse"},
	"Odisha":         {20.9517, 85.0985, "coastal_plains"},
	"Rajasthan":      {27.0238, 74.2179, "desert_hills"},
	"Telangana":      {18.1124, 79.0193, "plateau"},
	"West Bengal":    {22.9868, 87.8550, "delta_plains"},
}

// India bounding box, keeps jittered centers on the map.
const (
	indiaLatMin = 6.0
	indiaLatMax = 37.0
	indiaLonMin = 68.0
	indiaLonMax = 97.0
)

// GenerateAssets fabricates satellite-analysis style asset polygons
// (water, forest, agricultural, homestead) across the covered states.
// perType is the base count per asset type per state, nudged up or down
// by the state's terrain.
func GenerateAssets(rng *rand.Rand, perType int) *models.FeatureCollection {
	fc := models.NewFeatureCollection()

	// Stable iteration for reproducible output with a fixed seed.
	stateNames := make([]string, 0, len(assetStates))
	for name := range assetStates {
		stateNames = append(stateNames, name)
	}
	sort.Strings(stateNames)

	for _, stateName := range stateNames {
		state := assetStates[stateName]
		for _, className := range assetClassOrder {
			class := assetClasses[className]
			count := perType
			switch {
			case state.Terrain == "coastal_plains" && className == "water":
				count = perType * 3 / 2
			case state.Terrain == "hills_plateaus" && className == "forest":
				count = perType * 13 / 10
			case state.Terrain == "arid_plains" && className == "agricultural":
				count = perType * 7 / 10
			}

			for i := 0; i < count; i++ {
				centerLat := clamp(state.CenterLat+(rng.Float64()*4-2), indiaLatMin, indiaLatMax)
				centerLon := clamp(state.CenterLon+(rng.Float64()*4-2), indiaLonMin, indiaLonMax)
				areaKm2 := class.MinKm2 + rng.Float64()*(class.MaxKm2-class.MinKm2)

				ring := assetRing(rng, centerLat, centerLon, className, choice(rng, class.Shapes), areaKm2)
				props := assetProperties(rng, className, class, areaKm2, state.Terrain)
				props["state"] = stateName
				props["centroid_lat"] = centerLat
				props["centroid_lon"] = centerLon

				fc.Features = append(fc.Features, models.Feature{
					Type:       "Feature",
					Properties: props,
					Geometry:   &models.Geometry{Type: "Polygon", Coordinates: []interface{}{ring}},
				})
			}
		}
	}

	fc.Properties = map[string]interface{}{
		"description":    "Enhanced Asset Data for India - Satellite-based Analysis",
		"generated_at":   time.Now().Format(time.RFC3339),
		"total_features": len(fc.Features),
		"asset_types":    assetClassOrder,
		"coverage":       "India",
	}
	return fc
}

// assetRing builds the polygon for one asset in the shape typical for
// its class.
func assetRing(rng *rand.Rand, centerLat, centerLon float64, className, shape string, areaKm2 float64) [][]float64 {
	radiusDeg := math.Sqrt(areaKm2/math.Pi) * geo.DegreesPerKm

	switch shape {
	case "circular", "elongated":
		numPoints := 12 + rng.Intn(9)
		ring := make([][]float64, 0, numPoints+1)
		for i := 0; i < numPoints; i++ {
			angle := 2 * math.Pi * float64(i) / float64(numPoints)
			r := radiusDeg * (0.8 + 0.4*rng.Float64())
			// Water bodies stretch along one axis.
			if className == "water" && i%2 == 0 {
				r *= 1.2
			}
			ring = append(ring, []float64{centerLon + r*math.Sin(angle), centerLat + r*math.Cos(angle)})
		}
		ring = append(ring, []float64{ring[0][0], ring[0][1]})
		return ring

	case "rectangular":
		width := radiusDeg * (0.8 + rng.Float64()*1.2)
		height := areaKm2 / (width * 111.0) / 111.0
		return geo.RotatedRect(rng, centerLat, centerLon, width, height, math.Pi/6)

	case "cluster":
		numClusters := 2 + rng.Intn(4)
		clusterRadius := radiusDeg / math.Sqrt(float64(numClusters))
		var ring [][]float64
		for c := 0; c < numClusters; c++ {
			cLat := centerLat + (rng.Float64()-0.5)*radiusDeg
			cLon := centerLon + (rng.Float64()-0.5)*radiusDeg
			points := 4 + rng.Intn(5)
			for i := 0; i < points; i++ {
				angle := 2 * math.Pi * float64(i) / float64(points)
				r := clusterRadius * (0.5 + rng.Float64()*0.5)
				ring = append(ring, []float64{cLon + r*math.Sin(angle), cLat + r*math.Cos(angle)})
			}
		}
		ring = append(ring, []float64{ring[0][0], ring[0][1]})
		return ring

	default: // irregular
		jitterMax := 1.5
		if className == "forest" {
			jitterMax = 1.8
		}
		return geo.IrregularPolygon(rng, centerLat, centerLon, radiusDeg, 8+rng.Intn(9), 0.5, jitterMax)
	}
}

func assetProperties(rng *rand.Rand, className string, class assetClass, areaKm2 float64, terrain string) map[string]interface{} {
	confidence := class.MinConf + rng.Float64()*(class.MaxConf-class.MinConf)
	// Larger assets classify more reliably.
	if areaKm2 > 10 {
		confidence = math.Min(confidence+0.1, 1.0)
	} else if areaKm2 < 1 {
		confidence = math.Max(confidence-0.1, 0.5)
	}

	var elevation int
	switch terrain {
	case "coastal_plains":
		elevation = rng.Intn(201)
	case "hills_plateaus":
		elevation = 300 + rng.Intn(1201)
	case "desert_hills":
		elevation = 200 + rng.Intn(601)
	default:
		elevation = class.MinElev + rng.Intn(class.MaxElev-class.MinElev+1)
	}

	vegIdx := class.MinVegIdx + rng.Float64()*(class.MaxVegIdx-class.MinVegIdx)
	if className == "agricultural" && choice(rng, []string{"kharif", "rabi", "summer"}) == "summer" {
		vegIdx *= 0.3
	}

	props := map[string]interface{}{
		"class":               className,
		"class_id":            class.ID,
		"area_km2":            roundTo(areaKm2, 2),
		"area_hectares":       roundTo(areaKm2*100, 2),
		"confidence":          roundTo(confidence, 3),
		"elevation_m":         elevation,
		"vegetation_index":    roundTo(vegIdx, 3),
		"data_source":         "satellite_analysis",
		"last_updated":        time.Now().Format("2006-01-02"),
		"verification_status": choice(rng, []string{"verified", "pending", "auto_detected"}),
	}

	switch className {
	case "water":
		props["water_type"] = choice(rng, []string{"river", "lake", "pond", "reservoir", "canal"})
		props["seasonal"] = rng.Float64() < 0.5
	case "forest":
		props["forest_type"] = choice(rng, []string{"Tropical Deciduous", "Subtropical Pine", "Tropical Evergreen", "Montane", "Scrub"})
		props["canopy_cover"] = roundTo(0.4+rng.Float64()*0.55, 2)
		props["protected_status"] = rng.Float64() < 0.5
	case "agricultural":
		props["crop_type"] = choice(rng, []string{"Rice", "Wheat", "Sugarcane", "Cotton", "Maize", "Pulses", "Mixed"})
		props["irrigation_type"] = choice(rng, []string{"Rainfed", "Canal", "Tubewell", "Drip", "Sprinkler"})
		props["soil_type"] = choice(rng, []string{"Alluvial", "Black", "Red", "Laterite", "Arid"})
	case "homestead":
		props["settlement_type"] = choice(rng, []string{"Village", "Hamlet", "Rural", "Tribal"})
		props["population_estimate"] = 50 + rng.Intn(1951)
		props["access_to_road"] = rng.Float64() < 0.5
	}
	return props
}
