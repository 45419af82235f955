package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"vanachitra/models"
)

// Land-use serving files per state.
var landuseFiles = map[string]string{
	"telangana":      "telangana_landuse_dummy.geojson",
	"odisha":         "odisha_landuse_dummy.geojson",
	"madhya pradesh": "madhya_pradesh_landuse_dummy.geojson",
	"tripura":        "tripura_landuse_dummy.geojson",
}

// GetAssets serves asset polygons, preferring the enhanced file.
// Query params: asset_type, state, min_area, max_area (km2).
func (a *API) GetAssets(w http.ResponseWriter, r *http.Request) {
	path := a.firstExisting("assets_enhanced.geojson", "assets.geojson")
	if path == "" {
		writeError(w, http.StatusNotFound, "No assets file found")
		return
	}
	fc, err := a.loadGeoData(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error loading assets: %v", err))
		return
	}

	q := r.URL.Query()
	filtered, err := filterFeatures(fc, func(props map[string]interface{}) (bool, error) {
		if v := q.Get("asset_type"); v != "" && stringProp(props, "class") != v {
			return false, nil
		}
		if v := q.Get("state"); v != "" && stringProp(props, "state") != v {
			return false, nil
		}
		return areaInRange(props, "area_km2", q.Get("min_area"), q.Get("max_area"))
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error loading assets: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetStateLanduse serves per-state land-use polygons.
// Query params: landuse_type, district, min_area, max_area (km2).
func (a *API) GetStateLanduse(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	fileName, ok := landuseFiles[strings.ToLower(state)]
	if !ok {
		available := make([]string, 0, len(landuseFiles))
		for s := range landuseFiles {
			available = append(available, s)
		}
		sort.Strings(available)
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":            fmt.Sprintf("Land-use data not available for %s", state),
			"available_states": available,
		})
		return
	}

	path := a.firstExisting(fileName)
	if path == "" {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":      fmt.Sprintf("%s land-use data not found. Please generate it first.", strings.Title(state)),
			"suggestion": "Run: fragen landuse",
		})
		return
	}

	fc, err := a.loadGeoData(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error loading %s land-use data: %v", state, err))
		return
	}

	q := r.URL.Query()
	filtered, err := filterFeatures(fc, func(props map[string]interface{}) (bool, error) {
		if v := q.Get("landuse_type"); v != "" && stringProp(props, "landuse_type") != v {
			return false, nil
		}
		if v := q.Get("district"); v != "" && stringProp(props, "district") != v {
			return false, nil
		}
		return areaInRange(props, "area_km2", q.Get("min_area"), q.Get("max_area"))
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error loading %s land-use data: %v", state, err))
		return
	}
	writeJSON(w, http.StatusOK, filtered)
}

// GetLanduseCategories serves the land-use legend.
func (a *API) GetLanduseCategories(w http.ResponseWriter, r *http.Request) {
	path := a.firstExisting("telangana_landuse_categories.json", "landuse_categories.json")
	if path == "" {
		writeError(w, http.StatusNotFound, "Categories file not found")
		return
	}
	http.ServeFile(w, r, path)
}

// GetForest serves the dense forest boundary layer.
func (a *API) GetForest(w http.ResponseWriter, r *http.Request) {
	path := a.firstExisting("dense_forest_leaflet.geojson", "telangana_forest.geojson")
	if path == "" {
		writeError(w, http.StatusNotFound, "Dense forest data not found")
		return
	}
	fc, err := a.loadGeoData(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

// GetStateBoundaries serves district (and optionally block) boundaries.
func (a *API) GetStateBoundaries(w http.ResponseWriter, r *http.Request) {
	state := strings.ToLower(mux.Vars(r)["state"])
	if state != "telangana" {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":            fmt.Sprintf("Boundary data not available for %s", state),
			"available_states": []string{"telangana"},
		})
		return
	}

	result := make(map[string]interface{})
	if path := a.firstExisting("telangana_districts_33.geojson"); path != "" {
		if fc, err := a.loadGeoData(path); err == nil {
			result["districts"] = fc
		}
	}
	if r.URL.Query().Get("include_blocks") == "true" {
		if path := a.firstExisting(filepath.Join("telangana", "blocks.json")); path != "" {
			if fc, err := a.loadGeoData(path); err == nil {
				result["blocks"] = fc
			}
		}
	}
	writeJSON(w, http.StatusOK, result)
}

// Hardcoded district lists for states without boundary files.
var stateDistricts = map[string][]string{
	"odisha": {"Angul", "Balangir", "Balasore", "Bargarh", "Bhadrak", "Boudh", "Cuttack",
		"Deogarh", "Dhenkanal", "Gajapati", "Ganjam", "Jagatsinghpur", "Jajpur", "Jharsuguda",
		"Kalahandi", "Kandhamal", "Kendrapara", "Kendujhar", "Khordha", "Koraput", "Malkangiri",
		"Mayurbhanj", "Nabarangpur", "Nayagarh", "Nuapada", "Puri", "Rayagada", "Sambalpur",
		"Subarnapur", "Sundargarh"},
	"madhya pradesh": {"Agar Malwa", "Alirajpur", "Anuppur", "Ashoknagar", "Balaghat", "Barwani",
		"Betul", "Bhind", "Bhopal", "Burhanpur", "Chhatarpur", "Chhindwara", "Damoh", "Datia",
		"Dewas", "Dhar", "Dindori", "Guna", "Gwalior", "Harda", "Hoshangabad", "Indore",
		"Jabalpur", "Jhabua", "Katni", "Khandwa", "Khargone", "Mandla", "Mandsaur", "Morena",
		"Narsinghpur", "Neemuch", "Panna", "Raisen", "Rajgarh", "Ratlam", "Rewa", "Sagar",
		"Satna", "Sehore", "Seoni", "Shahdol", "Shajapur", "Sheopur", "Shivpuri", "Sidhi",
		"Singrauli", "Tikamgarh", "Ujjain", "Umaria", "Vidisha"},
	"tripura": {"Dhalai", "Gomati", "Khowai", "North Tripura", "Sepahijala", "South Tripura",
		"Unakoti", "West Tripura"},
}

// GetStateDistricts serves the district list for a state, extracted from
// the boundary file for Telangana and hardcoded elsewhere.
func (a *API) GetStateDistricts(w http.ResponseWriter, r *http.Request) {
	state := mux.Vars(r)["state"]
	stateLower := strings.ToLower(state)

	if stateLower == "telangana" {
		if path := a.firstExisting("telangana_districts_33.geojson"); path != "" {
			fc, err := a.loadGeoData(path)
			if err == nil {
				var districts []string
				for _, f := range fc.Features {
					if name := stringProp(f.Properties, "DISTRICT_N"); name != "" {
						districts = append(districts, strings.Title(strings.ToLower(name)))
					}
				}
				sort.Strings(districts)
				writeJSON(w, http.StatusOK, map[string]interface{}{
					"state":     strings.Title(stateLower),
					"districts": districts,
				})
				return
			}
		}
	}

	districts := stateDistricts[stateLower]
	if districts == nil {
		districts = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":     strings.Title(stateLower),
		"districts": districts,
	})
}

// GetVanachitraFRAData serves the raw hierarchical FRA dataset.
func (a *API) GetVanachitraFRAData(w http.ResponseWriter, r *http.Request) {
	path := a.firstExisting("telangana_fra_realistic.geojson", "vanachitra_fra_data.geojson")
	if path == "" {
		writeError(w, http.StatusNotFound, "Vanachitra FRA data not found. Please generate it first.")
		return
	}
	fc, err := a.loadGeoData(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

// GetTelanganaFRAConstrained serves the forest-constrained Telangana FRA
// dataset through its historical fallback chain.
func (a *API) GetTelanganaFRAConstrained(w http.ResponseWriter, r *http.Request) {
	path := a.firstExisting(
		"telangana_fra_realistic.geojson",
		"telangana_fra_coordinates.geojson",
		"telangana_fra_forest_only.geojson",
		"telangana_fra_forest_constrained.geojson",
	)
	if path == "" {
		writeError(w, http.StatusNotFound, "Telangana FRA data not found. Please generate it first.")
		return
	}
	fc, err := a.loadGeoData(path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

// filterFeatures applies a predicate without mutating the cached
// collection.
func filterFeatures(fc *models.FeatureCollection, keep func(map[string]interface{}) (bool, error)) (*models.FeatureCollection, error) {
	out := &models.FeatureCollection{
		Type:       fc.Type,
		Properties: fc.Properties,
		Features:   make([]models.Feature, 0, len(fc.Features)),
	}
	for _, f := range fc.Features {
		ok, err := keep(f.Properties)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Features = append(out.Features, f)
		}
	}
	return out, nil
}

func stringProp(props map[string]interface{}, key string) string {
	if v, ok := props[key].(string); ok {
		return v
	}
	return ""
}

func areaInRange(props map[string]interface{}, key, minStr, maxStr string) (bool, error) {
	if minStr == "" && maxStr == "" {
		return true, nil
	}
	area, _ := props[key].(float64)
	if minStr != "" {
		min, err := strconv.ParseFloat(minStr, 64)
		if err != nil {
			return false, err
		}
		if area < min {
			return false, nil
		}
	}
	if maxStr != "" {
		max, err := strconv.ParseFloat(maxStr, 64)
		if err != nil {
			return false, err
		}
		if area > max {
			return false, nil
		}
	}
	return true, nil
}
