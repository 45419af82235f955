// Package handlers wires the HTTP surface to the claims manager and the
// DSS. The API struct is constructed at startup and injected into the
// router, so tests can run against fixture data.
package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"vanachitra/config"
	"vanachitra/dss"
	"vanachitra/fra"
	"vanachitra/metrics"
	"vanachitra/models"
)

type API struct {
	Manager     *fra.Manager
	Resolver    *dss.Resolver
	DataDir     string
	SchemesPath string
	ClaimsPath  string
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// loadGeoData reads and parses a GeoJSON file, caching the parsed
// collection. The serving files are immutable at runtime.
func (a *API) loadGeoData(path string) (*models.FeatureCollection, error) {
	key := config.GetCacheKey("geodata", path)
	if config.GeoDataCache != nil {
		if cached, found := config.GeoDataCache.Get(key); found {
			metrics.GeoDataCacheHits.Inc()
			return cached.(*models.FeatureCollection), nil
		}
	}
	metrics.GeoDataCacheMisses.Inc()
	fc, err := models.LoadFeatureCollection(path)
	if err != nil {
		return nil, err
	}
	if config.GeoDataCache != nil {
		config.GeoDataCache.SetDefault(key, fc)
	}
	return fc, nil
}

// firstExisting returns the first path under the data directory that
// exists, or "" when none do. Serving files come in fallback chains
// because generator vintages used different names.
func (a *API) firstExisting(names ...string) string {
	for _, name := range names {
		path := filepath.Join(a.DataDir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (a *API) schemes() []models.Scheme {
	key := config.GetCacheKey("schemes", a.SchemesPath)
	if config.SchemeCache != nil {
		if cached, found := config.SchemeCache.Get(key); found {
			return cached.([]models.Scheme)
		}
	}
	schemes := dss.LoadSchemes(a.SchemesPath)
	if config.SchemeCache != nil {
		config.SchemeCache.SetDefault(key, schemes)
	}
	return schemes
}
