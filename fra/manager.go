// Package fra holds the in-memory claims table and its filter and
// aggregate views. The table is read-only after construction; load errors
// degrade to an empty collection rather than failing the process.
package fra

import (
	"encoding/json"
	"log"
	"net/url"
	"os"
	"sort"
	"strconv"
	"time"

	"vanachitra/models"
)

type claimRow struct {
	props    map[string]interface{}
	geometry *models.Geometry
	info     models.ClaimInfo
}

// Manager is constructed once at startup and injected into the handlers.
type Manager struct {
	rows      []claimRow
	analytics map[string]interface{}
	now       func() time.Time
}

// NewManager loads the claims GeoJSON and the analytics document. Either
// file may be missing or malformed; the manager then serves empty results.
func NewManager(claimsPath, analyticsPath string) *Manager {
	m := &Manager{now: time.Now}

	fc, err := models.LoadFeatureCollection(claimsPath)
	if err != nil {
		log.Printf("Error loading FRA claims from %s: %v", claimsPath, err)
	} else {
		for _, f := range fc.Features {
			props := models.SanitizeProperties(f.Properties)
			m.rows = append(m.rows, claimRow{
				props:    props,
				geometry: f.Geometry,
				info:     models.ExtractClaimInfo(props),
			})
		}
		log.Printf("Loaded %d FRA claims", len(m.rows))
	}

	data, err := os.ReadFile(analyticsPath)
	if err != nil {
		log.Printf("Error loading FRA analytics from %s: %v", analyticsPath, err)
	} else if err := json.Unmarshal(data, &m.analytics); err != nil {
		log.Printf("Error parsing FRA analytics: %v", err)
		m.analytics = nil
	}

	return m
}

// Filters are the recognized claim predicates. Empty values are ignored.
type Filters struct {
	State           string
	District        string
	Village         string
	FRAType         string
	Status          string
	TribalCommunity string
	ClaimAreaMin    *float64
	ClaimAreaMax    *float64
}

// ParseFilters builds Filters from request query parameters.
func ParseFilters(q url.Values) (Filters, error) {
	f := Filters{
		State:           q.Get("state"),
		District:        q.Get("district"),
		Village:         q.Get("village"),
		FRAType:         q.Get("fra_type"),
		Status:          q.Get("status"),
		TribalCommunity: q.Get("tribal_community"),
	}
	if v := q.Get("claim_area_min"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		f.ClaimAreaMin = &min
	}
	if v := q.Get("claim_area_max"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, err
		}
		f.ClaimAreaMax = &max
	}
	return f, nil
}

// Applied returns the non-empty filters as a map, for response metadata.
func (f Filters) Applied() map[string]interface{} {
	applied := make(map[string]interface{})
	set := func(k, v string) {
		if v != "" {
			applied[k] = v
		}
	}
	set("state", f.State)
	set("district", f.District)
	set("village", f.Village)
	set("fra_type", f.FRAType)
	set("status", f.Status)
	set("tribal_community", f.TribalCommunity)
	if f.ClaimAreaMin != nil {
		applied["claim_area_min"] = *f.ClaimAreaMin
	}
	if f.ClaimAreaMax != nil {
		applied["claim_area_max"] = *f.ClaimAreaMax
	}
	return applied
}

func (f Filters) matches(row claimRow) bool {
	if f.State != "" && row.info.State != f.State {
		return false
	}
	if f.District != "" && row.info.District != f.District {
		return false
	}
	if f.Village != "" && row.info.Village != f.Village {
		return false
	}
	if f.FRAType != "" && row.info.FRAType != f.FRAType {
		return false
	}
	if f.Status != "" && models.NormalizeStatus(row.info.Status) != models.NormalizeStatus(f.Status) {
		return false
	}
	if f.TribalCommunity != "" && row.info.TribalCommunity != f.TribalCommunity {
		return false
	}
	// Area bounds are inclusive.
	if f.ClaimAreaMin != nil && (!row.info.HasArea || row.info.AreaHa < *f.ClaimAreaMin) {
		return false
	}
	if f.ClaimAreaMax != nil && (!row.info.HasArea || row.info.AreaHa > *f.ClaimAreaMax) {
		return false
	}
	return true
}

// Filtered returns the claims matching every supplied predicate as a
// feature collection with a count and filters-applied summary.
func (m *Manager) Filtered(f Filters) *models.FeatureCollection {
	fc := models.NewFeatureCollection()
	for _, row := range m.rows {
		if !f.matches(row) {
			continue
		}
		fc.Features = append(fc.Features, models.Feature{
			Type:       "Feature",
			Properties: row.props,
			Geometry:   row.geometry,
		})
	}
	fc.Properties = map[string]interface{}{
		"total_claims":    len(fc.Features),
		"filters_applied": f.Applied(),
	}
	return fc
}

// ClaimByID returns the claim with the exact claim_id, as its property map
// plus geometry, or nil when not found.
func (m *Manager) ClaimByID(id string) map[string]interface{} {
	for _, row := range m.rows {
		if cid, ok := row.props["claim_id"].(string); ok && cid == id {
			return claimDocument(row)
		}
	}
	return nil
}

// ClaimByPolygonID matches on claim_id plus the fallback identifier fields,
// for cross-referencing with the DSS.
func (m *Manager) ClaimByPolygonID(id string) map[string]interface{} {
	for _, row := range m.rows {
		if row.info.MatchesID(row.props, id) {
			return claimDocument(row)
		}
	}
	return nil
}

// ClaimInfoByPolygonID returns the typed view for DSS evaluation.
func (m *Manager) ClaimInfoByPolygonID(id string) (models.ClaimInfo, bool) {
	for _, row := range m.rows {
		if row.info.MatchesID(row.props, id) {
			return row.info, true
		}
	}
	return models.ClaimInfo{}, false
}

func claimDocument(row claimRow) map[string]interface{} {
	doc := make(map[string]interface{}, len(row.props)+1)
	for k, v := range row.props {
		doc[k] = v
	}
	doc["geometry"] = row.geometry
	return doc
}

// FilterOptions returns the sorted distinct values of every filterable
// field, for populating frontend dropdowns.
func (m *Manager) FilterOptions() map[string][]string {
	if len(m.rows) == 0 {
		return map[string][]string{}
	}
	options := map[string][]string{
		"states":             distinct(m.rows, func(c models.ClaimInfo) string { return c.State }),
		"districts":          distinct(m.rows, func(c models.ClaimInfo) string { return c.District }),
		"villages":           distinct(m.rows, func(c models.ClaimInfo) string { return c.Village }),
		"fra_types":          distinct(m.rows, func(c models.ClaimInfo) string { return c.FRAType }),
		"statuses":           distinct(m.rows, func(c models.ClaimInfo) string { return c.Status }),
		"tribal_communities": distinct(m.rows, func(c models.ClaimInfo) string { return c.TribalCommunity }),
	}
	return options
}

func distinct(rows []claimRow, key func(models.ClaimInfo) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range rows {
		v := key(row.info)
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Strings(values)
	if values == nil {
		values = []string{}
	}
	return values
}

// Count returns the number of loaded claims.
func (m *Manager) Count() int { return len(m.rows) }
