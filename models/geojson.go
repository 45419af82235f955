package models

import (
	"encoding/json"
	"math"
	"os"
)

// Geometry holds a raw GeoJSON geometry. Coordinates stay untyped because
// claims are polygons while some community-rights features are points.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates interface{} `json:"coordinates"`
}

type Feature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   *Geometry              `json:"geometry"`
}

type FeatureCollection struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Features   []Feature              `json:"features"`
}

func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]Feature, 0),
	}
}

// LoadFeatureCollection reads and parses a GeoJSON file.
func LoadFeatureCollection(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, err
	}
	if fc.Features == nil {
		fc.Features = make([]Feature, 0)
	}
	return &fc, nil
}

// SanitizeProperties replaces NaN/Inf float values with nil so the
// collection always serializes to valid JSON.
func SanitizeProperties(props map[string]interface{}) map[string]interface{} {
	clean := make(map[string]interface{}, len(props))
	for k, v := range props {
		if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
			clean[k] = nil
			continue
		}
		clean[k] = v
	}
	return clean
}

// PolygonRing returns the outer ring of a polygon geometry as [lon, lat]
// pairs, or nil if the geometry is not a polygon.
func (g *Geometry) PolygonRing() [][]float64 {
	if g == nil || g.Type != "Polygon" {
		return nil
	}
	rings, ok := g.Coordinates.([]interface{})
	if !ok || len(rings) == 0 {
		return nil
	}
	// Generator-built geometries carry typed rings; decoded JSON carries
	// nested []interface{}.
	if typed, ok := rings[0].([][]float64); ok {
		return typed
	}
	outer, ok := rings[0].([]interface{})
	if !ok {
		return nil
	}
	ring := make([][]float64, 0, len(outer))
	for _, p := range outer {
		pair, ok := p.([]interface{})
		if !ok || len(pair) < 2 {
			return nil
		}
		lon, okLon := toFloat(pair[0])
		lat, okLat := toFloat(pair[1])
		if !okLon || !okLat {
			return nil
		}
		ring = append(ring, []float64{lon, lat})
	}
	return ring
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
