package models

// PolygonAttributes holds per-parcel environmental and socioeconomic
// indicators used as DSS rule inputs. Pointer fields distinguish "absent"
// from zero: an absent attribute never satisfies a rule threshold.
type PolygonAttributes struct {
	WaterLevel            *float64 `json:"water_level"`
	GroundwaterIndex      *float64 `json:"groundwater_index"`
	SoilQuality           *string  `json:"soil_quality"`
	CropYield             *float64 `json:"crop_yield"`
	ForestCoverPercentage *float64 `json:"forest_cover_percentage"`
	PovertyIndex          *float64 `json:"poverty_index"`
	InfraIndex            *float64 `json:"infra_index"`
}

// Empty reports whether no attribute is set.
func (a *PolygonAttributes) Empty() bool {
	if a == nil {
		return true
	}
	return a.WaterLevel == nil && a.GroundwaterIndex == nil && a.SoilQuality == nil &&
		a.CropYield == nil && a.ForestCoverPercentage == nil && a.PovertyIndex == nil &&
		a.InfraIndex == nil
}

func Float(v float64) *float64 { return &v }

func String(s string) *string { return &s }
