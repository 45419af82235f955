// Package dss implements the decision support system: threshold-based
// scheme recommendation, scheme catalog filtering, and polygon attribute
// resolution.
package dss

import "vanachitra/models"

// Recommendation thresholds. Each rule is independent; all are evaluated
// and results are concatenated with insertion-order deduplication. An
// absent attribute never fires a rule.
const (
	forestCoverThreshold = 40
	waterLevelThreshold  = 80
	groundwaterThreshold = 0.5
	povertyThreshold     = 0.6
	cropYieldThreshold   = 10
)

// Evaluate maps polygon attributes to an ordered, deduplicated list of
// recommended scheme names.
func Evaluate(attrs *models.PolygonAttributes) []string {
	recs := newRecommendationSet()
	if attrs == nil {
		return recs.list()
	}
	if attrs.ForestCoverPercentage != nil && *attrs.ForestCoverPercentage > forestCoverThreshold {
		recs.add("CAMPA", "Green India Mission")
	}
	if (attrs.WaterLevel != nil && *attrs.WaterLevel < waterLevelThreshold) ||
		(attrs.GroundwaterIndex != nil && *attrs.GroundwaterIndex < groundwaterThreshold) {
		recs.add("PMKSY", "Jal Jeevan Mission")
	}
	if attrs.SoilQuality != nil && *attrs.SoilQuality == "Poor" {
		recs.add("Soil Health Card Scheme", "Organic Farming Mission")
	}
	if attrs.PovertyIndex != nil && *attrs.PovertyIndex > povertyThreshold {
		recs.add("MGNREGA")
	}
	if attrs.CropYield != nil && *attrs.CropYield < cropYieldThreshold {
		recs.add("PM-KISAN", "Bhavantar Bhugtan")
	}
	return recs.list()
}

// Enrich appends state-specific and community-type schemes to a base
// recommendation list, preserving order and uniqueness.
func Enrich(recs []string, claim models.ClaimInfo, attrs *models.PolygonAttributes) []string {
	set := newRecommendationSet()
	set.add(recs...)
	if attrs == nil {
		attrs = &models.PolygonAttributes{}
	}

	if attrs.ForestCoverPercentage != nil && *attrs.ForestCoverPercentage > forestCoverThreshold &&
		claim.State == "Odisha" {
		set.add("Ama Jungle Yojana")
	}
	waterShort := (attrs.WaterLevel != nil && *attrs.WaterLevel < waterLevelThreshold) ||
		(attrs.GroundwaterIndex != nil && *attrs.GroundwaterIndex < groundwaterThreshold)
	if waterShort && claim.State == "Telangana" {
		set.add("Mission Kakatiya")
	}
	if attrs.PovertyIndex != nil && *attrs.PovertyIndex > povertyThreshold {
		if claim.State == "Odisha" {
			set.add("KALIA")
		}
		if claim.State == "Telangana" {
			set.add("Rythu Bandhu")
		}
	}
	// Community polygons always get the community-oriented schemes.
	if claim.IsCommunityType() {
		set.add("OFSDP", "Van Dhan Vikas Yojana", "Mission Kakatiya")
	}
	return set.list()
}

// recommendationSet keeps first-occurrence order while dropping duplicates.
type recommendationSet struct {
	seen    map[string]bool
	ordered []string
}

func newRecommendationSet() *recommendationSet {
	return &recommendationSet{seen: make(map[string]bool)}
}

func (r *recommendationSet) add(names ...string) {
	for _, name := range names {
		if !r.seen[name] {
			r.seen[name] = true
			r.ordered = append(r.ordered, name)
		}
	}
}

func (r *recommendationSet) list() []string {
	if r.ordered == nil {
		return []string{}
	}
	return r.ordered
}
