package generator

import (
	"math"
	"time"

	"vanachitra/models"
)

// BuildAnalytics computes the analytics document stored alongside the
// generated claims, in the shape the dashboard consumes.
func BuildAnalytics(fc *models.FeatureCollection) map[string]interface{} {
	infos := make([]models.ClaimInfo, 0, len(fc.Features))
	for _, f := range fc.Features {
		infos = append(infos, models.ExtractClaimInfo(f.Properties))
	}

	total := len(infos)
	byStatus := make(map[string]int)
	byType := make(map[string]int)
	byState := make(map[string]int)
	var totalArea float64
	for _, c := range infos {
		byStatus[c.Status]++
		byType[c.FRAType]++
		byState[c.State]++
		totalArea += c.AreaHa
	}

	analytics := map[string]interface{}{
		"summary": map[string]interface{}{
			"total_claims":     total,
			"total_area_ha":    round2f(totalArea),
			"claims_by_status": byStatus,
			"claims_by_type":   byType,
			"claims_by_state":  byState,
		},
		"generated_at": time.Now().Format(time.RFC3339),
	}

	// State-wise analysis
	stateAnalysis := make(map[string]interface{})
	for state := range byState {
		var stateTotal, approved, pending, rejected int
		var area float64
		for _, c := range infos {
			if c.State != state {
				continue
			}
			stateTotal++
			area += c.AreaHa
			switch models.NormalizeStatus(c.Status) {
			case models.StatusApproved:
				approved++
			case models.StatusSubmitted, models.StatusUnderReview, models.StatusFieldVerification:
				pending++
			case models.StatusRejected:
				rejected++
			}
		}
		entry := map[string]interface{}{
			"total_claims":    stateTotal,
			"approved_claims": approved,
			"pending_claims":  pending,
			"rejected_claims": rejected,
			"total_area_ha":   round2f(area),
		}
		if stateTotal > 0 {
			entry["approval_rate"] = round2f(float64(approved) / float64(stateTotal) * 100)
		}
		stateAnalysis[state] = entry
	}
	analytics["state_wise_analysis"] = stateAnalysis

	// Tribal community analysis
	tribalAnalysis := make(map[string]interface{})
	for _, c := range infos {
		if c.TribalCommunity == "" {
			continue
		}
		entry, ok := tribalAnalysis[c.TribalCommunity].(map[string]interface{})
		if !ok {
			entry = map[string]interface{}{
				"total_claims":    0,
				"claim_area_ha":   0.0,
				"approved_claims": 0,
			}
			tribalAnalysis[c.TribalCommunity] = entry
		}
		entry["total_claims"] = entry["total_claims"].(int) + 1
		entry["claim_area_ha"] = round2f(entry["claim_area_ha"].(float64) + c.AreaHa)
		if models.NormalizeStatus(c.Status) == models.StatusApproved {
			entry["approved_claims"] = entry["approved_claims"].(int) + 1
		}
	}
	analytics["tribal_community_analysis"] = tribalAnalysis

	// Timeline analysis (yearly)
	timeline := make(map[int]map[string]interface{})
	for _, c := range infos {
		if !c.HasSubmissionDate {
			continue
		}
		year := c.SubmissionDate.Year()
		entry, ok := timeline[year]
		if !ok {
			entry = map[string]interface{}{
				"claims_submitted": 0,
				"claim_area_ha":    0.0,
				"claims_approved":  0,
			}
			timeline[year] = entry
		}
		entry["claims_submitted"] = entry["claims_submitted"].(int) + 1
		entry["claim_area_ha"] = round2f(entry["claim_area_ha"].(float64) + c.AreaHa)
		if models.NormalizeStatus(c.Status) == models.StatusApproved {
			entry["claims_approved"] = entry["claims_approved"].(int) + 1
		}
	}
	analytics["timeline_analysis"] = timeline

	// Performance metrics
	approved := byStatus[models.StatusApproved]
	metrics := map[string]interface{}{
		"total_claims":  total,
		"total_area_ha": round2f(totalArea),
	}
	if total > 0 {
		metrics["overall_approval_rate"] = round2f(float64(approved) / float64(total) * 100)
		metrics["average_claim_size_ha"] = round2f(totalArea / float64(total))
	}
	analytics["performance_metrics"] = metrics

	return analytics
}

func round2f(v float64) float64 {
	return math.Round(v*100) / 100
}
