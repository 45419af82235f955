package fra

import (
	"math"

	"vanachitra/models"
)

// Analytics returns the pre-generated analytics document, or a simplified
// summary computed from the loaded claims when the document is unavailable.
func (m *Manager) Analytics() map[string]interface{} {
	if len(m.analytics) > 0 {
		return m.analytics
	}
	return map[string]interface{}{
		"summary": map[string]interface{}{
			"total_claims":     len(m.rows),
			"claims_by_type":   m.countValues(func(c models.ClaimInfo) string { return c.FRAType }),
			"claims_by_status": m.countValues(func(c models.ClaimInfo) string { return c.Status }),
			"claims_by_state":  m.countValues(func(c models.ClaimInfo) string { return c.State }),
		},
	}
}

func (m *Manager) countValues(key func(models.ClaimInfo) string) map[string]int {
	counts := make(map[string]int)
	for _, row := range m.rows {
		if v := key(row.info); v != "" {
			counts[v]++
		}
	}
	return counts
}

type groupAggregate struct {
	TotalClaims    int            `json:"total_claims"`
	ClaimAreaHa    float64        `json:"claim_area_ha"`
	ApprovedClaims int            `json:"approved_claims"`
	FRATypes       map[string]int `json:"fra_type"`
}

func (m *Manager) groupBy(key func(models.ClaimInfo) string) map[string]*groupAggregate {
	groups := make(map[string]*groupAggregate)
	for _, row := range m.rows {
		k := key(row.info)
		if k == "" {
			continue
		}
		g, ok := groups[k]
		if !ok {
			g = &groupAggregate{FRATypes: make(map[string]int)}
			groups[k] = g
		}
		g.TotalClaims++
		g.ClaimAreaHa += row.info.AreaHa
		if models.NormalizeStatus(row.info.Status) == models.StatusApproved {
			g.ApprovedClaims++
		}
		if row.info.FRAType != "" {
			g.FRATypes[row.info.FRAType]++
		}
	}
	for _, g := range groups {
		g.ClaimAreaHa = round2(g.ClaimAreaHa)
	}
	return groups
}

// StateSummary groups claims by state with counts, area sums, approval
// counts and per-type breakdowns.
func (m *Manager) StateSummary() map[string]*groupAggregate {
	return m.groupBy(func(c models.ClaimInfo) string { return c.State })
}

// TribalAnalysis groups claims by tribal community.
func (m *Manager) TribalAnalysis() map[string]*groupAggregate {
	return m.groupBy(func(c models.ClaimInfo) string { return c.TribalCommunity })
}

type yearlyAggregate struct {
	ClaimsSubmitted int     `json:"claims_submitted"`
	ClaimAreaHa     float64 `json:"claim_area_ha"`
	ClaimsApproved  int     `json:"claims_approved"`
}

type monthlyAggregate struct {
	ClaimsSubmitted int     `json:"claims_submitted"`
	ClaimAreaHa     float64 `json:"claim_area_ha"`
}

// Timeline returns yearly submission aggregates plus monthly aggregates for
// the current year. Claims without a parseable submission date are skipped.
func (m *Manager) Timeline() map[string]interface{} {
	if len(m.rows) == 0 {
		return map[string]interface{}{}
	}
	yearly := make(map[int]*yearlyAggregate)
	monthly := make(map[int]*monthlyAggregate)
	currentYear := m.now().Year()

	for _, row := range m.rows {
		if !row.info.HasSubmissionDate {
			continue
		}
		year := row.info.SubmissionDate.Year()
		y, ok := yearly[year]
		if !ok {
			y = &yearlyAggregate{}
			yearly[year] = y
		}
		y.ClaimsSubmitted++
		y.ClaimAreaHa = round2(y.ClaimAreaHa + row.info.AreaHa)
		if models.NormalizeStatus(row.info.Status) == models.StatusApproved {
			y.ClaimsApproved++
		}

		if year == currentYear {
			month := int(row.info.SubmissionDate.Month())
			mo, ok := monthly[month]
			if !ok {
				mo = &monthlyAggregate{}
				monthly[month] = mo
			}
			mo.ClaimsSubmitted++
			mo.ClaimAreaHa = round2(mo.ClaimAreaHa + row.info.AreaHa)
		}
	}

	return map[string]interface{}{
		"yearly":  yearly,
		"monthly": monthly,
	}
}

// PerformanceMetrics summarizes implementation progress. An empty claim set
// returns an empty mapping; rate divisions never produce NaN.
func (m *Manager) PerformanceMetrics() map[string]interface{} {
	if len(m.rows) == 0 {
		return map[string]interface{}{}
	}

	pendingStatuses := map[string]bool{
		models.StatusSubmitted:         true,
		models.StatusUnderReview:       true,
		models.StatusFieldVerification: true,
	}

	var (
		total         = len(m.rows)
		approved      int
		pending       int
		rejected      int
		totalArea     float64
		fieldVerified int
		gpsVerified   int
	)
	for _, row := range m.rows {
		status := models.NormalizeStatus(row.info.Status)
		switch {
		case status == models.StatusApproved:
			approved++
		case pendingStatuses[status]:
			pending++
		case status == models.StatusRejected:
			rejected++
		}
		totalArea += row.info.AreaHa
		if row.info.FieldVerificationDone {
			fieldVerified++
		}
		if row.info.GPSVerified {
			gpsVerified++
		}
	}

	return map[string]interface{}{
		"total_claims":            total,
		"approved_claims":         approved,
		"pending_claims":          pending,
		"rejected_claims":         rejected,
		"approval_rate":           rate(approved, total),
		"pending_rate":            rate(pending, total),
		"total_area_ha":           round2(totalArea),
		"average_claim_size_ha":   round2(totalArea / float64(total)),
		"field_verification_rate": rate(fieldVerified, total),
		"gps_verification_rate":   rate(gpsVerified, total),
	}
}

func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(part) / float64(total) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
