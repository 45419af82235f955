package models

import (
	"strings"
	"time"
)

// FRA claim types
const (
	FRATypeIFR = "Individual Forest Rights"
	FRATypeCFR = "Community Forest Resource Rights"
	FRATypeCR  = "Community Rights"
)

// Claim statuses (canonical lowercase form)
const (
	StatusSubmitted         = "submitted"
	StatusUnderReview       = "under_review"
	StatusFieldVerification = "field_verification"
	StatusApproved          = "approved"
	StatusRejected          = "rejected"
	StatusAppealed          = "appealed"
	StatusDisputed          = "disputed"
)

// StatusNames maps canonical statuses to display names.
var StatusNames = map[string]string{
	StatusSubmitted:         "Submitted",
	StatusUnderReview:       "Under Review",
	StatusFieldVerification: "Field Verification",
	StatusApproved:          "Approved",
	StatusRejected:          "Rejected",
	StatusAppealed:          "Appealed",
	StatusDisputed:          "Disputed",
}

// NormalizeStatus lowercases a status and converts spaces to underscores so
// that "Under Review" and "under_review" compare equal. Generator vintages
// disagree on casing.
func NormalizeStatus(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// ClaimInfo is the typed view of the filterable claim fields, extracted once
// at load time from the loose property map.
type ClaimInfo struct {
	ClaimID               string
	FRAType               string
	ClaimType             string
	Status                string
	State                 string
	District              string
	Village               string
	TribalCommunity       string
	AreaHa                float64
	HasArea               bool
	SubmissionDate        time.Time
	HasSubmissionDate     bool
	FieldVerificationDone bool
	GPSVerified           bool
}

// ExtractClaimInfo pulls the typed fields out of a feature's properties.
// Identifier fallback order: claim_id, feature_id, fra_id, id.
func ExtractClaimInfo(props map[string]interface{}) ClaimInfo {
	info := ClaimInfo{
		ClaimID:         propString(props, "claim_id", "feature_id", "fra_id", "id"),
		FRAType:         propString(props, "fra_type", "feature_type", "claim_type"),
		ClaimType:       propString(props, "claim_type"),
		Status:          propString(props, "status"),
		State:           propString(props, "state"),
		District:        propString(props, "district"),
		Village:         propString(props, "village"),
		TribalCommunity: propString(props, "tribal_community"),
	}
	if v, ok := propFloat(props, "claim_area_ha", "area_claimed", "area_hectares"); ok {
		info.AreaHa = v
		info.HasArea = true
	}
	if s := propString(props, "submission_date"); s != "" {
		if t, err := time.Parse("2006-01-02", s); err == nil {
			info.SubmissionDate = t
			info.HasSubmissionDate = true
		}
	}
	info.FieldVerificationDone = propBool(props, "field_verification_done")
	info.GPSVerified = propBool(props, "gps_coordinates_verified", "gps_verified")
	return info
}

// IsCommunityType reports whether the claim is community-oriented (CFR/CR).
func (c ClaimInfo) IsCommunityType() bool {
	switch c.FRAType {
	case FRATypeCFR, FRATypeCR, "CFR", "CR":
		return true
	}
	switch c.ClaimType {
	case "CFR", "CR":
		return true
	}
	return false
}

// MatchesID reports whether any of the feature's identifier fields equals id.
func (c ClaimInfo) MatchesID(props map[string]interface{}, id string) bool {
	for _, key := range []string{"claim_id", "feature_id", "fra_id", "id"} {
		if propString(props, key) == id {
			return true
		}
	}
	return false
}

func propString(props map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := props[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

func propFloat(props map[string]interface{}, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := props[k]; ok {
			if f, ok := toFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func propBool(props map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if v, ok := props[k]; ok {
			if b, ok := v.(bool); ok {
				return b
			}
		}
	}
	return false
}
