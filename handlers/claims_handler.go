package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"vanachitra/fra"
)

// GetFRAClaims serves filtered claims as a feature collection.
// Query params: state, district, village, fra_type, status,
// tribal_community, claim_area_min, claim_area_max.
func (a *API) GetFRAClaims(w http.ResponseWriter, r *http.Request) {
	filters, err := fra.ParseFilters(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Error loading FRA claims: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, a.Manager.Filtered(filters))
}

// GetClaimDetails serves a single claim by claim_id.
func (a *API) GetClaimDetails(w http.ResponseWriter, r *http.Request) {
	claimID := mux.Vars(r)["claim_id"]
	claim := a.Manager.ClaimByID(claimID)
	if claim == nil {
		writeError(w, http.StatusNotFound, "Claim not found")
		return
	}
	writeJSON(w, http.StatusOK, claim)
}

func (a *API) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Manager.Analytics())
}

func (a *API) GetStateSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Manager.StateSummary())
}

func (a *API) GetTribalAnalysis(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Manager.TribalAnalysis())
}

func (a *API) GetTimeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Manager.Timeline())
}

func (a *API) GetPerformanceMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Manager.PerformanceMetrics())
}

func (a *API) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.Manager.FilterOptions())
}

// ExportClaims serves filtered claims with export metadata attached.
func (a *API) ExportClaims(w http.ResponseWriter, r *http.Request) {
	filters, err := fra.ParseFilters(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	data := a.Manager.Filtered(filters)
	if data.Properties == nil {
		data.Properties = map[string]interface{}{}
	}
	data.Properties["export_info"] = map[string]interface{}{
		"exported_at":     time.Now().Format(time.RFC3339),
		"filters_applied": filters.Applied(),
		"total_claims":    len(data.Features),
	}
	writeJSON(w, http.StatusOK, data)
}
