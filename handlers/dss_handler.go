package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"vanachitra/dss"
	"vanachitra/metrics"
	"vanachitra/models"
)

// GetDSSDetails serves the decision-support dashboard payload for a
// polygon: resolved attributes, scheme recommendations, the applicable
// scheme catalog subset, and claim metadata.
func (a *API) GetDSSDetails(w http.ResponseWriter, r *http.Request) {
	polygonID := mux.Vars(r)["polygon_id"]

	claim := a.Manager.ClaimByID(polygonID)
	if claim == nil {
		claim = a.Manager.ClaimByPolygonID(polygonID)
	}
	info, found := a.Manager.ClaimInfoByPolygonID(polygonID)
	if claim == nil {
		// Non-tabular ids can still appear in the raw serving file.
		claim, info, found = a.scanClaimsFile(polygonID)
	}
	if claim == nil || !found {
		writeError(w, http.StatusNotFound, "Polygon not found")
		return
	}

	attrs := a.Resolver.Resolve(r.Context(), polygonID)
	metrics.DSSEvaluationsTotal.Inc()

	recommendations := dss.Evaluate(attrs)
	recommendations = dss.Enrich(recommendations, info, attrs)
	applicable := dss.FilterApplicableSchemes(info, attrs, a.schemes())

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"polygon_id":         polygonID,
		"attributes":         attrs,
		"recommendations":    recommendations,
		"applicable_schemes": applicable,
		"meta": map[string]interface{}{
			"fra_type":      info.FRAType,
			"state":         info.State,
			"district":      info.District,
			"village":       info.Village,
			"households":    firstNonNil(claim["total_households"], claim["beneficiary_households"]),
			"area_hectares": info.AreaHa,
		},
	})
}

func firstNonNil(values ...interface{}) interface{} {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func (a *API) scanClaimsFile(polygonID string) (map[string]interface{}, models.ClaimInfo, bool) {
	fc, err := a.loadGeoData(a.ClaimsPath)
	if err != nil {
		return nil, models.ClaimInfo{}, false
	}
	for _, f := range fc.Features {
		info := models.ExtractClaimInfo(f.Properties)
		if info.MatchesID(f.Properties, polygonID) {
			return models.SanitizeProperties(f.Properties), info, true
		}
	}
	return nil, models.ClaimInfo{}, false
}
