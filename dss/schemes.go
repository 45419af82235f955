package dss

import (
	"encoding/json"
	"os"

	"vanachitra/models"
)

// Sector-derivation thresholds, looser than the recommendation thresholds
// so borderline parcels still see water/forest programs.
const (
	sectorForestCoverThreshold = 30
	sectorWaterLevelThreshold  = 100
	sectorGroundwaterThreshold = 0.6
)

// LoadSchemes reads the static scheme catalog. A missing or malformed file
// yields an empty catalog.
func LoadSchemes(path string) []models.Scheme {
	data, err := os.ReadFile(path)
	if err != nil {
		return []models.Scheme{}
	}
	var schemes []models.Scheme
	if err := json.Unmarshal(data, &schemes); err != nil {
		return []models.Scheme{}
	}
	return schemes
}

// DeriveSectors determines the applicable sector set from the claim type
// and the resolved attributes. An absent attribute adds no sector.
func DeriveSectors(claim models.ClaimInfo, attrs *models.PolygonAttributes) map[string]bool {
	sectors := make(map[string]bool)

	switch claim.FRAType {
	case models.FRATypeCFR, models.FRATypeCR:
		sectors[models.SectorForest] = true
		sectors[models.SectorTribalWelfare] = true
	case models.FRATypeIFR, "Agriculture":
		sectors[models.SectorAgriculture] = true
	case "Water Body":
		sectors[models.SectorWater] = true
	}

	if attrs != nil {
		if attrs.ForestCoverPercentage != nil && *attrs.ForestCoverPercentage > sectorForestCoverThreshold {
			sectors[models.SectorForest] = true
		}
		if (attrs.WaterLevel != nil && *attrs.WaterLevel < sectorWaterLevelThreshold) ||
			(attrs.GroundwaterIndex != nil && *attrs.GroundwaterIndex < sectorGroundwaterThreshold) {
			sectors[models.SectorWater] = true
		}
	}
	return sectors
}

// FilterApplicableSchemes narrows the catalog to schemes whose geography
// covers the claim's state (or All-India) and whose sectors intersect the
// derived sector set.
func FilterApplicableSchemes(claim models.ClaimInfo, attrs *models.PolygonAttributes, schemes []models.Scheme) []models.Scheme {
	sectors := DeriveSectors(claim, attrs)
	applicable := make([]models.Scheme, 0)
	for _, s := range schemes {
		if !geographyMatches(s.Geography, claim.State) {
			continue
		}
		if !sectorsIntersect(s.Sectors, sectors) {
			continue
		}
		applicable = append(applicable, s)
	}
	return applicable
}

func geographyMatches(geography []string, state string) bool {
	for _, g := range geography {
		if g == models.GeographyAllIndia {
			return true
		}
		if state != "" && g == state {
			return true
		}
	}
	return false
}

func sectorsIntersect(schemeSectors []string, derived map[string]bool) bool {
	for _, s := range schemeSectors {
		if derived[s] {
			return true
		}
	}
	return false
}
