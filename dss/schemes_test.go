package dss

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vanachitra/models"
)

func testCatalog() []models.Scheme {
	return []models.Scheme{
		{Name: "CAMPA", Geography: []string{"All-India"}, Sectors: []string{"Forest"}},
		{Name: "PMKSY", Geography: []string{"All-India"}, Sectors: []string{"Water", "Agriculture"}},
		{Name: "Mission Kakatiya", Geography: []string{"Telangana"}, Sectors: []string{"Water"}},
		{Name: "KALIA", Geography: []string{"Odisha"}, Sectors: []string{"Agriculture"}},
		{Name: "Van Dhan Vikas Yojana", Geography: []string{"All-India"}, Sectors: []string{"Forest", "Tribal Welfare"}},
	}
}

func schemeNames(schemes []models.Scheme) []string {
	names := make([]string, len(schemes))
	for i, s := range schemes {
		names[i] = s.Name
	}
	return names
}

func TestDeriveSectorsFromClaimType(t *testing.T) {
	sectors := DeriveSectors(models.ClaimInfo{FRAType: models.FRATypeCFR}, nil)
	assert.True(t, sectors[models.SectorForest])
	assert.True(t, sectors[models.SectorTribalWelfare])
	assert.False(t, sectors[models.SectorAgriculture])

	sectors = DeriveSectors(models.ClaimInfo{FRAType: models.FRATypeIFR}, nil)
	assert.True(t, sectors[models.SectorAgriculture])
	assert.False(t, sectors[models.SectorForest])

	sectors = DeriveSectors(models.ClaimInfo{FRAType: "Water Body"}, nil)
	assert.True(t, sectors[models.SectorWater])
}

func TestDeriveSectorsFromAttributes(t *testing.T) {
	attrs := &models.PolygonAttributes{
		ForestCoverPercentage: models.Float(35),
		GroundwaterIndex:      models.Float(0.5),
	}
	sectors := DeriveSectors(models.ClaimInfo{}, attrs)
	assert.True(t, sectors[models.SectorForest])
	assert.True(t, sectors[models.SectorWater])
}

func TestDeriveSectorsAbsentAttributesAddNothing(t *testing.T) {
	sectors := DeriveSectors(models.ClaimInfo{}, &models.PolygonAttributes{})
	assert.Empty(t, sectors)
}

func TestFilterApplicableSchemesGeography(t *testing.T) {
	claim := models.ClaimInfo{State: "Telangana", FRAType: models.FRATypeCFR}
	attrs := &models.PolygonAttributes{WaterLevel: models.Float(60)}

	applicable := FilterApplicableSchemes(claim, attrs, testCatalog())
	names := schemeNames(applicable)
	assert.Contains(t, names, "Mission Kakatiya")
	assert.NotContains(t, names, "KALIA") // wrong state
	assert.Contains(t, names, "CAMPA")    // All-India, Forest sector via CFR
}

func TestFilterApplicableSchemesSectorExclusion(t *testing.T) {
	// An IFR claim with no stressed attributes derives only Agriculture.
	claim := models.ClaimInfo{State: "Odisha", FRAType: models.FRATypeIFR}
	applicable := FilterApplicableSchemes(claim, &models.PolygonAttributes{}, testCatalog())
	names := schemeNames(applicable)
	assert.ElementsMatch(t, []string{"PMKSY", "KALIA"}, names)
}

func TestFilterApplicableSchemesEmptyCatalog(t *testing.T) {
	claim := models.ClaimInfo{State: "Telangana", FRAType: models.FRATypeCFR}
	applicable := FilterApplicableSchemes(claim, nil, nil)
	assert.NotNil(t, applicable)
	assert.Empty(t, applicable)
}

func TestLoadSchemesMissingFile(t *testing.T) {
	schemes := LoadSchemes("does-not-exist.json")
	assert.NotNil(t, schemes)
	assert.Empty(t, schemes)
}
