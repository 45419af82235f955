package models

// Scheme is a government welfare/development program from the static
// catalog, scoped by geography and sector.
type Scheme struct {
	Name        string   `json:"name"`
	Ministry    string   `json:"ministry,omitempty"`
	Geography   []string `json:"geography"`
	Sectors     []string `json:"sectors"`
	Description string   `json:"description,omitempty"`
}

// Sector names used in scheme records and sector derivation.
const (
	SectorForest        = "Forest"
	SectorWater         = "Water"
	SectorAgriculture   = "Agriculture"
	SectorTribalWelfare = "Tribal Welfare"
)

// GeographyAllIndia is the sentinel for nationally applicable schemes.
const GeographyAllIndia = "All-India"
