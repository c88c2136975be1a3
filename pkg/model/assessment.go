package model

import (
	"time"

	"gorm.io/gorm"
)

// Assessment is a structured tasting note, grouped into appearance, nose,
// palate and conclusions. All tasting fields are free text.
type Assessment struct {
	gorm.Model
	WineID uint      `gorm:"index;not null" json:"wine_id"`
	Date   time.Time `json:"date"`

	AppearanceClarity      string `json:"appearance_clarity"`
	AppearanceIntensity    string `json:"appearance_intensity"`
	AppearanceColor        string `json:"appearance_color"`
	AppearanceViscosity    string `json:"appearance_viscosity"`
	AppearanceObservations string `json:"appearance_observations"`

	NoseCondition    string `json:"nose_condition"`
	NoseIntensity    string `json:"nose_intensity"`
	NoseDevelopment  string `json:"nose_development"`
	NoseAromas       string `json:"nose_aromas"`
	NoseObservations string `json:"nose_observations"`

	PalateSweetness       string `json:"palate_sweetness"`
	PalateAcidity         string `json:"palate_acidity"`
	PalateTannin          string `json:"palate_tannin"`
	PalateAlcohol         string `json:"palate_alcohol"`
	PalateBody            string `json:"palate_body"`
	PalateMousse          string `json:"palate_mousse"`
	PalateFlavorIntensity string `json:"palate_flavor_intensity"`
	PalateFlavors         string `json:"palate_flavors"`
	PalateFinish          string `json:"palate_finish"`
	PalateObservations    string `json:"palate_observations"`

	QualityLevel         string `json:"quality_level"`
	ReadinessForDrinking string `json:"readiness_for_drinking"`
	AgeingPotential      string `json:"ageing_potential"`
	ConclusionsRemarks   string `json:"conclusions_remarks"`

	Wine Wine `gorm:"foreignKey:WineID" json:"-"`
}
