package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
)

type AssessmentServer struct {
	repository repository.AssessmentRepository
	logger     *zap.Logger
}

func NewAssessmentServer(repo repository.AssessmentRepository, logger *zap.Logger) *AssessmentServer {
	return &AssessmentServer{repository: repo, logger: logger}
}

type assessmentRequest struct {
	ID     uint       `json:"id"`
	WineID uint       `json:"wine_id" binding:"required"`
	Date   *time.Time `json:"date"`

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
}

func (a *AssessmentServer) GetAssessmentsForWine(c *gin.Context) {
	wineID, err := parseIDParam(c, "wine_id")
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	assessments, err := a.repository.GetAssessmentsForWine(c.Request.Context(), wineID)
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	c.JSON(http.StatusOK, assessments)
}

func (a *AssessmentServer) AddAssessment(c *gin.Context) {
	var request assessmentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, a.logger, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error()))

		return
	}

	created := request.ID == 0

	assessment := model.Assessment{
		Model:  gorm.Model{ID: request.ID},
		WineID: request.WineID,

		AppearanceClarity:      request.AppearanceClarity,
		AppearanceIntensity:    request.AppearanceIntensity,
		AppearanceColor:        request.AppearanceColor,
		AppearanceViscosity:    request.AppearanceViscosity,
		AppearanceObservations: request.AppearanceObservations,

		NoseCondition:    request.NoseCondition,
		NoseIntensity:    request.NoseIntensity,
		NoseDevelopment:  request.NoseDevelopment,
		NoseAromas:       request.NoseAromas,
		NoseObservations: request.NoseObservations,

		PalateSweetness:       request.PalateSweetness,
		PalateAcidity:         request.PalateAcidity,
		PalateTannin:          request.PalateTannin,
		PalateAlcohol:         request.PalateAlcohol,
		PalateBody:            request.PalateBody,
		PalateMousse:          request.PalateMousse,
		PalateFlavorIntensity: request.PalateFlavorIntensity,
		PalateFlavors:         request.PalateFlavors,
		PalateFinish:          request.PalateFinish,
		PalateObservations:    request.PalateObservations,

		QualityLevel:         request.QualityLevel,
		ReadinessForDrinking: request.ReadinessForDrinking,
		AgeingPotential:      request.AgeingPotential,
		ConclusionsRemarks:   request.ConclusionsRemarks,
	}

	if request.Date != nil {
		assessment.Date = *request.Date
	}

	saved, err := a.repository.SaveAssessment(c.Request.Context(), assessment)
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, saved)
}

func (a *AssessmentServer) DeleteAssessment(c *gin.Context) {
	assessmentID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, a.logger, err)

		return
	}

	if err = a.repository.DeleteAssessment(c.Request.Context(), assessmentID); err != nil {
		respondError(c, a.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}
