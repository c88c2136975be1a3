package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
)

type AssessmentTestSuite struct {
	RepositorySuite
}

func TestAssessmentTestSuite(t *testing.T) {
	suite.Run(t, new(AssessmentTestSuite))
}

func (suite *AssessmentTestSuite) createWine(name string) *model.Wine {
	wine, err := suite.repository.SaveWine(context.Background(), model.Wine{Name: name})
	suite.Require().NoError(err)

	return wine
}

func (suite *AssessmentTestSuite) TestSaveAssessment_DefaultsDateAndUpserts() {
	ctx := context.Background()
	wine := suite.createWine("Tasting Target")

	assessment, err := suite.repository.SaveAssessment(ctx, model.Assessment{
		WineID:            wine.ID,
		AppearanceClarity: "clear",
		NoseIntensity:     "pronounced",
	})
	suite.Require().NoError(err)
	suite.NotZero(assessment.ID)
	suite.False(assessment.Date.IsZero())

	assessment.AppearanceClarity = "hazy"
	updated, err := suite.repository.SaveAssessment(ctx, *assessment)
	suite.Require().NoError(err)
	suite.Equal(assessment.ID, updated.ID)

	reloaded, err := suite.repository.GetAssessmentByID(ctx, assessment.ID)
	suite.Require().NoError(err)
	suite.Equal("hazy", reloaded.AppearanceClarity)
	suite.Equal("pronounced", reloaded.NoseIntensity)
}

func (suite *AssessmentTestSuite) TestSaveAssessment_RejectsUnknownWine() {
	_, err := suite.repository.SaveAssessment(context.Background(), model.Assessment{WineID: 31337})
	suite.Require().ErrorIs(err, repository.ErrWineNotFound)
}

func (suite *AssessmentTestSuite) TestGetAssessmentsForWine_ReturnsNewestFirst() {
	ctx := context.Background()
	wine := suite.createWine("Vertical Flight")
	other := suite.createWine("Other Bottle")

	older := time.Date(2022, time.May, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	_, err := suite.repository.SaveAssessment(ctx, model.Assessment{WineID: wine.ID, Date: older, QualityLevel: "good"})
	suite.Require().NoError(err)
	_, err = suite.repository.SaveAssessment(ctx, model.Assessment{WineID: wine.ID, Date: newer, QualityLevel: "outstanding"})
	suite.Require().NoError(err)
	_, err = suite.repository.SaveAssessment(ctx, model.Assessment{WineID: other.ID})
	suite.Require().NoError(err)

	assessments, err := suite.repository.GetAssessmentsForWine(ctx, wine.ID)
	suite.Require().NoError(err)
	suite.Require().Len(assessments, 2)
	suite.Equal("outstanding", assessments[0].QualityLevel)
	suite.Equal("good", assessments[1].QualityLevel)
}

func (suite *AssessmentTestSuite) TestDeleteAssessment_ReturnsErrorWhenMissing() {
	err := suite.repository.DeleteAssessment(context.Background(), 246)
	suite.Require().ErrorIs(err, repository.ErrAssessmentNotFound)
}
