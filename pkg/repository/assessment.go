package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Weinkeller/pkg/model"
)

var ErrAssessmentNotFound = errors.New("assessment not found")

type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, assessment model.Assessment) (*model.Assessment, error)
	GetAssessmentByID(ctx context.Context, assessmentID uint) (*model.Assessment, error)
	GetAssessmentsForWine(ctx context.Context, wineID uint) ([]*model.Assessment, error)
	DeleteAssessment(ctx context.Context, assessmentID uint) error
}

func (r *Repository) SaveAssessment(ctx context.Context, assessment model.Assessment) (*model.Assessment, error) {
	if err := wineExists(r.DB.WithContext(ctx), assessment.WineID); err != nil {
		return nil, err
	}

	if assessment.Date.IsZero() {
		assessment.Date = time.Now().UTC()
	}

	result := r.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&assessment)
	if result.Error != nil {
		return nil, result.Error
	}

	return &assessment, nil
}

func (r *Repository) GetAssessmentByID(ctx context.Context, assessmentID uint) (*model.Assessment, error) {
	var assessment model.Assessment

	result := r.DB.WithContext(ctx).First(&assessment, assessmentID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrAssessmentNotFound, assessmentID)
		}

		return nil, result.Error
	}

	return &assessment, nil
}

func (r *Repository) GetAssessmentsForWine(ctx context.Context, wineID uint) ([]*model.Assessment, error) {
	var assessments []*model.Assessment

	result := r.DB.WithContext(ctx).
		Where("wine_id = ?", wineID).
		Order("date desc").
		Find(&assessments)
	if result.Error != nil {
		return nil, result.Error
	}

	return assessments, nil
}

func (r *Repository) DeleteAssessment(ctx context.Context, assessmentID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Assessment{}, assessmentID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrAssessmentNotFound, assessmentID)
	}

	return nil
}
