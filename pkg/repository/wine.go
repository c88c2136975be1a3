package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Weinkeller/pkg/model"
)

var ErrWineNotFound = errors.New("wine not found")

type WineRepository interface {
	SaveWine(ctx context.Context, wine model.Wine) (*model.Wine, error)
	GetWineByID(ctx context.Context, wineID uint) (*model.Wine, error)
	GetAllWines(ctx context.Context) ([]*model.Wine, error)
	DeleteWine(ctx context.Context, wineID uint) error
	ReplaceWineTags(ctx context.Context, wine *model.Wine, association string, tags interface{}, count int) error
}

// SaveWine upserts by id: client-supplied id updates, zero id relies on
// autoincrement. Tag associations are managed separately via
// ReplaceWineTags, never written here.
func (r *Repository) SaveWine(ctx context.Context, wine model.Wine) (*model.Wine, error) {
	result := r.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&wine)
	if result.Error != nil {
		return nil, result.Error
	}

	return &wine, nil
}

func (r *Repository) GetWineByID(ctx context.Context, wineID uint) (*model.Wine, error) {
	var wine model.Wine

	result := r.DB.WithContext(ctx).
		Preload("Grapes").
		Preload("WineTypes").
		Preload("Occasions").
		Preload("FoodPairings").
		Preload("Producer").
		Preload("Producer.Countries").
		Preload("Producer.Regions").
		First(&wine, wineID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrWineNotFound, wineID)
		}

		return nil, result.Error
	}

	return &wine, nil
}

func (r *Repository) GetAllWines(ctx context.Context) ([]*model.Wine, error) {
	var wines []*model.Wine

	result := r.DB.WithContext(ctx).
		Preload("Grapes").
		Preload("WineTypes").
		Preload("Occasions").
		Preload("FoodPairings").
		Preload("Producer").
		Preload("Producer.Countries").
		Preload("Producer.Regions").
		Order("wines.name").
		Find(&wines)
	if result.Error != nil {
		return nil, result.Error
	}

	return wines, nil
}

func (r *Repository) DeleteWine(ctx context.Context, wineID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Wine{}, wineID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrWineNotFound, wineID)
	}

	return nil
}

// ReplaceWineTags fully replaces one tag association set. An empty set is
// an explicit clear; callers wanting "no change" simply don't call this.
func (r *Repository) ReplaceWineTags(ctx context.Context, wine *model.Wine, association string, tags interface{}, count int) error {
	assoc := r.DB.WithContext(ctx).Model(wine).Association(association)
	if count == 0 {
		return assoc.Clear()
	}

	return assoc.Replace(tags)
}
