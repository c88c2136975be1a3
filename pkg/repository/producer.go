package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Weinkeller/pkg/model"
)

var ErrProducerNotFound = errors.New("producer not found")

type ProducerRepository interface {
	SaveProducer(ctx context.Context, producer model.Producer) (*model.Producer, error)
	GetProducerByID(ctx context.Context, producerID uint) (*model.Producer, error)
	GetAllProducers(ctx context.Context) ([]*model.Producer, error)
	DeleteProducer(ctx context.Context, producerID uint) error
	SetProducerCountry(ctx context.Context, producer *model.Producer, tag *model.CountryTag) error
	SetProducerRegion(ctx context.Context, producer *model.Producer, tag *model.RegionTag) error
}

func (r *Repository) SaveProducer(ctx context.Context, producer model.Producer) (*model.Producer, error) {
	result := r.DB.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&producer)
	if result.Error != nil {
		return nil, result.Error
	}

	return &producer, nil
}

func (r *Repository) GetProducerByID(ctx context.Context, producerID uint) (*model.Producer, error) {
	var producer model.Producer

	result := r.DB.WithContext(ctx).
		Preload("Countries").
		Preload("Regions").
		First(&producer, producerID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrProducerNotFound, producerID)
		}

		return nil, result.Error
	}

	return &producer, nil
}

func (r *Repository) GetAllProducers(ctx context.Context) ([]*model.Producer, error) {
	var producers []*model.Producer

	result := r.DB.WithContext(ctx).
		Preload("Countries").
		Preload("Regions").
		Order("producers.name").
		Find(&producers)
	if result.Error != nil {
		return nil, result.Error
	}

	return producers, nil
}

func (r *Repository) DeleteProducer(ctx context.Context, producerID uint) error {
	result := r.DB.WithContext(ctx).Delete(&model.Producer{}, producerID)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrProducerNotFound, producerID)
	}

	return nil
}

// SetProducerCountry replaces the producer's country tag. A producer holds
// at most one; nil clears it.
func (r *Repository) SetProducerCountry(ctx context.Context, producer *model.Producer, tag *model.CountryTag) error {
	assoc := r.DB.WithContext(ctx).Model(producer).Association("Countries")
	if tag == nil {
		return assoc.Clear()
	}

	return assoc.Replace([]model.CountryTag{*tag})
}

func (r *Repository) SetProducerRegion(ctx context.Context, producer *model.Producer, tag *model.RegionTag) error {
	assoc := r.DB.WithContext(ctx).Model(producer).Association("Regions")
	if tag == nil {
		return assoc.Clear()
	}

	return assoc.Replace([]model.RegionTag{*tag})
}
