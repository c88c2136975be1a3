package repository

import (
	"context"

	"gorm.io/gorm/clause"

	"droscher.com/Weinkeller/pkg/model"
)

// Tag creation is idempotent by name: ON CONFLICT DO NOTHING, then re-read
// when the insert was a no-op. One block per taxonomy; the six taxonomies
// are deliberately independent tables.

type TagRepository interface {
	AddGrapeTag(ctx context.Context, name string) (*model.GrapeTag, error)
	AddWineTypeTag(ctx context.Context, name string) (*model.WineTypeTag, error)
	AddCountryTag(ctx context.Context, name string) (*model.CountryTag, error)
	AddRegionTag(ctx context.Context, name string) (*model.RegionTag, error)
	AddOccasionTag(ctx context.Context, name string) (*model.OccasionTag, error)
	AddFoodPairingTag(ctx context.Context, name string) (*model.FoodPairingTag, error)
	GetGrapeTags(ctx context.Context) ([]*model.GrapeTag, error)
	GetWineTypeTags(ctx context.Context) ([]*model.WineTypeTag, error)
	GetCountryTags(ctx context.Context) ([]*model.CountryTag, error)
	GetRegionTags(ctx context.Context) ([]*model.RegionTag, error)
	GetOccasionTags(ctx context.Context) ([]*model.OccasionTag, error)
	GetFoodPairingTags(ctx context.Context) ([]*model.FoodPairingTag, error)
	GetGrapeTagsByIDs(ctx context.Context, ids []uint) ([]model.GrapeTag, error)
	GetWineTypeTagsByIDs(ctx context.Context, ids []uint) ([]model.WineTypeTag, error)
	GetCountryTagsByIDs(ctx context.Context, ids []uint) ([]model.CountryTag, error)
	GetRegionTagsByIDs(ctx context.Context, ids []uint) ([]model.RegionTag, error)
	GetOccasionTagsByIDs(ctx context.Context, ids []uint) ([]model.OccasionTag, error)
	GetFoodPairingTagsByIDs(ctx context.Context, ids []uint) ([]model.FoodPairingTag, error)
}

func (r *Repository) AddGrapeTag(ctx context.Context, name string) (*model.GrapeTag, error) {
	tag := model.GrapeTag{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag); result.Error != nil {
		return nil, result.Error
	}

	if tag.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&tag); result.Error != nil {
			return nil, result.Error
		}
	}

	return &tag, nil
}

func (r *Repository) AddWineTypeTag(ctx context.Context, name string) (*model.WineTypeTag, error) {
	tag := model.WineTypeTag{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag); result.Error != nil {
		return nil, result.Error
	}

	if tag.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&tag); result.Error != nil {
			return nil, result.Error
		}
	}

	return &tag, nil
}

func (r *Repository) AddCountryTag(ctx context.Context, name string) (*model.CountryTag, error) {
	tag := model.CountryTag{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag); result.Error != nil {
		return nil, result.Error
	}

	if tag.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&tag); result.Error != nil {
			return nil, result.Error
		}
	}

	return &tag, nil
}

func (r *Repository) AddRegionTag(ctx context.Context, name string) (*model.RegionTag, error) {
	tag := model.RegionTag{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag); result.Error != nil {
		return nil, result.Error
	}

	if tag.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&tag); result.Error != nil {
			return nil, result.Error
		}
	}

	return &tag, nil
}

func (r *Repository) AddOccasionTag(ctx context.Context, name string) (*model.OccasionTag, error) {
	tag := model.OccasionTag{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag); result.Error != nil {
		return nil, result.Error
	}

	if tag.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&tag); result.Error != nil {
			return nil, result.Error
		}
	}

	return &tag, nil
}

func (r *Repository) AddFoodPairingTag(ctx context.Context, name string) (*model.FoodPairingTag, error) {
	tag := model.FoodPairingTag{Name: name}
	if result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag); result.Error != nil {
		return nil, result.Error
	}

	if tag.ID == 0 {
		if result := r.DB.WithContext(ctx).Where("name = ?", name).First(&tag); result.Error != nil {
			return nil, result.Error
		}
	}

	return &tag, nil
}

func (r *Repository) GetGrapeTags(ctx context.Context) ([]*model.GrapeTag, error) {
	var tags []*model.GrapeTag
	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetWineTypeTags(ctx context.Context) ([]*model.WineTypeTag, error) {
	var tags []*model.WineTypeTag
	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetCountryTags(ctx context.Context) ([]*model.CountryTag, error) {
	var tags []*model.CountryTag
	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetRegionTags(ctx context.Context) ([]*model.RegionTag, error) {
	var tags []*model.RegionTag
	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetOccasionTags(ctx context.Context) ([]*model.OccasionTag, error) {
	var tags []*model.OccasionTag
	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetFoodPairingTags(ctx context.Context) ([]*model.FoodPairingTag, error) {
	var tags []*model.FoodPairingTag
	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetGrapeTagsByIDs(ctx context.Context, ids []uint) ([]model.GrapeTag, error) {
	var tags []model.GrapeTag
	if result := r.DB.WithContext(ctx).Find(&tags, ids); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetWineTypeTagsByIDs(ctx context.Context, ids []uint) ([]model.WineTypeTag, error) {
	var tags []model.WineTypeTag
	if result := r.DB.WithContext(ctx).Find(&tags, ids); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetCountryTagsByIDs(ctx context.Context, ids []uint) ([]model.CountryTag, error) {
	var tags []model.CountryTag
	if result := r.DB.WithContext(ctx).Find(&tags, ids); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetRegionTagsByIDs(ctx context.Context, ids []uint) ([]model.RegionTag, error) {
	var tags []model.RegionTag
	if result := r.DB.WithContext(ctx).Find(&tags, ids); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetOccasionTagsByIDs(ctx context.Context, ids []uint) ([]model.OccasionTag, error) {
	var tags []model.OccasionTag
	if result := r.DB.WithContext(ctx).Find(&tags, ids); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetFoodPairingTagsByIDs(ctx context.Context, ids []uint) ([]model.FoodPairingTag, error) {
	var tags []model.FoodPairingTag
	if result := r.DB.WithContext(ctx).Find(&tags, ids); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

var (
	defaultOccasions = []string{"Aperitif", "Everyday", "Dinner", "Celebration", "Gift"}

	defaultFoodPairings = []string{
		"Beef", "Lamb", "Pork", "Poultry", "Game",
		"Fish", "Seafood", "Pasta", "Cheese", "Dessert", "Vegetarian",
	}
)

// SeedDefaults inserts the fixed occasion and food-pairing rows. Safe to
// run on every start; existing names are left alone.
func (r *Repository) SeedDefaults(ctx context.Context) error {
	for _, name := range defaultOccasions {
		if _, err := r.AddOccasionTag(ctx, name); err != nil {
			return err
		}
	}

	for _, name := range defaultFoodPairings {
		if _, err := r.AddFoodPairingTag(ctx, name); err != nil {
			return err
		}
	}

	return nil
}
