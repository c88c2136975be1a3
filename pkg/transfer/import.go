package transfer

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
)

const importAcquisitionType = "import"

var ErrMissingName = errors.New("missing name")

type importRepository interface {
	SaveWine(ctx context.Context, wine model.Wine) (*model.Wine, error)
	GetWineByID(ctx context.Context, wineID uint) (*model.Wine, error)
	ReplaceWineTags(ctx context.Context, wine *model.Wine, association string, tags interface{}, count int) error
	SaveProducer(ctx context.Context, producer model.Producer) (*model.Producer, error)
	GetProducerByID(ctx context.Context, producerID uint) (*model.Producer, error)
	SetProducerCountry(ctx context.Context, producer *model.Producer, tag *model.CountryTag) error
	SetProducerRegion(ctx context.Context, producer *model.Producer, tag *model.RegionTag) error
	RecordAcquisition(ctx context.Context, event model.InventoryEvent) (*model.InventoryEvent, error)
	AddGrapeTag(ctx context.Context, name string) (*model.GrapeTag, error)
	AddWineTypeTag(ctx context.Context, name string) (*model.WineTypeTag, error)
	AddCountryTag(ctx context.Context, name string) (*model.CountryTag, error)
	AddRegionTag(ctx context.Context, name string) (*model.RegionTag, error)
	AddOccasionTag(ctx context.Context, name string) (*model.OccasionTag, error)
	AddFoodPairingTag(ctx context.Context, name string) (*model.FoodPairingTag, error)
}

type Importer struct {
	repository importRepository
	logger     *zap.Logger
}

func NewImporter(repo importRepository, logger *zap.Logger) *Importer {
	return &Importer{repository: repo, logger: logger}
}

// Import replays a document: tags first, then producers, wines and
// inventory, so later sections can reference earlier ones. Every record is
// handled independently; failures are collected and the rest continues.
// There is no shared transaction, so a partially invalid document leaves a
// partially applied database.
func (im *Importer) Import(ctx context.Context, document *Document) *Result {
	result := &Result{Success: true, Errors: []string{}}

	im.importTags(ctx, document.Tags, result)
	im.importProducers(ctx, document.Producers, result)
	im.importWines(ctx, document.Wines, result)
	im.importInventory(ctx, document.Inventory, result)

	if combined := multierr.Combine(stringsToErrors(result.Errors)...); combined != nil {
		im.logger.Warn("import completed with errors", zap.Int("count", len(result.Errors)), zap.Error(combined))
	} else {
		im.logger.Info("import completed",
			zap.Int("wines", result.Created.Wines+result.Updated.Wines),
			zap.Int("producers", result.Created.Producers+result.Updated.Producers))
	}

	return result
}

// importTags upserts every tag name. The upsert is idempotent by name, so
// all successes count as created; there is nothing to update on a tag.
func (im *Importer) importTags(ctx context.Context, sets TagSets, result *Result) {
	record := func(section string, index int, name string, err error) {
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("tags.%s[%d] %q: %v", section, index, name, err))

			return
		}

		result.Created.Tags++
	}

	for index, name := range sets.Grape {
		_, err := im.repository.AddGrapeTag(ctx, name)
		record("grape", index, name, err)
	}

	for index, name := range sets.WineType {
		_, err := im.repository.AddWineTypeTag(ctx, name)
		record("wine_type", index, name, err)
	}

	for index, name := range sets.Country {
		_, err := im.repository.AddCountryTag(ctx, name)
		record("country", index, name, err)
	}

	for index, name := range sets.Region {
		_, err := im.repository.AddRegionTag(ctx, name)
		record("region", index, name, err)
	}

	for index, name := range sets.Occasion {
		_, err := im.repository.AddOccasionTag(ctx, name)
		record("occasion", index, name, err)
	}

	for index, name := range sets.FoodPairing {
		_, err := im.repository.AddFoodPairingTag(ctx, name)
		record("food_pairing", index, name, err)
	}
}

func (im *Importer) importProducers(ctx context.Context, records []ProducerRecord, result *Result) {
	for index, record := range records {
		created, err := im.importProducer(ctx, record)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("producers[%d]: %v", index, err))

			continue
		}

		if created {
			result.Created.Producers++
		} else {
			result.Updated.Producers++
		}
	}
}

func (im *Importer) importProducer(ctx context.Context, record ProducerRecord) (bool, error) {
	if record.Name == "" {
		return false, ErrMissingName
	}

	created := record.ID == 0

	if record.ID != 0 {
		if _, err := im.repository.GetProducerByID(ctx, record.ID); err != nil {
			if !errors.Is(err, repository.ErrProducerNotFound) {
				return false, err
			}

			created = true
		}
	}

	producer := model.Producer{
		Model:          gorm.Model{ID: record.ID},
		Name:           record.Name,
		Description:    record.Description,
		Country:        record.Country,
		Region:         record.Region,
		Website:        record.Website,
		Geocoordinates: record.Geocoordinates,
		Contact:        record.Contact,
	}

	saved, err := im.repository.SaveProducer(ctx, producer)
	if err != nil {
		return false, err
	}

	if record.CountryTag != "" {
		tag, tagErr := im.repository.AddCountryTag(ctx, record.CountryTag)
		if tagErr != nil {
			return false, tagErr
		}

		if tagErr = im.repository.SetProducerCountry(ctx, saved, tag); tagErr != nil {
			return false, tagErr
		}
	}

	if record.RegionTag != "" {
		tag, tagErr := im.repository.AddRegionTag(ctx, record.RegionTag)
		if tagErr != nil {
			return false, tagErr
		}

		if tagErr = im.repository.SetProducerRegion(ctx, saved, tag); tagErr != nil {
			return false, tagErr
		}
	}

	return created, nil
}

func (im *Importer) importWines(ctx context.Context, records []WineRecord, result *Result) {
	for index, record := range records {
		created, err := im.importWine(ctx, record)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("wines[%d]: %v", index, err))

			continue
		}

		if created {
			result.Created.Wines++
		} else {
			result.Updated.Wines++
		}
	}
}

func (im *Importer) importWine(ctx context.Context, record WineRecord) (bool, error) {
	if record.Name == "" {
		return false, ErrMissingName
	}

	created := record.ID == 0

	if record.ID != 0 {
		if _, err := im.repository.GetWineByID(ctx, record.ID); err != nil {
			if !errors.Is(err, repository.ErrWineNotFound) {
				return false, err
			}

			created = true
		}
	}

	wine := model.Wine{
		Model:        gorm.Model{ID: record.ID},
		Name:         record.Name,
		ProducerID:   record.ProducerID,
		Year:         record.Year,
		Type:         record.Type,
		Description:  record.Description,
		Grape:        record.Grape,
		BottleTop:    record.BottleTop,
		BottleFormat: record.BottleFormat,
		Maturity:     record.Maturity,
		Wishlist:     record.Wishlist,
		Favorite:     record.Favorite,
	}

	saved, err := im.repository.SaveWine(ctx, wine)
	if err != nil {
		return false, err
	}

	return created, im.attachWineTags(ctx, saved, record)
}

func (im *Importer) attachWineTags(ctx context.Context, wine *model.Wine, record WineRecord) error {
	if len(record.Grapes) > 0 {
		tags := make([]model.GrapeTag, 0, len(record.Grapes))

		for _, name := range record.Grapes {
			tag, err := im.repository.AddGrapeTag(ctx, name)
			if err != nil {
				return err
			}

			tags = append(tags, *tag)
		}

		if err := im.repository.ReplaceWineTags(ctx, wine, "Grapes", tags, len(tags)); err != nil {
			return err
		}
	}

	if len(record.WineTypes) > 0 {
		tags := make([]model.WineTypeTag, 0, len(record.WineTypes))

		for _, name := range record.WineTypes {
			tag, err := im.repository.AddWineTypeTag(ctx, name)
			if err != nil {
				return err
			}

			tags = append(tags, *tag)
		}

		if err := im.repository.ReplaceWineTags(ctx, wine, "WineTypes", tags, len(tags)); err != nil {
			return err
		}
	}

	if len(record.Occasions) > 0 {
		tags := make([]model.OccasionTag, 0, len(record.Occasions))

		for _, name := range record.Occasions {
			tag, err := im.repository.AddOccasionTag(ctx, name)
			if err != nil {
				return err
			}

			tags = append(tags, *tag)
		}

		if err := im.repository.ReplaceWineTags(ctx, wine, "Occasions", tags, len(tags)); err != nil {
			return err
		}
	}

	if len(record.FoodPairings) > 0 {
		tags := make([]model.FoodPairingTag, 0, len(record.FoodPairings))

		for _, name := range record.FoodPairings {
			tag, err := im.repository.AddFoodPairingTag(ctx, name)
			if err != nil {
				return err
			}

			tags = append(tags, *tag)
		}

		if err := im.repository.ReplaceWineTags(ctx, wine, "FoodPairings", tags, len(tags)); err != nil {
			return err
		}
	}

	return nil
}

// importInventory collapses each imported stock count into one synthetic
// add event. Original acquisition types, prices and dates are gone by
// construction.
func (im *Importer) importInventory(ctx context.Context, records []InventoryRecord, result *Result) {
	for index, record := range records {
		event := model.InventoryEvent{
			WineID:          record.WineID,
			EventType:       model.EventTypeAdd,
			AcquisitionType: importAcquisitionType,
			Quantity:        record.Inventory,
		}

		if _, err := im.repository.RecordAcquisition(ctx, event); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("inventory[%d]: %v", index, err))

			continue
		}

		result.Created.InventoryEvents++
	}
}

func stringsToErrors(messages []string) []error {
	out := make([]error, 0, len(messages))
	for _, message := range messages {
		out = append(out, errors.New(message))
	}

	return out
}
