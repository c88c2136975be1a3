package transfer

import (
	"context"

	"go.uber.org/zap"

	"droscher.com/Weinkeller/pkg/model"
)

type exportRepository interface {
	GetAllWines(ctx context.Context) ([]*model.Wine, error)
	GetAllProducers(ctx context.Context) ([]*model.Producer, error)
	GetCurrentStock(ctx context.Context) ([]*model.StockLevel, error)
	GetGrapeTags(ctx context.Context) ([]*model.GrapeTag, error)
	GetWineTypeTags(ctx context.Context) ([]*model.WineTypeTag, error)
	GetCountryTags(ctx context.Context) ([]*model.CountryTag, error)
	GetRegionTags(ctx context.Context) ([]*model.RegionTag, error)
	GetOccasionTags(ctx context.Context) ([]*model.OccasionTag, error)
	GetFoodPairingTags(ctx context.Context) ([]*model.FoodPairingTag, error)
}

type Exporter struct {
	repository exportRepository
	logger     *zap.Logger
}

func NewExporter(repo exportRepository, logger *zap.Logger) *Exporter {
	return &Exporter{repository: repo, logger: logger}
}

// Export assembles the full snapshot: catalog, tag taxonomies and the
// current stock projection.
func (e *Exporter) Export(ctx context.Context) (*Document, error) {
	document := &Document{
		Wines:     []WineRecord{},
		Inventory: []InventoryRecord{},
		Producers: []ProducerRecord{},
	}

	wines, err := e.repository.GetAllWines(ctx)
	if err != nil {
		return nil, err
	}

	for _, wine := range wines {
		document.Wines = append(document.Wines, wineRecord(wine))
	}

	producers, err := e.repository.GetAllProducers(ctx)
	if err != nil {
		return nil, err
	}

	for _, producer := range producers {
		document.Producers = append(document.Producers, producerRecord(producer))
	}

	levels, err := e.repository.GetCurrentStock(ctx)
	if err != nil {
		return nil, err
	}

	for _, level := range levels {
		document.Inventory = append(document.Inventory, InventoryRecord{WineID: level.WineID, Inventory: level.Inventory})
	}

	if document.Tags, err = e.exportTags(ctx); err != nil {
		return nil, err
	}

	e.logger.Info("exported collection",
		zap.Int("wines", len(document.Wines)),
		zap.Int("producers", len(document.Producers)),
		zap.Int("inventory", len(document.Inventory)))

	return document, nil
}

func (e *Exporter) exportTags(ctx context.Context) (TagSets, error) {
	sets := TagSets{
		Grape:       []string{},
		WineType:    []string{},
		Country:     []string{},
		Region:      []string{},
		Occasion:    []string{},
		FoodPairing: []string{},
	}

	grapes, err := e.repository.GetGrapeTags(ctx)
	if err != nil {
		return sets, err
	}

	for _, tag := range grapes {
		sets.Grape = append(sets.Grape, tag.Name)
	}

	wineTypes, err := e.repository.GetWineTypeTags(ctx)
	if err != nil {
		return sets, err
	}

	for _, tag := range wineTypes {
		sets.WineType = append(sets.WineType, tag.Name)
	}

	countries, err := e.repository.GetCountryTags(ctx)
	if err != nil {
		return sets, err
	}

	for _, tag := range countries {
		sets.Country = append(sets.Country, tag.Name)
	}

	regions, err := e.repository.GetRegionTags(ctx)
	if err != nil {
		return sets, err
	}

	for _, tag := range regions {
		sets.Region = append(sets.Region, tag.Name)
	}

	occasions, err := e.repository.GetOccasionTags(ctx)
	if err != nil {
		return sets, err
	}

	for _, tag := range occasions {
		sets.Occasion = append(sets.Occasion, tag.Name)
	}

	foodPairings, err := e.repository.GetFoodPairingTags(ctx)
	if err != nil {
		return sets, err
	}

	for _, tag := range foodPairings {
		sets.FoodPairing = append(sets.FoodPairing, tag.Name)
	}

	return sets, nil
}

func wineRecord(wine *model.Wine) WineRecord {
	record := WineRecord{
		ID:           wine.ID,
		Name:         wine.Name,
		ProducerID:   wine.ProducerID,
		Year:         wine.Year,
		Type:         wine.Type,
		Description:  wine.Description,
		Grape:        wine.Grape,
		BottleTop:    wine.BottleTop,
		BottleFormat: wine.BottleFormat,
		Maturity:     wine.Maturity,
		Wishlist:     wine.Wishlist,
		Favorite:     wine.Favorite,
		Grapes:       []string{},
		WineTypes:    []string{},
		Occasions:    []string{},
		FoodPairings: []string{},
	}

	for _, tag := range wine.Grapes {
		record.Grapes = append(record.Grapes, tag.Name)
	}

	for _, tag := range wine.WineTypes {
		record.WineTypes = append(record.WineTypes, tag.Name)
	}

	for _, tag := range wine.Occasions {
		record.Occasions = append(record.Occasions, tag.Name)
	}

	for _, tag := range wine.FoodPairings {
		record.FoodPairings = append(record.FoodPairings, tag.Name)
	}

	return record
}

func producerRecord(producer *model.Producer) ProducerRecord {
	record := ProducerRecord{
		ID:             producer.ID,
		Name:           producer.Name,
		Description:    producer.Description,
		Country:        producer.Country,
		Region:         producer.Region,
		Website:        producer.Website,
		Geocoordinates: producer.Geocoordinates,
		Contact:        producer.Contact,
	}

	if len(producer.Countries) > 0 {
		record.CountryTag = producer.Countries[0].Name
	}

	if len(producer.Regions) > 0 {
		record.RegionTag = producer.Regions[0].Name
	}

	return record
}
