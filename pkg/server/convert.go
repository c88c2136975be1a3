package server

import (
	"time"

	"droscher.com/Weinkeller/pkg/model"
)

type tagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type wineResponse struct {
	ID           uint          `json:"id"`
	Name         string        `json:"name"`
	ProducerID   *uint         `json:"producer_id,omitempty"`
	ProducerName string        `json:"producer_name,omitempty"`
	Year         *uint64       `json:"year,omitempty"`
	Type         string        `json:"type,omitempty"`
	Description  string        `json:"description,omitempty"`
	Grape        string        `json:"grape,omitempty"`
	BottleTop    string        `json:"bottle_top,omitempty"`
	BottleFormat string        `json:"bottle_format,omitempty"`
	Maturity     string        `json:"maturity,omitempty"`
	Wishlist     bool          `json:"wishlist"`
	Favorite     bool          `json:"favorite"`
	Grapes       []tagResponse `json:"grapes"`
	WineTypes    []tagResponse `json:"wine_types"`
	Occasions    []tagResponse `json:"occasions"`
	FoodPairings []tagResponse `json:"food_pairings"`

	ProducerCountry string `json:"producer_country,omitempty"`
	ProducerRegion  string `json:"producer_region,omitempty"`
}

type producerResponse struct {
	ID             uint          `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description,omitempty"`
	Country        string        `json:"country,omitempty"`
	Region         string        `json:"region,omitempty"`
	Website        string        `json:"website,omitempty"`
	Geocoordinates string        `json:"geocoordinates,omitempty"`
	Contact        string        `json:"contact,omitempty"`
	Countries      []tagResponse `json:"countries"`
	Regions        []tagResponse `json:"regions"`
}

type eventResponse struct {
	ID              uint      `json:"id"`
	WineID          uint      `json:"wine_id"`
	WineName        string    `json:"wine_name,omitempty"`
	EventType       string    `json:"event_type"`
	AcquisitionType string    `json:"acquisition_type,omitempty"`
	Quantity        int64     `json:"quantity"`
	Price           *float64  `json:"price,omitempty"`
	BoughtAt        string    `json:"bought_at,omitempty"`
	EventDate       time.Time `json:"event_date"`
	ErrorQuantity   int64     `json:"error_quantity"`
}

type stockEntryResponse struct {
	WineID    uint  `json:"wine_id"`
	Inventory int64 `json:"inventory"`
	wineResponse
}

func grapeTags(tags []model.GrapeTag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagResponse{ID: tag.ID, Name: tag.Name})
	}

	return out
}

func wineTypeTags(tags []model.WineTypeTag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagResponse{ID: tag.ID, Name: tag.Name})
	}

	return out
}

func countryTags(tags []model.CountryTag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagResponse{ID: tag.ID, Name: tag.Name})
	}

	return out
}

func regionTags(tags []model.RegionTag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagResponse{ID: tag.ID, Name: tag.Name})
	}

	return out
}

func occasionTags(tags []model.OccasionTag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagResponse{ID: tag.ID, Name: tag.Name})
	}

	return out
}

func foodPairingTags(tags []model.FoodPairingTag) []tagResponse {
	out := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tagResponse{ID: tag.ID, Name: tag.Name})
	}

	return out
}

func wineFromModel(wine *model.Wine) wineResponse {
	response := wineResponse{
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
		Grapes:       grapeTags(wine.Grapes),
		WineTypes:    wineTypeTags(wine.WineTypes),
		Occasions:    occasionTags(wine.Occasions),
		FoodPairings: foodPairingTags(wine.FoodPairings),
	}

	if wine.Producer != nil {
		response.ProducerName = wine.Producer.Name

		if len(wine.Producer.Countries) > 0 {
			response.ProducerCountry = wine.Producer.Countries[0].Name
		}

		if len(wine.Producer.Regions) > 0 {
			response.ProducerRegion = wine.Producer.Regions[0].Name
		}
	}

	return response
}

func winesFromModel(wines []*model.Wine) []wineResponse {
	out := make([]wineResponse, 0, len(wines))
	for _, wine := range wines {
		out = append(out, wineFromModel(wine))
	}

	return out
}

func producerFromModel(producer *model.Producer) producerResponse {
	return producerResponse{
		ID:             producer.ID,
		Name:           producer.Name,
		Description:    producer.Description,
		Country:        producer.Country,
		Region:         producer.Region,
		Website:        producer.Website,
		Geocoordinates: producer.Geocoordinates,
		Contact:        producer.Contact,
		Countries:      countryTags(producer.Countries),
		Regions:        regionTags(producer.Regions),
	}
}

func producersFromModel(producers []*model.Producer) []producerResponse {
	out := make([]producerResponse, 0, len(producers))
	for _, producer := range producers {
		out = append(out, producerFromModel(producer))
	}

	return out
}

func eventFromModel(event *model.InventoryEvent) eventResponse {
	return eventResponse{
		ID:              event.ID,
		WineID:          event.WineID,
		WineName:        event.Wine.Name,
		EventType:       event.EventType,
		AcquisitionType: event.AcquisitionType,
		Quantity:        event.Quantity,
		Price:           event.Price,
		BoughtAt:        event.BoughtAt,
		EventDate:       event.EventDate,
		ErrorQuantity:   event.ErrorQuantity,
	}
}

func stockFromModel(levels []*model.StockLevel) []stockEntryResponse {
	out := make([]stockEntryResponse, 0, len(levels))
	for _, level := range levels {
		out = append(out, stockEntryResponse{
			WineID:       level.WineID,
			Inventory:    level.Inventory,
			wineResponse: wineFromModel(&level.Wine),
		})
	}

	return out
}
