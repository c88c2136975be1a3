package model

import "gorm.io/gorm"

// Bottle formats accepted by the API. Stored as plain strings so legacy
// rows with free-text formats keep loading.
const (
	FormatPiccolo      = "piccolo"
	FormatHalf         = "half"
	FormatStandard     = "standard"
	FormatMagnum       = "magnum"
	FormatDoubleMagnum = "double_magnum"
	FormatJeroboam     = "jeroboam"
	FormatImperial     = "imperial"
)

var bottleFormats = map[string]struct{}{
	FormatPiccolo:      {},
	FormatHalf:         {},
	FormatStandard:     {},
	FormatMagnum:       {},
	FormatDoubleMagnum: {},
	FormatJeroboam:     {},
	FormatImperial:     {},
}

func IsValidBottleFormat(format string) bool {
	_, ok := bottleFormats[format]

	return ok
}

type Wine struct {
	gorm.Model
	Name         string  `json:"name"`
	ProducerID   *uint   `json:"producer_id"`
	Year         *uint64 `json:"year"`
	Type         string  `json:"type"` // legacy free text, superseded by WineTypes
	Description  string  `json:"description"`
	Grape        string  `json:"grape"` // legacy free text, superseded by Grapes
	BottleTop    string  `json:"bottle_top"`
	BottleFormat string  `json:"bottle_format"`
	Maturity     string  `json:"maturity"`
	Wishlist     bool    `json:"wishlist"`
	Favorite     bool    `json:"favorite"`

	Grapes       []GrapeTag       `gorm:"many2many:wine_grape_tags;"        json:"grapes"`
	WineTypes    []WineTypeTag    `gorm:"many2many:wine_type_assignments;"  json:"wine_types"`
	Occasions    []OccasionTag    `gorm:"many2many:wine_occasion_tags;"     json:"occasions"`
	FoodPairings []FoodPairingTag `gorm:"many2many:wine_food_pairing_tags;" json:"food_pairings"`

	Producer *Producer `gorm:"foreignKey:ProducerID" json:"producer,omitempty"`
}
