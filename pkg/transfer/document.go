// Package transfer moves the whole collection in and out as a single JSON
// document. Export is a read-only traversal; import replays the document
// record-by-record with per-record error accumulation and no rollback.
package transfer

// Document is the export/import snapshot shape.
type Document struct {
	Wines     []WineRecord      `json:"wines"`
	Inventory []InventoryRecord `json:"inventory"`
	Producers []ProducerRecord  `json:"producers"`
	Tags      TagSets           `json:"tags"`
}

type TagSets struct {
	Grape       []string `json:"grape"`
	WineType    []string `json:"wine_type"`
	Country     []string `json:"country"`
	Region      []string `json:"region"`
	Occasion    []string `json:"occasion"`
	FoodPairing []string `json:"food_pairing"`
}

// WineRecord embeds tag names rather than ids so a document imports
// cleanly into any database.
type WineRecord struct {
	ID           uint     `json:"id"`
	Name         string   `json:"name"`
	ProducerID   *uint    `json:"producer_id,omitempty"`
	Year         *uint64  `json:"year,omitempty"`
	Type         string   `json:"type,omitempty"`
	Description  string   `json:"description,omitempty"`
	Grape        string   `json:"grape,omitempty"`
	BottleTop    string   `json:"bottle_top,omitempty"`
	BottleFormat string   `json:"bottle_format,omitempty"`
	Maturity     string   `json:"maturity,omitempty"`
	Wishlist     bool     `json:"wishlist"`
	Favorite     bool     `json:"favorite"`
	Grapes       []string `json:"grapes"`
	WineTypes    []string `json:"wine_types"`
	Occasions    []string `json:"occasions"`
	FoodPairings []string `json:"food_pairings"`
}

type ProducerRecord struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Country        string `json:"country,omitempty"`
	Region         string `json:"region,omitempty"`
	Website        string `json:"website,omitempty"`
	Geocoordinates string `json:"geocoordinates,omitempty"`
	Contact        string `json:"contact,omitempty"`
	CountryTag     string `json:"country_tag,omitempty"`
	RegionTag      string `json:"region_tag,omitempty"`
}

// InventoryRecord carries only the projected stock count. Importing it
// synthesizes one add event per wine; the original event history, prices
// and acquisition types are not preserved.
type InventoryRecord struct {
	WineID    uint  `json:"wine_id"`
	Inventory int64 `json:"inventory"`
}

// Result reports a best-effort import. Success refers to the run itself;
// individual record failures land in Errors while processing continues.
type Result struct {
	Success bool     `json:"success"`
	Created Counts   `json:"created"`
	Updated Counts   `json:"updated"`
	Errors  []string `json:"errors"`
}

type Counts struct {
	Tags            int `json:"tags"`
	Producers       int `json:"producers"`
	Wines           int `json:"wines"`
	InventoryEvents int `json:"inventory_events"`
}
