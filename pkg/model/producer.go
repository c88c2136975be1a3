package model

import "gorm.io/gorm"

type Producer struct {
	gorm.Model
	Name           string `json:"name"`
	Description    string `json:"description"`
	Country        string `json:"country"` // legacy free text, superseded by Countries
	Region         string `json:"region"`  // legacy free text, superseded by Regions
	Website        string `json:"website"`
	Geocoordinates string `json:"geocoordinates"`
	Contact        string `json:"contact"`

	// At most one of each; enforced by full replace on update, not by schema.
	Countries []CountryTag `gorm:"many2many:producer_country_tags;" json:"countries"`
	Regions   []RegionTag  `gorm:"many2many:producer_region_tags;"  json:"regions"`
}
