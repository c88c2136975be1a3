package model

import "gorm.io/gorm"

// Six independent tag taxonomies. Each gets its own table and join table;
// names are unique within a taxonomy, never across them.

type GrapeTag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`
}

type WineTypeTag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`
}

type CountryTag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`
}

type RegionTag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`
}

type OccasionTag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`
}

type FoodPairingTag struct {
	gorm.Model
	Name string `gorm:"uniqueIndex" json:"name"`
}
