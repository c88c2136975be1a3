package model

import (
	"time"

	"gorm.io/gorm"
)

// Ledger event types. Only a drink event decrements stock; the sign of a
// row's contribution is derived from the type at read time, never stored.
const (
	EventTypeBuy   = "buy"
	EventTypeAdd   = "add"
	EventTypeDrink = "drink"
)

// InventoryEvent is one row in the append-only inventory ledger. Events are
// never updated or deleted through the API; consumption mistakes are
// recorded as ErrorQuantity on a new event instead of amending history.
type InventoryEvent struct {
	gorm.Model
	WineID          uint      `gorm:"index;not null" json:"wine_id"`
	EventType       string    `gorm:"not null"       json:"event_type"`
	AcquisitionType string    `json:"acquisition_type"`
	Quantity        int64     `gorm:"not null"  json:"quantity"`
	Price           *float64  `json:"price"`
	BoughtAt        string    `json:"bought_at"`
	EventDate       time.Time `gorm:"index"     json:"event_date"`
	ErrorQuantity   int64     `gorm:"default:0" json:"error_quantity"` // bottles lost or spoiled

	Wine Wine `gorm:"foreignKey:WineID" json:"-"`
}

// StockLevel is the derived current stock for one wine. It has no table;
// it is recomputed from the ledger on every read.
type StockLevel struct {
	WineID    uint
	Inventory int64
	Wine      Wine
}
