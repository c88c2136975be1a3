package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Weinkeller/pkg/model"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidEventType  = errors.New("invalid event type")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// projection computes the current stock per wine from the full event
// history: non-drink quantities count up, drink quantities count down.
const projection = "sum(case when event_type = 'drink' then -quantity else quantity end)"

type LedgerRepository interface {
	RecordAcquisition(ctx context.Context, event model.InventoryEvent) (*model.InventoryEvent, error)
	RecordConsumption(ctx context.Context, event model.InventoryEvent) (*model.InventoryEvent, error)
	GetCurrentStock(ctx context.Context) ([]*model.StockLevel, error)
	GetCurrentStockForWine(ctx context.Context, wineID uint) (int64, error)
	GetHistory(ctx context.Context) ([]*model.InventoryEvent, error)
}

// RecordAcquisition appends a stock-increasing event. The wine must exist
// and the quantity must be positive; there is no upper bound.
func (r *Repository) RecordAcquisition(ctx context.Context, event model.InventoryEvent) (*model.InventoryEvent, error) {
	if event.Quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, event.Quantity)
	}

	if event.EventType == "" {
		event.EventType = model.EventTypeBuy
	}

	if event.EventType != model.EventTypeBuy && event.EventType != model.EventTypeAdd {
		return nil, fmt.Errorf("%w: %q is not an acquisition type", ErrInvalidEventType, event.EventType)
	}

	if event.EventDate.IsZero() {
		event.EventDate = time.Now().UTC()
	}

	if err := wineExists(r.DB.WithContext(ctx), event.WineID); err != nil {
		return nil, err
	}

	if result := r.DB.WithContext(ctx).Omit(clause.Associations).Create(&event); result.Error != nil {
		return nil, result.Error
	}

	return &event, nil
}

// RecordConsumption appends a drink event. The sufficiency check and the
// insert run in one transaction so concurrent requests cannot jointly
// overdraw a wine. ErrorQuantity is recorded as-is and not checked against
// stock.
func (r *Repository) RecordConsumption(ctx context.Context, event model.InventoryEvent) (*model.InventoryEvent, error) {
	if event.Quantity <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, event.Quantity)
	}

	event.EventType = model.EventTypeDrink

	if event.EventDate.IsZero() {
		event.EventDate = time.Now().UTC()
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := wineExists(tx, event.WineID); err != nil {
			return err
		}

		stock, err := currentStockForWine(tx, event.WineID)
		if err != nil {
			return err
		}

		if event.Quantity > stock {
			return fmt.Errorf("%w: %d requested, %d available", ErrInsufficientStock, event.Quantity, stock)
		}

		return tx.Omit(clause.Associations).Create(&event).Error
	})
	if err != nil {
		return nil, err
	}

	return &event, nil
}

// GetCurrentStock derives the stock level of every wine with a positive
// balance. Depleted and never-stocked wines are simply absent. Each row
// fans out into further reads for the wine, its producer and all tag sets.
func (r *Repository) GetCurrentStock(ctx context.Context) ([]*model.StockLevel, error) {
	var rows []struct {
		WineID    uint
		Inventory int64
	}

	result := r.DB.WithContext(ctx).Model(&model.InventoryEvent{}).
		Select("wine_id, " + projection + " as inventory").
		Group("wine_id").
		Having("inventory > 0").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	levels := make([]*model.StockLevel, 0, len(rows))

	for _, row := range rows {
		wine, err := r.GetWineByID(ctx, row.WineID)
		if err != nil {
			if errors.Is(err, ErrWineNotFound) {
				r.Logger.Warn("ledger references missing wine", zap.Uint("wine_id", row.WineID))

				continue
			}

			return nil, err
		}

		levels = append(levels, &model.StockLevel{WineID: row.WineID, Inventory: row.Inventory, Wine: *wine})
	}

	return levels, nil
}

func (r *Repository) GetCurrentStockForWine(ctx context.Context, wineID uint) (int64, error) {
	return currentStockForWine(r.DB.WithContext(ctx), wineID)
}

// GetHistory returns all events joined with their wine, newest first.
func (r *Repository) GetHistory(ctx context.Context) ([]*model.InventoryEvent, error) {
	var events []*model.InventoryEvent

	result := r.DB.WithContext(ctx).
		Joins("Wine").
		Order("event_date desc").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

func currentStockForWine(tx *gorm.DB, wineID uint) (int64, error) {
	var stock *int64

	result := tx.Model(&model.InventoryEvent{}).
		Select(projection).
		Where("wine_id = ?", wineID).
		Scan(&stock)
	if result.Error != nil {
		return 0, result.Error
	}

	if stock == nil {
		return 0, nil
	}

	return *stock, nil
}

func wineExists(tx *gorm.DB, wineID uint) error {
	var count int64

	if result := tx.Model(&model.Wine{}).Where("id = ?", wineID).Count(&count); result.Error != nil {
		return result.Error
	}

	if count == 0 {
		return fmt.Errorf("%w: id %d", ErrWineNotFound, wineID)
	}

	return nil
}
