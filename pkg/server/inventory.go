package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
)

type InventoryServer struct {
	repository repository.LedgerRepository
	logger     *zap.Logger
}

func NewInventoryServer(repo repository.LedgerRepository, logger *zap.Logger) *InventoryServer {
	return &InventoryServer{repository: repo, logger: logger}
}

type addToInventoryRequest struct {
	WineID          uint       `json:"wine_id"  binding:"required"`
	Quantity        int64      `json:"quantity" binding:"required"`
	EventType       string     `json:"event_type"`
	AcquisitionType string     `json:"acquisition_type"`
	Price           *float64   `json:"price"`
	BoughtAt        string     `json:"bought_at"`
	EventDate       *time.Time `json:"event_date"`
}

type consumeWineRequest struct {
	WineID        uint       `json:"wine_id"  binding:"required"`
	Quantity      int64      `json:"quantity" binding:"required"`
	ErrorQuantity int64      `json:"error_quantity"`
	EventDate     *time.Time `json:"event_date"`
}

func (i *InventoryServer) GetInventory(c *gin.Context) {
	levels, err := i.repository.GetCurrentStock(c.Request.Context())
	if err != nil {
		respondError(c, i.logger, err)

		return
	}

	c.JSON(http.StatusOK, stockFromModel(levels))
}

func (i *InventoryServer) GetHistory(c *gin.Context) {
	events, err := i.repository.GetHistory(c.Request.Context())
	if err != nil {
		respondError(c, i.logger, err)

		return
	}

	history := make([]eventResponse, 0, len(events))
	for _, event := range events {
		history = append(history, eventFromModel(event))
	}

	c.JSON(http.StatusOK, history)
}

func (i *InventoryServer) AddToInventory(c *gin.Context) {
	var request addToInventoryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, i.logger, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error()))

		return
	}

	event := model.InventoryEvent{
		WineID:          request.WineID,
		EventType:       request.EventType,
		AcquisitionType: request.AcquisitionType,
		Quantity:        request.Quantity,
		Price:           request.Price,
		BoughtAt:        request.BoughtAt,
	}

	if request.EventDate != nil {
		event.EventDate = *request.EventDate
	}

	created, err := i.repository.RecordAcquisition(c.Request.Context(), event)
	if err != nil {
		respondError(c, i.logger, err)

		return
	}

	c.JSON(http.StatusCreated, eventFromModel(created))
}

func (i *InventoryServer) ConsumeWine(c *gin.Context) {
	var request consumeWineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, i.logger, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error()))

		return
	}

	event := model.InventoryEvent{
		WineID:        request.WineID,
		Quantity:      request.Quantity,
		ErrorQuantity: request.ErrorQuantity,
	}

	if request.EventDate != nil {
		event.EventDate = *request.EventDate
	}

	created, err := i.repository.RecordConsumption(c.Request.Context(), event)
	if err != nil {
		respondError(c, i.logger, err)

		return
	}

	c.JSON(http.StatusCreated, eventFromModel(created))
}
