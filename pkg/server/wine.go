package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
)

type WineServer struct {
	repository    repository.WineRepository
	tagRepository repository.TagRepository
	logger        *zap.Logger
}

func NewWineServer(wineRepo repository.WineRepository, tagRepo repository.TagRepository, logger *zap.Logger) *WineServer {
	return &WineServer{repository: wineRepo, tagRepository: tagRepo, logger: logger}
}

// wineRequest upserts by id. The tag id lists are pointers on purpose: a
// nil list leaves the association untouched, an empty list clears it.
type wineRequest struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name" binding:"required"`
	ProducerID   *uint   `json:"producer_id"`
	Year         *uint64 `json:"year"`
	Type         string  `json:"type"`
	Description  string  `json:"description"`
	Grape        string  `json:"grape"`
	BottleTop    string  `json:"bottle_top"`
	BottleFormat string  `json:"bottle_format"`
	Maturity     string  `json:"maturity"`
	Wishlist     bool    `json:"wishlist"`
	Favorite     bool    `json:"favorite"`

	GrapeTagIDs       *[]uint `json:"grape_tag_ids"`
	WineTypeTagIDs    *[]uint `json:"wine_type_tag_ids"`
	OccasionTagIDs    *[]uint `json:"occasion_tag_ids"`
	FoodPairingTagIDs *[]uint `json:"food_pairing_tag_ids"`
}

func (w *WineServer) GetAllWines(c *gin.Context) {
	wines, err := w.repository.GetAllWines(c.Request.Context())
	if err != nil {
		respondError(c, w.logger, err)

		return
	}

	c.JSON(http.StatusOK, winesFromModel(wines))
}

func (w *WineServer) GetWine(c *gin.Context) {
	wineID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, w.logger, err)

		return
	}

	wine, err := w.repository.GetWineByID(c.Request.Context(), wineID)
	if err != nil {
		respondError(c, w.logger, err)

		return
	}

	c.JSON(http.StatusOK, wineFromModel(wine))
}

func (w *WineServer) AddWine(c *gin.Context) {
	var request wineRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, w.logger, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error()))

		return
	}

	if request.BottleFormat != "" && !model.IsValidBottleFormat(request.BottleFormat) {
		respondError(c, w.logger, fmt.Errorf("%w: unknown bottle format %q", ErrInvalidInput, request.BottleFormat))

		return
	}

	created := request.ID == 0

	wine := model.Wine{
		Model:        gorm.Model{ID: request.ID},
		Name:         request.Name,
		ProducerID:   request.ProducerID,
		Year:         request.Year,
		Type:         request.Type,
		Description:  request.Description,
		Grape:        request.Grape,
		BottleTop:    request.BottleTop,
		BottleFormat: request.BottleFormat,
		Maturity:     request.Maturity,
		Wishlist:     request.Wishlist,
		Favorite:     request.Favorite,
	}

	saved, err := w.repository.SaveWine(c.Request.Context(), wine)
	if err != nil {
		respondError(c, w.logger, err)

		return
	}

	if err = w.applyTagUpdates(c.Request.Context(), saved, &request); err != nil {
		respondError(c, w.logger, err)

		return
	}

	full, err := w.repository.GetWineByID(c.Request.Context(), saved.ID)
	if err != nil {
		respondError(c, w.logger, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, wineFromModel(full))
}

func (w *WineServer) DeleteWine(c *gin.Context) {
	wineID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, w.logger, err)

		return
	}

	if err = w.repository.DeleteWine(c.Request.Context(), wineID); err != nil {
		respondError(c, w.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (w *WineServer) applyTagUpdates(ctx context.Context, wine *model.Wine, request *wineRequest) error {
	if request.GrapeTagIDs != nil {
		tags, err := w.resolveGrapeTags(ctx, *request.GrapeTagIDs)
		if err != nil {
			return err
		}

		if err = w.repository.ReplaceWineTags(ctx, wine, "Grapes", tags, len(tags)); err != nil {
			return err
		}
	}

	if request.WineTypeTagIDs != nil {
		tags, err := w.resolveWineTypeTags(ctx, *request.WineTypeTagIDs)
		if err != nil {
			return err
		}

		if err = w.repository.ReplaceWineTags(ctx, wine, "WineTypes", tags, len(tags)); err != nil {
			return err
		}
	}

	if request.OccasionTagIDs != nil {
		tags, err := w.resolveOccasionTags(ctx, *request.OccasionTagIDs)
		if err != nil {
			return err
		}

		if err = w.repository.ReplaceWineTags(ctx, wine, "Occasions", tags, len(tags)); err != nil {
			return err
		}
	}

	if request.FoodPairingTagIDs != nil {
		tags, err := w.resolveFoodPairingTags(ctx, *request.FoodPairingTagIDs)
		if err != nil {
			return err
		}

		if err = w.repository.ReplaceWineTags(ctx, wine, "FoodPairings", tags, len(tags)); err != nil {
			return err
		}
	}

	return nil
}

func (w *WineServer) resolveGrapeTags(ctx context.Context, ids []uint) ([]model.GrapeTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tags, err := w.tagRepository.GetGrapeTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: unknown grape tag id", ErrInvalidInput)
	}

	return tags, nil
}

func (w *WineServer) resolveWineTypeTags(ctx context.Context, ids []uint) ([]model.WineTypeTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tags, err := w.tagRepository.GetWineTypeTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: unknown wine type tag id", ErrInvalidInput)
	}

	return tags, nil
}

func (w *WineServer) resolveOccasionTags(ctx context.Context, ids []uint) ([]model.OccasionTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tags, err := w.tagRepository.GetOccasionTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: unknown occasion tag id", ErrInvalidInput)
	}

	return tags, nil
}

func (w *WineServer) resolveFoodPairingTags(ctx context.Context, ids []uint) ([]model.FoodPairingTag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	tags, err := w.tagRepository.GetFoodPairingTagsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	if len(tags) != len(ids) {
		return nil, fmt.Errorf("%w: unknown food pairing tag id", ErrInvalidInput)
	}

	return tags, nil
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", ErrInvalidInput, name)
	}

	return uint(value), nil
}
