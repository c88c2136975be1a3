package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
)

// Taxonomy names accepted in the :taxonomy path segment.
const (
	TaxonomyGrape       = "grape"
	TaxonomyWineType    = "wine_type"
	TaxonomyCountry     = "country"
	TaxonomyRegion      = "region"
	TaxonomyOccasion    = "occasion"
	TaxonomyFoodPairing = "food_pairing"
)

type TagServer struct {
	repository repository.TagRepository
	logger     *zap.Logger
}

func NewTagServer(repo repository.TagRepository, logger *zap.Logger) *TagServer {
	return &TagServer{repository: repo, logger: logger}
}

type addTagRequest struct {
	Name string `json:"name" binding:"required"`
}

func (t *TagServer) GetTags(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		tags []tagResponse
		err  error
	)

	switch taxonomy := c.Param("taxonomy"); taxonomy {
	case TaxonomyGrape:
		var found []*model.GrapeTag
		if found, err = t.repository.GetGrapeTags(ctx); err == nil {
			tags = tagResponses(len(found), func(i int) (uint, string) { return found[i].ID, found[i].Name })
		}
	case TaxonomyWineType:
		var found []*model.WineTypeTag
		if found, err = t.repository.GetWineTypeTags(ctx); err == nil {
			tags = tagResponses(len(found), func(i int) (uint, string) { return found[i].ID, found[i].Name })
		}
	case TaxonomyCountry:
		var found []*model.CountryTag
		if found, err = t.repository.GetCountryTags(ctx); err == nil {
			tags = tagResponses(len(found), func(i int) (uint, string) { return found[i].ID, found[i].Name })
		}
	case TaxonomyRegion:
		var found []*model.RegionTag
		if found, err = t.repository.GetRegionTags(ctx); err == nil {
			tags = tagResponses(len(found), func(i int) (uint, string) { return found[i].ID, found[i].Name })
		}
	case TaxonomyOccasion:
		var found []*model.OccasionTag
		if found, err = t.repository.GetOccasionTags(ctx); err == nil {
			tags = tagResponses(len(found), func(i int) (uint, string) { return found[i].ID, found[i].Name })
		}
	case TaxonomyFoodPairing:
		var found []*model.FoodPairingTag
		if found, err = t.repository.GetFoodPairingTags(ctx); err == nil {
			tags = tagResponses(len(found), func(i int) (uint, string) { return found[i].ID, found[i].Name })
		}
	default:
		err = fmt.Errorf("%w: unknown taxonomy %q", ErrInvalidInput, taxonomy)
	}

	if err != nil {
		respondError(c, t.logger, err)

		return
	}

	c.JSON(http.StatusOK, tags)
}

func (t *TagServer) AddTag(c *gin.Context) {
	var request addTagRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, t.logger, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error()))

		return
	}

	ctx := c.Request.Context()

	var (
		response tagResponse
		err      error
	)

	switch taxonomy := c.Param("taxonomy"); taxonomy {
	case TaxonomyGrape:
		if tag, addErr := t.repository.AddGrapeTag(ctx, request.Name); addErr != nil {
			err = addErr
		} else {
			response = tagResponse{ID: tag.ID, Name: tag.Name}
		}
	case TaxonomyWineType:
		if tag, addErr := t.repository.AddWineTypeTag(ctx, request.Name); addErr != nil {
			err = addErr
		} else {
			response = tagResponse{ID: tag.ID, Name: tag.Name}
		}
	case TaxonomyCountry:
		if tag, addErr := t.repository.AddCountryTag(ctx, request.Name); addErr != nil {
			err = addErr
		} else {
			response = tagResponse{ID: tag.ID, Name: tag.Name}
		}
	case TaxonomyRegion:
		if tag, addErr := t.repository.AddRegionTag(ctx, request.Name); addErr != nil {
			err = addErr
		} else {
			response = tagResponse{ID: tag.ID, Name: tag.Name}
		}
	case TaxonomyOccasion:
		if tag, addErr := t.repository.AddOccasionTag(ctx, request.Name); addErr != nil {
			err = addErr
		} else {
			response = tagResponse{ID: tag.ID, Name: tag.Name}
		}
	case TaxonomyFoodPairing:
		if tag, addErr := t.repository.AddFoodPairingTag(ctx, request.Name); addErr != nil {
			err = addErr
		} else {
			response = tagResponse{ID: tag.ID, Name: tag.Name}
		}
	default:
		err = fmt.Errorf("%w: unknown taxonomy %q", ErrInvalidInput, taxonomy)
	}

	if err != nil {
		respondError(c, t.logger, err)

		return
	}

	c.JSON(http.StatusCreated, response)
}

func tagResponses(count int, at func(int) (uint, string)) []tagResponse {
	out := make([]tagResponse, 0, count)

	for index := 0; index < count; index++ {
		id, name := at(index)
		out = append(out, tagResponse{ID: id, Name: name})
	}

	return out
}
