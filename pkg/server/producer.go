package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
)

type ProducerServer struct {
	repository    repository.ProducerRepository
	tagRepository repository.TagRepository
	logger        *zap.Logger
}

func NewProducerServer(producerRepo repository.ProducerRepository, tagRepo repository.TagRepository, logger *zap.Logger) *ProducerServer {
	return &ProducerServer{repository: producerRepo, tagRepository: tagRepo, logger: logger}
}

// producerRequest upserts by id. Country/region accept at most one tag;
// nil leaves the tag untouched, an explicit 0 clears it.
type producerRequest struct {
	ID             uint   `json:"id"`
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	Website        string `json:"website"`
	Geocoordinates string `json:"geocoordinates"`
	Contact        string `json:"contact"`

	CountryTagID *uint `json:"country_tag_id"`
	RegionTagID  *uint `json:"region_tag_id"`
}

func (p *ProducerServer) GetAllProducers(c *gin.Context) {
	producers, err := p.repository.GetAllProducers(c.Request.Context())
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, producersFromModel(producers))
}

func (p *ProducerServer) GetProducer(c *gin.Context) {
	producerID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	producer, err := p.repository.GetProducerByID(c.Request.Context(), producerID)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.JSON(http.StatusOK, producerFromModel(producer))
}

func (p *ProducerServer) AddProducer(c *gin.Context) {
	var request producerRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		respondError(c, p.logger, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error()))

		return
	}

	created := request.ID == 0

	producer := model.Producer{
		Model:          gorm.Model{ID: request.ID},
		Name:           request.Name,
		Description:    request.Description,
		Country:        request.Country,
		Region:         request.Region,
		Website:        request.Website,
		Geocoordinates: request.Geocoordinates,
		Contact:        request.Contact,
	}

	saved, err := p.repository.SaveProducer(c.Request.Context(), producer)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	if err = p.applyTagUpdates(c.Request.Context(), saved, &request); err != nil {
		respondError(c, p.logger, err)

		return
	}

	full, err := p.repository.GetProducerByID(c.Request.Context(), saved.ID)
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, producerFromModel(full))
}

func (p *ProducerServer) DeleteProducer(c *gin.Context) {
	producerID, err := parseIDParam(c, "id")
	if err != nil {
		respondError(c, p.logger, err)

		return
	}

	if err = p.repository.DeleteProducer(c.Request.Context(), producerID); err != nil {
		respondError(c, p.logger, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (p *ProducerServer) applyTagUpdates(ctx context.Context, producer *model.Producer, request *producerRequest) error {
	if request.CountryTagID != nil {
		var tag *model.CountryTag

		if *request.CountryTagID != 0 {
			tags, err := p.tagRepository.GetCountryTagsByIDs(ctx, []uint{*request.CountryTagID})
			if err != nil {
				return err
			}

			if len(tags) != 1 {
				return fmt.Errorf("%w: unknown country tag id %d", ErrInvalidInput, *request.CountryTagID)
			}

			tag = &tags[0]
		}

		if err := p.repository.SetProducerCountry(ctx, producer, tag); err != nil {
			return err
		}
	}

	if request.RegionTagID != nil {
		var tag *model.RegionTag

		if *request.RegionTagID != 0 {
			tags, err := p.tagRepository.GetRegionTagsByIDs(ctx, []uint{*request.RegionTagID})
			if err != nil {
				return err
			}

			if len(tags) != 1 {
				return fmt.Errorf("%w: unknown region tag id %d", ErrInvalidInput, *request.RegionTagID)
			}

			tag = &tags[0]
		}

		if err := p.repository.SetProducerRegion(ctx, producer, tag); err != nil {
			return err
		}
	}

	return nil
}
