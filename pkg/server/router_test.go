package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"droscher.com/Weinkeller/pkg/model"
	"droscher.com/Weinkeller/pkg/repository"
	"droscher.com/Weinkeller/pkg/server"
)

// RouterTestSuite drives the full HTTP surface against an in-memory
// database, bad input included.
type RouterTestSuite struct {
	suite.Suite
	repository repository.Repository
	router     *gin.Engine
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}

func (suite *RouterTestSuite) SetupTest() {
	logger := zaptest.NewLogger(suite.T())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", suite.T().Name())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.repository = repository.Repository{DB: db, Logger: logger}
	suite.Require().NoError(suite.repository.Migrate(context.Background()))

	suite.router = server.NewRouter(&suite.repository, logger, false)
}

func (suite *RouterTestSuite) TearDownTest() {
	suite.repository.Close()
}

func (suite *RouterTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	return recorder
}

func (suite *RouterTestSuite) decode(recorder *httptest.ResponseRecorder, target any) {
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), target))
}

func (suite *RouterTestSuite) createWine(name string) uint {
	wine, err := suite.repository.SaveWine(context.Background(), model.Wine{Name: name})
	suite.Require().NoError(err)

	return wine.ID
}

func (suite *RouterTestSuite) TestHealth_ReturnsOK() {
	recorder := suite.request(http.MethodGet, "/api/health", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.NotEmpty(recorder.Header().Get("X-Request-ID"))

	var body map[string]string
	suite.decode(recorder, &body)
	suite.Equal("ok", body["status"])
	suite.NotEmpty(body["timestamp"])
}

func (suite *RouterTestSuite) TestAddWine_CreatesWithTags() {
	grape := suite.request(http.MethodPost, "/api/add_tag/grape", gin.H{"name": "Spätburgunder"})
	suite.Require().Equal(http.StatusCreated, grape.Code)

	var grapeTag struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	suite.decode(grape, &grapeTag)

	recorder := suite.request(http.MethodPost, "/api/add_wine", gin.H{
		"name":          "Assmannshäuser",
		"year":          2020,
		"bottle_format": "magnum",
		"grape_tag_ids": []uint{grapeTag.ID},
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	var wine struct {
		ID     uint `json:"id"`
		Grapes []struct {
			Name string `json:"name"`
		} `json:"grapes"`
	}
	suite.decode(recorder, &wine)
	suite.NotZero(wine.ID)
	suite.Require().Len(wine.Grapes, 1)
	suite.Equal("Spätburgunder", wine.Grapes[0].Name)

	// same id again is an update, not a create
	update := suite.request(http.MethodPost, "/api/add_wine", gin.H{"id": wine.ID, "name": "Assmannshäuser Spätlese"})
	suite.Equal(http.StatusOK, update.Code)
}

func (suite *RouterTestSuite) TestAddWine_RejectsUnknownBottleFormat() {
	recorder := suite.request(http.MethodPost, "/api/add_wine", gin.H{"name": "Odd Bottle", "bottle_format": "barrel"})

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "bottle format")
}

func (suite *RouterTestSuite) TestAddWine_RejectsUnknownTagID() {
	recorder := suite.request(http.MethodPost, "/api/add_wine", gin.H{"name": "Tagless", "grape_tag_ids": []uint{31337}})

	suite.Equal(http.StatusBadRequest, recorder.Code)
	suite.Contains(recorder.Body.String(), "unknown grape tag id")
}

func (suite *RouterTestSuite) TestGetWine_UnknownIDReturns404() {
	recorder := suite.request(http.MethodGet, "/api/get_wine/9999", nil)

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RouterTestSuite) TestGetWine_MalformedIDReturns400() {
	recorder := suite.request(http.MethodGet, "/api/get_wine/bottle", nil)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RouterTestSuite) TestDeleteWine_ReturnsNoContent() {
	wineID := suite.createWine("Doomed Dornfelder")

	recorder := suite.request(http.MethodDelete, fmt.Sprintf("/api/delete_wine/%d", wineID), nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	again := suite.request(http.MethodDelete, fmt.Sprintf("/api/delete_wine/%d", wineID), nil)
	suite.Equal(http.StatusNotFound, again.Code)
}

func (suite *RouterTestSuite) TestInventoryFlow_AddConsumeProject() {
	wineID := suite.createWine("Flow Franken")

	add := suite.request(http.MethodPost, "/api/add_to_inventory", gin.H{"wine_id": wineID, "quantity": 6, "price": 14.90})
	suite.Require().Equal(http.StatusCreated, add.Code)

	consume := suite.request(http.MethodPost, "/api/consume_wine", gin.H{"wine_id": wineID, "quantity": 2})
	suite.Require().Equal(http.StatusCreated, consume.Code)

	inventory := suite.request(http.MethodGet, "/api/get_inventory", nil)
	suite.Require().Equal(http.StatusOK, inventory.Code)

	var levels []struct {
		WineID    uint   `json:"wine_id"`
		Inventory int64  `json:"inventory"`
		Name      string `json:"name"`
	}
	suite.decode(inventory, &levels)
	suite.Require().Len(levels, 1)
	suite.Equal(wineID, levels[0].WineID)
	suite.Equal(int64(4), levels[0].Inventory)
	suite.Equal("Flow Franken", levels[0].Name)

	history := suite.request(http.MethodGet, "/api/get_history", nil)
	suite.Require().Equal(http.StatusOK, history.Code)

	var events []struct {
		EventType string `json:"event_type"`
	}
	suite.decode(history, &events)
	suite.Len(events, 2)
}

func (suite *RouterTestSuite) TestConsumeWine_InsufficientStockReturns409() {
	wineID := suite.createWine("Thin Trollinger")

	add := suite.request(http.MethodPost, "/api/add_to_inventory", gin.H{"wine_id": wineID, "quantity": 1})
	suite.Require().Equal(http.StatusCreated, add.Code)

	recorder := suite.request(http.MethodPost, "/api/consume_wine", gin.H{"wine_id": wineID, "quantity": 3})
	suite.Equal(http.StatusConflict, recorder.Code)
	suite.Contains(recorder.Body.String(), "insufficient stock")
}

func (suite *RouterTestSuite) TestAddToInventory_UnknownWineReturns404() {
	recorder := suite.request(http.MethodPost, "/api/add_to_inventory", gin.H{"wine_id": 4242, "quantity": 1})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RouterTestSuite) TestAddToInventory_MissingQuantityReturns400() {
	wineID := suite.createWine("Quantityless Kerner")

	recorder := suite.request(http.MethodPost, "/api/add_to_inventory", gin.H{"wine_id": wineID})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RouterTestSuite) TestTags_UnknownTaxonomyReturns400() {
	get := suite.request(http.MethodGet, "/api/get_tags/vintage", nil)
	suite.Equal(http.StatusBadRequest, get.Code)

	add := suite.request(http.MethodPost, "/api/add_tag/vintage", gin.H{"name": "1999"})
	suite.Equal(http.StatusBadRequest, add.Code)
}

func (suite *RouterTestSuite) TestTags_AddIsIdempotent() {
	first := suite.request(http.MethodPost, "/api/add_tag/country", gin.H{"name": "Austria"})
	suite.Require().Equal(http.StatusCreated, first.Code)

	second := suite.request(http.MethodPost, "/api/add_tag/country", gin.H{"name": "Austria"})
	suite.Require().Equal(http.StatusCreated, second.Code)

	list := suite.request(http.MethodGet, "/api/get_tags/country", nil)
	suite.Require().Equal(http.StatusOK, list.Code)

	var tags []struct {
		Name string `json:"name"`
	}
	suite.decode(list, &tags)
	suite.Require().Len(tags, 1)
	suite.Equal("Austria", tags[0].Name)
}

func (suite *RouterTestSuite) TestProducer_CountryTagLifecycle() {
	tag := suite.request(http.MethodPost, "/api/add_tag/country", gin.H{"name": "Spain"})
	suite.Require().Equal(http.StatusCreated, tag.Code)

	var countryTag struct {
		ID uint `json:"id"`
	}
	suite.decode(tag, &countryTag)

	created := suite.request(http.MethodPost, "/api/add_producer", gin.H{"name": "Rioja Prueba", "country_tag_id": countryTag.ID})
	suite.Require().Equal(http.StatusCreated, created.Code)

	var producer struct {
		ID        uint `json:"id"`
		Countries []struct {
			Name string `json:"name"`
		} `json:"countries"`
	}
	suite.decode(created, &producer)
	suite.Require().Len(producer.Countries, 1)
	suite.Equal("Spain", producer.Countries[0].Name)

	// explicit 0 clears the tag
	cleared := suite.request(http.MethodPost, "/api/add_producer", gin.H{"id": producer.ID, "name": "Rioja Prueba", "country_tag_id": 0})
	suite.Require().Equal(http.StatusOK, cleared.Code)

	var afterClear struct {
		Countries []struct {
			Name string `json:"name"`
		} `json:"countries"`
	}
	suite.decode(cleared, &afterClear)
	suite.Empty(afterClear.Countries)
}

func (suite *RouterTestSuite) TestAssessments_AddAndList() {
	wineID := suite.createWine("Noted Nebbiolo")

	created := suite.request(http.MethodPost, "/api/add_assessment", gin.H{
		"wine_id":       wineID,
		"quality_level": "very good",
		"nose_aromas":   "cherry, tar, roses",
	})
	suite.Require().Equal(http.StatusCreated, created.Code)

	list := suite.request(http.MethodGet, fmt.Sprintf("/api/get_assessments/%d", wineID), nil)
	suite.Require().Equal(http.StatusOK, list.Code)

	var assessments []struct {
		QualityLevel string `json:"quality_level"`
	}
	suite.decode(list, &assessments)
	suite.Require().Len(assessments, 1)
	suite.Equal("very good", assessments[0].QualityLevel)
}

func (suite *RouterTestSuite) TestAssessments_UnknownWineReturns404() {
	recorder := suite.request(http.MethodPost, "/api/add_assessment", gin.H{"wine_id": 8888})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RouterTestSuite) TestExportImport_RoundTripOverHTTP() {
	wineID := suite.createWine("Transit Tempranillo")

	add := suite.request(http.MethodPost, "/api/add_to_inventory", gin.H{"wine_id": wineID, "quantity": 3})
	suite.Require().Equal(http.StatusCreated, add.Code)

	export := suite.request(http.MethodGet, "/api/export/all/json", nil)
	suite.Require().Equal(http.StatusOK, export.Code)
	suite.Contains(export.Header().Get("Content-Disposition"), "attachment")

	var document map[string]any
	suite.decode(export, &document)
	suite.Contains(document, "wines")
	suite.Contains(document, "inventory")

	imported := suite.request(http.MethodPost, "/api/import/json", document)
	suite.Require().Equal(http.StatusOK, imported.Code)

	var result struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	suite.decode(imported, &result)
	suite.True(result.Success)
	suite.Empty(result.Errors)
}

func (suite *RouterTestSuite) TestImport_MalformedBodyReturns400() {
	request := httptest.NewRequest(http.MethodPost, "/api/import/json", bytes.NewReader([]byte("not json")))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, request)

	suite.Equal(http.StatusBadRequest, recorder.Code)
}
