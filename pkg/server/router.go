package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Weinkeller/pkg/repository"
	"droscher.com/Weinkeller/pkg/transfer"
)

// NewRouter wires every API route to its handler. The repository is passed
// in explicitly; there is no shared global state.
func NewRouter(repo *repository.Repository, logger *zap.Logger, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(RequestLogger(logger), gin.Recovery())

	api := router.Group("/api")

	api.GET("/health", Health)

	inventory := NewInventoryServer(repo, logger)
	api.GET("/get_inventory", inventory.GetInventory)
	api.GET("/get_history", inventory.GetHistory)
	api.POST("/add_to_inventory", inventory.AddToInventory)
	api.POST("/consume_wine", inventory.ConsumeWine)

	wines := NewWineServer(repo, repo, logger)
	api.GET("/get_all_wines", wines.GetAllWines)
	api.GET("/get_wine/:id", wines.GetWine)
	api.POST("/add_wine", wines.AddWine)
	api.DELETE("/delete_wine/:id", wines.DeleteWine)

	producers := NewProducerServer(repo, repo, logger)
	api.GET("/get_all_producers", producers.GetAllProducers)
	api.GET("/get_producer/:id", producers.GetProducer)
	api.POST("/add_producer", producers.AddProducer)
	api.DELETE("/delete_producer/:id", producers.DeleteProducer)

	tags := NewTagServer(repo, logger)
	api.GET("/get_tags/:taxonomy", tags.GetTags)
	api.POST("/add_tag/:taxonomy", tags.AddTag)

	assessments := NewAssessmentServer(repo, logger)
	api.GET("/get_assessments/:wine_id", assessments.GetAssessmentsForWine)
	api.POST("/add_assessment", assessments.AddAssessment)
	api.DELETE("/delete_assessment/:id", assessments.DeleteAssessment)

	transfers := NewTransferServer(transfer.NewExporter(repo, logger), transfer.NewImporter(repo, logger), logger)
	api.GET("/export/all/json", transfers.Export)
	api.POST("/import/json", transfers.Import)

	return router
}

// RequestLogger tags each request with an id and logs it on completion.
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
