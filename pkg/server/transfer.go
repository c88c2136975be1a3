package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/Weinkeller/pkg/transfer"
)

type TransferServer struct {
	exporter *transfer.Exporter
	importer *transfer.Importer
	logger   *zap.Logger
}

func NewTransferServer(exporter *transfer.Exporter, importer *transfer.Importer, logger *zap.Logger) *TransferServer {
	return &TransferServer{exporter: exporter, importer: importer, logger: logger}
}

// Export streams the whole collection as one JSON document.
func (s *TransferServer) Export(c *gin.Context) {
	document, err := s.exporter.Export(c.Request.Context())
	if err != nil {
		respondError(c, s.logger, err)

		return
	}

	c.Header("Content-Disposition", `attachment; filename="weinkeller-export.json"`)
	c.JSON(http.StatusOK, document)
}

// Import replays an uploaded document. Record-level failures are reported
// in the result body, not as an HTTP error.
func (s *TransferServer) Import(c *gin.Context) {
	var document transfer.Document
	if err := c.ShouldBindJSON(&document); err != nil {
		respondError(c, s.logger, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error()))

		return
	}

	result := s.importer.Import(c.Request.Context(), &document)

	c.JSON(http.StatusOK, result)
}
