package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

// maxCSVUploadBytes caps one CSV import upload.
const maxCSVUploadBytes = 4 << 20 // 4 MiB

// ImportHandler handles CSV ledger imports.
type ImportHandler struct {
	importService portssvc.CSVImportSvcFacade
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(is portssvc.CSVImportSvcFacade) *ImportHandler {
	return &ImportHandler{importService: is}
}

// registerImportRoutes sets up the import routes.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.CSVImportSvcFacade) {
	h := NewImportHandler(importService)

	rg.POST("/imports/csv", h.ImportCSV)
}

// ImportCSV godoc
// @Summary Import CSV statement
// @Description Parses an uploaded CSV file and commits each importable row as a VAT transaction.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 200 {object} dto.CSVImportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /imports/csv [post]
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxCSVUploadBytes)
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A CSV file upload named 'file' is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open uploaded file"})
		return
	}
	defer f.Close()

	result, err := h.importService.ImportCSV(c.Request.Context(), userID, f)
	if err != nil {
		respondError(c, err, "Failed to import CSV")
		return
	}

	c.JSON(http.StatusOK, dto.ToCSVImportResponse(result.Imported, result.Skipped))
}
