package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

// maxReceiptUploadBytes caps one extraction batch upload.
const maxReceiptUploadBytes = 32 << 20 // 32 MiB

// ReceiptHandler handles the receipt extraction pipeline routes.
type ReceiptHandler struct {
	extractionService portssvc.ExtractionSvcFacade
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(es portssvc.ExtractionSvcFacade) *ReceiptHandler {
	return &ReceiptHandler{extractionService: es}
}

// registerReceiptRoutes sets up the extraction pipeline routes.
func registerReceiptRoutes(rg *gin.RouterGroup, extractionService portssvc.ExtractionSvcFacade) {
	h := NewReceiptHandler(extractionService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.ExtractReceipts)
		receipts.GET("/:runID", h.GetRun)
		receipts.PUT("/:runID/lines/:lineID", h.UpdateLine)
		receipts.POST("/:runID/confirm", h.ConfirmRun)
	}
}

// ExtractReceipts godoc
// @Summary Extract receipt amounts
// @Description Runs recognition over uploaded receipt images and stages editable candidate lines.
// @Tags receipts
// @Accept multipart/form-data
// @Produce json
// @Param files formData file true "Receipt images (repeatable)"
// @Success 200 {object} dto.ExtractionRunResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts [post]
func (h *ReceiptHandler) ExtractReceipts(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxReceiptUploadBytes)
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart upload: " + err.Error()})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At least one file is required"})
		return
	}

	files := make([]portssvc.ReceiptFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to open uploaded file " + fh.Filename})
			return
		}
		defer f.Close()
		files = append(files, portssvc.ReceiptFile{Name: fh.Filename, Reader: f})
	}

	run, err := h.extractionService.ExtractReceipts(c.Request.Context(), userID, files, nil)
	if err != nil {
		respondError(c, err, "Failed to extract receipts")
		return
	}

	c.JSON(http.StatusOK, dto.ToExtractionRunResponse(run))
}

// GetRun godoc
// @Summary Get extraction run
// @Description Returns the staged candidate preview for one extraction batch.
// @Tags receipts
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} dto.ExtractionRunResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{runID} [get]
func (h *ReceiptHandler) GetRun(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	run, err := h.extractionService.GetRun(c.Request.Context(), userID, c.Param("runID"))
	if err != nil {
		respondError(c, err, "Failed to load extraction run")
		return
	}

	c.JSON(http.StatusOK, dto.ToExtractionRunResponse(run))
}

// UpdateLine godoc
// @Summary Edit candidate line
// @Description Edits a staged candidate line's type, amount, details or selection before confirmation.
// @Tags receipts
// @Accept json
// @Produce json
// @Param runID path string true "Run ID"
// @Param lineID path string true "Line ID"
// @Param update body dto.UpdateCandidateRequest true "Fields to change"
// @Success 200 {object} dto.CandidateLineResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{runID}/lines/{lineID} [put]
func (h *ReceiptHandler) UpdateLine(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	line, err := h.extractionService.UpdateLine(c.Request.Context(), userID, c.Param("runID"), c.Param("lineID"), req)
	if err != nil {
		respondError(c, err, "Failed to update candidate line")
		return
	}

	c.JSON(http.StatusOK, dto.ToCandidateLineResponse(line))
}

// ConfirmRun godoc
// @Summary Confirm extraction run
// @Description Commits every still-selected candidate line to the ledger and drops the run.
// @Tags receipts
// @Produce json
// @Param runID path string true "Run ID"
// @Success 200 {object} dto.ConfirmRunResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /receipts/{runID}/confirm [post]
func (h *ReceiptHandler) ConfirmRun(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	committed, err := h.extractionService.ConfirmRun(c.Request.Context(), userID, c.Param("runID"))
	if err != nil {
		respondError(c, err, "Failed to confirm extraction run")
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmRunResponse{
		Transactions: dto.ToListTransactionsResponse(committed).Transactions,
	})
}
