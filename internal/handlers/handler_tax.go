package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/core/tax"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

// TaxHandler handles ledger transaction requests.
type TaxHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(ls portssvc.LedgerSvcFacade) *TaxHandler {
	return &TaxHandler{ledgerService: ls}
}

// registerTaxRoutes sets up the ledger routes.
func registerTaxRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := NewTaxHandler(ledgerService)

	taxGroup := rg.Group("/tax")
	{
		taxGroup.GET("", h.ListTransactions)
		taxGroup.POST("", h.CreateTransaction)
		taxGroup.GET("/summary", h.GetSummary)
		taxGroup.GET("/export", h.ExportCSV)
	}
}

// ListTransactions godoc
// @Summary List transactions
// @Description Returns the caller's full transaction ledger in insertion order.
// @Tags tax
// @Produce json
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax [get]
func (h *TaxHandler) ListTransactions(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	txns, err := h.ledgerService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns))
}

// CreateTransaction godoc
// @Summary Create transaction
// @Description Appends a new transaction to the caller's ledger.
// @Tags tax
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax [post]
func (h *TaxHandler) CreateTransaction(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	txn, err := h.ledgerService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// GetSummary godoc
// @Summary Ledger summary
// @Description Aggregates the caller's transaction amounts by type.
// @Tags tax
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/summary [get]
func (h *TaxHandler) GetSummary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	summary, err := h.ledgerService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to summarize ledger")
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// ExportCSV godoc
// @Summary Export ledger CSV
// @Description Renders the caller's full ledger as a downloadable CSV file.
// @Tags tax
// @Produce text/csv
// @Success 200 {string} string
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /tax/export [get]
func (h *TaxHandler) ExportCSV(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	csv, err := h.ledgerService.ExportCSV(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to export ledger")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="taxtrack-ledger.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// CalculatorHandler handles stateless tax estimations.
type CalculatorHandler struct{}

// registerCalculatorRoutes sets up the estimation routes.
func registerCalculatorRoutes(rg *gin.RouterGroup) {
	h := &CalculatorHandler{}

	rg.POST("/paye/estimate", h.EstimatePAYE)
	rg.POST("/vat/estimate", h.EstimateVAT)
}

// EstimatePAYE godoc
// @Summary Estimate PAYE
// @Description Runs the progressive PAYE assessment over an annual gross income and optional reliefs.
// @Tags calculators
// @Accept json
// @Produce json
// @Param estimate body dto.PAYEEstimateRequest true "Annual gross income and reliefs"
// @Success 200 {object} dto.PAYEEstimateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /paye/estimate [post]
func (h *CalculatorHandler) EstimatePAYE(c *gin.Context) {
	var req dto.PAYEEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	assessment := tax.CalculatePAYE(req.GrossIncome, tax.Reliefs{
		Pension: req.Pension,
		NHF:     req.NHF,
		Other:   req.Other,
	})
	c.JSON(http.StatusOK, dto.ToPAYEEstimateResponse(assessment))
}

// EstimateVAT godoc
// @Summary Estimate VAT
// @Description Computes the VAT owed on a base amount at the flat rate.
// @Tags calculators
// @Accept json
// @Produce json
// @Param estimate body dto.VATEstimateRequest true "Base amount"
// @Success 200 {object} dto.VATEstimateResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /vat/estimate [post]
func (h *CalculatorHandler) EstimateVAT(c *gin.Context) {
	var req dto.VATEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.VATEstimateResponse{
		BaseAmount: req.BaseAmount,
		VATAmount:  tax.CalculateVAT(req.BaseAmount),
	})
}
