package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

type TaxHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockLedgerService *MockLedgerService
	userID            string
}

func (suite *TaxHandlerTestSuite) SetupTest() {
	suite.mockLedgerService = new(MockLedgerService)
	suite.userID = uuid.NewString()
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Ledger: suite.mockLedgerService,
	})
}

func (suite *TaxHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *TaxHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	req, _ := http.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Test Cases ---

func (suite *TaxHandlerTestSuite) TestListTransactions_Success() {
	expected := []domain.Transaction{
		{TransactionID: uuid.NewString(), Date: "2026-03-15", Type: domain.VAT, Amount: decimal.RequireFromString("375.04"), Details: "Office supplies"},
	}
	suite.mockLedgerService.On("ListTransactions", mock.Anything, suite.userID).Return(expected, nil).Once()

	w := suite.serve(suite.authedRequest(http.MethodGet, "/api/tax", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal(expected[0].TransactionID, resp.Transactions[0].TransactionID)
	suite.Equal("VAT", resp.Transactions[0].Type)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestListTransactions_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/tax", nil)

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *TaxHandlerTestSuite) TestCreateTransaction_Success() {
	body, _ := json.Marshal(dto.CreateTransactionRequest{
		Date:    "2026-03-15",
		Type:    "CONSUMPTION",
		Amount:  decimal.NewFromInt(12000),
		Details: "Fuel",
	})
	created := &domain.Transaction{TransactionID: uuid.NewString(), Date: "2026-03-15", Type: domain.Consumption, Amount: decimal.NewFromInt(12000), Details: "Fuel"}
	suite.mockLedgerService.On("CreateTransaction", mock.Anything, suite.userID, mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
		return r.Type == "CONSUMPTION" && r.Amount.Equal(decimal.NewFromInt(12000))
	})).Return(created, nil).Once()

	w := suite.serve(suite.authedRequest(http.MethodPost, "/api/tax", body))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TransactionID, resp.TransactionID)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func (suite *TaxHandlerTestSuite) TestCreateTransaction_RejectsBadType() {
	body := []byte(`{"type":"INCOME","amount":100}`)

	w := suite.serve(suite.authedRequest(http.MethodPost, "/api/tax", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerService.AssertNotCalled(suite.T(), "CreateTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaxHandlerTestSuite) TestCreateTransaction_RejectsBadDate() {
	body := []byte(`{"type":"VAT","amount":100,"date":"15/03/2026"}`)

	w := suite.serve(suite.authedRequest(http.MethodPost, "/api/tax", body))

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TaxHandlerTestSuite) TestGetSummary_Success() {
	summary := domain.LedgerSummary{
		PAYE:        decimal.NewFromInt(9000),
		VAT:         decimal.RequireFromString("375.04"),
		Consumption: decimal.NewFromInt(12000),
		Total:       decimal.RequireFromString("21375.04"),
		Count:       4,
	}
	suite.mockLedgerService.On("GetSummary", mock.Anything, suite.userID).Return(summary, nil).Once()

	w := suite.serve(suite.authedRequest(http.MethodGet, "/api/tax/summary", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(4, resp.Count)
	suite.True(resp.Total.Equal(decimal.RequireFromString("21375.04")))
}

func (suite *TaxHandlerTestSuite) TestExportCSV_SetsDownloadHeaders() {
	csv := "Date,Type,Amount (₦),Details\n2026-03-15,VAT,375.04,\"Office supplies\"\n"
	suite.mockLedgerService.On("ExportCSV", mock.Anything, suite.userID).Return(csv, nil).Once()

	w := suite.serve(suite.authedRequest(http.MethodGet, "/api/tax/export", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(csv, w.Body.String())
	suite.Contains(w.Header().Get("Content-Type"), "text/csv")
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment")
}

func (suite *TaxHandlerTestSuite) TestEstimatePAYE_MillionNaira() {
	body := []byte(`{"grossIncome":1000000}`)

	w := suite.serve(suite.authedRequest(http.MethodPost, "/api/paye/estimate", body))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PAYEEstimateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.AnnualTax.Equal(decimal.NewFromInt(54000)), "annual tax on 1M gross")
	suite.True(resp.MonthlyTax.Equal(decimal.NewFromInt(4500)))
}

func (suite *TaxHandlerTestSuite) TestEstimateVAT_FlatRate() {
	body := []byte(`{"baseAmount":5000.50}`)

	w := suite.serve(suite.authedRequest(http.MethodPost, "/api/vat/estimate", body))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VATEstimateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.VATAmount.Equal(decimal.RequireFromString("375.04")))
}

func TestTaxHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TaxHandlerTestSuite))
}
