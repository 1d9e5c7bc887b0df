package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/dto"
)

type ReceiptHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockExtraction *MockExtractionService
	mockImport     *MockCSVImportService
	userID         string
}

func (suite *ReceiptHandlerTestSuite) SetupTest() {
	suite.mockExtraction = new(MockExtractionService)
	suite.mockImport = new(MockCSVImportService)
	suite.userID = uuid.NewString()
	suite.router = newTestRouter(&portssvc.ServiceContainer{
		Extraction: suite.mockExtraction,
		CSVImport:  suite.mockImport,
	})
}

func (suite *ReceiptHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReceiptHandlerTestSuite) multipartRequest(url, field string, fileNames ...string) *http.Request {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, name := range fileNames {
		part, err := writer.CreateFormFile(field, name)
		suite.Require().NoError(err)
		_, err = part.Write([]byte("fake-file-bytes"))
		suite.Require().NoError(err)
	}
	suite.Require().NoError(writer.Close())

	req, _ := http.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))
	return req
}

func sampleRun(ownerID string) *domain.ExtractionRun {
	lineID := uuid.NewString()
	return &domain.ExtractionRun{
		RunID:   uuid.NewString(),
		OwnerID: ownerID,
		Files: []domain.FileResult{
			{FileName: "receipt.jpg", Candidates: []string{lineID}},
		},
		Lines: []domain.CandidateLine{
			{LineID: lineID, Type: domain.VAT, Amount: decimal.NewFromInt(1500), Details: "Total VAT", Selected: true, Source: "receipt.jpg"},
		},
		CreatedAt: time.Now(),
	}
}

// --- Test Cases ---

func (suite *ReceiptHandlerTestSuite) TestExtractReceipts_Success() {
	run := sampleRun(suite.userID)
	suite.mockExtraction.On("ExtractReceipts", mock.Anything, suite.userID, mock.MatchedBy(func(files []portssvc.ReceiptFile) bool {
		return len(files) == 1 && files[0].Name == "receipt.jpg"
	}), mock.Anything).Return(run, nil).Once()

	w := suite.serve(suite.multipartRequest("/api/receipts", "files", "receipt.jpg"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExtractionRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(run.RunID, resp.RunID)
	suite.Require().Len(resp.Lines, 1)
	suite.True(resp.Lines[0].Selected)
	suite.mockExtraction.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestExtractReceipts_NoFiles() {
	w := suite.serve(suite.multipartRequest("/api/receipts", "files"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExtraction.AssertNotCalled(suite.T(), "ExtractReceipts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptHandlerTestSuite) TestExtractReceipts_RequiresAuth() {
	req := suite.multipartRequest("/api/receipts", "files", "receipt.jpg")
	req.Header.Del("Authorization")

	w := suite.serve(req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ReceiptHandlerTestSuite) TestGetRun_NotFound() {
	suite.mockExtraction.On("GetRun", mock.Anything, suite.userID, "missing-run").Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/receipts/missing-run", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))

	w := suite.serve(req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ReceiptHandlerTestSuite) TestUpdateLine_Success() {
	run := sampleRun(suite.userID)
	lineID := run.Lines[0].LineID
	updated := run.Lines[0]
	updated.Selected = false

	suite.mockExtraction.On("UpdateLine", mock.Anything, suite.userID, run.RunID, lineID, mock.MatchedBy(func(r dto.UpdateCandidateRequest) bool {
		return r.Selected != nil && !*r.Selected && r.Amount != nil && r.Amount.Equal(decimal.NewFromInt(2000))
	})).Return(&updated, nil).Once()

	body, _ := json.Marshal(dto.UpdateCandidateRequest{
		Amount:   decimalPtr(decimal.NewFromInt(2000)),
		Selected: boolPtr(false),
	})
	req, _ := http.NewRequest(http.MethodPut, "/api/receipts/"+run.RunID+"/lines/"+lineID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CandidateLineResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Selected)
	suite.mockExtraction.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestUpdateLine_RejectsUnknownType() {
	body := []byte(`{"type":"INCOME"}`)
	req, _ := http.NewRequest(http.MethodPut, "/api/receipts/run/lines/line", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockExtraction.AssertNotCalled(suite.T(), "UpdateLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceiptHandlerTestSuite) TestConfirmRun_Success() {
	run := sampleRun(suite.userID)
	committed := []domain.Transaction{
		{TransactionID: uuid.NewString(), Type: domain.VAT, Amount: decimal.RequireFromString("112.50"), Details: "Total VAT (VAT on 1500.00)"},
	}
	suite.mockExtraction.On("ConfirmRun", mock.Anything, suite.userID, run.RunID).Return(committed, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/receipts/"+run.RunID+"/confirm", nil)
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))

	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConfirmRunResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Transactions, 1)
	suite.Equal("VAT", resp.Transactions[0].Type)
}

func (suite *ReceiptHandlerTestSuite) TestImportCSV_Success() {
	result := portssvc.CSVImportResult{
		Imported: []domain.Transaction{
			{TransactionID: uuid.NewString(), Type: domain.VAT, Amount: decimal.RequireFromString("375.04")},
		},
		Skipped: 2,
	}
	suite.mockImport.On("ImportCSV", mock.Anything, suite.userID, mock.Anything).Return(result, nil).Once()

	w := suite.serve(suite.multipartRequest("/api/imports/csv", "file", "statement.csv"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.CSVImportResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(1, resp.ImportedRows)
	suite.Equal(2, resp.SkippedRows)
	suite.mockImport.AssertExpectations(suite.T())
}

func (suite *ReceiptHandlerTestSuite) TestImportCSV_MissingFile() {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	suite.Require().NoError(writer.Close())
	req, _ := http.NewRequest(http.MethodPost, "/api/imports/csv", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+generateTestToken(suite.userID))

	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func TestReceiptHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}
