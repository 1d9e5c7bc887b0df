package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/taxtrackng/taxtrack_backend/internal/apperrors"
	"github.com/taxtrackng/taxtrack_backend/internal/core/domain"
	portssvc "github.com/taxtrackng/taxtrack_backend/internal/core/ports/services"
	"github.com/taxtrackng/taxtrack_backend/internal/core/services"
)

// --- Test Suite ---
type CSVImportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.CSVImportSvcFacade
	ownerID  string
}

func (suite *CSVImportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	ledger := services.NewLedgerService(suite.mockRepo, "₦")
	suite.service = services.NewCSVImportService(ledger)
	suite.ownerID = "owner-1"
}

// --- Test Cases ---

func (suite *CSVImportServiceTestSuite) TestImportCSV_HeaderSkippedAndVATComputed() {
	input := "Date,Amount,Description\n" +
		"2024-01-01,5000.50,Office supplies\n"

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Require().Len(result.Imported, 1)
	suite.Equal(0, result.Skipped)

	txn := result.Imported[0]
	suite.Equal(domain.VAT, txn.Type)
	suite.True(txn.Amount.Equal(decimal.RequireFromString("375.04")), "7.5% of 5000.50, half-up at 2dp")
	suite.Contains(txn.Details, "(VAT on 5000.50)")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CSVImportServiceTestSuite) TestImportCSV_CurrencySymbolStrippedFromAmount() {
	input := "Date,Amount,Description\n" +
		"2024-03-03,₦1200,Generator fuel\n"

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Amount.Equal(decimal.RequireFromString("90"))
	})).Return(nil).Once()

	result, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Require().Len(result.Imported, 1)
	suite.Contains(result.Imported[0].Details, "(VAT on 1200.00)")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CSVImportServiceTestSuite) TestImportCSV_FirstNonNumericFieldBecomesDetails() {
	// With no header keywords the first row is data. The date string does
	// not parse as a number, so it wins the details slot.
	input := "2024-02-02,1000,Fuel purchase\n"

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(t domain.Transaction) bool {
		return strings.HasPrefix(t.Details, "2024-02-02")
	})).Return(nil).Once()

	result, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Len(result.Imported, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CSVImportServiceTestSuite) TestImportCSV_SkipsRowsWithoutPositiveAmount() {
	input := "Date,Amount,Description\n" +
		"\"Lagos Office\",0,\"\"\n" +
		"2024-01-03,-500,Refund\n" +
		"just,words,here\n" +
		"2024-01-04,1200,Lunch\n"

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Len(result.Imported, 1)
	suite.Equal(3, result.Skipped)
	suite.True(result.Imported[0].Amount.Equal(decimal.NewFromInt(90)), "7.5% of 1200")
}

func (suite *CSVImportServiceTestSuite) TestImportCSV_BlankLinesDropped() {
	input := "\n\n100,Airtime\n\r\n250,Data bundle\n\n"

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil).Times(2)

	result, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Len(result.Imported, 2)
	suite.Equal(0, result.Skipped)
}

func (suite *CSVImportServiceTestSuite) TestImportCSV_QuotedFieldsTrimmed() {
	input := "\"2024-05-05\", \"7500\" ,\"Generator fuel\"\n"

	suite.mockRepo.On("SaveTransaction", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Require().Len(result.Imported, 1)
	suite.True(result.Imported[0].Amount.Equal(decimal.RequireFromString("562.50")), "7.5% of 7500")
}

func (suite *CSVImportServiceTestSuite) TestImportCSV_EmptyFile() {
	_, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader("  \n \n"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *CSVImportServiceTestSuite) TestImportCSV_HeaderOnlyFileImportsNothing() {
	input := "Date,Amount,Description\n"

	result, err := suite.service.ImportCSV(context.Background(), suite.ownerID, strings.NewReader(input))

	suite.Require().NoError(err)
	suite.Empty(result.Imported)
	suite.Equal(0, result.Skipped)
}

func TestCSVImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CSVImportServiceTestSuite))
}
