package dto

import (
	"github.com/shopspring/decimal"

	"github.com/taxtrackng/taxtrack_backend/internal/core/tax"
)

// PAYEEstimateRequest carries the inputs for a PAYE estimation.
type PAYEEstimateRequest struct {
	GrossIncome decimal.Decimal `json:"grossIncome"`
	Pension     decimal.Decimal `json:"pension"`
	NHF         decimal.Decimal `json:"nhf"`
	Other       decimal.Decimal `json:"other"`
}

// PAYEEstimateResponse mirrors a PAYE assessment.
type PAYEEstimateResponse struct {
	GrossIncome   decimal.Decimal `json:"grossIncome"`
	TotalReliefs  decimal.Decimal `json:"totalReliefs"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	AnnualTax     decimal.Decimal `json:"annualTax"`
	MonthlyTax    decimal.Decimal `json:"monthlyTax"`
}

// VATEstimateRequest carries the base amount for a VAT estimation.
type VATEstimateRequest struct {
	BaseAmount decimal.Decimal `json:"baseAmount"`
}

// VATEstimateResponse pairs the base amount with the VAT owed on it.
type VATEstimateResponse struct {
	BaseAmount decimal.Decimal `json:"baseAmount"`
	VATAmount  decimal.Decimal `json:"vatAmount"`
}

// ToPAYEEstimateResponse converts a PAYE assessment.
func ToPAYEEstimateResponse(a tax.PAYEAssessment) PAYEEstimateResponse {
	return PAYEEstimateResponse{
		GrossIncome:   a.GrossIncome,
		TotalReliefs:  a.TotalReliefs,
		TaxableIncome: a.TaxableIncome,
		AnnualTax:     a.AnnualTax,
		MonthlyTax:    a.MonthlyTax,
	}
}
