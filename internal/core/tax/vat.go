package tax

import "github.com/shopspring/decimal"

// VATRate is the flat Nigerian VAT rate of 7.5%.
var VATRate = decimal.NewFromFloat(0.075)

// CalculateVAT returns the VAT owed on a base amount, rounded to 2 decimal
// places. There are no bands and no caps; negative bases coerce to zero.
func CalculateVAT(baseAmount decimal.Decimal) decimal.Decimal {
	return clampNonNegative(baseAmount).Mul(VATRate).Round(2)
}
