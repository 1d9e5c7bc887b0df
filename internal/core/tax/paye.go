// Package tax implements the Nigerian statutory calculators used across the
// ledger: progressive PAYE over annual taxable income and flat-rate VAT.
package tax

import "github.com/shopspring/decimal"

// payeBand is one marginal band of the PAYE schedule. UpTo is the cumulative
// upper bound of taxable income covered by the band; the final band is open.
type payeBand struct {
	upTo decimal.Decimal
	rate decimal.Decimal
}

// Progressive PAYE schedule (Finance Act bands): 7% on the first 300k,
// 11% on the next 300k, 15% on the next 500k, 19% on the next 500k,
// 21% on the next 1.6M, 24% on everything above 3.2M.
var payeBands = []payeBand{
	{upTo: decimal.NewFromInt(300_000), rate: decimal.NewFromFloat(0.07)},
	{upTo: decimal.NewFromInt(600_000), rate: decimal.NewFromFloat(0.11)},
	{upTo: decimal.NewFromInt(1_100_000), rate: decimal.NewFromFloat(0.15)},
	{upTo: decimal.NewFromInt(1_600_000), rate: decimal.NewFromFloat(0.19)},
	{upTo: decimal.NewFromInt(3_200_000), rate: decimal.NewFromFloat(0.21)},
	{rate: decimal.NewFromFloat(0.24)}, // open-ended top band
}

var (
	standardReliefBase = decimal.NewFromInt(200_000)
	standardReliefPct  = decimal.NewFromFloat(0.2)
	monthsPerYear      = decimal.NewFromInt(12)
)

// Reliefs are the optional deductions applied before the band schedule.
// Absent fields are the decimal zero value and count as no relief.
type Reliefs struct {
	Pension decimal.Decimal `json:"pension"`
	NHF     decimal.Decimal `json:"nhf"`
	Other   decimal.Decimal `json:"other"`
}

// PAYEAssessment is the full output of a PAYE calculation.
type PAYEAssessment struct {
	GrossIncome   decimal.Decimal `json:"grossIncome"`
	TotalReliefs  decimal.Decimal `json:"totalReliefs"`
	TaxableIncome decimal.Decimal `json:"taxableIncome"`
	AnnualTax     decimal.Decimal `json:"annualTax"`  // rounded to the nearest naira
	MonthlyTax    decimal.Decimal `json:"monthlyTax"` // annual / 12, rounded
}

// CalculatePAYE computes annual and monthly PAYE for a gross annual income.
// Total relief is pension + nhf + other + the consolidated standard relief of
// 200,000 plus 20% of gross. Negative inputs coerce to zero; there are no
// error conditions.
func CalculatePAYE(grossIncome decimal.Decimal, reliefs Reliefs) PAYEAssessment {
	gross := clampNonNegative(grossIncome)

	standardRelief := standardReliefBase.Add(gross.Mul(standardReliefPct))
	totalReliefs := clampNonNegative(reliefs.Pension).
		Add(clampNonNegative(reliefs.NHF)).
		Add(clampNonNegative(reliefs.Other)).
		Add(standardRelief)

	taxable := gross.Sub(totalReliefs)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	// Monthly tax divides the already-rounded annual figure, not the raw
	// band total.
	annual := bandTax(taxable).Round(0)

	return PAYEAssessment{
		GrossIncome:   gross,
		TotalReliefs:  totalReliefs,
		TaxableIncome: taxable,
		AnnualTax:     annual,
		MonthlyTax:    annual.Div(monthsPerYear).Round(0),
	}
}

// bandTax runs the taxable amount through the marginal schedule.
func bandTax(taxable decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	lower := decimal.Zero
	for _, band := range payeBands {
		upper := taxable
		if !band.upTo.IsZero() && upper.GreaterThan(band.upTo) {
			upper = band.upTo
		}
		if upper.LessThanOrEqual(lower) {
			break
		}
		total = total.Add(upper.Sub(lower).Mul(band.rate))
		lower = upper
	}
	return total
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
