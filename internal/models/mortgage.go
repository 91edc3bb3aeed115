// internal/models/mortgage.go
package models

// MortgageEstimate is the result of the amortization formula the site's
// calculator uses.
type MortgageEstimate struct {
	Principal      float64 `json:"principal"`
	DownPayment    float64 `json:"downPayment"`
	AmountFinanced float64 `json:"amountFinanced"`
	AnnualRate     float64 `json:"annualRate"`
	Years          int     `json:"years"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPaid      float64 `json:"totalPaid"`
	TotalInterest  float64 `json:"totalInterest"`
}
