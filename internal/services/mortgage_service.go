package services

import (
	"math"

	"alexsimon-listings/internal/errors"
	"alexsimon-listings/internal/models"
)

// MortgageService computes the same amortized monthly payment the site's
// calculator shows.
type MortgageService struct{}

func NewMortgageService() *MortgageService {
	return &MortgageService{}
}

// Estimate amortizes principal − downPayment over years at annualRate
// percent. A zero rate divides evenly over the term.
func (s *MortgageService) Estimate(principal, downPayment, annualRate float64, years int) (*models.MortgageEstimate, error) {
	if principal <= 0 {
		return nil, errors.NewValidationError("principal must be positive")
	}
	if downPayment < 0 || downPayment >= principal {
		return nil, errors.NewValidationError("down payment must be between 0 and the principal")
	}
	if annualRate < 0 {
		return nil, errors.NewValidationError("rate must not be negative")
	}
	if years <= 0 {
		return nil, errors.NewValidationError("amortization period must be positive")
	}

	financed := principal - downPayment
	numPayments := float64(years * 12)
	monthlyRate := annualRate / 100 / 12

	var payment float64
	if monthlyRate == 0 {
		payment = financed / numPayments
	} else {
		growth := math.Pow(1+monthlyRate, numPayments)
		payment = financed * monthlyRate * growth / (growth - 1)
	}

	totalPaid := payment * numPayments
	return &models.MortgageEstimate{
		Principal:      principal,
		DownPayment:    downPayment,
		AmountFinanced: financed,
		AnnualRate:     annualRate,
		Years:          years,
		MonthlyPayment: round2(payment),
		TotalPaid:      round2(totalPaid),
		TotalInterest:  round2(totalPaid - financed),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
