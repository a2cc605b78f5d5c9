package service

import (
	"errors"
	"fmt"
	"math"

	"budgetbridge/domain"
)

// SensitivityService quotes the level periodic payment at the base
// rate and at two percentage points on either side, showing how
// sensitive the payment is to the rate. Extra payments are ignored.
type SensitivityService struct {
	amortization *AmortizationService
}

func NewSensitivityService(amortization *AmortizationService) *SensitivityService {
	return &SensitivityService{amortization: amortization}
}

// CompareRates produces quotes for {rate-2, rate, rate+2}, with the
// low rate clamped at zero. Each quote is an independent call into the
// rate and payment functions with the same principal and duration.
func (s *SensitivityService) CompareRates(
	input domain.SensitivityInput,
) (domain.SensitivityResult, error) {

	if input.Principal < 0 || input.Deposit < 0 {
		return domain.SensitivityResult{}, errors.New("principal and deposit must not be negative")
	}
	if input.Principal > MaxLoanAmount {
		return domain.SensitivityResult{}, fmt.Errorf("principal exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if input.AnnualRatePercent < 0 {
		return domain.SensitivityResult{}, errors.New("annual rate must not be negative")
	}
	if input.AnnualRatePercent > MaxAnnualRatePercent {
		return domain.SensitivityResult{}, fmt.Errorf("annual rate exceeds the maximum of %.2f%%", MaxAnnualRatePercent)
	}
	if input.DurationYears <= 0 || input.DurationYears > MaxDurationYears {
		return domain.SensitivityResult{}, fmt.Errorf("duration must be between 1 and %d years", MaxDurationYears)
	}
	if _, err := domain.ParseCompounding(string(input.Compounding)); err != nil {
		return domain.SensitivityResult{}, err
	}

	effectivePrincipal := input.Principal - input.Deposit
	if effectivePrincipal <= 0 {
		return domain.SensitivityResult{}, errors.New("deposit covers the loan amount; adjust deposit or principal")
	}

	periods := input.DurationYears * MonthsPerYear
	rates := []float64{
		math.Max(0, input.AnnualRatePercent-SensitivityRateStep),
		input.AnnualRatePercent,
		input.AnnualRatePercent + SensitivityRateStep,
	}

	quotes := make([]domain.RateQuote, 0, len(rates))
	for _, annual := range rates {
		periodic := s.amortization.ComputePeriodicRate(annual, input.Compounding)
		payment := s.amortization.ComputePeriodicPayment(effectivePrincipal, periodic, periods)
		quotes = append(quotes, domain.RateQuote{
			AnnualRatePercent: annual,
			Payment:           payment,
		})
	}

	return domain.SensitivityResult{Quotes: quotes}, nil
}
