package service

import (
	"testing"

	"budgetbridge/domain"
)

func TestCompareRates_ThreeQuotes(t *testing.T) {

	s := NewSensitivityService(NewAmortizationService())

	input := domain.SensitivityInput{
		Principal:         250000,
		Deposit:           25000,
		AnnualRatePercent: 7.5,
		Compounding:       domain.CompoundingMonthly,
		DurationYears:     20,
	}

	result, err := s.CompareRates(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Quotes) != 3 {
		t.Fatalf("expected 3 quotes, got %d", len(result.Quotes))
	}
	wantRates := []float64{5.5, 7.5, 9.5}
	for i, q := range result.Quotes {
		if q.AnnualRatePercent != wantRates[i] {
			t.Errorf("quote %d: rate = %v, want %v", i, q.AnnualRatePercent, wantRates[i])
		}
	}
	if !(result.Quotes[0].Payment < result.Quotes[1].Payment &&
		result.Quotes[1].Payment < result.Quotes[2].Payment) {
		t.Errorf("payments should increase with the rate: %+v", result.Quotes)
	}
}

func TestCompareRates_ClampsLowRateAtZero(t *testing.T) {

	s := NewSensitivityService(NewAmortizationService())

	input := domain.SensitivityInput{
		Principal:         12000,
		AnnualRatePercent: 1,
		Compounding:       domain.CompoundingMonthly,
		DurationYears:     1,
	}

	result, err := s.CompareRates(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Quotes[0].AnnualRatePercent != 0 {
		t.Errorf("low quote rate = %v, want 0", result.Quotes[0].AnnualRatePercent)
	}
	// Zero rate over 12 months is straight-line.
	if result.Quotes[0].Payment != 1000 {
		t.Errorf("low quote payment = %v, want 1000", result.Quotes[0].Payment)
	}
}

func TestCompareRates_InvalidInput(t *testing.T) {

	s := NewSensitivityService(NewAmortizationService())

	input := domain.SensitivityInput{
		Principal:         1000,
		Deposit:           1000,
		AnnualRatePercent: 5,
		Compounding:       domain.CompoundingMonthly,
		DurationYears:     5,
	}

	if _, err := s.CompareRates(input); err == nil {
		t.Errorf("expected error when deposit covers the loan")
	}
}
