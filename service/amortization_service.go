package service

import (
	"errors"
	"fmt"
	"math"

	"budgetbridge/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimal places.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// AmortizationService computes amortization schedules. It holds no
// state across invocations; every method is a pure function of its
// arguments.
type AmortizationService struct{}

// NewAmortizationService creates a new AmortizationService.
func NewAmortizationService() *AmortizationService {
	return &AmortizationService{}
}

// ComputePeriodicRate converts a nominal annual rate under the given
// compounding convention into a monthly-equivalent periodic rate.
//
// Monthly and Annually treat the annual rate as the effective yearly
// growth and take its 12th root. Quarterly treats the annual rate as
// nominal with quarterly compounding: the effective annual rate is
// (1+a/4)^4 - 1, and the monthly-equivalent rate is its 12th root
// minus 1. This replaces the nested-root expression the upstream
// calculator used for the quarterly case, which did not correspond to
// any standard convention.
func (s *AmortizationService) ComputePeriodicRate(
	annualRatePercent float64,
	compounding domain.Compounding,
) float64 {
	a := annualRatePercent / 100
	if compounding == domain.CompoundingQuarterly {
		effective := math.Pow(1+a/4, 4) - 1
		return math.Pow(1+effective, 1.0/MonthsPerYear) - 1
	}
	return math.Pow(1+a, 1.0/MonthsPerYear) - 1
}

// ComputePeriodicPayment computes the level payment that fully
// amortizes principal over the given number of periods at the given
// per-period rate. Zero periods yields zero; zero rate falls back to
// straight-line repayment.
func (s *AmortizationService) ComputePeriodicPayment(
	principal float64,
	periodicRate float64,
	periods int,
) float64 {
	if periods == 0 {
		return 0
	}
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	n := float64(periods)
	growth := math.Pow(1+periodicRate, n)
	return principal * (periodicRate * growth) / (growth - 1)
}

// GenerateSchedule produces the ordered schedule for the given
// principal, per-period rate, requested period count and periodic
// payment (extra included). Each period accrues interest on the prior
// balance, applies the payment to interest first, and caps the
// principal portion so the balance never goes negative. Generation
// stops early once the residual balance falls below PayoffEpsilon.
//
// If the payment is below the amount required to amortize within the
// requested periods, the schedule runs the full length with a positive
// final balance. That is a valid outcome, not an error. Should the
// payment not even cover a period's interest, the whole payment is
// recorded as interest, the principal portion is zero and the balance
// stalls; interest beyond the payment is never disbursed and therefore
// never accrues into the cumulative totals.
func (s *AmortizationService) GenerateSchedule(
	effectivePrincipal float64,
	periodicRate float64,
	periods int,
	paymentWithExtra float64,
) []domain.ScheduleEntry {
	entries := make([]domain.ScheduleEntry, 0, periods)
	balance := effectivePrincipal
	cumulativeInterest := 0.0
	cumulativePrincipal := 0.0

	for m := 1; m <= periods; m++ {
		interest := balance * periodicRate
		principalPaid := math.Min(balance, paymentWithExtra-interest)
		if periodicRate == 0 {
			principalPaid = math.Min(balance, paymentWithExtra)
			interest = 0
		}
		if principalPaid < 0 {
			// Payment does not even cover interest; no negative
			// amortization, the balance simply stalls and only the
			// disbursed interest is recorded.
			principalPaid = 0
			interest = paymentWithExtra
		}
		balance -= principalPaid
		cumulativeInterest += interest
		cumulativePrincipal += principalPaid

		payment := paymentWithExtra
		if balance <= 0 {
			// Final truncated period: record what was actually disbursed.
			payment = principalPaid + interest
		}

		entries = append(entries, domain.ScheduleEntry{
			Period:              m,
			Payment:             payment,
			Principal:           principalPaid,
			Interest:            interest,
			Balance:             math.Max(0, balance),
			CumulativeInterest:  cumulativeInterest,
			CumulativePrincipal: cumulativePrincipal,
		})

		if balance <= PayoffEpsilon {
			break
		}
	}

	return entries
}

// Summarize derives the summary view from a completed schedule.
func (s *AmortizationService) Summarize(
	entries []domain.ScheduleEntry,
	basePayment float64,
	paymentWithExtra float64,
) domain.ScheduleSummary {
	summary := domain.ScheduleSummary{
		BasePayment:      basePayment,
		PaymentWithExtra: paymentWithExtra,
	}
	if len(entries) == 0 {
		return summary
	}
	last := entries[len(entries)-1]
	summary.TotalInterest = last.CumulativeInterest
	summary.TotalPrincipal = last.CumulativePrincipal
	summary.PeriodsToPayoff = len(entries)
	summary.FullyAmortized = last.Balance <= PayoffEpsilon
	return summary
}

// ApplyInflationAdjustment returns a copy of the schedule with each
// entry's balance discounted by the inflation rate compounded over the
// elapsed fraction of a year. Balances themselves are untouched.
func (s *AmortizationService) ApplyInflationAdjustment(
	entries []domain.ScheduleEntry,
	inflationRatePercent float64,
) []domain.ScheduleEntry {
	adjusted := make([]domain.ScheduleEntry, len(entries))
	copy(adjusted, entries)
	for i := range adjusted {
		factor := math.Pow(1+inflationRatePercent/100, float64(adjusted[i].Period)/MonthsPerYear)
		v := adjusted[i].Balance / factor
		adjusted[i].InflationAdjustedBalance = &v
	}
	return adjusted
}

// Calculate runs the full pipeline for one set of terms: validation,
// rate conversion, payment, schedule, summary, and the optional
// inflation adjustment and display rounding.
func (s *AmortizationService) Calculate(
	terms domain.LoanTerms,
) (domain.AmortizationResult, error) {

	if terms.Principal < 0 || terms.Deposit < 0 {
		return domain.AmortizationResult{}, errors.New("principal and deposit must not be negative")
	}
	if terms.Principal > MaxLoanAmount {
		return domain.AmortizationResult{}, fmt.Errorf("principal exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if terms.AnnualRatePercent < 0 {
		return domain.AmortizationResult{}, errors.New("annual rate must not be negative")
	}
	if terms.AnnualRatePercent > MaxAnnualRatePercent {
		return domain.AmortizationResult{}, fmt.Errorf("annual rate exceeds the maximum of %.2f%%", MaxAnnualRatePercent)
	}
	if terms.DurationYears <= 0 {
		return domain.AmortizationResult{}, errors.New("duration must be at least one year")
	}
	if terms.DurationYears > MaxDurationYears {
		return domain.AmortizationResult{}, fmt.Errorf("duration exceeds the maximum of %d years", MaxDurationYears)
	}
	if terms.ExtraPeriodicPayment < 0 {
		return domain.AmortizationResult{}, errors.New("extra payment must not be negative")
	}
	if terms.InflationRatePercent < 0 {
		return domain.AmortizationResult{}, errors.New("inflation rate must not be negative")
	}
	if _, err := domain.ParseCompounding(string(terms.Compounding)); err != nil {
		return domain.AmortizationResult{}, err
	}

	effectivePrincipal := terms.EffectivePrincipal()
	if effectivePrincipal <= 0 {
		return domain.AmortizationResult{}, errors.New("deposit covers the loan amount; adjust deposit or principal")
	}

	periods := terms.DurationYears * MonthsPerYear
	rate := s.ComputePeriodicRate(terms.AnnualRatePercent, terms.Compounding)
	basePayment := s.ComputePeriodicPayment(effectivePrincipal, rate, periods)
	paymentWithExtra := basePayment + terms.ExtraPeriodicPayment

	schedule := s.GenerateSchedule(effectivePrincipal, rate, periods, paymentWithExtra)
	if terms.AdjustInflation && terms.InflationRatePercent > 0 {
		schedule = s.ApplyInflationAdjustment(schedule, terms.InflationRatePercent)
	}

	result := domain.AmortizationResult{
		Summary:  s.Summarize(schedule, basePayment, paymentWithExtra),
		Schedule: schedule,
	}

	if terms.RoundOutput {
		result = roundResult(result)
	}

	return result, nil
}

// roundResult rounds every monetary field of a display copy to 2
// decimals. Rounding happens after the schedule is fully computed and
// never feeds back into period arithmetic.
func roundResult(result domain.AmortizationResult) domain.AmortizationResult {
	rounded := result
	rounded.Summary.BasePayment = roundTo2Decimals(result.Summary.BasePayment)
	rounded.Summary.PaymentWithExtra = roundTo2Decimals(result.Summary.PaymentWithExtra)
	rounded.Summary.TotalInterest = roundTo2Decimals(result.Summary.TotalInterest)
	rounded.Summary.TotalPrincipal = roundTo2Decimals(result.Summary.TotalPrincipal)

	rounded.Schedule = make([]domain.ScheduleEntry, len(result.Schedule))
	copy(rounded.Schedule, result.Schedule)
	for i := range rounded.Schedule {
		e := &rounded.Schedule[i]
		e.Payment = roundTo2Decimals(e.Payment)
		e.Principal = roundTo2Decimals(e.Principal)
		e.Interest = roundTo2Decimals(e.Interest)
		e.Balance = roundTo2Decimals(e.Balance)
		e.CumulativeInterest = roundTo2Decimals(e.CumulativeInterest)
		e.CumulativePrincipal = roundTo2Decimals(e.CumulativePrincipal)
		if e.InflationAdjustedBalance != nil {
			v := roundTo2Decimals(*e.InflationAdjustedBalance)
			e.InflationAdjustedBalance = &v
		}
	}
	return rounded
}
