package domain

import "fmt"

// Compounding is the convention under which the nominal annual rate
// accrues before conversion to a monthly-equivalent periodic rate.
type Compounding string

const (
	CompoundingMonthly   Compounding = "Monthly"
	CompoundingQuarterly Compounding = "Quarterly"
	CompoundingAnnually  Compounding = "Annually"
)

// ParseCompounding validates a compounding frequency value.
func ParseCompounding(s string) (Compounding, error) {
	switch Compounding(s) {
	case CompoundingMonthly, CompoundingQuarterly, CompoundingAnnually:
		return Compounding(s), nil
	}
	return "", fmt.Errorf("unknown compounding frequency: %q", s)
}

// LoanTerms are the borrower-supplied inputs for one calculation. A
// fresh value is constructed per request; nothing persists between
// invocations.
type LoanTerms struct {
	Principal            float64     `json:"principal"`
	Deposit              float64     `json:"deposit"`
	AnnualRatePercent    float64     `json:"annual_rate_percent"`
	Compounding          Compounding `json:"compounding"`
	DurationYears        int         `json:"duration_years"`
	ExtraPeriodicPayment float64     `json:"extra_periodic_payment"`
	AdjustInflation      bool        `json:"adjust_inflation"`
	InflationRatePercent float64     `json:"inflation_rate_percent"`
	RoundOutput          bool        `json:"round_output"`
}

// EffectivePrincipal is the amount actually amortized: principal net
// of the deposit, floored at zero.
func (t LoanTerms) EffectivePrincipal() float64 {
	if t.Principal <= t.Deposit {
		return 0
	}
	return t.Principal - t.Deposit
}

// ScheduleEntry is one row of the amortization schedule. Entries are
// produced once, in order, and never mutated afterwards.
type ScheduleEntry struct {
	Period                   int      `json:"period"`
	Payment                  float64  `json:"payment"`
	Principal                float64  `json:"principal"`
	Interest                 float64  `json:"interest"`
	Balance                  float64  `json:"balance"`
	CumulativeInterest       float64  `json:"cumulative_interest"`
	CumulativePrincipal      float64  `json:"cumulative_principal"`
	InflationAdjustedBalance *float64 `json:"inflation_adjusted_balance,omitempty"`
}

// ScheduleSummary is a read-only view derived from a completed schedule.
type ScheduleSummary struct {
	BasePayment      float64 `json:"base_payment"`
	PaymentWithExtra float64 `json:"payment_with_extra"`
	TotalInterest    float64 `json:"total_interest"`
	TotalPrincipal   float64 `json:"total_principal"`
	PeriodsToPayoff  int     `json:"periods_to_payoff"`
	FullyAmortized   bool    `json:"fully_amortized"`
}

// AmortizationResult is the full response for one set of terms.
type AmortizationResult struct {
	Summary  ScheduleSummary `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}
