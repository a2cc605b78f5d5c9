package service

const (
	MaxLoanAmount        = 1_000_000_000.0
	MaxAnnualRatePercent = 100.0
	MaxDurationYears     = 50 // 600 monthly periods
	MonthsPerYear        = 12

	// PayoffEpsilon is the residual balance below which the loan is
	// considered paid off and schedule generation stops.
	PayoffEpsilon = 0.0001

	// SensitivityRateStep is the perturbation, in percentage points,
	// applied on each side of the base rate for the rate comparison.
	SensitivityRateStep = 2.0
)
