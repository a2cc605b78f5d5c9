package domain

// SensitivityInput requests payment quotes at perturbed rates around a
// base annual rate. Extra payments are deliberately not part of the
// input: quotes compare the level payment only.
type SensitivityInput struct {
	Principal         float64     `json:"principal"`
	Deposit           float64     `json:"deposit"`
	AnnualRatePercent float64     `json:"annual_rate_percent"`
	Compounding       Compounding `json:"compounding"`
	DurationYears     int         `json:"duration_years"`
}

// RateQuote is the level periodic payment at one annual rate.
type RateQuote struct {
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Payment           float64 `json:"payment"`
}

// SensitivityResult holds the three quotes: base rate minus two points
// (clamped at zero), the base rate, and base rate plus two points.
type SensitivityResult struct {
	Quotes []RateQuote `json:"quotes"`
}
