package repository

import "EconPulse/internal/domain/models"

// IsValidIndicator returns true if ind is a supported indicator code.
func IsValidIndicator(ind string) bool {
	switch ind {
	case models.IndicatorCPI, models.IndicatorGDP, models.IndicatorIndex, models.IndicatorFX:
		return true
	default:
		return false
	}
}

// DefaultIndicator returns the default indicator.
func DefaultIndicator() string { return models.IndicatorCPI }

// NormalizeIndicator converts a raw string to a valid indicator (or default).
func NormalizeIndicator(s string) string {
	if s == "" {
		return DefaultIndicator()
	}
	if IsValidIndicator(s) {
		return s
	}
	return DefaultIndicator()
}

// IsMarketIndicator reports whether ind is served by the quote provider
// rather than the statistical indicator provider.
func IsMarketIndicator(ind string) bool {
	return ind == models.IndicatorIndex || ind == models.IndicatorFX
}
