package models

// EntityProfile is static reference data for one tracked entity (a country
// or instrument). Loaded once at startup and never mutated; adapters consult
// it for provider-specific identifiers.
type EntityProfile struct {
	Code          string `yaml:"code" json:"code"`
	Name          string `yaml:"name" json:"name"`
	Currency      string `yaml:"currency" json:"currency"`
	IndexSymbol   string `yaml:"index_symbol" json:"index_symbol"`
	FXSymbol      string `yaml:"fx_symbol" json:"fx_symbol"`
	WorldBankCode string `yaml:"worldbank_code" json:"worldbank_code"`
}

// Indicator codes recognized by the engine. Statistical indicators resolve
// through the World Bank code space; market indicators through the quote
// provider symbols on the profile.
const (
	IndicatorCPI   = "cpi"
	IndicatorGDP   = "gdp"
	IndicatorIndex = "index"
	IndicatorFX    = "fx"
)
