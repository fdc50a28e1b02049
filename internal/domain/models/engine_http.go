package models

// Requests for engine HTTP endpoints. Defined in domain for consistency and reuse.

type SnapshotRequest struct {
	Entity string `query:"entity" json:"entity" validate:"required"`
}

type BatchRequest struct {
	Entities  string `query:"entities" json:"entities" validate:"required"`
	Indicator string `query:"indicator" json:"indicator" default:"cpi" validate:"oneof=cpi gdp index fx"`
	Ranked    bool   `query:"ranked" json:"ranked"`
}

type CorrelateRequest struct {
	EntityA    string `query:"entity_a" json:"entity_a" validate:"required"`
	IndicatorA string `query:"indicator_a" json:"indicator_a" default:"cpi" validate:"oneof=cpi gdp index fx"`
	EntityB    string `query:"entity_b" json:"entity_b" validate:"required"`
	IndicatorB string `query:"indicator_b" json:"indicator_b" default:"cpi" validate:"oneof=cpi gdp index fx"`
}

type MatrixRequest struct {
	Entities  string `query:"entities" json:"entities" validate:"required"`
	Indicator string `query:"indicator" json:"indicator" default:"cpi" validate:"oneof=cpi gdp index fx"`
}

type CompareRequest struct {
	EntityA    string `query:"entity_a" json:"entity_a" validate:"required"`
	IndicatorA string `query:"indicator_a" json:"indicator_a" default:"cpi" validate:"oneof=cpi gdp index fx"`
	EntityB    string `query:"entity_b" json:"entity_b" validate:"required"`
	IndicatorB string `query:"indicator_b" json:"indicator_b" default:"gdp" validate:"oneof=cpi gdp index fx"`
	FromA      string `query:"from_a" json:"from_a" validate:"required,datetime=2006-01-02"`
	ToA        string `query:"to_a" json:"to_a" validate:"required,datetime=2006-01-02"`
	FromB      string `query:"from_b" json:"from_b" validate:"required,datetime=2006-01-02"`
	ToB        string `query:"to_b" json:"to_b" validate:"required,datetime=2006-01-02"`
}
