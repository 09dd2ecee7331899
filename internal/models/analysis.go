package models

import (
	"github.com/shopspring/decimal"
)

// RiskLevel is the category derived from the final score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low Risk Profile"
	RiskModerate RiskLevel = "Moderate Risk"
	RiskHigh     RiskLevel = "High Risk"
	RiskUnknown  RiskLevel = "Unknown"
)

// RiskLevelForScore maps a clamped score to its category.
func RiskLevelForScore(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 50:
		return RiskModerate
	default:
		return RiskHigh
	}
}

// InsightType is the severity tag of a narrative insight.
type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightNegative InsightType = "negative"
	InsightWarning  InsightType = "warning"
	InsightNeutral  InsightType = "neutral"
)

// Insight is a human-readable observation about the analysed statements.
type Insight struct {
	Type  InsightType `json:"type" yaml:"type"`
	Title string      `json:"title" yaml:"title"`
	Text  string      `json:"text" yaml:"text"`
}

// MonthlyAggregate sums all transactions that fall in the same calendar month.
type MonthlyAggregate struct {
	Key     MonthKey
	Label   string
	Inflow  decimal.Decimal
	Outflow decimal.Decimal
}

// GraphPoint is the display form of a MonthlyAggregate, rounded to cents.
type GraphPoint struct {
	Month   string  `csv:"Month" json:"month" yaml:"month"`
	Inflow  float64 `csv:"Inflow" json:"inflow" yaml:"inflow"`
	Outflow float64 `csv:"Outflow" json:"outflow" yaml:"outflow"`
}

// ScoreResult is always recomputed from the full transaction set.
type ScoreResult struct {
	Score     int       `json:"score" yaml:"score"`
	RiskLevel RiskLevel `json:"risk_level" yaml:"risk_level"`
}

// Adjustment records one additive step of the scoring model.
type Adjustment struct {
	Factor string `json:"factor" yaml:"factor"`
	Points int    `json:"points" yaml:"points"`
}

// Scoring factor names, in the order they are applied.
const (
	FactorBase          = "base"
	FactorCashFlow      = "cash_flow"
	FactorStability     = "stability"
	FactorGrowth        = "growth"
	FactorConcentration = "concentration"
	FactorRedFlags      = "red_flags"
	FactorHighRisk      = "high_risk_activity"
)

// PayerShare is one entry of the top payer ranking.
type PayerShare struct {
	Name       string  `json:"name" yaml:"name"`
	Amount     float64 `json:"amount" yaml:"amount"`
	Percentage float64 `json:"percentage" yaml:"percentage"`
}

// Summary holds the headline numbers of an analysis.
type Summary struct {
	TotalInflow  float64   `json:"total_inflow" yaml:"total_inflow"`
	TotalOutflow float64   `json:"total_outflow" yaml:"total_outflow"`
	Score        int       `json:"score" yaml:"score"`
	RiskLevel    RiskLevel `json:"risk_level" yaml:"risk_level"`
}

// EmptySummary is returned when no transaction survives date filtering.
func EmptySummary() Summary {
	return Summary{RiskLevel: RiskUnknown}
}

// Analysis is the analyzer's output: the monthly series plus the summary and
// the secondary insights derived from it.
type Analysis struct {
	Monthly     []MonthlyAggregate `json:"-" yaml:"-"`
	Summary     Summary            `json:"summary" yaml:"summary"`
	Insights    []Insight          `json:"insights" yaml:"insights"`
	TopPayers   []PayerShare       `json:"top_payers" yaml:"top_payers"`
	RedFlags    []string           `json:"red_flags" yaml:"red_flags"`
	Adjustments []Adjustment       `json:"adjustments" yaml:"adjustments"`
}

// GraphData converts the monthly series to its display form.
func (a *Analysis) GraphData() []GraphPoint {
	points := make([]GraphPoint, 0, len(a.Monthly))
	for _, m := range a.Monthly {
		points = append(points, GraphPoint{
			Month:   m.Label,
			Inflow:  RoundCents(m.Inflow),
			Outflow: RoundCents(m.Outflow),
		})
	}
	return points
}

// Adjustment returns the total points applied for a factor.
func (a *Analysis) Adjustment(factor string) int {
	total := 0
	for _, adj := range a.Adjustments {
		if adj.Factor == factor {
			total += adj.Points
		}
	}
	return total
}

// RoundCents rounds a monetary value to two decimals for display.
func RoundCents(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}

// KeywordConfig overrides the description keywords used for red flags and
// high-risk spend. Empty lists keep the built-in sets.
type KeywordConfig struct {
	RedFlags []string `yaml:"red_flags" json:"red_flags"`
	HighRisk []string `yaml:"high_risk" json:"high_risk"`
}
