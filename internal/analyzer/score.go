package analyzer

import (
	"math"

	"fjacquet/statement-risk/internal/models"

	"github.com/shopspring/decimal"
)

const (
	baseScore       = 50
	redFlagPenalty  = -5
	highRiskPenalty = -20
	maxScore        = 100
)

var (
	healthyCashFlow = decimal.RequireFromString("1.1")
	strongGrowth    = decimal.RequireFromString("1.1")
)

// scorecard applies additive adjustments in order. Only the final total is clamped.
type scorecard struct {
	total       int
	adjustments []models.Adjustment
}

func newScorecard() *scorecard {
	c := &scorecard{}
	c.add(models.FactorBase, baseScore)
	return c
}

func (c *scorecard) add(factor string, points int) {
	c.total += points
	c.adjustments = append(c.adjustments, models.Adjustment{Factor: factor, Points: points})
}

func (c *scorecard) result() models.ScoreResult {
	score := Clamp(c.total)
	return models.ScoreResult{Score: score, RiskLevel: models.RiskLevelForScore(score)}
}

// Clamp bounds a running score to [0, 100].
func Clamp(score int) int {
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}

func cashFlowPoints(totalIn, totalOut decimal.Decimal) int {
	switch {
	case totalIn.GreaterThan(totalOut.Mul(healthyCashFlow)):
		return 20
	case totalIn.GreaterThan(totalOut):
		return 10
	default:
		return -10
	}
}

func stabilityPoints(monthly []models.MonthlyAggregate) int {
	if len(monthly) < 2 {
		return 10
	}
	cv := CoefficientOfVariation(monthlyInflows(monthly))
	switch {
	case cv < 0.2:
		return 20
	case cv < 0.5:
		return 10
	default:
		return 0
	}
}

func growthPoints(monthly []models.MonthlyAggregate) int {
	if len(monthly) < 2 {
		return 0
	}
	first := monthly[0].Inflow
	last := monthly[len(monthly)-1].Inflow
	switch {
	case last.GreaterThan(first.Mul(strongGrowth)):
		return 20
	case last.GreaterThan(first):
		return 10
	default:
		return 0
	}
}

func monthlyInflows(monthly []models.MonthlyAggregate) []float64 {
	values := make([]float64, len(monthly))
	for i, m := range monthly {
		values[i], _ = m.Inflow.Float64()
	}
	return values
}

// CoefficientOfVariation returns the sample standard deviation divided by the
// mean. It is 1 when the mean is not positive or fewer than two values exist.
func CoefficientOfVariation(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 1
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	if mean <= 0 {
		return 1
	}

	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq/float64(n-1)) / mean
}
