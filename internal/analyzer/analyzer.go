// Package analyzer turns extracted transactions into a monthly series, a
// 0-100 risk score and the narrative insights that explain it.
package analyzer

import (
	"time"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"

	"github.com/shopspring/decimal"
)

// Analyzer is stateless between calls; the same input always yields the same analysis
// for a given clock.
type Analyzer struct {
	logger           logging.Logger
	now              func() time.Time
	redFlagKeywords  []string
	highRiskKeywords []string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithClock sets the clock used for the plausible-year window.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// WithRedFlagKeywords replaces the operational red-flag keywords.
func WithRedFlagKeywords(keywords []string) Option {
	return func(a *Analyzer) {
		if len(keywords) > 0 {
			a.redFlagKeywords = keywords
		}
	}
}

// WithHighRiskKeywords replaces the gambling and high-risk spend keywords.
func WithHighRiskKeywords(keywords []string) Option {
	return func(a *Analyzer) {
		if len(keywords) > 0 {
			a.highRiskKeywords = keywords
		}
	}
}

// New creates an Analyzer. A nil logger falls back to the default logger.
func New(logger logging.Logger, opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:           logging.OrDefault(logger).WithField(logging.FieldComponent, "analyzer"),
		now:              time.Now,
		redFlagKeywords:  RedFlagKeywords,
		highRiskKeywords: HighRiskKeywords,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze runs the analyzer with default settings.
func Analyze(transactions []models.RawTransaction) *models.Analysis {
	return New(nil).Analyze(transactions)
}

// Analyze resolves dates, aggregates by month, scores the result and derives insights.
// Transactions whose date cannot be resolved are ignored; when none remain the
// analysis carries an empty series and an "Unknown" risk level.
func (a *Analyzer) Analyze(transactions []models.RawTransaction) *models.Analysis {
	parsed := a.resolveDates(transactions)
	if len(parsed) == 0 {
		a.logger.Info("No transactions with a usable date",
			logging.F(logging.FieldCount, len(transactions)))
		return emptyAnalysis()
	}

	monthly := aggregateMonthly(parsed)
	totalIn, totalOut := totals(parsed)

	card := newScorecard()
	card.add(models.FactorCashFlow, cashFlowPoints(totalIn, totalOut))
	card.add(models.FactorStability, stabilityPoints(monthly))
	card.add(models.FactorGrowth, growthPoints(monthly))

	var insights []models.Insight
	concentration := payerConcentration(parsed, totalIn)
	card.add(models.FactorConcentration, concentration.penalty())
	if insight, ok := concentration.insight(); ok {
		insights = append(insights, insight)
	}

	redFlags := []string{}
	flagged := countMatching(parsed, a.redFlagKeywords)
	card.add(models.FactorRedFlags, flagged*redFlagPenalty)
	if flagged > 0 {
		redFlags = append(redFlags, redFlagSummary(flagged))
		insights = append(insights, redFlagInsight(flagged))
	}

	highRisk := countMatching(parsed, a.highRiskKeywords) > 0
	if highRisk {
		card.add(models.FactorHighRisk, highRiskPenalty)
		redFlags = append(redFlags, highRiskSummary)
		insights = append(insights, highRiskInsight())
	} else {
		card.add(models.FactorHighRisk, 0)
	}

	if insight, ok := growthInsight(monthly); ok {
		insights = append(insights, insight)
	}
	insights = append(insights, burnRateInsight(totalIn, totalOut))

	result := card.result()
	a.logger.Info("Computed risk score",
		logging.F(logging.FieldScore, result.Score),
		logging.F(logging.FieldRiskLevel, string(result.RiskLevel)),
		logging.F(logging.FieldCount, len(parsed)))

	return &models.Analysis{
		Monthly: monthly,
		Summary: models.Summary{
			TotalInflow:  models.RoundCents(totalIn),
			TotalOutflow: models.RoundCents(totalOut),
			Score:        result.Score,
			RiskLevel:    result.RiskLevel,
		},
		Insights:    insights,
		TopPayers:   concentration.top,
		RedFlags:    redFlags,
		Adjustments: card.adjustments,
	}
}

func emptyAnalysis() *models.Analysis {
	return &models.Analysis{
		Monthly:     []models.MonthlyAggregate{},
		Summary:     models.EmptySummary(),
		Insights:    []models.Insight{},
		TopPayers:   []models.PayerShare{},
		RedFlags:    []string{},
		Adjustments: []models.Adjustment{},
	}
}

func totals(parsed []models.ParsedTransaction) (decimal.Decimal, decimal.Decimal) {
	in, out := decimal.Zero, decimal.Zero
	for _, tx := range parsed {
		in = in.Add(tx.Inflow)
		out = out.Add(tx.Outflow)
	}
	return in, out
}
