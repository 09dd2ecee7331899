package analyzer

import (
	"fmt"

	"fjacquet/statement-risk/internal/models"

	"github.com/shopspring/decimal"
)

const (
	growthInsightPct = 5
	burnRateLimit    = 0.95
	highRiskSummary  = "Transactions related to Gambling/Casinos detected."
)

func redFlagSummary(count int) string {
	return fmt.Sprintf("Detected %d instances of Returned/Dishonoured transactions.", count)
}

func redFlagInsight(count int) models.Insight {
	return models.Insight{
		Type:  models.InsightNegative,
		Title: "Operational Red Flags",
		Text:  fmt.Sprintf("Found %d transactions indicating bounced cheques or reversals.", count),
	}
}

func highRiskInsight() models.Insight {
	return models.Insight{
		Type:  models.InsightNegative,
		Title: "High Risk Spend",
		Text:  "Transactions related to gambling or high-risk activities detected.",
	}
}

// GrowthPercent compares the last month's inflow with the first. It is 0 when
// the first month had no inflow.
func GrowthPercent(monthly []models.MonthlyAggregate) float64 {
	if len(monthly) < 2 {
		return 0
	}
	first := monthly[0].Inflow
	if !first.IsPositive() {
		return 0
	}
	last := monthly[len(monthly)-1].Inflow
	growth, _ := last.Sub(first).Div(first).Mul(hundred).Float64()
	return growth
}

func growthInsight(monthly []models.MonthlyAggregate) (models.Insight, bool) {
	if len(monthly) < 2 {
		return models.Insight{}, false
	}
	growth := GrowthPercent(monthly)
	switch {
	case growth > growthInsightPct:
		return models.Insight{
			Type:  models.InsightPositive,
			Title: "Revenue Growth",
			Text:  fmt.Sprintf("Revenue grew by %d%% compared to the start of the period.", int(growth)),
		}, true
	case growth < -growthInsightPct:
		drop := int(growth)
		if drop < 0 {
			drop = -drop
		}
		return models.Insight{
			Type:  models.InsightNegative,
			Title: "Declining Revenue",
			Text:  fmt.Sprintf("Revenue dropped by %d%% over the analysis period.", drop),
		}, true
	default:
		return models.Insight{}, false
	}
}

// BurnRate is outflow divided by inflow, or 0 without inflow.
func BurnRate(totalIn, totalOut decimal.Decimal) float64 {
	if !totalIn.IsPositive() {
		return 0
	}
	ratio, _ := totalOut.Div(totalIn).Float64()
	return ratio
}

func burnRateInsight(totalIn, totalOut decimal.Decimal) models.Insight {
	if BurnRate(totalIn, totalOut) > burnRateLimit {
		return models.Insight{
			Type:  models.InsightWarning,
			Title: "High Burn Rate",
			Text:  "Outflow is nearly equal to or exceeds inflow. Monitoring required.",
		}
	}
	return models.Insight{
		Type:  models.InsightPositive,
		Title: "Healthy Margins",
		Text:  "Business maintains a healthy surplus of cash flow.",
	}
}
