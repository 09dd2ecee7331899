package analyzer

import (
	"fmt"
	"sort"

	"fjacquet/statement-risk/internal/models"
	"fjacquet/statement-risk/internal/textutils"

	"github.com/shopspring/decimal"
)

const (
	topPayerCount          = 3
	highConcentrationPct   = 40
	moderateConcentratePct = 20
	concentrationPenalty   = -15
)

var hundred = decimal.NewFromInt(100)

type payerTotal struct {
	name   string
	amount decimal.Decimal
}

type concentration struct {
	top      []models.PayerShare
	topName  string
	ratioPct float64
}

// payerConcentration groups inflows by normalized payer and ranks them.
func payerConcentration(parsed []models.ParsedTransaction, totalIn decimal.Decimal) concentration {
	result := concentration{top: []models.PayerShare{}}
	if !totalIn.IsPositive() {
		return result
	}

	sums := make(map[string]decimal.Decimal)
	for _, tx := range parsed {
		if !tx.IsCredit() {
			continue
		}
		key := textutils.NormalizePayer(tx.Description)
		sums[key] = sums[key].Add(tx.Inflow)
	}
	if len(sums) == 0 {
		return result
	}

	payers := make([]payerTotal, 0, len(sums))
	for name, amount := range sums {
		payers = append(payers, payerTotal{name: name, amount: amount})
	}
	sort.Slice(payers, func(i, j int) bool {
		if !payers[i].amount.Equal(payers[j].amount) {
			return payers[i].amount.GreaterThan(payers[j].amount)
		}
		return payers[i].name < payers[j].name
	})

	result.topName = payers[0].name
	result.ratioPct, _ = payers[0].amount.Div(totalIn).Mul(hundred).Float64()

	for _, p := range payers[:min(topPayerCount, len(payers))] {
		pct, _ := p.amount.Div(totalIn).Mul(hundred).Round(1).Float64()
		result.top = append(result.top, models.PayerShare{
			Name:       p.name,
			Amount:     models.RoundCents(p.amount),
			Percentage: pct,
		})
	}
	return result
}

func (c concentration) penalty() int {
	if c.ratioPct > highConcentrationPct {
		return concentrationPenalty
	}
	return 0
}

func (c concentration) insight() (models.Insight, bool) {
	switch {
	case c.ratioPct > highConcentrationPct:
		return models.Insight{
			Type:  models.InsightWarning,
			Title: "High Customer Concentration",
			Text:  fmt.Sprintf("%.1f%% of revenue comes from a single source: %s.", c.ratioPct, c.topName),
		}, true
	case c.ratioPct > moderateConcentratePct:
		return models.Insight{
			Type:  models.InsightNeutral,
			Title: "Moderate Concentration",
			Text:  fmt.Sprintf("Top customer contributes %.1f%% of revenue.", c.ratioPct),
		}, true
	default:
		return models.Insight{}, false
	}
}
