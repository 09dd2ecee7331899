package analyzer

import (
	"sort"

	"fjacquet/statement-risk/internal/models"
)

// aggregateMonthly sums inflow and outflow per calendar month, oldest first.
func aggregateMonthly(parsed []models.ParsedTransaction) []models.MonthlyAggregate {
	index := make(map[models.MonthKey]int)
	var groups []models.MonthlyAggregate

	for _, tx := range parsed {
		key := models.NewMonthKey(tx.Time)
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, models.MonthlyAggregate{Key: key, Label: key.Label()})
		}
		groups[i].Inflow = groups[i].Inflow.Add(tx.Inflow)
		groups[i].Outflow = groups[i].Outflow.Add(tx.Outflow)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key.Before(groups[j].Key)
	})
	return groups
}
