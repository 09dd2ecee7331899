package analyzer

import (
	"sort"

	"fjacquet/statement-risk/internal/dateutils"
	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"
)

// resolveDates keeps the transactions whose date parses day-first and falls in
// the plausible-year window.
func (a *Analyzer) resolveDates(transactions []models.RawTransaction) []models.ParsedTransaction {
	now := a.now()
	parsed := make([]models.ParsedTransaction, 0, len(transactions))
	for _, tx := range transactions {
		t, err := dateutils.ParseDayFirstAt(tx.Date, now)
		if err != nil {
			a.logger.Debug("Dropping transaction with unparsable date",
				logging.F(logging.FieldDate, tx.Date),
				logging.F(logging.FieldReason, "unparsable"))
			continue
		}
		if !dateutils.IsPlausibleYear(t, now) {
			a.logger.Debug("Dropping transaction outside plausible years",
				logging.F(logging.FieldDate, tx.Date),
				logging.F(logging.FieldReason, "implausible_year"))
			continue
		}
		parsed = append(parsed, models.ParsedTransaction{RawTransaction: tx, Time: t})
	}
	return parsed
}

// SortByDate orders transactions chronologically by their day-first date.
// Unparsable dates come first; the sort is stable.
func SortByDate(transactions []models.RawTransaction) {
	keys := make(map[string]int64, len(transactions))
	for _, tx := range transactions {
		if _, ok := keys[tx.Date]; ok {
			continue
		}
		var key int64 = -1 << 62
		if t, err := dateutils.ParseDayFirst(tx.Date); err == nil {
			key = t.Unix()
		}
		keys[tx.Date] = key
	}
	sort.SliceStable(transactions, func(i, j int) bool {
		return keys[transactions[i].Date] < keys[transactions[j].Date]
	})
}
