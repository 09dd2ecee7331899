package batch

import (
	"testing"

	"fjacquet/statement-risk/internal/logging"
	"fjacquet/statement-risk/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEntityName(t *testing.T) {
	docs := []models.Document{
		{Text: "no name here"},
		{Text: "Account Name: Jane Doe"},
		{Text: "Gamma Enterprise"},
	}

	assert.Equal(t, "Jane Doe", EntityName(docs, "Fallback"))
	assert.Equal(t, "Fallback", EntityName(docs[:1], "Fallback"))
	assert.Equal(t, "Fallback", EntityName(nil, "Fallback"))
}

func TestRawText(t *testing.T) {
	docs := []models.Document{{Text: "page one"}, {Text: "page two\n"}}
	assert.Equal(t, "page one\n\npage two", RawText(docs))
	assert.Equal(t, "", RawText(nil))
}

func TestConcatenate(t *testing.T) {
	a := []models.RawTransaction{{Description: "a1"}, {Description: "a2"}}
	b := []models.RawTransaction{{Description: "b1"}}

	merged := Concatenate([][]models.RawTransaction{a, nil, b})

	assert.Equal(t, []models.RawTransaction{{Description: "a1"}, {Description: "a2"}, {Description: "b1"}}, merged)
	assert.Empty(t, Concatenate(nil))
}

func TestDetectDuplicates(t *testing.T) {
	mock := logging.NewMockLogger()
	txns := []models.RawTransaction{
		{Date: "01/06/2024", Description: "Payment from Alpha", Inflow: decimal.NewFromInt(100)},
		{Date: "01/06/2024", Description: "PAYMENT FROM ALPHA ", Inflow: decimal.RequireFromString("100.00")},
		{Date: "01/06/2024", Description: "Payment from Alpha", Inflow: decimal.NewFromInt(200)},
		{Date: "02/06/2024", Description: "Payment from Alpha", Inflow: decimal.NewFromInt(100)},
	}

	count := DetectDuplicates(txns, mock)

	assert.Equal(t, 1, count)
	assert.Len(t, txns, 4, "duplicates are kept")
	assert.True(t, mock.HasEntry("WARN", "Potential duplicate transaction"))
	assert.True(t, mock.HasEntry("WARN", "Found potential duplicate transactions"))

	quiet := logging.NewMockLogger()
	assert.Equal(t, 0, DetectDuplicates(txns[2:], quiet))
	assert.Empty(t, quiet.GetEntries())
}
