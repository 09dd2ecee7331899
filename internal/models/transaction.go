// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawTransaction is a single row recovered from an OCR'd statement table.
// Date is kept exactly as it appeared in the cell; resolving it is the analyzer's job.
type RawTransaction struct {
	Date        string          `csv:"Date" json:"date" yaml:"date"`
	Description string          `csv:"Description" json:"description" yaml:"description"`
	Inflow      decimal.Decimal `csv:"Inflow" json:"inflow" yaml:"inflow"`
	Outflow     decimal.Decimal `csv:"Outflow" json:"outflow" yaml:"outflow"`
}

// IsEmpty reports whether the transaction carries no money in either direction.
func (t RawTransaction) IsEmpty() bool {
	return !t.Inflow.IsPositive() && !t.Outflow.IsPositive()
}

// IsCredit returns true when money came in.
func (t RawTransaction) IsCredit() bool {
	return t.Inflow.IsPositive()
}

// IsDebit returns true when money went out.
func (t RawTransaction) IsDebit() bool {
	return t.Outflow.IsPositive()
}

// ParsedTransaction is a RawTransaction whose date resolved to a plausible calendar day.
type ParsedTransaction struct {
	RawTransaction
	Time time.Time
}

// MonthKey identifies a calendar month. Year is part of the key so that
// statements spanning several years do not collapse into twelve buckets.
type MonthKey struct {
	Year  int
	Month time.Month
}

// NewMonthKey returns the month key of t.
func NewMonthKey(t time.Time) MonthKey {
	return MonthKey{Year: t.Year(), Month: t.Month()}
}

// Before orders month keys chronologically.
func (k MonthKey) Before(other MonthKey) bool {
	if k.Year != other.Year {
		return k.Year < other.Year
	}
	return k.Month < other.Month
}

// Label returns the abbreviated month name, e.g. "Jun".
func (k MonthKey) Label() string {
	return k.Month.String()[:3]
}
