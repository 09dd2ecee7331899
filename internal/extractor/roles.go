package extractor

import (
	"fjacquet/statement-risk/internal/textutils"
)

// Role is the meaning assigned to a table column.
type Role int

const (
	RoleNone Role = iota
	RoleDate
	RoleDebit
	RoleCredit
	RoleAmount
	RoleDescription
)

func (r Role) String() string {
	switch r {
	case RoleDate:
		return "date"
	case RoleDebit:
		return "debit"
	case RoleCredit:
		return "credit"
	case RoleAmount:
		return "amount"
	case RoleDescription:
		return "description"
	default:
		return "none"
	}
}

// Header keyword sets. Matching is case-insensitive substring containment.
var (
	DateKeywords        = []string{"date", "txn date", "posting date"}
	AmountKeywords      = []string{"amount", "debit", "credit", "withdrawal", "deposit", "balance"}
	DescriptionKeywords = []string{"description", "details", "particulars", "transaction"}
	DebitKeywords       = []string{"debit", "withdrawal", "out"}
	CreditKeywords      = []string{"credit", "deposit", "in"}
)

type roleRule struct {
	role    Role
	matches func(header string) bool
}

func keywordRule(role Role, keywords []string) roleRule {
	return roleRule{
		role: role,
		matches: func(header string) bool {
			return textutils.ContainsAny(header, keywords)
		},
	}
}

// roleRules is evaluated top to bottom; the first matching rule decides the role.
var roleRules = []roleRule{
	keywordRule(RoleDate, DateKeywords),
	keywordRule(RoleDebit, DebitKeywords),
	keywordRule(RoleCredit, CreditKeywords),
	keywordRule(RoleAmount, []string{"amount"}),
	keywordRule(RoleDescription, DescriptionKeywords),
}

// RoleForHeader returns the role of a single header cell.
func RoleForHeader(header string) Role {
	for _, rule := range roleRules {
		if rule.matches(header) {
			return rule.role
		}
	}
	return RoleNone
}

// ColumnMap holds the column index of each mapped role.
type ColumnMap map[Role]int

// MapColumns assigns roles to header cells. When several cells share a role the
// rightmost one is kept.
func MapColumns(headers []string) ColumnMap {
	cols := ColumnMap{}
	for idx, h := range headers {
		if role := RoleForHeader(h); role != RoleNone {
			cols[role] = idx
		}
	}
	return cols
}

// Has reports whether role is mapped.
func (c ColumnMap) Has(role Role) bool {
	_, ok := c[role]
	return ok
}

// isMapped reports whether column idx carries any role.
func (c ColumnMap) isMapped(idx int) bool {
	for _, i := range c {
		if i == idx {
			return true
		}
	}
	return false
}
