// Package aggregation summarizes the transactions of a month.
//
// All functions are pure. They never modify their input and are safe
// for concurrent use.
package aggregation

import (
	"github.com/moneyjournal/backend/pkg/format"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

var hundred = decimal.NewFromInt(100)

// CategoryShare is the spending for one category.
type CategoryShare struct {
	Category       string          `json:"category" example:"Eat"`
	Icon           string          `json:"icon" example:"🍽️"`
	Total          decimal.Decimal `json:"total" example:"75000"`
	FormattedTotal string          `json:"formattedTotal" example:"Rp 75.000"`
	Percentage     int64           `json:"percentage" example:"75"`
}

// RoleShare is the spending paid by one household role.
type RoleShare struct {
	Role           string          `json:"role" example:"Wife"`
	Total          decimal.Decimal `json:"total" example:"25000"`
	FormattedTotal string          `json:"formattedTotal" example:"Rp 25.000"`
	Percentage     int64           `json:"percentage" example:"25"`
}

// Comparison compares the spending of a month with the month before.
type Comparison struct {
	CurrentTotal        decimal.Decimal `json:"currentTotal" example:"120000"`
	PreviousTotal       decimal.Decimal `json:"previousTotal" example:"100000"`
	Difference          decimal.Decimal `json:"difference" example:"20000"` // Absolute difference
	PercentChange       int64           `json:"percentChange" example:"20"` // Absolute change in percent
	Increased           bool            `json:"increased" example:"true"`   // Whether the current month is higher
	FormattedPrevious   string          `json:"formattedPrevious" example:"Rp 100.000"`
	FormattedDifference string          `json:"formattedDifference" example:"Rp 20.000"`
}

// TotalOf returns the sum of all amounts.
func TotalOf(transactions []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// Percentage returns part as a rounded percentage of total.
// It is 0 when total is 0.
func Percentage(part, total decimal.Decimal) int64 {
	if total.IsZero() {
		return 0
	}
	return part.Div(total).Mul(hundred).Round(0).IntPart()
}

// group sums the amounts per key, keeping the order in which
// the keys are first encountered.
func group(transactions []models.Transaction, key func(models.Transaction) string) ([]string, map[string]decimal.Decimal) {
	var order []string
	sums := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		k := key(t)
		sum, ok := sums[k]
		if !ok {
			order = append(order, k)
		}
		sums[k] = sum.Add(t.Amount)
	}

	return order, sums
}

// CategoryBreakdown returns the spending per category, highest total first.
// Categories with equal totals keep the order they first appear in.
func CategoryBreakdown(transactions []models.Transaction) []CategoryShare {
	order, sums := group(transactions, func(t models.Transaction) string {
		if t.Type == "" {
			return "Others"
		}
		return t.Type
	})
	total := TotalOf(transactions)

	breakdown := make([]CategoryShare, 0, len(order))
	for _, category := range order {
		breakdown = append(breakdown, CategoryShare{
			Category:       category,
			Icon:           registry.CategoryIcon(category),
			Total:          sums[category],
			FormattedTotal: format.Currency(sums[category]),
			Percentage:     Percentage(sums[category], total),
		})
	}

	slices.SortStableFunc(breakdown, func(a, b CategoryShare) int {
		return b.Total.Cmp(a.Total)
	})

	return breakdown
}

// RoleBreakdown returns the spending per payer. Transactions without a payer
// count as paid by Self. The household roles come first in their fixed order,
// followed by any other payer in order of appearance.
func RoleBreakdown(transactions []models.Transaction) []RoleShare {
	order, sums := group(transactions, func(t models.Transaction) string {
		if t.PaidBy == "" {
			return registry.RoleSelf
		}
		return t.PaidBy
	})
	total := TotalOf(transactions)

	roles := registry.Roles()
	for _, role := range order {
		if !slices.Contains(roles, role) {
			roles = append(roles, role)
		}
	}

	breakdown := make([]RoleShare, 0, len(sums))
	for _, role := range roles {
		sum, ok := sums[role]
		if !ok {
			continue
		}

		breakdown = append(breakdown, RoleShare{
			Role:           role,
			Total:          sum,
			FormattedTotal: format.Currency(sum),
			Percentage:     Percentage(sum, total),
		})
	}

	return breakdown
}

// MonthOverMonth compares the totals of two months.
//
// The percent change is relative to the previous total. When the previous
// total is 0, it is 100 if there is any spending in the current month and 0
// otherwise.
func MonthOverMonth(current, previous decimal.Decimal) Comparison {
	difference := current.Sub(previous).Abs()

	var change int64
	switch {
	case !previous.IsZero():
		change = Percentage(difference, previous.Abs())
	case current.IsPositive():
		change = 100
	}

	return Comparison{
		CurrentTotal:        current,
		PreviousTotal:       previous,
		Difference:          difference,
		PercentChange:       change,
		Increased:           current.GreaterThan(previous),
		FormattedPrevious:   format.Currency(previous),
		FormattedDifference: format.Currency(difference),
	}
}

// SpendingByPocket sums the amounts per pocket.
func SpendingByPocket(transactions []models.Transaction) map[string]decimal.Decimal {
	_, sums := group(transactions, func(t models.Transaction) string {
		return t.Pocket
	})
	return sums
}
