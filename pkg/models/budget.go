package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the spending cap for one pocket in one month.
type Budget struct {
	DefaultModel
	Pocket      string          `gorm:"uniqueIndex:idx_budget_period;not null"`
	Month       int             `gorm:"uniqueIndex:idx_budget_period;not null"`
	Year        int             `gorm:"uniqueIndex:idx_budget_period;not null"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	CreatedByID uuid.UUID       `gorm:"type:uuid"`
	CreatedBy   User
}

// BeforeSave validates the budget.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Pocket = strings.TrimSpace(b.Pocket)

	if !registry.IsPocket(b.Pocket) {
		return ErrInvalidPocket
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrInvalidMonth
	}

	return validateAmount(b.Amount)
}

// UpsertBudget creates the budget for its pocket and month or replaces the
// amount of the existing one. Concurrent writes for the same key resolve to
// the last write.
func UpsertBudget(db *gorm.DB, budget Budget) (Budget, error) {
	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "pocket"}, {Name: "month"}, {Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"amount", "created_by_id", "updated_at"}),
	}).Create(&budget).Error
	if err != nil {
		return Budget{}, err
	}

	// On conflict, the ID generated for the new row is not the one stored
	var stored Budget
	err = db.Where(&Budget{Pocket: budget.Pocket, Month: budget.Month, Year: budget.Year}).First(&stored).Error
	return stored, err
}

// BudgetsForMonth returns all budgets set for the month.
func BudgetsForMonth(db *gorm.DB, month types.Month) ([]Budget, error) {
	var budgets []Budget
	err := db.Where(&Budget{Month: month.Number(), Year: month.Year()}).Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// BudgetPeriod is the sum of all budgets set for one month.
type BudgetPeriod struct {
	Year        int
	Month       int
	Total       decimal.Decimal
	PocketCount int
}

// BudgetHistory returns the budget totals of all months that have budgets,
// most recent month first.
func BudgetHistory(db *gorm.DB) ([]BudgetPeriod, error) {
	type row struct {
		Year        int
		Month       int
		PocketCount int
	}

	var rows []row
	err := db.Model(&Budget{}).
		Select("year, month, COUNT(*) AS pocket_count").
		Group("year, month").
		Order("year DESC, month DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	// Sums are computed with decimal arithmetic since SQLite
	// would return floating point numbers
	var budgets []Budget
	err = db.Select("year, month, amount").Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	totals := make(map[[2]int]decimal.Decimal, len(rows))
	for _, b := range budgets {
		key := [2]int{b.Year, b.Month}
		totals[key] = totals[key].Add(b.Amount)
	}

	periods := make([]BudgetPeriod, 0, len(rows))
	for _, r := range rows {
		periods = append(periods, BudgetPeriod{
			Year:        r.Year,
			Month:       r.Month,
			Total:       totals[[2]int{r.Year, r.Month}],
			PocketCount: r.PocketCount,
		})
	}

	return periods, nil
}
