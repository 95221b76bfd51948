// Package budgeting reconciles pocket budgets with the actual spending and
// guards changes to budgets.
package budgeting

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/aggregation"
	"github.com/moneyjournal/backend/pkg/format"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var (
	ErrNotBudgetOwner   = errors.New("only the budget owner can change budgets")
	ErrMonthNotEditable = errors.New("cannot edit past months, only the current or next month is allowed")
)

// Status of a pocket or of the whole month.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusDanger  Status = "danger"
)

// IsEditableMonth reports whether budgets for the month may be changed at
// the reference time. Only the month of the reference time and the month
// after it are editable.
func IsEditableMonth(month, year int, reference time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}

	target := types.NewMonthIn(year, time.Month(month), reference.Location())
	current := types.MonthOf(reference)

	return !target.Before(current) && !current.AddDate(0, 1).Before(target)
}

// PocketStatus returns the status for a spending percentage.
func PocketStatus(percentage int64) Status {
	switch {
	case percentage >= 90:
		return StatusDanger
	case percentage >= 70:
		return StatusWarning
	default:
		return StatusGood
	}
}

// Health is the overall state of the month.
type Health struct {
	Status Status `json:"status" example:"good"`
	Emoji  string `json:"emoji" example:"🟢"`
	Label  string `json:"label" example:"On Track"`
}

// HealthOf returns the health for the overall spending percentage.
func HealthOf(percentage int64) Health {
	switch {
	case percentage >= 100:
		return Health{Status: StatusDanger, Emoji: "🔴", Label: "Over Budget"}
	case percentage >= 70:
		return Health{Status: StatusWarning, Emoji: "🟡", Label: "Caution"}
	default:
		return Health{Status: StatusGood, Emoji: "🟢", Label: "On Track"}
	}
}

// PocketView is the budget and spending of one pocket.
type PocketView struct {
	ID                 *uuid.UUID      `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the stored budget, null if none is set
	Pocket             string          `json:"pocket" example:"Kwintals"`
	Icon               string          `json:"icon" example:"💰"`
	Budget             decimal.Decimal `json:"budget" example:"1000000"`
	Spent              decimal.Decimal `json:"spent" example:"250000"`
	Remaining          decimal.Decimal `json:"remaining" example:"750000"`
	Percentage         int64           `json:"percentage" example:"25"`
	Status             Status          `json:"status" example:"good"`
	IsOver             bool            `json:"isOver" example:"false"`
	FormattedBudget    string          `json:"formattedBudget" example:"Rp 1.000.000"`
	FormattedSpent     string          `json:"formattedSpent" example:"Rp 250.000"`
	FormattedRemaining string          `json:"formattedRemaining" example:"Rp 750.000"`
}

// View is the budget overview of a month.
type View struct {
	Month                   int             `json:"month" example:"10"`
	Year                    int             `json:"year" example:"2026"`
	CanEdit                 bool            `json:"canEdit" example:"true"`
	Pockets                 []PocketView    `json:"pockets"`
	TotalBudget             decimal.Decimal `json:"totalBudget" example:"1000000"`
	TotalSpent              decimal.Decimal `json:"totalSpent" example:"250000"`
	TotalRemaining          decimal.Decimal `json:"totalRemaining" example:"750000"`
	OverallPercentage       int64           `json:"overallPercentage" example:"25"`
	IsOverBudget            bool            `json:"isOverBudget" example:"false"`
	Health                  Health          `json:"health"`
	FormattedTotal          string          `json:"formattedTotal" example:"Rp 1.000.000"`
	FormattedTotalSpent     string          `json:"formattedTotalSpent" example:"Rp 250.000"`
	FormattedTotalRemaining string          `json:"formattedTotalRemaining" example:"Rp 750.000"`
}

// BuildView computes the budget view for all pockets of the registry,
// including pockets without a budget.
func BuildView(pockets []registry.Entry, budgets []models.Budget, transactions []models.Transaction) View {
	stored := make(map[string]models.Budget, len(budgets))
	for _, b := range budgets {
		stored[b.Pocket] = b
	}
	spending := aggregation.SpendingByPocket(transactions)

	view := View{
		Pockets:     make([]PocketView, 0, len(pockets)),
		TotalBudget: decimal.Zero,
		TotalSpent:  decimal.Zero,
	}

	for _, pocket := range pockets {
		pv := PocketView{
			Pocket: pocket.Name,
			Icon:   pocket.Icon,
			Budget: decimal.Zero,
			Spent:  spending[pocket.Name],
		}

		if b, ok := stored[pocket.Name]; ok {
			id := b.ID
			pv.ID = &id
			pv.Budget = b.Amount
		}

		pv.Remaining = pv.Budget.Sub(pv.Spent)
		pv.Percentage = aggregation.Percentage(pv.Spent, pv.Budget)
		pv.Status = PocketStatus(pv.Percentage)
		pv.IsOver = pv.Spent.GreaterThan(pv.Budget)
		pv.FormattedBudget = format.Currency(pv.Budget)
		pv.FormattedSpent = format.Currency(pv.Spent)
		pv.FormattedRemaining = format.Currency(pv.Remaining)

		view.TotalBudget = view.TotalBudget.Add(pv.Budget)
		view.TotalSpent = view.TotalSpent.Add(pv.Spent)
		view.Pockets = append(view.Pockets, pv)
	}

	view.TotalRemaining = view.TotalBudget.Sub(view.TotalSpent)
	view.OverallPercentage = aggregation.Percentage(view.TotalSpent, view.TotalBudget)
	view.IsOverBudget = view.TotalSpent.GreaterThan(view.TotalBudget)
	view.Health = HealthOf(view.OverallPercentage)
	view.FormattedTotal = format.Currency(view.TotalBudget)
	view.FormattedTotalSpent = format.Currency(view.TotalSpent)
	view.FormattedTotalRemaining = format.Currency(view.TotalRemaining)

	return view
}

// Alert warns about a pocket that is close to or over its budget.
type Alert struct {
	Pocket     string          `json:"pocket" example:"Kwintals"`
	Icon       string          `json:"icon" example:"💰"`
	Budget     decimal.Decimal `json:"budget" example:"100000"`
	Spent      decimal.Decimal `json:"spent" example:"85000"`
	Percentage int64           `json:"percentage" example:"85"`
	Status     Status          `json:"status" example:"warning"`
	Message    string          `json:"message" example:"Kwintals is at 85% of its budget"`
}

// Alerts returns an alert for each budget with a positive amount whose
// spending has reached 80 percent. Danger alerts come first.
func Alerts(budgets []models.Budget, spending map[string]decimal.Decimal) []Alert {
	alerts := []Alert{}

	for _, b := range budgets {
		if !b.Amount.IsPositive() {
			continue
		}

		spent := spending[b.Pocket]
		percentage := aggregation.Percentage(spent, b.Amount)

		alert := Alert{
			Pocket:     b.Pocket,
			Icon:       registry.PocketIcon(b.Pocket),
			Budget:     b.Amount,
			Spent:      spent,
			Percentage: percentage,
		}

		switch {
		case percentage >= 100:
			alert.Status = StatusDanger
			alert.Message = fmt.Sprintf("%s is over budget (%d%%)", b.Pocket, percentage)
		case percentage >= 80:
			alert.Status = StatusWarning
			alert.Message = fmt.Sprintf("%s is at %d%% of its budget", b.Pocket, percentage)
		default:
			continue
		}

		alerts = append(alerts, alert)
	}

	slices.SortStableFunc(alerts, func(a, b Alert) int {
		return severity(b.Status) - severity(a.Status)
	})

	return alerts
}

func severity(s Status) int {
	switch s {
	case StatusDanger:
		return 2
	case StatusWarning:
		return 1
	default:
		return 0
	}
}

// Editor is the user changing a budget.
type Editor struct {
	ID   uuid.UUID
	Role string
}

// Service changes budgets. Changes are allowed for the owner role only and
// only within the editable months.
type Service struct {
	DB        *gorm.DB
	OwnerRole string
	Now       func() time.Time
}

func (s Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// CanEdit reports whether the editor role may change budgets for the month.
func (s Service) CanEdit(role string, month types.Month) bool {
	return role == s.OwnerRole && IsEditableMonth(month.Number(), month.Year(), s.now())
}

// Save creates or replaces the budget for the pocket and month.
func (s Service) Save(editor Editor, pocket string, month, year int, amount decimal.Decimal) (models.Budget, error) {
	if editor.Role != s.OwnerRole {
		return models.Budget{}, ErrNotBudgetOwner
	}

	if !IsEditableMonth(month, year, s.now()) {
		return models.Budget{}, ErrMonthNotEditable
	}

	if !registry.IsPocket(pocket) {
		return models.Budget{}, models.ErrInvalidPocket
	}

	return models.UpsertBudget(s.DB, models.Budget{
		Pocket:      pocket,
		Month:       month,
		Year:        year,
		Amount:      amount,
		CreatedByID: editor.ID,
	})
}

// Delete removes a budget as long as its month is still editable.
func (s Service) Delete(editor Editor, id uuid.UUID) error {
	if editor.Role != s.OwnerRole {
		return ErrNotBudgetOwner
	}

	var budget models.Budget
	err := s.DB.First(&budget, "id = ?", id).Error
	if err != nil {
		return err
	}

	if !IsEditableMonth(budget.Month, budget.Year, s.now()) {
		return ErrMonthNotEditable
	}

	return s.DB.Delete(&budget).Error
}
