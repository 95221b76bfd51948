package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/aggregation"
	"github.com/moneyjournal/backend/pkg/budgeting"
	"github.com/moneyjournal/backend/pkg/charts"
	"github.com/moneyjournal/backend/pkg/format"
	"github.com/moneyjournal/backend/pkg/httputil"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// RecentTransactionCount is the number of transactions in the dashboard summary.
const RecentTransactionCount = 5

type Total struct {
	Raw       decimal.Decimal `json:"raw" example:"100000"`
	Formatted string          `json:"formatted" example:"Rp 100.000"`
}

// Summary is the dashboard of a month.
type Summary struct {
	Month              int                         `json:"month" example:"10"`
	Year               int                         `json:"year" example:"2026"`
	Total              Total                       `json:"total"`
	CategoryBreakdown  []aggregation.CategoryShare `json:"categoryBreakdown"`
	RoleBreakdown      []aggregation.RoleShare     `json:"roleBreakdown"`
	RecentTransactions []Transaction               `json:"recentTransactions"`
	Comparison         aggregation.Comparison      `json:"comparison"`
	BudgetAlerts       []budgeting.Alert           `json:"budgetAlerts"`
}

type SummaryResponse struct {
	Success bool    `json:"success" example:"true"`
	Data    Summary `json:"data"`
}

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func (co Controller) RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", co.GetSummary)

	r.OPTIONS("/chart.png", httputil.OptionsGet)
	r.GET("/chart.png", co.GetCategoryChart)
}

// monthTransactions returns the month from the query and all of its transactions.
// It writes the error response on failure.
func (co Controller) monthTransactions(c *gin.Context) (types.Month, []models.Transaction, bool) {
	month, err := httputil.MonthFromQuery(c, co.location(), co.now())
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return types.Month{}, nil, false
	}

	transactions, err := models.FindTransactions(co.DB, models.TransactionFilter{Month: month})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return types.Month{}, nil, false
	}

	return month, transactions, true
}

// @Summary		Get dashboard summary
// @Description	Returns the totals, breakdowns, recent transactions, comparison with the previous month and budget alerts for a month
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	SummaryResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Month, formatted as YYYY-MM. Defaults to the current month."
// @Router			/api/dashboard/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	month, transactions, ok := co.monthTransactions(c)
	if !ok {
		return
	}

	previous, err := models.FindTransactions(co.DB, models.TransactionFilter{Month: month.AddDate(0, -1)})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	recent, err := models.RecentTransactions(co.DB, month, RecentTransactionCount)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	budgets, err := models.BudgetsForMonth(co.DB, month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	total := aggregation.TotalOf(transactions)

	c.JSON(http.StatusOK, SummaryResponse{
		Success: true,
		Data: Summary{
			Month:              month.Number(),
			Year:               month.Year(),
			Total:              Total{Raw: total, Formatted: format.Currency(total)},
			CategoryBreakdown:  aggregation.CategoryBreakdown(transactions),
			RoleBreakdown:      aggregation.RoleBreakdown(transactions),
			RecentTransactions: newTransactions(recent),
			Comparison:         aggregation.MonthOverMonth(total, aggregation.TotalOf(previous)),
			BudgetAlerts:       budgeting.Alerts(budgets, aggregation.SpendingByPocket(transactions)),
		},
	})
}

// @Summary		Get category chart
// @Description	Returns a pie chart of the spending per category as PNG. If there is no spending in the month, the response is empty.
// @Tags			Dashboard
// @Produce		png
// @Success		200
// @Success		204
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Month, formatted as YYYY-MM. Defaults to the current month."
// @Router			/api/dashboard/chart.png [get]
func (co Controller) GetCategoryChart(c *gin.Context) {
	_, transactions, ok := co.monthTransactions(c)
	if !ok {
		return
	}

	png, err := charts.CategoryPie(aggregation.CategoryBreakdown(transactions))
	if err != nil {
		httputil.NewError(c, http.StatusInternalServerError, err)
		return
	}

	if png == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
