package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/pkg/auth"
	"github.com/moneyjournal/backend/pkg/budgeting"
	"github.com/moneyjournal/backend/pkg/format"
	"github.com/moneyjournal/backend/pkg/httputil"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/shopspring/decimal"
)

// BudgetEditable contains the fields to set a pocket budget.
type BudgetEditable struct {
	Pocket string          `json:"pocket" example:"Kwintals"`
	Month  int             `json:"month" example:"10" minimum:"1" maximum:"12"`
	Year   int             `json:"year" example:"2026"`
	Budget decimal.Decimal `json:"budget" example:"1500000"` // Amount of the budget. Must not be negative.
}

// Budget is the API representation of a stored budget.
type Budget struct {
	ID              string          `json:"id" example:"2d7b3c8a-6c5f-4b2e-9b1e-0f8e9a7c6d5b"`
	Pocket          string          `json:"pocket" example:"Kwintals"`
	Icon            string          `json:"icon" example:"💰"`
	Month           int             `json:"month" example:"10"`
	Year            int             `json:"year" example:"2026"`
	Amount          decimal.Decimal `json:"amount" example:"1500000"`
	FormattedAmount string          `json:"formattedAmount" example:"Rp 1.500.000"`
}

func newBudget(b models.Budget) Budget {
	return Budget{
		ID:              b.ID.String(),
		Pocket:          b.Pocket,
		Icon:            registry.PocketIcon(b.Pocket),
		Month:           b.Month,
		Year:            b.Year,
		Amount:          b.Amount,
		FormattedAmount: format.Currency(b.Amount),
	}
}

// BudgetPeriod is the sum of all budgets of one month.
type BudgetPeriod struct {
	Year           int             `json:"year" example:"2026"`
	Month          int             `json:"month" example:"10"`
	MonthLabel     string          `json:"monthLabel" example:"Oktober 2026"`
	TotalBudget    decimal.Decimal `json:"totalBudget" example:"5000000"`
	FormattedTotal string          `json:"formattedTotal" example:"Rp 5.000.000"`
	PocketCount    int             `json:"pocketCount" example:"4"` // Number of pockets with a budget
}

type BudgetViewResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    budgeting.View `json:"data"`
}

type BudgetResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Budget saved"`
	Data    Budget `json:"data"`
}

type BudgetHistoryResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    []BudgetPeriod `json:"data"`
}

// RegisterBudgetRoutes registers the routes for budgets with
// the RouterGroup that is passed.
func (co Controller) RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", co.GetBudget)
	r.POST("", co.SaveBudget)

	r.OPTIONS("/history", httputil.OptionsGet)
	r.GET("/history", co.GetBudgetHistory)

	r.OPTIONS("/:id", httputil.OptionsDelete)
	r.DELETE("/:id", co.DeleteBudget)
}

// @Summary		Get budget overview
// @Description	Returns the budget, spending and status of every pocket for a month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	BudgetViewResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Month, formatted as YYYY-MM. Defaults to the current month."
// @Router			/api/budget [get]
func (co Controller) GetBudget(c *gin.Context) {
	session, _ := auth.Current(c)

	month, err := httputil.MonthFromQuery(c, co.location(), co.now())
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	budgets, err := models.BudgetsForMonth(co.DB, month)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	transactions, err := models.FindTransactions(co.DB, models.TransactionFilter{Month: month})
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	view := budgeting.BuildView(registry.Pockets(), budgets, transactions)
	view.Month = month.Number()
	view.Year = month.Year()
	view.CanEdit = co.budgets().CanEdit(session.Role, month)

	c.JSON(http.StatusOK, BudgetViewResponse{Success: true, Data: view})
}

// @Summary		Save budget
// @Description	Creates or replaces the budget of a pocket for a month.
// @Description	Only the budget owner can do this, and only for the current and the next month.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		403		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/api/budget [post]
func (co Controller) SaveBudget(c *gin.Context) {
	session, _ := auth.Current(c)

	var editable BudgetEditable
	if err := httputil.BindData(c, &editable); err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	editor := budgeting.Editor{ID: session.UserID, Role: session.Role}
	budget, err := co.budgets().Save(editor, editable.Pocket, editable.Month, editable.Year, editable.Budget)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{
		Success: true,
		Message: "Budget saved",
		Data:    newBudget(budget),
	})
}

// @Summary		Delete budget
// @Description	Deletes a budget. Budgets of past months cannot be deleted.
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		403	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/budget/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	session, _ := auth.Current(c)

	id, ok := idFromURI(c)
	if !ok {
		return
	}

	editor := budgeting.Editor{ID: session.UserID, Role: session.Role}
	err := co.budgets().Delete(editor, id.UUID)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Budget deleted"})
}

// @Summary		Get budget history
// @Description	Returns the budget totals of all months, most recent first
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetHistoryResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/budget/history [get]
func (co Controller) GetBudgetHistory(c *gin.Context) {
	periods, err := models.BudgetHistory(co.DB)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	data := make([]BudgetPeriod, 0, len(periods))
	for _, p := range periods {
		data = append(data, BudgetPeriod{
			Year:           p.Year,
			Month:          p.Month,
			MonthLabel:     format.MonthLabel(p.Month, p.Year),
			TotalBudget:    p.Total,
			FormattedTotal: format.Currency(p.Total),
			PocketCount:    p.PocketCount,
		})
	}

	c.JSON(http.StatusOK, BudgetHistoryResponse{Success: true, Data: data})
}
