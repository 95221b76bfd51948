package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/auth"
	"github.com/moneyjournal/backend/pkg/format"
	"github.com/moneyjournal/backend/pkg/httputil"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Transaction list
	{
		r.OPTIONS("/transactions", httputil.OptionsGet)
		r.GET("/transactions", co.GetTransactions)
		r.GET("/transactions/export", co.ExportTransactions)
		r.GET("/submitters", co.GetSubmitters)
	}

	// Single transaction
	{
		r.OPTIONS("/transaction", httputil.OptionsPost)
		r.POST("/transaction", co.CreateTransaction)
		r.OPTIONS("/transaction/:id", co.OptionsTransactionDetail)
		r.GET("/transaction/:id", co.GetTransaction)
		r.PUT("/transaction/:id", co.UpdateTransaction)
		r.DELETE("/transaction/:id", co.DeleteTransaction)
	}
}

// getTransaction returns the transaction with the ID from the path.
// It writes the error response when there is none.
func (co Controller) getTransaction(c *gin.Context) (models.Transaction, bool) {
	id, ok := idFromURI(c)
	if !ok {
		return models.Transaction{}, false
	}

	var transaction models.Transaction
	err := co.DB.Preload("SubmittedBy").First(&transaction, "id = ?", id.UUID).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return models.Transaction{}, false
	}

	return transaction, true
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/transaction/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	_, ok := co.getTransaction(c)
	if !ok {
		return
	}

	httputil.OptionsGetPutDelete(c)
}

// @Summary		Create transaction
// @Description	Records a new expense for the logged in user and sends the notification email
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/transaction [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	session, _ := auth.Current(c)

	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	transaction := models.Transaction{SubmittedByID: session.UserID}
	err = editable.apply(&transaction, co.location())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = co.DB.Omit(clause.Associations).Create(&transaction).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	co.notifier().TransactionCreated(transaction, session.Username)

	transaction.SubmittedBy.Username = session.Username
	data := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{
		Success: true,
		Message: "Transaction saved successfully!",
		Data:    &data,
	})
}

// @Summary		Get transactions
// @Description	Returns the transactions, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200		{object}	TransactionListResponse
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Month of the transactions, formatted as YYYY-MM"
// @Param			by		query		string	false	"Username of the submitter, \"all\" for every user"
// @Param			type	query		string	false	"Category of the transactions, \"all\" for every category"
// @Router			/api/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	transactions, ok := co.findTransactions(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Success: true,
		Data:    newTransactions(transactions),
	})
}

// findTransactions binds the query filter and returns the matching transactions.
// It writes the error response on failure.
func (co Controller) findTransactions(c *gin.Context) ([]models.Transaction, bool) {
	var query TransactionQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		httputil.ErrorInvalidQueryString(c)
		return nil, false
	}

	filter := models.TransactionFilter{
		SubmittedBy: query.By,
		Type:        query.Type,
	}

	if query.Month != "" {
		month, err := types.ParseMonth(query.Month, co.location())
		if err != nil {
			httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidMonthQuery)
			return nil, false
		}
		filter.Month = month
	}

	transactions, err := models.FindTransactions(co.DB, filter)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return nil, false
	}

	return transactions, true
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/transaction/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, ok := co.getTransaction(c)
	if !ok {
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{Success: true, Data: &data})
}

// @Summary		Update transaction
// @Description	Replaces all editable fields of a transaction. The submitter is never changed.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	httputil.HTTPError
// @Failure		401			{object}	httputil.HTTPError
// @Failure		404			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/api/transaction/{id} [put]
func (co Controller) UpdateTransaction(c *gin.Context) {
	transaction, ok := co.getTransaction(c)
	if !ok {
		return
	}

	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = editable.apply(&transaction, co.location())
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	err = co.DB.Omit(clause.Associations).Save(&transaction).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusOK, TransactionResponse{
		Success: true,
		Message: "Transaction updated successfully!",
		Data:    &data,
	})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	MessageResponse
// @Failure		400	{object}	httputil.HTTPError
// @Failure		401	{object}	httputil.HTTPError
// @Failure		404	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/api/transaction/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	transaction, ok := co.getTransaction(c)
	if !ok {
		return
	}

	err := co.DB.Delete(&transaction).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Transaction deleted successfully!"})
}

// @Summary		Get submitters
// @Description	Returns the usernames of all users that recorded at least one transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	SubmitterListResponse
// @Failure		401	{object}	httputil.HTTPError
// @Failure		500	{object}	httputil.HTTPError
// @Router			/api/submitters [get]
func (co Controller) GetSubmitters(c *gin.Context) {
	submitters, err := models.Submitters(co.DB)
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.JSON(http.StatusOK, SubmitterListResponse{Success: true, Data: submitters})
}

// @Summary		Export transactions
// @Description	Returns the filtered transactions as CSV file
// @Tags			Transactions
// @Produce		text/csv
// @Success		200
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			month	query		string	false	"Month of the transactions, formatted as YYYY-MM"
// @Param			by		query		string	false	"Username of the submitter, \"all\" for every user"
// @Param			type	query		string	false	"Category of the transactions, \"all\" for every category"
// @Router			/api/transactions/export [get]
func (co Controller) ExportTransactions(c *gin.Context) {
	transactions, ok := co.findTransactions(c)
	if !ok {
		return
	}

	filename := "transactions.csv"
	if month := c.Query("month"); month != "" {
		filename = fmt.Sprintf("transactions-%s.csv", month)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Type", "Pocket", "Note", "Amount", "Paid By", "Submitted By"})
	for _, t := range newTransactions(transactions) {
		_ = w.Write([]string{
			format.Date(t.Date, co.location()),
			t.Type,
			t.Pocket,
			csvText(t.Note),
			t.Amount.StringFixed(0),
			t.PaidBy,
			csvText(t.Submitter),
		})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("writing CSV export: %v", err)
	}
}

// csvText keeps spreadsheets from reading free text as a formula.
func csvText(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}
