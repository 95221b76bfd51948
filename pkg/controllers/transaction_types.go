package controllers

import (
	"time"

	"github.com/google/uuid"
	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/format"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/shopspring/decimal"
)

// TransactionEditable contains the fields of a transaction that clients set.
type TransactionEditable struct {
	Date   string          `json:"date" example:"2026-10-19T12:30"` // Date of the expense. RFC3339 or a local date and time. Defaults to now.
	Type   string          `json:"type" example:"Groceries"`        // Category of the expense
	Pocket string          `json:"pocket" example:"Groceries"`      // Pocket the expense is paid from
	Note   string          `json:"note" example:"Weekly shopping"`  // What the money was spent on
	Amount decimal.Decimal `json:"amount" example:"150000"`         // Amount spent
	PaidBy string          `json:"paidBy" example:"Wife"`           // Household role that paid. Defaults to Self.
}

// apply sets the editable fields on the transaction.
func (e TransactionEditable) apply(t *models.Transaction, loc *time.Location) error {
	date, err := types.ParseDate(e.Date, loc)
	if err != nil {
		return err
	}

	t.Date = date
	t.Type = e.Type
	t.Pocket = e.Pocket
	t.Note = e.Note
	t.Amount = e.Amount
	t.PaidBy = e.PaidBy
	return nil
}

// Transaction is the API representation of a transaction.
type Transaction struct {
	ID              uuid.UUID       `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"`
	Date            time.Time       `json:"date" example:"2026-10-19T05:30:00Z"`
	Type            string          `json:"type" example:"Groceries"`
	Pocket          string          `json:"pocket" example:"Groceries"`
	Note            string          `json:"note" example:"Weekly shopping"`
	Amount          decimal.Decimal `json:"amount" example:"150000"`
	FormattedAmount string          `json:"formattedAmount" example:"Rp 150.000"`
	PaidBy          string          `json:"paidBy" example:"Wife"`
	SubmittedBy     uuid.UUID       `json:"submittedBy" example:"0f6d4cd8-7f6e-4e6c-9b8a-1c2d3e4f5a6b"` // ID of the user that recorded the transaction
	Submitter       string          `json:"submitter" example:"sekar"`                                  // Username of the user that recorded the transaction
	CreatedAt       time.Time       `json:"createdAt" example:"2026-10-19T05:31:12Z"`
}

func newTransaction(t models.Transaction) Transaction {
	submitter := t.SubmittedBy.Username
	if submitter == "" {
		submitter = "Unknown"
	}

	return Transaction{
		ID:              t.ID,
		Date:            t.Date,
		Type:            t.Type,
		Pocket:          t.Pocket,
		Note:            t.Note,
		Amount:          t.Amount,
		FormattedAmount: format.Currency(t.Amount),
		PaidBy:          t.PaidBy,
		SubmittedBy:     t.SubmittedByID,
		Submitter:       submitter,
		CreatedAt:       t.CreatedAt,
	}
}

func newTransactions(transactions []models.Transaction) []Transaction {
	data := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		data = append(data, newTransaction(t))
	}
	return data
}

// TransactionQueryFilter contains the filters for transaction lists.
type TransactionQueryFilter struct {
	Month string `form:"month" example:"2026-10"` // Month in the format YYYY-MM
	By    string `form:"by" example:"sekar"`      // Username of the submitter, "all" for everyone
	Type  string `form:"type" example:"Eat"`      // Category, "all" for every category
}

type TransactionResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty" example:"Transaction saved successfully!"`
	Data    *Transaction `json:"data,omitempty"`
}

type TransactionListResponse struct {
	Success bool          `json:"success" example:"true"`
	Data    []Transaction `json:"data"`
}

type SubmitterListResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    []string `json:"data" example:"bayu,sekar"` // Usernames of all users that recorded transactions
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Transaction deleted successfully!"`
}
