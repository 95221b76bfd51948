package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FilterAll disables a transaction filter.
const FilterAll = "all"

// Transaction is a single expense paid from a pocket.
type Transaction struct {
	DefaultModel
	Date          time.Time       `gorm:"index"`
	Type          string          `gorm:"not null;index"`
	Pocket        string          `gorm:"not null"`
	Note          string          `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	PaidBy        string
	SubmittedByID uuid.UUID `gorm:"type:uuid;index"`
	SubmittedBy   User
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - sets the date to the current time if it is not set and enforces UTC
//   - defaults PaidBy to Self
//   - validates category, pocket, payer, note and amount
//   - rejects fractional amounts and amounts of 10^12 or more
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Note = strings.TrimSpace(t.Note)
	t.Type = strings.TrimSpace(t.Type)
	t.Pocket = strings.TrimSpace(t.Pocket)
	t.PaidBy = strings.TrimSpace(t.PaidBy)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	if t.PaidBy == "" {
		t.PaidBy = registry.RoleSelf
	}

	if !registry.IsCategory(t.Type) {
		return ErrInvalidCategory
	}

	if !registry.IsPocket(t.Pocket) {
		return ErrInvalidPocket
	}

	if !registry.IsRole(t.PaidBy) {
		return ErrInvalidPaidBy
	}

	if t.Note == "" {
		return ErrNoteRequired
	}

	return validateAmount(t.Amount)
}

// TransactionFilter selects transactions. Empty fields and fields set to
// FilterAll do not filter.
type TransactionFilter struct {
	Month       types.Month // Month the transaction date is in
	SubmittedBy string      // Username of the submitter
	Type        string      // Category of the transaction
}

func isFiltered(value string) bool {
	return value != "" && value != FilterAll
}

// FindTransactions returns all transactions matching the filter, newest first.
func FindTransactions(db *gorm.DB, filter TransactionFilter) ([]Transaction, error) {
	query := db.Model(&Transaction{}).Preload("SubmittedBy")

	if !filter.Month.IsZero() {
		start, end := filter.Month.Bounds()
		query = query.Where("transactions.date >= ? AND transactions.date < ?", start, end)
	}

	if isFiltered(filter.SubmittedBy) {
		query = query.
			Joins("JOIN users ON users.id = transactions.submitted_by_id").
			Where("users.username = ?", filter.SubmittedBy)
	}

	if isFiltered(filter.Type) {
		query = query.Where("transactions.type = ?", filter.Type)
	}

	var transactions []Transaction
	err := query.Order("transactions.date DESC, transactions.created_at DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// RecentTransactions returns the newest transactions in the month.
func RecentTransactions(db *gorm.DB, month types.Month, limit int) ([]Transaction, error) {
	start, end := month.Bounds()

	var transactions []Transaction
	err := db.
		Preload("SubmittedBy").
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Submitters returns the usernames of all users that have submitted
// at least one transaction, sorted alphabetically.
func Submitters(db *gorm.DB) ([]string, error) {
	var usernames []string
	err := db.Model(&User{}).
		Distinct("users.username").
		Joins("JOIN transactions ON transactions.submitted_by_id = users.id").
		Order("users.username").
		Pluck("users.username", &usernames).Error
	if err != nil {
		return nil, err
	}

	if usernames == nil {
		usernames = []string{}
	}
	return usernames, nil
}
