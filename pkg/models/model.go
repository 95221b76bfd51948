package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// maxAmount is the first amount that no longer fits the integer part of
// a DECIMAL(20,8) column.
var maxAmount = decimal.New(1, 12)

// validateAmount checks that an amount is a whole, non-negative number of
// Rupiah that can be stored.
func validateAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrNegativeAmount
	}

	if !amount.Equal(amount.Truncate(0)) || amount.GreaterThanOrEqual(maxAmount) {
		return ErrInvalidAmount
	}

	return nil
}

// DefaultModel is the base model for all models.
type DefaultModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (m *DefaultModel) AfterFind(_ *gorm.DB) (err error) {
	m.CreatedAt = m.CreatedAt.In(time.UTC)
	m.UpdatedAt = m.UpdatedAt.In(time.UTC)
	return nil
}

// BeforeCreate is set to generate a UUID for the resource.
func (m *DefaultModel) BeforeCreate(_ *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
