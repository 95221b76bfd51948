package controllers

import (
	"time"

	"github.com/moneyjournal/backend/pkg/budgeting"
	"github.com/moneyjournal/backend/pkg/notify"
	"gorm.io/gorm"
)

// Controller holds the dependencies of all request handlers.
type Controller struct {
	DB        *gorm.DB
	Notifier  notify.Notifier
	OwnerRole string         // Household role allowed to change budgets
	Location  *time.Location // Time zone of the household
	Clock     func() time.Time
}

// now returns the current time in the household's time zone.
func (co Controller) now() time.Time {
	now := time.Now()
	if co.Clock != nil {
		now = co.Clock()
	}
	return now.In(co.location())
}

func (co Controller) location() *time.Location {
	if co.Location == nil {
		return time.UTC
	}
	return co.Location
}

func (co Controller) notifier() notify.Notifier {
	if co.Notifier == nil {
		return notify.Nop{}
	}
	return co.Notifier
}

func (co Controller) budgets() budgeting.Service {
	return budgeting.Service{
		DB:        co.DB,
		OwnerRole: co.OwnerRole,
		Now:       co.now,
	}
}
