package controllers

import (
	"errors"
	"net/http"

	"github.com/moneyjournal/backend/pkg/auth"
	"github.com/moneyjournal/backend/pkg/budgeting"
	"github.com/moneyjournal/backend/pkg/models"
)

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, auth.ErrUnauthenticated) {
		return http.StatusUnauthorized
	}

	if errors.Is(err, budgeting.ErrNotBudgetOwner) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}
