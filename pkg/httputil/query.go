package httputil

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/internal/types"
)

// MonthFromQuery returns the month from the "month" query parameter in the
// format YYYY-MM. If the parameter is not set, the month of now is returned.
func MonthFromQuery(c *gin.Context, loc *time.Location, now time.Time) (types.Month, error) {
	param := c.Query("month")
	if param == "" {
		return types.MonthOf(now.In(loc)), nil
	}

	month, err := types.ParseMonth(param, loc)
	if err != nil {
		return types.Month{}, ErrInvalidMonthQuery
	}

	return month, nil
}
