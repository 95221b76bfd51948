package models_test

import (
	"time"

	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBudgetUpsert() {
	user := suite.createTestUser("sekar")

	created, err := models.UpsertBudget(suite.db, models.Budget{
		Pocket:      "Kwintals",
		Month:       10,
		Year:        2026,
		Amount:      decimal.NewFromInt(1000000),
		CreatedByID: user.ID,
	})
	suite.Require().Nil(err)

	updated, err := models.UpsertBudget(suite.db, models.Budget{
		Pocket:      "Kwintals",
		Month:       10,
		Year:        2026,
		Amount:      decimal.NewFromInt(750000),
		CreatedByID: user.ID,
	})
	suite.Require().Nil(err)

	suite.Assert().Equal(created.ID, updated.ID, "upsert must keep the existing row")
	suite.Assert().True(decimal.NewFromInt(750000).Equal(updated.Amount), "amount is %s", updated.Amount)

	var count int64
	suite.db.Model(&models.Budget{}).Count(&count)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetValidation() {
	user := suite.createTestUser("sekar")

	_, err := models.UpsertBudget(suite.db, models.Budget{Pocket: "Mattress", Month: 1, Year: 2026, CreatedByID: user.ID})
	suite.Assert().ErrorIs(err, models.ErrInvalidPocket)

	_, err = models.UpsertBudget(suite.db, models.Budget{Pocket: "IPL", Month: 13, Year: 2026, CreatedByID: user.ID})
	suite.Assert().ErrorIs(err, models.ErrInvalidMonth)

	_, err = models.UpsertBudget(suite.db, models.Budget{Pocket: "IPL", Month: 1, Year: 2026, Amount: decimal.NewFromInt(-5), CreatedByID: user.ID})
	suite.Assert().ErrorIs(err, models.ErrNegativeAmount)

	_, err = models.UpsertBudget(suite.db, models.Budget{Pocket: "IPL", Month: 1, Year: 2026, Amount: decimal.RequireFromString("1500000.5"), CreatedByID: user.ID})
	suite.Assert().ErrorIs(err, models.ErrInvalidAmount)

	_, err = models.UpsertBudget(suite.db, models.Budget{Pocket: "IPL", Month: 1, Year: 2026, Amount: decimal.RequireFromString("999999999999"), CreatedByID: user.ID})
	suite.Assert().Nil(err, "the largest storable amount is valid")
}

func (suite *TestSuiteStandard) TestBudgetsForMonthAndHistory() {
	user := suite.createTestUser("sekar")

	budgets := []models.Budget{
		{Pocket: "Kwintals", Month: 9, Year: 2026, Amount: decimal.NewFromInt(100000)},
		{Pocket: "IPL", Month: 9, Year: 2026, Amount: decimal.NewFromInt(50000)},
		{Pocket: "Kwintals", Month: 10, Year: 2026, Amount: decimal.NewFromInt(200000)},
		{Pocket: "Kwintals", Month: 12, Year: 2025, Amount: decimal.NewFromInt(300000)},
	}

	for _, b := range budgets {
		b.CreatedByID = user.ID
		_, err := models.UpsertBudget(suite.db, b)
		suite.Require().Nil(err)
	}

	september, err := models.BudgetsForMonth(suite.db, types.NewMonth(2026, time.September))
	suite.Require().Nil(err)
	suite.Assert().Len(september, 2)

	history, err := models.BudgetHistory(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(history, 3)

	suite.Assert().Equal(2026, history[0].Year)
	suite.Assert().Equal(10, history[0].Month)
	suite.Assert().Equal(1, history[0].PocketCount)

	suite.Assert().Equal(9, history[1].Month)
	suite.Assert().Equal(2, history[1].PocketCount)
	suite.Assert().True(decimal.NewFromInt(150000).Equal(history[1].Total), "total is %s", history[1].Total)

	suite.Assert().Equal(2025, history[2].Year)
	suite.Assert().Equal(12, history[2].Month)
}
