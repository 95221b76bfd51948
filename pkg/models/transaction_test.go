package models_test

import (
	"testing"
	"time"

	"github.com/moneyjournal/backend/internal/types"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestTransactionDefaults() {
	user := suite.createTestUser("raka")

	transaction := models.Transaction{
		Type:          "Eat",
		Pocket:        "Kwintals",
		Note:          "  Nasi goreng  ",
		Amount:        decimal.NewFromInt(25000),
		SubmittedByID: user.ID,
	}

	before := time.Now()
	err := suite.db.Create(&transaction).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("Nasi goreng", transaction.Note)
	suite.Assert().Equal(registry.RoleSelf, transaction.PaidBy)
	suite.Assert().Equal(time.UTC, transaction.Date.Location())
	suite.Assert().False(transaction.Date.Before(before.Add(-time.Second)))
}

func (suite *TestSuiteStandard) TestTransactionValidation() {
	user := suite.createTestUser("raka")

	valid := func() models.Transaction {
		return models.Transaction{
			Type:          "Eat",
			Pocket:        "Kwintals",
			Note:          "Lunch",
			Amount:        decimal.NewFromInt(25000),
			PaidBy:        registry.RoleWife,
			SubmittedByID: user.ID,
		}
	}

	tests := []struct {
		name   string
		mutate func(*models.Transaction)
		err    error
	}{
		{"Unknown category", func(t *models.Transaction) { t.Type = "Casino" }, models.ErrInvalidCategory},
		{"Unknown pocket", func(t *models.Transaction) { t.Pocket = "Mattress" }, models.ErrInvalidPocket},
		{"Unknown payer", func(t *models.Transaction) { t.PaidBy = "Neighbour" }, models.ErrInvalidPaidBy},
		{"Blank note", func(t *models.Transaction) { t.Note = "   " }, models.ErrNoteRequired},
		{"Negative amount", func(t *models.Transaction) { t.Amount = decimal.NewFromInt(-1) }, models.ErrNegativeAmount},
		{"Fractional amount", func(t *models.Transaction) { t.Amount = decimal.RequireFromString("0.4") }, models.ErrInvalidAmount},
		{"Amount too large", func(t *models.Transaction) { t.Amount = decimal.New(1, 12) }, models.ErrInvalidAmount},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := valid()
			tt.mutate(&transaction)

			err := suite.db.Create(&transaction).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}

	var count int64
	suite.db.Model(&models.Transaction{}).Count(&count)
	suite.Assert().Equal(int64(0), count, "invalid transactions must not be stored")
}

func (suite *TestSuiteStandard) TestFindTransactions() {
	jakarta, _ := time.LoadLocation("Asia/Jakarta")
	month := types.NewMonthIn(2026, time.October, jakarta)

	raka := suite.createTestUser("raka")
	sekar := suite.createTestUser("sekar")

	// 1st of October 00:30 in Jakarta is still September in UTC
	first := suite.createTestTransaction(raka, time.Date(2026, 10, 1, 0, 30, 0, 0, jakarta), "Eat", 10000)
	second := suite.createTestTransaction(sekar, time.Date(2026, 10, 15, 12, 0, 0, 0, jakarta), "Snack", 20000)
	third := suite.createTestTransaction(raka, time.Date(2026, 10, 31, 23, 59, 0, 0, jakarta), "Eat", 30000)

	// Outside of the month
	_ = suite.createTestTransaction(raka, time.Date(2026, 11, 1, 0, 0, 0, 0, jakarta), "Eat", 40000)
	_ = suite.createTestTransaction(raka, time.Date(2026, 9, 30, 23, 59, 0, 0, jakarta), "Eat", 50000)

	tests := []struct {
		name   string
		filter models.TransactionFilter
		want   []models.Transaction
	}{
		{"Month", models.TransactionFilter{Month: month}, []models.Transaction{third, second, first}},
		{"Month and all", models.TransactionFilter{Month: month, SubmittedBy: models.FilterAll, Type: models.FilterAll}, []models.Transaction{third, second, first}},
		{"Submitter", models.TransactionFilter{Month: month, SubmittedBy: "sekar"}, []models.Transaction{second}},
		{"Type", models.TransactionFilter{Month: month, Type: "Eat"}, []models.Transaction{third, first}},
		{"Submitter and type", models.TransactionFilter{Month: month, SubmittedBy: "sekar", Type: "Eat"}, []models.Transaction{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transactions, err := models.FindTransactions(suite.db, tt.filter)
			assert.Nil(t, err)

			if !assert.Len(t, transactions, len(tt.want)) {
				return
			}

			for i, transaction := range transactions {
				assert.Equal(t, tt.want[i].ID, transaction.ID)
			}
		})
	}

	all, err := models.FindTransactions(suite.db, models.TransactionFilter{})
	suite.Require().Nil(err)
	suite.Assert().Len(all, 5)
	suite.Assert().Equal("raka", all[0].SubmittedBy.Username, "submitter must be preloaded")
}

func (suite *TestSuiteStandard) TestRecentTransactions() {
	month := types.NewMonth(2026, time.March)
	user := suite.createTestUser("raka")

	for day := 1; day <= 7; day++ {
		_ = suite.createTestTransaction(user, time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC), "Eat", int64(day*1000))
	}

	recent, err := models.RecentTransactions(suite.db, month, 5)
	suite.Require().Nil(err)
	suite.Require().Len(recent, 5)
	suite.Assert().Equal(7, recent[0].Date.Day())
	suite.Assert().Equal(3, recent[4].Date.Day())
}

func (suite *TestSuiteStandard) TestSubmitters() {
	submitters, err := models.Submitters(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{}, submitters)

	raka := suite.createTestUser("raka")
	sekar := suite.createTestUser("sekar")
	_ = suite.createTestUser("lurker")

	_ = suite.createTestTransaction(sekar, time.Now(), "Eat", 1000)
	_ = suite.createTestTransaction(raka, time.Now(), "Eat", 1000)
	_ = suite.createTestTransaction(raka, time.Now(), "Snack", 1000)

	submitters, err = models.Submitters(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Equal([]string{"raka", "sekar"}, submitters)
}
