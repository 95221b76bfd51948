package controllers_test

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/moneyjournal/backend/pkg/controllers"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/moneyjournal/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCreateTransaction() {
	cookie := suite.login("sekar", registry.RoleWife)

	recorder := suite.request(http.MethodPost, "http://example.com/api/transaction", controllers.TransactionEditable{
		Date:   "2026-12-05T08:30",
		Type:   "Groceries",
		Pocket: "Groceries",
		Note:   "  Weekly shopping ",
		Amount: amount(150000),
		PaidBy: registry.RoleHusband,
	}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Success)
	suite.Assert().Equal("Transaction saved successfully!", response.Message)

	data := response.Data
	suite.Require().NotNil(data)
	suite.Assert().Equal("Weekly shopping", data.Note)
	suite.Assert().Equal("sekar", data.Submitter)
	suite.Assert().Equal(registry.RoleHusband, data.PaidBy)
	suite.Assert().Equal("Rp 150.000", data.FormattedAmount)
	suite.Assert().True(time.Date(2026, time.December, 5, 1, 30, 0, 0, time.UTC).Equal(data.Date), "local time must be stored as UTC")

	notifications := suite.notifier.all()
	suite.Require().Len(notifications, 1)
	suite.Assert().Equal("sekar", notifications[0].submitter)
	suite.Assert().Equal(data.ID, notifications[0].transaction.ID)
}

func (suite *TestSuiteStandard) TestCreateTransactionDefaults() {
	cookie := suite.login("sekar", registry.RoleWife)

	recorder := suite.request(http.MethodPost, "http://example.com/api/transaction", map[string]any{
		"type":   "Eat",
		"pocket": "Kwintals",
		"note":   "Nasi goreng",
		"amount": 25000,
	}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(registry.RoleSelf, response.Data.PaidBy)
	suite.Assert().WithinDuration(time.Now(), response.Data.Date, time.Minute, "date defaults to the time of submission")
}

func (suite *TestSuiteStandard) TestCreateTransactionFails() {
	cookie := suite.login("sekar", registry.RoleWife)

	tests := []struct {
		name string
		body any
		err  string
	}{
		{"Unknown category", controllers.TransactionEditable{Type: "Casino", Pocket: "Kwintals", Note: "Oops", Amount: amount(1)}, models.ErrInvalidCategory.Error()},
		{"Unknown pocket", controllers.TransactionEditable{Type: "Eat", Pocket: "Wallet", Note: "Oops", Amount: amount(1)}, models.ErrInvalidPocket.Error()},
		{"Unknown payer", controllers.TransactionEditable{Type: "Eat", Pocket: "Kwintals", Note: "Oops", Amount: amount(1), PaidBy: "Neighbour"}, models.ErrInvalidPaidBy.Error()},
		{"Blank note", controllers.TransactionEditable{Type: "Eat", Pocket: "Kwintals", Note: "   ", Amount: amount(1)}, models.ErrNoteRequired.Error()},
		{"Negative amount", controllers.TransactionEditable{Type: "Eat", Pocket: "Kwintals", Note: "Refund", Amount: amount(-1)}, models.ErrNegativeAmount.Error()},
		{"Fractional amount", `{"type": "Eat", "pocket": "Kwintals", "note": "Change", "amount": 0.4}`, models.ErrInvalidAmount.Error()},
		{"Amount too large", `{"type": "Eat", "pocket": "Kwintals", "note": "Yacht", "amount": 10000000000000000000}`, models.ErrInvalidAmount.Error()},
		{"Invalid date", controllers.TransactionEditable{Date: "yesterday", Type: "Eat", Pocket: "Kwintals", Note: "Oops", Amount: amount(1)}, "the date must be formatted"},
		{"Broken JSON", `{"type": "Eat",`, "the body of your request contains invalid"},
		{"Empty body", "", "the request body must not be empty"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "http://example.com/api/transaction", tt.body, map[string]string{
				"Cookie":       cookie,
				"Content-Type": "application/json",
			})
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
			assert.Contains(t, recorder.Body.String(), tt.err)
		})
	}

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Zero(count, "invalid transactions must not be stored")
	suite.Assert().Empty(suite.notifier.all())
}

func (suite *TestSuiteStandard) TestCreateTransactionWithoutSession() {
	recorder := suite.request(http.MethodPost, "http://example.com/api/transaction", controllers.TransactionEditable{
		Type:   "Eat",
		Pocket: "Kwintals",
		Note:   "Lunch",
		Amount: amount(1),
	}, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	sekar := suite.login("sekar", registry.RoleWife)
	raka := suite.login("raka", registry.RoleHusband)

	// 1st of December 00:30 in Jakarta is still November in UTC
	first := suite.createTestTransaction(sekar, controllers.TransactionEditable{Date: "2026-12-01T00:30", Type: "Eat", Amount: amount(10000)})
	second := suite.createTestTransaction(raka, controllers.TransactionEditable{Date: "2026-12-20T19:00", Type: "Snack", Amount: amount(5000)})
	third := suite.createTestTransaction(raka, controllers.TransactionEditable{Date: "2026-12-31T23:59", Type: "Eat", Amount: amount(7000)})
	november := suite.createTestTransaction(sekar, controllers.TransactionEditable{Date: "2026-11-30T23:59", Type: "Eat", Amount: amount(1000)})

	tests := []struct {
		query string
		ids   []string
	}{
		{"month=2026-12", []string{third.ID.String(), second.ID.String(), first.ID.String()}},
		{"month=2026-12&by=raka", []string{third.ID.String(), second.ID.String()}},
		{"month=2026-12&type=Eat", []string{third.ID.String(), first.ID.String()}},
		{"month=2026-12&by=all&type=all", []string{third.ID.String(), second.ID.String(), first.ID.String()}},
		{"month=2026-11", []string{november.ID.String()}},
		{"by=sekar", []string{first.ID.String(), november.ID.String()}},
		{"month=2026-10", []string{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, "http://example.com/api/transactions?"+tt.query, nil, map[string]string{"Cookie": sekar})
			test.AssertHTTPStatus(t, &recorder, http.StatusOK)

			var response controllers.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)

			ids := make([]string, 0, len(response.Data))
			for _, transaction := range response.Data {
				ids = append(ids, transaction.ID.String())
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func (suite *TestSuiteStandard) TestGetTransactionsInvalidQuery() {
	cookie := suite.login("sekar", registry.RoleWife)

	for _, month := range []string{"2026-13", "december", "2026-1-1"} {
		recorder := suite.request(http.MethodGet, "http://example.com/api/transactions?month="+month, nil, cookie)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
	}
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	cookie := suite.login("sekar", registry.RoleWife)
	transaction := suite.createTestTransaction(cookie, controllers.TransactionEditable{Amount: amount(42000)})

	recorder := suite.request(http.MethodGet, "http://example.com/api/transaction/"+transaction.ID.String(), nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
	suite.Assert().Equal("sekar", response.Data.Submitter)
	suite.Assert().True(amount(42000).Equal(response.Data.Amount))
}

func (suite *TestSuiteStandard) TestGetTransactionFails() {
	cookie := suite.login("sekar", registry.RoleWife)

	recorder := suite.request(http.MethodGet, "http://example.com/api/transaction/not-a-uuid", nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	recorder = suite.request(http.MethodGet, "http://example.com/api/transaction/6ad7a3bf-46a8-4e1a-9a51-4ad1f8c6d1f0", nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
	suite.Assert().Contains(recorder.Body.String(), "there is no transaction matching your query")
}

func (suite *TestSuiteStandard) TestUpdateTransaction() {
	sekar := suite.login("sekar", registry.RoleWife)
	raka := suite.login("raka", registry.RoleHusband)
	transaction := suite.createTestTransaction(sekar, controllers.TransactionEditable{Amount: amount(10000)})

	// Any user can edit any transaction, the submitter never changes
	recorder := suite.request(http.MethodPut, "http://example.com/api/transaction/"+transaction.ID.String(), controllers.TransactionEditable{
		Date:   "2026-12-06T18:00",
		Type:   "Snack",
		Pocket: "Groceries",
		Note:   "Martabak",
		Amount: amount(35000),
		PaidBy: registry.RoleHusband,
	}, raka)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Transaction updated successfully!", response.Message)

	var stored models.Transaction
	suite.Require().Nil(suite.db.Preload("SubmittedBy").First(&stored, "id = ?", transaction.ID).Error)
	suite.Assert().Equal("Snack", stored.Type)
	suite.Assert().Equal("Groceries", stored.Pocket)
	suite.Assert().Equal("Martabak", stored.Note)
	suite.Assert().Equal(registry.RoleHusband, stored.PaidBy)
	suite.Assert().True(amount(35000).Equal(stored.Amount))
	suite.Assert().True(time.Date(2026, time.December, 6, 11, 0, 0, 0, time.UTC).Equal(stored.Date))
	suite.Assert().Equal("sekar", stored.SubmittedBy.Username)
}

func (suite *TestSuiteStandard) TestUpdateTransactionInvalid() {
	cookie := suite.login("sekar", registry.RoleWife)
	transaction := suite.createTestTransaction(cookie, controllers.TransactionEditable{Note: "Original", Amount: amount(10000)})

	recorder := suite.request(http.MethodPut, "http://example.com/api/transaction/"+transaction.ID.String(), controllers.TransactionEditable{
		Type:   "Casino",
		Pocket: "Kwintals",
		Note:   "Changed",
		Amount: amount(1),
	}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var stored models.Transaction
	suite.Require().Nil(suite.db.First(&stored, "id = ?", transaction.ID).Error)
	suite.Assert().Equal("Original", stored.Note)

	recorder = suite.request(http.MethodPut, "http://example.com/api/transaction/6ad7a3bf-46a8-4e1a-9a51-4ad1f8c6d1f0", controllers.TransactionEditable{
		Type:   "Eat",
		Pocket: "Kwintals",
		Note:   "Changed",
		Amount: amount(1),
	}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransaction() {
	cookie := suite.login("sekar", registry.RoleWife)
	transaction := suite.createTestTransaction(cookie, controllers.TransactionEditable{Amount: amount(10000)})
	path := "http://example.com/api/transaction/" + transaction.ID.String()

	recorder := suite.request(http.MethodDelete, path, nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Body.String(), "Transaction deleted successfully!")

	recorder = suite.request(http.MethodGet, path, nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteTransactionNonExistent() {
	cookie := suite.login("sekar", registry.RoleWife)
	suite.createTestTransaction(cookie, controllers.TransactionEditable{Amount: amount(10000)})

	recorder := suite.request(http.MethodDelete, "http://example.com/api/transaction/6ad7a3bf-46a8-4e1a-9a51-4ad1f8c6d1f0", nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count, "the store must be unchanged")
}

func (suite *TestSuiteStandard) TestOptionsTransaction() {
	cookie := suite.login("sekar", registry.RoleWife)
	transaction := suite.createTestTransaction(cookie, controllers.TransactionEditable{Amount: amount(10000)})

	recorder := suite.request(http.MethodOptions, "http://example.com/api/transaction/"+transaction.ID.String(), nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET, PUT, DELETE", recorder.Header().Get("allow"))

	recorder = suite.request(http.MethodOptions, "http://example.com/api/transaction/6ad7a3bf-46a8-4e1a-9a51-4ad1f8c6d1f0", nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetSubmitters() {
	sekar := suite.login("sekar", registry.RoleWife)
	raka := suite.login("raka", registry.RoleHusband)
	suite.login("idle", registry.RoleSelf)

	suite.createTestTransaction(sekar, controllers.TransactionEditable{Amount: amount(1)})
	suite.createTestTransaction(raka, controllers.TransactionEditable{Amount: amount(1)})
	suite.createTestTransaction(sekar, controllers.TransactionEditable{Amount: amount(1)})

	recorder := suite.request(http.MethodGet, "http://example.com/api/submitters", nil, sekar)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.SubmitterListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal([]string{"raka", "sekar"}, response.Data)
}

func (suite *TestSuiteStandard) TestExportTransactions() {
	cookie := suite.login("sekar", registry.RoleWife)
	suite.createTestTransaction(cookie, controllers.TransactionEditable{Date: "2026-12-01T00:30", Note: "Soto, extra rice", Amount: amount(30000)})
	suite.createTestTransaction(cookie, controllers.TransactionEditable{Date: "2026-11-15T12:00", Amount: amount(1000)})

	recorder := suite.request(http.MethodGet, "http://example.com/api/transactions/export?month=2026-12", nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().True(strings.HasPrefix(recorder.Header().Get("Content-Type"), "text/csv"))
	suite.Assert().Equal(`attachment; filename="transactions-2026-12.csv"`, recorder.Header().Get("Content-Disposition"))

	records, err := csv.NewReader(recorder.Body).ReadAll()
	suite.Require().Nil(err)
	suite.Assert().Equal([][]string{
		{"Date", "Type", "Pocket", "Note", "Amount", "Paid By", "Submitted By"},
		{"01/12/2026", "Eat", "Kwintals", "Soto, extra rice", "30000", registry.RoleSelf, "sekar"},
	}, records)
}

func (suite *TestSuiteStandard) TestExportTransactionsEscapesFormulas() {
	cookie := suite.login("sekar", registry.RoleWife)
	notes := []string{"=HYPERLINK(\"http://example.com\")", "+62 812", "-5 discount", "@SUM(A1)", "Bakso"}
	for i, note := range notes {
		suite.createTestTransaction(cookie, controllers.TransactionEditable{Date: fmt.Sprintf("2026-12-0%dT12:00", i+1), Note: note, Amount: amount(1000)})
	}

	recorder := suite.request(http.MethodGet, "http://example.com/api/transactions/export?month=2026-12", nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	records, err := csv.NewReader(recorder.Body).ReadAll()
	suite.Require().Nil(err)
	suite.Require().Len(records, 6)

	var exported []string
	for _, record := range records[1:] {
		exported = append(exported, record[3])
	}
	suite.Assert().Equal([]string{"Bakso", "'@SUM(A1)", "'-5 discount", "'+62 812", "'=HYPERLINK(\"http://example.com\")"}, exported)
}

func (suite *TestSuiteStandard) TestTransactionsDatabaseClosed() {
	cookie := suite.login("sekar", registry.RoleWife)
	suite.CloseDB()

	recorder := suite.request(http.MethodGet, "http://example.com/api/transactions", nil, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)

	requestID := recorder.Header().Get("x-request-id")
	suite.Assert().Contains(recorder.Body.String(), fmt.Sprintf("The request id is '%s'", requestID))
	suite.Assert().NotContains(recorder.Body.String(), "sql: database is closed", "internal details must not be sent to the client")
}
