package models_test

import (
	"time"

	"github.com/moneyjournal/backend/pkg/models"
)

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Asia/Jakarta")

	model := models.DefaultModel{
		CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
		UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
	}

	err := model.AfterFind(suite.db)
	suite.Require().Nil(err)

	suite.Assert().Equal(time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	suite.Assert().Equal(time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelGeneratesID() {
	user := suite.createTestUser("laras")
	suite.Assert().NotEqual("00000000-0000-0000-0000-000000000000", user.ID.String())
}
