package models_test

import (
	"testing"

	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserDefaults() {
	user := models.User{
		Username:     "  dimas ",
		Email:        "Dimas@Example.com",
		PasswordHash: "hash",
	}

	err := suite.db.Create(&user).Error
	suite.Require().Nil(err)

	suite.Assert().Equal("dimas", user.Username)
	suite.Assert().Equal("dimas@example.com", user.Email)
	suite.Assert().Equal(registry.DefaultAvatar, user.Avatar)
	suite.Assert().Equal(registry.RoleSelf, user.Role)
}

func (suite *TestSuiteStandard) TestUserValidation() {
	tests := []struct {
		name string
		user models.User
		err  error
	}{
		{"Empty username", models.User{Email: "a@example.com"}, models.ErrUsernameEmpty},
		{"Empty email", models.User{Username: "a"}, models.ErrEmailEmpty},
		{"Invalid role", models.User{Username: "a", Email: "a@example.com", Role: "Cousin"}, models.ErrInvalidRole},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := suite.db.Create(&tt.user).Error
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestUserDuplicate() {
	_ = suite.createTestUser("sekar")

	duplicate := models.User{Username: "sekar", Email: "other@example.com", PasswordHash: "hash"}
	err := suite.db.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrUserExists)

	duplicate = models.User{Username: "other", Email: "sekar@example.com", PasswordHash: "hash"}
	err = suite.db.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrUserExists)
}

func (suite *TestSuiteStandard) TestUserLookup() {
	created := suite.createTestUser("bayu")

	user, err := models.FindUserByLogin(suite.db, "bayu")
	suite.Require().Nil(err)
	suite.Assert().Equal(created.ID, user.ID)

	user, err = models.FindUserByLogin(suite.db, "BAYU@example.com")
	suite.Require().Nil(err)
	suite.Assert().Equal(created.ID, user.ID)

	_, err = models.FindUserByLogin(suite.db, "nobody")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	exists, err := models.UserExists(suite.db, "someone", "bayu@example.com")
	suite.Require().Nil(err)
	suite.Assert().True(exists)

	exists, err = models.UserExists(suite.db, "someone", "someone@example.com")
	suite.Require().Nil(err)
	suite.Assert().False(exists)
}
