package controllers_test

import (
	"net/http"
	"net/url"

	"github.com/moneyjournal/backend/pkg/auth"
	"github.com/moneyjournal/backend/pkg/controllers"
	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/moneyjournal/backend/test"
)

// form posts a browser form without asking for JSON.
func (suite *TestSuiteStandard) form(path string, values url.Values, cookie string) string {
	headers := map[string]string{}
	if cookie != "" {
		headers["Cookie"] = cookie
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com"+path, values, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)
	return recorder.Header().Get("Location")
}

func (suite *TestSuiteStandard) TestRegisterJSON() {
	recorder := suite.request(http.MethodPost, "http://example.com/auth/register", controllers.Registration{
		Username: "sekar",
		Email:    "Sekar@Example.com",
		Password: password,
	}, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	suite.Assert().Contains(recorder.Body.String(), "Registration successful! Please login.")

	tests := []struct {
		name         string
		registration controllers.Registration
		err          string
	}{
		{"Duplicate username", controllers.Registration{Username: "sekar", Email: "other@example.com", Password: password}, auth.ErrUserExists.Error()},
		{"Duplicate email", controllers.Registration{Username: "other", Email: "sekar@example.com", Password: password}, auth.ErrUserExists.Error()},
		{"Short password", controllers.Registration{Username: "other", Email: "other@example.com", Password: "short"}, auth.ErrPasswordTooShort.Error()},
	}

	for _, tt := range tests {
		recorder := suite.request(http.MethodPost, "http://example.com/auth/register", tt.registration, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		suite.Assert().Contains(recorder.Body.String(), tt.err, tt.name)
	}
}

func (suite *TestSuiteStandard) TestRegisterForm() {
	values := url.Values{
		"username": {"sekar"},
		"email":    {"sekar@example.com"},
		"password": {password},
	}

	location := suite.form("/auth/register", values, "")
	suite.Assert().Equal("/login?success=Registration+successful%21+Please+login.", location)

	location = suite.form("/auth/register", values, "")
	suite.Assert().Equal("/register?error=user+already+exists", location)
}

func (suite *TestSuiteStandard) TestLoginJSON() {
	suite.login("sekar", registry.RoleWife)

	recorder := suite.request(http.MethodPost, "http://example.com/auth/login", controllers.Credentials{
		Username: "sekar@example.com",
		Password: password,
	}, "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Login successful", response.Message)
	suite.Assert().Equal(controllers.User{Username: "sekar", Avatar: "🌸", Role: registry.RoleWife}, response.Data)

	for _, credentials := range []controllers.Credentials{
		{Username: "sekar", Password: "wrong password"},
		{Username: "nobody", Password: password},
	} {
		recorder := suite.request(http.MethodPost, "http://example.com/auth/login", credentials, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
		suite.Assert().Contains(recorder.Body.String(), auth.ErrInvalidCredentials.Error())
		suite.Assert().Empty(test.Cookie(&recorder), "failed logins must not create a session")
	}
}

func (suite *TestSuiteStandard) TestLoginForm() {
	suite.login("sekar", registry.RoleWife)

	location := suite.form("/auth/login", url.Values{"username": {"sekar"}, "password": {"wrong password"}}, "")
	suite.Assert().Equal("/login?error=invalid+username+or+password", location)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/auth/login", url.Values{
		"username": {"sekar"},
		"password": {password},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)
	suite.Assert().Equal("/welcome", recorder.Header().Get("Location"))

	welcome := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/welcome", nil, map[string]string{"Cookie": test.Cookie(&recorder)})
	test.AssertHTTPStatus(suite.T(), &welcome, http.StatusOK)
	suite.Assert().Contains(welcome.Body.String(), "Welcome, 🌸 sekar!")
}

func (suite *TestSuiteStandard) TestLogout() {
	cookie := suite.login("sekar", registry.RoleWife)

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/logout", nil, map[string]string{"Cookie": cookie})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)
	suite.Assert().Equal("/login", recorder.Header().Get("Location"))

	expired := test.Cookie(&recorder)
	suite.Require().NotEmpty(expired, "logout must replace the session cookie")

	after := suite.request(http.MethodGet, "http://example.com/api/transactions", nil, expired)
	test.AssertHTTPStatus(suite.T(), &after, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestUpdateProfileRefreshesSession() {
	cookie := suite.login("raka", registry.RoleHusband)
	suite.Assert().False(suite.getBudget(cookie, "").CanEdit)

	recorder := suite.request(http.MethodPost, "http://example.com/profile", auth.Profile{
		Username: "raka",
		Avatar:   "🦁",
		Role:     registry.RoleWife,
	}, cookie)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response controllers.UserResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Profile updated", response.Message)
	suite.Assert().Equal(registry.RoleWife, response.Data.Role)

	// The new role is effective without logging in again
	refreshed := test.Cookie(&recorder)
	suite.Require().NotEmpty(refreshed)
	suite.Assert().True(suite.getBudget(refreshed, "").CanEdit)
}

func (suite *TestSuiteStandard) TestUpdateProfileForm() {
	cookie := suite.login("raka", registry.RoleHusband)

	location := suite.form("/profile", url.Values{"username": {"raka"}, "avatar": {"🐶"}, "role": {registry.RoleSelf}}, cookie)
	suite.Assert().Equal("/transaction", location)

	location = suite.form("/profile", url.Values{"username": {"raka"}, "role": {"Landlord"}}, cookie)
	suite.Assert().Equal("/profile?error=the+role+must+be+one+of+the+household+roles", location)

	location = suite.form("/profile", url.Values{"role": {registry.RoleSelf}}, "")
	suite.Assert().Equal("/login", location, "pages without a session redirect to the login")
}
