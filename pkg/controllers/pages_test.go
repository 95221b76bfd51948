package controllers_test

import (
	"net/http"

	"github.com/moneyjournal/backend/pkg/registry"
	"github.com/moneyjournal/backend/test"
)

func (suite *TestSuiteStandard) page(path, cookie string) string {
	headers := map[string]string{}
	if cookie != "" {
		headers["Cookie"] = cookie
	}

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com"+path, nil, headers)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)
	suite.Assert().Contains(recorder.Header().Get("Content-Type"), "text/html")
	return recorder.Body.String()
}

func (suite *TestSuiteStandard) TestIndex() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/", nil)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)
	suite.Assert().Equal("/login", recorder.Header().Get("Location"))

	cookie := suite.login("sekar", registry.RoleWife)
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/", nil, map[string]string{"Cookie": cookie})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)
	suite.Assert().Equal("/welcome", recorder.Header().Get("Location"))
}

func (suite *TestSuiteStandard) TestPagesRequireSession() {
	for _, path := range []string{"/welcome", "/profile", "/transaction", "/transactions", "/budget", "/dashboard"} {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com"+path, nil)
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusFound)
		suite.Assert().Equal("/login", recorder.Header().Get("Location"), path)
	}
}

func (suite *TestSuiteStandard) TestPages() {
	cookie := suite.login("sekar", registry.RoleWife)

	tests := []struct {
		path     string
		contains string
	}{
		{"/welcome", "Welcome, 🌸 sekar!"},
		{"/transaction", `<option value="Jumat Berkah">`},
		{"/transactions", "/static/js/transactions.js"},
		{"/budget", "/static/js/budget.js"},
		{"/dashboard", "/static/js/dashboard.js"},
	}

	for _, tt := range tests {
		body := suite.page(tt.path, cookie)
		suite.Assert().Contains(body, tt.contains, tt.path)
		suite.Assert().Contains(body, `href="/logout"`, "%s shows the navigation", tt.path)
	}
}

func (suite *TestSuiteStandard) TestLoginPageMessages() {
	body := suite.page("/login?error=invalid+username+or+password", "")
	suite.Assert().Contains(body, `<div class="alert error">invalid username or password</div>`)
	suite.Assert().NotContains(body, `href="/logout"`)

	body = suite.page("/login?success=Registration+successful", "")
	suite.Assert().Contains(body, `<div class="alert success">Registration successful</div>`)

	body = suite.page("/register?error=<script>alert(1)</script>", "")
	suite.Assert().NotContains(body, "<script>alert(1)</script>", "messages are escaped")
}

func (suite *TestSuiteStandard) TestProfilePage() {
	cookie := suite.login("sekar", registry.RoleWife)

	body := suite.page("/profile", cookie)
	suite.Assert().Contains(body, `value="sekar"`)
	suite.Assert().Contains(body, `<option value="Wife" selected>Wife</option>`)
}

func (suite *TestSuiteStandard) TestBudgetPageOwnerHint() {
	wife := suite.login("sekar", registry.RoleWife)
	husband := suite.login("raka", registry.RoleHusband)

	suite.Assert().NotContains(suite.page("/budget", wife), "can change budgets")
	suite.Assert().Contains(suite.page("/budget", husband), "Only the Wife can change budgets.")
}
