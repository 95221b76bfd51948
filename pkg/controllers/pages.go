package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/pkg/auth"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/moneyjournal/backend/pkg/registry"
)

// Avatars offered on the profile page.
var avatars = []string{"👤", "👩", "👨", "🌸", "🦁", "🐱", "🐶", "🌻", "⭐", "🍀"}

// Page is the data passed to all page templates.
type Page struct {
	Title      string
	Session    auth.Session
	Error      string
	Success    string
	Categories []registry.Entry
	Pockets    []registry.Entry
	Roles      []string
	Avatars    []string
	OwnerRole  string
	Owner      bool // Whether the user can change budgets
}

func (co Controller) page(c *gin.Context, title string) Page {
	session, _ := auth.Current(c)

	return Page{
		Title:      title,
		Session:    session,
		Error:      c.Query("error"),
		Success:    c.Query("success"),
		Categories: registry.Categories(),
		Pockets:    registry.Pockets(),
		Roles:      registry.Roles(),
		Avatars:    avatars,
		OwnerRole:  co.OwnerRole,
		Owner:      session.Role == co.OwnerRole,
	}
}

// RegisterPublicPages registers the pages that do not need a session.
func (co Controller) RegisterPublicPages(r *gin.RouterGroup) {
	r.GET("/", co.Index)
	r.GET("/login", co.render("login.html", "Login"))
	r.GET("/register", co.render("register.html", "Register"))
	r.GET("/logout", co.Logout)
}

// RegisterPages registers the pages for logged in users.
func (co Controller) RegisterPages(r *gin.RouterGroup) {
	r.GET("/welcome", co.render("welcome.html", "Welcome"))
	r.GET("/profile", co.Profile)
	r.POST("/profile", co.UpdateProfile)
	r.GET("/transaction", co.render("transaction.html", "Transaction"))
	r.GET("/transactions", co.render("transactions.html", "Transactions"))
	r.GET("/budget", co.render("budget.html", "Budget"))
	r.GET("/dashboard", co.render("dashboard.html", "Dashboard"))
}

// Index sends users to the welcome page if they are logged in and to the
// login page otherwise.
func (co Controller) Index(c *gin.Context) {
	if _, ok := auth.Current(c); ok {
		c.Redirect(http.StatusFound, "/welcome")
		return
	}

	c.Redirect(http.StatusFound, "/login")
}

func (co Controller) render(name, title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, name, co.page(c, title))
	}
}

// Profile renders the profile page with the stored user data.
func (co Controller) Profile(c *gin.Context) {
	page := co.page(c, "Profile")

	var user models.User
	err := co.DB.First(&user, "id = ?", page.Session.UserID).Error
	if err != nil {
		redirectWith(c, "/transaction", "error", clientMessage(c, err, "Error loading profile"))
		return
	}

	page.Session.Username = user.Username
	page.Session.Avatar = user.Avatar
	page.Session.Role = user.Role
	c.HTML(http.StatusOK, "profile.html", page)
}
