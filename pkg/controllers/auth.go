package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/moneyjournal/backend/pkg/auth"
	"github.com/moneyjournal/backend/pkg/httputil"
	"github.com/moneyjournal/backend/pkg/models"
	"github.com/rs/zerolog/log"
)

// Registration contains the data to create an account.
type Registration struct {
	Username string `json:"username" form:"username" example:"sekar"`
	Email    string `json:"email" form:"email" example:"sekar@example.com"`
	Password string `json:"password" form:"password" example:"correct horse battery"` // At least 8 characters
}

// Credentials are used to log in. Username can also be the email address.
type Credentials struct {
	Username string `json:"username" form:"username" example:"sekar"`
	Password string `json:"password" form:"password" example:"correct horse battery"`
}

// User is the API representation of the logged in user.
type User struct {
	Username string `json:"username" example:"sekar"`
	Avatar   string `json:"avatar" example:"🌸"`
	Role     string `json:"role" example:"Wife"`
}

type UserResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message,omitempty" example:"Login successful"`
	Data    User   `json:"data"`
}

// RegisterAuthRoutes registers the routes for registration and login with
// the RouterGroup that is passed.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)

	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
}

// redirectWith redirects to the path with a single query parameter.
func redirectWith(c *gin.Context, path, key, value string) {
	c.Redirect(http.StatusFound, path+"?"+url.Values{key: {value}}.Encode())
}

// clientMessage returns the message for an error shown on a page. Server
// errors are logged and replaced with the fallback.
func clientMessage(c *gin.Context, err error, fallback string) string {
	if status(err) >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(fallback)
		return fallback
	}
	return err.Error()
}

// @Summary		Register
// @Description	Creates a new account. Form posts are redirected to the login page on success
// @Description	and back to the registration page on failure.
// @Tags			Auth
// @Accept			json,x-www-form-urlencoded
// @Produce		json
// @Success		201				{object}	MessageResponse
// @Success		302
// @Failure		400				{object}	httputil.HTTPError
// @Failure		429				{object}	httputil.HTTPError
// @Failure		500				{object}	httputil.HTTPError
// @Param			registration	body		Registration	true	"Account data"
// @Router			/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var data Registration
	err := httputil.BindData(c, &data)
	if err == nil {
		_, err = auth.Register(co.DB, data.Username, data.Email, data.Password)
	}

	if err != nil {
		if httputil.WantsJSON(c) {
			httputil.NewError(c, status(err), err)
			return
		}

		redirectWith(c, "/register", "error", clientMessage(c, err, "Error during registration"))
		return
	}

	log.Info().Str("username", data.Username).Msg("user registered")

	const message = "Registration successful! Please login."
	if httputil.WantsJSON(c) {
		c.JSON(http.StatusCreated, MessageResponse{Success: true, Message: message})
		return
	}

	redirectWith(c, "/login", "success", message)
}

// @Summary		Login
// @Description	Logs the user in and sets the session cookie. Form posts are redirected to the welcome page on success
// @Description	and back to the login page on failure.
// @Tags			Auth
// @Accept			json,x-www-form-urlencoded
// @Produce		json
// @Success		200			{object}	UserResponse
// @Success		302
// @Failure		400			{object}	httputil.HTTPError
// @Failure		429			{object}	httputil.HTTPError
// @Failure		500			{object}	httputil.HTTPError
// @Param			credentials	body		Credentials	true	"Credentials"
// @Router			/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var credentials Credentials
	err := httputil.BindData(c, &credentials)

	var user models.User
	if err == nil {
		user, err = auth.Authenticate(co.DB, credentials.Username, credentials.Password)
	}

	if err == nil {
		err = auth.Login(c, user)
	}

	if err != nil {
		if httputil.WantsJSON(c) {
			httputil.NewError(c, status(err), err)
			return
		}

		redirectWith(c, "/login", "error", clientMessage(c, err, "Error during login"))
		return
	}

	if httputil.WantsJSON(c) {
		c.JSON(http.StatusOK, UserResponse{
			Success: true,
			Message: "Login successful",
			Data:    User{Username: user.Username, Avatar: user.Avatar, Role: user.Role},
		})
		return
	}

	c.Redirect(http.StatusFound, "/welcome")
}

// @Summary		Logout
// @Description	Ends the session and redirects to the login page
// @Tags			Auth
// @Success		302
// @Router			/logout [get]
func (co Controller) Logout(c *gin.Context) {
	if err := auth.Logout(c); err != nil {
		log.Error().Err(err).Msg("ending session")
	}

	c.Redirect(http.StatusFound, "/login")
}

// @Summary		Update profile
// @Description	Updates username, avatar and role of the logged in user and refreshes the session.
// @Description	Form posts are redirected to the transaction form.
// @Tags			Auth
// @Accept			json,x-www-form-urlencoded
// @Produce		json
// @Success		200		{object}	UserResponse
// @Success		302
// @Failure		400		{object}	httputil.HTTPError
// @Failure		401		{object}	httputil.HTTPError
// @Failure		500		{object}	httputil.HTTPError
// @Param			profile	body		auth.Profile	true	"Profile"
// @Router			/profile [post]
func (co Controller) UpdateProfile(c *gin.Context) {
	session, ok := auth.Current(c)
	if !ok {
		httputil.NewError(c, http.StatusUnauthorized, auth.ErrUnauthenticated)
		return
	}

	var profile auth.Profile
	err := httputil.BindData(c, &profile)

	var user models.User
	if err == nil {
		user, err = auth.UpdateProfile(co.DB, session.UserID, profile)
	}

	// The session keeps a copy of the profile
	if err == nil {
		err = auth.Login(c, user)
	}

	if err != nil {
		if httputil.WantsJSON(c) {
			httputil.NewError(c, status(err), err)
			return
		}

		redirectWith(c, "/profile", "error", clientMessage(c, err, "Error updating profile"))
		return
	}

	if httputil.WantsJSON(c) {
		c.JSON(http.StatusOK, UserResponse{
			Success: true,
			Message: "Profile updated",
			Data:    User{Username: user.Username, Avatar: user.Avatar, Role: user.Role},
		})
		return
	}

	c.Redirect(http.StatusFound, "/transaction")
}
