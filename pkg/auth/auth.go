// Package auth handles household accounts: registration, password
// verification, profile changes and the session snapshot of the
// logged in user.
package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/moneyjournal/backend/pkg/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 8

var (
	ErrUserExists         = models.ErrUserExists
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters long")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("you need to be logged in for this")
)

// Register creates a new user with a hashed password.
func Register(db *gorm.DB, username, email, password string) (models.User, error) {
	if len(password) < MinPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	// Unique indexes catch concurrent registrations
	exists, err := models.UserExists(db, username, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}

	err = db.Create(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Authenticate returns the user if the password matches the stored hash.
// Unknown users and wrong passwords return the same error.
func Authenticate(db *gorm.DB, login, password string) (models.User, error) {
	user, err := models.FindUserByLogin(db, login)
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrInvalidCredentials
	} else if err != nil {
		return models.User{}, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Profile is the part of a user that the user can change.
type Profile struct {
	Username string `json:"username" form:"username" example:"sekar"`
	Avatar   string `json:"avatar" form:"avatar" example:"🌸"`
	Role     string `json:"role" form:"role" example:"Wife"`
}

// UpdateProfile updates the profile of a user and returns the updated user.
func UpdateProfile(db *gorm.DB, id uuid.UUID, profile Profile) (models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		return models.User{}, err
	}

	if username := strings.TrimSpace(profile.Username); username != "" {
		user.Username = username
	}
	user.Avatar = profile.Avatar
	user.Role = profile.Role

	err = db.Save(&user).Error
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}
