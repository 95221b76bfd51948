package models

import (
	"strings"

	"github.com/moneyjournal/backend/pkg/registry"
	"gorm.io/gorm"
)

// User is a member of the household that can log in.
type User struct {
	DefaultModel
	Username     string `gorm:"uniqueIndex:idx_users_username;not null"`
	Email        string `gorm:"uniqueIndex:idx_users_email;not null"`
	PasswordHash string `gorm:"not null"`
	Avatar       string
	Role         string
}

// BeforeSave trims the string fields, sets the defaults for avatar
// and role and validates the role.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Username = strings.TrimSpace(u.Username)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Avatar = strings.TrimSpace(u.Avatar)
	u.Role = strings.TrimSpace(u.Role)

	if u.Username == "" {
		return ErrUsernameEmpty
	}

	if u.Email == "" {
		return ErrEmailEmpty
	}

	if u.Avatar == "" {
		u.Avatar = registry.DefaultAvatar
	}

	if u.Role == "" {
		u.Role = registry.RoleSelf
	} else if !registry.IsRole(u.Role) {
		return ErrInvalidRole
	}

	return nil
}

// FindUserByLogin returns the user with the given username or email.
func FindUserByLogin(db *gorm.DB, login string) (User, error) {
	login = strings.TrimSpace(login)

	var user User
	err := db.Where("username = ? OR email = ?", login, strings.ToLower(login)).First(&user).Error
	return user, err
}

// UserExists reports whether a user with the username or email exists.
func UserExists(db *gorm.DB, username, email string) (bool, error) {
	var count int64
	err := db.Model(&User{}).
		Where("username = ? OR email = ?", strings.TrimSpace(username), strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}
