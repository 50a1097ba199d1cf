package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adtc/araporanga/internal/db"
	"github.com/adtc/araporanga/internal/models"
)

const SessionTTL = 24 * time.Hour

var (
	ErrBadCredentials = errors.New("invalid username or password")
	ErrNotAdmin       = errors.New("account has no admin role")
	ErrNoSession      = errors.New("no valid session")
)

// Login verifies a credential pair against admin_users and, on success,
// creates a session row. The caller puts the returned token in a cookie;
// the secret itself never leaves the server.
func Login(username, password string) (*models.AdminSession, error) {
	var user models.AdminUser
	if err := db.Conn().Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrBadCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrBadCredentials
	}
	if user.Role != "admin" {
		return nil, ErrNotAdmin
	}

	sess := models.AdminSession{
		Token:       uuid.NewString(),
		AdminUserID: user.ID,
		ExpiresAt:   time.Now().Add(SessionTTL),
	}
	if err := db.Conn().Create(&sess).Error; err != nil {
		return nil, err
	}
	sess.AdminUser = user
	return &sess, nil
}

// SessionUser resolves a session token to its admin user, rejecting expired
// sessions and non-admin roles.
func SessionUser(token string) (*models.AdminUser, error) {
	if token == "" {
		return nil, ErrNoSession
	}
	var sess models.AdminSession
	if err := db.Conn().Preload("AdminUser").
		Where("token = ?", token).First(&sess).Error; err != nil {
		return nil, ErrNoSession
	}
	if time.Now().After(sess.ExpiresAt) {
		db.Conn().Delete(&sess)
		return nil, ErrNoSession
	}
	if sess.AdminUser.Role != "admin" {
		return nil, ErrNotAdmin
	}
	return &sess.AdminUser, nil
}

// Logout removes the session row, if any.
func Logout(token string) {
	if token != "" {
		db.Conn().Where("token = ?", token).Delete(&models.AdminSession{})
	}
}

// ChangePassword verifies the current password and stores a new bcrypt hash.
func ChangePassword(userID uint, current, next string) error {
	var user models.AdminUser
	if err := db.Conn().First(&user, userID).Error; err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)) != nil {
		return ErrBadCredentials
	}
	if len(next) < 4 {
		return errors.New("new password too short")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Conn().Model(&user).Update("password_hash", string(hash)).Error
}
