package auth

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"office-tools-backend/config"
	passwordresetstore "office-tools-backend/lib/auth/password-reset-store"
	"office-tools-backend/lib/smtp"
	usersstore "office-tools-backend/lib/users/store"
	"office-tools-backend/models"
	authapimodels "office-tools-backend/models/api/auth"
	dbmodels "office-tools-backend/models/db"
)

func newFixture(t *testing.T) (impl, *gorm.DB) {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = gormDB.AutoMigrate(
		&dbmodels.Department{},
		&dbmodels.User{},
		&dbmodels.PasswordReset{},
	)
	require.NoError(t, err)

	conf := config.Configuration{}
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Smtp.ResetLink = "http://localhost:8080"
	config.Conf = &conf
	// Unconfigured relay, mail sends become warnings.
	smtp.Connect("", "", "", "", "no-reply@example.com", false)

	handler := impl{
		userStore:  usersstore.NewInstance(gormDB),
		resetStore: passwordresetstore.NewInstance(gormDB),
	}
	return handler, gormDB
}

func TestRegisterAndLogin(t *testing.T) {
	handler, _ := newFixture(t)

	t.Run("register defaults to employee role", func(t *testing.T) {
		resp, err := handler.Register(authapimodels.RegisterRequest{
			Name:     "Linh",
			Email:    "linh@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, models.UserRoleEmployee, resp.User.Role)
		require.NotEmpty(t, resp.User.ID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := handler.Register(authapimodels.RegisterRequest{
			Name:     "Linh 2",
			Email:    "linh@example.com",
			Password: "secret123",
		})
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("login with correct password", func(t *testing.T) {
		resp, err := handler.Login(authapimodels.LoginRequest{
			Email:    "linh@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "linh@example.com", resp.User.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{
			Email:    "linh@example.com",
			Password: "wrong",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := handler.Login(authapimodels.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestPasswordReset(t *testing.T) {
	handler, gormDB := newFixture(t)

	_, err := handler.Register(authapimodels.RegisterRequest{
		Name:     "Minh",
		Email:    "minh@example.com",
		Password: "oldpassword",
	})
	require.NoError(t, err)

	t.Run("unknown email does not leak", func(t *testing.T) {
		require.NoError(t, handler.ForgotPassword("nobody@example.com"))
		var count int64
		require.NoError(t, gormDB.Model(&dbmodels.PasswordReset{}).Count(&count).Error)
		require.Zero(t, count)
	})

	var code string
	t.Run("forgot password stores a code", func(t *testing.T) {
		require.NoError(t, handler.ForgotPassword("minh@example.com"))
		var rec dbmodels.PasswordReset
		require.NoError(t, gormDB.First(&rec).Error)
		require.Len(t, rec.Code, 32)
		require.True(t, rec.DateExpires.After(time.Now()))
		require.Nil(t, rec.DateUsed)
		code = rec.Code
	})

	t.Run("reset with valid code", func(t *testing.T) {
		err := handler.ResetPassword(authapimodels.ResetPasswordRequest{
			Code:        code,
			NewPassword: "newpassword",
		})
		require.NoError(t, err)

		_, err = handler.Login(authapimodels.LoginRequest{Email: "minh@example.com", Password: "oldpassword"})
		require.ErrorIs(t, err, ErrInvalidCredentials)
		_, err = handler.Login(authapimodels.LoginRequest{Email: "minh@example.com", Password: "newpassword"})
		require.NoError(t, err)
	})

	t.Run("code is single use", func(t *testing.T) {
		err := handler.ResetPassword(authapimodels.ResetPasswordRequest{
			Code:        code,
			NewPassword: "another",
		})
		require.ErrorIs(t, err, ErrInvalidResetCode)
	})

	t.Run("unknown code", func(t *testing.T) {
		err := handler.ResetPassword(authapimodels.ResetPasswordRequest{
			Code:        "deadbeef",
			NewPassword: "another",
		})
		require.ErrorIs(t, err, ErrInvalidResetCode)
	})

	t.Run("new request replaces stale codes", func(t *testing.T) {
		require.NoError(t, handler.ForgotPassword("minh@example.com"))
		require.NoError(t, handler.ForgotPassword("minh@example.com"))
		var count int64
		require.NoError(t, gormDB.Model(&dbmodels.PasswordReset{}).Where("date_used IS NULL").Count(&count).Error)
		require.Equal(t, int64(1), count)
	})
}
