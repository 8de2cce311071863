package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"office-tools-backend/config"
	"office-tools-backend/db"
	passwordresetstore "office-tools-backend/lib/auth/password-reset-store"
	"office-tools-backend/lib/smtp"
	usersstore "office-tools-backend/lib/users/store"
	authutils "office-tools-backend/lib/utils/auth-utils"
	"office-tools-backend/models"
	authapimodels "office-tools-backend/models/api/auth"
	dbmodels "office-tools-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const resetCodeTTL = time.Hour

var (
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidResetCode   = errors.New("Invalid or expired reset code")
)

type Provider interface {
	Register(req authapimodels.RegisterRequest) (*authapimodels.TokenResponse, error)
	Login(req authapimodels.LoginRequest) (*authapimodels.TokenResponse, error)
	ForgotPassword(email string) error
	ResetPassword(req authapimodels.ResetPasswordRequest) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore:  usersstore.NewInstance(db.DB),
		resetStore: passwordresetstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore  usersstore.Provider
	resetStore passwordresetstore.Provider
}

func (i impl) Register(req authapimodels.RegisterRequest) (*authapimodels.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	existing, err := i.userStore.FindByEmail(req.Email)
	if err != nil {
		return nil, errors.Wrap(err, "user lookup failed")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}
	hash, err := authutils.HashPassword(req.Password)
	if err != nil {
		return nil, errors.Wrap(err, "password hash failed")
	}
	role := req.Role
	if role == "" {
		role = models.UserRoleEmployee
	}
	rec := dbmodels.User{
		Name:         req.Name,
		Email:        req.Email,
		Password:     hash,
		Role:         role,
		DepartmentID: req.DepartmentID,
	}
	id, err := i.userStore.Create(rec)
	if err != nil {
		return nil, errors.Wrap(err, "user create failed")
	}
	rec.ID = id
	return i.tokenResponse(rec)
}

func (i impl) Login(req authapimodels.LoginRequest) (*authapimodels.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	logger := log.WithField("email", req.Email)
	user, err := i.userStore.FindByEmail(req.Email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return nil, errors.Wrap(err, "user lookup failed")
	}
	if user == nil {
		logger.Debug("no user with this email")
		return nil, ErrInvalidCredentials
	}
	if !authutils.CheckPassword(user.Password, req.Password) {
		logger.Debug("password check failed")
		return nil, ErrInvalidCredentials
	}
	return i.tokenResponse(*user)
}

// ForgotPassword always succeeds from the caller's point of view so the
// endpoint does not leak which emails are registered.
func (i impl) ForgotPassword(email string) error {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("user lookup failed")
		return errors.Wrap(err, "user lookup failed")
	}
	if user == nil {
		logger.Debug("reset requested for unknown email")
		return nil
	}
	code, err := newResetCode()
	if err != nil {
		return errors.Wrap(err, "reset code generation failed")
	}
	if err := i.resetStore.DeleteByUser(user.ID); err != nil {
		logger.WithError(err).Warn("stale reset code cleanup failed")
	}
	_, err = i.resetStore.Create(dbmodels.PasswordReset{
		UserID:      user.ID,
		Code:        code,
		DateExpires: time.Now().Add(resetCodeTTL),
	})
	if err != nil {
		return errors.Wrap(err, "reset code save failed")
	}

	body := fmt.Sprintf("Mã đặt lại mật khẩu của bạn: %s\n%s/reset-password?code=%s",
		code, config.Conf.Smtp.ResetLink, code)
	if err := smtp.Instance.SendEmail(email, "Đặt lại mật khẩu", body); err != nil {
		logger.WithError(err).Error("reset mail send failed")
		return errors.Wrap(err, "reset mail send failed")
	}
	return nil
}

func (i impl) ResetPassword(req authapimodels.ResetPasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	now := time.Now()
	rec, err := i.resetStore.FindActiveByCode(req.Code, now)
	if err != nil {
		return errors.Wrap(err, "reset code lookup failed")
	}
	if rec == nil {
		return ErrInvalidResetCode
	}
	hash, err := authutils.HashPassword(req.NewPassword)
	if err != nil {
		return errors.Wrap(err, "password hash failed")
	}
	if err := i.userStore.Update(rec.UserID, map[string]interface{}{"password": hash}); err != nil {
		return errors.Wrap(err, "password update failed")
	}
	if err := i.resetStore.MarkUsed(rec.ID, now); err != nil {
		log.WithError(err).WithField("user_id", rec.UserID).Warn("reset code mark used failed")
	}
	return nil
}

func (i impl) tokenResponse(user dbmodels.User) (*authapimodels.TokenResponse, error) {
	departmentID := ""
	if user.DepartmentID != nil {
		departmentID = *user.DepartmentID
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role, departmentID)
	if err != nil {
		return nil, errors.Wrap(err, "jwt generation failed")
	}
	return &authapimodels.TokenResponse{
		Token: token,
		User: authapimodels.AuthUser{
			ID:           user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         user.Role,
			DepartmentID: user.DepartmentID,
		},
	}, nil
}

func newResetCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
