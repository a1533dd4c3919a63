package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/metrics"
	"github.com/dtroode/gucfolio/internal/model"
)

// dummyHash is compared against when the login email is unknown so both
// failure paths pay for one bcrypt comparison.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

const resetMailTimeout = time.Minute

type Auth struct {
	users       *CredentialStore
	tokens      model.TokenManager
	session     *Session
	mailer      model.Mailer
	logger      *logger.Logger
	metrics     *metrics.Metrics
	baseURL     string
	now         func() time.Time
	mailTimeout time.Duration
	dispatches  sync.WaitGroup
}

func NewAuth(
	users *CredentialStore,
	tokens model.TokenManager,
	session *Session,
	mailer model.Mailer,
	logger *logger.Logger,
	m *metrics.Metrics,
	publicBaseURL string,
) *Auth {
	return &Auth{
		users:       users,
		tokens:      tokens,
		session:     session,
		mailer:      mailer,
		logger:      logger,
		metrics:     m,
		baseURL:     strings.TrimRight(publicBaseURL, "/"),
		now:         time.Now,
		mailTimeout: resetMailTimeout,
	}
}

func (a *Auth) Signup(ctx context.Context, params model.SignupParams) error {
	a.logger.Debug("Auth service: starting user registration",
		"email", params.Email)

	if params.Email == "" || params.Password == "" || params.ConfirmPassword == "" ||
		params.FirstName == "" || params.LastName == "" || params.GucID == "" {
		return apierrors.NewErrIncompleteInformation()
	}
	if !IsGUCMail(params.Email) {
		return apierrors.NewErrNonGUCMail()
	}
	if params.Password != params.ConfirmPassword {
		return apierrors.NewErrPasswordMismatch()
	}
	if !IsStrongPassword(params.Password) {
		return apierrors.NewErrInvalidPassword()
	}
	if !IsGUCID(params.GucID) {
		return apierrors.NewErrInvalidGUCID()
	}

	now := a.now()
	user := model.User{
		ID:                 uuid.New(),
		Email:              params.Email,
		FirstName:          params.FirstName,
		LastName:           params.LastName,
		GucID:              params.GucID,
		ProfilePic:         model.DefaultProfilePic,
		PasswordChangeDate: now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	user.SetPassword(params.Password)

	saved, err := a.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			a.logger.Info("Auth service: user already exists",
				"email", params.Email)
			return apierrors.NewErrUserAlreadyExists(err)
		}
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", saved.Email,
		"user_id", saved.ID)

	return nil
}

// Login returns a session token. Unknown email and wrong password fail identically.
func (a *Auth) Login(ctx context.Context, email, password string) (string, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", email)

	if email == "" || password == "" {
		return "", apierrors.NewErrMissingCredentials()
	}

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Error("Auth service: failed to get user by email",
				"email", email,
				"error", err.Error())
			return "", fmt.Errorf("failed to get user by email: %w", err)
		}
		user = model.User{PasswordHash: dummyHash}
	}

	match, err := a.users.Verify(ctx, user, password)
	if err != nil && user.ID != uuid.Nil {
		a.logger.Error("Auth service: failed to verify password",
			"user_id", user.ID,
			"error", err.Error())
		return "", fmt.Errorf("failed to verify password: %w", err)
	}
	if !match || user.ID == uuid.Nil {
		a.logger.Info("Auth service: invalid credentials",
			"email", email)
		return "", apierrors.NewErrInvalidCredentials()
	}

	token, err := a.session.Issue(user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue session token",
			"user_id", user.ID,
			"error", err.Error())
		return "", err
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID)

	return token, nil
}

// ForgotPassword moves the reset watermark to a fresh token's issue time and
// mails the token in the background. The result never reveals whether the
// account exists. host is used for the link when no public base URL is configured.
func (a *Auth) ForgotPassword(ctx context.Context, email, host string) error {
	a.logger.Debug("Auth service: password reset requested",
		"email", email)

	if !IsGUCMail(email) {
		return apierrors.NewErrNonGUCMail()
	}

	issuedAt := a.now().Truncate(time.Second)
	token, err := a.tokens.GenerateResetToken(email, issuedAt)
	if err != nil {
		a.logger.Error("Auth service: failed to generate reset token",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: reset requested for unknown email",
				"email", email)
			return nil
		}
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	user.PasswordResetTokenDate = &issuedAt
	user.UpdatedAt = a.now()
	if _, err := a.users.Update(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to store reset watermark",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to update user: %w", err)
	}

	a.dispatchResetMail(ctx, user, a.resetLink(host, token))

	a.logger.Info("Auth service: reset watermark set",
		"user_id", user.ID,
		"issued_at", issuedAt)

	return nil
}

func (a *Auth) ResetPassword(ctx context.Context, params model.ResetParams) error {
	a.logger.Debug("Auth service: password reset submitted")

	if params.Token == "" || params.Password == "" || params.ConfirmPassword == "" {
		return apierrors.NewErrInvalidResetToken()
	}
	if params.Password != params.ConfirmPassword {
		return apierrors.NewErrPasswordMismatch()
	}
	if !IsStrongPassword(params.Password) {
		return apierrors.NewErrInvalidPassword()
	}

	claims, err := a.tokens.ParseResetToken(params.Token)
	if err != nil {
		a.logger.Info("Auth service: invalid reset token",
			"error", err.Error())
		return apierrors.NewErrInvalidResetToken()
	}

	user, err := a.users.GetByEmailWithResetFloor(ctx, claims.Email, claims.IssuedAt)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			a.logger.Info("Auth service: stale or unknown reset token",
				"email", claims.Email)
			return apierrors.NewErrInvalidResetToken()
		}
		a.logger.Error("Auth service: failed to get user for reset",
			"email", claims.Email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	now := a.now()
	user.PasswordResetTokenDate = nil
	user.PasswordChangeDate = now
	user.UpdatedAt = now
	user.SetPassword(params.Password)

	if _, err := a.users.Update(ctx, user); err != nil {
		a.logger.Error("Auth service: failed to reset password",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to update user: %w", err)
	}

	a.logger.Info("Auth service: password reset",
		"user_id", user.ID)

	return nil
}

func (a *Auth) Logout(ctx context.Context, token string) error {
	return a.session.Revoke(ctx, token)
}

// Wait blocks until background reset mail dispatches finish.
func (a *Auth) Wait() {
	a.dispatches.Wait()
}

func (a *Auth) resetLink(host, token string) string {
	base := a.baseURL
	if base == "" {
		base = "http://" + host
	}
	return base + "/reset/" + token
}

func (a *Auth) dispatchResetMail(ctx context.Context, user model.User, link string) {
	a.dispatches.Add(1)
	go func() {
		defer a.dispatches.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.mailTimeout)
		defer cancel()

		if err := a.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
			a.metrics.ObserveResetMail(metrics.MailFailed)
			a.logger.Error("Auth service: failed to send reset mail",
				"user_id", user.ID,
				"error", err.Error())
			return
		}

		a.metrics.ObserveResetMail(metrics.MailSent)
		a.logger.Info("Auth service: reset mail sent",
			"user_id", user.ID)
	}()
}
