package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/gucfolio/internal/api/http/response"
	"github.com/dtroode/gucfolio/internal/apierrors"
	"github.com/dtroode/gucfolio/internal/logger"
	"github.com/dtroode/gucfolio/internal/model"
)

// AuthService defines account and session operations.
type AuthService interface {
	Signup(ctx context.Context, params model.SignupParams) error
	Login(ctx context.Context, email, password string) (string, error)
	ForgotPassword(ctx context.Context, email, host string) error
	ResetPassword(ctx context.Context, params model.ResetParams) error
	Logout(ctx context.Context, token string) error
}

// Auth handles the /auth endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type signupRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	GucID           string `json:"gucId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type forgotRequest struct {
	Email string `json:"email"`
}

type resetRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

type loginResponse struct {
	response.Message
	Token string `json:"token"`
}

func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	err := decodeBody(w, r, &req, func(get func(string) string) {
		req = signupRequest{
			Email:           get("email"),
			Password:        get("password"),
			ConfirmPassword: get("confirmPassword"),
			FirstName:       get("firstName"),
			LastName:        get("lastName"),
			GucID:           get("gucId"),
		}
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	err = h.authService.Signup(r.Context(), model.SignupParams{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		GucID:           req.GucID,
	})
	if err != nil {
		h.logger.Debug("Auth handler: signup rejected",
			"email", req.Email,
			"error", err.Error())
		handleError(w, h.logger, err)
		return
	}

	response.OK(w, apierrors.MsgSignupSuccess)
}

func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	err := decodeBody(w, r, &req, func(get func(string) string) {
		req = loginRequest{Email: get("email"), Password: get("password")}
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, loginResponse{
		Message: response.Message{Status: response.StatusSuccess, Message: apierrors.MsgLoginSuccess},
		Token:   token,
	})
}

func (h *Auth) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotRequest
	err := decodeBody(w, r, &req, func(get func(string) string) {
		req = forgotRequest{Email: get("email")}
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req.Email, r.Host); err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.OK(w, apierrors.MsgCheckYourEmail)
}

func (h *Auth) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	err := decodeBody(w, r, &req, func(get func(string) string) {
		req = resetRequest{
			Token:           get("token"),
			Password:        get("password"),
			ConfirmPassword: get("confirmPassword"),
		}
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	err = h.authService.ResetPassword(r.Context(), model.ResetParams{
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.OK(w, apierrors.MsgPasswordResetSuccess)
}

// Logout revokes the bearer token the request was authenticated with.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := h.contextManager.GetTokenFromContext(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		handleError(w, h.logger, err)
		return
	}

	response.OK(w, apierrors.MsgLogoutSuccess)
}
