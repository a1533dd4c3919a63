package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/dtroode/gucfolio/internal/model"
)

// Claims represents JWT claims shared by session and reset tokens.
// Session tokens set UserID, reset tokens set Email; never both.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id,omitempty"`
	Email  string `json:"email,omitempty"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey []byte
	now       func() time.Time
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) *JWT {
	return &JWT{secretKey: []byte(secretKey), now: time.Now}
}

var _ model.TokenManager = (*JWT)(nil)

const (
	SessionTTL = 10 * 24 * time.Hour
	ResetTTL   = time.Hour
)

// GenerateSessionToken signs a claim holding the user id, valid for ten days.
func (j *JWT) GenerateSessionToken(userID uuid.UUID) (string, error) {
	now := j.now()
	token, err := j.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
		UserID: userID.String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return token, nil
}

// GenerateResetToken signs a claim holding the email and the given issue time.
// The issue time is truncated to seconds so it can be stored as the user's reset floor.
func (j *JWT) GenerateResetToken(email string, issuedAt time.Time) (string, error) {
	issuedAt = issuedAt.Truncate(time.Second)
	token, err := j.sign(Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ResetTTL)),
		},
		Email: email,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}

	return token, nil
}

func (j *JWT) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secretKey)
}

// Verify validates signature and expiry and returns the claims.
func (j *JWT) Verify(tokenString string) (model.Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithTimeFunc(j.now),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Claims{}, model.ErrTokenExpired
		}
		return model.Claims{}, fmt.Errorf("%w: %v", model.ErrInvalidToken, err)
	}
	if !token.Valid {
		return model.Claims{}, model.ErrInvalidToken
	}

	out := model.Claims{Email: claims.Email}
	if claims.UserID != "" {
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return model.Claims{}, fmt.Errorf("%w: malformed user id", model.ErrTokenClaims)
		}
		out.UserID = userID
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}

// ParseSessionToken verifies the token and requires a user id without an email.
func (j *JWT) ParseSessionToken(tokenString string) (model.Claims, error) {
	claims, err := j.Verify(tokenString)
	if err != nil {
		return model.Claims{}, err
	}
	if claims.UserID == uuid.Nil || claims.Email != "" {
		return model.Claims{}, fmt.Errorf("%w: not a session token", model.ErrTokenClaims)
	}
	return claims, nil
}

// ParseResetToken verifies the token and requires an email and issue time without a user id.
func (j *JWT) ParseResetToken(tokenString string) (model.Claims, error) {
	claims, err := j.Verify(tokenString)
	if err != nil {
		return model.Claims{}, err
	}
	if claims.Email == "" || claims.UserID != uuid.Nil || claims.IssuedAt.IsZero() {
		return model.Claims{}, fmt.Errorf("%w: not a reset token", model.ErrTokenClaims)
	}
	return claims, nil
}
