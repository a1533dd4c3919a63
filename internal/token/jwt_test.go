package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/gucfolio/internal/model"
)

func TestJWT_SessionToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	u := uuid.New()

	session, err := j.GenerateSessionToken(u)
	require.NoError(t, err)

	claims, err := j.ParseSessionToken(session)
	require.NoError(t, err)
	require.Equal(t, u, claims.UserID)
	require.Empty(t, claims.Email)
	require.WithinDuration(t, claims.IssuedAt.Add(SessionTTL), claims.ExpiresAt, time.Second)
}

func TestJWT_ResetToken_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	issuedAt := time.Now().Add(-time.Minute)

	reset, err := j.GenerateResetToken("a.b@student.guc.edu.eg", issuedAt)
	require.NoError(t, err)

	claims, err := j.ParseResetToken(reset)
	require.NoError(t, err)
	require.Equal(t, "a.b@student.guc.edu.eg", claims.Email)
	require.True(t, claims.IssuedAt.Equal(issuedAt.Truncate(time.Second)))
	require.Equal(t, uuid.Nil, claims.UserID)
}

func TestJWT_CrossUse_Rejected(t *testing.T) {
	j := NewJWT("secret")

	session, err := j.GenerateSessionToken(uuid.New())
	require.NoError(t, err)
	_, err = j.ParseResetToken(session)
	require.ErrorIs(t, err, model.ErrTokenClaims)

	reset, err := j.GenerateResetToken("a.b@student.guc.edu.eg", time.Now())
	require.NoError(t, err)
	_, err = j.ParseSessionToken(reset)
	require.ErrorIs(t, err, model.ErrTokenClaims)

	// both shapes still pass the purpose-agnostic check
	_, err = j.Verify(session)
	require.NoError(t, err)
	_, err = j.Verify(reset)
	require.NoError(t, err)
}

func TestJWT_Expired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	j := &JWT{secretKey: []byte("secret"), now: func() time.Time { return issued }}

	reset, err := j.GenerateResetToken("a.b@student.guc.edu.eg", issued)
	require.NoError(t, err)

	j.now = time.Now
	_, err = j.ParseResetToken(reset)
	require.ErrorIs(t, err, model.ErrTokenExpired)

	session, err := (&JWT{secretKey: []byte("secret"), now: func() time.Time { return time.Now().Add(-11 * 24 * time.Hour) }}).GenerateSessionToken(uuid.New())
	require.NoError(t, err)
	_, err = j.ParseSessionToken(session)
	require.ErrorIs(t, err, model.ErrTokenExpired)
}

func TestJWT_InvalidSignature(t *testing.T) {
	issuer := NewJWT("secret")
	verifier := NewJWT("other-secret")

	session, err := issuer.GenerateSessionToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(session)
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = issuer.Verify("not-a-token")
	assert.ErrorIs(t, err, model.ErrInvalidToken)

	_, err = issuer.Verify(session + "x")
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}
