package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc := NewService("test-secret")

	token, err := svc.Issue(map[string]interface{}{"email": "hr@x.com", "name": "HR"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "hr@x.com", claims.Email)
	assert.Equal(t, "HR", claims.Raw["name"])
}

func TestVerifyAfterExpiry(t *testing.T) {
	svc := NewService("test-secret")

	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(map[string]interface{}{"email": "hr@x.com"})
	require.NoError(t, err)

	// Still valid one minute before the expiry instant
	svc.now = func() time.Time { return issuedAt.Add(TokenTTL - time.Minute) }
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	// Fails once the expiry instant has passed
	svc.now = func() time.Time { return issuedAt.Add(TokenTTL + time.Minute) }
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewService("secret-a")
	verifier := NewService("secret-b")

	token, err := issuer.Issue(map[string]interface{}{"email": "hr@x.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnsignedToken(t *testing.T) {
	svc := NewService("test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "hr@x.com"})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewService("test-secret")
	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
