package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// CookieName is the cookie that carries the signed credential.
	CookieName = "token"
	// TokenTTL is the fixed credential lifetime.
	TokenTTL = 24 * time.Hour
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded credential handed to downstream handlers after
// verification. Email is the sole basis for ownership decisions; Raw keeps
// whatever else the caller put into the claims payload at issuance.
type Claims struct {
	Email string
	Raw   jwt.MapClaims
}

// Service signs and verifies credentials with a process-wide HMAC secret.
type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), now: time.Now}
}

// Issue signs the supplied claims payload as-is, adding iat/exp for the
// fixed lifetime. The payload is trusted; there is no shape validation
// beyond what the JSON binding already did.
func (s *Service) Issue(payload map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	issuedAt := s.now()
	claims["iat"] = issuedAt.Unix()
	claims["exp"] = issuedAt.Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the decoded claims.
// Any failure collapses into ErrInvalidToken; the gate treats all of them
// as the same authentication error.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := mapClaims["email"].(string)
	return &Claims{Email: email, Raw: mapClaims}, nil
}
