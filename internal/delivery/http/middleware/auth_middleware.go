package middleware

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// VerifyToken is the request gate for applicant-scoped reads. It extracts
// the credential from the token cookie and validates signature and expiry.
// No cookie, or an invalid/expired one, fails closed with 401 before any
// handler logic runs. On success the decoded claims are installed on the
// request context as a typed value; the ownership check against the
// requested identity happens downstream with those claims.
//
// The gate does no I/O - verification is local signature checking only.
func VerifyToken(tokens *auth.Service, audit *security.AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.CookieName)
		if err != nil || tokenString == "" {
			audit.Log(security.Event{
				Event:     security.EventAuthFailed,
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
				Details:   map[string]interface{}{"reason": "missing cookie"},
			})
			response.Error(c, http.StatusUnauthorized, "Unauthorized access", nil)
			c.Abort()
			return
		}

		claims, err := tokens.Verify(tokenString)
		if err != nil {
			audit.Log(security.Event{
				Event:     security.EventAuthFailed,
				IP:        c.ClientIP(),
				RequestID: c.GetString(string(domain.KeyRequestID)),
				Details:   map[string]interface{}{"reason": "invalid token"},
			})
			response.Error(c, http.StatusUnauthorized, "Unauthorized access", nil)
			c.Abort()
			return
		}

		ctx := domain.WithClaims(c.Request.Context(), claims)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
