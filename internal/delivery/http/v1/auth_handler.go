package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

// NewAuthHandler registers the token issuance route
func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase, rateLimiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/token", rateLimiter, handler.IssueToken)
	}
}

// IssueToken godoc
// @Summary      Issue credential
// @Description  Sign the supplied claims payload and set it as the token cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Claims payload, minimally {email}"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.Error(apperror.BadRequest("Invalid claims payload"))
		return
	}

	token, err := h.authUC.IssueToken(c.Request.Context(), claims)
	if err != nil {
		c.Error(err)
		return
	}

	// HTTP-only so scripts cannot read it. The Secure flag stays off, which
	// matches the deployed behavior; browsers will send this over plaintext.
	c.SetCookie(auth.CookieName, token, int(auth.TokenTTL.Seconds()), "/", "", false, true)

	response.Success(c, http.StatusOK, "Token issued", nil)
}
