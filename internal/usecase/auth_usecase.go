package usecase

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/security"
)

type authUsecase struct {
	tokens *auth.Service
	audit  *security.AuditLogger
}

func NewAuthUsecase(tokens *auth.Service, audit *security.AuditLogger) domain.AuthUsecase {
	return &authUsecase{tokens: tokens, audit: audit}
}

// IssueToken signs the claims payload as supplied. The payload is trusted
// as-is; issuance only fails if signing itself does.
func (uc *authUsecase) IssueToken(ctx context.Context, claims map[string]interface{}) (string, error) {
	token, err := uc.tokens.Issue(claims)
	if err != nil {
		return "", apperror.Internal(err)
	}

	email, _ := claims["email"].(string)
	uc.audit.Log(security.Event{Event: security.EventTokenIssued, Email: email})

	return token, nil
}
