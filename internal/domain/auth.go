package domain

import "context"

// AuthUsecase issues signed credentials. The claims payload is taken from
// the client verbatim; minimally it carries an email.
type AuthUsecase interface {
	IssueToken(ctx context.Context, claims map[string]interface{}) (string, error)
}
