package ports

import (
	"context"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
)

// AuthService exchanges admin credentials for a signed session token.
// Failure reasons stay distinct internally (logging) but callers rendering
// them to a client must collapse them into one generic message.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
}
