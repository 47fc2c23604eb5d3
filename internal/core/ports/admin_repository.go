package ports

import (
	"context"

	"github.com/antigaspi/recruitment-system/internal/core/domain"
)

// AdminRepository defines persistence operations over the admins collection.
// The API only reads admins; Create exists for the seed command.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
}
