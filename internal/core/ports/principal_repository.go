package ports

import (
	"context"

	"github.com/courseforge/course-market/internal/core/domain"
)

// PrincipalRepository persists principals of a single kind. Each kind
// has its own backing collection, so email uniqueness is scoped per
// kind by construction.
type PrincipalRepository interface {
	Create(ctx context.Context, p *domain.Principal) (*domain.Principal, error)
	FindByEmail(ctx context.Context, email string) (*domain.Principal, error)
	FindByID(ctx context.Context, id string) (*domain.Principal, error)
}
