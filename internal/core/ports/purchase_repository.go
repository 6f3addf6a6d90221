package ports

import (
	"context"

	"github.com/courseforge/course-market/internal/core/domain"
)

// PurchaseRepository defines persistence operations for purchases.
type PurchaseRepository interface {
	Create(ctx context.Context, p *domain.Purchase) (string, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Purchase, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Purchase, error)
}
