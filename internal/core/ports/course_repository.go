package ports

import (
	"context"

	"github.com/courseforge/course-market/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.Course, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Course, error)
	FindAll(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, id string) error
}
