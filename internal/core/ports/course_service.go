package ports

import (
	"context"

	"github.com/courseforge/course-market/internal/core/domain"
)

// CreateCourseInput carries the data for a new course. OwnerID is
// always the resolved instructor from the auth gate, never a
// client-supplied value.
type CreateCourseInput struct {
	Title       string
	Description string
	ImageURL    string
	Price       float64
	OwnerID     string
}

// UpdateCourseInput carries a full replacement of a course's mutable
// fields. ActorID is the resolved instructor attempting the change.
type UpdateCourseInput struct {
	CourseID    string
	Title       string
	Description string
	ImageURL    string
	Price       float64
	ActorID     string
}

// CourseService defines the instructor-facing and public course
// operations. Update and Delete resolve existence first and ownership
// second, so a missing id yields ErrCourseNotFound and a mismatched
// owner yields ErrForbidden, never the other way around.
type CourseService interface {
	Create(ctx context.Context, input CreateCourseInput) (string, error)
	Update(ctx context.Context, input UpdateCourseInput) error
	Delete(ctx context.Context, courseID, actorID string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Course, error)
	// ListCatalog returns the public catalog, served through the
	// catalog cache when warm.
	ListCatalog(ctx context.Context) ([]*domain.Course, error)
}

// CatalogCache is a read-through cache for the public course catalog.
type CatalogCache interface {
	// Get returns the cached catalog and whether the cache was warm.
	Get(ctx context.Context) ([]*domain.Course, bool, error)
	Set(ctx context.Context, courses []*domain.Course) error
	Invalidate(ctx context.Context) error
}
