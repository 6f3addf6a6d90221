package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/ports"
	"github.com/courseforge/course-market/internal/metrics"
)

// CourseService implements instructor course management and the public
// catalog.
type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.CatalogCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache ports.CatalogCache, audit ports.AuditSink, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, audit: audit, logger: logger}
}

// Create persists a course owned by the resolved instructor.
func (s *CourseService) Create(ctx context.Context, input ports.CreateCourseInput) (string, error) {
	now := time.Now().UTC()
	course := &domain.Course{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		OwnerID:     input.OwnerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, course)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create course")
		return "", err
	}

	s.invalidateCatalog(ctx)
	metrics.CoursesCreatedTotal.Inc()
	s.logger.Info().Str("course_id", id).Str("owner_id", input.OwnerID).Msg("course created")
	return id, nil
}

// Update replaces a course's mutable fields. Existence is resolved
// first, ownership second, so a missing id is ErrCourseNotFound and a
// foreign owner is ErrForbidden.
func (s *CourseService) Update(ctx context.Context, input ports.UpdateCourseInput) error {
	course, err := s.repo.FindByID(ctx, input.CourseID)
	if err != nil {
		return err
	}
	if !course.OwnedBy(input.ActorID) {
		s.denied(input.ActorID, input.CourseID)
		return domain.ErrForbidden
	}

	course.Title = input.Title
	course.Description = input.Description
	course.ImageURL = input.ImageURL
	course.Price = input.Price
	course.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("course_id", course.ID).Msg("failed to update course")
		return err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Str("course_id", course.ID).Msg("course updated")
	return nil
}

// Delete removes a course after the same existence-then-ownership
// check as Update.
func (s *CourseService) Delete(ctx context.Context, courseID, actorID string) error {
	course, err := s.repo.FindByID(ctx, courseID)
	if err != nil {
		return err
	}
	if !course.OwnedBy(actorID) {
		s.denied(actorID, courseID)
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, courseID); err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("failed to delete course")
		return err
	}

	s.invalidateCatalog(ctx)
	s.logger.Info().Str("course_id", courseID).Msg("course deleted")
	return nil
}

// ListByOwner returns the courses created by one instructor.
func (s *CourseService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Course, error) {
	return s.repo.FindByOwner(ctx, ownerID)
}

// ListCatalog returns the public catalog, reading through the cache.
// A cache failure degrades to a direct store read.
func (s *CourseService) ListCatalog(ctx context.Context) ([]*domain.Course, error) {
	courses, warm, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache read failed")
	} else if warm {
		metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
		return courses, nil
	}
	metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()

	courses, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, courses); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache write failed")
	}
	return courses, nil
}

func (s *CourseService) invalidateCatalog(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func (s *CourseService) denied(actorID, courseID string) {
	s.audit.Enqueue(domain.AuditEvent{
		PrincipalID: actorID,
		Kind:        domain.KindInstructor,
		Action:      domain.AuditMutationDenied,
		ResourceID:  courseID,
		OccurredAt:  time.Now().UTC(),
	})
}
