package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/ports"
	"github.com/courseforge/course-market/internal/metrics"
)

// PurchaseService records and lists learner purchases.
type PurchaseService struct {
	purchases ports.PurchaseRepository
	courses   ports.CourseRepository
	logger    zerolog.Logger
}

func NewPurchaseService(purchases ports.PurchaseRepository, courses ports.CourseRepository, logger zerolog.Logger) *PurchaseService {
	return &PurchaseService{purchases: purchases, courses: courses, logger: logger}
}

// Purchase records that userID bought courseID. The course must exist.
// Buying the same course twice is an idempotent replay: the existing
// record is returned without side effects. Payment settlement is out
// of scope; the purchase is recorded, not settled.
func (s *PurchaseService) Purchase(ctx context.Context, userID, courseID string) (*ports.PurchaseResult, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	existing, err := s.purchases.FindByUserAndCourse(ctx, userID, courseID)
	if err == nil && existing != nil {
		s.logger.Info().Str("user_id", userID).Str("course_id", courseID).Msg("purchase replay")
		metrics.PurchasesTotal.WithLabelValues("replayed").Inc()
		return &ports.PurchaseResult{PurchaseID: existing.ID, AlreadyOwned: true}, nil
	}
	if err != nil && !errors.Is(err, domain.ErrPurchaseNotFound) {
		return nil, err
	}

	purchase := &domain.Purchase{
		UserID:    userID,
		CourseID:  courseID,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.purchases.Create(ctx, purchase)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("course_id", courseID).Msg("failed to record purchase")
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("purchase_id", id).Str("user_id", userID).Str("course_id", courseID).Msg("purchase recorded")
	return &ports.PurchaseResult{PurchaseID: id}, nil
}

// ListPurchases returns userID's purchases and the courses they
// reference. The filter is always the resolved principal id from the
// gate; a client-supplied id is never consulted.
func (s *PurchaseService) ListPurchases(ctx context.Context, userID string) (*ports.PurchaseListing, error) {
	purchases, err := s.purchases.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(purchases))
	for _, p := range purchases {
		ids = append(ids, p.CourseID)
	}

	courses, err := s.courses.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ports.PurchaseListing{Purchases: purchases, Courses: courses}, nil
}
