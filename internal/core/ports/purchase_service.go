package ports

import (
	"context"

	"github.com/courseforge/course-market/internal/core/domain"
)

// PurchaseResult is returned after recording a purchase. AlreadyOwned
// is true when the learner had previously bought the course and the
// existing record was returned instead of a new one.
type PurchaseResult struct {
	PurchaseID   string
	AlreadyOwned bool
}

// PurchaseListing pairs a learner's purchase records with the course
// documents they reference.
type PurchaseListing struct {
	Purchases []*domain.Purchase
	Courses   []*domain.Course
}

// PurchaseService records and lists purchases. UserID is always the
// resolved learner from the auth gate; a client-supplied id is never
// consulted.
type PurchaseService interface {
	Purchase(ctx context.Context, userID, courseID string) (*PurchaseResult, error)
	ListPurchases(ctx context.Context, userID string) (*PurchaseListing, error)
}
