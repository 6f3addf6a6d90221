package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/ports"
)

type stubPurchaseService struct {
	purchaseFn func(ctx context.Context, userID, courseID string) (*ports.PurchaseResult, error)
	listFn     func(ctx context.Context, userID string) (*ports.PurchaseListing, error)
}

func (s *stubPurchaseService) Purchase(ctx context.Context, userID, courseID string) (*ports.PurchaseResult, error) {
	return s.purchaseFn(ctx, userID, courseID)
}

func (s *stubPurchaseService) ListPurchases(ctx context.Context, userID string) (*ports.PurchaseListing, error) {
	return s.listFn(ctx, userID)
}

func TestPurchaseHandler_Purchase_UsesResolvedBuyer(t *testing.T) {
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, userID, courseID string) (*ports.PurchaseResult, error) {
			if userID != "learner-1" || courseID != "course-1" {
				t.Fatalf("unexpected args: %s %s", userID, courseID)
			}
			return &ports.PurchaseResult{PurchaseID: "purchase-1"}, nil
		},
	}
	h := NewPurchaseHandler(stub)

	_, c, rec := newCourseTestContext(t, http.MethodPost, "/course/purchase",
		`{"courseId":"course-1"}`, "learner-1")

	if err := h.Purchase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp purchaseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.PurchaseID != "purchase-1" || resp.AlreadyOwned {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestPurchaseHandler_Purchase_Replay(t *testing.T) {
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, userID, courseID string) (*ports.PurchaseResult, error) {
			return &ports.PurchaseResult{PurchaseID: "purchase-1", AlreadyOwned: true}, nil
		},
	}
	h := NewPurchaseHandler(stub)

	_, c, rec := newCourseTestContext(t, http.MethodPost, "/course/purchase",
		`{"courseId":"course-1"}`, "learner-1")

	if err := h.Purchase(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp purchaseResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.AlreadyOwned {
		t.Fatalf("expected alreadyOwned flag, got %+v", resp)
	}
}

func TestPurchaseHandler_Purchase_UnknownCourse(t *testing.T) {
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, userID, courseID string) (*ports.PurchaseResult, error) {
			return nil, domain.ErrCourseNotFound
		},
	}
	h := NewPurchaseHandler(stub)

	e, c, rec := newCourseTestContext(t, http.MethodPost, "/course/purchase",
		`{"courseId":"missing"}`, "learner-1")

	if err := h.Purchase(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPurchaseHandler_Purchase_MissingCourseID(t *testing.T) {
	stub := &stubPurchaseService{
		purchaseFn: func(ctx context.Context, userID, courseID string) (*ports.PurchaseResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPurchaseHandler(stub)

	e, c, rec := newCourseTestContext(t, http.MethodPost, "/course/purchase", `{}`, "learner-1")

	if err := h.Purchase(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPurchaseHandler_ListPurchases(t *testing.T) {
	now := time.Now().UTC()
	stub := &stubPurchaseService{
		listFn: func(ctx context.Context, userID string) (*ports.PurchaseListing, error) {
			if userID != "learner-1" {
				t.Fatalf("expected resolved learner, got %q", userID)
			}
			return &ports.PurchaseListing{
				Purchases: []*domain.Purchase{{ID: "purchase-1", UserID: userID, CourseID: "course-1", CreatedAt: now}},
				Courses:   []*domain.Course{{ID: "course-1", Title: "Go", Price: 20, OwnerID: "inst-1"}},
			}, nil
		},
	}
	h := NewPurchaseHandler(stub)

	_, c, rec := newCourseTestContext(t, http.MethodGet, "/user/purchases", "", "learner-1")

	if err := h.ListPurchases(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp purchaseListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Purchases) != 1 || resp.Purchases[0].CourseID != "course-1" {
		t.Fatalf("unexpected purchases: %+v", resp.Purchases)
	}
	if len(resp.CoursesData) != 1 || resp.CoursesData[0].Title != "Go" {
		t.Fatalf("unexpected coursesData: %+v", resp.CoursesData)
	}
}
