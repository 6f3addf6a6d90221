package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/courseforge/course-market/internal/api/middleware"
	"github.com/courseforge/course-market/internal/core/domain"
	"github.com/courseforge/course-market/internal/core/ports"
)

type stubCourseService struct {
	createFn      func(ctx context.Context, input ports.CreateCourseInput) (string, error)
	updateFn      func(ctx context.Context, input ports.UpdateCourseInput) error
	deleteFn      func(ctx context.Context, courseID, actorID string) error
	listByOwnerFn func(ctx context.Context, ownerID string) ([]*domain.Course, error)
	listCatalogFn func(ctx context.Context) ([]*domain.Course, error)
}

func (s *stubCourseService) Create(ctx context.Context, input ports.CreateCourseInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubCourseService) Update(ctx context.Context, input ports.UpdateCourseInput) error {
	return s.updateFn(ctx, input)
}

func (s *stubCourseService) Delete(ctx context.Context, courseID, actorID string) error {
	return s.deleteFn(ctx, courseID, actorID)
}

func (s *stubCourseService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Course, error) {
	return s.listByOwnerFn(ctx, ownerID)
}

func (s *stubCourseService) ListCatalog(ctx context.Context) ([]*domain.Course, error) {
	return s.listCatalogFn(ctx)
}

func newCourseTestContext(t *testing.T, method, path, body, principalID string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = testErrorHandler(e)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principalID != "" {
		c.Set(middleware.CtxPrincipalID, principalID)
		c.Set(middleware.CtxKind, string(domain.KindInstructor))
	}
	return e, c, rec
}

func TestCourseHandler_Create_UsesResolvedOwner(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, input ports.CreateCourseInput) (string, error) {
			if input.OwnerID != "inst-1" {
				t.Fatalf("expected resolved owner, got %q", input.OwnerID)
			}
			return "course-1", nil
		},
	}
	h := NewCourseHandler(stub)

	_, c, rec := newCourseTestContext(t, http.MethodPost, "/admin/course",
		`{"title":"Go","description":"d","imageUrl":"http://x/1.png","price":10}`, "inst-1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["courseId"] != "course-1" {
		t.Fatalf("expected courseId, got %v", resp)
	}
}

func TestCourseHandler_Create_InvalidPrice(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, input ports.CreateCourseInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewCourseHandler(stub)

	e, c, rec := newCourseTestContext(t, http.MethodPost, "/admin/course",
		`{"title":"Go","description":"d","imageUrl":"http://x/1.png","price":-5}`, "inst-1")

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCourseHandler_Create_NoPrincipal(t *testing.T) {
	stub := &stubCourseService{
		createFn: func(ctx context.Context, input ports.CreateCourseInput) (string, error) {
			t.Fatalf("should not be called without a principal")
			return "", nil
		},
	}
	h := NewCourseHandler(stub)

	e, c, rec := newCourseTestContext(t, http.MethodPost, "/admin/course",
		`{"title":"Go","description":"d","imageUrl":"http://x/1.png","price":10}`, "")

	if err := h.Create(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestCourseHandler_Update_ForeignOwner(t *testing.T) {
	stub := &stubCourseService{
		updateFn: func(ctx context.Context, input ports.UpdateCourseInput) error {
			return domain.ErrForbidden
		},
	}
	h := NewCourseHandler(stub)

	e, c, rec := newCourseTestContext(t, http.MethodPut, "/admin/course",
		`{"courseId":"course-1","title":"Go","description":"d","imageUrl":"http://x/1.png","price":20}`, "inst-2")

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCourseHandler_Update_MissingCourse(t *testing.T) {
	stub := &stubCourseService{
		updateFn: func(ctx context.Context, input ports.UpdateCourseInput) error {
			return domain.ErrCourseNotFound
		},
	}
	h := NewCourseHandler(stub)

	e, c, rec := newCourseTestContext(t, http.MethodPut, "/admin/course",
		`{"courseId":"missing","title":"Go","description":"d","imageUrl":"http://x/1.png","price":20}`, "inst-1")

	if err := h.Update(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestCourseHandler_Update_ByOwner(t *testing.T) {
	stub := &stubCourseService{
		updateFn: func(ctx context.Context, input ports.UpdateCourseInput) error {
			if input.ActorID != "inst-1" || input.Price != 20 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewCourseHandler(stub)

	_, c, rec := newCourseTestContext(t, http.MethodPut, "/admin/course",
		`{"courseId":"course-1","title":"Go","description":"d","imageUrl":"http://x/1.png","price":20}`, "inst-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCourseHandler_Delete_ForeignOwner(t *testing.T) {
	stub := &stubCourseService{
		deleteFn: func(ctx context.Context, courseID, actorID string) error {
			return domain.ErrForbidden
		},
	}
	h := NewCourseHandler(stub)

	e, c, rec := newCourseTestContext(t, http.MethodDelete, "/admin/course",
		`{"courseId":"course-1"}`, "inst-2")

	if err := h.Delete(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCourseHandler_Preview_Public(t *testing.T) {
	stub := &stubCourseService{
		listCatalogFn: func(ctx context.Context) ([]*domain.Course, error) {
			return []*domain.Course{{ID: "course-1", Title: "Go", Price: 20, OwnerID: "inst-1"}}, nil
		},
	}
	h := NewCourseHandler(stub)

	// No principal in context: the catalog is public.
	_, c, rec := newCourseTestContext(t, http.MethodGet, "/course/preview", "", "")

	if err := h.Preview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp courseListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Courses) != 1 || resp.Courses[0].Price != 20 {
		t.Fatalf("unexpected catalog: %+v", resp)
	}
}

func TestCourseHandler_ListOwned_UsesResolvedOwner(t *testing.T) {
	stub := &stubCourseService{
		listByOwnerFn: func(ctx context.Context, ownerID string) ([]*domain.Course, error) {
			if ownerID != "inst-1" {
				t.Fatalf("expected resolved owner, got %q", ownerID)
			}
			return []*domain.Course{}, nil
		},
	}
	h := NewCourseHandler(stub)

	_, c, rec := newCourseTestContext(t, http.MethodGet, "/admin/course/bulk", "", "inst-1")

	if err := h.ListOwned(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
