package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courseforge/course-market/internal/core/ports"
)

// CourseHandler handles instructor course management and the public
// catalog.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// Create handles POST /admin/course. The owner is always the resolved
// instructor from the gate.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      200   {object}  courseIDResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /admin/course [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ownerID, err := ctxPrincipalID(c)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		OwnerID:     ownerID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courseIDResponse{CourseID: id})
}

// Update handles PUT /admin/course. A missing course is 404; a course
// owned by another instructor is 403.
//
// @Summary      Update an owned course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateCourseRequest  true  "Course update"
// @Success      200   {object}  courseIDResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/course [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, err := ctxPrincipalID(c)
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), ports.UpdateCourseInput{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		ActorID:     actorID,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, courseIDResponse{CourseID: req.CourseID})
}

// Delete handles DELETE /admin/course with the same 404/403 semantics
// as Update.
//
// @Summary      Delete an owned course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteCourseRequest  true  "Course id"
// @Success      200   {object}  messageResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /admin/course [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	var req deleteCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, err := ctxPrincipalID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req.CourseID, actorID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "course deleted"})
}

// ListOwned handles GET /admin/course/bulk: the caller's own courses.
//
// @Summary      List courses owned by the caller
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  courseListResponse
// @Router       /admin/course/bulk [get]
func (h *CourseHandler) ListOwned(c echo.Context) error {
	ownerID, err := ctxPrincipalID(c)
	if err != nil {
		return err
	}

	courses, err := h.service.ListByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCourseListResponse(courses))
}

// Preview handles GET /course/preview: the public catalog, no
// credential required.
//
// @Summary      List all courses (public catalog)
// @Tags         courses
// @Produce      json
// @Success      200  {object}  courseListResponse
// @Router       /course/preview [get]
func (h *CourseHandler) Preview(c echo.Context) error {
	courses, err := h.service.ListCatalog(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCourseListResponse(courses))
}
