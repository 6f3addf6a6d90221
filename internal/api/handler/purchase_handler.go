package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courseforge/course-market/internal/core/ports"
)

// PurchaseHandler handles learner purchase operations.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// Purchase handles POST /course/purchase. The buyer is always the
// resolved learner; a client-supplied user id is never consulted.
//
// @Summary      Purchase a course
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      purchaseRequest  true  "Course id"
// @Success      200   {object}  purchaseResponse
// @Failure      404   {object}  map[string]string
// @Router       /course/purchase [post]
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	var req purchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID, err := ctxPrincipalID(c)
	if err != nil {
		return err
	}

	result, err := h.service.Purchase(c.Request().Context(), userID, req.CourseID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, purchaseResponse{
		PurchaseID:   result.PurchaseID,
		AlreadyOwned: result.AlreadyOwned,
	})
}

// ListPurchases handles GET /user/purchases, filtered strictly by the
// resolved learner id.
//
// @Summary      List the caller's purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  purchaseListResponse
// @Router       /user/purchases [get]
func (h *PurchaseHandler) ListPurchases(c echo.Context) error {
	userID, err := ctxPrincipalID(c)
	if err != nil {
		return err
	}

	listing, err := h.service.ListPurchases(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPurchaseListResponse(listing.Purchases, listing.Courses))
}
