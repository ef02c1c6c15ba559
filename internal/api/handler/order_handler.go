package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Contact   string `json:"contact" validate:"required"`
}

type placeCustomOrderRequest struct {
	Category    string `json:"category" validate:"required"`
	Description string `json:"description" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignOperatorRequest struct {
	// Empty clears the assignment.
	OperatorID string `json:"operator_id"`
}

// List handles GET /v1/orders. Clients see their own orders; operators and
// managers see everything.
//
// @Summary      List orders visible to the viewer
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Order
// @Router       /v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	viewer, err := viewerFromContext(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.List(c.Request().Context(), &viewer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Place handles POST /v1/orders — a standard order against a catalog service.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  domain.Order
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	viewer, err := viewerFromContext(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.orders.Place(c.Request().Context(), ports.PlaceOrderInput{
		ServiceID: req.ServiceID,
		Contact:   req.Contact,
		Viewer:    viewer,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// PlaceCustom handles POST /v1/orders/custom — an individual request priced
// later by a manager.
//
// @Summary      Place a custom order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeCustomOrderRequest  true  "Request details"
// @Success      201   {object}  domain.Order
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders/custom [post]
func (h *OrderHandler) PlaceCustom(c echo.Context) error {
	viewer, err := viewerFromContext(c)
	if err != nil {
		return err
	}

	var req placeCustomOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	order, err := h.orders.PlaceCustom(c.Request().Context(), ports.PlaceCustomOrderInput{
		Category:    req.Category,
		Description: req.Description,
		Contact:     req.Contact,
		Viewer:      viewer,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, order)
}

// UpdateStatus handles PATCH /v1/orders/:id/status. Any status may follow any
// status; an unknown order id is a silent no-op and still answers 204.
//
// @Summary      Update an order's status
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Order id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      204
// @Failure      422   {object}  map[string]string
// @Router       /v1/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "unknown status")
	}

	if err := h.orders.UpdateStatus(c.Request().Context(), c.Param("id"), status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignOperator handles PATCH /v1/orders/:id/operator (manager only). An
// empty operator id clears the assignment.
//
// @Summary      Assign or clear an order's operator
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Order id"
// @Param        body  body      assignOperatorRequest  true  "Operator id"
// @Success      204
// @Router       /v1/orders/{id}/operator [patch]
func (h *OrderHandler) AssignOperator(c echo.Context) error {
	var req assignOperatorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.orders.AssignOperator(c.Request().Context(), c.Param("id"), req.OperatorID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
