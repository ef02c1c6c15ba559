package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atmavision/booking-system/internal/core/ports"
)

// CatalogHandler serves the public service catalog and the manager-only
// service creation endpoint.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type addServiceRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       int      `json:"price" validate:"gte=0"`
	Category    string   `json:"category" validate:"required"`
	Details     []string `json:"details"`
}

// List handles GET /v1/services.
//
// @Summary      List catalog services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /v1/services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.catalog.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Categories handles GET /v1/services/categories.
//
// @Summary      List distinct service categories
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/services/categories [get]
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Add handles POST /v1/services (manager only).
//
// @Summary      Add a catalog service
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addServiceRequest  true  "Service details"
// @Success      201   {object}  domain.Service
// @Failure      422   {object}  map[string]string
// @Router       /v1/services [post]
func (h *CatalogHandler) Add(c echo.Context) error {
	var req addServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	svc, err := h.catalog.Add(c.Request().Context(), ports.AddServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Details:     req.Details,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}
