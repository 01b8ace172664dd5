package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/coursehub/pricing-api/internal/api/metrics"
	"github.com/coursehub/pricing-api/internal/core/ports"
)

// PriceHandler handles HTTP requests for price record operations.
type PriceHandler struct {
	service ports.PriceService
}

func NewPriceHandler(service ports.PriceService) *PriceHandler {
	return &PriceHandler{service: service}
}

// Create handles POST /prices.
//
// @Summary      Create a price record
// @Tags         prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPriceRequest  true  "Price details"
// @Success      200   {object}  priceResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /prices [post]
func (h *PriceHandler) Create(c echo.Context) error {
	var req createPriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.CreatePrice(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.PriceOperationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusOK, toPriceResponse(created))
}

// List handles GET /prices.
//
// @Summary      List all price records
// @Tags         prices
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   priceResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /prices [get]
func (h *PriceHandler) List(c echo.Context) error {
	prices, err := h.service.ListPrices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPriceListResponse(prices))
}

// Get handles GET /prices/:id.
//
// @Summary      Get a price record by id
// @Tags         prices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Price record id"
// @Success      200  {object}  priceResponse
// @Failure      404  {object}  errorResponse
// @Router       /prices/{id} [get]
func (h *PriceHandler) Get(c echo.Context) error {
	price, err := h.service.GetPrice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPriceResponse(price))
}

// Update handles PUT /prices/:id. The payload is a partial record; fields
// absent from the body are left unchanged.
//
// @Summary      Update a price record
// @Tags         prices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Price record id"
// @Param        body  body      updatePriceRequest  true  "Fields to update"
// @Success      200   {object}  priceResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /prices/{id} [put]
func (h *PriceHandler) Update(c echo.Context) error {
	var req updatePriceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdatePrice(c.Request().Context(), c.Param("id"), toUpdate(req))
	if err != nil {
		return err
	}

	metrics.PriceOperationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toPriceResponse(updated))
}

// Delete handles DELETE /prices/:id and returns the deleted record.
//
// @Summary      Delete a price record
// @Tags         prices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Price record id"
// @Success      200  {object}  priceResponse
// @Failure      404  {object}  errorResponse
// @Router       /prices/{id} [delete]
func (h *PriceHandler) Delete(c echo.Context) error {
	deleted, err := h.service.DeletePrice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PriceOperationsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, toPriceResponse(deleted))
}
