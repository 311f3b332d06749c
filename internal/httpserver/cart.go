package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/inventory/internal/logging"
	"github.com/Skotchmaster/inventory/internal/service"
	"github.com/Skotchmaster/inventory/internal/transport"
)

type CartHTTP struct {
	Svc *service.CartService
}

// GetCart godoc
// @Summary  List cart entries
// @Tags     cart
// @Produce  json
// @Success  200 {array} models.Cart
// @Router   /cart/ [get]
func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	items, err := h.Svc.ListCart(ctx)
	if err != nil {
		l.Error("get_cart_error", "status", 500, "error", err)
		return internalError(err)
	}

	l.Info("get_cart_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

// CreateCart godoc
// @Summary  Create a cart entry
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    cart body     transport.CartRequest true "Cart entry; omitted fields take defaults"
// @Success  200  {object} models.Cart
// @Failure  422  {object} transport.ErrorResponse
// @Router   /cart/ [post]
func (h *CartHTTP) CreateCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.create_cart")

	var req transport.CartRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("create_cart_error", "status", 422, "error", err)
		return unprocessable(bindErrorDetail(err))
	}

	item, err := h.Svc.CreateCart(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_cart_error", "status", 422, "error", err)
			return unprocessable(err.Error())
		}
		l.Error("create_cart_error", "status", 500, "error", err)
		return internalError(err)
	}

	l.Info("create_cart_success", "id", item.ID)
	return c.JSON(http.StatusOK, item)
}

// GetCartItem godoc
// @Summary  Read a cart entry
// @Tags     cart
// @Produce  json
// @Param    id  path     int    true  "Cart entry ID"
// @Param    q   query    string false "Accepted and ignored"
// @Success  200 {object} models.Cart
// @Failure  404 {object} transport.ErrorResponse
// @Failure  422 {object} transport.ErrorResponse
// @Router   /cart/{id} [get]
func (h *CartHTTP) GetCartItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart_item")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_cart_item_error", "status", 422, "error", err)
		return unprocessable("id must be an integer")
	}

	item, err := h.Svc.GetCart(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_cart_item_not_found", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, cartNotFound)
		}
		l.Error("get_cart_item_error", "status", 500, "error", err)
		return internalError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateCart godoc
// @Summary  Update a cart entry
// @Description Only the fields present in the body are written.
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    id   path     int                   true "Cart entry ID"
// @Param    cart body     transport.CartRequest true "Fields to change"
// @Success  200  {object} models.Cart
// @Failure  404  {object} transport.ErrorResponse
// @Failure  422  {object} transport.ErrorResponse
// @Router   /cart/{id} [put]
func (h *CartHTTP) UpdateCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.update_cart")

	id, err := parseID(c)
	if err != nil {
		l.Warn("update_cart_error", "status", 422, "error", err)
		return unprocessable("id must be an integer")
	}

	var req transport.CartRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("update_cart_error", "status", 422, "error", err)
		return unprocessable(bindErrorDetail(err))
	}

	item, err := h.Svc.UpdateCart(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_cart_not_found", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, cartNotFound)
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_cart_error", "status", 422, "error", err)
			return unprocessable(err.Error())
		default:
			l.Error("update_cart_error", "status", 500, "error", err)
			return internalError(err)
		}
	}

	l.Info("update_cart_success", "id", item.ID)
	return c.JSON(http.StatusOK, item)
}

// DeleteCart godoc
// @Summary  Delete a cart entry
// @Tags     cart
// @Produce  json
// @Param    id  path     int true "Cart entry ID"
// @Success  200 {object} models.Cart "The deleted row"
// @Failure  404 {object} transport.ErrorResponse
// @Failure  422 {object} transport.ErrorResponse
// @Router   /cart/{id} [delete]
func (h *CartHTTP) DeleteCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.delete_cart")

	id, err := parseID(c)
	if err != nil {
		l.Warn("delete_cart_error", "status", 422, "error", err)
		return unprocessable("id must be an integer")
	}

	item, err := h.Svc.DeleteCart(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("delete_cart_not_found", "status", 404, "id", id)
			return echo.NewHTTPError(http.StatusNotFound, cartNotFound)
		}
		l.Error("delete_cart_error", "status", 500, "error", err)
		return internalError(err)
	}

	l.Info("cart entry deleted", "id", item.ID)
	return c.JSON(http.StatusOK, item)
}
