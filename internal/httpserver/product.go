package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/inventory/internal/logging"
	"github.com/Skotchmaster/inventory/internal/service"
	"github.com/Skotchmaster/inventory/internal/transport"
)

type ProductHTTP struct {
	Svc *service.ProductService
}

// GetProducts godoc
// @Summary  List products
// @Tags     products
// @Produce  json
// @Success  200 {array} models.Product
// @Router   /products/ [get]
func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "reason", "cannot list products", "error", err)
		return internalError(err)
	}

	l.Info("get_products_success", "count", len(items))
	return c.JSON(http.StatusOK, items)
}

// CreateProduct godoc
// @Summary  Create a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    product body     transport.ProductRequest true "Product; omitted fields take defaults"
// @Success  200     {object} models.Product
// @Failure  422     {object} transport.ErrorResponse
// @Router   /products/ [post]
func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.ProductRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("product_create_error", "status", 422, "reason", "invalid body", "error", err)
		return unprocessable(bindErrorDetail(err))
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("product_create_error", "status", 422, "reason", "invalid body", "error", err)
			return unprocessable(err.Error())
		}
		l.Error("product_create_error", "status", 500, "reason", "cannot add product to db", "error", err)
		return internalError(err)
	}

	l.Info("create_product_success", "id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

// GetProduct godoc
// @Summary  Read a product
// @Tags     products
// @Produce  json
// @Param    id  path     int    true  "Product ID"
// @Param    q   query    string false "Accepted and ignored"
// @Success  200 {object} models.Product
// @Failure  404 {object} transport.ErrorResponse
// @Failure  422 {object} transport.ErrorResponse
// @Router   /products/{id} [get]
func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("get_product_failed", "status", 422, "reason", "id is not integer", "error", err)
		return unprocessable("id must be an integer")
	}

	prod, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("get_product_failed", "status", 404, "reason", "product with this id does not exist", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, productNotFound)
		}
		l.Error("get_product_failed", "status", 500, "reason", "cannot get product", "error", err)
		return internalError(err)
	}

	return c.JSON(http.StatusOK, prod)
}

// UpdateProduct godoc
// @Summary  Update a product
// @Description Only the fields present in the body are written.
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    id      path     int                      true "Product ID"
// @Param    product body     transport.ProductRequest true "Fields to change"
// @Success  200     {object} models.Product
// @Failure  404     {object} transport.ErrorResponse
// @Failure  422     {object} transport.ErrorResponse
// @Router   /products/{id} [put]
func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.update_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_update_error", "status", 422, "reason", "id is not integer", "error", err)
		return unprocessable("id must be an integer")
	}

	var req transport.ProductRequest
	if err := bindBody(c, &req); err != nil {
		l.Warn("product_update_error", "status", 422, "reason", "invalid body", "error", err)
		return unprocessable(bindErrorDetail(err))
	}

	prod, err := h.Svc.UpdateProduct(ctx, id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn("product_update_error", "status", 404, "reason", "cannot find product in db", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, productNotFound)
		case errors.Is(err, service.ErrValidation):
			l.Warn("product_update_error", "status", 422, "reason", "invalid body", "error", err)
			return unprocessable(err.Error())
		default:
			l.Error("product_update_error", "status", 500, "reason", "cannot update product", "error", err)
			return internalError(err)
		}
	}

	l.Info("update_product_success", "id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}

// DeleteProduct godoc
// @Summary  Delete a product
// @Tags     products
// @Produce  json
// @Param    id  path     int true "Product ID"
// @Success  200 {object} models.Product "The deleted row"
// @Failure  404 {object} transport.ErrorResponse
// @Failure  422 {object} transport.ErrorResponse
// @Router   /products/{id} [delete]
func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.delete_product")

	id, err := parseID(c)
	if err != nil {
		l.Warn("product_delete_error", "status", 422, "reason", "id not an integer", "error", err)
		return unprocessable("id must be an integer")
	}

	prod, err := h.Svc.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			l.Warn("product_delete_error", "status", 404, "reason", "product not found", "id", id)
			return echo.NewHTTPError(http.StatusNotFound, productNotFound)
		}
		l.Error("product_delete_error", "status", 500, "reason", "cannot delete product from db", "error", err)
		return internalError(err)
	}

	l.Info("delete_product_success", "id", prod.ID)
	return c.JSON(http.StatusOK, prod)
}
