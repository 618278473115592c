package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/webappnoauth/catalog-portal/internal/core/domain"
	"github.com/webappnoauth/catalog-portal/internal/core/ports"
)

// ProductHandler serves the catalog as JSON through either data access path.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type countResponse struct {
	Source domain.ProductSource `json:"source"`
	Count  int64                `json:"count"`
}

// List returns every product ordered by name.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        source  query     string  false  "Data access path"  Enums(sql, orm)
// @Success      200     {array}   domain.Product
// @Failure      400     {object}  map[string]string
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	source, err := querySource(c)
	if err != nil {
		return err
	}
	products, err := h.catalog.Products(c.Request().Context(), source)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns one product.
//
// @Summary      Get product
// @Tags         products
// @Produce      json
// @Param        id      path      int     true   "Product ID"
// @Param        source  query     string  false  "Data access path"  Enums(sql, orm)
// @Success      200     {object}  domain.Product
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	}
	source, err := querySource(c)
	if err != nil {
		return err
	}
	product, err := h.catalog.Product(c.Request().Context(), source, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// ByCategory returns the products of one category.
//
// @Summary      List products by category
// @Tags         products
// @Produce      json
// @Param        category  path      string  true   "Category"
// @Param        source    query     string  false  "Data access path"  Enums(sql, orm)
// @Success      200       {array}   domain.Product
// @Failure      400       {object}  map[string]string
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	source, err := querySource(c)
	if err != nil {
		return err
	}
	products, err := h.catalog.ProductsByCategory(c.Request().Context(), source, c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Count returns the number of products.
//
// @Summary      Count products
// @Tags         products
// @Produce      json
// @Param        source  query     string  false  "Data access path"  Enums(sql, orm)
// @Success      200     {object}  countResponse
// @Failure      400     {object}  map[string]string
// @Router       /api/products/count [get]
func (h *ProductHandler) Count(c echo.Context) error {
	source, err := querySource(c)
	if err != nil {
		return err
	}
	n, err := h.catalog.Count(c.Request().Context(), source)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countResponse{Source: source, Count: n})
}

func querySource(c echo.Context) (domain.ProductSource, error) {
	source, ok := domain.ParseProductSource(c.QueryParam("source"))
	if !ok {
		return "", echo.NewHTTPError(http.StatusBadRequest, "source must be one of: sql, orm")
	}
	return source, nil
}
