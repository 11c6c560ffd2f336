package storeapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/museme/storefront/internal/catalog"
	"github.com/museme/storefront/internal/domain"
	"github.com/museme/storefront/internal/webserver"
)

func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/product/:id", getProduct)
}

func listProducts(c echo.Context) error {
	theme := c.QueryParam("theme")
	category := c.QueryParam("category")

	repo := catalog.NewGormProductRepository(GetDB(c))
	products, err := repo.List(c.Request().Context(), theme, category)
	if err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return ok(c, map[string]interface{}{"products": products})
}

func getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}

	repo := catalog.NewGormProductRepository(GetDB(c))
	product, err := repo.GetByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if product == nil {
		return fail(c, http.StatusNotFound, "Product not found")
	}
	return ok(c, product)
}
