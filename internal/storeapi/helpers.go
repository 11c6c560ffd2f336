package storeapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/museme/storefront/internal/domain"
	"github.com/museme/storefront/internal/webserver"
)

// GetDB retrieves the request-scoped database handle.
func GetDB(c echo.Context) *gorm.DB {
	return c.Get(webserver.DBContextKey).(*gorm.DB)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func fail(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// auditAuth records one authentication attempt; failures to write the
// audit row never affect the request outcome.
func auditAuth(c echo.Context, email, action, result string) {
	GetDB(c).Create(&domain.AuthLog{
		Email:     email,
		Action:    action,
		ClientIP:  c.RealIP(),
		Result:    result,
		CreatedAt: time.Now(),
	})
}
