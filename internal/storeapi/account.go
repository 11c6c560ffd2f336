package storeapi

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/museme/storefront/internal/auth"
	"github.com/museme/storefront/internal/webserver"
)

func registerAccountRoutes() {
	webserver.AccountGET("/profile", profile)
}

// profile returns the authenticated user's public fields. The route
// guard has already verified the bearer token at this point.
func profile(c echo.Context) error {
	token, ok2 := c.Get("user").(*jwt.Token)
	if !ok2 {
		return fail(c, http.StatusUnauthorized, "인증이 필요합니다.")
	}
	claims, ok2 := token.Claims.(jwt.MapClaims)
	if !ok2 {
		return fail(c, http.StatusUnauthorized, "인증이 필요합니다.")
	}
	userID, ok2 := claims["user_id"].(float64)
	if !ok2 {
		return fail(c, http.StatusUnauthorized, "인증이 필요합니다.")
	}

	repo := auth.NewGormUserRepository(GetDB(c))
	user, err := repo.GetByID(c.Request().Context(), int64(userID))
	if err != nil {
		return fail(c, http.StatusInternalServerError, msgServerError)
	}
	if user == nil {
		return fail(c, http.StatusUnauthorized, "인증이 필요합니다.")
	}
	return ok(c, user)
}
