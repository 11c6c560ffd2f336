package storeapi

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/museme/storefront/internal/auth"
	"github.com/museme/storefront/internal/domain"
	"github.com/museme/storefront/internal/webserver"
)

// Localized auth messages kept verbatim from the storefront front-end.
const (
	msgMissingCredentials = "이메일과 비밀번호를 입력해주세요."
	msgInvalidCredentials = "이메일 또는 비밀번호가 올바르지 않습니다."
	msgEmailTaken         = "이미 등록된 이메일입니다."
	msgLoggedOut          = "로그아웃 되었습니다."
	msgServerError        = "요청을 처리할 수 없습니다."
)

type credentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes() {
	webserver.ApiPOST("/auth/login", login)
	webserver.ApiPOST("/auth/register", register)
	webserver.ApiPOST("/auth/logout", logout)
}

func login(c echo.Context) error {
	var payload credentialsPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, msgMissingCredentials)
	}

	session, err := authService.Login(c.Request().Context(), payload.Email, payload.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return fail(c, http.StatusBadRequest, msgMissingCredentials)
	case errors.Is(err, auth.ErrInvalidCredentials):
		auditAuth(c, payload.Email, domain.AuthActionLogin, "denied")
		return fail(c, http.StatusUnauthorized, msgInvalidCredentials)
	case err != nil:
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	auditAuth(c, payload.Email, domain.AuthActionLogin, "ok")
	return ok(c, session)
}

func register(c echo.Context) error {
	var payload credentialsPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, msgMissingCredentials)
	}

	session, err := authService.Register(c.Request().Context(), payload.Email, payload.Password)
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return fail(c, http.StatusBadRequest, msgMissingCredentials)
	case errors.Is(err, auth.ErrEmailTaken):
		auditAuth(c, payload.Email, domain.AuthActionRegister, "conflict")
		return fail(c, http.StatusBadRequest, msgEmailTaken)
	case err != nil:
		return fail(c, http.StatusInternalServerError, msgServerError)
	}

	auditAuth(c, payload.Email, domain.AuthActionRegister, "ok")
	return created(c, session)
}

func logout(c echo.Context) error {
	authService.Logout()
	auditAuth(c, "", domain.AuthActionLogout, "ok")
	return ok(c, map[string]string{"message": msgLoggedOut})
}
