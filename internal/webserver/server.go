package webserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/museme/storefront/config"
)

// DBContextKey carries the request-scoped database handle.
const DBContextKey = "museme_db"

// AppContext is the slice of the application the web server needs.
type AppContext interface {
	Config() *config.AppConfig
	DB() *gorm.DB
}

type WebServer struct {
	appCtx  AppContext
	root    *echo.Echo
	api     *echo.Group
	account *echo.Group
}

var server *WebServer

// Init builds the global web server instance. authSecret verifies
// bearer tokens on the guarded account group.
func Init(appCtx AppContext, authSecret []byte) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			zap.L().Debug("http request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			)
			return nil
		},
	}))

	// Make the shared gorm handle available to handlers.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(DBContextKey, appCtx.DB())
			return next(c)
		}
	})

	api := e.Group("/api")

	account := api.Group("/account")
	account.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    authSecret,
		SigningMethod: "HS256",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "인증이 필요합니다."})
		},
	}))

	server = &WebServer{appCtx: appCtx, root: e, api: api, account: account}
}

// ApiGET registers a public GET route under /api.
func ApiGET(path string, h echo.HandlerFunc) {
	server.api.GET(path, h)
}

// ApiPOST registers a public POST route under /api.
func ApiPOST(path string, h echo.HandlerFunc) {
	server.api.POST(path, h)
}

// AccountGET registers a token-guarded GET route under /api/account.
func AccountGET(path string, h echo.HandlerFunc) {
	server.account.GET(path, h)
}

// Listen starts the server and blocks until it stops.
func Listen() error {
	cfg := server.appCtx.Config().Web
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	zap.L().Info("starting web server", zap.String("addr", addr))
	return server.root.Start(addr)
}

// Shutdown drains in-flight requests and stops the server.
func Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return server.root.Shutdown(ctx)
}

// Echo exposes the underlying router (used in handler tests).
func Echo() *echo.Echo {
	return server.root
}
