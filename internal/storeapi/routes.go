// Package storeapi exposes the storefront REST API: catalog browsing
// and the login/registration flow.
package storeapi

import "github.com/museme/storefront/internal/auth"

var authService *auth.Service

// InitRouter wires all storefront routes into the web server.
func InitRouter(svc *auth.Service) {
	authService = svc
	registerAuthRoutes()
	registerProductRoutes()
	registerAccountRoutes()
}
