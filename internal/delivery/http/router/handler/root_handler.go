// Package handler contains the HTTP handlers for every API operation.
package handler

import (
	"net/http"

	"medify/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// apiVersion is reported by the discovery endpoint.
const apiVersion = "1.0.0"

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// APIRoot is the discovery endpoint: a static description of the API surface
// so clients can find every operation from the base URL alone.
func APIRoot(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Medify Backend API",
		"version": apiVersion,
		"endpoints": map[string]any{
			"authentication": map[string]string{
				"signup":  "/api/auth/signup/",
				"login":   "/api/auth/login/",
				"me":      "/api/auth/me/",
				"refresh": "/api/auth/refresh/",
				"logout":  "/api/auth/logout/",
			},
			"website_setup": map[string]string{
				"get":    "/api/website-setups/",
				"update": "/api/website-setups/",
			},
			"business_info": map[string]string{
				"get":     "/api/business-info/",
				"create":  "/api/business-info/",
				"update":  "/api/business-info/",
				"publish": "/api/business-info/publish/",
				"logo":    "/api/business-info/logo/",
				"qrcode":  "/api/business-info/qrcode/",
			},
		},
	})
}
