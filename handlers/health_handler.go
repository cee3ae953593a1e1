package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AppVersion is reported by /_version so staff can confirm which build
// a terminal is talking to.
const AppVersion = "2.0.0"

// Health is used by /health
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// Version is used by /_version
func Version(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"version": AppVersion,
	})
}
