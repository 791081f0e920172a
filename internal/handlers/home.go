package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeGet sends visitors of the site root to the About page, the only page
// this site serves.
func HomeGet(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/about")
}

// HealthGet reports liveness.
func HealthGet(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
