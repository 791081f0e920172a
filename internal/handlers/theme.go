package handlers

import (
	"net/http"

	"github.com/everythingtalent/etsite/internal/middleware"
	"github.com/everythingtalent/etsite/internal/view"
	"github.com/labstack/echo/v4"
)

// ThemePost flips the visitor's theme. htmx callers get an empty response
// asking for a refresh; plain form posts are redirected back to the page.
func ThemePost(c echo.Context) error {
	theme, err := view.ToggleTheme(c)
	if err != nil {
		return err
	}
	middleware.FromContext(c.Request().Context()).Debug("theme toggled", "theme", theme)

	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Refresh", "true")
		return c.NoContent(http.StatusNoContent)
	}
	return c.Redirect(http.StatusSeeOther, "/about")
}
