package view

import (
	"github.com/everythingtalent/etsite/web/src/templates/layouts"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	themeSessionName = "preferences"
	themeKey         = "theme"
)

// GetTheme reads the visitor's theme from the session. Visitors without a
// stored preference, or without a session at all, get the default theme.
func GetTheme(c echo.Context) layouts.Theme {
	sess, err := session.Get(themeSessionName, c)
	if err != nil {
		return layouts.ParseTheme("")
	}
	stored, _ := sess.Values[themeKey].(string)
	return layouts.ParseTheme(stored)
}

// ToggleTheme flips the stored theme and returns the new one.
func ToggleTheme(c echo.Context) (layouts.Theme, error) {
	sess, err := session.Get(themeSessionName, c)
	if err != nil {
		return "", err
	}
	stored, _ := sess.Values[themeKey].(string)
	next := layouts.ParseTheme(stored).Toggle()
	sess.Values[themeKey] = string(next)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", err
	}
	return next, nil
}
