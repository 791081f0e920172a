package server

import (
	"log/slog"
	"net/http"

	"github.com/everythingtalent/etsite/internal/config"
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/handlers"
	"github.com/everythingtalent/etsite/internal/middleware"
	"github.com/everythingtalent/etsite/internal/rendering"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	Cfg          *config.Config
	aboutHandler *handlers.AboutHandler
}

// New creates a new Server instance rendering page.
func New(cfg *config.Config, page *content.Page, renderer rendering.Renderer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger)
	e.Use(middleware.AccessLog())
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	slog.Debug("server configured", "addr", cfg.Server.Addr, "env", cfg.App.Env)

	return &Server{
		E:            e,
		Cfg:          cfg,
		aboutHandler: handlers.NewAboutHandler(page, renderer),
	}
}
