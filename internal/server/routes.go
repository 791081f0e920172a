package server

import (
	"io/fs"

	"github.com/everythingtalent/etsite/internal/handlers"
	"github.com/everythingtalent/etsite/internal/middleware"
	"github.com/everythingtalent/etsite/web"
)

// themeBurst is how many toggles a client may fire back to back.
const themeBurst = 5

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() error {
	s.E.GET("/", handlers.HomeGet)
	s.E.GET("/about", s.aboutHandler.AboutGet)
	s.E.GET(handlers.ValuesPath, s.aboutHandler.ValuesGet)
	s.E.POST(handlers.ThemePath, handlers.ThemePost, middleware.RateLimiter(s.Cfg.Server.ThemeRateLimit, themeBurst))
	s.E.GET("/health", handlers.HealthGet)

	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		return err
	}
	s.E.StaticFS("/static", static)

	// Page images live outside the binary.
	if dir := s.Cfg.Assets.PublicDir; dir != "" {
		s.E.Static("/", dir)
	}
	return nil
}
