// Package app wires the site's services into a dependency injector.
package app

import (
	"github.com/everythingtalent/etsite/internal/config"
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/export"
	"github.com/everythingtalent/etsite/internal/publish"
	"github.com/everythingtalent/etsite/internal/rendering"
	"github.com/everythingtalent/etsite/internal/server"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// New creates the injector for cfg. Services are built on first use, so a
// command only pays for what it invokes.
func New(cfg *config.Config) do.Injector {
	return NewWithFs(cfg, afero.NewOsFs())
}

// NewWithFs is New with the filesystem used for content and export output.
func NewWithFs(cfg *config.Config, fsys afero.Fs) do.Injector {
	i := do.New()
	do.ProvideValue(i, cfg)
	do.ProvideValue(i, fsys)
	do.Provide(i, provideContent)
	do.Provide(i, provideRenderer)
	do.Provide(i, provideServer)
	do.Provide(i, provideExporter)
	do.Provide(i, providePublisher)
	return i
}

func provideContent(i do.Injector) (*content.Page, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return content.Load(do.MustInvoke[afero.Fs](i), cfg.Content.Path)
}

func provideRenderer(do.Injector) (*rendering.UniversalRenderer, error) {
	return rendering.NewUniversalRenderer(), nil
}

func provideServer(i do.Injector) (*server.Server, error) {
	page, err := do.Invoke[*content.Page](i)
	if err != nil {
		return nil, err
	}
	s := server.New(do.MustInvoke[*config.Config](i), page, do.MustInvoke[*rendering.UniversalRenderer](i))
	if err := s.RegisterRoutes(); err != nil {
		return nil, err
	}
	return s, nil
}

func provideExporter(i do.Injector) (*export.Exporter, error) {
	page, err := do.Invoke[*content.Page](i)
	if err != nil {
		return nil, err
	}
	cfg := do.MustInvoke[*config.Config](i)
	return export.New(do.MustInvoke[afero.Fs](i), page, do.MustInvoke[*rendering.UniversalRenderer](i), cfg.Assets.PublicDir), nil
}

func providePublisher(i do.Injector) (*publish.Publisher, error) {
	cfg := do.MustInvoke[*config.Config](i).Publish
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return publish.New(publish.NewClient(cfg), do.MustInvoke[afero.Fs](i), cfg.Bucket, cfg.Prefix), nil
}
