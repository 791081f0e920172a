// Package export writes the About page as a static site.
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/internal/rendering"
	"github.com/everythingtalent/etsite/web"
	"github.com/everythingtalent/etsite/web/src/templates/layouts"
	"github.com/everythingtalent/etsite/web/src/templates/pages"
	"github.com/spf13/afero"
)

const (
	// IndexPath sends visitors of the site root on to the About page.
	IndexPath = "index.html"
	// PagePath is the exported About page.
	PagePath = "about/index.html"
	// ValuesPath is the exported visible variant of the values grid.
	ValuesPath = "about/values/index.html"
)

// ErrNoOutput is returned when Export is called without a directory.
var ErrNoOutput = errors.New("export: output directory is required")

// Exporter renders the site into a directory of an afero.Fs.
type Exporter struct {
	fs        afero.Fs
	page      *content.Page
	renderer  rendering.Renderer
	assets    fs.FS
	publicDir string
	theme     layouts.Theme
}

// New creates an Exporter writing to fsys. publicDir holds the page images on
// the same filesystem; it may be empty. Pages render in the default theme.
func New(fsys afero.Fs, page *content.Page, renderer rendering.Renderer, publicDir string) *Exporter {
	return &Exporter{
		fs:        fsys,
		page:      page,
		renderer:  renderer,
		assets:    web.FS,
		publicDir: publicDir,
		theme:     layouts.ParseTheme(""),
	}
}

// Export writes the public images, the static assets, a root redirect, the
// page and the visible values fragment below dir. Generated files win over
// public files of the same name. It returns the written files as
// slash-separated paths relative to dir, sorted.
func (e *Exporter) Export(ctx context.Context, dir string) ([]string, error) {
	if dir == "" {
		return nil, ErrNoOutput
	}

	props := pages.AboutProps{
		Content:   e.page,
		Sequence:  motion.NewSequence(pages.VisibleSequence),
		ValuesURL: "/" + ValuesPath,
	}
	visible := motion.NewSequence(pages.VisibleSequence)
	visible.Start()

	seen := map[string]bool{}
	public, err := e.copyPublic(dir)
	if err != nil {
		return nil, err
	}
	assets, err := e.copyAssets(dir)
	if err != nil {
		return nil, err
	}
	for _, name := range append(public, assets...) {
		seen[name] = true
	}

	renders := []struct {
		name string
		node any
	}{
		{IndexPath, layouts.Redirect("/" + path.Dir(PagePath) + "/")},
		{PagePath, pages.AboutDocument(props, e.theme)},
		{ValuesPath, pages.ValuesGrid(e.page.Values, visible)},
	}
	for _, r := range renders {
		body, err := e.renderer.RenderComponent(ctx, r.node)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", r.name, err)
		}
		if err := e.write(dir, r.name, body); err != nil {
			return nil, err
		}
		seen[r.name] = true
	}

	written := make([]string, 0, len(seen))
	for name := range seen {
		written = append(written, name)
	}
	sort.Strings(written)

	slog.Info("site exported", "dir", dir, "files", len(written))
	return written, nil
}

// copyPublic copies the page images. A missing public directory is skipped.
func (e *Exporter) copyPublic(dir string) ([]string, error) {
	if e.publicDir == "" {
		return nil, nil
	}
	if ok, err := afero.DirExists(e.fs, e.publicDir); err != nil || !ok {
		slog.Warn("public directory not found, images not exported", "dir", e.publicDir)
		return nil, nil
	}

	var copied []string
	err := afero.Walk(e.fs, e.publicDir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		rel, err := filepath.Rel(e.publicDir, p)
		if err != nil {
			return err
		}
		data, err := afero.ReadFile(e.fs, p)
		if err != nil {
			return fmt.Errorf("failed to read public file %s: %w", p, err)
		}
		name := filepath.ToSlash(rel)
		if err := e.write(dir, name, data); err != nil {
			return err
		}
		copied = append(copied, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return copied, nil
}

func (e *Exporter) copyAssets(dir string) ([]string, error) {
	var copied []string
	err := fs.WalkDir(e.assets, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(e.assets, p)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", p, err)
		}
		if err := e.write(dir, p, data); err != nil {
			return err
		}
		copied = append(copied, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return copied, nil
}

func (e *Exporter) write(dir, name string, data []byte) error {
	target := filepath.Join(dir, filepath.FromSlash(name))
	if err := e.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path.Clean(name), err)
	}
	if err := afero.WriteFile(e.fs, target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
