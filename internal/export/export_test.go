package export

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/rendering"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExporter(t *testing.T) (*Exporter, afero.Fs) {
	t.Helper()
	page, err := content.Default()
	require.NoError(t, err)
	fsys := afero.NewMemMapFs()
	for _, name := range []string{"logo.webp", "about1.webp", "about2.webp", "story_1.webp", "ai1.webp", "skyline.webp"} {
		require.NoError(t, afero.WriteFile(fsys, filepath.Join("public", name), []byte(name), 0o644))
	}
	require.NoError(t, afero.WriteFile(fsys, filepath.Join("public", "index.html"), []byte("stale"), 0o644))
	return New(fsys, page, rendering.NewUniversalRenderer(), "public"), fsys
}

func readDoc(t *testing.T, fsys afero.Fs, name string) *goquery.Document {
	t.Helper()
	data, err := afero.ReadFile(fsys, name)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(data)))
	require.NoError(t, err)
	return doc
}

func TestExport(t *testing.T) {
	e, fsys := newExporter(t)
	out := filepath.Join("out", "site")

	files, err := e.Export(context.Background(), out)
	require.NoError(t, err)

	assert.Contains(t, files, PagePath)
	assert.Contains(t, files, ValuesPath)
	assert.Contains(t, files, "static/css/site.css")
	assert.Contains(t, files, "static/js/reveal.js")
	assert.IsIncreasing(t, files)

	for _, f := range files {
		exists, err := afero.Exists(fsys, filepath.Join(out, filepath.FromSlash(f)))
		require.NoError(t, err)
		assert.True(t, exists, f)
	}

	t.Run("page points at the exported fragment", func(t *testing.T) {
		doc := readDoc(t, fsys, filepath.Join(out, "about", "index.html"))
		main := doc.Find("main#main")
		assert.Equal(t, "/"+ValuesPath, main.AttrOr("hx-get", ""))
		assert.Equal(t, "intersect once", main.AttrOr("hx-trigger", ""))
		assert.Equal(t, 0, doc.Find("#values-grid .is-visible").Length())
		assert.Equal(t, 0, doc.Find(".theme-toggle[action]").Length(), "exported toggle has no server endpoint")
		assert.True(t, doc.Find("html").HasClass("dark"))
	})

	t.Run("page images are copied", func(t *testing.T) {
		for _, name := range []string{"logo.webp", "about1.webp", "about2.webp", "story_1.webp", "ai1.webp", "skyline.webp"} {
			assert.Contains(t, files, name)
			data, err := afero.ReadFile(fsys, filepath.Join(out, name))
			require.NoError(t, err)
			assert.Equal(t, name, string(data))
		}
	})

	t.Run("site root redirects to the page", func(t *testing.T) {
		assert.Contains(t, files, IndexPath)
		doc := readDoc(t, fsys, filepath.Join(out, "index.html"))
		assert.Equal(t, "0; url=/about/", doc.Find(`meta[http-equiv="refresh"]`).AttrOr("content", ""))
		assert.Equal(t, "/about/", doc.Find("body a").AttrOr("href", ""))
	})

	t.Run("fragment is the visible variant", func(t *testing.T) {
		doc := readDoc(t, fsys, filepath.Join(out, "about", "values", "index.html"))
		assert.Equal(t, 6, doc.Find("#values-grid .value-card").Length())
		assert.Equal(t, 6, doc.Find("#values-grid .is-visible").Length())
	})
}

func TestExport_WithoutPublicDir(t *testing.T) {
	page, err := content.Default()
	require.NoError(t, err)

	for _, dir := range []string{"", "missing"} {
		fsys := afero.NewMemMapFs()
		files, err := New(fsys, page, rendering.NewUniversalRenderer(), dir).Export(context.Background(), "out")
		require.NoError(t, err)
		assert.Equal(t, []string{PagePath, ValuesPath, IndexPath, "static/css/site.css", "static/css/tailwind.css", "static/js/reveal.js"}, files)
	}
}

func TestExport_RequiresDirectory(t *testing.T) {
	e, _ := newExporter(t)
	_, err := e.Export(context.Background(), "")
	assert.True(t, errors.Is(err, ErrNoOutput))
}

func TestExport_ReadOnlyFs(t *testing.T) {
	page, err := content.Default()
	require.NoError(t, err)
	e := New(afero.NewReadOnlyFs(afero.NewMemMapFs()), page, rendering.NewUniversalRenderer(), "")

	_, err = e.Export(context.Background(), "out")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}
