package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/handlers"
	"github.com/everythingtalent/etsite/internal/rendering"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEcho(t *testing.T) *echo.Echo {
	t.Helper()
	page, err := content.Default()
	require.NoError(t, err)

	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("handlers-test-session-secret"))))

	about := handlers.NewAboutHandler(page, rendering.NewUniversalRenderer())
	e.GET("/", handlers.HomeGet)
	e.GET("/about", about.AboutGet)
	e.GET(handlers.ValuesPath, about.ValuesGet)
	e.POST(handlers.ThemePath, handlers.ThemePost)
	e.GET("/health", handlers.HealthGet)
	return e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return doc
}

func TestAboutGet(t *testing.T) {
	e := newEcho(t)
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/about", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")

	doc := document(t, rec)
	assert.Equal(t, "dark", doc.Find("html").AttrOr("class", ""))
	assert.Equal(t, handlers.ValuesURL, doc.Find("main").AttrOr("hx-get", ""))
	assert.Equal(t, 6, doc.Find(`#values-grid [data-variant="hidden"]`).Length())
}

func TestValuesGet(t *testing.T) {
	e := newEcho(t)

	t.Run("visible variant", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodGet, handlers.ValuesURL, nil))
		require.Equal(t, http.StatusOK, rec.Code)

		doc := document(t, rec)
		assert.Equal(t, 1, doc.Find("#values-grid").Length())
		assert.Equal(t, 6, doc.Find(`[data-variant="visible"].is-visible`).Length())
		assert.Equal(t, 0, doc.Find("main").Length(), "fragment only")
	})

	t.Run("anything else stays hidden", func(t *testing.T) {
		for _, target := range []string{handlers.ValuesPath, handlers.ValuesPath + "?variant=bogus"} {
			doc := document(t, serve(e, httptest.NewRequest(http.MethodGet, target, nil)))
			assert.Equal(t, 6, doc.Find(`[data-variant="hidden"]`).Length(), target)
		}
	})
}

func TestThemePost(t *testing.T) {
	e := newEcho(t)

	t.Run("form post redirects back", func(t *testing.T) {
		rec := serve(e, httptest.NewRequest(http.MethodPost, handlers.ThemePath, nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/about", rec.Header().Get(echo.HeaderLocation))

		// The new preference is applied on the next page view.
		req := httptest.NewRequest(http.MethodGet, "/about", nil)
		for _, ck := range rec.Result().Cookies() {
			req.AddCookie(ck)
		}
		doc := document(t, serve(e, req))
		assert.Equal(t, "light", doc.Find("html").AttrOr("class", ""))
	})

	t.Run("htmx post asks for a refresh", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, handlers.ThemePath, nil)
		req.Header.Set("HX-Request", "true")
		rec := serve(e, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "true", rec.Header().Get("HX-Refresh"))
		assert.NotEmpty(t, rec.Result().Cookies())
	})
}

func TestHomeAndHealth(t *testing.T) {
	e := newEcho(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get(echo.HeaderLocation))

	rec = serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
