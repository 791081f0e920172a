package handlers

import (
	"net/http"

	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/middleware"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/internal/rendering"
	"github.com/everythingtalent/etsite/internal/view"
	"github.com/everythingtalent/etsite/web/src/templates/pages"
	"github.com/labstack/echo/v4"
)

const (
	// ValuesPath serves the values grid for the one-shot visible sequence.
	ValuesPath = "/about/values"
	// ThemePath receives the theme toggle.
	ThemePath = "/theme"
)

// ValuesURL is the request main issues the first time it scrolls into view.
const ValuesURL = ValuesPath + "?variant=" + motion.VariantVisible

// AboutHandler serves the About page and its values fragment.
type AboutHandler struct {
	content  *content.Page
	renderer rendering.Renderer
}

// NewAboutHandler creates an AboutHandler rendering page with renderer.
func NewAboutHandler(page *content.Page, renderer rendering.Renderer) *AboutHandler {
	return &AboutHandler{content: page, renderer: renderer}
}

// AboutGet renders the full page. Each request owns a fresh, unstarted
// visible sequence.
func (h *AboutHandler) AboutGet(c echo.Context) error {
	props := pages.AboutProps{
		Content:   h.content,
		Sequence:  motion.NewSequence(pages.VisibleSequence),
		ValuesURL: ValuesURL,
		ThemeURL:  ThemePath,
	}
	return h.renderer.RenderPage(c, http.StatusOK, pages.AboutDocument(props, view.GetTheme(c)))
}

// ValuesGet renders the values grid. variant=visible starts the sequence;
// any other value leaves the cards hidden.
func (h *AboutHandler) ValuesGet(c echo.Context) error {
	seq := motion.NewSequence(pages.VisibleSequence)
	if c.QueryParam("variant") == motion.VariantVisible {
		seq.Start()
	}
	middleware.FromContext(c.Request().Context()).Debug("values grid requested", "started", seq.Started())
	return h.renderer.RenderPage(c, http.StatusOK, pages.ValuesGrid(h.content.Values, seq))
}
