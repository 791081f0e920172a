package layouts

import (
	"github.com/everythingtalent/etsite/web"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// HTMXSrc is the htmx build the pages load.
	HTMXSrc = "https://unpkg.com/htmx.org@2.0.4"
	// TailwindSrc compiles the utility classes in the browser, including
	// the ones htmx swaps in later.
	TailwindSrc = "https://cdn.jsdelivr.net/npm/@tailwindcss/browser@4"
)

// BaseProps configures the document shell.
type BaseProps struct {
	Title       string
	Description string
	Theme       Theme
}

// Base wraps body in the HTML document shared by every page.
func Base(props BaseProps, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Class(props.Theme.HTMLClass()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.If(props.Description != "", h.Meta(h.Name("description"), h.Content(props.Description))),
				h.TitleEl(g.Text(CalculateTitle(props.Title))),
				h.Link(h.Rel("icon"), h.Href("/logo.webp")),
				h.Link(h.Rel("stylesheet"), h.Href("/static/css/site.css")),
				h.Script(h.Src(TailwindSrc)),
				h.StyleEl(h.Type("text/tailwindcss"), g.Raw(web.TailwindSource)),
				h.Script(h.Src(HTMXSrc), h.Defer()),
				h.Script(h.Src("/static/js/reveal.js"), h.Defer()),
			),
			h.Body(
				h.Class("flex flex-col min-h-[100dvh] bg-white dark:bg-black text-zinc-900 dark:text-white"),
				g.Group(body),
			),
		),
	)
}
