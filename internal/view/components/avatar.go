package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Avatar renders a round picture over an initials fallback. A picture that
// fails to load removes itself and leaves the fallback visible.
func Avatar(src, alt, fallback string) g.Node {
	return h.Span(
		h.Class("relative flex shrink-0 overflow-hidden rounded-full h-24 w-24 mb-4"),
		h.Span(
			h.Class("avatar-fallback flex h-full w-full items-center justify-center rounded-full bg-muted"),
			g.Text(fallback),
		),
		h.Img(
			h.Class("avatar-image absolute inset-0 aspect-square h-full w-full"),
			h.Src(src),
			h.Alt(alt),
			g.Attr("loading", "lazy"),
			g.Attr("onerror", "this.remove()"),
		),
	)
}
