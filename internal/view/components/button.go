package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const buttonBase = "inline-flex items-center justify-center text-sm font-medium rounded-md h-10 px-4 py-2"

// LinkButton is a hyperlink styled as the primary button.
func LinkButton(href, label string, extra ...g.Node) g.Node {
	return h.A(
		h.Href(href),
		h.Class(buttonBase+" bg-primary text-primary-foreground hover:bg-primary/90"),
		g.Text(label),
		g.Group(extra),
	)
}
