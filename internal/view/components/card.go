// Package components holds the presentational primitives the pages are
// composed of: cards, avatars, tooltips, buttons and images.
package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const cardBase = "rounded-lg border bg-card text-card-foreground shadow-sm"

// Card is the bordered surface used by the story, values and culture sections.
func Card(class string, children ...g.Node) g.Node {
	c := cardBase
	if class != "" {
		c += " " + class
	}
	return h.Div(h.Class(c), g.Group(children))
}

func CardHeader(children ...g.Node) g.Node {
	return h.Div(h.Class("flex flex-col space-y-1.5 p-6"), g.Group(children))
}

func CardTitle(class string, text string) g.Node {
	c := "text-2xl font-semibold leading-none tracking-tight"
	if class != "" {
		c = class
	}
	return h.H3(h.Class(c), g.Text(text))
}

func CardDescription(class string, text string) g.Node {
	c := "text-sm text-muted-foreground"
	if class != "" {
		c = class
	}
	return h.P(h.Class(c), g.Text(text))
}

func CardContent(class string, children ...g.Node) g.Node {
	c := "p-6 pt-0"
	if class != "" {
		c = class
	}
	return h.Div(h.Class(c), g.Group(children))
}

func CardFooter(children ...g.Node) g.Node {
	return h.Div(h.Class("flex items-center p-6 pt-0"), g.Group(children))
}
