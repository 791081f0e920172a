package pages

import (
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func aboutCulture(culture content.Culture) g.Node {
	paragraphs := make([]g.Node, 0, len(culture.Paragraphs))
	for i, text := range culture.Paragraphs {
		class := ""
		if i < len(culture.Paragraphs)-1 {
			class = "mb-4"
		}
		paragraphs = append(paragraphs, h.P(g.If(class != "", h.Class(class)), g.Text(text)))
	}
	return h.Section(
		h.ID("our-culture"),
		h.Class("py-12 bg-[#000000] flex items-center justify-center"),
		h.Div(
			h.Class("container px-4 mx-auto max-w-7xl"),
			motion.InView{Transition: motion.Default}.Animate(
				components.Card("max-w-3xl mx-auto",
					components.CardHeader(
						components.CardTitle("", culture.Heading),
						components.CardDescription("", culture.Summary),
					),
					components.CardContent("", g.Group(paragraphs)),
					components.CardFooter(
						components.LinkButton(culture.CTA.Href, culture.CTA.Label),
					),
				),
			),
		),
	)
}
