package pages

import (
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func aboutFooter(brand content.Brand, footer content.Footer) g.Node {
	return h.Footer(
		h.Class("bg-[#000000] border-t py-12 mt-auto"),
		h.Div(
			h.Class("container px-4 mx-auto max-w-7xl"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-5 gap-8"),
				h.Div(
					h.Class("col-span-1 lg:col-span-2"),
					h.Div(
						h.Class("flex items-center gap-2 mb-4"),
						components.Image(footer.Logo, components.ImageProps{Class: "dark:invert"}),
						h.Span(h.Class("font-bold text-xl"), g.Text(brand.Name)),
					),
				),
				g.Map(footer.Columns, footerColumn),
			),
			h.Div(
				components.Image(footer.Skyline, components.ImageProps{Class: "mb-4 md:mb-0 dark:invert mx-auto"}),
			),
			h.Div(
				h.Class("mt-12 pt-8 border-t"),
				h.Div(
					h.Class("flex flex-col md:flex-row justify-between items-center"),
					h.P(h.Class("copyright text-sm text-gray-600 dark:text-gray-400"), g.Text(footer.Copyright)),
				),
			),
		),
	)
}

func footerColumn(col content.FooterColumn) g.Node {
	return h.Div(
		h.Class("footer-column"),
		h.H3(h.Class("font-semibold mb-4"), g.Text(col.Title)),
		h.Ul(
			h.Class("space-y-2"),
			g.Map(col.Items, func(item string) g.Node {
				return h.Li(
					h.A(
						h.Href("#"),
						h.Class("text-gray-600 dark:text-gray-400 hover:text-gray-900 dark:hover:text-gray-200"),
						g.Text(item),
					),
				)
			}),
		),
	)
}
