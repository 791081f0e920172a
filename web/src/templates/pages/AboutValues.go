package pages

import (
	"strconv"

	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/internal/view/components"
	"github.com/everythingtalent/etsite/internal/view/icons"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func aboutValues(values content.Values, seq *motion.Sequence) g.Node {
	return h.Section(
		h.ID(values.ID),
		h.Class("py-14 md:py-24 bg-[#000000] flex items-center justify-center"),
		h.Div(
			h.Class("container px-4 mx-auto max-w-7xl"),
			sectionHeading(values.Heading, values.Intro, ""),
			ValuesGrid(values, seq),
		),
	)
}

// ValuesGrid renders the value cards. Their entrance follows seq rather than
// their own visibility: hidden until seq has started, visible after.
func ValuesGrid(values content.Values, seq *motion.Sequence) g.Node {
	cards := make([]g.Node, 0, len(values.Items))
	for i, value := range values.Items {
		cards = append(cards, valueCard(value, i, seq))
	}
	return h.Div(
		h.ID(ValuesGridID),
		h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-6"),
		g.Group(cards),
	)
}

func valueCard(value content.Value, index int, seq *motion.Sequence) g.Node {
	return motion.Grouped{
		Transition: motion.Stagger(index),
		Sequence:   seq,
		ID:         "value-" + strconv.Itoa(index),
	}.Animate(
		components.Card("h-full value-card",
			components.CardHeader(
				h.Div(
					h.Class("w-16 h-16 rounded-full bg-primary text-primary-foreground flex items-center justify-center mb-4"),
					icons.Icon(value.Icon, "h-10 w-10"),
				),
				components.CardTitle("", value.Title),
			),
			components.CardContent("",
				h.P(h.Class("text-muted-foreground"), g.Text(value.Description)),
			),
		),
	)
}
