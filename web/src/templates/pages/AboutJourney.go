package pages

import (
	"fmt"
	"net/url"

	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/layout"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/internal/view/components"
	"github.com/everythingtalent/etsite/internal/view/icons"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func aboutJourney(journey content.Journey) g.Node {
	events := make([]g.Node, 0, len(journey.Events))
	for i, event := range journey.Events {
		events = append(events, journeyEvent(journey.Image, event, i))
	}
	return h.Section(
		h.ID(journey.ID),
		h.Class("bg-[#020817] pt-[2rem] md:py-[4rem] flex items-center justify-center"),
		h.Div(
			h.Class("w-full md:container px-4 sm:px-6 max-w-7xl mx-auto"),
			h.Div(
				h.Class("flex justify-center md:container px-4 sm:px-6 mb-6 md:mb-[10rem]"),
				sectionHeading(journey.Heading, journey.Intro, "max-w-2xl mx-auto"),
			),
			h.Div(
				h.Class("timeline relative mx-auto flex"),
				h.Div(h.Class("flex flex-col justify-between gap-0 w-full"), g.Group(events)),
				timelineConnector(),
			),
		),
	)
}

// journeyImageSrc appends the requested size and the event title to the
// shared timeline picture.
func journeyImageSrc(img content.Image, title string) string {
	return fmt.Sprintf("%s?height=%d&width=%d&text=%s", img.Src, img.Height, img.Width, url.QueryEscape(title))
}

func journeyEvent(img content.Image, event content.JourneyEvent, index int) g.Node {
	side := layout.TimelineSide(index)
	classes := side.Classes()
	return h.Div(
		h.Class("timeline-event "+classes.Entry),
		h.Data("side", side.String()),
		h.Div(
			h.Class(classes.Marker),
			h.Div(
				h.Class("h-14 absolute w-14 -left-[15%] -top-[18px] flex self-end rounded-full bg-sky-500 items-center justify-center dark:bg-sky-500"),
				h.Div(
					h.Class("h-12 w-12 rounded-full bg-black border border-[rgb(14,165,233)] flex items-center justify-center dark:bg-black dark:border-neutral-700"),
					h.Span(h.Class("text-white dark:text-white"), icons.Icon(event.Icon, "")),
				),
			),
		),
		h.Div(
			h.Class(classes.Card),
			motion.InView{Transition: motion.Default}.Animate(
				h.Div(
					h.Class("relative border border-blue-300 dark:border-[#3577f39a] py-4 px-8 max-w-[24rem] bg-gradient-to-br from-black via-violet-900 to-violet-500 dark:bg-gradient-to-b dark:from-[#000] dark:to-[#120a1d] dark:hover:bg-gradient-to-b dark:hover:from-[#120a1d] dark:hover:to-[#181023] transition-all duration-500 shadow-lg hover:shadow-[0_4px_8px_0_rgba(75,0,130,0.5)] rounded-lg"),
					h.P(
						h.Class("timeline-date text-transparent bg-clip-text bg-gradient-to-r from-white via-gray-200 to-gray-400 dark:bg-[linear-gradient(to_right,_#3c3cbf_0%,_#FFFFFF_50%)] font-bold text-xl"),
						g.Text(event.Date),
					),
					h.Div(
						components.Image(img, components.ImageProps{
							Src:   journeyImageSrc(img, event.Title),
							Alt:   event.Title,
							Class: "rounded-lg border max-h-[212px] w-[317px] h-full",
						}),
					),
					h.H3(
						h.Class("text-[16px] flex gap-2 items-center font-bold text-white dark:text-gray-300 mt-2 opacity-100"),
						g.Text(event.Title),
						icons.Icon(icons.ChevronRight, ""),
					),
					g.If(event.Description != "", h.P(h.Class("text-sm text-gray-300 mt-1"), g.Text(event.Description))),
				),
			),
		),
	)
}

// timelineConnector is the vertical line every event is anchored to.
func timelineConnector() g.Node {
	return h.Div(
		h.Class("timeline-connector absolute -mt-40 left-1/2 transform -translate-x-1/2 top-0 overflow-hidden w-4 h-[calc(100%+10rem)] bg-gradient-to-r from-black via-violet-950 to-violet-800 dark:bg-[linear-gradient(to_bottom,var(--tw-gradient-stops))] dark:from-transparent dark:from-[0%] dark:via-purple-400 dark:to-transparent dark:to-[99%] [mask-image:linear-gradient(to_bottom,transparent_0%,black_1%,black_99%,transparent_100%)]"),
		h.Style("height: calc(100% + 176px)"),
		h.Div(
			h.Class("absolute inset-x-0 top-8 w-4 bg-gradient-to-t from-purple-500 via-blue-500 to-transparent from-[0%] via-[10%] rounded-sm"),
			h.Style("height: 0px; opacity: 1"),
		),
	)
}
