package pages

import (
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/layout"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func aboutStory(story content.Story) g.Node {
	blocks := make([]g.Node, 0, len(story.Blocks))
	for i, block := range story.Blocks {
		blocks = append(blocks, storyBlock(story, block, i))
	}
	return h.Section(
		h.ID(story.ID),
		h.Class("py-14 md:py-24 bg-[#020817] flex items-center justify-center"),
		h.Div(
			h.Class("container px-4 max-w-7xl mx-auto"),
			sectionHeading(story.Heading, story.Intro, "max-w-2xl mx-auto"),
			g.Group(blocks),
		),
	)
}

func storyBlock(story content.Story, block content.StoryBlock, index int) g.Node {
	order := layout.StoryOrder(index)
	return motion.InView{Transition: motion.Stagger(index)}.Animate(
		components.Card("mt-12 story-block",
			h.Data("layout", order.String()),
			components.CardContent("p-6",
				h.Div(
					h.Class("grid grid-cols-1 md:grid-cols-2 gap-6 items-center"),
					h.Div(
						h.Class("story-text "+order.TextClass()),
						components.CardTitle("text-2xl font-bold mb-4", block.Title),
						components.CardDescription("text-base leading-relaxed text-muted-foreground", story.Body),
					),
					h.Div(
						h.Class("story-image "+order.ImageClass()),
						components.Image(story.Image, components.ImageProps{
							Alt:   block.Title,
							Class: "w-full h-auto rounded-lg shadow-md",
						}),
					),
				),
			),
		),
	)
}
