package pages

import (
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/view/components"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func aboutHero(hero content.Hero) g.Node {
	return h.Section(
		h.Class("bg-[#000000] py-20 md:py-22 flex items-center justify-center min-h-[80vh]"),
		h.Aria("label", "Hero"),
		h.Div(
			h.Class("md:container px-4 sm:px-6 light text-zinc-900 dark:text-white relative max-w-7xl mx-auto"),
			h.Div(
				h.Class("flex flex-col-reverse md:flex-row items-center justify-between lg:gap-0 md:gap-12"),
				h.Div(
					h.P(
						h.Class("hero-headline text-transparent bg-clip-text bg-[linear-gradient(to_right,_#000_0%,_#3c3cbf_50%)] dark:bg-[linear-gradient(to_right,_#3c3cbf_0%,_#FFFFFF_50%)] font-bold text-[2.2rem] lg:text-7xl md:mr-12 md:mt-0 text-center md:w-full mt-12 md:text-left"),
						g.Text(hero.Headline),
					),
				),
				h.Div(
					h.Class("md:mr-[70px] min-w-80"),
					h.Div(
						h.Class("relative flex justify-center lg:flex-col mb-8 md:mb-0"),
						components.Image(hero.Primary, components.ImageProps{
							Class: "rotate-45 w-48 h-48 border-[3px] dark:border-[#3577f39a] lg:w-80 lg:h-80 object-cover",
						}),
						components.Image(hero.Secondary, components.ImageProps{
							Class: "hidden md:block -mt-16 rotate-45 border dark:border-[#3577f39a] w-48 h-48 lg:w-80 lg:h-80 object-cover",
						}),
					),
				),
			),
		),
	)
}
