// Package pages holds the page bodies of the site.
package pages

import (
	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/motion"
	"github.com/everythingtalent/etsite/web/src/templates/layouts"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// VisibleSequence is the one-shot sequence the values cards subscribe to.
const VisibleSequence = "visible"

// ValuesGridID is the element swapped when the visible sequence starts.
const ValuesGridID = "values-grid"

// AboutProps is the read-only render input of the About page.
type AboutProps struct {
	Content *content.Page
	// Sequence is owned by this render. It is started only when the visible
	// variant of the values grid is requested.
	Sequence *motion.Sequence
	// ValuesURL serves the values grid in its visible variant. Main requests
	// it once, the first time it scrolls into view.
	ValuesURL string
	// ThemeURL receives the theme toggle.
	ThemeURL string
}

// AboutDocument is the complete About page document in the given theme.
func AboutDocument(props AboutProps, theme layouts.Theme) g.Node {
	return layouts.Base(layouts.BaseProps{
		Title:       "About",
		Description: props.Content.Hero.Headline,
		Theme:       theme,
	}, AboutContent(props))
}

// AboutContent is the full body of the About page: header, main and footer.
func AboutContent(props AboutProps) g.Node {
	page := props.Content
	return g.Group{
		aboutHeader(page, props.ThemeURL),
		h.Main(
			h.Role("main"),
			h.ID("main"),
			g.If(props.ValuesURL != "", g.Group{
				hx.Get(props.ValuesURL),
				hx.Trigger("intersect once"),
				hx.Target("#" + ValuesGridID),
				hx.Swap("outerHTML"),
			}),
			aboutHero(page.Hero),
			aboutStory(page.Story),
			aboutValues(page.Values, props.Sequence),
			aboutTeam(page.Team),
			aboutCulture(page.Culture),
			aboutJourney(page.Journey),
		),
		aboutFooter(page.Brand, page.Footer),
	}
}

// sectionHeading is the fading heading and intro that opens each section.
func sectionHeading(heading, intro string, introClass string) g.Node {
	return motion.InView{Transition: motion.Default, Class: "text-center mb-12"}.Animate(
		h.H2(h.Class("text-3xl font-bold tracking-tighter sm:text-4xl md:text-5xl mb-4"), g.Text(heading)),
		g.If(intro != "", h.P(h.Class("text-xl text-muted-foreground mb-4 "+introClass), g.Text(intro))),
	)
}
