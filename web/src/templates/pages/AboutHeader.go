package pages

import (
	"strconv"

	"github.com/everythingtalent/etsite/internal/content"
	"github.com/everythingtalent/etsite/internal/view/icons"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

func aboutHeader(page *content.Page, themeURL string) g.Node {
	return h.Header(
		h.Role("banner"),
		h.Class("sticky inset-x-0 w-full top-0 z-50 border-b backdrop-blur bg-white dark:bg-[#000000]"),
		h.Nav(
			h.Class("flex items-center w-full h-[54px] md:container justify-between px-6 md:px-8"),
			h.Div(h.Class("flex space-x-8"), brandLink(page.Brand)),
			h.Ul(
				h.Class("hidden lg:flex gap-8 font-medium items-center"),
				g.Map(page.Nav, navItem),
			),
			h.Div(
				h.Class("flex gap-5"),
				themeToggle(themeURL),
				h.Div(
					h.Class("ml-6 hidden lg:block"),
					h.A(
						h.Class("w-full inline-flex items-center justify-center text-sm font-medium bg-gradient-to-b from-blue-500 to-blue-600 text-white h-10 px-4 py-2 rounded group"),
						h.Href(page.Login.Href),
						g.Text(page.Login.Label),
						loginArrow(),
					),
				),
				// Placeholder: the mobile menu has no open behaviour.
				h.Span(h.Class("mobile-menu lg:hidden -mr-2"), icons.Icon(icons.Menu, "hover:cursor-pointer")),
			),
		),
	)
}

func brandLink(brand content.Brand) g.Node {
	logo := func(class string) g.Node {
		return h.Img(
			h.Alt(brand.Logo.Alt),
			h.Class(class),
			h.Src(brand.Logo.Src),
			h.Width(strconv.Itoa(brand.Logo.Width)),
			h.Height(strconv.Itoa(brand.Logo.Height)),
		)
	}
	return h.A(
		h.Class("font-bold text-xl"),
		h.Href("/"),
		h.Div(
			h.Class("relative flex space-x-2 h-10 md:w-fit items-center justify-center text-black dark:text-white dark:-ml-4 -ml-2"),
			logo("dark:hidden block h-8 w-8"),
			logo("hidden dark:block h-8 w-8"),
			h.Span(h.Class("brand-name font-bold"), g.Text(brand.Name)),
		),
	)
}

func navItem(link content.Link) g.Node {
	class := "font-regular text-gray-600 dark:hover:text-slate-300 dark:text-slate-400 text-sm hover:text-gray-800"
	if link.Current {
		class = "font-regular dark:hover:text-slate-300 text-sm hover:text-gray-800 dark:text-white text-gray-950"
	}
	return h.Li(
		h.Class(class),
		h.A(h.Href(link.Href), g.If(link.Current, h.Aria("current", "page")), g.Text(link.Label)),
	)
}

// themeToggle posts to themeURL. Without JavaScript the surrounding form
// submits instead. An empty themeURL renders the control without a target,
// as in exported pages.
func themeToggle(themeURL string) g.Node {
	button := h.Button(
		g.If(themeURL != "", g.Group{h.Type("submit"), hx.Post(themeURL), hx.Swap("none")}),
		g.If(themeURL == "", h.Type("button")),
		h.Aria("label", "Toggle theme"),
		h.Class("relative inline-flex items-center justify-center text-sm font-medium h-5 w-5 px-0 text-muted-foreground"),
		icons.Icon(icons.Sun, "rotate-0 scale-100 transition-all dark:-rotate-90 hover:text-black dark:scale-0"),
		icons.Icon(icons.Moon, "absolute rotate-90 scale-0 transition-all dark:rotate-0 dark:scale-100"),
	)
	if themeURL == "" {
		return h.Div(h.Class("theme-toggle flex"), button)
	}
	return g.El("form",
		h.Method("post"),
		h.Action(themeURL),
		h.Class("theme-toggle flex"),
		button,
	)
}

func loginArrow() g.Node {
	return g.El("svg",
		h.Class("ml-2 -mr-1 w-5 h-5 group-hover:translate-x-1 transition"),
		g.Attr("fill", "currentColor"),
		g.Attr("viewBox", "0 0 20 20"),
		h.Aria("hidden", "true"),
		g.Raw(`<path fill-rule="evenodd" d="M10.293 3.293a1 1 0 011.414 0l6 6a1 1 0 010 1.414l-6 6a1 1 0 01-1.414-1.414L14.586 11H3a1 1 0 110-2h11.586l-4.293-4.293a1 1 0 010-1.414z" clip-rule="evenodd"></path>`),
	)
}
