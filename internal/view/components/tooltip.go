package components

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Tooltip wraps a focusable trigger and reveals content on hover or focus.
// id must be unique on the page; it links the trigger to the tip for
// assistive technology.
func Tooltip(id string, trigger g.Node, tip ...g.Node) g.Node {
	return h.Div(
		h.Class("tooltip group relative"),
		h.Div(
			h.Class("tooltip-trigger"),
			h.TabIndex("0"),
			h.Aria("describedby", id),
			trigger,
		),
		h.Div(
			h.ID(id),
			h.Role("tooltip"),
			h.Class("tooltip-content invisible opacity-0 group-hover:visible group-hover:opacity-100 group-focus-within:visible group-focus-within:opacity-100 absolute left-1/2 -translate-x-1/2 z-50 mt-2 rounded-md border bg-popover px-3 py-1.5 text-sm text-popover-foreground shadow-md transition-opacity"),
			g.Group(tip),
		),
	)
}
