// Package motion wires scroll-triggered entrance animations into rendered markup.
//
// Elements start hidden (transparent and displaced) and the client script in
// web/static/js/reveal.js adds the is-visible class. Two triggers exist:
// InView elements observe their own intersection, Grouped elements wait for
// a named Sequence that the page starts once.
package motion

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	// VisibleClass marks an element whose entrance has played.
	VisibleClass = "is-visible"

	// VariantVisible and VariantHidden are the states of a Grouped element.
	VariantVisible = "visible"
	VariantHidden  = "hidden"
)

// AnimatedOnView is implemented by anything that can wrap content in an
// entrance animation.
type AnimatedOnView interface {
	Animate(children ...g.Node) g.Node
}

// Transition describes one entrance: the wait before it starts, how long it
// runs and how far (px) the element slides up.
type Transition struct {
	Delay    time.Duration
	Duration time.Duration
	Offset   int
}

// Default is the fade-and-slide used across the page.
var Default = Transition{Duration: 500 * time.Millisecond, Offset: 20}

// Stagger delays the default transition by 100ms per index.
func Stagger(index int) Transition {
	t := Default
	t.Delay = time.Duration(index) * 100 * time.Millisecond
	return t
}

// Style is the inline custom-property declaration read by the reveal CSS.
func (t Transition) Style() string {
	return fmt.Sprintf("--reveal-delay:%dms;--reveal-duration:%dms;--reveal-offset:%dpx",
		t.Delay.Milliseconds(), t.Duration.Milliseconds(), t.Offset)
}

// InView animates when the element itself scrolls into view. The client
// replays the entrance every time the element re-enters the viewport.
type InView struct {
	Transition
	Class string
}

// Animate implements AnimatedOnView.
func (v InView) Animate(children ...g.Node) g.Node {
	return h.Div(
		h.Class(classes("reveal", v.Class)),
		h.Data("reveal", "view"),
		h.Style(v.Style()),
		g.Group(children),
	)
}

// Grouped animates together with the other subscribers of Sequence. ID lets
// a swapped-in visible variant settle over its hidden predecessor so the
// transition plays.
type Grouped struct {
	Transition
	Sequence *Sequence
	ID       string
	Class    string
}

// Animate implements AnimatedOnView.
func (gr Grouped) Animate(children ...g.Node) g.Node {
	variant := VariantHidden
	class := classes("reveal", gr.Class)
	if gr.Sequence.Started() {
		variant = VariantVisible
		class = classes(class, VisibleClass)
	}
	return h.Div(
		g.If(gr.ID != "", h.ID(gr.ID)),
		h.Class(class),
		h.Data("reveal", "group"),
		h.Data("sequence", gr.Sequence.Name()),
		h.Data("variant", variant),
		h.Style(gr.Style()),
		g.Group(children),
	)
}

func classes(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
