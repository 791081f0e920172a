// Package layout maps an entry's position to its alternating layout variant.
// The functions are pure so the zig-zag rules can be tested without rendering.
package layout

// StoryLayout is the column order of a story block from the md breakpoint up.
// Below it the image always comes first.
type StoryLayout int

const (
	TextFirst StoryLayout = iota
	ImageFirst
)

// StoryOrder returns TextFirst for even indices and ImageFirst for odd ones.
func StoryOrder(index int) StoryLayout {
	if index%2 == 0 {
		return TextFirst
	}
	return ImageFirst
}

func (l StoryLayout) String() string {
	if l == ImageFirst {
		return "image-first"
	}
	return "text-first"
}

// TextClass is the order utility of the text column.
func (l StoryLayout) TextClass() string {
	if l == ImageFirst {
		return "order-2 md:order-2"
	}
	return "order-2 md:order-1"
}

// ImageClass is the order utility of the image column.
func (l StoryLayout) ImageClass() string {
	if l == ImageFirst {
		return "order-1 md:order-1"
	}
	return "order-1 md:order-2"
}

// Side is the half of the timeline an event is anchored to.
type Side int

const (
	// Trailing events sit against the connector from the right with a rotated marker.
	Trailing Side = iota
	Leading
)

// TimelineSide returns Trailing for even indices and Leading for odd ones.
func TimelineSide(index int) Side {
	if index%2 == 0 {
		return Trailing
	}
	return Leading
}

func (s Side) String() string {
	if s == Leading {
		return "leading"
	}
	return "trailing"
}

// TimelineClasses are the class strings of the three nested boxes of a
// timeline entry.
type TimelineClasses struct {
	Entry  string
	Marker string
	Card   string
}

const (
	entryBase  = "relative -mt-20 flex justify-start h-fit w-1/2 flex-col"
	markerBase = "sticky flex flex-col mt-3 border border-[#3577f39a] py-[10px] md:flex-row z-10 items-end top-60"
	markerSkin = "bg-gradient-to-r from-[#003f6c] via-[#61beef] to-[#00aaff] dark:bg-gradient-to-b dark:from-[#000] dark:to-[#120a1d]"
	cardBase   = "relative flex -mt-6 h-fit md:w-[90%] lg:w-[80%]"
)

// Classes returns the class strings for an entry on side s.
func (s Side) Classes() TimelineClasses {
	if s == Leading {
		return TimelineClasses{
			Entry:  entryBase + " self-end",
			Marker: markerBase + " self-start " + markerSkin,
			Card:   cardBase + " self-end z-20",
		}
	}
	return TimelineClasses{
		Entry:  entryBase,
		Marker: markerBase + " self-end rotate-180 " + markerSkin,
		Card:   cardBase + " justify-end z-20",
	}
}
