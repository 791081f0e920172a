package components

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/everythingtalent/etsite/internal/content"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Shimmer is the flat SVG shown while an image of the given size loads.
func Shimmer(width, height int) string {
	return fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg"><rect width="%d" height="%d" fill="#f6f7f8"/></svg>`, width, height, width, height)
}

// PlaceholderDataURL is Shimmer encoded as a base64 data URL.
func PlaceholderDataURL(width, height int) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(Shimmer(width, height)))
}

// ImageProps tweaks how an Image renders.
type ImageProps struct {
	Class string
	Alt   string // overrides img.Alt when set
	Src   string // overrides img.Src when set
	Lazy  bool
}

// Image renders a fixed asset with its shimmer placeholder as background.
func Image(img content.Image, props ImageProps) g.Node {
	src, alt := img.Src, img.Alt
	if props.Src != "" {
		src = props.Src
	}
	if props.Alt != "" {
		alt = props.Alt
	}
	return h.Img(
		h.Src(src),
		h.Alt(alt),
		g.If(img.Width > 0, h.Width(strconv.Itoa(img.Width))),
		g.If(img.Height > 0, h.Height(strconv.Itoa(img.Height))),
		g.If(props.Class != "", h.Class(props.Class)),
		g.If(props.Lazy, g.Attr("loading", "lazy")),
		g.If(img.Width > 0 && img.Height > 0,
			h.Style("background-image:url("+PlaceholderDataURL(img.Width, img.Height)+");background-size:cover")),
	)
}
