// Package content holds the fixed copy and data tables of the About page.
//
// A Page is loaded once at start-up and then only read. Renderers receive it
// by pointer and must not modify it; the order of every slice is the display
// order and the index is the only identity an entry has.
package content

// Image is a fixed asset reference.
type Image struct {
	Src    string `yaml:"src" validate:"required"`
	Alt    string `yaml:"alt"`
	Width  int    `yaml:"width" validate:"gte=0"`
	Height int    `yaml:"height" validate:"gte=0"`
}

// Link is a plain hyperlink without parameters.
type Link struct {
	Label   string `yaml:"label" validate:"required"`
	Href    string `yaml:"href" validate:"required"`
	Current bool   `yaml:"current"`
}

// Brand is the logo and product name shown in the header.
type Brand struct {
	Name string `yaml:"name" validate:"required"`
	Logo Image  `yaml:"logo"`
}

// Hero is the headline block with its two rotated images.
type Hero struct {
	Headline  string `yaml:"headline" validate:"required"`
	Primary   Image  `yaml:"primary"`
	Secondary Image  `yaml:"secondary"`
}

// StoryBlock is one entry of the "Our Story" section.
type StoryBlock struct {
	Title string `yaml:"title" validate:"required"`
}

// Story is the "Our Story" section. Every block shares Body and Image.
type Story struct {
	ID      string       `yaml:"id"`
	Heading string       `yaml:"heading" validate:"required"`
	Intro   string       `yaml:"intro"`
	Body    string       `yaml:"body" validate:"required"`
	Image   Image        `yaml:"image"`
	Blocks  []StoryBlock `yaml:"blocks" validate:"len=3,dive"`
}

// Value is a card of the "Our Values" grid. Icon names a glyph.
type Value struct {
	Icon        string `yaml:"icon" validate:"required,glyph"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// Values is the "Our Values" section.
type Values struct {
	ID      string  `yaml:"id"`
	Heading string  `yaml:"heading" validate:"required"`
	Intro   string  `yaml:"intro"`
	Items   []Value `yaml:"items" validate:"len=6,dive"`
}

// TeamMember is one avatar card of the "Our Experts Team" grid.
type TeamMember struct {
	Name        string `yaml:"name" validate:"required"`
	Role        string `yaml:"role" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Image       string `yaml:"image" validate:"required"`
}

// Initials returns the avatar fallback text for the member.
func (m TeamMember) Initials() string {
	return Initials(m.Name)
}

// Team is the "Our Experts Team" section.
type Team struct {
	ID      string       `yaml:"id"`
	Heading string       `yaml:"heading" validate:"required"`
	Intro   string       `yaml:"intro"`
	Members []TeamMember `yaml:"members" validate:"len=7,dive"`
}

// Culture is the static "Our Culture" card.
type Culture struct {
	Heading    string   `yaml:"heading" validate:"required"`
	Summary    string   `yaml:"summary"`
	Paragraphs []string `yaml:"paragraphs"`
	CTA        Link     `yaml:"cta"`
}

// JourneyEvent is a milestone of the "Our Journey" timeline.
type JourneyEvent struct {
	Date        string `yaml:"date" validate:"required"`
	Title       string `yaml:"title" validate:"required"`
	Icon        string `yaml:"icon" validate:"required,glyph"`
	Description string `yaml:"description"`
}

// Journey is the "Our Journey" timeline. Image is the shared event picture;
// each event gets its title appended as the text query parameter.
type Journey struct {
	ID      string         `yaml:"id"`
	Heading string         `yaml:"heading" validate:"required"`
	Intro   string         `yaml:"intro"`
	Image   Image          `yaml:"image"`
	Events  []JourneyEvent `yaml:"events" validate:"len=4,dive"`
}

// FooterColumn is a titled list of placeholder links.
type FooterColumn struct {
	Title string   `yaml:"title" validate:"required"`
	Items []string `yaml:"items" validate:"min=1,dive,required"`
}

// Footer is the page footer.
type Footer struct {
	Logo      Image          `yaml:"logo"`
	Columns   []FooterColumn `yaml:"columns" validate:"len=3,dive"`
	Skyline   Image          `yaml:"skyline"`
	Copyright string         `yaml:"copyright" validate:"required"`
}

// Page is the whole content document of the About page.
type Page struct {
	Brand   Brand   `yaml:"brand"`
	Nav     []Link  `yaml:"nav" validate:"min=1,dive"`
	Login   Link    `yaml:"login"`
	Hero    Hero    `yaml:"hero"`
	Story   Story   `yaml:"story"`
	Values  Values  `yaml:"values"`
	Team    Team    `yaml:"team"`
	Culture Culture `yaml:"culture"`
	Journey Journey `yaml:"journey"`
	Footer  Footer  `yaml:"footer"`
}
