package entities

// HiddenSlide is returned instead of appending when a slide is hidden
const HiddenSlide = "Slide hidden"

// MediaKind is the top-level media type used in data URIs
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// SlideOptions describes one generic slide.
type SlideOptions struct {
	// Hide skips the slide entirely without touching the deck body
	Hide bool

	// ID is slugified and rendered as the section id when set
	ID string

	// Image is a background image path or URL; it wins over Video
	Image string

	// Video is a background video path or URL
	Video string

	// Content is inserted verbatim into the section
	Content string

	// Notes are speaker notes in markdown
	Notes string

	// Markdown wraps Content in a reveal.js markdown template
	Markdown bool

	// Embed overrides the deck-wide embed setting when non-nil
	Embed *bool
}

// OutlineOptions describes an outline slide built from the deck sections
type OutlineOptions struct {
	// Title defaults to "Outline"
	Title string

	// Current is the 0-based section to emphasise; nil emphasises none
	Current *int

	Notes string
}

// SummaryOptions describes a bullet-list summary slide
type SummaryOptions struct {
	// Title defaults to "Interim summary"
	Title string

	// Points are markdown one-liners, rendered in order
	Points []string

	// Fragment animates each point when set
	Fragment FragmentStyle

	Notes string
}

// FigureOptions describes a grid of images laid out in a table.
type FigureOptions struct {
	Figures []string `yaml:"images"`

	// Transpose stacks images as rows of one column instead of one row
	Transpose bool `yaml:"transpose"`

	// Weights set relative cell sizes; nil means equal sizes
	Weights []float64 `yaml:"weights"`

	Title string `yaml:"title"`

	// Height defaults to the deck height; Width, when set, fixes image widths
	Height int `yaml:"height"`
	Width  int `yaml:"width"`

	Embed *bool `yaml:"embed"`

	// Fragment reveals every cell after the first one step at a time
	Fragment bool `yaml:"fragment"`

	// URLs, when set, must have one link per figure
	URLs []string `yaml:"urls"`

	BgColor     string `yaml:"bgcolor"`
	CellBgColor string `yaml:"cell_bgcolor"`
}

// Citation is a bibliographic reference rendered as a single line
type Citation struct {
	Author  string `yaml:"author"`
	Year    string `yaml:"year"`
	Journal string `yaml:"journal"`
	Title   string `yaml:"title"`
	URL     string `yaml:"url"`
}
