package extract

// Config holds the calibration constants and selector lists used by the
// locator, scorer and sanitizer. The numeric thresholds are empirical and
// have no documented derivation; tests treat them as calibration points.
type Config struct {
	// CandidateSelectors are tried in order; every match is scored and
	// kept if its score is positive.
	CandidateSelectors []string

	// ContainerSelector selects the generic block containers scanned as
	// additional candidates.
	ContainerSelector string

	// MinContainerTextLength is the visible text length a generic
	// container must exceed to be considered.
	MinContainerTextLength int

	// TextLengthTiers award TextLengthBonus once for every tier the visible
	// text length exceeds.
	TextLengthTiers []int
	TextLengthBonus int

	// ParagraphBonus is awarded per descendant paragraph.
	ParagraphBonus int

	// HeadingBonus is awarded once if the subtree contains an h1-h3.
	HeadingBonus int

	// LinkDensityChars is the number of text characters allowed per link
	// before LinkDensityPenalty applies.
	LinkDensityChars   int
	LinkDensityPenalty int

	// FormPenalty applies once if the subtree contains a form control.
	FormPenalty int

	// Denylist holds the CSS selectors removed from the body copy on the
	// fallback path.
	Denylist []string

	// UntitledTitle is used when a page has neither <title> nor <h1>.
	UntitledTitle string
}

// DefaultCandidateSelectors are common article containers, most specific first.
var DefaultCandidateSelectors = []string{
	"article",
	`[role="article"]`,
	"main",
	`[role="main"]`,
	".post-content",
	".article-content",
	".entry-content",
	".article-body",
	".post-body",
	".markdown-body",
	".content",
	"#content",
	".post",
	".article",
}

// DefaultDenylist names the subtrees that never hold article content.
var DefaultDenylist = []string{
	"nav",
	"header",
	"footer",
	"aside",
	"form",
	"script",
	"style",
	"noscript",
	"iframe",
	`[role="navigation"]`,
	`[role="banner"]`,
	`[role="contentinfo"]`,
	`[role="complementary"]`,
	".sidebar",
	"#sidebar",
	".menu",
	".nav",
	".navbar",
	".comments",
	"#comments",
	".comment",
	".share",
	".sharing",
	".social",
	".social-share",
	".ad",
	".ads",
	".advert",
	".advertisement",
	`[class^="ad-"]`,
	`[id^="ad-"]`,
}

// DefaultConfig returns the calibrated defaults.
func DefaultConfig() Config {
	return Config{
		CandidateSelectors:     append([]string(nil), DefaultCandidateSelectors...),
		ContainerSelector:      "div",
		MinContainerTextLength: 500,
		TextLengthTiers:        []int{500, 1000, 2000},
		TextLengthBonus:        10,
		ParagraphBonus:         2,
		HeadingBonus:           5,
		LinkDensityChars:       50,
		LinkDensityPenalty:     10,
		FormPenalty:            20,
		Denylist:               append([]string(nil), DefaultDenylist...),
		UntitledTitle:          "Untitled",
	}
}
