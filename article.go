package mdclip

// ExtractionSource identifies which tier of the pipeline produced an article.
type ExtractionSource string

// ExtractionSource constants for Article.
const (
	// SourceCandidate means a scored candidate node was transduced.
	SourceCandidate ExtractionSource = "candidate"

	// SourceFallback means no candidate qualified and the sanitized copy
	// of the whole body was transduced.
	SourceFallback ExtractionSource = "fallback"
)

// Article is the result of one extraction: a title, the absolute page URL,
// and the Markdown content. Consumers must treat an empty Content as an
// extraction failure, not as a valid empty document.
type Article struct {
	Title       string           `json:"title"`
	URL         string           `json:"url"`
	Content     string           `json:"content"`
	Source      ExtractionSource `json:"source"`
	Score       int              `json:"score"`
	ContentHash string           `json:"contentHash,omitempty"`
}

// Validate returns ENOCONTENT if no Markdown was extracted.
func (a *Article) Validate() error {
	if a.Content != "" {
		return nil
	}
	if a.URL == "" {
		return Errorf(ENOCONTENT, "no content extracted")
	}
	return Errorf(ENOCONTENT, "no content extracted from %s", a.URL)
}

// Sections returns the heading outline of the article content.
func (a *Article) Sections() []Section {
	return ExtractSections(a.Content)
}

// Clipper turns a parsed page into a Markdown article.
type Clipper interface {
	// Clip extracts the primary content of doc. pageURL is the page's own
	// location and is used to resolve relative links and images.
	// Clip never fails; an empty Content signals that nothing was found.
	Clip(doc Document, pageURL string) *Article
}
