package mdclip

import (
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// frontMatter is the YAML header written ahead of a clipped article.
type frontMatter struct {
	Title       string           `yaml:"title"`
	Source      string           `yaml:"source"`
	Clipped     string           `yaml:"clipped"`
	Extraction  ExtractionSource `yaml:"extraction,omitempty"`
	ContentHash string           `yaml:"hash,omitempty"`
}

// FormatArticle renders an article as a Markdown document with YAML front
// matter recording its title, source URL and the date it was clipped.
func FormatArticle(a *Article, clipped time.Time) (string, error) {
	fm := frontMatter{
		Title:       a.Title,
		Source:      a.URL,
		Clipped:     clipped.Format(time.DateOnly),
		Extraction:  a.Source,
		ContentHash: a.ContentHash,
	}
	header, err := yaml.Marshal(fm)
	if err != nil {
		return "", Errorf(EINTERNAL, "failed to encode front matter: %v", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(header)
	b.WriteString("---\n\n")
	if a.Content != "" {
		b.WriteString(a.Content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// FormatArticles joins articles for display, each introduced by its title
// and separated by blank lines. Uses the URL when the title is empty.
func FormatArticles(articles []*Article) string {
	if len(articles) == 0 {
		return ""
	}

	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		header := a.Title
		if header == "" {
			header = a.URL
		}
		parts = append(parts, "## Article: "+header+"\n"+a.Content)
	}

	return strings.Join(parts, "\n\n")
}
