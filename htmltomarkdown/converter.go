// Package htmltomarkdown converts extractor output to Markdown with
// html-to-markdown. It is the baseline converter the engine's own
// transducer is compared against.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/mdclip"
)

// Ensure Converter implements mdclip.Converter at compile time.
var _ mdclip.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter with the CommonMark and table plugins.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Relative references are
// made absolute using the scheme and host of pageURL.
func (c *Converter) Convert(html string, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", mdclip.Errorf(mdclip.EINVALID, "empty HTML input")
	}

	var opts []converter.ConvertOptionFunc
	if domain := domainOf(pageURL); domain != "" {
		opts = append(opts, converter.WithDomain(domain))
	}

	result, err := c.conv.ConvertString(html, opts...)
	if err != nil {
		return "", mdclip.Errorf(mdclip.EINTERNAL, "failed to convert HTML: %v", err)
	}

	return strings.TrimSpace(result), nil
}

// domainOf returns scheme://host of an absolute URL, or "".
func domainOf(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
