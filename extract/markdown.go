package extract

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/mdclip"
)

// category is the closed set of node kinds the transducer distinguishes.
// Supporting a new tag means adding it to categories, and a new kind of
// output means adding one case to transducer.node.
type category int

const (
	categoryFallback category = iota
	categoryHeading
	categoryParagraph
	categoryBreak
	categoryRule
	categoryMedia
	categoryLink
	categoryStrong
	categoryEmphasis
	categoryCode
	categoryPreformatted
	categoryQuote
	categoryList
	categoryListItem
	categoryContainer
	categoryTable
	categorySkip
)

var categories = map[string]category{
	"h1":         categoryHeading,
	"h2":         categoryHeading,
	"h3":         categoryHeading,
	"h4":         categoryHeading,
	"h5":         categoryHeading,
	"h6":         categoryHeading,
	"p":          categoryParagraph,
	"br":         categoryBreak,
	"hr":         categoryRule,
	"img":        categoryMedia,
	"a":          categoryLink,
	"strong":     categoryStrong,
	"b":          categoryStrong,
	"em":         categoryEmphasis,
	"i":          categoryEmphasis,
	"code":       categoryCode,
	"pre":        categoryPreformatted,
	"blockquote": categoryQuote,
	"ul":         categoryList,
	"ol":         categoryList,
	"li":         categoryListItem,
	"div":        categoryContainer,
	"section":    categoryContainer,
	"article":    categoryContainer,
	"main":       categoryContainer,
	"table":      categoryTable,
	"script":     categorySkip,
	"style":      categorySkip,
	"noscript":   categorySkip,
	"iframe":     categorySkip,
	"template":   categorySkip,
}

func categorize(tag string) category {
	return categories[tag]
}

var (
	blankLineSpace = regexp.MustCompile(`(?m)^[ \t]+$`)
	newlineRun     = regexp.MustCompile(`\n{3,}`)
)

// Markdown converts the subtree rooted at n into a Markdown document.
// Relative link and image references are resolved against base, which may
// be nil. The result never contains more than two consecutive newlines and
// has no leading or trailing whitespace. An empty result means the subtree
// held no content.
func Markdown(n mdclip.Node, base *url.URL) string {
	if n == nil {
		return ""
	}
	t := transducer{base: base}
	return normalize(t.node(n, 0))
}

// normalize blanks whitespace-only lines, collapses runs of three or more
// newlines to two and trims the result.
func normalize(s string) string {
	s = blankLineSpace.ReplaceAllString(s, "")
	s = newlineRun.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// transducer converts nodes to Markdown fragments. It holds no mutable
// state; the list nesting level is threaded through every call.
type transducer struct {
	base *url.URL
}

func (t transducer) node(n mdclip.Node, level int) string {
	if n.Kind() == mdclip.TextNode {
		return text(n.Text())
	}

	switch categorize(tagName(n)) {
	case categoryHeading:
		return heading(n)
	case categoryParagraph:
		content := strings.TrimSpace(t.children(n, level))
		if content == "" {
			return ""
		}
		return "\n" + content + "\n\n"
	case categoryBreak:
		return "\n"
	case categoryRule:
		return "\n---\n\n"
	case categoryMedia:
		return t.image(n)
	case categoryLink:
		return t.link(n, level)
	case categoryStrong:
		return wrap(t.children(n, level), "**")
	case categoryEmphasis:
		return wrap(t.children(n, level), "*")
	case categoryCode:
		return inlineCode(n.Text())
	case categoryPreformatted:
		return preformatted(n)
	case categoryQuote:
		return t.quote(n, level)
	case categoryList:
		return t.list(n, level)
	case categoryListItem:
		// Items are rendered by their parent list only.
		return ""
	case categoryTable:
		return Table(n)
	case categorySkip:
		return ""
	default:
		return t.children(n, level)
	}
}

func (t transducer) children(n mdclip.Node, level int) string {
	var b strings.Builder
	for _, c := range n.Children() {
		b.WriteString(t.node(c, level))
	}
	return b.String()
}

// text emits character data verbatim. Whitespace-only data between inline
// elements collapses to one space rather than nothing, so adjacent inline
// elements stay separated (**Hello** *world*); whitespace spanning lines is
// dropped.
func text(data string) string {
	if strings.TrimSpace(data) != "" {
		return data
	}
	if data != "" && !strings.ContainsAny(data, "\n\r") {
		return " "
	}
	return ""
}

func heading(n mdclip.Node) string {
	title := collapseSpace(n.Text())
	if title == "" {
		return ""
	}
	return "\n" + strings.Repeat("#", headingLevel(tagName(n))) + " " + title + "\n\n"
}

// wrap surrounds inline content with a marker, keeping surrounding
// whitespace outside the marker.
func wrap(content, marker string) string {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return content
	}
	lead := content[:strings.Index(content, trimmed)]
	trail := content[len(lead)+len(trimmed):]
	return lead + marker + trimmed + marker + trail
}

func inlineCode(data string) string {
	code := strings.TrimSpace(data)
	if code == "" {
		return ""
	}
	if strings.Contains(code, "`") {
		return "`` " + code + " ``"
	}
	return "`" + code + "`"
}

func preformatted(n mdclip.Node) string {
	source := n
	code := firstDescendant(n, "code")
	if code != nil {
		source = code
	}

	body := strings.Trim(source.Text(), "\n")
	if strings.TrimSpace(body) == "" {
		return ""
	}

	fence := "```"
	for strings.Contains(body, fence) {
		fence += "`"
	}

	lang := language(n)
	if code != nil && lang == "" {
		lang = language(code)
	}

	return "\n" + fence + lang + "\n" + body + "\n" + fence + "\n\n"
}

// language returns the language hint from a "language-x" or "lang-x" class.
func language(n mdclip.Node) string {
	class, _ := n.Attr("class")
	for _, name := range strings.Fields(class) {
		for _, prefix := range []string{"language-", "lang-"} {
			if lang, ok := strings.CutPrefix(name, prefix); ok && lang != "" {
				return lang
			}
		}
	}
	return ""
}

func (t transducer) quote(n mdclip.Node, level int) string {
	content := strings.TrimSpace(newlineRun.ReplaceAllString(t.children(n, level), "\n\n"))
	if content == "" {
		return ""
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return "\n" + strings.Join(lines, "\n") + "\n\n"
}

func (t transducer) image(n mdclip.Node) string {
	target, ok := resolveReference(t.base, imageSource(n))
	if !ok {
		return ""
	}
	alt, _ := n.Attr("alt")
	return "\n![" + collapseSpace(alt) + "](" + target + ")\n\n"
}

// imageSource prefers src and falls back to the lazy-loading data-src when
// src is missing or an inline placeholder.
func imageSource(n mdclip.Node) string {
	src, _ := n.Attr("src")
	src = strings.TrimSpace(src)
	if src == "" || strings.HasPrefix(strings.ToLower(src), "data:") {
		if lazy, ok := n.Attr("data-src"); ok && strings.TrimSpace(lazy) != "" {
			return strings.TrimSpace(lazy)
		}
	}
	return src
}

func (t transducer) link(n mdclip.Node, level int) string {
	label := t.children(n, level)
	href, ok := n.Attr("href")
	if !ok || isScriptLink(href) {
		return label
	}
	target, ok := resolveReference(t.base, href)
	if !ok {
		return label
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return ""
	}
	return "[" + label + "](" + target + ")"
}

func (t transducer) list(n mdclip.Node, level int) string {
	ordered := tagName(n) == "ol"
	number := listStart(n)
	indent := strings.Repeat("  ", level)

	var b strings.Builder
	for _, item := range n.Children() {
		if item.Kind() != mdclip.ElementNode || tagName(item) != "li" {
			continue
		}

		marker := "- "
		if ordered {
			marker = strconv.Itoa(number) + ". "
			number++
		}

		var inline strings.Builder
		var nested []string
		for _, c := range item.Children() {
			if c.Kind() == mdclip.ElementNode && categorize(tagName(c)) == categoryList {
				if sub := strings.Trim(t.node(c, level+1), "\n"); sub != "" {
					nested = append(nested, sub)
				}
				continue
			}
			inline.WriteString(t.node(c, level+1))
		}

		content := itemText(inline.String(), indent+strings.Repeat(" ", len(marker)))
		if content == "" && len(nested) == 0 {
			continue
		}
		b.WriteString(indent + marker + content + "\n")
		for _, sub := range nested {
			b.WriteString(sub + "\n")
		}
	}

	if b.Len() == 0 {
		return ""
	}
	return "\n" + b.String() + "\n"
}

// listStart honours the start attribute of ordered lists.
func listStart(n mdclip.Node) int {
	if start, ok := n.Attr("start"); ok {
		if v, err := strconv.Atoi(strings.TrimSpace(start)); err == nil {
			return v
		}
	}
	return 1
}

// itemText flattens item content onto one line per non-blank source line,
// indenting continuation lines under the item marker. Lines inside a code
// fence keep their spacing.
func itemText(content, continuation string) string {
	var lines []string
	fence := ""
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case fence != "":
			if trimmed == fence {
				fence = ""
				lines = append(lines, trimmed)
				continue
			}
			lines = append(lines, strings.TrimRight(line, " \t"))
		case trimmed == "":
		default:
			fence = openingFence(trimmed)
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n"+continuation)
}

// openingFence returns the backtick run opening a fenced code block, or ""
// when line is not a fence.
func openingFence(line string) string {
	run := len(line) - len(strings.TrimLeft(line, "`"))
	if run < 3 {
		return ""
	}
	return line[:run]
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
