package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/mdclip"
)

// invisible elements contribute no visible text.
var invisible = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

var formControls = map[string]bool{
	"form":     true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"button":   true,
}

// signals are the structural measurements the scorer works from.
type signals struct {
	textLength int
	paragraphs int
	links      int
	heading    bool
	form       bool
}

func measure(n mdclip.Node) signals {
	var s signals
	if n == nil || n.Kind() != mdclip.ElementNode {
		return s
	}
	s.textLength = visibleTextLength(n)
	s.heading = isHeading(tagName(n), 3)
	s.form = formControls[tagName(n)]
	walkElements(n, func(el mdclip.Node) {
		tag := tagName(el)
		switch {
		case tag == "p":
			s.paragraphs++
		case tag == "a":
			s.links++
		case isHeading(tag, 3):
			s.heading = true
		case formControls[tag]:
			s.form = true
		}
	})
	return s
}

// Score returns the content score of an element: higher means more likely
// to be genuine article content. The result is never negative.
func Score(n mdclip.Node, cfg Config) int {
	s := measure(n)

	score := 0
	for _, tier := range cfg.TextLengthTiers {
		if s.textLength > tier {
			score += cfg.TextLengthBonus
		}
	}
	score += s.paragraphs * cfg.ParagraphBonus
	if s.heading {
		score += cfg.HeadingBonus
	}
	// More than one link per LinkDensityChars characters of text.
	if cfg.LinkDensityChars > 0 && s.links*cfg.LinkDensityChars > s.textLength {
		score -= cfg.LinkDensityPenalty
	}
	if s.form {
		score -= cfg.FormPenalty
	}

	return max(score, 0)
}

// visibleTextLength counts the characters of trimmed text outside
// script-like elements.
func visibleTextLength(n mdclip.Node) int {
	var b strings.Builder
	writeVisibleText(&b, n)
	return utf8.RuneCountInString(strings.TrimSpace(b.String()))
}

func writeVisibleText(b *strings.Builder, n mdclip.Node) {
	if n.Kind() == mdclip.TextNode {
		b.WriteString(n.Text())
		return
	}
	if invisible[tagName(n)] {
		return
	}
	for _, c := range n.Children() {
		writeVisibleText(b, c)
	}
}

// walkElements calls fn for every element strictly below n in document order.
func walkElements(n mdclip.Node, fn func(mdclip.Node)) {
	for _, c := range n.Children() {
		if c.Kind() != mdclip.ElementNode {
			continue
		}
		fn(c)
		walkElements(c, fn)
	}
}

// tagName returns the lower-cased tag of n, whatever casing the
// implementation stores.
func tagName(n mdclip.Node) string {
	return strings.ToLower(n.Tag())
}

// firstDescendant returns the first element below n with the given tag, or nil.
func firstDescendant(n mdclip.Node, tag string) mdclip.Node {
	for _, c := range n.Children() {
		if c.Kind() != mdclip.ElementNode {
			continue
		}
		if tagName(c) == tag {
			return c
		}
		if found := firstDescendant(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// isHeading reports whether tag is h1..hN.
func isHeading(tag string, maxLevel int) bool {
	return headingLevel(tag) >= 1 && headingLevel(tag) <= maxLevel
}

// headingLevel returns 1-6 for h1-h6 and 0 otherwise.
func headingLevel(tag string) int {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0
	}
	return int(tag[1] - '0')
}
