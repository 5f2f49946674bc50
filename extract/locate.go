package extract

import (
	"cmp"
	"slices"

	"github.com/fwojciec/mdclip"
)

// Candidate is an element judged to plausibly contain the article, with
// its content score.
type Candidate struct {
	Node  mdclip.Node
	Score int
}

// Candidates returns every qualifying candidate of doc ranked by score,
// highest first. Equal scores keep discovery order.
//
// Selector matches are kept when their score is positive. Generic
// containers are added when their visible text exceeds
// cfg.MinContainerTextLength and they contain a paragraph. An element found
// by several routes is scored once.
func Candidates(doc mdclip.Document, cfg Config) []Candidate {
	var candidates []Candidate
	seen := make(map[mdclip.Node]bool)

	for _, selector := range cfg.CandidateSelectors {
		for _, n := range doc.Select(selector) {
			if seen[n] {
				continue
			}
			if score := Score(n, cfg); score > 0 {
				seen[n] = true
				candidates = append(candidates, Candidate{Node: n, Score: score})
			}
		}
	}

	if cfg.ContainerSelector != "" {
		for _, n := range doc.Select(cfg.ContainerSelector) {
			if seen[n] {
				continue
			}
			if visibleTextLength(n) <= cfg.MinContainerTextLength || firstDescendant(n, "p") == nil {
				continue
			}
			seen[n] = true
			candidates = append(candidates, Candidate{Node: n, Score: Score(n, cfg)})
		}
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})

	return candidates
}

// Locate returns the highest-ranked candidate of doc.
// Returns false if no candidate qualifies.
func Locate(doc mdclip.Document, cfg Config) (Candidate, bool) {
	candidates := Candidates(doc, cfg)
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	return candidates[0], true
}
