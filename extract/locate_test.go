package extract_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/mdclip/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lorem returns roughly n characters of prose.
func lorem(n int) string {
	return strings.Repeat("word ", n/5)
}

func TestLocate(t *testing.T) {
	t.Parallel()

	cfg := extract.DefaultConfig()

	t.Run("prefers the article over navigation", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<nav><a href="/">Home</a><a href="/about">About</a><a href="/blog">Blog</a></nav>
<article><h1>Story</h1><p>`+lorem(300)+`</p><p>`+lorem(300)+`</p></article>
<footer>Copyright</footer>
</body></html>`)

		c, ok := extract.Locate(doc, cfg)

		require.True(t, ok)
		assert.Equal(t, "article", c.Node.Tag())
		assert.Equal(t, cfg.TextLengthBonus+2*cfg.ParagraphBonus+cfg.HeadingBonus, c.Score)
	})

	t.Run("picks the highest scored candidate", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<article><p>short teaser</p></article>
<div class="content"><p>`+lorem(600)+`</p><p>`+lorem(600)+`</p><p>`+lorem(600)+`</p></div>
</body></html>`)

		c, ok := extract.Locate(doc, cfg)

		require.True(t, ok)
		class, _ := c.Node.Attr("class")
		assert.Equal(t, "content", class)
	})

	t.Run("keeps the first of equally scored candidates", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<article id="one"><p>`+lorem(300)+`</p></article>
<article id="two"><p>`+lorem(300)+`</p></article>
</body></html>`)

		c, ok := extract.Locate(doc, cfg)

		require.True(t, ok)
		id, _ := c.Node.Attr("id")
		assert.Equal(t, "one", id)
	})

	t.Run("adds long generic containers with paragraphs", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body>
<div id="story"><p>`+lorem(600)+`</p></div>
<div id="teaser"><p>tiny</p></div>
<div id="flat">`+lorem(600)+`</div>
</body></html>`)

		candidates := extract.Candidates(doc, cfg)

		require.Len(t, candidates, 1)
		id, _ := candidates[0].Node.Attr("id")
		assert.Equal(t, "story", id)
		assert.Equal(t, cfg.TextLengthBonus+cfg.ParagraphBonus, candidates[0].Score)
	})

	t.Run("scores an element matched twice only once", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><main role="main" class="content"><p>`+lorem(300)+`</p></main></body></html>`)

		candidates := extract.Candidates(doc, cfg)

		assert.Len(t, candidates, 1)
	})

	t.Run("drops selector matches scoring zero", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><article></article><p>loose text</p></body></html>`)

		_, ok := extract.Locate(doc, cfg)

		assert.False(t, ok)
	})

	t.Run("finds nothing on pages without long content", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><body><div><p>Short note.</p></div><div>`+lorem(100)+`</div></body></html>`)

		_, ok := extract.Locate(doc, cfg)

		assert.False(t, ok)
	})

	t.Run("never prefers a candidate containing a form", func(t *testing.T) {
		t.Parallel()

		body := `<h2>Report</h2><p>` + lorem(800) + `</p><p>` + lorem(800) + `</p><p>` + lorem(800) + `</p>`
		doc := parse(t, `<html><body>
<article id="with-form">`+body+`<form><input name="q"></form></article>
<div class="post-content" id="clean">`+body+`</div>
</body></html>`)

		candidates := extract.Candidates(doc, cfg)

		require.GreaterOrEqual(t, len(candidates), 2)
		id, _ := candidates[0].Node.Attr("id")
		assert.Equal(t, "clean", id)

		var withForm extract.Candidate
		for _, c := range candidates {
			if id, _ := c.Node.Attr("id"); id == "with-form" {
				withForm = c
			}
		}
		require.NotNil(t, withForm.Node)
		assert.GreaterOrEqual(t, candidates[0].Score-withForm.Score, cfg.FormPenalty)
	})
}
