package mdclip

import "context"

// ArticleStore persists clipped articles as Markdown files.
// Saved articles become visible together on Commit; Abort discards them.
type ArticleStore interface {
	// Save stores an article. name is the relative path used when the
	// article URL does not determine one.
	Save(ctx context.Context, a *Article, name string) error

	// Commit publishes every saved article.
	Commit() error

	// Abort discards every saved article.
	Abort() error
}
