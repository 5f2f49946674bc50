package mock

import (
	"context"

	"github.com/fwojciec/mdclip"
)

var _ mdclip.ArticleStore = (*ArticleStore)(nil)

// ArticleStore is a mock implementation of mdclip.ArticleStore.
type ArticleStore struct {
	SaveFn   func(ctx context.Context, a *mdclip.Article, name string) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArticleStore) Save(ctx context.Context, a *mdclip.Article, name string) error {
	return s.SaveFn(ctx, a, name)
}

func (s *ArticleStore) Commit() error {
	return s.CommitFn()
}

func (s *ArticleStore) Abort() error {
	return s.AbortFn()
}
