// Package fs stores clipped articles as Markdown files with front matter.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fwojciec/mdclip"
)

// Ensure Store implements mdclip.ArticleStore at compile time.
var _ mdclip.ArticleStore = (*Store)(nil)

// Store implements mdclip.ArticleStore with atomic update semantics.
// Articles are saved to a temporary directory, then moved on Commit.
type Store struct {
	baseDir string
	name    string

	mu   sync.Mutex
	used map[string]bool

	// Now returns the clip date written to front matter.
	Now func() time.Time
}

// NewStore creates a new Store. Files are saved to baseDir/name.tmp and
// moved to baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
		used:    make(map[string]bool),
		Now:     time.Now,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes the article under a path derived from its URL, or from name
// when the URL has none. A path already taken since the last Commit or
// Abort gets a numeric suffix (a.md, a-2.md, a-3.md).
func (s *Store) Save(ctx context.Context, a *mdclip.Article, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := ArticlePath(a.URL, name)
	if err != nil {
		return err
	}
	fullPath := filepath.Join(s.tempDir(), s.claim(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	content, err := mdclip.FormatArticle(a, s.Now())
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(content), 0644)
}

// claim reserves relPath, or the first free suffixed variant of it.
func (s *Store) claim(relPath string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	stem := strings.TrimSuffix(relPath, ".md")
	path := relPath
	for n := 2; s.used[path]; n++ {
		path = stem + "-" + strconv.Itoa(n) + ".md"
	}
	s.used[path] = true
	return path
}

func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.used = make(map[string]bool)
}

// Commit replaces the output directory with the saved articles.
func (s *Store) Commit() error {
	defer s.reset()
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort removes the saved articles.
func (s *Store) Abort() error {
	defer s.reset()
	return os.RemoveAll(s.tempDir())
}

// ArticlePath returns the relative Markdown path for an article.
// The URL path is used when it names a page (https://example.com/docs/api
// becomes docs/api.md, a trailing slash becomes index.md); otherwise name
// with its extension replaced by .md. Paths escaping the output directory
// are rejected with EINVALID.
func ArticlePath(rawURL, name string) (string, error) {
	var rel string
	if u, err := url.Parse(rawURL); err == nil && u.IsAbs() {
		rel = urlPath(u.Path)
	}
	if rel == "" {
		name = filepath.ToSlash(name)
		if name == "" {
			return "", mdclip.Errorf(mdclip.EINVALID, "article has neither URL path nor name")
		}
		rel = strings.TrimSuffix(name, filepath.Ext(name)) + ".md"
	}

	clean := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", mdclip.Errorf(mdclip.EINVALID, "path traversal in %q", rel)
	}
	return clean, nil
}

// urlPath maps a URL path to a relative Markdown path, or "" for the root.
func urlPath(p string) string {
	if p == "" || p == "/" {
		return ""
	}
	p = strings.TrimPrefix(p, "/")
	if strings.HasSuffix(p, "/") {
		return p + "index.md"
	}
	for _, ext := range []string{".html", ".htm", ".xhtml"} {
		p = strings.TrimSuffix(p, ext)
	}
	return p + ".md"
}
