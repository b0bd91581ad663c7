// Package content embeds the static pages and the seed blog posts.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"AstroVision/internal/domain"
)

var (
	//go:embed pages.yaml
	pagesYAML []byte
	//go:embed posts.yaml
	postsYAML []byte
)

// Page is a static informational page split into paragraphs.
type Page struct {
	Name       string   `json:"name" yaml:"name"`
	Title      string   `json:"title" yaml:"title"`
	Updated    string   `json:"updated" yaml:"updated"`
	Body       string   `json:"-" yaml:"body"`
	Paragraphs []string `json:"paragraphs" yaml:"-"`
}

// Library holds the parsed embedded content.
type Library struct {
	pages map[string]Page
	order []string
	posts []domain.BlogPost
}

// Load parses the embedded documents.
func Load() (*Library, error) {
	return parse(pagesYAML, postsYAML)
}

func parse(pagesRaw, postsRaw []byte) (*Library, error) {
	var pages []Page
	if err := yaml.Unmarshal(pagesRaw, &pages); err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}
	var posts []domain.BlogPost
	if err := yaml.Unmarshal(postsRaw, &posts); err != nil {
		return nil, fmt.Errorf("parse posts: %w", err)
	}

	lib := &Library{pages: make(map[string]Page, len(pages)), posts: posts}
	for _, p := range pages {
		if p.Name == "" {
			return nil, fmt.Errorf("page without name")
		}
		p.Paragraphs = Paragraphs(p.Body)
		lib.pages[p.Name] = p
		lib.order = append(lib.order, p.Name)
	}
	for i := range lib.posts {
		if lib.posts[i].Tags == nil {
			lib.posts[i].Tags = []string{}
		}
	}
	return lib, nil
}

// Page returns a page by name.
func (l *Library) Page(name string) (Page, bool) {
	p, ok := l.pages[name]
	return p, ok
}

// PageNames lists the pages in document order.
func (l *Library) PageNames() []string {
	return append([]string(nil), l.order...)
}

// SeedPosts returns a copy of the initial blog posts.
func (l *Library) SeedPosts() []domain.BlogPost {
	out := make([]domain.BlogPost, len(l.posts))
	for i, p := range l.posts {
		p.Tags = append([]string{}, p.Tags...)
		out[i] = p
	}
	return out
}

// Paragraphs splits text on blank lines and trims each block.
func Paragraphs(text string) []string {
	blocks := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}
