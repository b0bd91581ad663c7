package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

const (
	defaultCategory = "Zodiac"
	defaultImage    = "https://picsum.photos/800/400"
	excerptRunes    = 160

	// MsgPostCreated and MsgPostUpdated are the editor notifications.
	MsgPostCreated = "New article published!"
	MsgPostUpdated = "Article updated successfully!"
	MsgPostDeleted = "Article removed from the library."
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrTitleRequired = errors.New("title is required")
)

// BlogDeps wires the storage and helpers of the blog use case.
type BlogDeps struct {
	Repository ports.BlogRepository
	Extractor  ports.TextExtractor
	Drafts     *DraftService
	Logger     *slog.Logger
	Now        func() time.Time
}

// BlogService serves the public blog and the admin editor.
type BlogService struct {
	repo      ports.BlogRepository
	extractor ports.TextExtractor
	drafts    *DraftService
	logger    *slog.Logger
	now       func() time.Time
}

// NewBlogService constructs the blog use case.
func NewBlogService(deps BlogDeps) *BlogService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &BlogService{
		repo:      deps.Repository,
		extractor: deps.Extractor,
		drafts:    deps.Drafts,
		logger:    orDiscard(deps.Logger),
		now:       now,
	}
}

// Published filters posts by a title/excerpt search and a category ("All" or empty for any).
func (b *BlogService) Published(ctx context.Context, search, category string) ([]domain.BlogPost, error) {
	posts, err := b.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	search = strings.ToLower(search)
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		matchesSearch := strings.Contains(strings.ToLower(p.Title), search) ||
			strings.Contains(strings.ToLower(p.Excerpt), search)
		matchesCat := category == "" || category == domain.CategoryAll || p.Category == category
		if matchesSearch && matchesCat {
			out = append(out, p)
		}
	}
	return out, nil
}

// BySlug returns the post for a detail page.
func (b *BlogService) BySlug(ctx context.Context, slug string) (domain.BlogPost, error) {
	post, ok, err := b.repo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("get post %s: %w", slug, err)
	}
	if !ok {
		return domain.BlogPost{}, ErrPostNotFound
	}
	return post, nil
}

// AdminList filters posts by a title/category search, as the admin table does.
func (b *BlogService) AdminList(ctx context.Context, search string) ([]domain.BlogPost, error) {
	posts, err := b.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	search = strings.ToLower(search)
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		if strings.Contains(strings.ToLower(p.Title), search) || strings.Contains(strings.ToLower(p.Category), search) {
			out = append(out, p)
		}
	}
	return out, nil
}

// NewPost returns an empty editor record with defaults filled in.
func (b *BlogService) NewPost() domain.BlogPost {
	return domain.BlogPost{
		ID:       uuid.NewString(),
		Date:     b.now().Format(domain.DateLayout),
		Category: defaultCategory,
		Tags:     []string{},
		Image:    defaultImage,
	}
}

// Save inserts or replaces a post and clears the editor draft. It reports
// whether the post was new.
func (b *BlogService) Save(ctx context.Context, post domain.BlogPost) (domain.BlogPost, bool, error) {
	post.Title = strings.TrimSpace(post.Title)
	if post.Title == "" {
		return domain.BlogPost{}, false, ErrTitleRequired
	}
	b.fillDefaults(&post)

	created, err := b.repo.Save(ctx, post)
	if err != nil {
		return domain.BlogPost{}, false, fmt.Errorf("save post %s: %w", post.ID, err)
	}

	if b.drafts != nil {
		if err := b.drafts.Discard(ctx); err != nil {
			b.logger.Warn("clear draft after save", "post", post.ID, "error", err)
		}
	}

	b.logger.Info("post saved", "post", post.ID, "created", created)
	return post, created, nil
}

// Delete removes a post.
func (b *BlogService) Delete(ctx context.Context, id string) error {
	ok, err := b.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	if !ok {
		return ErrPostNotFound
	}
	b.logger.Info("post deleted", "post", id)
	return nil
}

// Exists reports whether a post id is stored.
func (b *BlogService) Exists(ctx context.Context, id string) (bool, error) {
	_, ok, err := b.repo.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get post %s: %w", id, err)
	}
	return ok, nil
}

func (b *BlogService) fillDefaults(post *domain.BlogPost) {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.Date == "" {
		post.Date = b.now().Format(domain.DateLayout)
	}
	if post.Category == "" {
		post.Category = defaultCategory
	}
	if post.Image == "" {
		post.Image = b.coverImage(post.Content)
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}
	if post.Excerpt == "" && post.Content != "" {
		post.Excerpt = b.excerpt(post.Content)
	}
}

func (b *BlogService) coverImage(content string) string {
	if b.extractor != nil {
		if src, ok := b.extractor.FirstImage(content); ok {
			return src
		}
	}
	return defaultImage
}

func (b *BlogService) excerpt(content string) string {
	text := content
	if b.extractor != nil {
		plain, err := b.extractor.PlainText(content)
		if err != nil {
			b.logger.Warn("extract excerpt", "error", err)
		} else {
			text = plain
		}
	}
	return truncateRunes(strings.Join(strings.Fields(text), " "), excerptRunes)
}

// AddTag appends a trimmed tag, keeping tags unique and ordered.
func AddTag(tags []string, tag string) []string {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(tags, tag) {
		return tags
	}
	return append(append([]string(nil), tags...), tag)
}

// RemoveTag drops every occurrence of tag.
func RemoveTag(tags []string, tag string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t != tag {
			out = append(out, t)
		}
	}
	return out
}

// Slugify lowercases the title and joins its alphanumeric runs with dashes.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit])) + "…"
}

// Tag adds a tag to a stored post.
func (b *BlogService) Tag(ctx context.Context, id, tag string) (domain.BlogPost, error) {
	return b.retag(ctx, id, func(tags []string) []string { return AddTag(tags, tag) })
}

// Untag removes a tag from a stored post.
func (b *BlogService) Untag(ctx context.Context, id, tag string) (domain.BlogPost, error) {
	return b.retag(ctx, id, func(tags []string) []string { return RemoveTag(tags, tag) })
}

func (b *BlogService) retag(ctx context.Context, id string, edit func([]string) []string) (domain.BlogPost, error) {
	post, ok, err := b.repo.Get(ctx, id)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("get post %s: %w", id, err)
	}
	if !ok {
		return domain.BlogPost{}, ErrPostNotFound
	}

	post.Tags = edit(post.Tags)
	if _, err := b.repo.Save(ctx, post); err != nil {
		return domain.BlogPost{}, fmt.Errorf("save post %s: %w", id, err)
	}
	return post, nil
}
