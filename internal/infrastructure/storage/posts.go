package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

var postColumns = []string{"id", "title", "slug", "published_on", "excerpt", "content", "tags", "category", "image"}

// PostRepository keeps blog posts ordered by seq; new posts get the lowest seq.
type PostRepository struct {
	db *DB
}

var _ ports.BlogRepository = (*PostRepository)(nil)

// NewPostRepository wires the repository onto an opened database.
func NewPostRepository(db *DB) *PostRepository {
	return &PostRepository{db: db}
}

// Seed inserts the posts in order when the table is empty.
func (r *PostRepository) Seed(ctx context.Context, posts []domain.BlogPost) error {
	var count int
	if err := r.db.builder.Select("COUNT(*)").From("blog_posts").
		RunWith(r.db.conn).QueryRowContext(ctx).Scan(&count); err != nil {
		return fmt.Errorf("count posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, p := range posts {
		if err := r.insert(ctx, tx, p, int64(i)); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// List returns every post in display order.
func (r *PostRepository) List(ctx context.Context) ([]domain.BlogPost, error) {
	rows, err := r.db.builder.Select(postColumns...).From("blog_posts").OrderBy("seq ASC").
		RunWith(r.db.conn).QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("query posts: %w", err)
	}

	var out []domain.BlogPost
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("rows iteration: %w", rowsErr)
	}

	if closeErr := rows.Close(); closeErr != nil {
		return nil, fmt.Errorf("close rows: %w", closeErr)
	}

	return out, nil
}

// Get finds a post by id.
func (r *PostRepository) Get(ctx context.Context, id string) (domain.BlogPost, bool, error) {
	return r.getBy(ctx, sq.Eq{"id": id})
}

// GetBySlug finds a post by slug.
func (r *PostRepository) GetBySlug(ctx context.Context, slug string) (domain.BlogPost, bool, error) {
	return r.getBy(ctx, sq.Eq{"slug": slug})
}

// Save updates an existing post in place or inserts a new one at the top.
func (r *PostRepository) Save(ctx context.Context, post domain.BlogPost) (bool, error) {
	tags, err := encodeTags(post.Tags)
	if err != nil {
		return false, err
	}

	tx, err := r.db.conn.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := r.db.builder.Update("blog_posts").
		Set("title", post.Title).
		Set("slug", post.Slug).
		Set("published_on", post.Date).
		Set("excerpt", post.Excerpt).
		Set("content", post.Content).
		Set("tags", tags).
		Set("category", post.Category).
		Set("image", post.Image).
		Where(sq.Eq{"id": post.ID}).
		RunWith(tx).ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("update post: %w", err)
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update post: %w", err)
	}

	created := updated == 0
	if created {
		var minSeq sql.NullInt64
		if err := r.db.builder.Select("MIN(seq)").From("blog_posts").
			RunWith(tx).QueryRowContext(ctx).Scan(&minSeq); err != nil {
			return false, fmt.Errorf("read head seq: %w", err)
		}
		if err := r.insert(ctx, tx, post, minSeq.Int64-1); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit save: %w", err)
	}
	return created, nil
}

// Delete removes a post by id.
func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.builder.Delete("blog_posts").Where(sq.Eq{"id": id}).
		RunWith(r.db.conn).ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return n > 0, nil
}

func (r *PostRepository) insert(ctx context.Context, tx *sql.Tx, post domain.BlogPost, seq int64) error {
	tags, err := encodeTags(post.Tags)
	if err != nil {
		return err
	}
	_, err = r.db.builder.Insert("blog_posts").
		Columns(append([]string{"seq"}, postColumns...)...).
		Values(seq, post.ID, post.Title, post.Slug, post.Date, post.Excerpt, post.Content, tags, post.Category, post.Image).
		RunWith(tx).ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("insert post %s: %w", post.ID, err)
	}
	return nil
}

func (r *PostRepository) getBy(ctx context.Context, where sq.Eq) (domain.BlogPost, bool, error) {
	row := r.db.builder.Select(postColumns...).From("blog_posts").Where(where).
		OrderBy("seq ASC").Limit(1).
		RunWith(r.db.conn).QueryRowContext(ctx)
	post, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.BlogPost{}, false, nil
	}
	if err != nil {
		return domain.BlogPost{}, false, err
	}
	return post, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (domain.BlogPost, error) {
	var (
		p    domain.BlogPost
		tags string
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Slug, &p.Date, &p.Excerpt, &p.Content, &tags, &p.Category, &p.Image); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BlogPost{}, err
		}
		return domain.BlogPost{}, fmt.Errorf("scan post: %w", err)
	}
	if err := json.Unmarshal([]byte(tags), &p.Tags); err != nil {
		return domain.BlogPost{}, fmt.Errorf("decode tags of %s: %w", p.ID, err)
	}
	return p, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("encode tags: %w", err)
	}
	return string(raw), nil
}
