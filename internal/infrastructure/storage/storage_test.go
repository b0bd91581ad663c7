package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroVision/internal/domain"
)

func openSQLite(t *testing.T) *DB {
	t.Helper()
	db, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "astro.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "oracle", "dsn")
	assert.Error(t, err)

	_, err = Open(context.Background(), DriverSQLite, "")
	assert.Error(t, err)
}

func TestPostRepositoryRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewPostRepository(openSQLite(t))
	require.NoError(t, repo.Seed(ctx, []domain.BlogPost{
		{ID: "1", Title: "First", Slug: "first", Date: "2024-01-01", Tags: []string{"moon", "sun"}, Category: "Zodiac"},
		{ID: "2", Title: "Second", Slug: "second", Date: "2024-01-02", Category: "Planetary"},
	}))
	// Seeding twice is a no-op.
	require.NoError(t, repo.Seed(ctx, []domain.BlogPost{{ID: "x", Title: "ignored", Slug: "x"}}))

	created, err := repo.Save(ctx, domain.BlogPost{ID: "3", Title: "Third", Slug: "third", Tags: []string{}})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Save(ctx, domain.BlogPost{ID: "2", Title: "Second v2", Slug: "second", Tags: []string{"edited"}})
	require.NoError(t, err)
	assert.False(t, created)

	posts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"3", "1", "2"}, []string{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Equal(t, []string{"moon", "sun"}, posts[1].Tags)
	assert.Equal(t, "Second v2", posts[2].Title)
	assert.Equal(t, []string{"edited"}, posts[2].Tags)

	got, ok, err := repo.GetBySlug(ctx, "first")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2024-01-01", got.Date)

	_, ok, err = repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	removed, err := repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = repo.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetBySlugPrefersNewestOnCollision(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	repo := NewPostRepository(openSQLite(t))
	require.NoError(t, repo.Seed(ctx, []domain.BlogPost{
		{ID: "old-a", Title: "Mars", Slug: "mars", Category: "Planetary"},
		{ID: "old-b", Title: "Mars!", Slug: "mars", Category: "Planetary"},
	}))
	got, ok, err := repo.GetBySlug(ctx, "mars")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "old-a", got.ID)

	_, err = repo.Save(ctx, domain.BlogPost{ID: "new", Title: "Mars?", Slug: "mars"})
	require.NoError(t, err)

	for range 5 {
		got, ok, err = repo.GetBySlug(ctx, "mars")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "new", got.ID)
	}
}

func TestDocumentStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := NewDocumentStore(openSQLite(t))

	_, ok, err := store.Get(ctx, "draft")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Put(ctx, "draft", []byte(`{"title":"a"}`)))
	require.NoError(t, store.Put(ctx, "draft", []byte(`{"title":"b"}`)))

	raw, ok, err := store.Get(ctx, "draft")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"title":"b"}`, string(raw))

	require.NoError(t, store.Delete(ctx, "draft"))
	_, ok, err = store.Get(ctx, "draft")
	require.NoError(t, err)
	assert.False(t, ok)
}
