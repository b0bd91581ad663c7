package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	t.Parallel()

	lib, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"privacy", "terms", "disclaimer", "about"}, lib.PageNames())

	privacy, ok := lib.Page("privacy")
	require.True(t, ok)
	assert.Equal(t, "Privacy Policy", privacy.Title)
	require.Len(t, privacy.Paragraphs, 3)
	assert.Contains(t, privacy.Paragraphs[1], "6. GDPR & CCPA Compliance")

	_, ok = lib.Page("cookies")
	assert.False(t, ok)

	posts := lib.SeedPosts()
	require.NotEmpty(t, posts)
	for _, p := range posts {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Slug)
		assert.NotNil(t, p.Tags)
	}
	posts[0].Tags[0] = "mutated"
	assert.NotEqual(t, "mutated", lib.SeedPosts()[0].Tags[0])
}

func TestParagraphs(t *testing.T) {
	t.Parallel()

	got := Paragraphs("one\nline\n\n\n  two  \r\n\r\nthree\n")
	assert.Equal(t, []string{"one\nline", "two", "three"}, got)
	assert.Empty(t, Paragraphs("  \n\n "))
}

func TestParseRejectsNamelessPage(t *testing.T) {
	t.Parallel()

	_, err := parse([]byte("- title: Orphan\n"), []byte("[]"))
	assert.Error(t, err)
}
