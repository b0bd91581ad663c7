package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AstroVision/internal/domain"
	"AstroVision/internal/infrastructure/memory"
)

func storedIDs(ids ...string) PostLookup {
	return func(_ context.Context, id string) (bool, error) {
		for _, s := range ids {
			if s == id {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestDraftCheckStates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		draft     *domain.Draft
		editingID string
		want      DraftState
	}{
		{"no draft", nil, "", NoDraft},
		{"same post", &domain.Draft{ID: "p1", Title: "x"}, "p1", MatchingDraft},
		{"other post", &domain.Draft{ID: "p2", Title: "x"}, "p1", MismatchedDraft},
		{"new post draft", &domain.Draft{ID: "fresh", Title: "x"}, "", MatchingDraft},
		{"draft of stored post while creating", &domain.Draft{ID: "p1", Title: "x"}, "", MismatchedDraft},
		{"draft without id", &domain.Draft{Title: "x"}, "", MismatchedDraft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			drafts := NewDraftService(memory.NewKVStore(), storedIDs("p1", "p2"), nil)
			if tc.draft != nil {
				saved, err := drafts.Save(ctx, *tc.draft)
				require.NoError(t, err)
				require.True(t, saved)
			}

			check, err := drafts.Check(ctx, tc.editingID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, check.State)
			if tc.want == MatchingDraft {
				require.NotNil(t, check.Draft)
				assert.Equal(t, tc.draft.ID, check.Draft.ID)
			} else {
				assert.Nil(t, check.Draft)
			}
		})
	}
}

func TestDraftSaveSkipsEmpty(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	drafts := NewDraftService(memory.NewKVStore(), nil, nil)
	saved, err := drafts.Save(ctx, domain.Draft{ID: "p1", Category: "Zodiac", Tags: []string{"a"}})
	require.NoError(t, err)
	assert.False(t, saved)

	_, ok, err := drafts.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDraftUnreadableIsIgnored(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	kv := memory.NewKVStore()
	require.NoError(t, kv.Put(ctx, DraftKey, []byte("{not json")))

	drafts := NewDraftService(kv, nil, nil)
	check, err := drafts.Check(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, NoDraft, check.State)
}

func TestDraftDecline(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	drafts := NewDraftService(memory.NewKVStore(), nil, nil)
	_, err := drafts.Save(ctx, domain.Draft{ID: "p1", Content: "body"})
	require.NoError(t, err)

	require.NoError(t, drafts.Decline(ctx))
	check, err := drafts.Check(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, NoDraft, check.State)
}

func TestAutosaverDebounces(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	drafts := NewDraftService(memory.NewKVStore(), nil, nil)
	auto := NewAutosaver(drafts, 50*time.Millisecond, nil)
	t.Cleanup(func() { _ = auto.Close(ctx) })

	auto.Touch(domain.Draft{ID: "p1", Title: "T"})
	auto.Touch(domain.Draft{ID: "p1", Title: "Ti"})
	auto.Touch(domain.Draft{ID: "p1", Title: "Title"})
	assert.True(t, auto.Pending())

	_, ok, err := drafts.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "nothing is written before the quiet period")

	require.Eventually(t, func() bool { return !auto.Pending() }, time.Second, 5*time.Millisecond)

	draft, ok, err := drafts.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Title", draft.Title)
}

func TestAutosaverDiscardDropsPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	drafts := NewDraftService(memory.NewKVStore(), nil, nil)
	auto := NewAutosaver(drafts, 20*time.Millisecond, nil)
	t.Cleanup(func() { _ = auto.Close(ctx) })

	auto.Touch(domain.Draft{ID: "p1", Title: "unsaved"})
	require.NoError(t, drafts.Discard(ctx))
	assert.False(t, auto.Pending())

	time.Sleep(60 * time.Millisecond)
	_, ok, err := drafts.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// stallingKV holds the first Put until release is closed.
type stallingKV struct {
	*memory.KVStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (s *stallingKV) Put(ctx context.Context, key string, value []byte) error {
	s.once.Do(func() {
		close(s.entered)
		<-s.release
	})
	return s.KVStore.Put(ctx, key, value)
}

func TestDiscardDuringAutosaveWriteWins(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	store := &stallingKV{
		KVStore: memory.NewKVStore(),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	drafts := NewDraftService(store, nil, nil)
	auto := NewAutosaver(drafts, 5*time.Millisecond, nil)
	t.Cleanup(func() { _ = auto.Close(ctx) })

	auto.Touch(domain.Draft{ID: "p1", Title: "in flight"})
	select {
	case <-store.entered:
	case <-time.After(time.Second):
		t.Fatal("autosave never reached the store")
	}

	discarded := make(chan error, 1)
	go func() { discarded <- drafts.Discard(ctx) }()

	time.Sleep(20 * time.Millisecond)
	close(store.release)
	require.NoError(t, <-discarded)

	_, ok, err := drafts.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "draft written before the discard must stay deleted")
}

func TestAutosaveSkipsSnapshotTakenBeforeDiscard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	drafts := NewDraftService(memory.NewKVStore(), nil, nil)
	epoch := drafts.epoch.Load()
	require.NoError(t, drafts.Discard(ctx))

	saved, err := drafts.saveAt(ctx, domain.Draft{ID: "p1", Title: "stale"}, epoch)
	require.NoError(t, err)
	assert.False(t, saved)

	_, ok, err := drafts.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAutosaverCloseFlushes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	drafts := NewDraftService(memory.NewKVStore(), nil, nil)
	auto := NewAutosaver(drafts, time.Hour, nil)

	auto.Touch(domain.Draft{Title: "last words"})
	require.NoError(t, auto.Close(ctx))

	draft, ok, err := drafts.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "last words", draft.Title)

	auto.Touch(domain.Draft{Title: "ignored"})
	assert.False(t, auto.Pending())
}
