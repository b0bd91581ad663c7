// Package memory keeps posts and key-value documents in process memory.
package memory

import (
	"context"
	"sync"

	"AstroVision/internal/domain"
	"AstroVision/internal/ports"
)

// BlogStore is an ordered in-memory post list; new posts go first.
type BlogStore struct {
	mu    sync.RWMutex
	posts []domain.BlogPost
}

var _ ports.BlogRepository = (*BlogStore)(nil)

// NewBlogStore seeds the store with the given posts, keeping their order.
func NewBlogStore(seed []domain.BlogPost) *BlogStore {
	posts := make([]domain.BlogPost, 0, len(seed))
	for _, p := range seed {
		posts = append(posts, clonePost(p))
	}
	return &BlogStore{posts: posts}
}

// List returns a copy of every post in display order.
func (s *BlogStore) List(_ context.Context) ([]domain.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.BlogPost, 0, len(s.posts))
	for _, p := range s.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

// Get finds a post by id.
func (s *BlogStore) Get(_ context.Context, id string) (domain.BlogPost, bool, error) {
	return s.find(func(p domain.BlogPost) bool { return p.ID == id })
}

// GetBySlug finds a post by slug.
func (s *BlogStore) GetBySlug(_ context.Context, slug string) (domain.BlogPost, bool, error) {
	return s.find(func(p domain.BlogPost) bool { return p.Slug == slug })
}

// Save replaces a post in place or prepends a new one.
func (s *BlogStore) Save(_ context.Context, post domain.BlogPost) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	post = clonePost(post)
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = post
			return false, nil
		}
	}
	s.posts = append([]domain.BlogPost{post}, s.posts...)
	return true, nil
}

// Delete removes a post by id.
func (s *BlogStore) Delete(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID == id {
			s.posts = append(s.posts[:i:i], s.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *BlogStore) find(match func(domain.BlogPost) bool) (domain.BlogPost, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if match(p) {
			return clonePost(p), true, nil
		}
	}
	return domain.BlogPost{}, false, nil
}

func clonePost(p domain.BlogPost) domain.BlogPost {
	p.Tags = append([]string(nil), p.Tags...)
	return p
}

// KVStore is a map-backed key-value store, the server-side stand-in for
// browser local storage.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ ports.KeyValueStore = (*KVStore)(nil)

// NewKVStore returns an empty store.
func NewKVStore() *KVStore {
	return &KVStore{data: map[string][]byte{}}
}

// Get returns a copy of the stored value.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put overwrites the value at key.
func (s *KVStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key; missing keys are ignored.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
