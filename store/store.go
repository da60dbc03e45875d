package store

import (
	"context"
	"sync"

	"paceflow/blog-gateway/models"
)

// Lister is the slice of the blog service client the store needs.
type Lister interface {
	ListPosts(ctx context.Context) ([]models.BlogPost, error)
}

// DocumentStore caches the blog service's article listing. It is a simple
// overwrite-on-fetch cache: each successful refresh replaces the whole
// collection (last fetch wins), and a failed refresh keeps the previously
// cached articles intact.
type DocumentStore struct {
	client Lister

	mu    sync.RWMutex
	posts []models.BlogPost
}

// NewDocumentStore creates an empty store backed by client.
func NewDocumentStore(client Lister) *DocumentStore {
	return &DocumentStore{client: client}
}

// Refresh fetches the listing from the blog service and replaces the cache.
// The service returns articles oldest-first; they are stored most-recent-first
// as consumers display them. This reversal is part of the listing contract,
// not an assumption about the service.
func (s *DocumentStore) Refresh(ctx context.Context) error {
	posts, err := s.client.ListPosts(ctx)
	if err != nil {
		return err
	}

	reversed := make([]models.BlogPost, len(posts))
	for i, p := range posts {
		reversed[len(posts)-1-i] = p
	}

	s.mu.Lock()
	s.posts = reversed
	s.mu.Unlock()
	return nil
}

// Add inserts a freshly generated article at the front of the cache.
func (s *DocumentStore) Add(post models.BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]models.BlogPost{post}, s.posts...)
}

// List returns the cached articles, most recent first.
func (s *DocumentStore) List() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BlogPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// Get returns the cached article with the given id.
func (s *DocumentStore) Get(id string) (models.BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.BlogPost{}, false
}
