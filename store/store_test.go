package store

import (
	"context"
	"errors"
	"testing"

	"paceflow/blog-gateway/models"
)

type fakeLister struct {
	posts []models.BlogPost
	err   error
}

func (f *fakeLister) ListPosts(context.Context) ([]models.BlogPost, error) {
	return f.posts, f.err
}

func TestRefreshReversesServiceOrder(t *testing.T) {
	lister := &fakeLister{posts: []models.BlogPost{
		{ID: "doc1"}, {ID: "doc2"}, {ID: "doc3"},
	}}
	s := NewDocumentStore(lister)

	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := s.List()
	want := []string{"doc3", "doc2", "doc1"}
	if len(got) != len(want) {
		t.Fatalf("got %d posts, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List()[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestRefreshOverwritesPreviousFetch(t *testing.T) {
	lister := &fakeLister{posts: []models.BlogPost{{ID: "old"}}}
	s := NewDocumentStore(lister)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	lister.posts = []models.BlogPost{{ID: "new-1"}, {ID: "new-2"}}
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := s.List()
	if len(got) != 2 || got[0].ID != "new-2" {
		t.Errorf("last fetch did not win: %+v", got)
	}
}

func TestFailedRefreshKeepsCache(t *testing.T) {
	lister := &fakeLister{posts: []models.BlogPost{{ID: "kept"}}}
	s := NewDocumentStore(lister)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	lister.err = errors.New("service down")
	if err := s.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}

	got := s.List()
	if len(got) != 1 || got[0].ID != "kept" {
		t.Errorf("failed refresh dropped cached posts: %+v", got)
	}
}

func TestAddPrepends(t *testing.T) {
	lister := &fakeLister{posts: []models.BlogPost{{ID: "older"}}}
	s := NewDocumentStore(lister)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	s.Add(models.BlogPost{ID: "fresh"})

	got := s.List()
	if len(got) != 2 || got[0].ID != "fresh" {
		t.Errorf("freshly generated post must come first: %+v", got)
	}
}

func TestGet(t *testing.T) {
	s := NewDocumentStore(&fakeLister{})
	s.Add(models.BlogPost{ID: "abc", Topic: "testing"})

	post, ok := s.Get("abc")
	if !ok || post.Topic != "testing" {
		t.Errorf("Get(abc) = %+v, %v", post, ok)
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("Get(missing) reported a hit")
	}
}
