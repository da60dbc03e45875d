package blogclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"paceflow/blog-gateway/models"
)

func TestDecodeFrame(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		progress string
		postID   string
		payload  bool
	}{
		{"progress", "Researching the topic...", "Researching the topic...", "", false},
		{"progress mentioning done", "Almost DONE:: with research", "Almost DONE:: with research", "", false},
		{"terminal", `DONE::{"id":"abc","topic":"go","final_post":"# Hi"}`, "", "abc", false},
		{"malformed terminal", "DONE::not-json", "", "", true},
		{"empty terminal", "DONE::", "", "", true},
	}

	for _, tt := range tests {
		frame := decodeFrame(tt.data)

		if tt.payload {
			var payloadErr *PayloadError
			if frame.Err == nil || !errors.As(frame.Err, &payloadErr) {
				t.Errorf("%s: expected PayloadError, got %v", tt.name, frame.Err)
			}
			if frame.Post != nil {
				t.Errorf("%s: no document may be produced from a bad payload", tt.name)
			}
			continue
		}
		if tt.postID != "" {
			if frame.Post == nil || frame.Post.ID != tt.postID {
				t.Errorf("%s: expected post %q, got %+v", tt.name, tt.postID, frame.Post)
			}
			if !frame.Terminal() {
				t.Errorf("%s: terminal frame not marked terminal", tt.name)
			}
			continue
		}
		if frame.Progress != tt.progress || frame.Terminal() {
			t.Errorf("%s: expected progress %q, got %+v", tt.name, tt.progress, frame)
		}
	}
}

func TestOpenStreamDeliversFramesInOrder(t *testing.T) {
	post := models.BlogPost{ID: "post-1", Topic: "testing in go", FinalPost: "# Title\nbody"}
	payload, _ := json.Marshal(post)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-blog-stream" {
			http.NotFound(w, r)
			return
		}
		if got := r.URL.Query().Get("topic"); got != "testing in go" {
			t.Errorf("topic query = %q", got)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprintf(w, "data: step one\n\n")
		fmt.Fprintf(w, "data: step two\n\n")
		fmt.Fprintf(w, "data: DONE::%s\n\n", payload)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	feed, err := client.OpenStream(context.Background(), "testing in go")
	if err != nil {
		t.Fatal(err)
	}
	defer feed.Close()

	var progress []string
	var final *models.BlogPost
	for frame := range feed.Frames() {
		switch {
		case frame.Post != nil:
			final = frame.Post
		case frame.Err != nil:
			t.Fatalf("unexpected frame error: %v", frame.Err)
		default:
			progress = append(progress, frame.Progress)
		}
	}

	if len(progress) != 2 || progress[0] != "step one" || progress[1] != "step two" {
		t.Errorf("progress = %v, want the two steps in order", progress)
	}
	if final == nil || final.ID != "post-1" {
		t.Fatalf("final post = %+v", final)
	}
	if final.FinalPost != "# Title\nbody" {
		t.Errorf("final_post content = %q", final.FinalPost)
	}
}

func TestOpenStreamMalformedTerminal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: working\n\n")
		fmt.Fprint(w, "data: DONE::not-json\n\n")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	feed, err := client.OpenStream(context.Background(), "broken")
	if err != nil {
		t.Fatal(err)
	}
	defer feed.Close()

	var last Frame
	for frame := range feed.Frames() {
		last = frame
	}

	var payloadErr *PayloadError
	if last.Err == nil || !errors.As(last.Err, &payloadErr) {
		t.Fatalf("expected PayloadError terminal frame, got %+v", last)
	}
}

func TestOpenStreamNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.OpenStream(context.Background(), "whatever"); err == nil {
		t.Fatal("expected error for non-200 stream response")
	}
}

func TestFeedCloseIsIdempotent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: step\n\n")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	feed, err := client.OpenStream(context.Background(), "topic")
	if err != nil {
		t.Fatal(err)
	}

	if err := feed.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := feed.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}

func TestListPosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/blogs" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `[{"id":"a","topic":"first"},{"id":"b","topic":"second"}]`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	posts, err := client.ListPosts(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 2 || posts[0].ID != "a" || posts[1].ID != "b" {
		t.Errorf("posts = %+v, want service order preserved", posts)
	}
}

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding summarize request: %v", err)
		}
		if req.Style != "linkedin" {
			t.Errorf("style = %q, want linkedin", req.Style)
		}
		fmt.Fprint(w, `{"summary":"a crisp summary"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	summary, err := client.Summarize(context.Background(), "article text", "linkedin")
	if err != nil {
		t.Fatal(err)
	}
	if summary != "a crisp summary" {
		t.Errorf("summary = %q", summary)
	}
}

func TestSummarizeMissingField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Summarize(context.Background(), "text", "linkedin"); !errors.Is(err, ErrMissingSummary) {
		t.Fatalf("expected ErrMissingSummary, got %v", err)
	}
}
