package blogclient

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"paceflow/blog-gateway/models"
)

// donePrefix marks the single terminal event of a generation stream. The
// remainder of the event is the final article as JSON, with no separator.
const donePrefix = "DONE::"

// PayloadError wraps a terminal event whose JSON payload could not be decoded.
// It is fatal to the session, distinct from a transport-level failure.
type PayloadError struct {
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("undecodable terminal payload: %v", e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// Frame is one decoded event from a generation stream. Exactly one field is
// set: Progress for an ongoing step message, Post when the terminal event
// decoded successfully, Err when it did not. Consumers never see the raw
// DONE:: sentinel.
type Frame struct {
	Progress string
	Post     *models.BlogPost
	Err      error
}

// Terminal reports whether this frame ends the stream.
func (f Frame) Terminal() bool {
	return f.Post != nil || f.Err != nil
}

// Feed is one open generation stream. Frames arrive on Frames() in delivery
// order; the channel is closed when the stream ends or the feed is closed.
// Close is idempotent.
type Feed interface {
	Frames() <-chan Frame
	Close() error
}

type sseFeed struct {
	body      io.Closer
	frames    chan Frame
	closeOnce sync.Once
}

func (f *sseFeed) Frames() <-chan Frame { return f.frames }

func (f *sseFeed) Close() error {
	f.closeOnce.Do(func() {
		// Closing the body unblocks the reader goroutine.
		f.body.Close()
	})
	return nil
}

// OpenStream starts one generation run for topic and returns its event feed.
// The caller owns the feed and must Close it on completion, failure, or
// cancellation.
func (c *Client) OpenStream(ctx context.Context, topic string) (Feed, error) {
	streamURL := fmt.Sprintf("%s/generate-blog-stream?topic=%s", c.baseURL, url.QueryEscape(topic))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, streamURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.streamHTTP.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("blog service returned status %d for generation stream", resp.StatusCode)
	}

	feed := &sseFeed{
		body:   resp.Body,
		frames: make(chan Frame),
	}
	go feed.read(resp.Body)
	return feed, nil
}

// read parses the server-sent-event wire format: "data:" lines accumulate
// until a blank line dispatches the event. Reading stops after the terminal
// event; anything the server sends afterwards is never observed.
func (f *sseFeed) read(body io.Reader) {
	defer close(f.frames)

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var data []string
	dispatch := func() bool {
		if len(data) == 0 {
			return false
		}
		frame := decodeFrame(strings.Join(data, "\n"))
		data = nil
		f.frames <- frame
		return frame.Terminal()
	}

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			if dispatch() {
				return
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue // SSE comment / keep-alive
		}
		if value, ok := strings.CutPrefix(line, "data:"); ok {
			data = append(data, strings.TrimPrefix(value, " "))
		}
		// Other SSE fields (event:, id:, retry:) are ignored.
	}
	// Flush a final event that was not followed by a blank line.
	dispatch()
}

// decodeFrame classifies one raw event at the transport boundary so the rest
// of the system never inspects strings for the sentinel prefix.
func decodeFrame(data string) Frame {
	payload, ok := strings.CutPrefix(data, donePrefix)
	if !ok {
		return Frame{Progress: data}
	}

	var post models.BlogPost
	if err := json.Unmarshal([]byte(payload), &post); err != nil {
		return Frame{Err: &PayloadError{Err: err}}
	}
	return Frame{Post: &post}
}
