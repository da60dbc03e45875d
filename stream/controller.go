package stream

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"paceflow/blog-gateway/internal/blogclient"
	"paceflow/blog-gateway/models"
)

// ErrEmptyTopic is returned by Start when the topic is empty after trimming.
// Validation happens before any network action.
var ErrEmptyTopic = errors.New("topic must not be empty")

// transportFailureReason is what users see for connection-level stream
// failures. Mirrors the retry prompt shown in the UI.
const transportFailureReason = "Streaming error. Try again."

// FeedOpener is the slice of the blog service client the controller needs.
// Decoupled as an interface so tests can drive the controller with a scripted
// feed.
type FeedOpener interface {
	OpenStream(ctx context.Context, topic string) (blogclient.Feed, error)
}

// Notifier receives a session snapshot after every observable change:
// each appended progress message and the single terminal transition.
type Notifier func(Snapshot)

// Controller owns the lifecycle of generation sessions. At most one session
// streams at a time; starting a new one cancels the previous session
// atomically, and a delayed event from a superseded session is discarded by a
// generation check before it can touch current state.
type Controller struct {
	client FeedOpener
	logger *logrus.Logger

	mu      sync.Mutex
	gen     uint64
	current *Session
	feed    blogclient.Feed
	cancel  context.CancelFunc

	notify Notifier
}

// NewController creates a Controller that opens feeds through client.
func NewController(client FeedOpener, logger *logrus.Logger) *Controller {
	return &Controller{client: client, logger: logger}
}

// SetNotifier registers the callback invoked with session snapshots. Must be
// called before the first Start.
func (c *Controller) SetNotifier(n Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notify = n
}

// Start begins a new generation session for topic. An empty or
// whitespace-only topic fails fast with ErrEmptyTopic and performs no network
// action. Any in-flight session is cancelled first; its remaining events are
// silently discarded. Connection-level failures do not return an error: the
// returned session is already Failed with a transport reason.
func (c *Controller) Start(topic string) (*Session, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	c.mu.Lock()
	c.cancelLocked()
	c.gen++
	gen := c.gen
	ctx, cancel := context.WithCancel(context.Background())
	sess := &Session{ID: uuid.NewString(), Topic: topic, state: StateStreaming}
	c.current = sess
	c.cancel = cancel
	c.feed = nil
	c.mu.Unlock()

	c.logger.WithFields(logrus.Fields{"session_id": sess.ID, "topic": topic}).Info("Starting generation session")

	feed, err := c.client.OpenStream(ctx, topic)
	if err != nil {
		c.logger.WithField("session_id", sess.ID).WithError(err).Error("Failed to open generation stream")
		c.transition(gen, sess, nil, FailureTransport, transportFailureReason)
		cancel()
		return sess, nil
	}

	c.mu.Lock()
	if c.gen != gen {
		// A newer Start won the race while we were connecting.
		c.mu.Unlock()
		feed.Close()
		cancel()
		return sess, nil
	}
	c.feed = feed
	c.mu.Unlock()

	go c.consume(gen, sess, feed)
	return sess, nil
}

// Cancel tears down the in-flight session, if any. Its feed connection is
// closed and no further events from it are observed.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.gen++
	c.current = nil
}

func (c *Controller) cancelLocked() {
	if c.feed != nil {
		c.feed.Close()
		c.feed = nil
	}
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

// Current returns a snapshot of the active session, or an Idle snapshot when
// none has been started.
func (c *Controller) Current() Snapshot {
	c.mu.Lock()
	sess := c.current
	c.mu.Unlock()
	if sess == nil {
		return Snapshot{State: StateIdle, Progress: []string{}}
	}
	return sess.Snapshot()
}

// consume drains one feed until its frame channel closes. Every entry point
// re-checks the session generation so a superseded session can never mutate
// observable state, even if a frame was already in flight when it was
// cancelled.
func (c *Controller) consume(gen uint64, sess *Session, feed blogclient.Feed) {
	terminal := false
	for frame := range feed.Frames() {
		if terminal {
			continue
		}
		switch {
		case frame.Post != nil:
			// The connection is released before the completed state
			// becomes observable.
			feed.Close()
			terminal = c.transition(gen, sess, frame.Post, "", "")
		case frame.Err != nil:
			feed.Close()
			kind := FailureTransport
			reason := transportFailureReason
			var payloadErr *blogclient.PayloadError
			if errors.As(frame.Err, &payloadErr) {
				kind = FailurePayload
				reason = "The service returned an unreadable article. Try again."
			}
			c.logger.WithField("session_id", sess.ID).WithError(frame.Err).Error("Generation stream failed")
			terminal = c.transition(gen, sess, nil, kind, reason)
		default:
			c.observeProgress(gen, sess, frame.Progress)
		}
	}
	feed.Close()
	if !terminal {
		// Stream ended without a terminal frame: connection-level failure,
		// unless this session was superseded in the meantime.
		c.transition(gen, sess, nil, FailureTransport, transportFailureReason)
	}
}

func (c *Controller) observeProgress(gen uint64, sess *Session, msg string) {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return
	}
	sess.appendProgress(msg)
	c.mu.Unlock()

	c.notifyIfCurrent(gen, sess)
}

// notifyIfCurrent delivers sess's snapshot to the notifier, unless the
// session was superseded after its event was accepted. Without the re-check a
// snapshot of an already-replaced session could still reach WebSocket clients
// after a newer Start returned.
func (c *Controller) notifyIfCurrent(gen uint64, sess *Session) {
	c.mu.Lock()
	notify := c.notify
	current := c.gen == gen
	c.mu.Unlock()

	if current && notify != nil {
		notify(sess.Snapshot())
	}
}

// transition moves sess into its terminal state, guarded by the generation
// check. post non-nil means Completed; otherwise Failed with kind and reason.
// Returns whether the transition happened.
func (c *Controller) transition(gen uint64, sess *Session, post *models.BlogPost, kind FailureKind, reason string) bool {
	c.mu.Lock()
	if c.gen != gen {
		c.mu.Unlock()
		return false
	}
	var ok bool
	if post != nil {
		ok = sess.complete(post)
	} else {
		ok = sess.fail(kind, reason)
	}
	c.feed = nil
	c.mu.Unlock()

	if ok {
		if post != nil {
			c.logger.WithFields(logrus.Fields{"session_id": sess.ID, "post_id": post.ID}).Info("Generation session completed")
		}
		c.notifyIfCurrent(gen, sess)
	}
	return ok
}
