package stream

import (
	"sync"

	"paceflow/blog-gateway/models"
)

// State is the lifecycle state of one generation session.
type State string

const (
	StateIdle      State = "idle"
	StateStreaming State = "streaming"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// FailureKind classifies why a session failed. All kinds are terminal and
// none is retried automatically; retry is a fresh Start call.
type FailureKind string

const (
	FailureValidation FailureKind = "validation"
	FailureTransport  FailureKind = "transport"
	FailurePayload    FailureKind = "payload"
)

// expectedSteps is the assumed number of generation pipeline steps, used only
// for the cosmetic completion ratio. The generation service makes no contract
// on step count, so the ratio is an approximation and nothing more.
const expectedSteps = 10

// Session is one generation run from submission to completion, failure, or
// cancellation. It transitions into a terminal state at most once; progress
// messages accumulate in arrival order and are never reordered or
// deduplicated.
type Session struct {
	ID    string
	Topic string

	mu       sync.Mutex
	state    State
	progress []string
	post     *models.BlogPost
	failure  FailureKind
	reason   string
}

// Snapshot is a read-only copy of a session's observable state, safe to hand
// to handlers and WebSocket clients.
type Snapshot struct {
	SessionID string           `json:"session_id"`
	Topic     string           `json:"topic"`
	State     State            `json:"state"`
	Progress  []string         `json:"progress"`
	Ratio     float64          `json:"ratio"`
	Failure   FailureKind      `json:"failure,omitempty"`
	Reason    string           `json:"reason,omitempty"`
	Post      *models.BlogPost `json:"post,omitempty"`
}

func (s *Session) appendProgress(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateStreaming {
		return
	}
	s.progress = append(s.progress, msg)
}

// complete records the final article. Returns false if the session already
// reached a terminal state.
func (s *Session) complete(post *models.BlogPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateStreaming {
		return false
	}
	s.state = StateCompleted
	s.post = post
	return true
}

// fail records a terminal failure. Returns false if the session already
// reached a terminal state.
func (s *Session) fail(kind FailureKind, reason string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateStreaming {
		return false
	}
	s.state = StateFailed
	s.failure = kind
	s.reason = reason
	return true
}

// Snapshot returns a copy of the session's current observable state. The
// Ratio field is len(progress)/expectedSteps capped at 1 and is cosmetic
// only.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	progress := make([]string, len(s.progress))
	copy(progress, s.progress)

	ratio := float64(len(progress)) / expectedSteps
	if ratio > 1 {
		ratio = 1
	}

	return Snapshot{
		SessionID: s.ID,
		Topic:     s.Topic,
		State:     s.state,
		Progress:  progress,
		Ratio:     ratio,
		Failure:   s.failure,
		Reason:    s.reason,
		Post:      s.post,
	}
}

// State returns the session's current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Post returns the final article, or nil unless the session completed.
func (s *Session) Post() *models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.post
}
