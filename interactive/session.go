package interactive

import (
	"context"
	"time"

	"github.com/kattlog/kattlog"
)

// Session carries the interactive classifier's per-page state: the
// current mode, the last highlighted candidate, and the outbound bus.
// The state is explicit rather than ambient so a session is fully
// inspectable and independent of any other page.
//
// Pointer handlers are synchronous and cheap; they must complete within
// one event-loop turn.
type Session struct {
	PageURL  string
	Scorer   *Scorer
	Resolver *CaptureResolver
	Bus      Bus

	mode      kattlog.Mode
	highlight *ScoredElement
}

// NewSession creates a Session for a page. A session starts in navigate
// mode; the hosting frame switches it with a SET_MODE message.
func NewSession(pageURL string, layout Layout, bus Bus) *Session {
	return &Session{
		PageURL:  pageURL,
		Scorer:   NewScorer(layout),
		Resolver: NewCaptureResolver(layout),
		Bus:      bus,
		mode:     kattlog.ModeNavigate,
	}
}

// Mode returns the current operating mode.
func (s *Session) Mode() kattlog.Mode { return s.mode }

// Highlight returns the currently highlighted candidate, or nil when
// the overlay is hidden.
func (s *Session) Highlight() *ScoredElement { return s.highlight }

// HandleMessage processes an inbound message from the hosting frame.
// Foreign variants are ignored.
func (s *Session) HandleMessage(msg Message) {
	if m, ok := msg.(SetMode); ok {
		s.mode = m.Mode
		s.highlight = nil
	}
}

// Announce sends a READY heartbeat. Called on startup, on every
// mousedown, and periodically by Heartbeat; a duplicate announcement
// simply re-syncs mode state with the hosting frame.
func (s *Session) Announce() {
	s.Bus.Send(Ready{URL: s.PageURL})
}

// Heartbeat re-announces readiness every kattlog.HeartbeatInterval until
// the context is canceled. This guards against a lost initial handshake;
// it is a resilience measure, not a correctness requirement.
func (s *Session) Heartbeat(ctx context.Context) {
	ticker := time.NewTicker(kattlog.HeartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Announce()
		}
	}
}

// PointerMove scores the hovered element's ancestor chain and updates the
// highlight. Returns the new highlight, or nil when the overlay should be
// hidden. In navigate mode pointer events pass through untouched.
func (s *Session) PointerMove(el *Element) *ScoredElement {
	if s.mode != kattlog.ModeCapture || el == nil {
		s.highlight = nil
		return nil
	}
	s.highlight = s.Scorer.BestAncestor(el)
	return s.highlight
}

// PointerLeave clears the highlight. There is no cancellation concept
// beyond this.
func (s *Session) PointerLeave() {
	s.highlight = nil
}

// PointerDown re-announces readiness before a potential click, guarding
// against a hosting frame that missed the handshake.
func (s *Session) PointerDown() {
	s.Announce()
}

// Click confirms the selection under the pointer. The cached highlight is
// used when available; otherwise the ancestor walk is redone from the
// clicked element. Emits one Capture on the bus and returns the record,
// or nil when nothing qualifies.
func (s *Session) Click(el *Element) *kattlog.InteractiveCapture {
	if s.mode != kattlog.ModeCapture {
		return nil
	}

	target := s.highlight
	if target == nil {
		target = s.Scorer.BestAncestor(el)
	}
	if target == nil {
		return nil
	}

	capture := s.Resolver.Resolve(target.Element, s.PageURL)
	s.Bus.Send(Capture{InteractiveCapture: *capture})
	s.highlight = nil
	return capture
}
