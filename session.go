package focalcrop

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// Session holds the single piece of mutable state, the focal point,
// for one editing session. X and Y always update together under the
// lock so a reader never observes a half-applied drag, and concurrent
// drags serialize in arrival order.
type Session struct {
	ID string

	mu      sync.Mutex
	layout  Layout
	focal   FocalPoint
	touched time.Time
}

// NewSession creates a session with the focal point at the container center
func NewSession(layout Layout) *Session {
	return &Session{
		ID:      newSessionID(),
		layout:  layout,
		focal:   CenterFocal(layout),
		touched: time.Now(),
	}
}

// Drag applies one drag delta and returns the resulting crop state
func (s *Session) Drag(d DragDelta) CropState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focal = ApplyDrag(s.focal, d, s.layout)
	s.touched = time.Now()
	return Project(s.focal, s.layout)
}

// State returns the current crop state
func (s *Session) State() CropState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.focal, s.layout)
}

// Pinned reports whether the tablet window is currently boundary-pinned
func (s *Session) Pinned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TabletPinned(s.focal, s.layout)
}

func (s *Session) expired(now time.Time, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.touched) > ttl
}

func newSessionID() string {
	buf := make([]byte, 12)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
