package focalcrop

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const Version = "0.1.0"

// Metrics receives engine-level counters
type Metrics interface {
	SessionCreated()
	DragApplied(pinned bool)
}

// App focal point crop preview HTTP handler.
// It owns the session registry; the crop geometry itself is pure and
// stateless, see ApplyDrag and WindowLeft.
type App struct {
	Layout                Layout
	SessionTTL            time.Duration
	SweepInterval         time.Duration
	DragConcurrency       int64
	DisableLayoutEndpoint bool
	Metrics               Metrics
	Logger                *zap.Logger
	Debug                 bool

	sema     *semaphore.Weighted
	mu       sync.RWMutex
	sessions map[string]*Session
	done     chan struct{}
}

// New create new App
func New(options ...Option) *App {
	app := &App{
		Layout:        DefaultLayout(),
		SessionTTL:    time.Hour,
		SweepInterval: time.Minute,
		Logger:        zap.NewNop(),
		sessions:      map[string]*Session{},
	}
	for _, option := range options {
		option(app)
	}
	if app.DragConcurrency > 0 {
		app.sema = semaphore.NewWeighted(app.DragConcurrency)
	}
	if app.Debug {
		app.debugLog()
	}
	return app
}

// Startup App startup lifecycle, begins the expired session sweep
func (app *App) Startup(_ context.Context) error {
	if app.SessionTTL > 0 && app.done == nil {
		app.done = make(chan struct{})
		go app.sweep(app.done)
	}
	return nil
}

// Shutdown App shutdown lifecycle
func (app *App) Shutdown(_ context.Context) error {
	if app.done != nil {
		close(app.done)
		app.done = nil
	}
	return nil
}

func (app *App) sweep(done chan struct{}) {
	ticker := time.NewTicker(app.SweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			if n := app.removeExpired(now); n > 0 && app.Debug {
				app.Logger.Debug("sessions-expired", zap.Int("count", n))
			}
		}
	}
}

func (app *App) removeExpired(now time.Time) (count int) {
	app.mu.Lock()
	defer app.mu.Unlock()
	for id, session := range app.sessions {
		if session.expired(now, app.SessionTTL) {
			delete(app.sessions, id)
			count++
		}
	}
	return
}

// Session returns the session by id or nil
func (app *App) Session(id string) *Session {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.sessions[id]
}

// CreateSession registers a new session with the focal point at container center
func (app *App) CreateSession() *Session {
	session := NewSession(app.Layout)
	app.mu.Lock()
	app.sessions[session.ID] = session
	app.mu.Unlock()
	if app.Metrics != nil {
		app.Metrics.SessionCreated()
	}
	return session
}

// DeleteSession drops the session by id, reports whether it existed
func (app *App) DeleteSession(id string) bool {
	app.mu.Lock()
	defer app.mu.Unlock()
	if _, ok := app.sessions[id]; !ok {
		return false
	}
	delete(app.sessions, id)
	return true
}

// SessionState session snapshot returned by the HTTP endpoints
type SessionState struct {
	ID string `json:"id"`
	CropState
}

// ServeHTTP implements http.Handler for App operations
func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.EscapedPath()
	if path == "/" || path == "" {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeError(w, ErrMethodNotAllowed)
			return
		}
		resJSON(w, json.RawMessage(fmt.Sprintf(
			`{"focalcrop":{"version":"%s"}}`, Version,
		)))
		return
	}
	if path == "/layout" {
		if r.Method != http.MethodGet {
			writeError(w, ErrMethodNotAllowed)
			return
		}
		if !app.DisableLayoutEndpoint {
			resJSONIndent(w, app.Layout)
		}
		return
	}
	if path == "/sessions" {
		if r.Method != http.MethodPost {
			writeError(w, ErrMethodNotAllowed)
			return
		}
		session := app.CreateSession()
		if app.Debug {
			app.Logger.Debug("session-created", zap.String("session", session.ID))
		}
		resJSON(w, SessionState{ID: session.ID, CropState: session.State()})
		return
	}
	if id, rest, ok := splitSessionPath(path); ok {
		switch rest {
		case "":
			switch r.Method {
			case http.MethodGet, http.MethodHead:
				app.handleState(w, r, id)
			case http.MethodDelete:
				app.handleDelete(w, r, id)
			default:
				writeError(w, ErrMethodNotAllowed)
			}
		case "drag":
			if r.Method != http.MethodPost {
				writeError(w, ErrMethodNotAllowed)
				return
			}
			app.handleDrag(w, r, id)
		default:
			writeError(w, ErrNotFound)
		}
		return
	}
	writeError(w, ErrNotFound)
}

func (app *App) handleState(w http.ResponseWriter, _ *http.Request, id string) {
	session := app.Session(id)
	if session == nil {
		writeError(w, ErrNotFound)
		return
	}
	resJSON(w, SessionState{ID: session.ID, CropState: session.State()})
}

func (app *App) handleDelete(w http.ResponseWriter, _ *http.Request, id string) {
	if !app.DeleteSession(id) {
		writeError(w, ErrNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (app *App) handleDrag(w http.ResponseWriter, r *http.Request, id string) {
	if app.sema != nil {
		if err := app.sema.Acquire(r.Context(), 1); err != nil {
			writeError(w, ErrTooManyRequests)
			return
		}
		defer app.sema.Release(1)
	}
	session := app.Session(id)
	if session == nil {
		writeError(w, ErrNotFound)
		return
	}
	var delta DragDelta
	if err := json.NewDecoder(r.Body).Decode(&delta); err != nil {
		writeError(w, ErrInvalid)
		return
	}
	state := session.Drag(delta)
	if app.Metrics != nil {
		app.Metrics.DragApplied(TabletPinned(state.FocalPoint, app.Layout))
	}
	if app.Debug {
		app.Logger.Debug("drag",
			zap.String("session", id),
			zap.Float64("dx", delta.DX),
			zap.Float64("dy", delta.DY),
			zap.Float64("x", state.FocalPoint.X),
			zap.Float64("y", state.FocalPoint.Y),
		)
	}
	resJSON(w, SessionState{ID: session.ID, CropState: state})
}

// splitSessionPath extracts the session id and trailing segment
// from /sessions/{id} or /sessions/{id}/{rest}
func splitSessionPath(path string) (id, rest string, ok bool) {
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(segs) < 2 || segs[0] != "sessions" || segs[1] == "" {
		return
	}
	id = segs[1]
	rest = strings.Join(segs[2:], "/")
	ok = true
	return
}

func (app *App) debugLog() {
	if app.Logger == nil {
		return
	}
	app.Logger.Debug("focalcrop",
		zap.String("version", Version),
		zap.Float64("container_width", app.Layout.ContainerWidth),
		zap.Float64("container_height", app.Layout.ContainerHeight),
		zap.Float64("mobile_width", app.Layout.MobileWidth),
		zap.Float64("tablet_width", app.Layout.TabletWidth),
		zap.Duration("session_ttl", app.SessionTTL),
		zap.Duration("sweep_interval", app.SweepInterval),
		zap.Int64("drag_concurrency", app.DragConcurrency),
	)
}

func writeError(w http.ResponseWriter, err error) {
	e := WrapError(err)
	buf, _ := json.Marshal(e)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	w.WriteHeader(e.Code)
	_, _ = w.Write(buf)
}

func resJSON(w http.ResponseWriter, v interface{}) {
	buf, _ := json.Marshal(v)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	_, _ = w.Write(buf)
}

func resJSONIndent(w http.ResponseWriter, v interface{}) {
	buf, _ := json.MarshalIndent(v, "", "  ")
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(buf)))
	_, _ = w.Write(buf)
}
