// Package server exposes a synchronized viewport over HTTP.
//
// One viewport engine lives in the process; clients read and set the
// shared visible range through the JSON API and follow changes through a
// server-sent-events stream. Snapshot endpoints render the current view
// as SVG or PNG.
//
// # Endpoints
//
//   - GET  /healthz            liveness probe
//   - GET  /api/range          current visible range
//   - POST /api/range          set the visible range (broadcast to all engines)
//   - GET  /api/events         SSE stream of range changes
//   - GET  /api/sessions/{id}  fetch a saved session
//   - POST /api/sessions       save the current view as a session
//   - GET  /tracks.svg         SVG snapshot of the current view
//   - GET  /tracks.png         PNG snapshot of the current view
package server

import (
	"io"
	"net/http"
	"sync"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/elena-krismer/nightingale/pkg/cache"
	"github.com/elena-krismer/nightingale/pkg/session"
	"github.com/elena-krismer/nightingale/pkg/track"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

// Server holds the shared viewport state and its HTTP surface.
//
// The viewport engine is not goroutine-safe; every handler that touches
// it takes mu. The SSE subscriber set has its own lock so slow clients
// never block range updates.
type Server struct {
	mu        sync.Mutex
	engine    *viewport.Engine
	manager   *viewport.Manager
	accession string
	tracks    []track.Track

	sessions  session.Store
	snapshots cache.Cache
	keyer     cache.Keyer
	render    func(w io.Writer, format string) error
	logger    *charmlog.Logger

	subMu   sync.Mutex
	subs    map[int]chan viewport.RangeChange
	nextSub int
}

// Config configures a Server.
type Config struct {
	Accession      string
	SequenceLength int
	Width          float64
	MarginLeft     float64
	MarginRight    float64
	Tracks         []track.Track
	Sessions       session.Store // nil disables the session endpoints
	Snapshots      cache.Cache   // nil disables snapshot caching
	Logger         *charmlog.Logger
}

// New creates a Server with one registered engine.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = charmlog.Default()
	}
	if cfg.Snapshots == nil {
		cfg.Snapshots = cache.NewNullCache()
	}
	dims := viewport.Dimensions{
		Width:       cfg.Width,
		MarginLeft:  cfg.MarginLeft,
		MarginRight: cfg.MarginRight,
	}
	engine := viewport.New(dims, cfg.SequenceLength, viewport.WithLogger(cfg.Logger))
	manager := viewport.NewManager()
	manager.Register(engine)

	s := &Server{
		engine:    engine,
		manager:   manager,
		accession: cfg.Accession,
		tracks:    cfg.Tracks,
		sessions:  cfg.Sessions,
		snapshots: cfg.Snapshots,
		keyer:     cache.NewDefaultKeyer(),
		logger:    cfg.Logger,
		subs:      make(map[int]chan viewport.RangeChange),
	}
	s.render = s.renderView
	manager.OnRangeChange(s.fanOut)
	return s
}

// Handler builds the chi router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/range", s.handleGetRange)
		r.Post("/range", s.handleSetRange)
		r.Get("/events", s.handleEvents)
		if s.sessions != nil {
			r.Post("/sessions", s.handleCreateSession)
			r.Get("/sessions/{id}", s.handleGetSession)
		}
	})
	r.Get("/tracks.svg", s.handleSnapshotSVG)
	r.Get("/tracks.png", s.handleSnapshotPNG)
	return r
}

// fanOut delivers a range change to every SSE subscriber. Full channels
// are skipped; SSE clients resync from the next event.
func (s *Server) fanOut(rc viewport.RangeChange) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- rc:
		default:
		}
	}
}

func (s *Server) subscribe() (int, chan viewport.RangeChange) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan viewport.RangeChange, 8)
	s.subs[id] = ch
	return id, ch
}

func (s *Server) unsubscribe(id int) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	delete(s.subs, id)
}

// requestID tags every request with a short unique ID for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			"id", requestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"elapsed", time.Since(start).Round(time.Microsecond),
		)
	})
}
