package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elena-krismer/nightingale/pkg/cache"
	"github.com/elena-krismer/nightingale/pkg/errors"
	"github.com/elena-krismer/nightingale/pkg/render/raster"
	"github.com/elena-krismer/nightingale/pkg/render/svg"
	"github.com/elena-krismer/nightingale/pkg/session"
	"github.com/elena-krismer/nightingale/pkg/viewport"
)

// snapshotTTL bounds how long a rendered snapshot stays cached. Keys
// change whenever the view changes, so this only limits stale-key growth.
const snapshotTTL = 10 * time.Minute

type rangePayload struct {
	DisplayStart float64 `json:"display_start"`
	DisplayEnd   float64 `json:"display_end"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetRange(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	v := s.engine.VisibleRange()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, rangePayload{DisplayStart: v.Start, DisplayEnd: v.End})
}

func (s *Server) handleSetRange(w http.ResponseWriter, r *http.Request) {
	var p rangePayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidInput, "malformed JSON body"))
		return
	}

	s.mu.Lock()
	err := s.manager.SetRange(p.DisplayStart, p.DisplayEnd)
	v := s.engine.VisibleRange()
	s.mu.Unlock()

	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	// Out-of-bounds input is clamped, so report the range actually applied.
	writeJSON(w, http.StatusOK, rangePayload{DisplayStart: v.Start, DisplayEnd: v.End})
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError,
			errors.New(errors.ErrCodeInternal, "streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	id, ch := s.subscribe()
	defer s.unsubscribe(id)

	// Send the current range immediately so late joiners sync up.
	s.mu.Lock()
	v := s.engine.VisibleRange()
	s.mu.Unlock()
	writeEvent(w, viewport.RangeChange{DisplayStart: v.Start, DisplayEnd: v.End})
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case rc := <-ch:
			writeEvent(w, rc)
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, rc viewport.RangeChange) {
	data, _ := json.Marshal(rangePayload{DisplayStart: rc.DisplayStart, DisplayEnd: rc.DisplayEnd})
	fmt.Fprintf(w, "event: range\ndata: %s\n\n", data)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	v := s.engine.VisibleRange()
	s.mu.Unlock()

	sess := session.New(s.accession, session.DefaultTTL)
	sess.DisplayStart, sess.DisplayEnd = v.Start, v.End
	for _, t := range s.tracks {
		sess.Tracks = append(sess.Tracks, t.Name())
	}

	if err := s.sessions.Set(r.Context(), sess); err != nil {
		s.logger.Error("save session", "err", err)
		writeError(w, http.StatusInternalServerError,
			errors.New(errors.ErrCodeInternal, "could not save session"))
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.Get(r.Context(), id)
	if err != nil {
		s.logger.Error("load session", "err", err)
		writeError(w, http.StatusInternalServerError,
			errors.New(errors.ErrCodeInternal, "could not load session"))
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound,
			errors.New(errors.ErrCodeSessionNotFound, "session "+id+" not found"))
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleSnapshotSVG(w http.ResponseWriter, r *http.Request) {
	s.serveSnapshot(w, r, "svg", "image/svg+xml")
}

func (s *Server) handleSnapshotPNG(w http.ResponseWriter, r *http.Request) {
	s.serveSnapshot(w, r, "png", "image/png")
}

// serveSnapshot renders the current view in the given format. Rendered
// bytes are cached keyed by the visible range, dimensions, and track set,
// so repeated requests for an unchanged view skip the renderer.
func (s *Server) serveSnapshot(w http.ResponseWriter, r *http.Request, format, contentType string) {
	s.mu.Lock()
	v := s.engine.VisibleRange()
	dims := s.engine.Dimensions()
	s.mu.Unlock()

	names := make([]string, 0, len(s.tracks))
	for _, t := range s.tracks {
		names = append(names, t.Name())
	}
	key := s.keyer.SnapshotKey(s.accession, cache.SnapshotKeyOpts{
		Start:  v.Start,
		End:    v.End,
		Width:  int(dims.Width),
		Height: int(dims.Height),
		Format: format,
		Tracks: names,
	})

	if data, hit, err := s.snapshots.Get(r.Context(), key); err == nil && hit {
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(data)
		return
	}

	var buf bytes.Buffer
	if err := s.render(&buf, format); err != nil {
		s.logger.Error("render snapshot", "format", format, "err", err)
		writeError(w, http.StatusInternalServerError,
			errors.New(errors.ErrCodeInternal, "could not render snapshot"))
		return
	}

	if err := s.snapshots.Set(r.Context(), key, buf.Bytes(), snapshotTTL); err != nil {
		s.logger.Debug("cache snapshot", "err", err)
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(buf.Bytes())
}

// renderView draws the current view in the given format. It takes mu for
// the duration of the draw, so callers must not hold it.
func (s *Server) renderView(w io.Writer, format string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	width := s.engine.Dimensions().Width
	if format == "png" {
		return raster.Render(w, s.engine, s.tracks, width)
	}
	return svg.Render(w, s.engine, s.tracks, width)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorPayload{Code: string(errors.GetCode(err)), Message: errors.UserMessage(err)})
}

// =============================================================================
// Request ID context plumbing
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// ListenAndServe runs the server until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
