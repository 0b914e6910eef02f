package httpfeed

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/toastkit/pkg/feed"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/theme"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Notifier is the dispatcher surface the HTTP transport consumes.
// *toast.Dispatcher satisfies it.
type Notifier interface {
	Add(message string, opts ...toast.Option) toast.Notification
	Remove(id string)
	Snapshot() toast.Snapshot
	Subscribe(ctx context.Context) *feed.Subscriber[toast.Snapshot]
}

type router struct {
	notifier   Notifier
	theme      theme.Theme
	renderOpts []toast.RenderOption
	logger     *slog.Logger
}

// RouterOption configures the HTTP routes.
type RouterOption func(*router)

// WithTheme exposes the given theme verbatim at GET /theme.
func WithTheme(t theme.Theme) RouterOption {
	return func(rt *router) { rt.theme = t }
}

// WithRenderOptions customizes the grouping applied to snapshot and stream
// responses, e.g. toast.WithStackLimit.
func WithRenderOptions(opts ...toast.RenderOption) RouterOption {
	return func(rt *router) { rt.renderOpts = append(rt.renderOpts, opts...) }
}

// WithLogger sets the logger for the routes.
func WithLogger(l *slog.Logger) RouterOption {
	return func(rt *router) {
		if l != nil {
			rt.logger = l
		}
	}
}

// Routes mounts the notification API:
//
//	POST   /notifications         create a notification
//	GET    /notifications         current render state
//	DELETE /notifications/{id}    dismiss (idempotent)
//	GET    /notifications/stream  SSE feed of render state changes
//	GET    /theme                 theme passthrough (when configured)
func Routes(n Notifier, opts ...RouterOption) http.Handler {
	rt := &router{
		notifier: n,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(rt)
	}

	r := chi.NewRouter()
	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", rt.create)
		r.Get("/", rt.renderState)
		r.Get("/stream", rt.stream)
		r.Delete("/{id}", rt.dismiss)
	})
	if rt.theme != nil {
		r.Get("/theme", rt.themePassthrough)
	}
	return r
}

// createRequest is the wire form of a notification. Durations travel as
// milliseconds; variant, type, and position are accepted as supplied and
// normalized at render time only.
type createRequest struct {
	Message    string `json:"message"`
	DurationMS int64  `json:"duration_ms,omitempty"`
	Variant    string `json:"variant,omitempty"`
	Type       string `json:"type,omitempty"`
	Position   string `json:"position,omitempty"`
}

type createResponse struct {
	toast.Notification
	DurationMS int64 `json:"duration_ms,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (rt *router) create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Message == "" {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "message is required"})
		return
	}

	var opts []toast.Option
	if req.DurationMS > 0 {
		opts = append(opts, toast.WithDuration(time.Duration(req.DurationMS)*time.Millisecond))
	}
	if req.Variant != "" {
		opts = append(opts, toast.WithVariant(toast.Variant(req.Variant)))
	}
	if req.Type != "" {
		opts = append(opts, toast.WithType(toast.Type(req.Type)))
	}
	if req.Position != "" {
		opts = append(opts, toast.WithPosition(toast.Position(req.Position)))
	}

	n := rt.notifier.Add(req.Message, opts...)
	writeJSON(w, http.StatusCreated, createResponse{
		Notification: n,
		DurationMS:   n.Duration.Milliseconds(),
	})
}

func (rt *router) dismiss(w http.ResponseWriter, r *http.Request) {
	// Dismissing an unknown id is a no-op, so the response is always 204.
	rt.notifier.Remove(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (rt *router) renderState(w http.ResponseWriter, r *http.Request) {
	snap := rt.notifier.Snapshot()
	writeJSON(w, http.StatusOK, toast.Render(snap.Active, rt.renderOpts...))
}

func (rt *router) themePassthrough(w http.ResponseWriter, r *http.Request) {
	payload, err := rt.theme.JSON()
	if err != nil {
		rt.logger.ErrorContext(r.Context(), "failed to serialize theme", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "theme serialization failed"})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
