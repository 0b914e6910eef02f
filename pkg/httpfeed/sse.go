package httpfeed

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// stream serves the render-state feed over Server-Sent Events. One `render`
// event is emitted per active-set change, carrying the grouped render state
// as JSON; the current state is emitted immediately on connect. The
// connection lives until the client disconnects.
func (rt *router) stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "streaming unsupported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ctx := r.Context()
	sub := rt.notifier.Subscribe(ctx)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case snap, open := <-sub.Receive():
			if !open {
				return
			}
			if err := writeEvent(w, "render", toast.Render(snap.Active, rt.renderOpts...)); err != nil {
				rt.logger.ErrorContext(ctx, "failed to write SSE event", logger.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	return err
}
