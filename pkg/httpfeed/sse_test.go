package httpfeed_test

import (
	"bufio"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// readSSE decodes `render` events off an open SSE response into a channel.
// The goroutine exits when the response body is closed.
func readSSE(t *testing.T, resp *http.Response) <-chan toast.RenderState {
	t.Helper()

	events := make(chan toast.RenderState, 16)
	go func() {
		defer close(events)
		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data: ") {
				continue
			}
			var state toast.RenderState
			if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &state); err != nil {
				t.Errorf("malformed SSE payload: %v", err)
				return
			}
			events <- state
		}
	}()
	return events
}
