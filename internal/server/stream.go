package server

import (
	"fmt"
	"net/http"
	"strings"
)

// Event is one server-sent event. An empty Name uses the default
// "message" event, which is what the htmx SSE extension listens for.
type Event struct {
	Name string
	Data string
}

// Stream drains events into w as an SSE response until the channel closes
// or the client disconnects. Producers own the channel: they push rendered
// fragments into a bounded channel and close it when the sequence ends
// (single completion event) or never close it (periodic cadence), relying
// on the request context for teardown.
func Stream(w http.ResponseWriter, r *http.Request, events <-chan Event) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return fmt.Errorf("response writer does not support flushing")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case event, open := <-events:
			if !open {
				return nil
			}
			if err := writeEvent(w, event); err != nil {
				return err
			}
			flusher.Flush()
		case <-r.Context().Done():
			// Client went away; the producer notices the same context.
			return nil
		}
	}
}

// writeEvent frames a single event. Multi-line payloads (rendered HTML
// fragments) become one data: line each, per the SSE wire format.
func writeEvent(w http.ResponseWriter, event Event) error {
	if event.Name != "" {
		if _, err := fmt.Fprintf(w, "event: %s\n", event.Name); err != nil {
			return fmt.Errorf("failed to write event name: %w", err)
		}
	}
	for _, line := range strings.Split(event.Data, "\n") {
		if _, err := fmt.Fprintf(w, "data: %s\n", line); err != nil {
			return fmt.Errorf("failed to write event data: %w", err)
		}
	}
	if _, err := fmt.Fprint(w, "\n"); err != nil {
		return fmt.Errorf("failed to terminate event: %w", err)
	}
	return nil
}
