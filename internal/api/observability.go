package api

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single remote-store call.
type CallEvent struct {
	Op        string
	Method    string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about remote calls for logging and diagnostics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer, one line per call.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] api_call op=%s method=%s latency_ms=%d status=%s\n",
		ts, event.Op, event.Method, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
