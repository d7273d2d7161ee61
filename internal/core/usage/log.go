package usage

import (
	"sync"
	"time"
)

// Entry records one gated exchange for the admin activity view.
type Entry struct {
	Key       string                 `json:"key"`
	Endpoint  string                 `json:"endpoint"`
	Timestamp string                 `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}

// Log is a bounded in-memory activity buffer. It is owned by the service
// instance and injected where needed; state does not survive a restart,
// which is acceptable for best-effort analytics.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = 1000
	}
	return &Log{capacity: capacity}
}

// Record appends the entry, evicting the oldest once the buffer is full.
// A zero timestamp is filled with the current time.
func (l *Log) Record(e Entry) {
	if e.Timestamp == "" {
		e.Timestamp = time.Now().Format(time.RFC3339)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
}

// Recent returns up to n entries, newest first.
func (l *Log) Recent(n int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]Entry, 0, n)
	for i := len(l.entries) - 1; i >= len(l.entries)-n; i-- {
		out = append(out, l.entries[i])
	}
	return out
}
