package log

import (
	"encoding/json"
	"regexp"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Entry is the exportable shape of one captured log record.
type Entry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     string                 `json:"level"`
	ModuleID  string                 `json:"module_id,omitempty"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
}

// Review modules tag their messages with a leading "[module-id]".
var moduleTag = regexp.MustCompile(`^\[([a-z][a-z0-9-]*)\]\s*`)

// MemoryHook keeps the most recent log entries in memory so front doors can
// export them as JSON. Oldest entries are dropped past the cap.
type MemoryHook struct {
	mu      sync.Mutex
	entries []Entry
	max     int
}

func NewMemoryHook(max int) *MemoryHook {
	return &MemoryHook{max: max}
}

func (h *MemoryHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *MemoryHook) Fire(e *logrus.Entry) error {
	entry := Entry{
		Timestamp: e.Time,
		Level:     e.Level.String(),
		Message:   e.Message,
	}
	if m := moduleTag.FindStringSubmatch(e.Message); m != nil {
		entry.ModuleID = m[1]
		entry.Message = e.Message[len(m[0]):]
	}
	if len(e.Data) > 0 {
		entry.Data = make(map[string]interface{}, len(e.Data))
		for k, v := range e.Data {
			entry.Data[k] = v
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry)
	if h.max > 0 && len(h.entries) > h.max {
		h.entries = h.entries[len(h.entries)-h.max:]
	}
	return nil
}

// Entries returns a copy of the captured entries in arrival order.
func (h *MemoryHook) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// ExportJSON renders the captured entries as a JSON array.
func (h *MemoryHook) ExportJSON() ([]byte, error) {
	return json.Marshal(h.Entries())
}

// Reset drops all captured entries.
func (h *MemoryHook) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}
