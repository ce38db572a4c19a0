package controller

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity tags a notification.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Icon is the glyph rendered next to a notification of this severity.
func (s Severity) Icon() string {
	switch s {
	case SeveritySuccess:
		return "✅"
	case SeverityError:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// Notification is a transient message shown until it expires.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type notificationEntry struct {
	Notification
	timer *time.Timer
}

// Notifier holds the visible notifications. Every entry removes itself after
// the configured duration; entries never affect each other.
type Notifier struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []*notificationEntry
	closed  bool
}

// NewNotifier creates a notifier whose entries live for ttl.
func NewNotifier(ttl time.Duration) *Notifier {
	return &Notifier{ttl: ttl}
}

// Push shows a new notification and schedules its removal.
func (n *Notifier) Push(message string, severity Severity) Notification {
	now := time.Now()
	entry := &notificationEntry{Notification: Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		Icon:      severity.Icon(),
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}}

	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return entry.Notification
	}
	id := entry.ID
	entry.timer = time.AfterFunc(n.ttl, func() { n.remove(id) })
	n.entries = append(n.entries, entry)
	return entry.Notification
}

// Active returns the visible notifications, oldest first.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notification, 0, len(n.entries))
	for _, e := range n.entries {
		out = append(out, e.Notification)
	}
	return out
}

// Close stops all pending removals and drops every entry.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, e := range n.entries {
		e.timer.Stop()
	}
	n.entries = nil
	n.closed = true
}

func (n *Notifier) remove(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, e := range n.entries {
		if e.ID == id {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)
			return
		}
	}
}
