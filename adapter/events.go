package adapter

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/accesskit-go/tree"
)

// EventKind classifies a platform notification.
type EventKind uint8

const (
	EventNodeCreated EventKind = iota
	EventNodeUpdated
	EventNodeRemoved
	EventFocusMoved
	EventWindowFocusChanged
	EventHoverEntered
	EventHoverExited
)

var eventKindNames = []string{
	"nodeCreated", "nodeUpdated", "nodeRemoved", "focusMoved", "windowFocusChanged",
	"hoverEntered", "hoverExited",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("event(%d)", k)
}

// Event is one platform notification. Node is the affected node; for
// EventWindowFocusChanged, Focused carries the new window state.
type Event struct {
	Kind    EventKind
	Node    tree.NodeID
	Focused bool
}

// EventSink delivers events to the platform accessibility API.
type EventSink interface {
	RaiseEvents(events []Event)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(events []Event)

func (f EventSinkFunc) RaiseEvents(events []Event) { f(events) }

// DiscardSink drops all events.
var DiscardSink EventSink = EventSinkFunc(func([]Event) {})

// QueuedEvents is a batch of events computed while the adapter's lock was
// held. Raise delivers them after the lock is released, so sinks may call
// back into the adapter.
type QueuedEvents struct {
	mu     sync.Mutex
	sink   EventSink
	events []Event
}

func newQueuedEvents(sink EventSink, events []Event) *QueuedEvents {
	return &QueuedEvents{sink: sink, events: events}
}

// Events returns a copy of the pending events.
func (q *QueuedEvents) Events() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Event(nil), q.events...)
}

// Len returns the number of pending events.
func (q *QueuedEvents) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Raise delivers the pending events and empties the batch. Raising an
// empty batch does nothing.
func (q *QueuedEvents) Raise() {
	q.mu.Lock()
	events := q.events
	q.events = nil
	q.mu.Unlock()
	if len(events) == 0 {
		return
	}
	Logger().Debug("raising events", zap.Int("count", len(events)))
	q.sink.RaiseEvents(events)
}
