package models

// Message event types.
const (
	MessageCreated = "message_created"
	MessageUpdated = "message_updated"
	MessageDeleted = "message_deleted"
)

// MessageEvent describes a change to a message, published after it has been persisted.
type MessageEvent struct {
	EventID   string  `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string  `json:"type"`      // Type is one of MessageCreated, MessageUpdated, MessageDeleted.
	Timestamp int64   `json:"timestamp"` // Timestamp is the Unix time (in seconds) the event was produced.
	Message   Message `json:"message"`   // Message is the state of the message after the change.
}
