package core

import "fmt"

// EventType represents the type of change observed in the content collection.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a document in the collection.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer (and with it lifecycle.Event), so events can
// be bridged into a supervised lifecycle without conversion.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
