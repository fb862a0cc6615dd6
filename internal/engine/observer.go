package engine

import (
	"time"

	"github.com/leengari/colstore/internal/domain/operation"
)

// EventType represents different lifecycle phases of an engine operation
type EventType string

const (
	EventOpStart EventType = "op_start"
	EventOpEnd   EventType = "op_end"
	// EventTableGrow fires after a relational insert grew every column of a table.
	EventTableGrow EventType = "table_grow"
)

// Growth is the Data payload of EventTableGrow.
type Growth struct {
	Table string
	From  int
	To    int
}

// Event represents a lifecycle event of one operation
type Event struct {
	Type      EventType      // Type of event
	OpID      string         // Operation ID for tracing
	Seq       uint64         // Operation sequence number
	Kind      operation.Kind // Which primitive ran
	Target    string         // Name or handle the operation acted on
	Timestamp time.Time      // When the event occurred
	Elapsed   time.Duration  // Set on EventOpEnd
	Err       error          // Set on EventOpEnd when the operation failed
	Data      any            // Phase-specific data (e.g. Growth)
}

// Observer interface for event subscribers
// Observers receive events at the start and end of every operation
type Observer interface {
	OnEvent(event Event)
}
