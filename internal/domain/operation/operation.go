package operation

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// seqCounter numbers operations in the order they start.
var seqCounter uint64

// Kind names a catalog or storage primitive.
type Kind string

const (
	KindCreateDB         Kind = "create_db"
	KindCreateTable      Kind = "create_table"
	KindCreateColumn     Kind = "create_column"
	KindRelationalInsert Kind = "relational_insert"
	KindLookupTable      Kind = "lookup_table"
	KindLookupColumn     Kind = "lookup_column"
)

// Operation identifies one call into the engine for tracing.
type Operation struct {
	ID        string    // UUID, unique across processes
	Seq       uint64    // process-local, monotonically increasing
	Kind      Kind      // which primitive
	Target    string    // name the operation acts on
	StartTime time.Time // when the operation began
}

func New(kind Kind, target string) *Operation {
	return &Operation{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&seqCounter, 1),
		Kind:      kind,
		Target:    target,
		StartTime: time.Now(),
	}
}

// Elapsed returns the time since the operation started.
func (op *Operation) Elapsed() time.Duration {
	return time.Since(op.StartTime)
}
