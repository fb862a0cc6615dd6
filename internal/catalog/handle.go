package catalog

import "fmt"

// TableHandle identifies a table of the active database.
//
// Slots never move, so a handle survives any growth of the table sequence.
// A handle goes stale when CreateDB replaces the database it came from.
// The zero TableHandle is never valid.
type TableHandle struct {
	generation uint64
	slot       int
}

// Slot returns the table's position in its database's table sequence.
func (h TableHandle) Slot() int {
	return h.slot
}

func (h TableHandle) IsZero() bool {
	return h.generation == 0
}

func (h TableHandle) String() string {
	return fmt.Sprintf("table(gen=%d, slot=%d)", h.generation, h.slot)
}

// ColumnHandle identifies a column by its table and position.
type ColumnHandle struct {
	Table    TableHandle
	position int
}

func (h ColumnHandle) Position() int {
	return h.position
}

func (h ColumnHandle) String() string {
	return fmt.Sprintf("column(gen=%d, slot=%d, pos=%d)", h.Table.generation, h.Table.slot, h.position)
}
