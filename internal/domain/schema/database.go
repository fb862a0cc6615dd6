package schema

import (
	"github.com/google/uuid"
)

// Database is the root of the catalog hierarchy and owns its tables.
// The table sequence is left unallocated until the first table arrives.
type Database struct {
	ID     string
	Name   string
	tables []*Table
}

// NewDatabase creates an empty database. Name validation is the caller's job.
func NewDatabase(name string) *Database {
	return &Database{
		ID:   uuid.New().String(),
		Name: name,
	}
}

// TableCount returns the number of tables in use.
func (db *Database) TableCount() int {
	return len(db.tables)
}

// TableCapacity returns the allocated size of the table sequence.
func (db *Database) TableCapacity() int {
	return cap(db.tables)
}

// Table returns the table in slot.
func (db *Database) Table(slot int) (*Table, bool) {
	if slot < 0 || slot >= len(db.tables) {
		return nil, false
	}
	return db.tables[slot], true
}

// Tables returns the tables in slot order.
func (db *Database) Tables() []*Table {
	out := make([]*Table, len(db.tables))
	copy(out, db.tables)
	return out
}

// AppendTable stores t in the next slot and returns that slot. The first
// call allocates initialCapacity slots; a full sequence doubles.
// Slots never move, so a slot stays valid for the life of the database.
func (db *Database) AppendTable(t *Table, initialCapacity int) int {
	switch {
	case db.tables == nil:
		db.tables = make([]*Table, 0, initialCapacity)
	case len(db.tables) == cap(db.tables):
		grown := make([]*Table, len(db.tables), 2*cap(db.tables))
		copy(grown, db.tables)
		db.tables = grown
	}
	db.tables = append(db.tables, t)
	return len(db.tables) - 1
}
