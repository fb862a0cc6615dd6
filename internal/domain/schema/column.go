package schema

import "github.com/leengari/colstore/internal/storage"

// Value is the fixed-width integer type stored in every column.
type Value = int32

// Column is one column of a table. Its backing buffer is allocated on the
// table's first insert, not when the column is created.
type Column struct {
	Name string // qualified: db.table.column
	data storage.Vector[Value]
}

func NewColumn(qualifiedName string) *Column {
	return &Column{Name: qualifiedName}
}

func (c *Column) Len() int {
	return c.data.Len()
}

// Cap returns the allocated capacity in rows (0 before the first insert).
func (c *Column) Cap() int {
	return c.data.Cap()
}

func (c *Column) Allocated() bool {
	return c.data.Allocated()
}

// Values returns a copy of the column's rows.
func (c *Column) Values() []Value {
	return c.data.Values()
}

func (c *Column) At(row int) Value {
	return c.data.At(row)
}
