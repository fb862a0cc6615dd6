package schema

import (
	"fmt"

	domainerrors "github.com/leengari/colstore/internal/domain/errors"
	"github.com/leengari/colstore/internal/index"
	"github.com/leengari/colstore/internal/storage"
)

// Table is a fixed set of integer columns that grow together.
//
// Invariants kept by AppendRow:
//   - every column holds exactly Length() values
//   - every allocated column has capacity RowCapacity() >= Length()
type Table struct {
	Name        string // qualified: db.table
	columns     []*Column
	declared    int
	length      int
	rowCapacity int
	positions   *index.Index // qualified column name -> position in columns
}

// NewTable creates a table with room for exactly numColumns columns.
// opts configure the per-table column-name index.
func NewTable(qualifiedName string, numColumns int, opts ...index.Option) (*Table, error) {
	if numColumns < 0 {
		return nil, domainerrors.NewInvalidArgument("create_table", qualifiedName, "column count must not be negative")
	}

	buckets := numColumns
	if buckets < 1 {
		buckets = 1
	}
	positions, err := index.New(buckets, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate column index for %s: %w", qualifiedName, err)
	}

	return &Table{
		Name:      qualifiedName,
		columns:   make([]*Column, 0, numColumns),
		declared:  numColumns,
		positions: positions,
	}, nil
}

// DeclaredColumns returns the column count fixed at creation.
func (t *Table) DeclaredColumns() int {
	return t.declared
}

// ColumnSlots returns the size of the column sequence (always DeclaredColumns).
func (t *Table) ColumnSlots() int {
	return cap(t.columns)
}

// ColumnCount returns how many columns have been created so far.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// Complete reports whether every declared column exists.
func (t *Table) Complete() bool {
	return len(t.columns) == t.declared
}

func (t *Table) Length() int {
	return t.length
}

func (t *Table) RowCapacity() int {
	return t.rowCapacity
}

func (t *Table) Column(pos int) (*Column, bool) {
	if pos < 0 || pos >= len(t.columns) {
		return nil, false
	}
	return t.columns[pos], true
}

func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// ColumnPosition resolves a qualified column name.
func (t *Table) ColumnPosition(qualifiedName string) (int, bool) {
	return t.positions.Lookup(qualifiedName)
}

// AddColumn appends c and registers its name. It fails once every declared
// column exists or if the name is already taken; on failure t is unchanged.
func (t *Table) AddColumn(c *Column) (int, error) {
	const op = "create_column"

	if c == nil {
		return 0, domainerrors.NewInvalidArgument(op, t.Name, "column must not be nil")
	}
	if len(t.columns) >= t.declared {
		return 0, domainerrors.NewTooManyColumns(op, t.Name, t.declared)
	}
	if _, exists := t.positions.Lookup(c.Name); exists {
		return 0, domainerrors.NewDuplicateName(op, c.Name)
	}

	pos := len(t.columns)
	if err := t.positions.Insert(c.Name, pos); err != nil {
		return 0, err
	}
	t.columns = append(t.columns, c)
	return pos, nil
}

// AppendRow adds one value to every column, in column order.
//
// When the table is full, every column is grown to the next row capacity
// before anything is written. If any column cannot be grown the staged
// buffers are released and the table is left exactly as it was, so a row is
// either written to all columns or to none.
func (t *Table) AppendRow(values []Value, initialCapacity int, budget *storage.Budget) error {
	const op = "relational_insert"

	if values == nil {
		return domainerrors.NewInvalidArgument(op, t.Name, "values must not be nil")
	}
	if !t.Complete() {
		return domainerrors.NewInvalidArgument(op, t.Name,
			fmt.Sprintf("table has %d of %d columns defined", len(t.columns), t.declared))
	}
	if len(values) != len(t.columns) {
		return domainerrors.NewInvalidArgument(op, t.Name,
			fmt.Sprintf("got %d values for %d columns", len(values), len(t.columns)))
	}

	if t.length == t.rowCapacity {
		if err := t.grow(storage.NextCapacity(t.rowCapacity, initialCapacity), budget); err != nil {
			return err
		}
	}

	for i, c := range t.columns {
		c.data.Append(values[i])
	}
	t.length++
	return nil
}

func (t *Table) grow(capacity int, budget *storage.Budget) error {
	staged := make([]*storage.Staged[Value], 0, len(t.columns))
	for _, c := range t.columns {
		s, err := c.data.Stage(capacity, budget)
		if err != nil {
			for _, prev := range staged {
				prev.Abort()
			}
			return domainerrors.NewOutOfMemory("relational_insert", c.Name, err)
		}
		staged = append(staged, s)
	}

	for _, s := range staged {
		s.Commit()
	}
	t.rowCapacity = capacity
	return nil
}
