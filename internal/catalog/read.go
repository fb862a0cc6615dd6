package catalog

import (
	domainerrors "github.com/leengari/colstore/internal/domain/errors"
	"github.com/leengari/colstore/internal/domain/schema"
)

// DatabaseInfo is a point-in-time copy of the active database's metadata.
type DatabaseInfo struct {
	ID            string
	Name          string
	TableCount    int
	TableCapacity int
}

// TableInfo is a point-in-time copy of a table's metadata.
type TableInfo struct {
	Handle          TableHandle
	Name            string
	DeclaredColumns int
	Length          int
	RowCapacity     int
	Columns         []string // qualified, in column order
}

// ColumnInfo is a point-in-time copy of a column's metadata.
type ColumnInfo struct {
	Handle    ColumnHandle
	Name      string
	Length    int
	Capacity  int
	Allocated bool
}

func (c *Catalog) Database() (DatabaseInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return DatabaseInfo{}, domainerrors.NewNoDatabase("database")
	}
	return DatabaseInfo{
		ID:            c.db.ID,
		Name:          c.db.Name,
		TableCount:    c.db.TableCount(),
		TableCapacity: c.db.TableCapacity(),
	}, nil
}

func (c *Catalog) Table(h TableHandle) (TableInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.resolve("table_info", h)
	if err != nil {
		return TableInfo{}, err
	}
	return tableInfo(h, t), nil
}

// Tables lists every table of the active database in slot order.
func (c *Catalog) Tables() []TableInfo {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	tables := c.db.Tables()
	out := make([]TableInfo, 0, len(tables))
	for slot, t := range tables {
		out = append(out, tableInfo(TableHandle{generation: c.generation, slot: slot}, t))
	}
	return out
}

func (c *Catalog) Column(h ColumnHandle) (ColumnInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	col, err := c.resolveColumn("column_info", h)
	if err != nil {
		return ColumnInfo{}, err
	}
	return ColumnInfo{
		Handle:    h,
		Name:      col.Name,
		Length:    col.Len(),
		Capacity:  col.Cap(),
		Allocated: col.Allocated(),
	}, nil
}

// ColumnValues returns a copy of every value in the column.
func (c *Catalog) ColumnValues(h ColumnHandle) ([]schema.Value, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	col, err := c.resolveColumn("column_values", h)
	if err != nil {
		return nil, err
	}
	return col.Values(), nil
}

// Row returns a copy of row i across all columns.
func (c *Catalog) Row(h TableHandle, i int) ([]schema.Value, error) {
	const op = "row"

	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.resolve(op, h)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= t.Length() {
		return nil, domainerrors.NewOutOfRange(op, t.Name, i, t.Length())
	}

	row := make([]schema.Value, 0, t.ColumnCount())
	for _, col := range t.Columns() {
		row = append(row, col.At(i))
	}
	return row, nil
}

// MemoryUsed returns the column cells allocated by the active database.
func (c *Catalog) MemoryUsed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.budget.Used()
}

func (c *Catalog) resolveColumn(op string, h ColumnHandle) (*schema.Column, error) {
	t, err := c.resolve(op, h.Table)
	if err != nil {
		return nil, err
	}
	col, ok := t.Column(h.position)
	if !ok {
		return nil, domainerrors.NewNotFound(op, h.String())
	}
	return col, nil
}

func tableInfo(h TableHandle, t *schema.Table) TableInfo {
	cols := t.Columns()
	names := make([]string, len(cols))
	for i, col := range cols {
		names[i] = col.Name
	}
	return TableInfo{
		Handle:          h,
		Name:            t.Name,
		DeclaredColumns: t.DeclaredColumns(),
		Length:          t.Length(),
		RowCapacity:     t.RowCapacity(),
		Columns:         names,
	}
}
