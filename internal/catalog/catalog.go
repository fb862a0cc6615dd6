// Package catalog maintains the Database/Table/Column hierarchy and resolves
// qualified names to handles.
//
// A Catalog is the explicit context every caller threads through; there is no
// package-level current database. All methods serialize on one mutex, so a
// Catalog may be shared between goroutines, but operations never overlap.
package catalog

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/leengari/colstore/internal/config"
	domainerrors "github.com/leengari/colstore/internal/domain/errors"
	"github.com/leengari/colstore/internal/domain/schema"
	"github.com/leengari/colstore/internal/index"
	"github.com/leengari/colstore/internal/logging"
	"github.com/leengari/colstore/internal/storage"
)

// Catalog owns the active database and the name indexes over it.
type Catalog struct {
	mu     sync.Mutex
	limits config.Limits
	logger *slog.Logger

	db         *schema.Database
	generation uint64             // bumped by every CreateDB
	tables     *index.Index       // db.table -> slot
	names      *index.PresenceSet // every registered qualified name
	budget     *storage.Budget    // column cells of the active database
}

// New returns an empty catalog. A nil logger means slog.Default().
func New(limits config.Limits, logger *slog.Logger) (*Catalog, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog limits: %w", err)
	}
	return &Catalog{
		limits: limits,
		logger: logging.WithComponent(logger, "catalog"),
	}, nil
}

// Limits returns the limits the catalog was built with.
func (c *Catalog) Limits() config.Limits {
	return c.limits
}

func (c *Catalog) indexOptions() []index.Option {
	opts := []index.Option{index.WithMaxKeyLength(c.limits.MaxNameLength)}
	if c.limits.IndexGrowth == config.GrowthFixed {
		return append(opts, index.Fixed())
	}
	return append(opts, index.Grow(c.limits.IndexMaxLoadFactor))
}

// CreateDB makes a new, empty database the active one. An existing active
// database is released and every handle into it becomes stale.
func (c *Catalog) CreateDB(name string) error {
	const op = "create_db"

	if err := schema.ValidatePart(op, name); err != nil {
		return err
	}
	if err := schema.CheckLength(op, name, c.limits.MaxNameLength); err != nil {
		return err
	}

	tables, err := index.New(c.limits.IndexBuckets, c.indexOptions()...)
	if err != nil {
		return fmt.Errorf("failed to allocate table index: %w", err)
	}
	names, err := index.NewPresenceSet(c.limits.IndexBuckets, c.indexOptions()...)
	if err != nil {
		return fmt.Errorf("failed to allocate name set: %w", err)
	}
	if _, err := names.Insert(name); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		c.logger.Warn("replacing active database",
			"previous", c.db.Name,
			"previous_id", c.db.ID,
			"tables", c.db.TableCount(),
		)
	}

	c.db = schema.NewDatabase(name)
	c.generation++
	c.tables = tables
	c.names = names
	c.budget = storage.NewBudget(c.limits.MemoryBudget)

	c.logger.Info("database created", "database", name, "id", c.db.ID)
	return nil
}

// CreateTable adds a table with numColumns column slots to the active
// database and returns its handle. Nothing changes if it fails.
func (c *Catalog) CreateTable(name string, numColumns int) (TableHandle, error) {
	const op = "create_table"

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return TableHandle{}, domainerrors.NewNoDatabase(op)
	}
	if err := schema.ValidatePart(op, name); err != nil {
		return TableHandle{}, err
	}
	if numColumns < 0 {
		return TableHandle{}, domainerrors.NewInvalidArgument(op, name, "column count must not be negative")
	}

	qualified := schema.Qualify(c.db.Name, name)
	if err := schema.CheckLength(op, qualified, c.limits.MaxNameLength); err != nil {
		return TableHandle{}, err
	}
	if c.names.IsPresent(qualified) {
		return TableHandle{}, domainerrors.NewDuplicateName(op, qualified)
	}

	t, err := schema.NewTable(qualified, numColumns, c.indexOptions()...)
	if err != nil {
		return TableHandle{}, err
	}

	slot := c.db.TableCount()
	if err := c.tables.Insert(qualified, slot); err != nil {
		return TableHandle{}, err
	}
	if _, err := c.names.Insert(qualified); err != nil {
		_ = c.tables.Remove(qualified)
		return TableHandle{}, err
	}

	prevCap := c.db.TableCapacity()
	c.db.AppendTable(t, c.limits.InitialTableCapacity)
	if newCap := c.db.TableCapacity(); newCap != prevCap {
		c.logger.Debug("table sequence resized", "database", c.db.Name, "from", prevCap, "to", newCap)
	}

	c.logger.Info("table created", "table", qualified, "slot", slot, "columns", numColumns)
	return TableHandle{generation: c.generation, slot: slot}, nil
}

// CreateColumn adds the next column to the table behind h.
func (c *Catalog) CreateColumn(h TableHandle, name string) (ColumnHandle, error) {
	const op = "create_column"

	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.resolve(op, h)
	if err != nil {
		return ColumnHandle{}, err
	}
	if err := schema.ValidatePart(op, name); err != nil {
		return ColumnHandle{}, err
	}

	qualified := schema.Qualify(t.Name, name)
	if err := schema.CheckLength(op, qualified, c.limits.MaxNameLength); err != nil {
		return ColumnHandle{}, err
	}
	if c.names.IsPresent(qualified) {
		return ColumnHandle{}, domainerrors.NewDuplicateName(op, qualified)
	}

	pos, err := t.AddColumn(schema.NewColumn(qualified))
	if err != nil {
		return ColumnHandle{}, err
	}
	if _, err := c.names.Insert(qualified); err != nil {
		return ColumnHandle{}, err
	}

	c.logger.Debug("column created", "column", qualified, "position", pos)
	return ColumnHandle{Table: h, position: pos}, nil
}

// LookupTable resolves a table name. Both the qualified "db.table" form and
// a bare table name (qualified with the active database) are accepted.
func (c *Catalog) LookupTable(name string) (TableHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.lookupTable("lookup_table", name)
}

// LookupColumn resolves a column by table name and unqualified column name.
func (c *Catalog) LookupColumn(tableName, colName string) (ColumnHandle, error) {
	const op = "lookup_column"

	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.lookupTable(op, tableName)
	if err != nil {
		return ColumnHandle{}, err
	}
	t, _ := c.db.Table(h.slot)

	qualified := schema.Qualify(t.Name, colName)
	pos, ok := t.ColumnPosition(qualified)
	if !ok {
		return ColumnHandle{}, domainerrors.NewNotFound(op, qualified)
	}
	return ColumnHandle{Table: h, position: pos}, nil
}

// Update runs fn on the live table behind h while holding the catalog lock.
// fn must not retain the table or call back into the catalog.
func (c *Catalog) Update(h TableHandle, fn func(*schema.Table) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, err := c.resolve("update", h)
	if err != nil {
		return err
	}
	return fn(t)
}

// Budget returns the memory budget of the active database. It is only safe
// to use from inside Update.
func (c *Catalog) Budget() *storage.Budget {
	return c.budget
}

func (c *Catalog) lookupTable(op, name string) (TableHandle, error) {
	if c.db == nil {
		return TableHandle{}, domainerrors.NewNoDatabase(op)
	}
	if name == "" {
		return TableHandle{}, domainerrors.NewInvalidArgument(op, name, "name must not be empty")
	}

	qualified := name
	if !strings.Contains(name, schema.Separator) {
		qualified = schema.Qualify(c.db.Name, name)
	}

	slot, ok := c.tables.Lookup(qualified)
	if !ok {
		return TableHandle{}, domainerrors.NewNotFound(op, qualified)
	}
	return TableHandle{generation: c.generation, slot: slot}, nil
}

// resolve maps a handle to its table. Callers hold c.mu.
func (c *Catalog) resolve(op string, h TableHandle) (*schema.Table, error) {
	if h.IsZero() {
		return nil, domainerrors.NewInvalidArgument(op, "", "zero table handle")
	}
	if c.db == nil {
		return nil, domainerrors.NewNoDatabase(op)
	}
	if h.generation != c.generation {
		return nil, domainerrors.NewStaleHandle(op)
	}
	t, ok := c.db.Table(h.slot)
	if !ok {
		return nil, domainerrors.NewNotFound(op, h.String())
	}
	return t, nil
}
