// Package engine is the storage engine facade over a catalog. Every call is
// recorded as an operation and reported to observers.
package engine

import (
	"fmt"
	"time"

	"github.com/leengari/colstore/internal/catalog"
	"github.com/leengari/colstore/internal/domain/operation"
	"github.com/leengari/colstore/internal/domain/schema"
)

// Engine is the main entry point for the storage system
type Engine struct {
	catalog   *catalog.Catalog
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine over cat
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog:   cat,
		observers: make([]Observer, 0),
	}
}

// Catalog returns the catalog the engine operates on, for read access.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

func (e *Engine) CreateDB(name string) (err error) {
	op := e.begin(operation.KindCreateDB, name)
	defer func() { e.end(op, err) }()

	return e.catalog.CreateDB(name)
}

func (e *Engine) CreateTable(name string, numColumns int) (h catalog.TableHandle, err error) {
	op := e.begin(operation.KindCreateTable, name)
	defer func() { e.end(op, err) }()

	return e.catalog.CreateTable(name, numColumns)
}

func (e *Engine) CreateColumn(table catalog.TableHandle, name string) (h catalog.ColumnHandle, err error) {
	op := e.begin(operation.KindCreateColumn, name)
	defer func() { e.end(op, err) }()

	return e.catalog.CreateColumn(table, name)
}

// RelationalInsert appends one row to the table behind h. values are taken
// in column order and must cover every column. On error the table is
// unchanged.
func (e *Engine) RelationalInsert(h catalog.TableHandle, values []int32) (err error) {
	op := e.begin(operation.KindRelationalInsert, h.String())
	defer func() { e.end(op, err) }()

	var (
		grew   bool
		growth Growth
	)
	err = e.catalog.Update(h, func(t *schema.Table) error {
		before := t.RowCapacity()
		if err := t.AppendRow(values, e.catalog.Limits().InitialColumnCapacity, e.catalog.Budget()); err != nil {
			return err
		}
		if after := t.RowCapacity(); after != before {
			grew = true
			growth = Growth{Table: t.Name, From: before, To: after}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("relational insert into %s: %w", h, err)
	}

	if grew {
		e.notify(Event{
			Type:   EventTableGrow,
			OpID:   op.ID,
			Seq:    op.Seq,
			Kind:   op.Kind,
			Target: op.Target,
			Data:   growth,
		})
	}
	return nil
}

func (e *Engine) LookupTable(name string) (h catalog.TableHandle, err error) {
	op := e.begin(operation.KindLookupTable, name)
	defer func() { e.end(op, err) }()

	return e.catalog.LookupTable(name)
}

func (e *Engine) LookupColumn(tableName, colName string) (h catalog.ColumnHandle, err error) {
	op := e.begin(operation.KindLookupColumn, schema.Qualify(tableName, colName))
	defer func() { e.end(op, err) }()

	return e.catalog.LookupColumn(tableName, colName)
}

func (e *Engine) begin(kind operation.Kind, target string) *operation.Operation {
	op := operation.New(kind, target)
	e.notify(Event{
		Type:   EventOpStart,
		OpID:   op.ID,
		Seq:    op.Seq,
		Kind:   op.Kind,
		Target: op.Target,
	})
	return op
}

func (e *Engine) end(op *operation.Operation, err error) {
	e.notify(Event{
		Type:    EventOpEnd,
		OpID:    op.ID,
		Seq:     op.Seq,
		Kind:    op.Kind,
		Target:  op.Target,
		Elapsed: op.Elapsed(),
		Err:     err,
	})
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
