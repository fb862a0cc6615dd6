package catalog

import (
	"fmt"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"

	domainerrors "github.com/leengari/colstore/internal/domain/errors"
	"github.com/leengari/colstore/internal/domain/schema"
)

// Description is the shape of the catalog, without column data, in a form
// that can be handed to a persistence or wire component.
type Description struct {
	ID            string             `json:"id" bson:"id"`
	Database      string             `json:"database" bson:"database"`
	TableCapacity int                `json:"table_capacity" bson:"table_capacity"`
	Tables        []TableDescription `json:"tables" bson:"tables"`
}

type TableDescription struct {
	Name            string              `json:"name" bson:"name"`
	Slot            int                 `json:"slot" bson:"slot"`
	DeclaredColumns int                 `json:"declared_columns" bson:"declared_columns"`
	Length          int                 `json:"length" bson:"length"`
	RowCapacity     int                 `json:"row_capacity" bson:"row_capacity"`
	Columns         []ColumnDescription `json:"columns" bson:"columns"`
}

type ColumnDescription struct {
	Name     string `json:"name" bson:"name"`
	Position int    `json:"position" bson:"position"`
	Length   int    `json:"length" bson:"length"`
	Capacity int    `json:"capacity" bson:"capacity"`
}

// Describe snapshots the active database's metadata.
func (c *Catalog) Describe() (Description, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return Description{}, domainerrors.NewNoDatabase("describe")
	}

	d := Description{
		ID:            c.db.ID,
		Database:      c.db.Name,
		TableCapacity: c.db.TableCapacity(),
		Tables:        make([]TableDescription, 0, c.db.TableCount()),
	}
	for slot, t := range c.db.Tables() {
		d.Tables = append(d.Tables, describeTable(slot, t))
	}
	return d, nil
}

func describeTable(slot int, t *schema.Table) TableDescription {
	td := TableDescription{
		Name:            t.Name,
		Slot:            slot,
		DeclaredColumns: t.DeclaredColumns(),
		Length:          t.Length(),
		RowCapacity:     t.RowCapacity(),
		Columns:         make([]ColumnDescription, 0, t.ColumnCount()),
	}
	for pos, col := range t.Columns() {
		td.Columns = append(td.Columns, ColumnDescription{
			Name:     col.Name,
			Position: pos,
			Length:   col.Len(),
			Capacity: col.Cap(),
		})
	}
	return td
}

// JSON encodes the description as indented JSON.
func (d Description) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode description as JSON: %w", err)
	}
	return data, nil
}

// BSON encodes the description as a BSON document.
func (d Description) BSON() ([]byte, error) {
	data, err := bson.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode description as BSON: %w", err)
	}
	return data, nil
}
