package types

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/keboola-community/keboola-go/utils"
)

// Table is a value object representing one storage table and its columns.
// ID and RowsCount are platform-assigned and not part of structural comparison.
type Table struct {
	ID          string  `json:"id,omitempty" hash:"ignore"`
	Name        string  `json:"name"`
	Schema      string  `json:"schema,omitempty"`
	SchemaID    string  `json:"schema_id,omitempty"`
	Description string  `json:"description,omitempty"`
	RowsCount   string  `json:"row_cnt,omitempty" hash:"ignore"`
	Columns     Columns `json:"columns,omitempty"`
	NativeTypes bool    `json:"native_types,omitempty"`
}

// NewTable creates a definition of a table that is not persisted on the platform yet
func NewTable(name, schemaID string, columns ...Column) *Table {
	return &Table{
		Name:     name,
		SchemaID: schemaID,
		Columns:  columns,
	}
}

// Persisted returns true if the table has a platform-assigned id
func (t *Table) Persisted() bool {
	return t != nil && t.ID != ""
}

// PrimaryKeys returns the columns flagged as primary keys, order preserved
func (t *Table) PrimaryKeys() Columns {
	return t.Columns.Primary()
}

func (t *Table) Clone() *Table {
	if t == nil {
		return nil
	}
	clone := *t
	clone.Columns = make(Columns, len(t.Columns))
	copy(clone.Columns, t.Columns)
	return &clone
}

// Diff compares two tables field by field over comparable fields. Columns are
// reconciled by name: names present on both sides are diffed recursively and
// included only when the column diff is non-empty, unmatched names are reported
// with a left/right-only marker. The columns key is present only when at least
// one column-level difference exists. A nil side is treated as an empty table.
func (t *Table) Diff(other *Table) TableDiff {
	if t == nil {
		t = &Table{}
	}
	if other == nil {
		other = &Table{}
	}
	diff := TableDiff{}
	for name, pair := range diffFields(t, other, tableComparableFields) {
		diff[name] = pair
	}
	if columnsDiff := t.Columns.Diff(other.Columns); len(columnsDiff) > 0 {
		diff["columns"] = columnsDiff
	}
	return diff
}

// Validate checks entity invariants: a non-empty table name and unique,
// non-empty column names
func (t *Table) Validate() error {
	var result *multierror.Error
	if t.Name == "" {
		result = multierror.Append(result, fmt.Errorf("table name is required"))
	}
	names := utils.NewSet[string]()
	for _, column := range t.Columns {
		if column.Name == "" {
			result = multierror.Append(result, fmt.Errorf("column name is required"))
			continue
		}
		if names.Contains(column.Name) {
			result = multierror.Append(result, fmt.Errorf("duplicate column name: %s", column.Name))
			continue
		}
		names.Put(column.Name)
	}
	return result.ErrorOrNil()
}

func (t *Table) Hash() string {
	h, _ := utils.HashAny(t)
	return strconv.FormatUint(h, 10)
}

// APITable is the wire shape of a table as returned by the storage API
type APITable struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	DisplayName    string              `json:"displayName"`
	PrimaryKey     []string            `json:"primaryKey"`
	Columns        []string            `json:"columns"`
	RowsCount      json.Number         `json:"rowsCount"`
	IsTyped        bool                `json:"isTyped"`
	Bucket         APIBucket           `json:"bucket"`
	Metadata       Metadata            `json:"metadata"`
	ColumnMetadata map[string]Metadata `json:"columnMetadata"`
}

type APIBucket struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

// ToTable converts the wire shape into the Table entity
func (at *APITable) ToTable() *Table {
	description, _ := at.Metadata.Index().GetAny(MetaKeyDescription)
	return &Table{
		ID:          at.ID,
		Name:        at.DisplayName,
		Schema:      at.Bucket.DisplayName,
		SchemaID:    at.Bucket.ID,
		Description: description,
		RowsCount:   at.RowsCount.String(),
		Columns:     ColumnsFromMetadata(at.ColumnMetadata, at.PrimaryKey, at.Columns),
		NativeTypes: at.IsTyped,
	}
}
