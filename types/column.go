package types

import (
	"github.com/keboola-community/keboola-go/utils"
)

// Column is a value object representing one table column.
// Description and Length are informational and not part of structural comparison.
type Column struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty" hash:"ignore"`
	Primary     bool   `json:"primary,omitempty"`
	Length      string `json:"length,omitempty" hash:"ignore"`
}

// Diff returns per-field differences between two columns over comparable fields only
func (c Column) Diff(other Column) ColumnDiff {
	return ColumnDiff(diffFields(c, other, columnComparableFields))
}

// Columns is an ordered list of columns with unique names
type Columns []Column

func (cs Columns) Names() []string {
	return utils.ArrayMap(cs, func(c Column) string { return c.Name })
}

func (cs Columns) ByName() map[string]Column {
	byName := make(map[string]Column, len(cs))
	for _, column := range cs {
		if _, ok := byName[column.Name]; !ok {
			byName[column.Name] = column
		}
	}
	return byName
}

// Primary returns the sub-sequence of columns flagged as primary keys, order preserved
func (cs Columns) Primary() Columns {
	return utils.ArrayFilter(cs, func(c Column) bool { return c.Primary })
}

// Diff reconciles two column sets by name. Names present on both sides are
// diffed field by field and included only when differences exist. A name
// present on one side only is recorded with a left/right-only marker.
func (cs Columns) Diff(other Columns) ColumnsDiff {
	diff := ColumnsDiff{}
	left := cs.ByName()
	right := other.ByName()
	for name, leftColumn := range left {
		rightColumn, ok := right[name]
		if !ok {
			diff[name] = DiffLeftOnly
			continue
		}
		if columnDiff := leftColumn.Diff(rightColumn); len(columnDiff) > 0 {
			diff[name] = columnDiff
		}
	}
	for name := range right {
		if _, ok := left[name]; !ok {
			diff[name] = DiffRightOnly
		}
	}
	return diff
}

// ColumnsFromMetadata builds columns from the platform's columnMetadata mapping.
// When metadata is present, types and lengths come from storage-provided entries and
// descriptions from the first matching entry of any provider. When only a plain list
// of column names is available, columns carry just the name and primary flag.
// columnNames drives the resulting order. Metadata-only names follow, sorted.
func ColumnsFromMetadata(columnMetadata map[string]Metadata, primaryKey []string, columnNames []string) Columns {
	pk := utils.NewSet(primaryKey...)
	if len(columnMetadata) > 0 {
		columns := make(Columns, 0, len(columnMetadata))
		leftover := utils.NewSet[string]()
		for name := range columnMetadata {
			leftover.Put(name)
		}
		for _, name := range columnNames {
			metadata, ok := columnMetadata[name]
			if !ok {
				continue
			}
			leftover.Remove(name)
			columns = append(columns, columnFromMetadata(name, metadata, pk.Contains(name)))
		}
		for _, name := range leftover.ToSlice() {
			columns = append(columns, columnFromMetadata(name, columnMetadata[name], pk.Contains(name)))
		}
		return columns
	}
	if len(columnNames) > 0 {
		columns := make(Columns, 0, len(columnNames))
		for _, name := range columnNames {
			columns = append(columns, Column{Name: name, Primary: pk.Contains(name)})
		}
		return columns
	}
	return Columns{}
}

func columnFromMetadata(name string, metadata Metadata, primary bool) Column {
	index := metadata.Index()
	columnType, _ := index.Get(MetaKeyBaseType, MetaProviderStorage)
	length, _ := index.Get(MetaKeyLength, MetaProviderStorage)
	description, _ := index.GetAny(MetaKeyDescription)
	return Column{
		Name:        name,
		Type:        columnType,
		Description: description,
		Primary:     primary,
		Length:      length,
	}
}
