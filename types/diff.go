package types

import (
	"reflect"
	"strings"
)

// Markers recorded in a ColumnsDiff for column names present on one side only
const (
	DiffLeftOnly  = "left only"
	DiffRightOnly = "right only"
)

// Fields participating in structural comparison, named by their json tags.
// Fields not listed here are informational and never reported by Diff.
var (
	columnComparableFields = []string{"name", "type", "primary"}
	tableComparableFields  = []string{"name", "schema", "schema_id", "description", "native_types"}
)

// ValuePair holds the differing values of one field, left side first
type ValuePair struct {
	Left  any `json:"left"`
	Right any `json:"right"`
}

// ColumnDiff maps a column field name to its differing value pair
type ColumnDiff map[string]ValuePair

// ColumnsDiff maps a column name to either a ColumnDiff or a left/right-only marker
type ColumnsDiff map[string]any

// TableDiff maps a table field name to its differing value pair.
// The "columns" key, when present, holds a ColumnsDiff.
type TableDiff map[string]any

func diffFields(left, right any, fields []string) map[string]ValuePair {
	result := map[string]ValuePair{}
	leftValues := fieldValues(left)
	rightValues := fieldValues(right)
	for _, name := range fields {
		leftValue := leftValues[name]
		rightValue := rightValues[name]
		if !reflect.DeepEqual(leftValue, rightValue) {
			result[name] = ValuePair{Left: leftValue, Right: rightValue}
		}
	}
	return result
}

// fieldValues maps struct field values by their json tag names
func fieldValues(entity any) map[string]any {
	value := reflect.ValueOf(entity)
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}
	structType := value.Type()
	values := make(map[string]any, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		tag := structType.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		values[name] = value.Field(i).Interface()
	}
	return values
}
