package types

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func testTable() *Table {
	return &Table{
		ID:       "in.c-main.orders",
		Name:     "orders",
		Schema:   "main",
		SchemaID: "in.c-main",
		Columns: Columns{
			{Name: "id", Type: "INTEGER", Primary: true},
			{Name: "amount", Type: "NUMERIC"},
		},
	}
}

func TestTableDiff(t *testing.T) {
	t.Run("equal tables", func(t *testing.T) {
		require.Empty(t, testTable().Diff(testTable()))
	})

	t.Run("platform assigned fields are not compared", func(t *testing.T) {
		left := testTable()
		right := testTable()
		right.ID = ""
		right.RowsCount = "120"
		require.Empty(t, left.Diff(right))
	})

	t.Run("scalar field changed", func(t *testing.T) {
		left := testTable()
		right := testTable()
		right.Description = "Orders table"
		require.Equal(t, TableDiff{
			"description": ValuePair{Left: "", Right: "Orders table"},
		}, left.Diff(right))
	})

	t.Run("column sets diverged", func(t *testing.T) {
		left := testTable()
		right := testTable()
		right.Columns = Columns{
			{Name: "id", Type: "INTEGER", Primary: true},
			{Name: "created_at", Type: "TIMESTAMP"},
		}
		require.Equal(t, TableDiff{
			"columns": ColumnsDiff{
				"amount":     DiffLeftOnly,
				"created_at": DiffRightOnly,
			},
		}, left.Diff(right))
	})

	t.Run("column field changed", func(t *testing.T) {
		left := testTable()
		right := testTable()
		right.Columns[1].Type = "STRING"
		require.Equal(t, TableDiff{
			"columns": ColumnsDiff{
				"amount": ColumnDiff{"type": {Left: "NUMERIC", Right: "STRING"}},
			},
		}, left.Diff(right))
	})

	t.Run("detection is symmetric", func(t *testing.T) {
		left := testTable()
		right := testTable()
		right.Name = "orders_v2"
		require.Equal(t, TableDiff{"name": ValuePair{Left: "orders", Right: "orders_v2"}}, left.Diff(right))
		require.Equal(t, TableDiff{"name": ValuePair{Left: "orders_v2", Right: "orders"}}, right.Diff(left))
	})

	t.Run("nil side treated as empty", func(t *testing.T) {
		require.Equal(t, TableDiff{
			"name":      ValuePair{Left: "orders", Right: ""},
			"schema":    ValuePair{Left: "main", Right: ""},
			"schema_id": ValuePair{Left: "in.c-main", Right: ""},
			"columns": ColumnsDiff{
				"id":     DiffLeftOnly,
				"amount": DiffLeftOnly,
			},
		}, testTable().Diff(nil))
		require.Empty(t, (*Table)(nil).Diff(nil))
	})
}

func TestPrimaryKeys(t *testing.T) {
	table := NewTable("orders", "in.c-main",
		Column{Name: "org", Primary: true},
		Column{Name: "amount"},
		Column{Name: "id", Primary: true},
	)
	require.Equal(t, []string{"org", "id"}, table.PrimaryKeys().Names())
}

func TestTableFromAPI(t *testing.T) {
	payload := `{
		"id": "in.c-main.orders",
		"name": "orders",
		"displayName": "orders",
		"primaryKey": ["id"],
		"columns": ["id", "amount", "created_at"],
		"rowsCount": 120,
		"isTyped": true,
		"bucket": {"id": "in.c-main", "name": "c-main", "displayName": "main"},
		"metadata": [{"id": "101", "key": "KBC.description", "value": "Orders table", "provider": "user"}],
		"columnMetadata": {
			"id": [
				{"key": "KBC.datatype.basetype", "value": "INTEGER", "provider": "storage"},
				{"key": "KBC.description", "value": "Primary identifier", "provider": "user"}
			],
			"amount": [
				{"key": "KBC.datatype.basetype", "value": "NUMERIC", "provider": "storage"},
				{"key": "KBC.datatype.length", "value": "38,9", "provider": "storage"}
			],
			"created_at": [
				{"key": "KBC.datatype.basetype", "value": "TIMESTAMP", "provider": "storage"}
			]
		}
	}`
	apiTable := APITable{}
	require.NoError(t, jsoniter.Unmarshal([]byte(payload), &apiTable))

	require.Equal(t, &Table{
		ID:          "in.c-main.orders",
		Name:        "orders",
		Schema:      "main",
		SchemaID:    "in.c-main",
		Description: "Orders table",
		RowsCount:   "120",
		NativeTypes: true,
		Columns: Columns{
			{Name: "id", Type: "INTEGER", Description: "Primary identifier", Primary: true},
			{Name: "amount", Type: "NUMERIC", Length: "38,9"},
			{Name: "created_at", Type: "TIMESTAMP"},
		},
	}, apiTable.ToTable())
}

func TestTableFromAPINoDescription(t *testing.T) {
	payload := `{
		"id": "in.c-main.orders",
		"displayName": "orders",
		"bucket": {"id": "in.c-main", "displayName": "main"},
		"metadata": [{"key": "KBC.lastUpdatedBy.component.id", "value": "keboola.orchestrator"}]
	}`
	apiTable := APITable{}
	require.NoError(t, jsoniter.Unmarshal([]byte(payload), &apiTable))
	require.Empty(t, apiTable.ToTable().Description)
}

func TestTableValidate(t *testing.T) {
	valid := NewTable("orders", "in.c-main", Column{Name: "id", Primary: true})
	require.NoError(t, valid.Validate())

	invalid := NewTable("", "in.c-main",
		Column{Name: "id"},
		Column{Name: "id"},
		Column{Name: ""},
	)
	err := invalid.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "table name is required")
	require.Contains(t, err.Error(), "duplicate column name: id")
	require.Contains(t, err.Error(), "column name is required")
}

func TestTableHash(t *testing.T) {
	table := NewTable("orders", "in.c-main", Column{Name: "id", Primary: true})
	clone := table.Clone()
	require.Equal(t, table.Hash(), clone.Hash())

	persisted := table.Clone()
	persisted.ID = "in.c-main.orders"
	persisted.RowsCount = "120"
	persisted.Columns[0].Description = "Primary identifier"
	require.Equal(t, table.Hash(), persisted.Hash())

	clone.Columns = append(clone.Columns, Column{Name: "amount"})
	require.NotEqual(t, table.Hash(), clone.Hash())
}

func TestTablePersisted(t *testing.T) {
	require.True(t, testTable().Persisted())
	require.False(t, NewTable("orders", "in.c-main").Persisted())
}
