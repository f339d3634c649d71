package keboola

import (
	"net/http"

	"github.com/keboola-community/keboola-go/appbase"
	"github.com/keboola-community/keboola-go/types"
	"github.com/keboola-community/keboola-go/utils"
)

const TablesServiceId = "keboola.tables"

const tablesInclude = "columns,bucket,metadata,columnMetadata"

type tableDefinition struct {
	Name             string             `json:"name"`
	PrimaryKeysNames []string           `json:"primaryKeysNames,omitempty"`
	Columns          []columnDefinition `json:"columns"`
}

type columnDefinition struct {
	Name       string          `json:"name"`
	Definition *typeDefinition `json:"definition,omitempty"`
}

type typeDefinition struct {
	Type   string `json:"type"`
	Length string `json:"length,omitempty"`
}

type metadataUpdateRequest struct {
	Provider        string                    `json:"provider"`
	Metadata        types.Metadata            `json:"metadata,omitempty"`
	ColumnsMetadata map[string]types.Metadata `json:"columnsMetadata,omitempty"`
}

// MetadataRecord is the metadata state returned by a metadata update
type MetadataRecord struct {
	Metadata        types.Metadata            `json:"metadata"`
	ColumnsMetadata map[string]types.Metadata `json:"columnsMetadata"`
}

// TablesClient lists, creates and deletes tables and pushes metadata,
// translating between wire JSON and the Table model
type TablesClient struct {
	appbase.Service
	storageURL string
	requester  *requester
}

func newTablesClient(baseURL string, requester *requester) *TablesClient {
	return &TablesClient{
		Service:    appbase.NewServiceBase(TablesServiceId),
		storageURL: baseURL + "/v2/storage",
		requester:  requester,
	}
}

// GetTables lists tables with columns, bucket and metadata included.
// A non-empty bucket scopes the listing to that bucket.
func (tc *TablesClient) GetTables(bucket string) ([]*types.Table, error) {
	url := utils.Ternary(bucket == "", tc.storageURL+"/tables", tc.storageURL+"/buckets/"+bucket+"/tables")
	url += "?include=" + tablesInclude
	res, err := tc.requester.requestExpecting(http.MethodGet, url, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	var apiTables []*types.APITable
	if err = responseJson.Unmarshal(res.body, &apiTables); err != nil {
		return nil, tc.NewError("failed to parse tables response: %v", err)
	}
	return utils.ArrayMap(apiTables, func(apiTable *types.APITable) *types.Table {
		return apiTable.ToTable()
	}), nil
}

// CreateTable posts a table definition into the table's bucket and returns the
// id assigned by the platform. Creation is asynchronous: the platform accepts
// the definition with status 202.
func (tc *TablesClient) CreateTable(table *types.Table) (string, error) {
	definition := &tableDefinition{
		Name:             table.Name,
		PrimaryKeysNames: table.PrimaryKeys().Names(),
		Columns: utils.ArrayMap(table.Columns, func(column types.Column) columnDefinition {
			cd := columnDefinition{Name: column.Name}
			if column.Type != "" {
				cd.Definition = &typeDefinition{Type: column.Type, Length: column.Length}
			}
			return cd
		}),
	}
	url := tc.storageURL + "/buckets/" + table.SchemaID + "/tables-definition"
	res, err := tc.requester.requestExpecting(http.MethodPost, url, definition, http.StatusAccepted)
	if err != nil {
		return "", err
	}
	created := map[string]any{}
	if err = responseJson.Unmarshal(res.body, &created); err != nil {
		return "", tc.NewError("failed to parse create table response: %v", err)
	}
	id := idToString(created["id"])
	tc.Debugf("table %s accepted for creation in bucket %s: id %s", table.Name, table.SchemaID, id)
	return id, nil
}

// DeleteTable force-deletes the table with the given id
func (tc *TablesClient) DeleteTable(tableID string) error {
	url := tc.storageURL + "/tables/" + tableID + "?force=true"
	_, err := tc.requester.requestExpecting(http.MethodDelete, url, nil, http.StatusNoContent)
	if err != nil {
		return err
	}
	tc.Debugf("deleted table %s", tableID)
	return nil
}

// UpdateTableMetadata pushes the table description and per-column descriptions
// under the user provider and returns the updated metadata record
func (tc *TablesClient) UpdateTableMetadata(table *types.Table) (*MetadataRecord, error) {
	update := &metadataUpdateRequest{Provider: types.MetaProviderUser}
	if table.Description != "" {
		update.Metadata = types.Metadata{{Key: types.MetaKeyDescription, Value: table.Description}}
	}
	if len(table.Columns) > 0 {
		columnsMetadata := map[string]types.Metadata{}
		for _, column := range table.Columns {
			if column.Description != "" {
				columnsMetadata[column.Name] = types.Metadata{{Key: types.MetaKeyDescription, Value: column.Description}}
			}
		}
		if len(columnsMetadata) > 0 {
			update.ColumnsMetadata = columnsMetadata
		}
	}
	url := tc.storageURL + "/tables/" + table.ID + "/metadata"
	res, err := tc.requester.requestExpecting(http.MethodPost, url, update, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	record := &MetadataRecord{}
	if err = responseJson.Unmarshal(res.body, record); err != nil {
		return nil, tc.NewError("failed to parse metadata response: %v", err)
	}
	return record, nil
}
