package types

// Metadata keys and providers used by the platform to annotate tables and columns
const (
	MetaKeyDescription = "KBC.description"
	MetaKeyBaseType    = "KBC.datatype.basetype"
	MetaKeyLength      = "KBC.datatype.length"

	MetaProviderStorage = "storage"
	MetaProviderUser    = "user"
)

// MetadataEntry is a single key/value/provider annotation attached to a table or column
type MetadataEntry struct {
	ID        string `json:"id,omitempty"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Provider  string `json:"provider,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type Metadata []MetadataEntry

type metadataKey struct {
	key      string
	provider string
}

// MetadataIndex provides O(1) lookups over a metadata list.
// The first entry for a given key (and key+provider pair) wins,
// matching the order in which the platform returns entries.
type MetadataIndex struct {
	byKeyProvider map[metadataKey]string
	byKey         map[string]string
}

func (m Metadata) Index() *MetadataIndex {
	index := &MetadataIndex{
		byKeyProvider: make(map[metadataKey]string, len(m)),
		byKey:         make(map[string]string, len(m)),
	}
	for _, entry := range m {
		kp := metadataKey{key: entry.Key, provider: entry.Provider}
		if _, ok := index.byKeyProvider[kp]; !ok {
			index.byKeyProvider[kp] = entry.Value
		}
		if _, ok := index.byKey[entry.Key]; !ok {
			index.byKey[entry.Key] = entry.Value
		}
	}
	return index
}

// Get returns the value of the first entry matching both key and provider
func (i *MetadataIndex) Get(key, provider string) (string, bool) {
	value, ok := i.byKeyProvider[metadataKey{key: key, provider: provider}]
	return value, ok
}

// GetAny returns the value of the first entry matching key, regardless of provider
func (i *MetadataIndex) GetAny(key string) (string, bool) {
	value, ok := i.byKey[key]
	return value, ok
}
