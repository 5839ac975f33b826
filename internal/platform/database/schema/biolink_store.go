package schema

// StoreTable represents the two-row blob table holding the users document
// and the session pointer.
type StoreTable struct {
	Table     string
	Key       string
	Value     string
	UpdatedAt string
}

// PostgresStore is the schema definition for biolink.store
var PostgresStore = StoreTable{
	Table:     "biolink.store",
	Key:       "key",
	Value:     "value",
	UpdatedAt: "updatedat",
}

// SQLiteStore is the schema definition for the SQLite store table
var SQLiteStore = StoreTable{
	Table:     "store",
	Key:       "key",
	Value:     "value",
	UpdatedAt: "updatedat",
}

// Columns returns all standard column names
func (t StoreTable) Columns() []string {
	return []string{t.Key, t.Value, t.UpdatedAt}
}
