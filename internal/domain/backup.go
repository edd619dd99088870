package domain

// BackupSchemaVersion is written into every document this build produces.
// Documents without the field are treated as version 0, the pre-versioned
// export format of the first app generation.
const BackupSchemaVersion = 1

// BackupDocument is the single portable snapshot of everything persisted.
// A document produced by CreateBackupObject must always be re-ingestible
// by RestoreFromBackupObject.
type BackupDocument struct {
	SchemaVersion int            `json:"schemaVersion"`
	Menu          []MenuItem     `json:"menu"`
	Categories    []string       `json:"categories"`
	Settings      *Settings      `json:"settings,omitempty"`
	History       []HistoryOrder `json:"history"`
	Expenses      []Expense      `json:"expenses"`
}
