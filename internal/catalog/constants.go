package catalog

// Catalog file names, relative to the catalog directory
const (
	TemplatesFileName = "templates.json"
	BalanceFileName   = "balance.json"
)

// Schema names registered with the validation package
const (
	TemplatesSchema = "templates.schema.json"
	BalanceSchema   = "balance.schema.json"
)

// Error messages
const (
	ErrMsgReadFileFailed       = "failed to read catalog file %s: %w"
	ErrMsgParseFileFailed      = "failed to parse catalog file %s: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
	ErrFmtDuplicateTemplate    = "%w: duplicate template id %d"
	ErrFmtDuplicateBonusList   = "%w: duplicate bonus list id %d"
	ErrFmtDuplicateArtifactPow = "%w: duplicate artifact power id %d"
	ErrFmtRecordInvalid        = "%w: %s"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)
