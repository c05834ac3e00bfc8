package dataset

import "embed"

// SchemaFS contains the embedded dataset JSON schema.
//
//go:embed dataset-schema.json
var SchemaFS embed.FS

// schemaFile is the schema's path inside SchemaFS.
const schemaFile = "dataset-schema.json"
