package types

// CatalogConfig holds settings for the sketch catalog database.
type CatalogConfig struct {
	// CatalogDir is the directory holding the catalog database file.
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`
}

// ExportFormat identifies the export serialization.
type ExportFormat string

const (
	FormatYAML ExportFormat = "yaml"
	FormatJSON ExportFormat = "json"
)

// ExportConfig holds settings for sketch export.
type ExportConfig struct {
	// Format selects the export serialization: yaml or json.
	Format ExportFormat `json:"format" yaml:"format"`

	// Out is the output path; "-" or empty writes to stdout.
	Out string `json:"out,omitempty" yaml:"out,omitempty"`
}
