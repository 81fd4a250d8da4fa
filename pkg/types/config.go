package types

// DocumentBackend selects how source documents are turned into text.
type DocumentBackend string

const (
	// BackendAuto picks a reader from the file extension.
	BackendAuto       DocumentBackend = "auto"
	BackendOOXML      DocumentBackend = "ooxml"
	BackendText       DocumentBackend = "text"
	BackendMarkitdown DocumentBackend = "markitdown"
)

// OutputFormat selects the bank file encoding.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// BuildConfig holds settings for the build command.
type BuildConfig struct {
	// SelfDoc is the path of the self-test source document.
	SelfDoc string `json:"self" yaml:"self"`

	// LoverDoc is the path of the lover-test source document.
	LoverDoc string `json:"lover" yaml:"lover"`

	// Output is the bank file to write (default "questionBank.json").
	Output string `json:"output" yaml:"output"`

	// Format selects json or yaml output. Empty infers from Output.
	Format OutputFormat `json:"format" yaml:"format"`

	// Backend selects the document reader.
	Backend DocumentBackend `json:"backend" yaml:"backend"`
}

// Source returns the document path configured for kind.
func (c BuildConfig) Source(kind TestKind) string {
	if kind == TestLover {
		return c.LoverDoc
	}
	return c.SelfDoc
}

// StoreConfig holds settings for the SQLite question store.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "output/questions.db").
	DBPath string `json:"db" yaml:"db"`

	// MaxResults is the default maximum number of query results (default 50).
	MaxResults int `json:"max_results" yaml:"max_results"`
}
