package cli

// Config holds the options for a discovery run
type Config struct {
	RepoPath       string // repository root to scan, must be an existing directory
	OutputDir      string // where generated documents are written
	Title          string // API display name used in both documents
	Version        string // API version for the OpenAPI info block
	Owner          string // catalog entry owner
	Lifecycle      string // catalog entry lifecycle
	SourceLocation string // optional source-location annotation for the catalog entry
	Quiet          bool   // suppress progress output
}
