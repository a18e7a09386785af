package models

// DefaultMediaType is assumed when a method declares no consumes/produces
const DefaultMediaType = "application/json"

// Parameter represents a single endpoint parameter binding
type Parameter struct {
	Name     string            // name from the binding annotation argument
	In       ParameterLocation // where the parameter is bound from
	Type     SchemaType        // semantic type mapped from the Java type token
	Required bool              // always true for path parameters
}

// Endpoint represents one HTTP method + path combination on a resource
type Endpoint struct {
	Path        string      // resolved full path (base path + method path)
	Method      HttpMethod  // HTTP method from the annotation block
	OperationID string      // bare method name, not deduplicated
	Summary     string      // optional summary, synthesized downstream if empty
	Description string      // optional free-form description
	Parameters  []Parameter // source order
	Consumes    []string    // media types, never empty
	Produces    []string    // media types, never empty
}

// APIResource represents one qualifying source file's endpoint declarations.
// Resources with zero endpoints are discarded by the analyzer.
type APIResource struct {
	ClassName   string // owning type name, "Unknown" when no declaration matched
	BasePath    string // class-level path, may be empty
	Description string
	Endpoints   []Endpoint // source order
}
