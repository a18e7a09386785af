package models

import "fmt"

// HttpMethod represents an HTTP method declared by a JAX-RS method annotation
type HttpMethod int

const (
	MethodGet HttpMethod = iota
	MethodPost
	MethodPut
	MethodDelete
	MethodPatch
	MethodHead
	MethodOptions
)

// String returns the canonical upper-case method name
func (m HttpMethod) String() string {
	switch m {
	case MethodGet:
		return "GET"
	case MethodPost:
		return "POST"
	case MethodPut:
		return "PUT"
	case MethodDelete:
		return "DELETE"
	case MethodPatch:
		return "PATCH"
	case MethodHead:
		return "HEAD"
	case MethodOptions:
		return "OPTIONS"
	default:
		return "UNKNOWN"
	}
}

// ParseHttpMethod converts a method name to an HttpMethod
func ParseHttpMethod(s string) (HttpMethod, error) {
	switch s {
	case "GET":
		return MethodGet, nil
	case "POST":
		return MethodPost, nil
	case "PUT":
		return MethodPut, nil
	case "DELETE":
		return MethodDelete, nil
	case "PATCH":
		return MethodPatch, nil
	case "HEAD":
		return MethodHead, nil
	case "OPTIONS":
		return MethodOptions, nil
	default:
		return 0, fmt.Errorf("unknown HTTP method: %s", s)
	}
}

// IsMutation reports whether the method carries a request body by convention
func (m HttpMethod) IsMutation() bool {
	return m == MethodPost || m == MethodPut || m == MethodPatch
}

// ParameterLocation represents where an endpoint parameter is bound from
type ParameterLocation int

const (
	LocationPath ParameterLocation = iota
	LocationQuery
	LocationHeader
	LocationCookie
	LocationForm
)

// String returns the OpenAPI "in" value for the location
func (l ParameterLocation) String() string {
	switch l {
	case LocationPath:
		return "path"
	case LocationQuery:
		return "query"
	case LocationHeader:
		return "header"
	case LocationCookie:
		return "cookie"
	case LocationForm:
		return "formData"
	default:
		return "unknown"
	}
}

// SchemaType represents the semantic type of a parameter value
type SchemaType int

const (
	TypeString SchemaType = iota
	TypeInteger
	TypeNumber
	TypeBoolean
)

// String returns the OpenAPI schema type name
func (t SchemaType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInteger:
		return "integer"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	default:
		return "string"
	}
}
