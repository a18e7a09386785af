package generator

import (
	"fmt"
	"strings"

	"github.com/toyz/apiscan/internal/models"
)

// Document is an OpenAPI 3.0 document
type Document struct {
	OpenAPI string              `json:"openapi" yaml:"openapi"`
	Info    Info                `json:"info" yaml:"info"`
	Servers []Server            `json:"servers" yaml:"servers"`
	Paths   map[string]PathItem `json:"paths" yaml:"paths"`
}

// Info describes the documented API
type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Server describes a server the API is reachable on
type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// PathItem holds the operations declared on one path
type PathItem struct {
	Get     *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post    *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put     *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Delete  *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
	Patch   *Operation `json:"patch,omitempty" yaml:"patch,omitempty"`
	Head    *Operation `json:"head,omitempty" yaml:"head,omitempty"`
	Options *Operation `json:"options,omitempty" yaml:"options,omitempty"`
}

// Operation describes a single endpoint operation
type Operation struct {
	OperationID string              `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string              `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

// Parameter describes an operation parameter
type Parameter struct {
	Name     string `json:"name" yaml:"name"`
	In       string `json:"in" yaml:"in"`
	Required bool   `json:"required" yaml:"required"`
	Schema   Schema `json:"schema" yaml:"schema"`
}

// RequestBody describes an operation request body
type RequestBody struct {
	Content map[string]MediaType `json:"content" yaml:"content"`
}

// Response describes one response by status code
type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

// MediaType describes a media-type-shaped body
type MediaType struct {
	Schema Schema `json:"schema" yaml:"schema"`
}

// Schema is the minimal schema shape the analyzer can derive
type Schema struct {
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Config configures the generated document's info and servers sections
type Config struct {
	Title       string
	Version     string
	Description string
	ServerURL   string
}

// OpenAPIGenerator transforms discovered resources into an OpenAPI document.
// It is a pure, stateless transform with no analysis logic.
type OpenAPIGenerator struct {
	config Config
}

// NewOpenAPIGenerator creates a new OpenAPI generator
func NewOpenAPIGenerator(config Config) *OpenAPIGenerator {
	if config.Description == "" {
		config.Description = "Auto-discovered API from JAX-RS annotations"
	}
	if config.ServerURL == "" {
		config.ServerURL = "http://localhost:8080"
	}
	return &OpenAPIGenerator{config: config}
}

// Generate builds the OpenAPI document for the discovered resources
func (g *OpenAPIGenerator) Generate(resources []models.APIResource) *Document {
	document := &Document{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:       g.config.Title,
			Version:     g.config.Version,
			Description: g.config.Description,
		},
		Servers: []Server{
			{URL: g.config.ServerURL, Description: "Local development server"},
		},
		Paths: make(map[string]PathItem),
	}

	for _, resource := range resources {
		for _, endpoint := range resource.Endpoints {
			item := document.Paths[endpoint.Path]
			setOperation(&item, endpoint.Method, g.buildOperation(resource, endpoint))
			document.Paths[endpoint.Path] = item
		}
	}

	return document
}

// buildOperation builds the operation entry for one endpoint
func (g *OpenAPIGenerator) buildOperation(resource models.APIResource, endpoint models.Endpoint) *Operation {
	summary := endpoint.Summary
	if summary == "" {
		summary = fmt.Sprintf("%s %s", endpoint.Method, endpoint.Path)
	}

	operation := &Operation{
		OperationID: endpoint.OperationID,
		Summary:     summary,
		Description: endpoint.Description,
		Tags:        []string{resource.ClassName},
		Responses: map[string]Response{
			"200": {
				Description: "Successful response",
				Content:     mediaContent(endpoint.Produces),
			},
		},
	}

	for _, parameter := range endpoint.Parameters {
		operation.Parameters = append(operation.Parameters, Parameter{
			Name:     parameter.Name,
			In:       parameter.In.String(),
			Required: parameter.Required,
			Schema:   Schema{Type: parameter.Type.String()},
		})
	}

	if endpoint.Method.IsMutation() {
		operation.RequestBody = &RequestBody{Content: mediaContent(endpoint.Consumes)}
	}

	return operation
}

// mediaContent shapes a media-type list into a content map
func mediaContent(mediaTypes []string) map[string]MediaType {
	content := make(map[string]MediaType, len(mediaTypes))
	for _, mediaType := range mediaTypes {
		content[mediaType] = MediaType{Schema: Schema{Type: "object"}}
	}
	return content
}

// setOperation assigns an operation to its method slot on a path item
func setOperation(item *PathItem, method models.HttpMethod, operation *Operation) {
	switch method {
	case models.MethodGet:
		item.Get = operation
	case models.MethodPost:
		item.Post = operation
	case models.MethodPut:
		item.Put = operation
	case models.MethodDelete:
		item.Delete = operation
	case models.MethodPatch:
		item.Patch = operation
	case models.MethodHead:
		item.Head = operation
	case models.MethodOptions:
		item.Options = operation
	}
}

// Operations returns the (method name, operation) pairs present on a path
// item, used by consumers that need to walk a parsed document.
func (p PathItem) Operations() map[string]*Operation {
	operations := make(map[string]*Operation)
	for method, operation := range map[string]*Operation{
		"get": p.Get, "post": p.Post, "put": p.Put, "delete": p.Delete,
		"patch": p.Patch, "head": p.Head, "options": p.Options,
	} {
		if operation != nil {
			operations[method] = operation
		}
	}
	return operations
}

// slugify converts an API display name into a catalog-safe identifier
func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
