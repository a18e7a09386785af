package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/toyz/apiscan/internal/models"
)

func sampleResources() []models.APIResource {
	return []models.APIResource{
		{
			ClassName: "UserResource",
			BasePath:  "/users",
			Endpoints: []models.Endpoint{
				{
					Path:        "/users",
					Method:      models.MethodGet,
					OperationID: "listUsers",
					Consumes:    []string{"application/json"},
					Produces:    []string{"application/json"},
				},
				{
					Path:        "/users/{id}",
					Method:      models.MethodGet,
					OperationID: "getUser",
					Parameters: []models.Parameter{
						{Name: "id", In: models.LocationPath, Type: models.TypeString, Required: true},
					},
					Consumes: []string{"application/json"},
					Produces: []string{"application/json"},
				},
				{
					Path:        "/users",
					Method:      models.MethodPost,
					OperationID: "createUser",
					Consumes:    []string{"application/json", "application/xml"},
					Produces:    []string{"application/json"},
				},
			},
		},
		{
			ClassName: "HealthResource",
			BasePath:  "/health",
			Endpoints: []models.Endpoint{
				{
					Path:        "/health",
					Method:      models.MethodGet,
					OperationID: "check",
					Consumes:    []string{"application/json"},
					Produces:    []string{"text/plain"},
				},
			},
		},
	}
}

func TestOpenAPIGenerator_Generate(t *testing.T) {
	gen := NewOpenAPIGenerator(Config{Title: "Test API", Version: "2.1.0"})
	document := gen.Generate(sampleResources())

	assert.Equal(t, "3.0.0", document.OpenAPI)
	assert.Equal(t, "Test API", document.Info.Title)
	assert.Equal(t, "2.1.0", document.Info.Version)
	require.Len(t, document.Servers, 1)
	assert.Equal(t, "http://localhost:8080", document.Servers[0].URL)

	require.Len(t, document.Paths, 3)

	users := document.Paths["/users"]
	require.NotNil(t, users.Get)
	require.NotNil(t, users.Post)
	assert.Nil(t, users.Put)

	// Summary is synthesized from method and path when none was extracted
	assert.Equal(t, "GET /users", users.Get.Summary)
	assert.Equal(t, []string{"UserResource"}, users.Get.Tags)

	// Mutating methods get a request body shaped by the consumes list
	require.NotNil(t, users.Post.RequestBody)
	assert.Contains(t, users.Post.RequestBody.Content, "application/json")
	assert.Contains(t, users.Post.RequestBody.Content, "application/xml")
	assert.Nil(t, users.Get.RequestBody)

	// Path parameters carry through with schema type and required flag
	byID := document.Paths["/users/{id}"]
	require.NotNil(t, byID.Get)
	require.Len(t, byID.Get.Parameters, 1)
	assert.Equal(t, "id", byID.Get.Parameters[0].Name)
	assert.Equal(t, "path", byID.Get.Parameters[0].In)
	assert.True(t, byID.Get.Parameters[0].Required)
	assert.Equal(t, "string", byID.Get.Parameters[0].Schema.Type)

	// Responses are shaped by the produces list
	health := document.Paths["/health"]
	require.NotNil(t, health.Get)
	response, ok := health.Get.Responses["200"]
	require.True(t, ok)
	assert.Contains(t, response.Content, "text/plain")
	assert.Equal(t, "Successful response", response.Description)
}

func TestOpenAPIGenerator_GivenSummaryWins(t *testing.T) {
	gen := NewOpenAPIGenerator(Config{Title: "Test API", Version: "1.0.0"})

	resources := []models.APIResource{{
		ClassName: "PingResource",
		Endpoints: []models.Endpoint{{
			Path:        "/ping",
			Method:      models.MethodGet,
			OperationID: "ping",
			Summary:     "Liveness probe",
			Consumes:    []string{"application/json"},
			Produces:    []string{"application/json"},
		}},
	}}

	document := gen.Generate(resources)
	assert.Equal(t, "Liveness probe", document.Paths["/ping"].Get.Summary)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	gen := NewOpenAPIGenerator(Config{Title: "Test API", Version: "1.0.0"})
	resources := sampleResources()
	document := gen.Generate(resources)

	path := filepath.Join(t.TempDir(), "openapi.yaml")
	require.NoError(t, WriteYAML(path, document))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var parsed Document
	require.NoError(t, yaml.Unmarshal(data, &parsed))

	// The re-parsed document exposes the same (path, method) pairs as the
	// extracted model
	expected := make(map[string]map[string]bool)
	for _, resource := range resources {
		for _, endpoint := range resource.Endpoints {
			if expected[endpoint.Path] == nil {
				expected[endpoint.Path] = make(map[string]bool)
			}
			expected[endpoint.Path][endpoint.Method.String()] = true
		}
	}

	actual := make(map[string]map[string]bool)
	for path, item := range parsed.Paths {
		for method := range item.Operations() {
			if actual[path] == nil {
				actual[path] = make(map[string]bool)
			}
			// Operations keys are lower-case method names
			switch method {
			case "get":
				actual[path]["GET"] = true
			case "post":
				actual[path]["POST"] = true
			case "put":
				actual[path]["PUT"] = true
			case "delete":
				actual[path]["DELETE"] = true
			case "patch":
				actual[path]["PATCH"] = true
			case "head":
				actual[path]["HEAD"] = true
			case "options":
				actual[path]["OPTIONS"] = true
			}
		}
	}

	assert.Equal(t, expected, actual)
}
