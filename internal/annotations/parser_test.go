package annotations

import (
	"testing"

	"github.com/toyz/apiscan/internal/models"
)

func TestParseSimpleAnnotation(t *testing.T) {
	parser := NewParser()

	annotation, err := parser.Parse(`@GET`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if annotation.Kind != KindGet {
		t.Errorf("expected KindGet, got %v", annotation.Kind)
	}
	if len(annotation.Values) != 0 {
		t.Errorf("expected no values, got %v", annotation.Values)
	}
}

func TestParsePathAnnotation(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name  string
		input string
		value string
	}{
		{"double quotes", `@Path("/users")`, "/users"},
		{"single quotes", `@Path('/users')`, "/users"},
		{"spaces around argument", `@Path(  "/users/{id}"  )`, "/users/{id}"},
		{"named value", `@Path(value = "/users")`, "/users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotation, err := parser.Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if annotation.Kind != KindPath {
				t.Errorf("expected KindPath, got %v", annotation.Kind)
			}
			if annotation.FirstValue() != tt.value {
				t.Errorf("expected value %q, got %q", tt.value, annotation.FirstValue())
			}
		})
	}
}

func TestParseMediaTypeLists(t *testing.T) {
	parser := NewParser()

	t.Run("braced list", func(t *testing.T) {
		annotation, err := parser.Parse(`@Consumes({"application/json", "application/xml"})`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(annotation.Values) != 2 {
			t.Fatalf("expected 2 values, got %v", annotation.Values)
		}
		if annotation.Values[0] != "application/json" || annotation.Values[1] != "application/xml" {
			t.Errorf("unexpected values: %v", annotation.Values)
		}
	})

	t.Run("single value without braces", func(t *testing.T) {
		annotation, err := parser.Parse(`@Produces("text/plain")`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(annotation.Values) != 1 || annotation.Values[0] != "text/plain" {
			t.Errorf("unexpected values: %v", annotation.Values)
		}
	})

	t.Run("constant reference yields no values", func(t *testing.T) {
		annotation, err := parser.Parse(`@Produces(MediaType.APPLICATION_JSON)`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if annotation.Kind != KindProduces {
			t.Errorf("expected KindProduces, got %v", annotation.Kind)
		}
		if len(annotation.Values) != 0 {
			t.Errorf("expected no string values, got %v", annotation.Values)
		}
	})
}

func TestParseUnknownAnnotation(t *testing.T) {
	parser := NewParser()

	annotation, err := parser.Parse(`@Override`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if annotation.Kind != KindUnknown {
		t.Errorf("expected KindUnknown, got %v", annotation.Kind)
	}
	if annotation.Name != "Override" {
		t.Errorf("expected name 'Override', got %q", annotation.Name)
	}
}

func TestParseBlock(t *testing.T) {
	parser := NewParser()

	block := `@GET
	@Path("/users/{id}")
	@Produces({"application/json"})
	`
	parsed := parser.ParseBlock(block)
	if len(parsed) != 3 {
		t.Fatalf("expected 3 annotations, got %d", len(parsed))
	}
	if parsed[0].Kind != KindGet {
		t.Errorf("expected KindGet first, got %v", parsed[0].Kind)
	}
	if parsed[1].FirstValue() != "/users/{id}" {
		t.Errorf("expected path value, got %q", parsed[1].FirstValue())
	}
	if parsed[2].Values[0] != "application/json" {
		t.Errorf("expected media type, got %v", parsed[2].Values)
	}
}

func TestParseBlockDropsUnparseableSpans(t *testing.T) {
	parser := NewParser()

	// The second span has an argument shape the grammar rejects
	block := `@GET @Path(((bad) @Produces("application/json")`
	parsed := parser.ParseBlock(block)

	for _, annotation := range parsed {
		if annotation.Kind == KindPath && len(annotation.Values) > 0 {
			t.Errorf("malformed @Path should not produce values, got %v", annotation.Values)
		}
	}
}

func TestKindMappings(t *testing.T) {
	method, ok := KindDelete.HttpMethod()
	if !ok || method != models.MethodDelete {
		t.Errorf("expected MethodDelete, got %v (ok=%v)", method, ok)
	}

	if _, ok := KindPath.HttpMethod(); ok {
		t.Error("KindPath must not map to an HTTP method")
	}

	location, ok := KindQueryParam.ParameterLocation()
	if !ok || location != models.LocationQuery {
		t.Errorf("expected LocationQuery, got %v (ok=%v)", location, ok)
	}

	if _, ok := KindGet.ParameterLocation(); ok {
		t.Error("KindGet must not map to a parameter location")
	}

	if KindForName("NotAThing") != KindUnknown {
		t.Error("unrecognized names must map to KindUnknown")
	}

	if _, err := ParseAnnotationKind("NotAThing"); err == nil {
		t.Error("expected error for unrecognized annotation name")
	}
}
