package annotations

import (
	"fmt"

	"github.com/toyz/apiscan/internal/models"
)

// AnnotationKind represents the recognized JAX-RS annotation kinds
type AnnotationKind int

const (
	KindUnknown AnnotationKind = iota
	KindPath
	KindGet
	KindPost
	KindPut
	KindDelete
	KindPatch
	KindHead
	KindOptions
	KindConsumes
	KindProduces
	KindPathParam
	KindQueryParam
	KindHeaderParam
	KindCookieParam
	KindFormParam
)

// String returns the annotation name without the leading '@'
func (k AnnotationKind) String() string {
	switch k {
	case KindPath:
		return "Path"
	case KindGet:
		return "GET"
	case KindPost:
		return "POST"
	case KindPut:
		return "PUT"
	case KindDelete:
		return "DELETE"
	case KindPatch:
		return "PATCH"
	case KindHead:
		return "HEAD"
	case KindOptions:
		return "OPTIONS"
	case KindConsumes:
		return "Consumes"
	case KindProduces:
		return "Produces"
	case KindPathParam:
		return "PathParam"
	case KindQueryParam:
		return "QueryParam"
	case KindHeaderParam:
		return "HeaderParam"
	case KindCookieParam:
		return "CookieParam"
	case KindFormParam:
		return "FormParam"
	default:
		return "unknown"
	}
}

// kindsByName maps annotation names (without '@') to their kind. Owned by
// this package and never mutated after init.
var kindsByName = map[string]AnnotationKind{
	"Path":        KindPath,
	"GET":         KindGet,
	"POST":        KindPost,
	"PUT":         KindPut,
	"DELETE":      KindDelete,
	"PATCH":       KindPatch,
	"HEAD":        KindHead,
	"OPTIONS":     KindOptions,
	"Consumes":    KindConsumes,
	"Produces":    KindProduces,
	"PathParam":   KindPathParam,
	"QueryParam":  KindQueryParam,
	"HeaderParam": KindHeaderParam,
	"CookieParam": KindCookieParam,
	"FormParam":   KindFormParam,
}

// KindForName returns the kind for an annotation name, KindUnknown otherwise
func KindForName(name string) AnnotationKind {
	if kind, ok := kindsByName[name]; ok {
		return kind
	}
	return KindUnknown
}

// ParseAnnotationKind converts an annotation name to a kind, erroring on
// names outside the recognized set
func ParseAnnotationKind(name string) (AnnotationKind, error) {
	kind := KindForName(name)
	if kind == KindUnknown {
		return KindUnknown, fmt.Errorf("unknown annotation: @%s", name)
	}
	return kind, nil
}

// HttpMethod returns the HTTP method a kind declares, if any
func (k AnnotationKind) HttpMethod() (models.HttpMethod, bool) {
	switch k {
	case KindGet:
		return models.MethodGet, true
	case KindPost:
		return models.MethodPost, true
	case KindPut:
		return models.MethodPut, true
	case KindDelete:
		return models.MethodDelete, true
	case KindPatch:
		return models.MethodPatch, true
	case KindHead:
		return models.MethodHead, true
	case KindOptions:
		return models.MethodOptions, true
	default:
		return 0, false
	}
}

// ParameterLocation returns the binding location a kind declares, if any
func (k AnnotationKind) ParameterLocation() (models.ParameterLocation, bool) {
	switch k {
	case KindPathParam:
		return models.LocationPath, true
	case KindQueryParam:
		return models.LocationQuery, true
	case KindHeaderParam:
		return models.LocationHeader, true
	case KindCookieParam:
		return models.LocationCookie, true
	case KindFormParam:
		return models.LocationForm, true
	default:
		return 0, false
	}
}

// ParsedAnnotation represents a single parsed annotation
type ParsedAnnotation struct {
	Kind   AnnotationKind // recognized kind, KindUnknown for everything else
	Name   string         // annotation name without the leading '@'
	Values []string       // quoted string arguments, unquoted arguments dropped
	Raw    string         // original annotation text
}

// FirstValue returns the first string argument or the empty string
func (a *ParsedAnnotation) FirstValue() string {
	if len(a.Values) == 0 {
		return ""
	}
	return a.Values[0]
}
