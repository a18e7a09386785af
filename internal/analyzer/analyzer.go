package analyzer

import (
	"os"
	"regexp"
	"strings"

	"github.com/toyz/apiscan/internal/annotations"
	"github.com/toyz/apiscan/internal/errors"
	"github.com/toyz/apiscan/internal/models"
)

// Analyzer discovers JAX-RS resources in Java source files. Extraction is a
// pattern-matching pass over raw source text, not a Java parser: markers
// inside comments or string literals are accepted false positives.
type Analyzer struct {
	annotations *annotations.Parser
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		annotations: annotations.NewParser(),
	}
}

var (
	// resourceMarkers qualify a file as a JAX-RS resource source. This is a
	// cheap existence test, not structural validation.
	resourceMarkers = []*regexp.Regexp{
		regexp.MustCompile(`@Path\s*\(`),
		regexp.MustCompile(`@GET\s`),
		regexp.MustCompile(`@POST\s`),
		regexp.MustCompile(`@PUT\s`),
		regexp.MustCompile(`@DELETE\s`),
	}

	classDecl = regexp.MustCompile(`public\s+class\s+(\w+)`)

	// classAdjacentPath matches a @Path annotation immediately preceding the
	// class declaration
	classAdjacentPath = regexp.MustCompile(`@Path\s*\(\s*["']([^"']+)["']\s*\)\s*(?:public\s+)?class`)

	pathDecl = regexp.MustCompile(`@Path\s*\(\s*["']([^"']+)["']\s*\)`)

	// methodSpan matches a block of annotations followed by a public method
	// signature, capturing the whole annotation block and the method name.
	// The parameter list allows one level of parentheses so binding
	// annotations like @PathParam("id") stay inside the span.
	methodSpan = regexp.MustCompile(`((?:@\w+\s*(?:\([^)]*\))?\s*)*)public\s+\w+\s+(\w+)\s*\((?:[^()]|\([^)]*\))*\)`)

	// paramBinding matches a parameter-binding annotation followed by a typed
	// variable declaration, e.g. `@PathParam("id") String id`
	paramBinding = regexp.MustCompile(`@(\w+Param)\s*\(\s*["']([^"']+)["']\s*\)\s+(\w+)\s+(\w+)`)
)

// classPathProximity is how close (in characters) a standalone @Path must be
// to the class declaration to count as the class-level path.
const classPathProximity = 100

// httpMethodOrder fixes which annotation wins when a block carries more than
// one HTTP-method marker.
var httpMethodOrder = []annotations.AnnotationKind{
	annotations.KindGet,
	annotations.KindPost,
	annotations.KindPut,
	annotations.KindDelete,
	annotations.KindHead,
	annotations.KindOptions,
	annotations.KindPatch,
}

// AnalyzeFile reads and analyzes a single Java file. It returns nil without
// an error when the file does not declare a usable resource.
func (a *Analyzer) AnalyzeFile(path string) (*models.APIResource, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFileSystemError("read", path, err)
	}
	return a.AnalyzeSource(string(content)), nil
}

// AnalyzeSource analyzes Java source text. The result is a pure function of
// the text: it returns nil when the text has no resource markers or when no
// endpoints could be extracted.
func (a *Analyzer) AnalyzeSource(content string) *models.APIResource {
	if !a.isResource(content) {
		return nil
	}

	resource := &models.APIResource{
		ClassName: a.extractClassName(content),
		BasePath:  a.extractBasePath(content),
	}
	resource.Endpoints = a.extractEndpoints(content, resource.BasePath)

	if len(resource.Endpoints) == 0 {
		return nil
	}
	return resource
}

// isResource checks whether the text contains any JAX-RS marker
func (a *Analyzer) isResource(content string) bool {
	for _, marker := range resourceMarkers {
		if marker.MatchString(content) {
			return true
		}
	}
	return false
}

// extractClassName returns the first public class name, "Unknown" otherwise
func (a *Analyzer) extractClassName(content string) string {
	if match := classDecl.FindStringSubmatch(content); match != nil {
		return match[1]
	}
	return "Unknown"
}

// extractBasePath returns the class-level @Path value. A @Path syntactically
// adjacent to the class declaration wins; otherwise the first @Path in the
// file counts only if the class declaration follows within the proximity
// window.
func (a *Analyzer) extractBasePath(content string) string {
	if match := classAdjacentPath.FindStringSubmatch(content); match != nil {
		return match[1]
	}

	loc := pathDecl.FindStringSubmatchIndex(content)
	if loc == nil {
		return ""
	}
	rest := content[loc[1]:]
	if classLoc := classDecl.FindStringIndex(rest); classLoc != nil && classLoc[0] < classPathProximity {
		return content[loc[2]:loc[3]]
	}
	return ""
}

// extractEndpoints walks every annotated public method signature in source
// order. Signatures whose annotation block carries no HTTP-method marker are
// skipped silently; that is the common case for non-endpoint methods.
func (a *Analyzer) extractEndpoints(content, basePath string) []models.Endpoint {
	var endpoints []models.Endpoint

	for _, match := range methodSpan.FindAllStringSubmatchIndex(content, -1) {
		span := content[match[0]:match[1]]
		block := content[match[2]:match[3]]
		methodName := content[match[4]:match[5]]

		parsed := a.annotations.ParseBlock(block)

		method, ok := httpMethodOf(parsed)
		if !ok {
			continue
		}

		endpoint := models.Endpoint{
			Path:        combinePaths(basePath, firstPathValue(parsed)),
			Method:      method,
			OperationID: methodName,
			Parameters:  a.extractParameters(span),
			Consumes:    mediaTypesOf(parsed, annotations.KindConsumes),
			Produces:    mediaTypesOf(parsed, annotations.KindProduces),
		}
		endpoints = append(endpoints, endpoint)
	}

	return endpoints
}

// extractParameters collects parameter bindings from a full method span.
// FormParam bindings are matched but deliberately not collected; the
// generated document has no place for them without a form request body.
func (a *Analyzer) extractParameters(span string) []models.Parameter {
	var parameters []models.Parameter

	for _, match := range paramBinding.FindAllStringSubmatch(span, -1) {
		kind := annotations.KindForName(match[1])
		location, ok := kind.ParameterLocation()
		if !ok || location == models.LocationForm {
			continue
		}

		parameters = append(parameters, models.Parameter{
			Name:     match[2],
			In:       location,
			Type:     mapJavaType(match[3]),
			Required: location == models.LocationPath,
		})
	}

	return parameters
}

// httpMethodOf returns the winning HTTP method for an annotation block
func httpMethodOf(parsed []*annotations.ParsedAnnotation) (models.HttpMethod, bool) {
	present := make(map[annotations.AnnotationKind]bool, len(parsed))
	for _, annotation := range parsed {
		present[annotation.Kind] = true
	}
	for _, kind := range httpMethodOrder {
		if present[kind] {
			method, _ := kind.HttpMethod()
			return method, true
		}
	}
	return 0, false
}

// firstPathValue returns the first @Path argument in an annotation block
func firstPathValue(parsed []*annotations.ParsedAnnotation) string {
	for _, annotation := range parsed {
		if annotation.Kind == annotations.KindPath {
			return annotation.FirstValue()
		}
	}
	return ""
}

// mediaTypesOf returns the quoted media types declared for a kind, falling
// back to the JSON default when the annotation is absent or carries no
// string literals.
func mediaTypesOf(parsed []*annotations.ParsedAnnotation, kind annotations.AnnotationKind) []string {
	for _, annotation := range parsed {
		if annotation.Kind == kind && len(annotation.Values) > 0 {
			return annotation.Values
		}
	}
	return []string{models.DefaultMediaType}
}

// combinePaths joins the class-level and method-level paths with exactly one
// slash separator, normalizing leading and trailing slashes on both sides.
func combinePaths(basePath, methodPath string) string {
	if basePath == "" {
		if methodPath == "" {
			return "/"
		}
		return methodPath
	}
	if methodPath == "" {
		return basePath
	}
	return "/" + strings.Trim(basePath, "/") + "/" + strings.Trim(methodPath, "/")
}
