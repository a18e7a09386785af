package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/toyz/apiscan/internal/analyzer"
	"github.com/toyz/apiscan/internal/errors"
	"github.com/toyz/apiscan/internal/generator"
	"github.com/toyz/apiscan/internal/models"
	"github.com/toyz/apiscan/internal/utils"
)

// Output file names inside the output directory
const (
	OpenAPIFileName = "openapi.yaml"
	CatalogFileName = "catalog-info.yaml"
)

// RunSummary reports what a discovery run produced
type RunSummary struct {
	FilesScanned   int
	ResourcesFound int
	EndpointsFound int
	GeneratedFiles []string
}

// Runner coordinates the discovery process: scan, analyze, generate, write
type Runner struct {
	scanner     *DirectoryScanner
	analyzer    *analyzer.Analyzer
	diagnostics *utils.DiagnosticSystem
	summary     RunSummary
}

// NewRunner creates a new runner with the given diagnostic system
func NewRunner(diagnostics *utils.DiagnosticSystem) *Runner {
	return &Runner{
		scanner:     NewDirectoryScanner(),
		analyzer:    analyzer.NewAnalyzer(),
		diagnostics: diagnostics,
	}
}

// Summary returns the summary of the last run
func (r *Runner) Summary() RunSummary {
	return r.summary
}

// Run executes the complete discovery process. It returns an error only for
// fatal conditions; per-file failures are logged and skipped. When no
// resources are found the run succeeds without writing any output files.
func (r *Runner) Run(config Config) error {
	r.summary = RunSummary{}

	info, err := os.Stat(config.RepoPath)
	if err != nil {
		return errors.NewUsageError("repository path '%s' does not exist", config.RepoPath)
	}
	if !info.IsDir() {
		return errors.NewUsageError("repository path '%s' is not a directory", config.RepoPath)
	}

	r.diagnostics.Info("Analyzing repository: %s", config.RepoPath)

	files, err := r.scanner.ScanRepository(config.RepoPath)
	if err != nil {
		return err
	}
	r.summary.FilesScanned = len(files)
	r.diagnostics.Verbose("Found %d Java files", len(files))

	resources := r.analyzeFiles(files, config.Quiet)

	if len(resources) == 0 {
		r.diagnostics.Info("No JAX-RS APIs found in the repository")
		return nil
	}

	r.summary.ResourcesFound = len(resources)
	r.diagnostics.Info("Found %d API resources", len(resources))
	for _, resource := range resources {
		r.summary.EndpointsFound += len(resource.Endpoints)
		r.diagnostics.List("%s: %d endpoints", resource.ClassName, len(resource.Endpoints))
	}

	return r.generate(config, resources)
}

// analyzeFiles runs the analyzer over every candidate file. The returned
// slice is the run's only mutable accumulator; each resource inside it is
// immutable once appended.
func (r *Runner) analyzeFiles(files []string, quiet bool) []models.APIResource {
	var resources []models.APIResource

	var bar *utils.ProgressBar
	if !quiet && r.diagnostics.Level() >= utils.DiagnosticInfo && len(files) > 0 {
		bar = utils.NewProgressBar("Analyzing", len(files))
	}

	for _, file := range files {
		resource, err := r.analyzer.AnalyzeFile(file)
		if err != nil {
			r.diagnostics.Warn("Skipping %s: %v", file, err)
		} else if resource != nil {
			resources = append(resources, *resource)
			r.diagnostics.Verbose("Discovered %s (%d endpoints) in %s",
				resource.ClassName, len(resource.Endpoints), file)
		} else {
			r.diagnostics.Debug("No usable JAX-RS declarations in %s", file)
		}
		if bar != nil {
			bar.Increment()
		}
	}
	if bar != nil {
		bar.Finish()
	}

	return resources
}

// generate writes both output documents. Generators only run once at least
// one resource was found, so no partial output is ever written.
func (r *Runner) generate(config Config, resources []models.APIResource) error {
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return errors.WrapFileSystemError("create output directory", config.OutputDir, err)
	}

	openapiGen := generator.NewOpenAPIGenerator(generator.Config{
		Title:   config.Title,
		Version: config.Version,
	})
	document := openapiGen.Generate(resources)

	openapiPath := filepath.Join(config.OutputDir, OpenAPIFileName)
	if err := generator.WriteYAML(openapiPath, document); err != nil {
		return err
	}
	r.summary.GeneratedFiles = append(r.summary.GeneratedFiles, openapiPath)
	r.diagnostics.Success("Generated OpenAPI document: %s", openapiPath)

	catalogGen := generator.NewCatalogGenerator(generator.CatalogConfig{
		Owner:          config.Owner,
		Lifecycle:      config.Lifecycle,
		SourceLocation: config.SourceLocation,
	})
	entry := catalogGen.Generate(config.Title, OpenAPIFileName)

	catalogPath := filepath.Join(config.OutputDir, CatalogFileName)
	if err := generator.WriteYAML(catalogPath, entry); err != nil {
		return err
	}
	r.summary.GeneratedFiles = append(r.summary.GeneratedFiles, catalogPath)
	r.diagnostics.Success("Generated catalog entry: %s", catalogPath)

	return nil
}

// DescribeSummary formats the run summary for the final output block
func DescribeSummary(summary RunSummary) (keys []string, stats map[string]interface{}) {
	keys = []string{"Files scanned", "Resources found", "Endpoints found", "Documents written"}
	stats = map[string]interface{}{
		"Files scanned":     summary.FilesScanned,
		"Resources found":   summary.ResourcesFound,
		"Endpoints found":   summary.EndpointsFound,
		"Documents written": fmt.Sprintf("%d", len(summary.GeneratedFiles)),
	}
	return keys, stats
}
