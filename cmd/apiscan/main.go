package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/toyz/apiscan/internal/cli"
	"github.com/toyz/apiscan/internal/utils"
)

func main() {
	var (
		titleFlag     = flag.String("title", "Discovered API", "API title used in the generated documents")
		versionFlag   = flag.String("api-version", "1.0.0", "API version for the OpenAPI info block")
		ownerFlag     = flag.String("owner", "team-unknown", "Owner recorded in the catalog entry")
		lifecycleFlag = flag.String("lifecycle", "production", "Lifecycle recorded in the catalog entry")
		sourceFlag    = flag.String("source-location", "", "Source location annotation for the catalog entry (e.g. url:https://...)")
		verboseFlag   = flag.Bool("verbose", false, "Enable verbose output")
		quietFlag     = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag      = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <repository-path> [output-directory]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "JAX-RS API Discovery\n")
		fmt.Fprintf(os.Stderr, "Scans a repository for JAX-RS annotated Java files and generates an\n")
		fmt.Fprintf(os.Stderr, "OpenAPI document plus a Backstage catalog entry.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  repository-path    Root of the source tree to scan (required)\n")
		fmt.Fprintf(os.Stderr, "  output-directory   Where to write the documents (default ./output)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./my-java-repo                       # Write into ./output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./my-java-repo ./docs                # Custom output directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -title \"Billing API\" ./billing-svc   # Custom API title\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose ./my-java-repo              # Detailed output\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Error: A repository path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	outputDir := "./output"
	if len(args) == 2 {
		outputDir = args[1]
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("JAX-RS API Discovery")

	runner := cli.NewRunner(diagnostics)
	err := runner.Run(cli.Config{
		RepoPath:       args[0],
		OutputDir:      outputDir,
		Title:          *titleFlag,
		Version:        *versionFlag,
		Owner:          *ownerFlag,
		Lifecycle:      *lifecycleFlag,
		SourceLocation: *sourceFlag,
		Quiet:          *quietFlag,
	})
	if err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}

	summary := runner.Summary()
	keys, stats := cli.DescribeSummary(summary)
	diagnostics.Summary("Discovery Complete!", keys, stats)

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}
}
