// Command geocad walks a project directory and writes its models to disk.
// The core library never defines a CLI of its own (internal/project's
// Project/Model are pure builders); this binary is one thin consumer of
// them, adapted from the teacher's cmd/dungeongen layout.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/geocad/internal/project"
	"github.com/dshills/geocad/internal/samples"
)

const version = "0.1.0"

var (
	projectDir = flag.String("project", ".", "Project root directory")
	modelName  = flag.String("model", "", "Build only the named model (default: all models)")
	optionsFlag = flag.String("options", "", "Path to a YAML options file (default: project/options.yaml if present)")
	outputDir  = flag.String("out", "", "Output directory override (default: from options file, or '.')")
	formatFlag = flag.String("format", "", "Comma-separated export formats: stl,3mf,svg (default: from options file)")
	verbose    = flag.Bool("verbose", false, "Enable verbose logging")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("geocad version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := resolveOptions()
	if err != nil {
		return fmt.Errorf("resolving options: %w", err)
	}

	if *verbose {
		slog.Info("starting build", "project", *projectDir, "outputDir", opts.OutputDir, "formats", opts.Formats)
	}

	start := time.Now()
	ctx := context.Background()

	content := samples.Content
	if *modelName != "" {
		content = samples.Only(*modelName)
	}

	if err := project.Project(ctx, *projectDir, opts, content); err != nil {
		return err
	}

	if *verbose {
		slog.Info("build complete", "elapsed", time.Since(start))
	}
	return nil
}

func resolveOptions() (project.Options, error) {
	path := *optionsFlag
	if path == "" {
		candidate := filepath.Join(*projectDir, "options.yaml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	opts := project.DefaultOptions()
	if path != "" {
		loaded, err := project.LoadOptions(path)
		if err != nil {
			return project.Options{}, err
		}
		opts = loaded
	}

	if *outputDir != "" {
		opts.OutputDir = *outputDir
	}
	if *formatFlag != "" {
		var formats []project.Format
		for _, f := range strings.Split(*formatFlag, ",") {
			formats = append(formats, project.Format(strings.TrimSpace(f)))
		}
		opts.Formats = formats
	}
	return opts, opts.Validate()
}

func printHelp() {
	fmt.Printf("geocad version %s\n\n", version)
	fmt.Println("Builds a directory of declarative CAD models and writes them to disk.")
	fmt.Println("\nUsage:")
	fmt.Println("  geocad -project <dir> [options]")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -project string")
	fmt.Println("        Project root directory (default \".\")")
	fmt.Println("  -model string")
	fmt.Println("        Build only the named model (default: all models)")
	fmt.Println("  -options string")
	fmt.Println("        Path to a YAML options file (default: <project>/options.yaml if present)")
	fmt.Println("  -out string")
	fmt.Println("        Output directory override")
	fmt.Println("  -format string")
	fmt.Println("        Comma-separated export formats: stl,3mf,svg")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose logging")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
}
