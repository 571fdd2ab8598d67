// cslstatus — translation completion reports for CSL locale sets.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/POBrien333/csl-translation-status/config"
	"github.com/POBrien333/csl-translation-status/diff"
	"github.com/POBrien333/csl-translation-status/htmlreport"
	"github.com/POBrien333/csl-translation-status/langmeta"
	"github.com/POBrien333/csl-translation-status/source"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cslstatus",
		Short: "Translation completion reports for CSL locale sets",
		Long: `cslstatus — translation completion reports for CSL locale sets.

Compares every locale against the English baseline, computes per-locale
completion percentages, and writes a static HTML report tree (an overview
page plus one detail page per locale listing its untranslated terms).

Term origins (set in .cslstatus.yaml):
  github   locales-<code>.xml documents in a GitHub repository (default)
  xmldir   locales-<code>.xml documents in a local directory
  po       gettext catalogs found by glob

Commands:
  report    Fetch, diff, and write the HTML report
  locales   List the locale codes the configured origin provides
  version   Show version information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory (location of .cslstatus.yaml)")

	root.AddCommand(
		newReportCmd(),
		newLocalesCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cslstatus version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// locales (read-only: list discovered locale codes)
// ---------------------------------------------------------------------------

func newLocalesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locales",
		Short: "List the locale codes the configured origin provides",
		Long: `List the candidate locale codes discovered by the configured origin,
one per line, with the baseline excluded. Does not fetch any documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rootDir)
			if err != nil {
				return err
			}
			src, err := buildSource(cfg)
			if err != nil {
				return err
			}
			codes, err := src.Locales()
			if err != nil {
				return fmt.Errorf("discovering locales: %w", err)
			}
			for _, code := range codes {
				fmt.Println(code)
			}
			logInfo("%d locales discovered (baseline %s excluded)", len(codes), cfg.Baseline)
			return nil
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// report (full pipeline: fetch, diff, render)
// ---------------------------------------------------------------------------

func newReportCmd() *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Fetch, diff, and write the HTML report",
		Long: `Run the full pipeline: fetch the baseline and every candidate locale,
classify each baseline term as translated or untranslated, sort locales by
completion percentage, and regenerate the HTML report tree.

A locale that fails to fetch or parse is logged and skipped; a missing
baseline aborts the run before any output is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootDir, outputDir)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides config)")

	return cmd
}

func runReport(root, outputOverride string) error {
	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	if outputOverride != "" {
		cfg.OutputDir = outputOverride
	}

	src, err := buildSource(cfg)
	if err != nil {
		return err
	}

	// The baseline is mandatory: without the English reference every
	// percentage is meaningless, so this failure aborts the run.
	baseline, err := src.Baseline()
	if err != nil {
		return fmt.Errorf("fetching baseline %s: %w", cfg.Baseline, err)
	}
	if baseline.Len() == 0 {
		return fmt.Errorf("baseline %s has no terms", cfg.Baseline)
	}
	logInfo("baseline %s: %d terms", cfg.Baseline, baseline.Len())

	codes, err := src.Locales()
	if err != nil {
		return fmt.Errorf("discovering locales: %w", err)
	}
	if len(codes) == 0 {
		logWarning("no candidate locales discovered")
	}

	names := langmeta.NewTable(cfg.DisplayNames)

	var results []diff.Result
	for _, code := range codes {
		candidate, err := src.Fetch(code)
		if err != nil {
			logWarning("skipping %s: %v", code, err)
			continue
		}
		res := diff.Compare(baseline, candidate, code, names.Name(code))
		logInfo("%s (%s): %.2f%% complete, %d untranslated",
			code, res.DisplayName, res.Percentage, res.Untranslated)
		results = append(results, res)
	}

	diff.Sort(results)

	if err := htmlreport.Render(cfg.OutputDir, results, time.Now()); err != nil {
		return err
	}

	logSuccess("report for %d locales written to %s", len(results), cfg.OutputDir)
	return nil
}

// buildSource constructs the configured term origin.
func buildSource(cfg *config.File) (source.Source, error) {
	switch cfg.Origin {
	case config.OriginPO:
		return source.NewPO(cfg.POGlob), nil
	case config.OriginXMLDir:
		return source.NewXMLDir(cfg.XMLDir, cfg.Baseline), nil
	case config.OriginGitHub:
		// .env is optional; it can carry GITHUB_TOKEN for the API
		// rate limit.
		_ = godotenv.Load()
		token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
		gh := cfg.GitHub
		return source.NewGitHub(gh.Owner, gh.Repo, gh.Path, gh.Ref, cfg.Baseline, token), nil
	default:
		return nil, fmt.Errorf("unknown origin %q", cfg.Origin)
	}
}
