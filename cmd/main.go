// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"labscan/internal/config"
	"labscan/internal/detector"
	"labscan/internal/diagnose"
	"labscan/internal/extract"
	"labscan/internal/formatters"
	csvfmt "labscan/internal/formatters/csv"
	jsonfmt "labscan/internal/formatters/json"
	textfmt "labscan/internal/formatters/text"
	"labscan/internal/help"
	"labscan/internal/observability"
	"labscan/internal/preprocessors/pdftext"
	"labscan/internal/registry"
	"labscan/internal/version"
)

// finalConfiguration is the resolved runtime configuration after merging
// defaults, config file, profile, and command-line flags (in that order).
type finalConfiguration struct {
	format           string
	confidenceLevels string
	strategies       string
	verbose          bool
	debug            bool
	noColor          bool
	diagnose         bool
}

func main() {
	inputFile := flag.String("file", "", "Path to the input file (plain text or PDF)")
	inputText := flag.String("text", "", "Lab report text to scan directly")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	profileName := flag.String("profile", "", "Profile name to use from config file")
	listProfiles := flag.Bool("list-profiles", false, "List available profiles in config file")
	outputFormat := flag.String("format", "", "Output format: text, json, csv (default: text)")
	confidenceLevels := flag.String("confidence", "", "Confidence levels to display: high, medium, low, or combinations like 'high,medium'")
	strategiesFlag := flag.String("strategies", "", "Strategies to run: pattern, table, positional, narrative, or combinations (default: all)")
	minConfidence := flag.Float64("min-confidence", 0, "Override the acceptance threshold (0..1)")
	runDiagnose := flag.Bool("diagnose", false, "Explain why extraction found little or nothing")
	verbose := flag.Bool("verbose", false, "Display detailed information for each result")
	debug := flag.Bool("debug", false, "Enable debug logging of the extraction flow")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	listParameters := flag.Bool("list-parameters", false, "List all known lab parameters and exit")
	explain := flag.String("explain", "", "Explain a strategy: pattern, table, positional, narrative")
	showVersion := flag.Bool("version", false, "Show version information")

	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		return
	}
	if *listParameters {
		printParameters()
		return
	}
	if *explain != "" {
		if err := explainStrategy(*explain); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.LoadConfigOrDefault(*configFile)

	if *listProfiles {
		printProfiles(cfg)
		return
	}

	var activeProfile *config.Profile
	if *profileName != "" {
		activeProfile = cfg.GetProfile(*profileName)
		if activeProfile == nil {
			fmt.Fprintf(os.Stderr, "Error: profile '%s' not found (available: %s)\n",
				*profileName, strings.Join(cfg.ListProfiles(), ", "))
			os.Exit(1)
		}
	}

	final := resolveConfiguration(cfg, activeProfile, flagValues{
		format:     *outputFormat,
		confidence: *confidenceLevels,
		strategies: *strategiesFlag,
		verbose:    *verbose,
		debug:      *debug,
		noColor:    *noColor,
		diagnose:   *runDiagnose,
	})

	// Colors are only useful on an interactive terminal.
	if final.noColor || *outputFile != "" || !isTerminal(os.Stdout) {
		color.NoColor = true
		final.noColor = true
	}

	text, err := readInput(*inputFile, *inputText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dcfg := cfg.DetectorConfig()
	if *minConfidence > 0 {
		if *minConfidence > 1 {
			fmt.Fprintln(os.Stderr, "Error: --min-confidence must be between 0 and 1")
			os.Exit(1)
		}
		dcfg.AcceptanceThreshold = *minConfidence
	}

	engine := extract.NewEngine(registry.Default(), dcfg)
	if final.strategies != "" && final.strategies != "all" {
		if err := engine.SelectStrategies(strings.Split(final.strategies, ",")); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if final.debug {
		engine.SetObserver(observability.NewDebugObserver(os.Stderr).StandardObserver)
	}

	resultMap := engine.Extract(text)
	results := make([]detector.Result, 0, len(resultMap))
	for _, r := range resultMap {
		results = append(results, r)
	}

	var report *diagnose.Report
	if final.diagnose || len(results) == 0 {
		rep := engine.Diagnose(text)
		report = &rep
	}

	registerFormatters()
	out, err := formatters.Export(final.format, results, report, formatters.FormatterOptions{
		ConfidenceLevel: parseConfidenceLevels(final.confidenceLevels),
		Verbose:         final.verbose,
		NoColor:         final.noColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(out), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(1)
		}
		return
	}
	fmt.Print(out)
}

type flagValues struct {
	format     string
	confidence string
	strategies string
	verbose    bool
	debug      bool
	noColor    bool
	diagnose   bool
}

func resolveConfiguration(cfg *config.Config, profile *config.Profile, flags flagValues) *finalConfiguration {
	final := &finalConfiguration{
		format:           cfg.Defaults.Format,
		confidenceLevels: cfg.Defaults.ConfidenceLevels,
		strategies:       cfg.Defaults.Strategies,
		verbose:          cfg.Defaults.Verbose,
		debug:            cfg.Defaults.Debug,
		noColor:          cfg.Defaults.NoColor,
		diagnose:         cfg.Defaults.Diagnose,
	}

	if profile != nil {
		if profile.Format != "" {
			final.format = profile.Format
		}
		if profile.ConfidenceLevels != "" {
			final.confidenceLevels = profile.ConfidenceLevels
		}
		if profile.Strategies != "" {
			final.strategies = profile.Strategies
		}
		final.verbose = final.verbose || profile.Verbose
		final.debug = final.debug || profile.Debug
		final.noColor = final.noColor || profile.NoColor
		final.diagnose = final.diagnose || profile.Diagnose
	}

	if flags.format != "" {
		final.format = flags.format
	}
	if flags.confidence != "" {
		final.confidenceLevels = flags.confidence
	}
	if flags.strategies != "" {
		final.strategies = flags.strategies
	}
	final.verbose = final.verbose || flags.verbose
	final.debug = final.debug || flags.debug
	final.noColor = final.noColor || flags.noColor
	final.diagnose = final.diagnose || flags.diagnose

	if final.format == "" {
		final.format = "text"
	}
	return final
}

// readInput resolves the scan text from --text or --file. PDF files go
// through the text preprocessor first.
func readInput(inputFile, inputText string) (string, error) {
	if inputText != "" {
		return inputText, nil
	}
	if inputFile == "" {
		return "", fmt.Errorf("no input: use --file or --text")
	}

	if strings.HasSuffix(strings.ToLower(inputFile), ".pdf") {
		doc, err := pdftext.Extract(inputFile)
		if err != nil {
			return "", err
		}
		return doc.Text, nil
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", fmt.Errorf("error reading input file: %w", err)
	}
	return string(data), nil
}

func registerFormatters() {
	formatters.Register(textfmt.NewFormatter())
	formatters.Register(jsonfmt.NewFormatter())
	formatters.Register(csvfmt.NewFormatter())
}

// parseConfidenceLevels turns "high,medium" into a lookup map. "all" or
// empty means no filtering.
func parseConfidenceLevels(levels string) map[string]bool {
	levels = strings.TrimSpace(strings.ToLower(levels))
	if levels == "" || levels == "all" {
		return nil
	}
	m := make(map[string]bool)
	for _, l := range strings.Split(levels, ",") {
		m[strings.TrimSpace(l)] = true
	}
	return m
}

func printProfiles(cfg *config.Config) {
	names := cfg.ListProfiles()
	sort.Strings(names)
	fmt.Println("Available profiles:")
	for _, name := range names {
		p := cfg.GetProfile(name)
		fmt.Printf("  %-12s %s\n", name, p.Description)
	}
}

func printParameters() {
	reg := registry.Default()
	fmt.Printf("%-24s %-28s %-14s %-10s %s\n", "KEY", "NAME", "CATEGORY", "UNIT", "PLAUSIBLE RANGE")
	for _, key := range reg.Keys() {
		def, _ := reg.Get(key)
		fmt.Printf("%-24s %-28s %-14s %-10s %g - %g\n",
			def.Key, def.DisplayName, def.Category, def.DefaultUnit(), def.PlausibleMin, def.PlausibleMax)
	}
}

func explainStrategy(name string) error {
	for _, s := range extract.DefaultStrategies() {
		if s.Name() != name {
			continue
		}
		provider, ok := s.(help.Provider)
		if !ok {
			return fmt.Errorf("strategy %s has no help available", name)
		}
		fmt.Print(help.Format(provider.GetCheckInfo()))
		return nil
	}
	return fmt.Errorf("unknown strategy: %s (available: pattern, table, positional, narrative)", name)
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
