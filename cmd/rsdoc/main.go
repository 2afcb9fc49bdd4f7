package main

import (
	"encoding/json"
	"fmt"
	"os"

	"rsdoc/internal/config"
	"rsdoc/internal/generator"
	"rsdoc/internal/item"
	"rsdoc/internal/scanner"
	"rsdoc/pkg/log"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "rsdoc",
		Short:         "Rust doc-comment template generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	configPath string
	filePath   string
	cursorLine int
	verbose    bool

	asJSON        bool
	noExamples    bool
	publicOnly    bool
	safetyDetails bool
)

func main() {
	defer func() { _ = log.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&filePath, "file", "f", "", "Rust source file to read")
	rootCmd.PersistentFlags().IntVarP(&cursorLine, "line", "l", 0, "1-based line the doc comment is typed on")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	generateCmd.Flags().BoolVar(&asJSON, "json", false, "Emit a JSON envelope instead of raw template text")
	generateCmd.Flags().BoolVar(&noExamples, "no-examples", false, "Suppress all # Examples sections")
	generateCmd.Flags().BoolVar(&publicOnly, "public-only", false, "Emit examples only for public or extern items")
	generateCmd.Flags().BoolVar(&safetyDetails, "safety-details", false, "Include fixed caller-obligation bullets in # Safety")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadBuffer reads the source file and converts the 1-based --line flag to
// the scanner's 0-based cursor.
func loadBuffer() (*scanner.Buffer, int, error) {
	if filePath == "" {
		return nil, 0, fmt.Errorf("--file is required")
	}
	if cursorLine < 1 {
		return nil, 0, fmt.Errorf("--line must be a positive 1-based line number")
	}

	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read source file: %w", err)
	}
	return scanner.NewBufferFromString(string(raw)), cursorLine - 1, nil
}

// resolveOptions layers explicit flags over the config file over defaults.
func resolveOptions(cmd *cobra.Command) generator.Options {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Logger().Warnw("Falling back to default options", "config", configPath, "error", err)
		cfg = &config.Config{}
	}
	opts := cfg.Options()

	if cmd.Flags().Changed("no-examples") {
		opts.IncludeExamples = !noExamples
	}
	if cmd.Flags().Changed("public-only") {
		opts.ExamplesOnlyForPublicOrExtern = publicOnly
	}
	if cmd.Flags().Changed("safety-details") {
		opts.IncludeSafetyDetails = safetyDetails
	}
	return opts
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a doc-comment template for the item after the cursor",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetVerbose(verbose)

		buf, cursor, err := loadBuffer()
		if err != nil {
			return err
		}
		opts := resolveOptions(cmd)

		log.Logger().Debugw("Scanning for a declaration", "file", filePath, "cursor", cursor)
		template, ok := generator.Generate(buf, cursor, opts)
		if !ok {
			return fmt.Errorf("no documentable item found after line %d", cursorLine)
		}

		if asJSON {
			out := struct {
				File     string `json:"file"`
				Line     int    `json:"line"`
				Template string `json:"template"`
			}{File: filePath, Line: cursorLine, Template: template}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		fmt.Println(template)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the normalized signature and classified kind after the cursor",
	RunE: func(cmd *cobra.Command, args []string) error {
		log.SetVerbose(verbose)

		buf, cursor, err := loadBuffer()
		if err != nil {
			return err
		}

		sig, ok := scanner.Scan(buf, cursor)
		if !ok {
			return fmt.Errorf("no declaration found after line %d", cursorLine)
		}
		it := item.Classify(sig)

		out := struct {
			Signature string `json:"signature"`
			Kind      string `json:"kind"`
		}{Signature: it.Signature, Kind: it.Kind.String()}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
