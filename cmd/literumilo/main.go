// Command literumilo decomposes Esperanto text into its constituent
// morphemes, or reports which words fail to decompose at all.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/config"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/dict"
	"github.com/Takatakatake/Esperanto-word-decomposer-from-literumilo-202510/literumilo"
)

var (
	cfgFile      string
	inputPath    string
	outputPath   string
	mode         string
	dictPath     string
	fallbackPath string
	noFallback   bool
	rarity       int
	lint         bool
)

var rootCmd = &cobra.Command{
	Use:   "literumilo",
	Short: "Esperanto morphological analyzer and spell checker",
	Long: `literumilo decomposes Esperanto words into roots, affixes, and
grammatical endings, and can run over whole files in either morpheme or
spell-check mode. Pass --lint instead of --input/--output to print
dictionary diagnostics and exit.`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.Flags().StringVar(&cfgFile, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVar(&inputPath, "input", "", "input text file (required unless --lint)")
	rootCmd.Flags().StringVar(&outputPath, "output", "", "output file (required unless --lint)")
	rootCmd.Flags().StringVar(&mode, "mode", "morpheme", "output mode: morpheme or spellcheck")
	rootCmd.Flags().StringVar(&dictPath, "dict", "", "override dictionary TSV path")
	rootCmd.Flags().StringVar(&fallbackPath, "fallback", "", "override fallback lexicon path")
	rootCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "disable the fallback lexicon")
	rootCmd.Flags().IntVar(&rarity, "rarity", 0, "rarity threshold override (0 keeps the configured default)")
	rootCmd.Flags().BoolVar(&lint, "lint", false, "print dictionary diagnostics and exit, without analyzing any input")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if dictPath != "" {
		cfg.DictPath = dictPath
	}
	if fallbackPath != "" {
		cfg.FallbackPath = fallbackPath
	}
	if noFallback {
		cfg.FallbackEnabled = false
	}
	if rarity > 0 {
		cfg.RarityThreshold = rarity
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if lint {
		return runLint(cmd, cfg)
	}

	if inputPath == "" || outputPath == "" {
		return fmt.Errorf("--input and --output are required unless --lint is given")
	}

	morphemeMode, err := parseMode(mode)
	if err != nil {
		return err
	}

	analyzer, err := literumilo.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("building analyzer: %w", err)
	}

	n, err := analyzer.AnalyzeFile(inputPath, outputPath, morphemeMode)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", n, outputPath)
	return nil
}

// runLint loads the configured dictionary (ignoring --input/--output) and
// prints dict.Lint's diagnostics, one per line.
func runLint(cmd *cobra.Command, cfg *config.Config) error {
	store, err := loadDictForLint(cfg)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	warnings := dict.Lint(store)
	if len(warnings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no issues found")
		return nil
	}
	for _, w := range warnings {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}
	return fmt.Errorf("%d dictionary issue(s) found", len(warnings))
}

func loadDictForLint(cfg *config.Config) (*dict.Store, error) {
	if cfg.DictPath != "" {
		return dict.Load(cfg.DictPath)
	}
	return dict.LoadDefault()
}

func parseMode(m string) (bool, error) {
	switch m {
	case "morpheme":
		return true, nil
	case "spellcheck":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --mode %q (want morpheme or spellcheck)", m)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "literumilo: %v\n", err)
		os.Exit(1)
	}
}
