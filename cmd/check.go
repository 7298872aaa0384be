package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/tabcheck-cli/internal/anomaly"
	"github.com/KaramelBytes/tabcheck-cli/internal/checks"
	"github.com/KaramelBytes/tabcheck-cli/internal/dataset"
	"github.com/KaramelBytes/tabcheck-cli/internal/report"
)

var (
	chkDelimiter     string
	chkOutputPath    string
	chkFormat        string
	chkContamination float64
	chkSeed          int64
	chkTrees         int
	chkSubsample     int
	chkMarkers       []string
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run data-quality checks against a CSV/TSV file",
	Long: `Loads the file and runs three diagnostics in order: missing values,
duplicate rows, and isolation-forest outlier detection over the numeric
columns. A failed load aborts the run; a failed check does not.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		var opt dataset.Options
		delim := chkDelimiter
		if delim == "" && cfg != nil {
			delim = cfg.Delimiter
		}
		switch delim {
		case "":
		case ",":
			opt.Delimiter = ','
		case ";":
			opt.Delimiter = ';'
		case "\t", "tab":
			opt.Delimiter = '\t'
		default:
			return fmt.Errorf("unsupported --delimiter: %s (use ','|';'|'tab')", delim)
		}

		runOpt := runOptions(cmd)

		t, err := dataset.Load(path, opt)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Data loaded successfully: %d rows, %d columns\n", t.NumRows(), t.NumCols())

		rep := checks.Run(t, runOpt)

		format := chkFormat
		if format == "" {
			format = "text"
			if cfg != nil && cfg.Format != "" {
				format = cfg.Format
			}
		}
		var out []byte
		switch format {
		case "text":
			out = []byte(report.Text(rep))
		case "yaml":
			out, err = report.YAML(rep)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("unsupported --format: %s (use text or yaml)", format)
		}

		if chkOutputPath != "" {
			if err := os.WriteFile(chkOutputPath, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", chkOutputPath)
			return nil
		}
		fmt.Print(string(out))
		return nil
	},
}

// runOptions merges config values with any explicitly set flags.
func runOptions(cmd *cobra.Command) checks.Options {
	opt := checks.Options{
		Forest: anomaly.ForestConfig{
			Contamination: anomaly.DefaultContamination,
			Seed:          anomaly.DefaultSeed,
			Trees:         anomaly.DefaultTrees,
			Subsample:     anomaly.DefaultSubsample,
		},
	}
	if cfg != nil {
		opt.Forest.Contamination = cfg.Contamination
		opt.Forest.Seed = cfg.Seed
		opt.Forest.Trees = cfg.Trees
		opt.Forest.Subsample = cfg.Subsample
		opt.MissingMarkers = cfg.MissingMarkers
	}
	f := cmd.Flags()
	if f.Changed("contamination") {
		opt.Forest.Contamination = chkContamination
	}
	if f.Changed("seed") {
		opt.Forest.Seed = chkSeed
	}
	if f.Changed("trees") {
		opt.Forest.Trees = chkTrees
	}
	if f.Changed("subsample") {
		opt.Forest.Subsample = chkSubsample
	}
	if f.Changed("missing-marker") {
		opt.MissingMarkers = chkMarkers
	}
	return opt
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVar(&chkDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	checkCmd.Flags().StringVarP(&chkOutputPath, "output", "o", "", "optional path to write the report")
	checkCmd.Flags().StringVar(&chkFormat, "format", "", "report format: text | yaml")
	checkCmd.Flags().Float64Var(&chkContamination, "contamination", anomaly.DefaultContamination, "assumed fraction of anomalous rows")
	checkCmd.Flags().Int64Var(&chkSeed, "seed", anomaly.DefaultSeed, "random seed for the outlier model")
	checkCmd.Flags().IntVar(&chkTrees, "trees", anomaly.DefaultTrees, "isolation forest ensemble size")
	checkCmd.Flags().IntVar(&chkSubsample, "subsample", anomaly.DefaultSubsample, "per-tree subsample size")
	checkCmd.Flags().StringSliceVar(&chkMarkers, "missing-marker", nil, "extra cell values treated as missing (repeatable)")
}
