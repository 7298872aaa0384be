package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/tabcheck-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set TabCheck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("contamination: %.3f\n", cfg.Contamination)
		fmt.Printf("seed: %d\n", cfg.Seed)
		fmt.Printf("trees: %d\n", cfg.Trees)
		fmt.Printf("subsample: %d\n", cfg.Subsample)
		if cfg.Delimiter != "" {
			fmt.Printf("delimiter: %s\n", cfg.Delimiter)
		}
		if len(cfg.MissingMarkers) > 0 {
			fmt.Printf("missing_markers: %s\n", strings.Join(cfg.MissingMarkers, ","))
		}
		fmt.Printf("format: %s\n", cfg.Format)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "contamination":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f <= 0 || f > 0.5 {
				return fmt.Errorf("invalid contamination: %v (use a value in (0, 0.5])", val)
			}
			cfg.Contamination = f
		case "seed":
			i, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid int for seed: %w", err)
			}
			cfg.Seed = i
		case "trees":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for trees: %v", val)
			}
			cfg.Trees = i
		case "subsample":
			i, err := strconv.Atoi(val)
			if err != nil || i <= 0 {
				return fmt.Errorf("invalid int for subsample: %v", val)
			}
			cfg.Subsample = i
		case "delimiter":
			switch val {
			case ",", ";", "tab":
				cfg.Delimiter = val
			default:
				return fmt.Errorf("invalid delimiter: %s (use ','|';'|'tab')", val)
			}
		case "missing_markers":
			cfg.MissingMarkers = strings.Split(val, ",")
		case "format":
			switch val {
			case "text", "yaml":
				cfg.Format = val
			default:
				return fmt.Errorf("invalid format: %s (use text or yaml)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
