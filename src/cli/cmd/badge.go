package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/gauntlet/src/badge"
	"github.com/sofmeright/gauntlet/src/verify"
)

var badgeOutput string

var badgeCmd = &cobra.Command{
	Use:   "badge [dir]",
	Short: "Run the gauntlet and write an SVG status badge",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBadge,
}

func init() {
	badgeCmd.Flags().StringVarP(&badgeOutput, "output", "o", "", "badge file path (default from config)")
	rootCmd.AddCommand(badgeCmd)
}

func runBadge(cmd *cobra.Command, args []string) error {
	rep, err := runGauntlet(cmd.Context(), args)
	if err != nil {
		return err
	}

	metrics := badge.EstimatedMetrics(cfg.Badge.FontSize)
	if cfg.Badge.FontFile != "" {
		metrics, err = badge.LoadFontFile(cfg.Badge.FontFile, cfg.Badge.FontSize)
		if err != nil {
			return err
		}
	}

	out := badgeOutput
	if out == "" {
		out = cfg.Badge.Output
	}

	svg := badge.New(metrics).Generate(badge.FromReport(rep, cfg.Badge.Label))
	if err := os.WriteFile(out, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("writing badge: %w", err)
	}
	fmt.Printf("badge written to %s\n", out)

	if code := rep.ExitCode(); code != verify.ExitOK {
		return &verify.ExitError{Code: code}
	}
	return nil
}
