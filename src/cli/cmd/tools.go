package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/gauntlet/src/command"
	"github.com/sofmeright/gauntlet/src/output"
	"github.com/sofmeright/gauntlet/src/toolchain"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Probe and list the external build tools",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, args []string) error {
	avail := toolchain.Probe(toolchain.All())
	toolchain.DetectVersions(context.Background(), command.NewRunner(), avail)

	statuses := make([]toolchain.Status, 0, len(toolchain.All()))
	for _, t := range toolchain.All() {
		statuses = append(statuses, avail[t])
	}

	color := output.UseColor()
	sec := output.NewSection(os.Stdout, "Toolchain", 0, color)
	output.ToolRows(sec, statuses, color)
	sec.Close()
	return nil
}
