package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sofmeright/gauntlet/src/command"
	"github.com/sofmeright/gauntlet/src/config"
	"github.com/sofmeright/gauntlet/src/output"
	"github.com/sofmeright/gauntlet/src/verify"
)

var (
	vTimeout  int
	vParallel bool
	vJSON     string
	vSkip     []string
)

var verifyCmd = &cobra.Command{
	Use:   "verify [dir]",
	Short: "Run every build method and report the results",
	Long: `Run the full build gauntlet against a project.

Probes the host for each build tool, runs every available build method
(direct gcc/clang, make, cmake, the project build script, docker), smoke
tests each produced binary, and prints an aggregate report.

Exit codes: 0 = all buildable methods functional, 1 = nothing built,
2 = builds succeed but no binary passes its smoke test.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().IntVar(&vTimeout, "timeout", 0, "per-command timeout in seconds (default from config)")
	verifyCmd.Flags().BoolVar(&vParallel, "parallel", false, "run build methods concurrently")
	verifyCmd.Flags().StringVar(&vJSON, "json", "", "also write a machine-readable report to this file")
	verifyCmd.Flags().StringSliceVar(&vSkip, "skip", nil, "method names to skip (repeatable)")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	rep, err := runGauntlet(cmd.Context(), args)
	if err != nil {
		return err
	}

	if vJSON != "" {
		f, err := os.Create(vJSON)
		if err != nil {
			return fmt.Errorf("creating json report: %w", err)
		}
		if err := rep.WriteJSON(f); err != nil {
			f.Close()
			return fmt.Errorf("writing json report: %w", err)
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if code := rep.ExitCode(); code != verify.ExitOK {
		return &verify.ExitError{Code: code}
	}
	return nil
}

// runGauntlet assembles the engine from config plus flags, runs it, and
// renders the terminal report. Shared by verify and badge.
func runGauntlet(ctx context.Context, args []string) (*verify.Report, error) {
	rootDir, err := rootDirArg(args)
	if err != nil {
		return nil, err
	}

	target, err := config.LoadManifest(rootDir)
	if err != nil {
		return nil, fmt.Errorf("loading project manifest: %w", err)
	}

	runner := command.NewRunner()
	runner.Timeout = time.Duration(cfg.Verify.TimeoutSeconds) * time.Second
	if vTimeout > 0 {
		runner.Timeout = time.Duration(vTimeout) * time.Second
	}
	if verbose {
		runner.Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}

	skip := make(map[string]bool)
	for _, name := range cfg.Verify.Skip {
		skip[name] = true
	}
	for _, name := range vSkip {
		skip[name] = true
	}

	color := output.UseColor()
	engine := &verify.Engine{
		RootDir:  rootDir,
		Scratch:  cfg.Verify.ScratchDir,
		Target:   target,
		Runner:   runner,
		Skip:     skip,
		Parallel: vParallel || cfg.Verify.Parallel,
		Jobs:     cfg.Verify.Jobs,
		OnResult: func(res verify.MethodResult) {
			fmt.Printf("  %s %s\n", output.StatusIcon(res.Status(), color), res.Method)
		},
	}

	fmt.Printf("Running build gauntlet for %s in %s\n", target.Name, rootDir)

	rep, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	renderer := &output.Renderer{W: os.Stdout, Color: color, Verbose: verbose}
	renderer.Render(rep)
	return rep, nil
}
