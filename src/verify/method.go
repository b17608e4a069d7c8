// Package verify runs every supported build method against a project and
// aggregates the outcomes into a single report.
package verify

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sofmeright/gauntlet/src/command"
	"github.com/sofmeright/gauntlet/src/config"
	"github.com/sofmeright/gauntlet/src/toolchain"
)

// Method is one distinct way of producing the target artifact.
type Method interface {
	// Name is the stable method identifier used in reports and skip lists.
	Name() string

	// Tool names the probed external tool this method requires.
	// The zero Tool means the method has no probed dependency and is
	// always attempted (the build-script method) or decides availability
	// on its own (the container method).
	Tool() toolchain.Tool

	// Run executes the build phase and, when it succeeds, the smoke phase.
	// It must not return an error: every failure mode is folded into the
	// result so one broken method never aborts the others.
	Run(ctx context.Context, env *Env) MethodResult
}

// Methods returns all build methods in declared order. The order is
// significant: the report lists results exactly as declared here.
func Methods() []Method {
	return []Method{
		&compileMethod{name: "gcc", tool: toolchain.GCC},
		&compileMethod{name: "clang", tool: toolchain.Clang},
		&makeMethod{},
		&cmakeMethod{},
		&scriptMethod{},
		&dockerMethod{},
	}
}

// Env is the shared execution environment handed to each method.
// Methods write only inside their own scratch subdirectory; the build-script
// method is the single sanctioned exception and targets RootDir itself.
type Env struct {
	RootDir    string // project root, absolute
	ScratchDir string // recreated per run, absolute
	Target     config.Manifest
	Runner     *command.Runner
}

// methodDir returns (and creates) the isolated scratch directory for name.
func (e *Env) methodDir(name string) (string, error) {
	dir := filepath.Join(e.ScratchDir, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// smokeTest invokes the artifact with the fixed smoke flag. Exit zero is the
// sole functional signal; the flag's meaning belongs to the target program.
func (e *Env) smokeTest(ctx context.Context, dir, artifact string) command.Outcome {
	return e.Runner.Run(ctx, dir, "./"+artifact, e.Target.SmokeFlag)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
