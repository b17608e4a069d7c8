package verify

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sofmeright/gauntlet/src/toolchain"
)

// makeMethod exercises the project Makefile in an isolated scratch copy:
// Makefile and source are copied in, then a clean step runs before the build
// step in that same directory.
type makeMethod struct{}

func (m *makeMethod) Name() string         { return "make" }
func (m *makeMethod) Tool() toolchain.Tool { return toolchain.Make }

func (m *makeMethod) Run(ctx context.Context, env *Env) MethodResult {
	start := time.Now()
	res := MethodResult{Method: m.Name(), Tool: m.Tool()}
	defer func() { res.Duration = time.Since(start) }()

	dir, err := env.methodDir(m.Name())
	if err != nil {
		res.BuildLog = err.Error()
		return res
	}
	for _, f := range []string{"Makefile", env.Target.Source} {
		if err := copyFile(filepath.Join(env.RootDir, f), dir); err != nil {
			res.BuildLog = err.Error()
			return res
		}
	}

	// A fresh directory has nothing to clean; the clean step still runs so
	// a broken clean target surfaces in the log.
	clean := env.Runner.Run(ctx, dir, "make", "clean")
	build := env.Runner.Run(ctx, dir, "make")
	res.BuildLog = joinLogs(clean.Combined(), build.Combined())
	res.Built = build.Success() && fileExists(filepath.Join(dir, env.Target.Artifact))
	if !res.Built {
		return res
	}

	smoke := env.smokeTest(ctx, dir, env.Target.Artifact)
	res.SmokeLog = smoke.Combined()
	res.Functional = smoke.Success()
	return res
}

func joinLogs(parts ...string) string {
	var s string
	for _, p := range parts {
		if p == "" {
			continue
		}
		if s != "" {
			s += "\n"
		}
		s += p
	}
	return s
}
