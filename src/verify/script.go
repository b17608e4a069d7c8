package verify

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sofmeright/gauntlet/src/toolchain"
)

// scriptMethod runs the project's own build script against the project root.
// The script produces the canonical artifact in place, so this method
// deliberately mutates shared project state and is never pre-cleaned.
// It has no probed tool dependency and is always attempted.
type scriptMethod struct{}

func (m *scriptMethod) Name() string         { return "script" }
func (m *scriptMethod) Tool() toolchain.Tool { return "" }

func (m *scriptMethod) Run(ctx context.Context, env *Env) MethodResult {
	start := time.Now()
	res := MethodResult{Method: m.Name()}
	defer func() { res.Duration = time.Since(start) }()

	out := env.Runner.Run(ctx, env.RootDir, env.Target.BuildScript, "--verbose")
	res.BuildLog = out.Combined()
	res.Built = out.Success() && fileExists(filepath.Join(env.RootDir, env.Target.Artifact))
	if !res.Built {
		return res
	}

	smoke := env.smokeTest(ctx, env.RootDir, env.Target.Artifact)
	res.SmokeLog = smoke.Combined()
	res.Functional = smoke.Success()
	return res
}
