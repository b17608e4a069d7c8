package verify

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sofmeright/gauntlet/src/toolchain"
)

// compileMethod builds the target with a single direct compiler invocation.
// There is one instance per compiler; each compiles into its own scratch
// subdirectory with a compiler-suffixed artifact name so the two outputs
// can never collide or shadow one another.
type compileMethod struct {
	name string
	tool toolchain.Tool
}

func (m *compileMethod) Name() string         { return m.name }
func (m *compileMethod) Tool() toolchain.Tool { return m.tool }

func (m *compileMethod) Run(ctx context.Context, env *Env) MethodResult {
	start := time.Now()
	res := MethodResult{Method: m.name, Tool: m.tool}
	defer func() { res.Duration = time.Since(start) }()

	dir, err := env.methodDir(m.name)
	if err != nil {
		res.BuildLog = err.Error()
		return res
	}

	artifact := env.Target.Artifact + "_" + m.name
	args := append([]string(nil), env.Target.CompileFlags...)
	args = append(args, "-o", artifact, filepath.Join(env.RootDir, env.Target.Source))
	args = append(args, env.Target.LinkFlags...)

	out := env.Runner.Run(ctx, dir, string(m.tool), args...)
	res.BuildLog = out.Combined()
	res.Built = out.Success() && fileExists(filepath.Join(dir, artifact))
	if !res.Built {
		return res
	}

	smoke := env.smokeTest(ctx, dir, artifact)
	res.SmokeLog = smoke.Combined()
	res.Functional = smoke.Success()
	return res
}
