package verify

import (
	"context"
	"path/filepath"
	"time"

	"github.com/sofmeright/gauntlet/src/toolchain"
)

// cmakeMethod runs the two-step configure-then-build protocol: generate
// build files into a nested scratch directory with a Release build type,
// then drive the generated build.
type cmakeMethod struct{}

func (m *cmakeMethod) Name() string         { return "cmake" }
func (m *cmakeMethod) Tool() toolchain.Tool { return toolchain.CMake }

func (m *cmakeMethod) Run(ctx context.Context, env *Env) MethodResult {
	start := time.Now()
	res := MethodResult{Method: m.Name(), Tool: m.Tool()}
	defer func() { res.Duration = time.Since(start) }()

	buildDir := filepath.Join(env.ScratchDir, "cmake-build")

	configure := env.Runner.Run(ctx, env.RootDir, "cmake",
		"-S", env.RootDir, "-B", buildDir, "-DCMAKE_BUILD_TYPE=Release")
	if !configure.Success() {
		res.BuildLog = configure.Combined()
		return res
	}

	build := env.Runner.Run(ctx, buildDir, "cmake", "--build", ".", "-j4")
	res.BuildLog = joinLogs(configure.Combined(), build.Combined())
	res.Built = build.Success() && fileExists(filepath.Join(buildDir, env.Target.Artifact))
	if !res.Built {
		return res
	}

	smoke := env.smokeTest(ctx, buildDir, env.Target.Artifact)
	res.SmokeLog = smoke.Combined()
	res.Functional = smoke.Success()
	return res
}
