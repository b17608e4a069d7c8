package verify

import (
	"context"
	"os/exec"
	"time"

	"github.com/sofmeright/gauntlet/src/toolchain"
)

// dockerMethod builds the container image from the project Dockerfile. The
// artifact check queries the daemon for the image tag, and the smoke test
// runs inside a throwaway container instead of as a local process.
//
// Availability is decided here rather than by the prober so the method
// behaves the same when wired into a different method set; the skip is
// surfaced identically either way.
type dockerMethod struct{}

func (m *dockerMethod) Name() string         { return "docker" }
func (m *dockerMethod) Tool() toolchain.Tool { return "" }

func (m *dockerMethod) Run(ctx context.Context, env *Env) MethodResult {
	if _, err := exec.LookPath(string(toolchain.Docker)); err != nil {
		return skippedResult(m.Name(), toolchain.Docker, "docker not found on PATH")
	}

	start := time.Now()
	res := MethodResult{Method: m.Name(), Tool: toolchain.Docker}
	defer func() { res.Duration = time.Since(start) }()

	tag := env.Target.ImageTag
	build := env.Runner.Run(ctx, env.RootDir, "docker", "build", "-t", tag, ".")
	res.BuildLog = build.Combined()
	if !build.Success() {
		return res
	}

	// Exit zero alone is not trusted: the tag must actually be resolvable.
	inspect := env.Runner.Run(ctx, env.RootDir, "docker", "image", "inspect", tag)
	res.Built = inspect.Success()
	if !res.Built {
		res.BuildLog = joinLogs(res.BuildLog, inspect.Combined())
		return res
	}

	smoke := env.Runner.Run(ctx, env.RootDir, "docker", "run", "--rm", tag, env.Target.SmokeFlag)
	res.SmokeLog = smoke.Combined()
	res.Functional = smoke.Success()
	return res
}
