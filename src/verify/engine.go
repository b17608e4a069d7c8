package verify

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/sofmeright/gauntlet/src/command"
	"github.com/sofmeright/gauntlet/src/config"
	"github.com/sofmeright/gauntlet/src/project"
	"github.com/sofmeright/gauntlet/src/toolchain"
)

// Engine drives one verification run: probe tools, resolve which methods
// can run, execute them, and fold the results into a Report.
type Engine struct {
	RootDir  string
	Scratch  string // scratch directory name, relative to RootDir
	Target   config.Manifest
	Runner   *command.Runner
	Skip     map[string]bool // method names disabled by config or flags
	Parallel bool
	Jobs     int // concurrent methods when Parallel; <=0 means NumCPU

	// OnResult, when set, observes each result as it is produced. Calls
	// are serialized even in parallel mode, but arrival order is not the
	// declared order — the report is.
	OnResult func(MethodResult)

	// methods overrides the default method set in tests.
	methods []Method
}

func (e *Engine) methodSet() []Method {
	if e.methods != nil {
		return e.methods
	}
	return Methods()
}

// plan is a method resolved against tool availability: either runnable or
// skipped with a reason. Resolution happens exactly once, after the probe.
type plan struct {
	method Method
	skip   string // non-empty means skipped
}

// Run executes every method and returns the aggregate report. The only
// error it can return is a fatal workspace setup failure; per-method
// failures live inside the report.
func (e *Engine) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	scratch := filepath.Join(e.RootDir, e.Scratch)
	if err := prepareScratch(scratch); err != nil {
		return nil, err
	}

	avail := toolchain.Probe(toolchain.All())
	toolchain.DetectVersions(ctx, e.Runner, avail)

	env := &Env{
		RootDir:    e.RootDir,
		ScratchDir: scratch,
		Target:     e.Target,
		Runner:     e.Runner,
	}

	plans := e.resolve(e.methodSet(), avail)

	var results []MethodResult
	if e.Parallel {
		results = e.runParallel(ctx, env, plans)
	} else {
		results = e.runSequential(ctx, env, plans)
	}

	return fold(results, avail, project.Detect(e.RootDir), time.Since(start)), nil
}

// resolve decides once, per method, whether it runs or is skipped. Skipped
// methods still appear in the report so operators see full coverage status.
func (e *Engine) resolve(methods []Method, avail toolchain.Availability) []plan {
	plans := make([]plan, 0, len(methods))
	for _, m := range methods {
		switch {
		case e.Skip[m.Name()]:
			plans = append(plans, plan{method: m, skip: "disabled by configuration"})
		case !avail.Available(m.Tool()):
			plans = append(plans, plan{method: m, skip: fmt.Sprintf("%s not found on PATH", m.Tool())})
		default:
			plans = append(plans, plan{method: m})
		}
	}
	return plans
}

func (e *Engine) runSequential(ctx context.Context, env *Env, plans []plan) []MethodResult {
	results := make([]MethodResult, len(plans))
	for i, p := range plans {
		results[i] = e.runOne(ctx, env, p)
		if e.OnResult != nil {
			e.OnResult(results[i])
		}
	}
	return results
}

// runParallel runs methods concurrently. Each method owns its scratch
// subdirectory, so the only shared state is the results slice, which is
// written at distinct indices and read only after all goroutines finish.
func (e *Engine) runParallel(ctx context.Context, env *Env, plans []plan) []MethodResult {
	jobs := e.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	sem := semaphore.NewWeighted(int64(jobs))

	var (
		wg sync.WaitGroup
		mu sync.Mutex // serializes OnResult
	)
	results := make([]MethodResult, len(plans))

	for i, p := range plans {
		if err := sem.Acquire(ctx, 1); err != nil {
			results[i] = skippedResult(p.method.Name(), p.method.Tool(), "run cancelled")
			continue
		}
		wg.Add(1)
		go func(i int, p plan) {
			defer wg.Done()
			defer sem.Release(1)
			res := e.runOne(ctx, env, p)
			mu.Lock()
			results[i] = res
			if e.OnResult != nil {
				e.OnResult(res)
			}
			mu.Unlock()
		}(i, p)
	}
	wg.Wait()
	return results
}

func (e *Engine) runOne(ctx context.Context, env *Env, p plan) MethodResult {
	if p.skip != "" {
		return skippedResult(p.method.Name(), p.method.Tool(), p.skip)
	}
	return p.method.Run(ctx, env)
}
