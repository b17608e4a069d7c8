package verify

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sofmeright/gauntlet/src/command"
	"github.com/sofmeright/gauntlet/src/config"
	"github.com/sofmeright/gauntlet/src/toolchain"
)

// stubMethod lets engine tests control outcomes without spawning builds.
type stubMethod struct {
	name   string
	tool   toolchain.Tool
	result MethodResult
	delay  time.Duration
}

func (s *stubMethod) Name() string         { return s.name }
func (s *stubMethod) Tool() toolchain.Tool { return s.tool }

func (s *stubMethod) Run(ctx context.Context, env *Env) MethodResult {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	res := s.result
	res.Method = s.name
	res.Tool = s.tool
	return res
}

func testEngine(t *testing.T, methods []Method) *Engine {
	t.Helper()
	return &Engine{
		RootDir: t.TempDir(),
		Scratch: "scratch",
		Target:  config.DefaultManifest(),
		Runner:  command.NewRunner(),
		methods: methods,
	}
}

func TestResolveUnavailableToolSkips(t *testing.T) {
	e := &Engine{Skip: map[string]bool{"clang": true}}
	avail := toolchain.Availability{
		toolchain.GCC: {Tool: toolchain.GCC, Available: true},
	}
	methods := []Method{
		&stubMethod{name: "gcc", tool: toolchain.GCC},
		&stubMethod{name: "clang", tool: toolchain.Clang},
		&stubMethod{name: "make", tool: toolchain.Make},
		&stubMethod{name: "script"},
	}

	plans := e.resolve(methods, avail)
	if len(plans) != 4 {
		t.Fatalf("plans = %d, want 4 (skips must not drop methods)", len(plans))
	}
	if plans[0].skip != "" {
		t.Errorf("gcc skipped: %q", plans[0].skip)
	}
	if plans[1].skip != "disabled by configuration" {
		t.Errorf("clang skip = %q", plans[1].skip)
	}
	if plans[2].skip == "" {
		t.Error("make should be skipped with its tool unavailable")
	}
	if plans[3].skip != "" {
		t.Errorf("script has no tool dependency, got skip %q", plans[3].skip)
	}
}

func TestRunPreservesDeclaredOrder(t *testing.T) {
	methods := []Method{
		&stubMethod{name: "a", result: MethodResult{Built: true, Functional: true}},
		&stubMethod{name: "b", result: MethodResult{Built: true}},
		&stubMethod{name: "c"},
	}
	e := testEngine(t, methods)

	rep, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"a", "b", "c"}
	for i, res := range rep.Results {
		if res.Method != want[i] {
			t.Errorf("result[%d] = %s, want %s", i, res.Method, want[i])
		}
	}
	if rep.Built() != 2 || rep.Functional() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", rep.Built(), rep.Functional())
	}
}

func TestRunParallelSameClassifications(t *testing.T) {
	methods := []Method{
		&stubMethod{name: "a", delay: 30 * time.Millisecond, result: MethodResult{Built: true, Functional: true}},
		&stubMethod{name: "b", delay: 10 * time.Millisecond, result: MethodResult{Built: true}},
		&stubMethod{name: "c", delay: 20 * time.Millisecond},
	}
	e := testEngine(t, methods)
	e.Parallel = true
	e.Jobs = 3

	var observed int
	e.OnResult = func(MethodResult) { observed++ }

	rep, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Report order is declared order regardless of completion order.
	want := []string{"a", "b", "c"}
	for i, res := range rep.Results {
		if res.Method != want[i] {
			t.Errorf("result[%d] = %s, want %s", i, res.Method, want[i])
		}
	}
	if observed != 3 {
		t.Errorf("OnResult calls = %d, want 3", observed)
	}
	if rep.Built() != 2 || rep.Functional() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", rep.Built(), rep.Functional())
	}
}

func TestRunRecreatesScratch(t *testing.T) {
	e := testEngine(t, []Method{&stubMethod{name: "a"}})

	leftover := filepath.Join(e.RootDir, e.Scratch, "stale")
	if err := writeExecutable(t, leftover, "#!/bin/sh\n"); err != nil {
		t.Fatalf("seed leftover: %v", err)
	}

	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if fileExists(leftover) {
		t.Error("scratch directory was not recreated from empty")
	}
}

func TestRunSetupFailureIsFatal(t *testing.T) {
	e := testEngine(t, []Method{&stubMethod{name: "a"}})

	// A regular file where a scratch path component must be a directory.
	if err := writeExecutable(t, filepath.Join(e.RootDir, "blocker"), "x"); err != nil {
		t.Fatalf("seed blocker: %v", err)
	}
	e.Scratch = filepath.Join("blocker", "scratch")

	_, err := e.Run(context.Background())
	if err == nil {
		t.Fatal("expected a setup error")
	}
	var setupErr *SetupError
	if !errors.As(err, &setupErr) {
		t.Errorf("err = %T(%v), want *SetupError", err, err)
	}
}

func TestFunctionalImpliesBuilt(t *testing.T) {
	methods := []Method{
		&stubMethod{name: "a", result: MethodResult{Built: true, Functional: true}},
		&stubMethod{name: "b", result: MethodResult{Built: true}},
		&stubMethod{name: "c"},
		&stubMethod{name: "d", tool: toolchain.Tool("absent-tool")},
	}
	e := testEngine(t, methods)

	rep, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, res := range rep.Results {
		if res.Functional && !res.Built {
			t.Errorf("%s: functional without built", res.Method)
		}
		if res.Skipped && (res.Built || res.Functional) {
			t.Errorf("%s: skipped method classified as built", res.Method)
		}
	}
	// The method with an unknown tool must carry a skip diagnostic.
	last := rep.Results[3]
	if !last.Skipped || last.SkipReason == "" {
		t.Errorf("unavailable-tool method = %+v, want skip with reason", last)
	}
}
