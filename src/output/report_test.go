package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sofmeright/gauntlet/src/toolchain"
	"github.com/sofmeright/gauntlet/src/verify"
)

func TestRecommendation(t *testing.T) {
	cases := []struct {
		built, functional int
		wantSubstring     string
	}{
		{0, 0, "Install a base toolchain"},
		{2, 0, "Inspect the captured diagnostics"},
		{3, 1, "Prefer the make or cmake"},
		{2, 2, "All buildable methods"},
		{1, 1, "All buildable methods"},
	}
	for _, tc := range cases {
		got := Recommendation(tc.built, tc.functional)
		if !strings.Contains(got, tc.wantSubstring) {
			t.Errorf("Recommendation(%d, %d) = %q, want it to contain %q",
				tc.built, tc.functional, got, tc.wantSubstring)
		}
	}
}

func TestRenderReport(t *testing.T) {
	rep := &verify.Report{
		Results: []verify.MethodResult{
			{Method: "gcc", Tool: toolchain.GCC, Built: true, Functional: true, Duration: time.Second},
			{Method: "make", Tool: toolchain.Make, Skipped: true, SkipReason: "make not found on PATH"},
			{Method: "script", Built: true, BuildLog: "ld: warning", SmokeLog: "assertion failed"},
		},
		Tools: []toolchain.Status{
			{Tool: toolchain.GCC, Available: true, Path: "/usr/bin/gcc", Version: "12.2.0"},
			{Tool: toolchain.Make, Available: false},
		},
		Elapsed: 3 * time.Second,
	}

	var buf bytes.Buffer
	r := &Renderer{W: &buf, Color: false}
	r.Render(rep)
	out := buf.String()

	for _, want := range []string{
		"Toolchain",
		"gcc", "12.2.0",
		"not found",
		"skipped: make not found on PATH",
		"smoke test passed",
		"smoke test FAILED",
		"built      2/3",
		"functional 1/3",
		"Prefer the make or cmake",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report output missing %q\n%s", want, out)
		}
	}
}

func TestRenderVerboseIncludesDiagnostics(t *testing.T) {
	rep := &verify.Report{
		Results: []verify.MethodResult{
			{Method: "clang", Built: false, BuildLog: "undefined reference to main"},
		},
	}

	var buf bytes.Buffer
	(&Renderer{W: &buf, Color: false, Verbose: true}).Render(rep)
	if !strings.Contains(buf.String(), "undefined reference to main") {
		t.Error("verbose render must include failed build diagnostics")
	}

	buf.Reset()
	(&Renderer{W: &buf, Color: false}).Render(rep)
	if strings.Contains(buf.String(), "undefined reference to main") {
		t.Error("non-verbose render should omit raw diagnostics")
	}
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "<1ms"},
		{42 * time.Millisecond, "42ms"},
		{1500 * time.Millisecond, "1.5s"},
		{90 * time.Second, "1m30.0s"},
	}
	for _, tc := range cases {
		if got := formatElapsed(tc.d); got != tc.want {
			t.Errorf("formatElapsed(%s) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestStatusIconDistinguishesSkip(t *testing.T) {
	icons := map[string]string{}
	for _, status := range []string{"functional", "built", "skipped", "failed"} {
		icon := StatusIcon(status, false)
		for other, prev := range icons {
			if prev == icon {
				t.Errorf("status %q and %q share icon %q", status, other, icon)
			}
		}
		icons[status] = icon
	}
}
