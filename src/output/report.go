package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/sofmeright/gauntlet/src/toolchain"
	"github.com/sofmeright/gauntlet/src/verify"
)

// Renderer writes a verification report as human-readable terminal text.
type Renderer struct {
	W       io.Writer
	Color   bool
	Verbose bool // include captured build/smoke logs for failed methods
}

// Render writes the tool table, per-method status lines, summary counts and
// the recommendation.
func (r *Renderer) Render(rep *verify.Report) {
	r.renderContext(rep)
	r.renderTools(rep)
	r.renderMethods(rep)
	r.renderSummary(rep)
}

func (r *Renderer) renderContext(rep *verify.Report) {
	if rep.Project == nil {
		return
	}
	sha := rep.Project.SHA
	if rep.Project.Dirty {
		sha += "+dirty"
	}
	kv := []KV{{Key: "commit", Value: sha}}
	if rep.Project.Branch != "" {
		kv = append(kv, KV{Key: "branch", Value: rep.Project.Branch})
	}
	ContextBlock(r.W, kv)
}

func (r *Renderer) renderTools(rep *verify.Report) {
	sec := NewSection(r.W, "Toolchain", 0, r.Color)
	ToolRows(sec, rep.Tools, r.Color)
	sec.Close()
}

// ToolRows writes one availability row per tool inside sec.
func ToolRows(sec *Section, tools []toolchain.Status, color bool) {
	for _, st := range tools {
		if st.Available {
			detail := st.Path
			if st.Version != "" {
				detail = st.Version + "  " + Dimmed(st.Path, color)
			}
			sec.Row("%-10s%s  %s", st.Tool, AvailIcon(true, color), detail)
		} else {
			sec.Row("%-10s%s  %s", st.Tool, AvailIcon(false, color), Dimmed("not found", color))
		}
	}
}

func (r *Renderer) renderMethods(rep *verify.Report) {
	sec := NewSection(r.W, "Build methods", rep.Elapsed, r.Color)
	for _, res := range rep.Results {
		sec.Row("%-10s%s  %s", res.Method, StatusIcon(res.Status(), r.Color), r.methodDetail(res))
	}
	sec.Close()

	if r.Verbose {
		r.renderLogs(rep)
	}
}

func (r *Renderer) methodDetail(res verify.MethodResult) string {
	switch {
	case res.Skipped:
		return Dimmed("skipped: "+res.SkipReason, r.Color)
	case res.Functional:
		return fmt.Sprintf("built, smoke test passed  %s", Dimmed(formatElapsed(res.Duration), r.Color))
	case res.Built:
		return fmt.Sprintf("built, smoke test FAILED  %s", Dimmed(formatElapsed(res.Duration), r.Color))
	default:
		return fmt.Sprintf("build failed  %s", Dimmed(formatElapsed(res.Duration), r.Color))
	}
}

// renderLogs dumps captured diagnostics for methods that went wrong.
func (r *Renderer) renderLogs(rep *verify.Report) {
	for _, res := range rep.Results {
		if res.Skipped || res.Functional {
			continue
		}
		sec := NewSection(r.W, res.Method+" diagnostics", 0, r.Color)
		log := res.BuildLog
		if res.Built {
			log = res.SmokeLog
		}
		for _, line := range strings.Split(strings.TrimRight(log, "\n"), "\n") {
			sec.Row("%s", line)
		}
		sec.Close()
	}
}

func (r *Renderer) renderSummary(rep *verify.Report) {
	built, functional := rep.Built(), rep.Functional()

	sec := NewSection(r.W, "Summary", 0, r.Color)
	sec.Row("methods    %d", rep.Total())
	sec.Row("built      %d/%d", built, rep.Total())
	sec.Row("functional %d/%d", functional, rep.Total())
	sec.Separator()
	for _, line := range strings.Split(Recommendation(built, functional), "\n") {
		sec.Row("%s", line)
	}
	sec.Close()
}

// Recommendation selects advice from the aggregate counts by simple
// threshold rules.
func Recommendation(built, functional int) string {
	switch {
	case built == 0:
		return "No build method succeeded.\nInstall a base toolchain (e.g. gcc and make) and re-run."
	case functional == 0:
		return "Builds succeed but no binary passes its smoke test.\nInspect the captured diagnostics above."
	case functional < built:
		return "Some builds produce non-functional binaries.\nPrefer the make or cmake methods until the rest stabilize."
	default:
		return "All buildable methods produced functional binaries."
	}
}
