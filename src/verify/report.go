package verify

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/sofmeright/gauntlet/src/project"
	"github.com/sofmeright/gauntlet/src/toolchain"
)

// Report is the final aggregate of one verification run: every method
// result in declared order plus the tool availability that gated them.
// It is assembled once after all methods have run and read-only afterwards.
type Report struct {
	Results []MethodResult     `json:"results"`
	Tools   []toolchain.Status `json:"tools"`
	Project *project.Info      `json:"project,omitempty"`
	Elapsed time.Duration      `json:"elapsed_ns"`
}

// fold assembles the report from per-method results collected by value.
// Counts are derived on demand; there is no other state to fold.
func fold(results []MethodResult, avail toolchain.Availability, info *project.Info, elapsed time.Duration) *Report {
	tools := make([]toolchain.Status, 0, len(toolchain.All()))
	for _, t := range toolchain.All() {
		tools = append(tools, avail[t])
	}
	return &Report{
		Results: results,
		Tools:   tools,
		Project: info,
		Elapsed: elapsed,
	}
}

// Total returns the number of methods considered, including skipped ones.
func (r *Report) Total() int { return len(r.Results) }

// Built counts methods whose build phase succeeded.
func (r *Report) Built() int {
	n := 0
	for _, res := range r.Results {
		if res.Built {
			n++
		}
	}
	return n
}

// Functional counts methods whose artifact passed the smoke test.
func (r *Report) Functional() int {
	n := 0
	for _, res := range r.Results {
		if res.Functional {
			n++
		}
	}
	return n
}

// WriteJSON renders the report as indented JSON, the machine-readable
// companion to the terminal output.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Exit codes consumed by CI pipelines.
const (
	ExitOK            = 0 // every built method produced a functional binary
	ExitNothingBuilt  = 1 // no method could be built at all
	ExitNotFunctional = 2 // something built, nothing passed its smoke test
)

// ExitCode maps aggregate counts to the process exit code. It depends only
// on the two counts, never on which specific methods succeeded.
func ExitCode(built, functional int) int {
	switch {
	case built == 0:
		return ExitNothingBuilt
	case functional == 0:
		return ExitNotFunctional
	default:
		return ExitOK
	}
}

// ExitCode returns the exit code for this report.
func (r *Report) ExitCode() int {
	return ExitCode(r.Built(), r.Functional())
}

// ExitError carries a nonzero harness exit code up through cobra to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("verification failed (exit code %d)", e.Code)
}
