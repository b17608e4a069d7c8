package verify

import (
	"time"

	"github.com/sofmeright/gauntlet/src/toolchain"
)

// MethodResult captures the outcome of one build method for one run.
// It is created once per method and never mutated afterwards.
//
// Functional is meaningful only when Built is true: a binary that was never
// produced cannot pass its smoke test.
type MethodResult struct {
	Method     string         `json:"method"`
	Tool       toolchain.Tool `json:"tool,omitempty"`
	Skipped    bool           `json:"skipped"`
	SkipReason string         `json:"skip_reason,omitempty"`
	Built      bool           `json:"built"`
	Functional bool           `json:"functional"`
	BuildLog   string         `json:"build_log,omitempty"`
	SmokeLog   string         `json:"smoke_log,omitempty"`
	Duration   time.Duration  `json:"duration_ns"`
}

// Status returns a short classification for display: "functional", "built",
// "skipped" or "failed".
func (r MethodResult) Status() string {
	switch {
	case r.Functional:
		return "functional"
	case r.Built:
		return "built"
	case r.Skipped:
		return "skipped"
	default:
		return "failed"
	}
}

// skippedResult builds the fixed-form result for a method that never ran.
func skippedResult(method string, tool toolchain.Tool, reason string) MethodResult {
	return MethodResult{
		Method:     method,
		Tool:       tool,
		Skipped:    true,
		SkipReason: reason,
	}
}
