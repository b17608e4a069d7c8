// Package badge renders the verification outcome as a shields-style SVG.
package badge

import (
	"fmt"

	"github.com/sofmeright/gauntlet/src/verify"
)

// Badge defines the content and appearance of a single badge.
type Badge struct {
	Label string // left side text
	Value string // right side text
	Color string // hex color for right side (e.g. "#4c1")
}

// Engine generates SVG badges using a specific metrics source.
type Engine struct {
	metrics *Metrics
}

// New creates a badge engine.
func New(metrics *Metrics) *Engine {
	return &Engine{metrics: metrics}
}

// Generate produces the SVG badge string.
func (e *Engine) Generate(b Badge) string {
	return e.renderSVG(b)
}

// FromReport summarizes a verification report as a badge: how many methods
// produced a functional binary out of those attempted.
func FromReport(rep *verify.Report, label string) Badge {
	if label == "" {
		label = "builds"
	}
	built, functional := rep.Built(), rep.Functional()

	b := Badge{
		Label: label,
		Value: fmt.Sprintf("%d/%d functional", functional, rep.Total()),
	}
	switch rep.ExitCode() {
	case verify.ExitOK:
		if functional < built {
			b.Color = "#dfb317" // partial: some builds are non-functional
		} else {
			b.Color = "#4c1"
		}
	default:
		b.Color = "#e05d44"
	}
	return b
}
