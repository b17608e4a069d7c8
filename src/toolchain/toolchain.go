// Package toolchain probes the host for the external build tools the
// verification methods depend on.
package toolchain

import "os/exec"

// Tool identifies one external build tool.
type Tool string

const (
	GCC    Tool = "gcc"
	Clang  Tool = "clang"
	Make   Tool = "make"
	CMake  Tool = "cmake"
	Docker Tool = "docker"
)

// All returns the probed tools in display order.
func All() []Tool {
	return []Tool{GCC, Clang, Make, CMake, Docker}
}

// Status reports the availability of one tool.
type Status struct {
	Tool      Tool
	Available bool
	Path      string // resolved executable path, empty if unavailable
	Version   string // best-effort detected version, may be empty
}

// Availability is the probe result for a full tool set.
type Availability map[Tool]Status

// Available reports whether the given tool was found on PATH.
// The zero-value Tool is treated as "no dependency" and is always available.
func (a Availability) Available(t Tool) bool {
	if t == "" {
		return true
	}
	return a[t].Available
}

// Probe locates each tool on PATH. It only checks presence; it never runs
// the tool itself, so a broken installation still probes as available.
func Probe(tools []Tool) Availability {
	avail := make(Availability, len(tools))
	for _, t := range tools {
		st := Status{Tool: t}
		if path, err := exec.LookPath(string(t)); err == nil {
			st.Available = true
			st.Path = path
		}
		avail[t] = st
	}
	return avail
}
