package toolchain

import (
	"context"
	"regexp"
	"strings"

	masterminds "github.com/Masterminds/semver/v3"

	"github.com/sofmeright/gauntlet/src/command"
)

// versionRe matches the first dotted version triple in tool banner output,
// e.g. "gcc (Debian 12.2.0-14) 12.2.0" or "cmake version 3.25.1".
var versionRe = regexp.MustCompile(`\b(\d+\.\d+(?:\.\d+)?)\b`)

// DetectVersions fills Status.Version for every available tool by running
// "<tool> --version" and parsing its banner. Failures leave Version empty;
// version info is informational only and never gates a method.
func DetectVersions(ctx context.Context, runner *command.Runner, avail Availability) {
	for t, st := range avail {
		if !st.Available {
			continue
		}
		out := runner.Run(ctx, "", string(t), "--version")
		if !out.Success() {
			continue
		}
		st.Version = parseVersion(out.Stdout)
		avail[t] = st
	}
}

// parseVersion extracts and normalizes the first version triple in banner.
func parseVersion(banner string) string {
	line, _, _ := strings.Cut(banner, "\n")
	m := versionRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	v, err := masterminds.NewVersion(m[1])
	if err != nil {
		return m[1]
	}
	return v.String()
}
