// Package command executes external build tooling and captures the outcome.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single command invocation.
const DefaultTimeout = 300 * time.Second

// ExitNotRun is the reserved exit code for commands that never produced a
// real OS exit status: missing executables, timeouts, spawn failures.
const ExitNotRun = -1

// Outcome is the captured result of one command invocation.
// It is never mutated after Run returns it.
type Outcome struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero.
func (o Outcome) Success() bool { return o.ExitCode == 0 }

// Combined returns stdout followed by stderr, for diagnostic logs.
func (o Outcome) Combined() string {
	if o.Stdout == "" {
		return o.Stderr
	}
	if o.Stderr == "" {
		return o.Stdout
	}
	return o.Stdout + "\n" + o.Stderr
}

// Runner runs external commands with a bounded wall-clock timeout.
type Runner struct {
	Timeout time.Duration // zero means DefaultTimeout
	Log     zerolog.Logger
}

// NewRunner returns a Runner with the default timeout and no logging.
func NewRunner() *Runner {
	return &Runner{Log: zerolog.Nop()}
}

// Run executes name with args inside dir and captures both streams.
// It never returns an error: missing tools, timeouts and spawn failures are
// folded into the Outcome with ExitNotRun and a diagnostic on Stderr.
func (r *Runner) Run(ctx context.Context, dir, name string, args ...string) Outcome {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	r.Log.Debug().
		Str("dir", dir).
		Str("cmd", name+" "+strings.Join(args, " ")).
		Msg("exec")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	out := Outcome{Stdout: stdout.String(), Stderr: stderr.String()}

	switch {
	case ctx.Err() == context.DeadlineExceeded:
		out.ExitCode = ExitNotRun
		out.Stderr = appendLine(out.Stderr, fmt.Sprintf("command timed out after %s: %s", timeout, name))
	case err == nil:
		out.ExitCode = 0
	default:
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			out.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound):
			out.ExitCode = ExitNotRun
			out.Stderr = appendLine(out.Stderr, fmt.Sprintf("command not found: %s", name))
		default:
			out.ExitCode = ExitNotRun
			out.Stderr = appendLine(out.Stderr, err.Error())
		}
	}

	r.Log.Debug().
		Int("exit", out.ExitCode).
		Dur("elapsed", elapsed).
		Msg("exec done")

	return out
}

func appendLine(s, line string) string {
	if s == "" {
		return line
	}
	return strings.TrimRight(s, "\n") + "\n" + line
}
