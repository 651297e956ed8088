package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/re-cinq/gauss/internal/gaussian"
	"go.uber.org/zap"
)

// DefaultCommand is the Gaussian 16 executable looked up on PATH.
const DefaultCommand = "g16"

// scratchEnv is the variable g16 reads its scratch directory from.
const scratchEnv = "GAUSS_SCRDIR"

// killGrace is how long a cancelled g16 gets after SIGTERM before its
// pipes are closed and the process is killed outright.
const killGrace = 10 * time.Second

// Options configures how g16 is started.
type Options struct {
	Command    string
	Args       []string
	Dir        string
	ScratchDir string
	Stdout     io.Writer
	Stderr     io.Writer
}

// Result describes a finished g16 process.
type Result struct {
	PID      int
	ExitCode int
	Duration time.Duration
}

// ExitError is returned when g16 ran but exited non-zero.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("g16 exited with status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// Run starts g16, writes the rendered job to its standard input and waits
// for it to exit. Standard output goes to opts.Stdout. The process runs in
// its own process group, which is terminated when ctx is cancelled.
func Run(ctx context.Context, job gaussian.ValidJob, opts Options) (*Result, error) {
	command := opts.Command
	if command == "" {
		command = DefaultCommand
	}

	cmd := exec.CommandContext(ctx, command, opts.Args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	cmd.Env = buildEnv(os.Environ(), opts.ScratchDir)
	setProcGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }
	cmd.WaitDelay = killGrace

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting %s stdin: %w", command, err)
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %q: %w", command, err)
	}
	res := &Result{PID: cmd.Process.Pid}
	zap.S().Infow("g16 started", "command", command, "pid", res.PID, "gpu", job.HasGPU())

	_, writeErr := job.WriteTo(stdin)
	if err := stdin.Close(); writeErr == nil {
		writeErr = err
	}

	waitErr := cmd.Wait()
	res.Duration = time.Since(start)

	if waitErr != nil {
		var ee *exec.ExitError
		if !errors.As(waitErr, &ee) {
			return res, fmt.Errorf("waiting for %q: %w", command, waitErr)
		}
		res.ExitCode = ee.ExitCode()
		if ctx.Err() != nil {
			return res, fmt.Errorf("g16 cancelled: %w", ctx.Err())
		}
		return res, &ExitError{Code: res.ExitCode, Err: waitErr}
	}
	if writeErr != nil {
		return res, fmt.Errorf("writing %s input: %w", command, writeErr)
	}

	zap.S().Infow("g16 finished", "pid", res.PID, "duration", res.Duration)
	return res, nil
}

// buildEnv returns environ with GAUSS_SCRDIR pointed at scratch. An empty
// scratch leaves environ untouched.
func buildEnv(environ []string, scratch string) []string {
	if scratch == "" {
		return environ
	}
	return append(cleanEnv(environ, scratchEnv), scratchEnv+"="+scratch)
}

// cleanEnv returns a copy of environ with the named variables removed.
func cleanEnv(environ []string, keys ...string) []string {
	result := make([]string, 0, len(environ))
	for _, e := range environ {
		skip := false
		for _, key := range keys {
			if strings.HasPrefix(e, key+"=") {
				skip = true
				break
			}
		}
		if !skip {
			result = append(result, e)
		}
	}
	return result
}
