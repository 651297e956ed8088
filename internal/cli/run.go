package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/re-cinq/gauss/internal/metrics"
	"github.com/re-cinq/gauss/internal/runner"
	"github.com/spf13/cobra"
)

var runOut string

var runCmd = &cobra.Command{
	Use:   "run [job.yaml]",
	Short: "Validate a job file, render it and pipe it into g16",
	Long: `Validate a job file, render it and pipe it into g16.

g16 runs in the job file's directory so a relative checkpoint path lands next
to the job file. Its output is written to <name>.log next to the job file, or
to --out ("-" for stdout). Two runs sharing a checkpoint file are refused.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		path := jobPaths(args)[0]
		job, err := s.loadJob(path)
		if err != nil {
			return err
		}

		dir := filepath.Dir(path)
		checkpoint := job.Job().Checkpoint
		if !filepath.IsAbs(checkpoint) {
			checkpoint = filepath.Join(dir, checkpoint)
		}
		unlock, err := runner.AcquireCheckpointLock(checkpoint)
		if err != nil {
			if runner.IsLockHeld(err) {
				s.log.Warnw("checkpoint busy", "checkpoint", checkpoint)
			}
			return err
		}
		defer unlock()

		out, closeOut, err := openRunOutput(cmd, path)
		if err != nil {
			return err
		}
		defer closeOut()

		ctx, cancel := signalContext()
		defer cancel()

		metrics.Renders.WithLabelValues(metrics.Layout(job.HasGPU())).Inc()
		s.log.Infow("starting g16", "file", path, "command", s.settings.G16.Command, "checkpoint", checkpoint)

		res, err := runner.Run(ctx, job, runner.Options{
			Command:    s.settings.G16.Command,
			Args:       s.settings.G16.Args,
			Dir:        dir,
			ScratchDir: s.settings.G16.ScratchDir,
			Stdout:     out,
			Stderr:     cmd.ErrOrStderr(),
		})
		if res != nil {
			metrics.RunDuration.Observe(res.Duration.Seconds())
		}

		var exitErr *runner.ExitError
		switch {
		case err == nil:
			metrics.Runs.WithLabelValues("success").Inc()
			s.log.Infow("g16 succeeded", "file", path, "duration", res.Duration)
			return nil
		case errors.As(err, &exitErr):
			metrics.Runs.WithLabelValues("failed").Inc()
			s.log.Errorw("g16 failed", "file", path, "exit_code", exitErr.Code)
			return err
		default:
			metrics.Runs.WithLabelValues("error").Inc()
			s.log.Errorw("g16 could not run", "file", path, "err", err)
			return err
		}
	},
}

// openRunOutput opens the destination for g16's standard output.
func openRunOutput(cmd *cobra.Command, jobPath string) (io.Writer, func(), error) {
	if runOut == "-" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	path := runOut
	if path == "" {
		path = siblingPath("", jobPath, ".log")
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating g16 output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func init() {
	runCmd.Flags().StringVarP(&runOut, "out", "o", "", `file for g16 output ("-" for stdout)`)
	rootCmd.AddCommand(runCmd)
}
