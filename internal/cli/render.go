package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/re-cinq/gauss/internal/gaussian"
	"github.com/re-cinq/gauss/internal/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render [job.yaml...]",
	Short: "Render job files as g16 input",
	Long: `Render job files as g16 input.

With a single job file the input is written to stdout, or to the file named
by --out. With several job files each input is written as <name>.gjf into the
directory named by --out, or next to its job file.

Nothing is written unless every job file is valid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		paths := jobPaths(args)
		jobs := make([]gaussian.ValidJob, len(paths))

		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				v, err := s.loadJob(path)
				if err != nil {
					return err
				}
				jobs[i] = v
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		if len(paths) == 1 && renderOut == "" {
			if _, err := jobs[0].WriteTo(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("writing input: %w", err)
			}
			metrics.Renders.WithLabelValues(metrics.Layout(jobs[0].HasGPU())).Inc()
			return nil
		}

		if len(paths) == 1 {
			return s.writeInput(renderOut, jobs[0])
		}

		if renderOut != "" {
			if err := os.MkdirAll(renderOut, 0o755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}
		}
		for i, path := range paths {
			if err := s.writeInput(inputPath(renderOut, path), jobs[i]); err != nil {
				return err
			}
		}
		return nil
	},
}

// writeInput writes the rendered job to path.
func (s *session) writeInput(path string, job gaussian.ValidJob) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(job.Render()), 0o644); err != nil {
		return fmt.Errorf("writing input: %w", err)
	}
	metrics.Renders.WithLabelValues(metrics.Layout(job.HasGPU())).Inc()
	s.log.Infow("input rendered", "file", path, "gpu", job.HasGPU())
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (one job) or directory (several jobs)")
	rootCmd.AddCommand(renderCmd)
}
