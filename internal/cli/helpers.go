package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/re-cinq/gauss/internal/config"
	"github.com/re-cinq/gauss/internal/gaussian"
	"github.com/re-cinq/gauss/internal/logger"
	"github.com/re-cinq/gauss/internal/metrics"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// session carries the settings and logger shared by the job commands.
type session struct {
	settings *config.Settings
	log      *zap.SugaredLogger
}

// newSession loads tool settings and starts the run log for cmd.
func newSession(cmd *cobra.Command) (*session, error) {
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, err
	}
	log, err := logger.New(settings.Log.Dir, settings.Log.Level, settings.Log.Console)
	if err != nil {
		return nil, err
	}
	return &session{
		settings: settings,
		log:      log.With("run_id", uuid.NewString(), "command", cmd.Name()),
	}, nil
}

// loadJob loads a job file and validates it.
func (s *session) loadJob(path string) (gaussian.ValidJob, error) {
	job, err := config.Load(path)
	if err != nil {
		metrics.Validations.WithLabelValues("source_error").Inc()
		s.log.Errorw("job file unreadable", "file", path, "err", err)
		return gaussian.ValidJob{}, err
	}

	valid, err := gaussian.Validate(job)
	if err != nil {
		metrics.Validations.WithLabelValues("invalid").Inc()
		s.log.Warnw("job file invalid", "file", path, "err", err)
		return gaussian.ValidJob{}, fmt.Errorf("%s: %w", path, err)
	}

	metrics.Validations.WithLabelValues("valid").Inc()
	s.log.Debugw("job file valid", "file", path, "gpu", valid.HasGPU())
	return valid, nil
}

// close writes the metrics textfile, if configured, and flushes the log.
func (s *session) close() {
	if err := metrics.WriteTextfile(s.settings.Metrics.File); err != nil {
		s.log.Warnw("writing metrics textfile failed", "file", s.settings.Metrics.File, "err", err)
		fmt.Fprintf(os.Stderr, "gauss: warning: could not write metrics: %v\n", err)
	}
	_ = s.log.Sync()
}

// jobPaths returns the job files named on the command line, falling back
// to the -p flag.
func jobPaths(args []string) []string {
	if len(args) == 0 {
		return []string{configPath}
	}
	return args
}

// inputPath returns where the rendered input for jobPath goes in dir:
// water.yaml → <dir>/water.gjf.
func inputPath(dir, jobPath string) string {
	return siblingPath(dir, jobPath, ".gjf")
}

// siblingPath swaps jobPath's extension for ext and places it in dir, or
// next to jobPath when dir is empty.
func siblingPath(dir, jobPath, ext string) string {
	base := filepath.Base(jobPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ext
	if dir == "" {
		dir = filepath.Dir(jobPath)
	}
	return filepath.Join(dir, name)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
