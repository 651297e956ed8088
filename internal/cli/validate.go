package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var validateCmd = &cobra.Command{
	Use:   "validate [job.yaml...]",
	Short: "Validate job files and report the first error in each",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()

		paths := jobPaths(args)
		errs := make([]error, len(paths))

		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, path := range paths {
			i, path := i, path
			g.Go(func() error {
				_, errs[i] = s.loadJob(path)
				return nil
			})
		}
		_ = g.Wait()

		failed := 0
		for i, path := range paths {
			switch {
			case errs[i] != nil:
				failed++
				fmt.Fprintln(os.Stderr, errs[i])
			case len(paths) == 1:
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "%s: valid\n", path)
			}
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d job file(s) invalid", failed, len(paths))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
