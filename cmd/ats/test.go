package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syslinkats/ats-harness/internal/testrun"
)

func newTestCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run the test suites",
	}
	cmd.AddCommand(newTestRunCommand(a))
	return cmd
}

func newTestRunCommand(a *app) *cobra.Command {
	var opts testrun.Options

	cmd := &cobra.Command{
		Use:   "run [-- pass-through args...]",
		Short: "Run pytest with the harness defaults",
		Long: `Runs pytest with the marks, ignore paths and junit output of the test_run
configuration. Arguments after "--" are handed to the tests unchanged. The
command exits with the exit code of pytest.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.PassThrough = args
			if opts.ConfigPath == "" {
				opts.ConfigPath = a.opts.configPath
			}

			out, err := testrun.NewRunner(a.cfg.TestRun).Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Stdout)
			fmt.Fprint(cmd.ErrOrStderr(), out.Stderr)
			if !out.Succeeded() {
				return &exitCodeError{code: out.ReturnCode}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.UseDevWorker, "dev-worker", false, "run the tests against the configured dev worker")
	cmd.Flags().StringVar(&opts.ConfigPath, "ats-config-path", "", "configuration handed to the tests (default: --config)")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory to run pytest in")
	cmd.Flags().StringVar(&opts.ReportDir, "report-dir", "", "directory emptied before the run that receives the junit file")
	return cmd
}
