package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syslinkats/ats-harness/internal/fsutil"
	"github.com/syslinkats/ats-harness/internal/report"
)

type reportOptions struct {
	workbook     string
	resultID     string
	serialNumber string
	programName  string
	squadOwners  []string
	offline      bool
	notify       bool
}

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Upload test results to Test Monitor",
	}
	cmd.AddCommand(
		newReportFormatCommand(a, report.FormatJUnit, "junit <file> <suite>", "Upload a JUnit result file for suite"),
		newReportFormatCommand(a, report.FormatXUnit, "xunit <file> <product>", "Upload an xUnit result file for product"),
	)
	return cmd
}

func newReportFormatCommand(a *app, format report.Format, use, short string) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.report(cmd, format, args[0], args[1], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.workbook, "xlsx", "", "also write a summary workbook to this path")
	f.StringVar(&opts.resultID, "result-id", "", "attach to an existing result (default: test_monitor.result_id, else a new result)")
	f.StringVar(&opts.serialNumber, "serial-number", "", "serial number of the system under test")
	f.StringVar(&opts.programName, "program-name", "", "program name of the result (default: test_monitor.program_name)")
	f.StringArrayVar(&opts.squadOwners, "squad-owner", nil, "owner mentioned in the failure notice, repeatable")
	f.BoolVar(&opts.offline, "offline", false, "only parse, record and export; upload nothing")
	f.BoolVar(&opts.notify, "notify", true, "post a failure notice to teams when tests failed")
	return cmd
}

func (a *app) report(cmd *cobra.Command, format report.Format, path, name string, opts reportOptions) error {
	ctx := cmd.Context()
	tm := a.cfg.TestMonitor

	if err := fsutil.ValidatePath("file", path, false); err != nil {
		return err
	}

	req := report.Request{
		Format:       format,
		Path:         path,
		Suite:        name,
		SerialNumber: opts.serialNumber,
		ProgramName:  firstNonEmpty(opts.programName, tm.ProgramName),
		ResultID:     firstNonEmpty(opts.resultID, tm.ResultID),
		WorkbookPath: opts.workbook,
		SquadOwners:  opts.squadOwners,
	}
	if format == report.FormatXUnit {
		req.Product = name
		req.Suite = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if opts.notify {
		req.FailureWebhook = a.cfg.Teams.FailureWebhook
	}

	var results report.ResultService
	if !opts.offline {
		if err := a.requireTestMonitor(); err != nil {
			return err
		}
		results = report.NewTestMonitor(a.httpClient(tm.Username, tm.Password), tm.URL)
	}

	ledger, err := a.Ledger(ctx)
	if err != nil {
		return err
	}

	summary, err := report.NewReporter(results, ledger.TestRuns(), a.Notifier()).Report(ctx, req)
	if err != nil {
		return err
	}

	rec := summary.Record
	out := cmd.OutOrStdout()
	printTable(out, []string{"SUITE", "PASSED", "FAILED", "ERRORED", "SKIPPED", "TOTAL"}, [][]string{{
		rec.Suite,
		fmt.Sprint(rec.Passed),
		fmt.Sprint(rec.Failed),
		fmt.Sprint(rec.Errored),
		fmt.Sprint(rec.Skipped),
		fmt.Sprint(rec.Total()),
	}})
	if summary.ResultID != "" {
		fmt.Fprintf(out, "Result: %s\n", summary.ResultID)
	}
	if rec.Failed+rec.Errored > 0 {
		printWarning(out, "%d tests did not pass.", rec.Failed+rec.Errored)
		return nil
	}
	printSuccess(out, "All tests passed.")
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
