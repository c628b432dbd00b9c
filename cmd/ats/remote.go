package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/pkg/remote"
)

func newRemoteCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Run commands on instances",
	}
	cmd.AddCommand(newRemoteRunCommand(a))
	return cmd
}

func newRemoteRunCommand(a *app) *cobra.Command {
	var (
		names       []string
		instanceIDs []string
		command     string
		platform    string
		ignore      []string
		budget      time.Duration
		retries     int
		warnOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a command on instances and print its output",
		Example: `  ats remote run -N ip-10-0-0-1.aws.natinst.com --command "nipkg list"
  ats remote run --instance-id i-0abc --platform linux --command "uname -a"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := models.ParsePlatform(platform)
			if err != nil {
				return err
			}
			if len(names) == 0 && len(instanceIDs) == 0 {
				return fmt.Errorf("either --dns-name or --instance-id is required")
			}

			if budget <= 0 {
				budget = a.cfg.Remote.RunCommandBudget
			}
			if retries <= 0 {
				retries = a.cfg.Remote.RunRetryCount
			}

			runner, err := a.Runner(cmd.Context())
			if err != nil {
				return err
			}
			out, err := runner.Run(cmd.Context(), remote.RunRequest{
				PublicDNSNames:    names,
				InstanceIDs:       instanceIDs,
				Command:           command,
				OutputIgnoreList:  ignore,
				RunTimeBudget:     budget,
				RetryCount:        retries,
				SubmitRetryCount:  a.cfg.Remote.SubmitRetryCount,
				Platform:          p,
				LogErrorAsWarning: warnOnly,
			})
			if err != nil {
				return err
			}
			if out = strings.TrimSpace(out); out != "" {
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&names, "dns-name", "N", nil, "public DNS name of a target, repeatable")
	cmd.Flags().StringArrayVar(&instanceIDs, "instance-id", nil, "instance id of a target, repeatable")
	cmd.Flags().StringVarP(&command, "command", "c", "", "command to run")
	cmd.Flags().StringVar(&platform, "platform", string(models.PlatformWindows), "target platform: windows or linux")
	cmd.Flags().StringArrayVar(&ignore, "ignore", nil, "accept error output containing this text, repeatable")
	cmd.Flags().DurationVar(&budget, "budget", 0, "time allowed for one run of the command (default: remote.run_command_budget)")
	cmd.Flags().IntVar(&retries, "retries", 0, "runs before unexpected error output fails the command (default: remote.run_retry_count)")
	cmd.Flags().BoolVar(&warnOnly, "warn-on-error", false, "accept error output with a warning instead of failing")
	_ = cmd.MarkFlagRequired("command")
	return cmd
}
