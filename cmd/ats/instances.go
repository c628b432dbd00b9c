package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/util"
	"github.com/syslinkats/ats-harness/pkg/aws"
	"github.com/syslinkats/ats-harness/pkg/teams"
)

func newInstancesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instances",
		Short: "Inspect and maintain test instances",
	}
	cmd.AddCommand(
		newInstancesListCommand(a),
		newInstancesTerminateCommand(a),
		newInstancesUpdateTerminationCommand(a),
		newInstancesExpiredCommand(a),
	)
	return cmd
}

func newInstancesListCommand(a *app) *cobra.Command {
	var (
		states    []string
		category  string
		dateRange string
		newest    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instances by state, category and launch date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			instances, err := a.Instances(cmd.Context())
			if err != nil {
				return err
			}

			f := aws.InstanceFilter{States: states, NewestOnly: newest}
			if category != "" {
				f.Filters = append(f.Filters, aws.TagFilter(models.TagCategory, category))
			}
			if dateRange != "" {
				start, end, err := util.ParseDateRange(dateRange)
				if err != nil {
					return err
				}
				f.DateRange = &models.DateRange{Start: start, End: end}
			}

			found, err := instances.DescribeInstances(cmd.Context(), f)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(found))
			for _, inst := range found {
				rows = append(rows, []string{
					inst.ID,
					inst.State,
					aws.PrivateToPublicDNS([]string{inst.PrivateDNSName}, a.cfg.AWS.PublicDNSSuffix)[0],
					inst.Tags[models.TagCategory],
					inst.Tags[models.TagTerminationDate],
					inst.LaunchTime.Format(time.RFC3339),
				})
			}
			printTable(cmd.OutOrStdout(), []string{"ID", "STATE", "DNS NAME", "CATEGORY", "TERMINATION", "LAUNCHED"}, rows)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&states, "state", aws.DefaultQueryStates, "instance states to match")
	cmd.Flags().StringVar(&category, "category", "", "value of the Category tag")
	cmd.Flags().StringVar(&dateRange, "date-range", "", `launch date "01-15-2020" or range "(01-15-2020, 01-30-2020)"`)
	cmd.Flags().BoolVar(&newest, "newest", false, "only show the most recently launched instance")
	return cmd
}

func newInstancesTerminateCommand(a *app) *cobra.Command {
	var (
		names []string
		wait  bool
	)

	cmd := &cobra.Command{
		Use:   "terminate",
		Short: "Terminate instances by public DNS name",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(names) == 0 {
				printWarning(cmd.OutOrStdout(), "No instance DNS name was provided, so there is nothing to do.")
				return nil
			}
			ids, err := a.terminate(cmd, names, wait)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				printWarning(cmd.OutOrStdout(), "No instance ids were found for %s", strings.Join(names, ", "))
				return nil
			}
			printSuccess(cmd.OutOrStdout(), "Terminated %s", strings.Join(ids, ", "))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&names, "dns-name", "N", nil, "public DNS name of an instance, repeatable")
	cmd.Flags().BoolVar(&wait, "wait", false, "wait until the instances are terminated")
	return cmd
}

func (a *app) terminate(cmd *cobra.Command, names []string, wait bool) ([]string, error) {
	ctx := cmd.Context()
	instances, err := a.Instances(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := instances.PublicDNSNamesToIDs(ctx, names)
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	if _, err := instances.CleanupInstances(ctx, aws.InstanceFilter{IDs: ids}, true, wait); err != nil {
		return nil, err
	}
	a.markTerminated(cmd, ids)
	return ids, nil
}

// markTerminated updates the ledger. The instances are gone either way, so
// a ledger failure is only logged.
func (a *app) markTerminated(cmd *cobra.Command, ids []string) {
	ledger, err := a.Ledger(cmd.Context())
	if err == nil {
		err = ledger.Instances().SetState(cmd.Context(), "terminated", ids...)
	}
	if err != nil {
		zap.S().Named("ats").Warnw("failed to update ledger", "instance_ids", ids, "error", err)
	}
}

func newInstancesUpdateTerminationCommand(a *app) *cobra.Command {
	var (
		names   []string
		date    string
		testDay bool
		notify  bool
	)

	cmd := &cobra.Command{
		Use:   "update-termination-date",
		Short: "Change the TerminationDate tag of instances",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if date == "" {
				date = time.Now().AddDate(0, 0, a.cfg.AWS.TerminationDays).Format(models.TerminationDateLayout)
			}
			if _, err := time.Parse(models.TerminationDateLayout, date); err != nil {
				return fmt.Errorf("invalid termination date %q: %w", date, err)
			}

			instances, err := a.Instances(ctx)
			if err != nil {
				return err
			}
			ids, err := instances.PublicDNSNamesToIDs(ctx, names)
			if err != nil {
				return err
			}
			zap.S().Named("ats").Infow("updating termination date", "dns_names", names, "date", date)
			if err := instances.CreateOrUpdateTags(ctx, ids, []models.Tag{{Key: models.TagTerminationDate, Value: date}}); err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Termination date of %s set to %s", strings.Join(names, ", "), date)

			if !notify {
				return nil
			}
			webhook, msg := terminationUpdateMessage(a, names, date, testDay)
			if webhook == "" {
				printWarning(cmd.OutOrStdout(), "No teams webhook configured, skipping the notification.")
				return nil
			}
			return a.Notifier().SendDeployment(ctx, webhook, msg)
		},
	}
	cmd.Flags().StringArrayVarP(&names, "dns-name", "N", nil, "public DNS name of an instance, repeatable")
	cmd.Flags().StringVar(&date, "date", "", "new termination date, YYYY-MM-DD (default: today plus aws.termination_days)")
	cmd.Flags().BoolVar(&testDay, "test-day", false, "the instances are test day instances")
	cmd.Flags().BoolVar(&notify, "notify", true, "post the change to teams")
	_ = cmd.MarkFlagRequired("dns-name")
	return cmd
}

func terminationUpdateMessage(a *app, names []string, date string, testDay bool) (string, teams.DeploymentMessage) {
	msg := teams.DeploymentMessage{
		Title: "SystemLink Daily Instance Update.",
		Text: fmt.Sprintf("The termination date for the following instances has been updated to <b>%s</b>:<br><br>%s",
			date, strings.Join(names, "<br>")),
	}
	webhook := a.cfg.Teams.DailyInstancesWebhook
	if testDay {
		msg.Title = "SystemLink Test Day Instance Update"
		webhook = a.cfg.Teams.TestDayInstanceWebhook
	}
	return webhook, msg
}

func newInstancesExpiredCommand(a *app) *cobra.Command {
	var terminate bool

	cmd := &cobra.Command{
		Use:   "expired",
		Short: "List (and optionally terminate) instances past their termination date",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			instances, err := a.Instances(ctx)
			if err != nil {
				return err
			}
			ids, err := instances.ExpiredTerminationInstances(ctx)
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				printSuccess(cmd.OutOrStdout(), "No expired instances.")
				return nil
			}
			sort.Strings(ids)
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			if !terminate {
				return nil
			}

			if _, err := instances.CleanupInstances(ctx, aws.InstanceFilter{IDs: ids}, true, false); err != nil {
				return err
			}
			a.markTerminated(cmd, ids)
			printSuccess(cmd.OutOrStdout(), "Terminated %d expired instances", len(ids))
			return nil
		},
	}
	cmd.Flags().BoolVar(&terminate, "terminate", false, "terminate the expired instances")
	return cmd
}
