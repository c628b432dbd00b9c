package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/provision"
)

func newProvisionCommand(a *app) *cobra.Command {
	var (
		opts            models.DeploymentOptions
		terminationDate string
		feeds           []string
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Deploy instances and install SystemLink on them",
		Long: `Deploys instances from the newest base image (or the given AMI), installs the
configured feeds, adds the configured Windows users, configures the web server
and announces the instances in teams.

With --dev-worker the configured worker is provisioned instead of new instances.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if terminationDate != "" {
				t, err := time.Parse(models.TerminationDateLayout, terminationDate)
				if err != nil {
					return fmt.Errorf("invalid termination date %q: %w", terminationDate, err)
				}
				opts.TerminationDate = t
			}
			items, err := parseFeeds(feeds)
			if err != nil {
				return err
			}
			opts.Feeds = items

			instances, err := a.Instances(ctx)
			if err != nil {
				return err
			}
			runner, err := a.Runner(ctx)
			if err != nil {
				return err
			}
			ledger, err := a.Ledger(ctx)
			if err != nil {
				return err
			}

			p := provision.NewProvisioner(a.cfg, instances, runner,
				provision.WithRecorder(ledger.Instances()),
				provision.WithNotifier(a.Notifier()),
			)
			run, err := p.Provision(ctx, opts)
			if run != nil && len(run.InstanceIDs) > 0 {
				rows := make([][]string, 0, len(run.InstanceIDs))
				for i, id := range run.InstanceIDs {
					name := ""
					if i < len(run.PublicDNSNames) {
						name = run.PublicDNSNames[i]
					}
					rows = append(rows, []string{id, name, run.TerminationDate})
				}
				printTable(cmd.OutOrStdout(), []string{"ID", "DNS NAME", "TERMINATION"}, rows)
			}
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Provisioning completed.")
			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.UseDevWorker, "dev-worker", false, "provision the configured dev worker instead of new instances")
	f.StringVar(&opts.AMIID, "ami-id", "", "image to deploy from (default: newest base image)")
	f.IntVar(&opts.InstanceCount, "count", 1, "number of instances to deploy")
	f.StringVar(&terminationDate, "termination-date", "", "date the instances may be terminated, YYYY-MM-DD (default: today plus aws.termination_days)")
	f.BoolVar(&opts.TestDay, "test-day", false, "the instances are for a test day")
	f.StringVar(&opts.Note, "note", "", "special note added to the teams announcement")
	f.StringVar(&opts.SuiteBuild, "suite-build", "", "suite build to announce (default: installation.suite_build)")
	f.StringArrayVar(&feeds, "feed", nil, "feed to install as name=uri, repeatable (default: installation.feeds)")
	f.BoolVar(&opts.SkipNotify, "no-notify", false, "do not announce the instances in teams")
	return cmd
}

func parseFeeds(values []string) ([]models.FeedItem, error) {
	items := make([]models.FeedItem, 0, len(values))
	for _, v := range values {
		name, uri, ok := strings.Cut(v, "=")
		if !ok || name == "" || uri == "" {
			return nil, fmt.Errorf("invalid feed %q: expected name=uri", v)
		}
		items = append(items, models.FeedItem{Name: name, URI: uri})
	}
	return items, nil
}
