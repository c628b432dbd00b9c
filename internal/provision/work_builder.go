package provision

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/errcodes"
	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/pkg/aws"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/remote"
	"github.com/syslinkats/ats-harness/pkg/teams"
)

const (
	StepDeploy          = "deploy"
	StepRemoveFeeds     = "remove-feeds"
	StepAddFeeds        = "add-feeds"
	StepUpdateFeeds     = "update-feeds"
	StepUpgradeUpdater  = "upgrade-updater"
	StepUpgradeManager  = "upgrade-package-manager"
	StepInstallFeeds    = "install-feeds"
	StepRestart         = "restart"
	StepAddUsers        = "add-users"
	StepConfigureServer = "configure-web-server"
	StepRestartServer   = "restart-web-server"
	StepRecord          = "record"
	StepNotify          = "notify"
)

// workBuilder builds the sequence of steps of one provisioning.
type workBuilder struct {
	p    *Provisioner
	run  *Run
	opts models.DeploymentOptions
}

func newWorkBuilder(p *Provisioner, run *Run, opts models.DeploymentOptions) *workBuilder {
	return &workBuilder{p: p, run: run, opts: opts}
}

func (b *workBuilder) Build() []models.ProvisionWorkUnit {
	target := b.deploy
	if b.opts.UseDevWorker {
		target = b.useDevWorker
	}

	return []models.ProvisionWorkUnit{
		b.unit(StepDeploy, target),
		b.unit(StepRemoveFeeds, b.forEachFeed(b.p.cfg.Installation.RemoveFeedCommand)),
		b.unit(StepAddFeeds, b.forEachFeed(b.p.cfg.Installation.AddFeedCommand)),
		b.unit(StepUpdateFeeds, b.command(b.p.cfg.Installation.UpdateFeedsCommand)),
		b.unit(StepUpgradeUpdater, b.upgradeUpdater),
		b.unit(StepUpgradeManager, b.command(b.p.cfg.Installation.UpgradeManagerCommand)),
		b.unit(StepInstallFeeds, b.forEachFeed(b.p.cfg.Installation.InstallFeedCommand)),
		b.unit(StepRestart, b.restart),
		b.unit(StepAddUsers, b.addUsers),
		b.unit(StepConfigureServer, b.configureWebServer),
		b.unit(StepRestartServer, b.restartWebServer),
		b.unit(StepRecord, b.record),
		b.unit(StepNotify, b.notify),
	}
}

func (b *workBuilder) unit(name string, fn func(ctx context.Context) error) models.ProvisionWorkUnit {
	return models.ProvisionWorkUnit{
		Name: name,
		Work: func() func(ctx context.Context) (any, error) {
			return func(ctx context.Context) (any, error) {
				return nil, fn(ctx)
			}
		},
	}
}

func (b *workBuilder) useDevWorker(ctx context.Context) error {
	w := b.p.cfg.Worker
	b.run.PublicDNSNames = []string{w.Name}

	if w.InstanceID != "" {
		b.run.InstanceIDs = []string{w.InstanceID}
		return nil
	}
	ids, err := b.p.instances.PublicDNSNamesToIDs(ctx, b.run.PublicDNSNames)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return srvErrors.NewResourceNotFoundError("instance", w.Name)
	}
	b.run.InstanceIDs = ids[:1]
	return nil
}

func (b *workBuilder) deploy(ctx context.Context) error {
	log := zap.S().Named("provisioner")
	cfg := b.p.cfg.AWS

	imageID := b.opts.AMIID
	if imageID == "" {
		var err error
		imageID, err = b.p.instances.NewestImageID(ctx,
			aws.TagFilter(models.TagCategory, cfg.ImageCategory),
			aws.Filter("state", "available"),
		)
		if err != nil {
			return err
		}
	}
	b.run.ImageID = imageID
	log.Infow("deploying instances", "image_id", imageID, "count", b.opts.InstanceCount)

	ids, err := b.p.instances.CreateInstances(ctx, aws.CreateRequest{
		ImageID:            imageID,
		InstanceType:       cfg.InstanceType,
		Count:              b.opts.InstanceCount,
		SubnetID:           cfg.SubnetID,
		SecurityGroupIDs:   cfg.SecurityGroupIDs,
		KeyPairName:        cfg.KeyPairName,
		IAMInstanceProfile: cfg.IAMInstanceProfile,
		BlockDevices:       []aws.BlockDevice{{DeviceName: cfg.BlockDeviceName, DeleteOnTermination: true}},
		Tags:               b.tags(),
		Wait:               true,
	})
	b.run.InstanceIDs = ids
	if err != nil {
		return err
	}

	// Looked up one at a time: a single describe call does not keep the
	// order of the ids.
	for _, id := range ids {
		private, err := b.p.instances.DescribeDNSNames(ctx, aws.InstanceFilter{IDs: []string{id}}, true)
		if err != nil {
			return err
		}
		b.run.PublicDNSNames = append(b.run.PublicDNSNames, aws.PrivateToPublicDNS(private, cfg.PublicDNSSuffix)...)
	}
	log.Infow("instances deployed", "dns_names", b.run.PublicDNSNames)
	return nil
}

func (b *workBuilder) tags() []models.Tag {
	category := models.CategoryDailyInstance
	if b.opts.TestDay {
		category = models.CategoryTestDayInstance
	}
	tags := []models.Tag{
		{Key: models.TagCategory, Value: category},
		{Key: models.TagTerminationDate, Value: b.run.TerminationDate},
	}

	keys := make([]string, 0, len(b.p.cfg.AWS.DirectConnectTags))
	for k := range b.p.cfg.AWS.DirectConnectTags {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		tags = append(tags, models.Tag{Key: k, Value: b.p.cfg.AWS.DirectConnectTags[k]})
	}
	return tags
}

func (b *workBuilder) forEachFeed(template string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		for _, f := range b.run.Feeds {
			if err := b.runInstallation(ctx, feedCommand(template, f)); err != nil {
				return err
			}
		}
		return nil
	}
}

func (b *workBuilder) command(command string) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return b.runInstallation(ctx, command)
	}
}

func (b *workBuilder) upgradeUpdater(ctx context.Context) error {
	marker := b.p.cfg.Installation.PackageManagerFeedMarker
	i := slices.IndexFunc(b.run.Feeds, func(f models.FeedItem) bool {
		return strings.Contains(f.Name, marker)
	})
	if i < 0 {
		return srvErrors.NewFeedMissingError(marker)
	}
	return b.runInstallation(ctx, feedCommand(b.p.cfg.Installation.UpgradeUpdaterCommand, b.run.Feeds[i]))
}

func (b *workBuilder) restart(ctx context.Context) error {
	return b.p.instances.Reboot(ctx, b.run.InstanceIDs)
}

func (b *workBuilder) addUsers(ctx context.Context) error {
	users := b.p.cfg.Users
	if len(users.Accounts) == 0 {
		zap.S().Named("provisioner").Info("no windows users configured")
		return nil
	}

	for _, u := range users.Accounts {
		r := strings.NewReplacer("{username}", u.Username, "{password}", u.Password)
		if err := b.runOnAll(ctx, r.Replace(users.AddCommand), users.OutputIgnoreList, b.p.cfg.Remote.RunCommandBudget); err != nil {
			return err
		}
		for _, g := range u.Groups {
			cmd := strings.NewReplacer("{username}", u.Username, "{group}", g).Replace(users.GroupCommand)
			if err := b.runOnAll(ctx, cmd, users.OutputIgnoreList, b.p.cfg.Remote.RunCommandBudget); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *workBuilder) configureWebServer(ctx context.Context) error {
	if b.p.cfg.WebServer.ConfigCommand == "" {
		zap.S().Named("provisioner").Info("no web server configuration command")
		return nil
	}
	return b.forEachHost(ctx, b.p.cfg.WebServer.ConfigCommand)
}

func (b *workBuilder) restartWebServer(ctx context.Context) error {
	if b.p.cfg.WebServer.RestartCommand == "" {
		zap.S().Named("provisioner").Info("no web server restart command")
		return nil
	}
	return b.forEachHost(ctx, b.p.cfg.WebServer.RestartCommand)
}

// forEachHost runs a web server command on one host at a time.
func (b *workBuilder) forEachHost(ctx context.Context, command string) error {
	ws := b.p.cfg.WebServer
	for i, name := range b.run.PublicDNSNames {
		req := remote.RunRequest{
			PublicDNSNames:   []string{name},
			Command:          strings.ReplaceAll(command, "{dns}", name),
			OutputIgnoreList: ws.OutputIgnoreList,
			RunTimeBudget:    ws.Budget,
			RetryCount:       b.p.cfg.Remote.RunRetryCount,
			SubmitRetryCount: b.p.cfg.Remote.SubmitRetryCount,
			Platform:         models.PlatformWindows,
		}
		if i < len(b.run.InstanceIDs) {
			req.InstanceIDs = []string{b.run.InstanceIDs[i]}
		}
		if _, err := b.p.runner.Run(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (b *workBuilder) record(ctx context.Context) error {
	if b.p.recorder == nil {
		return nil
	}

	// A dev worker is not ours to expire.
	terminationDate := b.run.TerminationDate
	if b.opts.UseDevWorker {
		terminationDate = ""
	}
	for i, id := range b.run.InstanceIDs {
		rec := models.InstanceRecord{
			ID:              id,
			ImageID:         b.run.ImageID,
			InstanceType:    b.p.cfg.AWS.InstanceType,
			State:           "running",
			SuiteBuild:      b.run.SuiteBuild,
			TerminationDate: terminationDate,
		}
		if i < len(b.run.PublicDNSNames) {
			rec.PublicDNSName = b.run.PublicDNSNames[i]
		}
		if err := b.p.recorder.Save(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

func (b *workBuilder) notify(ctx context.Context) error {
	log := zap.S().Named("provisioner")
	if b.p.notifier == nil || b.opts.SkipNotify {
		return nil
	}

	msg := deploymentMessage(b.run, b.opts, b.p.cfg.Worker.HTTPPrefix)
	webhook := b.p.cfg.Teams.DailyInstancesWebhook
	if b.opts.TestDay {
		webhook = b.p.cfg.Teams.TestDayInstanceWebhook
	}
	if webhook == "" {
		log.Warnw("no teams webhook configured, skipping notification", "test_day", b.opts.TestDay)
		return nil
	}
	return b.p.notifier.SendDeployment(ctx, webhook, msg)
}

func deploymentMessage(run *Run, opts models.DeploymentOptions, httpPrefix string) teams.DeploymentMessage {
	msg := teams.DeploymentMessage{
		Title:             "SystemLink Daily Instance Report.",
		Text:              fmt.Sprintf("This instance will expire on <b>%s</b>", run.TerminationDate),
		InstanceURLsTitle: "<b>Instance URLs</b>",
		InstanceURLsText:  "The following instances were created for daily use:",
		InstanceURLs:      aws.InstanceURLs(httpPrefix, run.PublicDNSNames),
		InstallTitle:      "<b>Installations</b>",
		InstallText:       "The following suite and feeds were installed:",
		SuiteBuild:        run.SuiteBuild,
	}
	if opts.TestDay {
		msg.Title = "SystemLink Test Day Instance Report"
		msg.InstanceURLsText = "The following instances were created for Test Day use:"
	}
	if opts.Note != "" {
		msg.Text += "<br><br>Special Note:<br><br>" + opts.Note
	}
	for _, f := range run.Feeds {
		msg.Feeds = append(msg.Feeds, fmt.Sprintf("%s (%s)", f.Name, f.URI))
	}
	return msg
}

// runInstallation runs a package manager command on every instance and
// translates package manager error codes found in the output.
func (b *workBuilder) runInstallation(ctx context.Context, command string) error {
	return packageManagerError(b.runOnAll(ctx, command, b.p.cfg.Installation.OutputIgnoreList, b.p.cfg.Remote.RunTimeBudget))
}

func (b *workBuilder) runOnAll(ctx context.Context, command string, ignore []string, budget time.Duration) error {
	_, err := b.p.runner.Run(ctx, remote.RunRequest{
		PublicDNSNames:   b.run.PublicDNSNames,
		InstanceIDs:      b.run.InstanceIDs,
		Command:          command,
		OutputIgnoreList: ignore,
		RunTimeBudget:    budget,
		RetryCount:       b.p.cfg.Remote.RunRetryCount,
		SubmitRetryCount: b.p.cfg.Remote.SubmitRetryCount,
		Platform:         models.PlatformWindows,
	})
	return err
}

func feedCommand(template string, f models.FeedItem) string {
	return strings.NewReplacer("{name}", f.Name, "{uri}", f.URI).Replace(template)
}

// packageManagerError resolves "error code -NNNNNN" in unexpected command
// output to its documented name. Codes that mean success are accepted.
func packageManagerError(err error) error {
	var out *srvErrors.RemoteCommandOutputNotEmpty
	if !errors.As(err, &out) || !strings.Contains(out.Output, "error code") {
		return err
	}

	code, perr := errcodes.HandleProcessErrors(errcodes.CallerPackageManager,
		models.ProcessOutput{ReturnCode: 1, Stderr: out.Output}, errcodes.Options{})
	if perr != nil {
		return fmt.Errorf("%w: %w", perr, err)
	}
	if code != nil {
		zap.S().Named("provisioner").Warnw("package manager reported a non fatal error", "host_id", out.HostID, "code", code.Value, "name", code.Name)
	}
	return nil
}
