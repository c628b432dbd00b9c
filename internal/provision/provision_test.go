package provision_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/syslinkats/ats-harness/internal/config"
	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/provision"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

var _ = Describe("Provisioner", func() {
	var (
		ctx       context.Context
		cfg       *config.Configuration
		instances *fakeInstances
		runner    *fakeRunner
		recorder  *fakeRecorder
		notifier  *fakeNotifier
		p         *provision.Provisioner
		today     = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		cfg, err = config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())
		cfg.Installation.Feeds = []config.Feed{
			{Name: "ni-package-manager", URI: "https://feeds/pm"},
			{Name: "ni-systemlink", URI: "https://feeds/sl"},
		}
		cfg.Users.Accounts = []config.WindowsUser{
			{Username: "tester", Password: "secret", Groups: []string{"Administrators"}},
		}
		cfg.WebServer.ConfigCommand = "configure --host {dns}"
		cfg.WebServer.RestartCommand = "restart-web-server --host {dns}"
		cfg.WebServer.OutputIgnoreList = []string{"already configured"}
		cfg.Teams.DailyInstancesWebhook = "https://hooks/daily"
		cfg.Teams.TestDayInstanceWebhook = "https://hooks/test-day"
		cfg.Worker.Name = "worker.aws.natinst.com"

		instances = &fakeInstances{
			imageID: "ami-1",
			created: []string{"i-1", "i-2"},
			privateDNS: map[string]string{
				"i-1": "ip-10-0-0-1.ec2.internal",
				"i-2": "ip-10-0-0-2.ec2.internal",
			},
		}
		runner = &fakeRunner{}
		recorder = &fakeRecorder{}
		notifier = &fakeNotifier{}

		p = provision.NewProvisioner(cfg, instances, runner,
			provision.WithRecorder(recorder),
			provision.WithNotifier(notifier),
			provision.WithClock(func() time.Time { return today }),
		)
	})

	It("should run every step in order", func() {
		run, err := p.Provision(ctx, models.DeploymentOptions{InstanceCount: 2})

		Expect(err).NotTo(HaveOccurred())
		Expect(run.Status.State).To(Equal(models.ProvisionStateCompleted))
		Expect(run.InstanceIDs).To(Equal([]string{"i-1", "i-2"}))
		Expect(run.PublicDNSNames).To(Equal([]string{"ip-10-0-0-1.aws.natinst.com", "ip-10-0-0-2.aws.natinst.com"}))
		Expect(runner.Commands()).To(Equal([]string{
			"nipkg feed-remove ni-package-manager",
			"nipkg feed-remove ni-systemlink",
			"nipkg feed-add --name=ni-package-manager https://feeds/pm",
			"nipkg feed-add --name=ni-systemlink https://feeds/sl",
			"nipkg update",
			"nipkg install --accept-eulas -y --force-locked ni-package-manager",
			"nipkg upgrade --accept-eulas -y ni-package-manager",
			"nipkg install --accept-eulas -y --include-recommended ni-package-manager",
			"nipkg install --accept-eulas -y --include-recommended ni-systemlink",
			"net user tester secret /add /y",
			"net localgroup Administrators tester /add",
			"configure --host ip-10-0-0-1.aws.natinst.com",
			"configure --host ip-10-0-0-2.aws.natinst.com",
			"restart-web-server --host ip-10-0-0-1.aws.natinst.com",
			"restart-web-server --host ip-10-0-0-2.aws.natinst.com",
		}))
		Expect(instances.rebooted).To(Equal([][]string{{"i-1", "i-2"}}))
	})

	It("should skip the web server restart without a restart command", func() {
		cfg.WebServer.RestartCommand = ""

		run, err := p.Provision(ctx, models.DeploymentOptions{InstanceCount: 2})

		Expect(err).NotTo(HaveOccurred())
		Expect(run.Status.State).To(Equal(models.ProvisionStateCompleted))
		Expect(runner.Commands()).To(HaveLen(13))
		Expect(runner.Commands()).NotTo(ContainElement(HavePrefix("restart-web-server")))
	})

	It("should restart the web server one host at a time after configuring it", func() {
		_, err := p.Provision(ctx, models.DeploymentOptions{InstanceCount: 2})
		Expect(err).NotTo(HaveOccurred())

		last := runner.requests[len(runner.requests)-1]
		Expect(last.Command).To(Equal("restart-web-server --host ip-10-0-0-2.aws.natinst.com"))
		Expect(last.PublicDNSNames).To(Equal([]string{"ip-10-0-0-2.aws.natinst.com"}))
		Expect(last.InstanceIDs).To(Equal([]string{"i-2"}))
		Expect(last.RunTimeBudget).To(Equal(300 * time.Second))
		Expect(last.OutputIgnoreList).To(ConsistOf("already configured"))
	})

	It("should tag new instances and pick the newest base image", func() {
		_, err := p.Provision(ctx, models.DeploymentOptions{})
		Expect(err).NotTo(HaveOccurred())

		Expect(instances.imageFilter).To(HaveLen(2))
		req := instances.createReq
		Expect(req.ImageID).To(Equal("ami-1"))
		Expect(req.Count).To(Equal(1))
		Expect(req.Wait).To(BeTrue())
		Expect(req.Tags[0]).To(Equal(models.Tag{Key: "Category", Value: "DailyInstance"}))
		Expect(req.Tags[1]).To(Equal(models.Tag{Key: "TerminationDate", Value: "2026-10-19"}))
		Expect(req.Tags[2:]).To(HaveLen(len(cfg.AWS.DirectConnectTags)))
		Expect(req.Tags[2].Key).To(Equal("CostCenter"))
	})

	It("should deploy from the given image", func() {
		_, err := p.Provision(ctx, models.DeploymentOptions{AMIID: "ami-given", TestDay: true})
		Expect(err).NotTo(HaveOccurred())

		Expect(instances.imageFilter).To(BeNil())
		Expect(instances.createReq.ImageID).To(Equal("ami-given"))
		Expect(instances.createReq.Tags[0].Value).To(Equal("TestDayInstance"))
	})

	It("should use the dev worker instead of deploying", func() {
		cfg.Worker.InstanceID = "i-worker"

		run, err := p.Provision(ctx, models.DeploymentOptions{UseDevWorker: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(instances.createReq.ImageID).To(BeEmpty())
		Expect(run.InstanceIDs).To(Equal([]string{"i-worker"}))
		Expect(run.PublicDNSNames).To(Equal([]string{"worker.aws.natinst.com"}))
		Expect(recorder.records).To(HaveLen(1))
		Expect(recorder.records[0].TerminationDate).To(BeEmpty())
	})

	It("should resolve the dev worker id from its DNS name", func() {
		instances.resolved = []string{"i-resolved"}

		run, err := p.Provision(ctx, models.DeploymentOptions{UseDevWorker: true})

		Expect(err).NotTo(HaveOccurred())
		Expect(run.InstanceIDs).To(Equal([]string{"i-resolved"}))
	})

	It("should reject the dev worker when none is configured", func() {
		cfg.Worker.Name = ""

		_, err := p.Provision(ctx, models.DeploymentOptions{UseDevWorker: true})

		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		Expect(runner.Commands()).To(BeEmpty())
	})

	// Given feeds without a package manager feed
	// When provisioning reaches the updater upgrade
	// Then it stops with FeedMissingError and installs nothing
	It("should stop when the package manager feed is missing", func() {
		run, err := p.Provision(ctx, models.DeploymentOptions{
			Feeds: []models.FeedItem{{Name: "ni-systemlink", URI: "https://feeds/sl"}},
		})

		Expect(srvErrors.IsFeedMissingError(err)).To(BeTrue())
		Expect(run.Status.State).To(Equal(models.ProvisionStateError))
		Expect(run.Status.Step).To(Equal(provision.StepUpgradeUpdater))
		Expect(runner.Commands()).NotTo(ContainElement(ContainSubstring("--include-recommended")))
		Expect(recorder.records).To(BeEmpty())
		Expect(notifier.message).To(BeNil())
	})

	It("should translate package manager error codes", func() {
		runner.failures = map[string]error{
			"--include-recommended": srvErrors.NewRemoteCommandOutputNotEmpty("i-1", "nipkg failed with error code -125003"),
		}

		run, err := p.Provision(ctx, models.DeploymentOptions{})

		Expect(srvErrors.IsProcessError(err)).To(BeTrue())
		Expect(srvErrors.IsRemoteCommandOutputNotEmpty(err)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("InvalidRepositoryName"))
		Expect(run.Status.Step).To(Equal(provision.StepInstallFeeds))
	})

	It("should accept a reboot request from the package manager", func() {
		runner.failures = map[string]error{
			"--include-recommended": srvErrors.NewRemoteCommandOutputNotEmpty("i-1", "done, error code -125071"),
		}

		_, err := p.Provision(ctx, models.DeploymentOptions{})

		Expect(err).NotTo(HaveOccurred())
	})

	It("should not translate output without an error code", func() {
		cause := srvErrors.NewRemoteCommandOutputNotEmpty("i-1", "access denied")
		runner.failures = map[string]error{"feed-remove": cause}

		_, err := p.Provision(ctx, models.DeploymentOptions{})

		Expect(errors.Is(err, cause)).To(BeTrue())
		Expect(srvErrors.IsProcessError(err)).To(BeFalse())
	})

	It("should record every instance in the ledger", func() {
		_, err := p.Provision(ctx, models.DeploymentOptions{InstanceCount: 2})
		Expect(err).NotTo(HaveOccurred())

		Expect(recorder.records).To(HaveLen(2))
		Expect(recorder.records[1]).To(Equal(models.InstanceRecord{
			ID:              "i-2",
			PublicDNSName:   "ip-10-0-0-2.aws.natinst.com",
			ImageID:         "ami-1",
			InstanceType:    cfg.AWS.InstanceType,
			State:           "running",
			SuiteBuild:      cfg.Installation.SuiteBuild,
			TerminationDate: "2026-10-19",
		}))
	})

	Context("notification", func() {
		It("should post daily instances to the daily webhook", func() {
			_, err := p.Provision(ctx, models.DeploymentOptions{})
			Expect(err).NotTo(HaveOccurred())

			Expect(notifier.webhook).To(Equal("https://hooks/daily"))
			Expect(notifier.message.Title).To(Equal("SystemLink Daily Instance Report."))
			Expect(notifier.message.Text).To(Equal("This instance will expire on <b>2026-10-19</b>"))
			Expect(notifier.message.InstanceURLs).To(Equal([]string{"https://ip-10-0-0-1.aws.natinst.com", "https://ip-10-0-0-2.aws.natinst.com"}))
			Expect(notifier.message.Feeds).To(HaveLen(2))
		})

		It("should post test day instances with the note", func() {
			_, err := p.Provision(ctx, models.DeploymentOptions{TestDay: true, Note: "bring snacks"})
			Expect(err).NotTo(HaveOccurred())

			Expect(notifier.webhook).To(Equal("https://hooks/test-day"))
			Expect(notifier.message.Title).To(Equal("SystemLink Test Day Instance Report"))
			Expect(notifier.message.InstanceURLsText).To(ContainSubstring("Test Day use"))
			Expect(notifier.message.Text).To(HaveSuffix("bring snacks"))
		})

		It("should skip the notification when asked to", func() {
			_, err := p.Provision(ctx, models.DeploymentOptions{SkipNotify: true})
			Expect(err).NotTo(HaveOccurred())

			Expect(notifier.message).To(BeNil())
		})
	})

	It("should stop the running step when the context is canceled", func() {
		runner.block = make(chan struct{})
		ctx, cancel := context.WithCancel(ctx)

		done := make(chan error, 1)
		var run *provision.Run
		go func() {
			defer GinkgoRecover()
			var err error
			run, err = p.Provision(ctx, models.DeploymentOptions{})
			done <- err
		}()

		Eventually(runner.Commands).ShouldNot(BeEmpty())
		cancel()

		var err error
		Eventually(done).Should(Receive(&err))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(run.Status.State).To(Equal(models.ProvisionStateCanceled))
		Expect(run.Status.Step).To(Equal(provision.StepRemoveFeeds))
	})
})
