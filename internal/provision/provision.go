package provision

import (
	"context"
	"errors"
	"fmt"
	"time"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/config"
	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/pkg/aws"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/remote"
	"github.com/syslinkats/ats-harness/pkg/scheduler"
	"github.com/syslinkats/ats-harness/pkg/teams"
)

// CommandRunner runs one command on a set of instances.
type CommandRunner interface {
	Run(ctx context.Context, req remote.RunRequest) (string, error)
}

// InstanceProvider launches and looks up instances.
type InstanceProvider interface {
	NewestImageID(ctx context.Context, filters ...ec2types.Filter) (string, error)
	CreateInstances(ctx context.Context, req aws.CreateRequest) ([]string, error)
	DescribeDNSNames(ctx context.Context, f aws.InstanceFilter, private bool) ([]string, error)
	PublicDNSNamesToIDs(ctx context.Context, names []string) ([]string, error)
	Reboot(ctx context.Context, ids []string) error
}

type InstanceRecorder interface {
	Save(ctx context.Context, r models.InstanceRecord) error
}

type DeploymentNotifier interface {
	SendDeployment(ctx context.Context, webhook string, m teams.DeploymentMessage) error
}

// Run is the state shared by the steps of one provisioning. Steps fill it in
// as they go; InstanceIDs and PublicDNSNames stay index aligned.
type Run struct {
	InstanceIDs     []string
	PublicDNSNames  []string
	ImageID         string
	SuiteBuild      string
	Feeds           []models.FeedItem
	TerminationDate string
	Status          models.ProvisionStatus
}

type Provisioner struct {
	cfg       *config.Configuration
	instances InstanceProvider
	runner    CommandRunner
	recorder  InstanceRecorder
	notifier  DeploymentNotifier
	now       func() time.Time
}

type Option func(*Provisioner)

func WithRecorder(r InstanceRecorder) Option {
	return func(p *Provisioner) {
		p.recorder = r
	}
}

func WithNotifier(n DeploymentNotifier) Option {
	return func(p *Provisioner) {
		p.notifier = n
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Provisioner) {
		p.now = now
	}
}

func NewProvisioner(cfg *config.Configuration, instances InstanceProvider, runner CommandRunner, opts ...Option) *Provisioner {
	p := &Provisioner{
		cfg:       cfg,
		instances: instances,
		runner:    runner,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Provision runs the provisioning steps one after the other and stops at
// the first failing step. The returned Run reflects how far it got, also
// when an error is returned.
func (p *Provisioner) Provision(ctx context.Context, opts models.DeploymentOptions) (*Run, error) {
	log := zap.S().Named("provisioner")

	opts, err := p.withDefaults(opts)
	if err != nil {
		return nil, err
	}

	run := &Run{
		SuiteBuild:      opts.SuiteBuild,
		Feeds:           opts.Feeds,
		TerminationDate: opts.TerminationDate.Format(models.TerminationDateLayout),
		Status:          models.ProvisionStatus{State: models.ProvisionStateRunning},
	}

	sched := scheduler.NewScheduler(1)
	defer sched.Close()

	for _, unit := range newWorkBuilder(p, run, opts).Build() {
		run.Status.Step = unit.Name
		log.Infow("step started", "step", unit.Name)

		result := sched.AddWork(ctx, unit.Work()).Await(ctx)
		if result.Err != nil {
			run.Status.Error = result.Err
			run.Status.State = models.ProvisionStateError
			if errors.Is(result.Err, context.Canceled) {
				run.Status.State = models.ProvisionStateCanceled
			}
			log.Errorw("step failed", "step", unit.Name, "error", result.Err)
			return run, fmt.Errorf("provisioning step %q failed: %w", unit.Name, result.Err)
		}
		log.Infow("step finished", "step", unit.Name)
	}

	run.Status.State = models.ProvisionStateCompleted
	log.Infow("provisioning completed", "dns_names", run.PublicDNSNames, "instance_ids", run.InstanceIDs)
	return run, nil
}

func (p *Provisioner) withDefaults(opts models.DeploymentOptions) (models.DeploymentOptions, error) {
	if opts.InstanceCount < 0 {
		return opts, srvErrors.NewValidationError("InstanceCount", "must not be negative")
	}
	if opts.InstanceCount == 0 {
		opts.InstanceCount = 1
	}
	if opts.UseDevWorker && p.cfg.Worker.Name == "" {
		return opts, srvErrors.NewValidationError("worker.name", "required to use the dev worker")
	}
	if opts.TerminationDate.IsZero() {
		opts.TerminationDate = p.now().AddDate(0, 0, p.cfg.AWS.TerminationDays)
	}
	if opts.SuiteBuild == "" {
		opts.SuiteBuild = p.cfg.Installation.SuiteBuild
	}
	if len(opts.Feeds) == 0 {
		for _, f := range p.cfg.Installation.Feeds {
			opts.Feeds = append(opts.Feeds, models.FeedItem{Name: f.Name, URI: f.URI})
		}
	}
	return opts, nil
}
