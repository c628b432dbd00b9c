package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/config"
	"github.com/syslinkats/ats-harness/internal/store"
	"github.com/syslinkats/ats-harness/pkg/aws"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/httpverb"
	"github.com/syslinkats/ats-harness/pkg/remote"
	"github.com/syslinkats/ats-harness/pkg/teams"
)

// app holds the configuration and the collaborators commands share. They
// are created on first use so that a command only needs the credentials
// it actually uses.
type app struct {
	opts   rootOptions
	cfg    *config.Configuration
	logger *zap.Logger

	ledger    *store.Store
	instances *aws.Instances
	clients   *aws.Clients
}

func (a *app) teardown(*cobra.Command, []string) error {
	if a.ledger != nil {
		if err := a.ledger.Close(); err != nil {
			zap.S().Named("ats").Warnw("failed to close ledger", "error", err)
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return nil
}

func (a *app) Ledger(ctx context.Context) (*store.Store, error) {
	if a.ledger != nil {
		return a.ledger, nil
	}
	db, err := store.NewDB(a.cfg.Store.Path)
	if err != nil {
		return nil, err
	}
	s := store.NewStore(db)
	if err := s.Migrate(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	a.ledger = s
	return s, nil
}

func (a *app) awsClients(ctx context.Context) (*aws.Clients, error) {
	if a.clients != nil {
		return a.clients, nil
	}
	c, err := aws.NewClients(ctx, a.cfg.AWS.Region)
	if err != nil {
		return nil, err
	}
	a.clients = c
	return c, nil
}

func (a *app) Instances(ctx context.Context) (*aws.Instances, error) {
	if a.instances != nil {
		return a.instances, nil
	}
	c, err := a.awsClients(ctx)
	if err != nil {
		return nil, err
	}
	a.instances = aws.NewInstances(c.EC2, aws.WithPublicDNSSuffix(a.cfg.AWS.PublicDNSSuffix))
	return a.instances, nil
}

// Runner runs remote commands and records every invocation in the ledger.
func (a *app) Runner(ctx context.Context) (*remote.Runner, error) {
	instances, err := a.Instances(ctx)
	if err != nil {
		return nil, err
	}
	ledger, err := a.Ledger(ctx)
	if err != nil {
		return nil, err
	}

	service := aws.NewCommandService(a.clients.SSM)
	invoker := remote.NewInvoker(service,
		remote.WithSettleTime(a.cfg.Remote.SettleTime),
		remote.WithPollInterval(a.cfg.Remote.PollInterval),
	)
	dispatcher := remote.NewDispatcher(service, instances,
		remote.WithInvoker(invoker),
		remote.WithSubmitBackoff(a.cfg.Remote.SubmitBackoff),
		remote.WithRecorder(ledger.Invocations()),
	)
	return remote.NewRunner(dispatcher, instances, remote.WithRunRetryDelay(a.cfg.Remote.RunRetryDelay)), nil
}

func (a *app) httpClient(username, password string) *httpverb.Client {
	return httpverb.NewClient(username, password,
		httpverb.WithDebug(a.cfg.HTTP.Debug),
		httpverb.WithRetryDelay(a.cfg.HTTP.RetryDelay),
		httpverb.WithRetryCount(a.cfg.HTTP.RetryCount),
		httpverb.WithTimeout(a.cfg.HTTP.Timeout),
	)
}

func (a *app) Notifier() *teams.Notifier {
	return teams.NewNotifier(a.httpClient("", ""))
}

func (a *app) requireTestMonitor() error {
	if a.cfg.TestMonitor.URL == "" {
		return srvErrors.NewValidationError("test_monitor.url", "required to upload results")
	}
	return nil
}
