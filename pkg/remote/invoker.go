package remote

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

const (
	DefaultSettleTime    = 3 * time.Second
	DefaultPollInterval  = 5 * time.Second
	DefaultRunTimeBudget = 600 * time.Second
)

// Invoker drives a submitted command to completion by polling every host.
type Invoker struct {
	service      CommandService
	settleTime   time.Duration
	pollInterval time.Duration
}

type InvokerOption func(*Invoker)

func WithSettleTime(d time.Duration) InvokerOption {
	return func(i *Invoker) {
		i.settleTime = d
	}
}

func WithPollInterval(d time.Duration) InvokerOption {
	return func(i *Invoker) {
		i.pollInterval = d
	}
}

func NewInvoker(service CommandService, opts ...InvokerOption) *Invoker {
	i := &Invoker{
		service:      service,
		settleTime:   DefaultSettleTime,
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Poll waits for invocationID to finish on every host of req.
//
// The first host reporting standard error, or standard output when
// req.CaptureStdout is set, ends the whole invocation and its output is
// returned. The other hosts are abandoned in whatever state they are in.
// This only holds up for single-master deployments; aggregating results
// across hosts is not implemented.
//
// A nil result with a nil error means every host reached a terminal state
// without producing output.
func (i *Invoker) Poll(ctx context.Context, req models.CommandRequest, invocationID string) (*models.CommandResult, error) {
	log := zap.S().Named("remote_invoker").With("command_id", invocationID)

	budget := req.RunTimeBudget
	if budget <= 0 {
		budget = DefaultRunTimeBudget
	}

	inv := models.NewCommandInvocation(invocationID, req.HostIDs)

	if err := sleep(ctx, i.settleTime); err != nil {
		return nil, err
	}

	start := time.Now()
	for {
		if time.Since(start) > budget {
			log.Errorw("total command run time exceeded", "budget", budget, "pending", inv.Pending())
			return nil, srvErrors.NewCommandTimeoutError(inv.ID, budget, inv.Pending())
		}

		for _, hostID := range inv.Pending() {
			out, err := i.service.Status(ctx, inv.ID, hostID)
			if err != nil {
				return nil, fmt.Errorf("failed to get status of command %s on %s: %w", inv.ID, hostID, err)
			}

			host := inv.Hosts[hostID]
			host.State = out.Status
			host.Stdout = out.Stdout
			host.Stderr = out.Stderr

			log.Infow("command status", "instance", hostID, "status", out.Status, "run_time", time.Since(start).Round(time.Second))

			if out.Stderr != "" {
				if req.LogErrorAsWarning {
					log.Warnw("warning from standard error", "instance", hostID, "stderr", out.Stderr)
				} else {
					log.Errorw("standard error", "instance", hostID, "stderr", out.Stderr)
				}
				return &models.CommandResult{HostID: hostID, Output: out.Stderr, Stream: models.OutputStderr}, nil
			}

			if out.Stdout != "" {
				log.Infow("standard output", "instance", hostID, "stdout", out.Stdout)
				if req.CaptureStdout {
					return &models.CommandResult{HostID: hostID, Output: strings.TrimSpace(out.Stdout), Stream: models.OutputStdout}, nil
				}
			}

			switch {
			case out.Status.Failed():
				log.Errorw("one or more commands did not succeed", "instance", hostID, "status", out.Status, "commands", req.Commands)
				host.Complete(out.Status)
			case out.Status == models.HostStateSuccess:
				host.Complete(out.Status)
			}
		}

		if inv.AllDone() {
			return nil, nil
		}

		if err := sleep(ctx, i.pollInterval); err != nil {
			return nil, err
		}
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
