package remote

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

const (
	DefaultSubmitRetryCount = 60
	DefaultSubmitBackoff    = 60 * time.Second

	// rebootEvery reboots the targets on submission attempts 0, 3, 6...
	rebootEvery = 3
)

// Dispatcher submits commands, rebooting hosts that fail to register with
// the execution fabric, then hands the invocation to an Invoker.
type Dispatcher struct {
	service       CommandService
	rebooter      Rebooter
	invoker       *Invoker
	recorder      Recorder
	submitBackoff time.Duration
}

type DispatcherOption func(*Dispatcher)

func WithSubmitBackoff(interval time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		d.submitBackoff = interval
	}
}

func WithInvoker(i *Invoker) DispatcherOption {
	return func(d *Dispatcher) {
		d.invoker = i
	}
}

func WithRecorder(r Recorder) DispatcherOption {
	return func(d *Dispatcher) {
		d.recorder = r
	}
}

func NewDispatcher(service CommandService, rebooter Rebooter, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		service:       service,
		rebooter:      rebooter,
		submitBackoff: DefaultSubmitBackoff,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.invoker == nil {
		d.invoker = NewInvoker(service)
	}
	return d
}

// Send submits req and, when req.Wait is set, polls it to completion.
func (d *Dispatcher) Send(ctx context.Context, req models.CommandRequest) (*models.CommandResult, error) {
	req, err := normalize(req)
	if err != nil {
		return nil, err
	}

	log := zap.S().Named("remote_dispatcher")

	id, err := d.submit(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Infow("command submitted", "command_id", id, "instances", req.HostIDs, "document", req.Platform.DocumentName())

	if !req.Wait {
		log.Infow("not waiting for command invocation to complete", "command_id", id)
		d.record(ctx, id, req, nil, nil)
		return nil, nil
	}

	result, err := d.invoker.Poll(ctx, req, id)
	d.record(ctx, id, req, result, err)
	return result, err
}

func (d *Dispatcher) submit(ctx context.Context, req models.CommandRequest) (string, error) {
	log := zap.S().Named("remote_dispatcher")

	start := time.Now()
	rc := models.RetryContext{
		AttemptsRemaining: req.SubmitRetryCount,
		RebootEvery:       rebootEvery,
	}

	operation := func() (string, error) {
		id, err := d.service.Submit(ctx, req.HostIDs, req.Commands, req.Platform.DocumentName())
		if err == nil {
			return id, nil
		}

		if srvErrors.IsClientError(err) {
			log.Errorw("command rejected", "instances", req.HostIDs, "error", err)
			return "", backoff.Permanent(err)
		}

		rc.AttemptsRemaining--
		rc.Elapsed = time.Since(start)
		if rc.AttemptsRemaining <= 0 {
			log.Errorw("failed to send command", "attempts", rc.Attempt+1, "elapsed", rc.Elapsed, "error", err)
			return "", err
		}

		log.Warnw("an error occurred while sending a command", "retry", rc.Attempt, "error", err)
		if rc.ShouldReboot() {
			log.Infow("rebooting instances before retrying", "instances", req.HostIDs)
			if rerr := d.rebooter.Reboot(ctx, req.HostIDs); rerr != nil {
				return "", backoff.Permanent(fmt.Errorf("failed to reboot %v: %w", req.HostIDs, rerr))
			}
		}
		rc.Attempt++
		return "", err
	}

	id, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(d.submitBackoff)),
		backoff.WithMaxTries(uint(req.SubmitRetryCount)),
		backoff.WithMaxElapsedTime(0),
	)
	if err != nil {
		var permanent *backoff.PermanentError
		if errors.As(err, &permanent) {
			return "", permanent.Unwrap()
		}
		return "", err
	}
	return id, nil
}

func (d *Dispatcher) record(ctx context.Context, id string, req models.CommandRequest, result *models.CommandResult, err error) {
	if d.recorder == nil {
		return
	}

	rec := models.InvocationRecord{
		ID:        id,
		Document:  req.Platform.DocumentName(),
		HostIDs:   req.HostIDs,
		Commands:  req.Commands,
		Outcome:   models.InvocationOutcomeCompleted,
		CreatedAt: time.Now(),
	}
	switch {
	case !req.Wait:
		rec.Outcome = models.InvocationOutcomeSubmitted
	case srvErrors.IsCommandTimeoutError(err):
		rec.Outcome = models.InvocationOutcomeTimeout
	case err != nil:
		rec.Outcome = models.InvocationOutcomeError
		rec.Output = err.Error()
	case result != nil && result.Stream == models.OutputStderr:
		rec.Outcome = models.InvocationOutcomeStderr
		rec.Output = result.Output
	case result != nil:
		rec.Outcome = models.InvocationOutcomeStdout
		rec.Output = result.Output
	}

	if rerr := d.recorder.RecordInvocation(ctx, rec); rerr != nil {
		zap.S().Named("remote_dispatcher").Warnw("failed to record invocation", "command_id", id, "error", rerr)
	}
}

func normalize(req models.CommandRequest) (models.CommandRequest, error) {
	if len(req.HostIDs) == 0 {
		return req, srvErrors.NewClientError("", "a valid list of instance ids is required", srvErrors.NewValidationError("HostIDs", "empty"))
	}
	if len(req.Commands) == 0 {
		return req, srvErrors.NewClientError("", "at least one command is required", srvErrors.NewValidationError("Commands", "empty"))
	}

	req.HostIDs = append([]string(nil), req.HostIDs...)
	req.Commands = append([]string(nil), req.Commands...)
	if req.Platform == "" {
		req.Platform = models.PlatformWindows
	}
	if req.SubmitRetryCount <= 0 {
		req.SubmitRetryCount = DefaultSubmitRetryCount
	}
	if req.RunTimeBudget <= 0 {
		req.RunTimeBudget = DefaultRunTimeBudget
	}
	return req, nil
}
