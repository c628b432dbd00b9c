package remote

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

const (
	DefaultRunRetryCount    = 3
	DefaultRunCommandBudget = 30 * time.Second
	DefaultRunRetryDelay    = 10 * time.Second
)

type RunRequest struct {
	PublicDNSNames    []string
	InstanceIDs       []string
	Command           string
	OutputIgnoreList  []string
	RunTimeBudget     time.Duration
	RetryCount        int
	SubmitRetryCount  int
	Platform          models.Platform
	LogErrorAsWarning bool
}

// Runner runs a single command with output checking on top of a Dispatcher.
type Runner struct {
	dispatcher *Dispatcher
	resolver   Resolver
	retryDelay time.Duration
}

type RunnerOption func(*Runner)

func WithRunRetryDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.retryDelay = d
	}
}

func NewRunner(dispatcher *Dispatcher, resolver Resolver, opts ...RunnerOption) *Runner {
	r := &Runner{
		dispatcher: dispatcher,
		resolver:   resolver,
		retryDelay: DefaultRunRetryDelay,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes req.Command and returns its standard output, if any.
//
// Standard error containing any entry of req.OutputIgnoreList is accepted,
// as is any standard error when req.LogErrorAsWarning is set. Other
// standard error is retried and, on the last attempt, returned as
// RemoteCommandOutputNotEmpty. A blown run-time budget re-runs the command.
func (r *Runner) Run(ctx context.Context, req RunRequest) (string, error) {
	log := zap.S().Named("remote_runner")

	if strings.TrimSpace(req.Command) == "" {
		return "", srvErrors.NewClientError("", "a remote command is required", srvErrors.NewValidationError("Command", "empty"))
	}
	if len(req.PublicDNSNames) == 0 && len(req.InstanceIDs) == 0 {
		return "", srvErrors.NewClientError("", "either public DNS names or instance ids are required", srvErrors.NewValidationError("PublicDNSNames", "empty"))
	}
	if req.RunTimeBudget <= 0 {
		req.RunTimeBudget = DefaultRunCommandBudget
	}
	if req.RetryCount <= 0 {
		req.RetryCount = DefaultRunRetryCount
	}

	ids := req.InstanceIDs
	if len(ids) == 0 {
		var err error
		ids, err = r.resolver.PublicDNSNamesToIDs(ctx, req.PublicDNSNames)
		if err != nil {
			return "", err
		}
		if len(ids) == 0 {
			return "", srvErrors.NewResourceNotFoundError("instance", strings.Join(req.PublicDNSNames, ","))
		}
	}

	targets := req.PublicDNSNames
	if len(targets) == 0 {
		targets = ids
	}

	var lastErr error
	for attempt := 0; attempt < req.RetryCount; attempt++ {
		log.Infow("running remote command", "targets", targets, "command", req.Command, "attempt", attempt)

		result, err := r.dispatcher.Send(ctx, models.CommandRequest{
			HostIDs:           ids,
			Commands:          []string{req.Command},
			Platform:          req.Platform,
			RunTimeBudget:     req.RunTimeBudget,
			SubmitRetryCount:  req.SubmitRetryCount,
			Wait:              true,
			CaptureStdout:     true,
			LogErrorAsWarning: req.LogErrorAsWarning,
		})
		if srvErrors.IsCommandTimeoutError(err) {
			lastErr = err
			continue
		}
		if err != nil {
			return "", err
		}

		if result == nil {
			return "", nil
		}
		if result.Stream == models.OutputStdout {
			return result.Output, nil
		}
		if Ignored(result.Output, req.OutputIgnoreList) {
			log.Infow("ignoring command output", "targets", targets, "output", result.Output)
			return result.Output, nil
		}
		if req.LogErrorAsWarning {
			log.Warnw("remote command returned error output", "targets", targets, "output", result.Output)
			return result.Output, nil
		}

		if attempt == req.RetryCount-1 {
			log.Errorw("remote command returned unexpected output", "targets", targets, "output", result.Output)
			return "", srvErrors.NewRemoteCommandOutputNotEmpty(result.HostID, result.Output)
		}

		log.Warnw("retrying remote command", "targets", targets, "command", req.Command)
		if err := sleep(ctx, r.retryDelay); err != nil {
			return "", err
		}
	}

	return "", lastErr
}

// Ignored reports whether output contains any of the ignore patterns.
func Ignored(output string, ignore []string) bool {
	for _, pattern := range ignore {
		if pattern != "" && strings.Contains(output, pattern) {
			return true
		}
	}
	return false
}
