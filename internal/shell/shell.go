package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/models"
)

const DefaultTimeout = time.Hour

// Command is a local process to run.
type Command struct {
	Name    string
	Args    []string
	Dir     string
	Env     []string
	Timeout time.Duration
}

// Run executes cmd and waits for it to exit. A non-zero exit code is not an
// error; it is reported in the returned output.
func Run(ctx context.Context, cmd Command) (models.ProcessOutput, error) {
	log := zap.S().Named("shell")

	if cmd.Name == "" {
		return models.ProcessOutput{}, errors.New("no command to run")
	}
	timeout := cmd.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	if len(cmd.Env) > 0 {
		c.Env = append(c.Environ(), cmd.Env...)
	}
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	log.Infow("running command", "command", cmd.Name, "args", cmd.Args)
	err := c.Run()

	out := models.ProcessOutput{Stdout: stdout.String(), Stderr: stderr.String()}
	if ctx.Err() == context.DeadlineExceeded {
		log.Errorw("command timed out", "command", cmd.Name, "timeout", timeout)
		return out, fmt.Errorf("%s timed out after %s: %w", cmd.Name, timeout, ctx.Err())
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		out.ReturnCode = exitErr.ExitCode()
	default:
		log.Errorw("command failed to start", "command", cmd.Name, "error", err)
		return out, err
	}

	log.Infow("command result", "return_code", out.ReturnCode, "stdout", out.Stdout, "stderr", out.Stderr)
	return out, nil
}
