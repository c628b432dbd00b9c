package aws

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const socketDialTimeout = 5 * time.Second

// WaitForSocket dials host:port until it accepts a connection or retries run
// out.
func WaitForSocket(ctx context.Context, host string, port, retries int, delay time.Duration) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))
	dialer := net.Dialer{Timeout: socketDialTimeout}
	log := zap.S().Named("aws_instances")

	attempt := 0
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		attempt++
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err != nil {
			log.Debugw("socket not ready", "address", addr, "attempt", attempt, "error", err)
			return struct{}{}, err
		}
		_ = conn.Close()
		return struct{}{}, nil
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(delay)),
		backoff.WithMaxTries(uint(max(retries, 1))),
		backoff.WithMaxElapsedTime(0),
	)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s did not accept connections after %d attempts: %w", addr, attempt, err)
	}
	return nil
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
