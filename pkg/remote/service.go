package remote

import (
	"context"

	"github.com/syslinkats/ats-harness/internal/models"
)

// CommandService is the remote execution fabric.
type CommandService interface {
	Submit(ctx context.Context, hostIDs []string, commands []string, document string) (string, error)
	Status(ctx context.Context, invocationID, hostID string) (models.HostOutput, error)
}

type Rebooter interface {
	Reboot(ctx context.Context, hostIDs []string) error
}

// Resolver maps public DNS names to instance ids.
type Resolver interface {
	PublicDNSNamesToIDs(ctx context.Context, names []string) ([]string, error)
}

type Recorder interface {
	RecordInvocation(ctx context.Context, rec models.InvocationRecord) error
}
