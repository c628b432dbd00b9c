package provision_test

import (
	"context"
	"strings"
	"sync"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/pkg/aws"
	"github.com/syslinkats/ats-harness/pkg/remote"
	"github.com/syslinkats/ats-harness/pkg/teams"
)

type fakeInstances struct {
	imageID     string
	imageErr    error
	created     []string
	createErr   error
	privateDNS  map[string]string
	resolved    []string
	imageFilter []ec2types.Filter
	createReq   aws.CreateRequest
	rebooted    [][]string
}

func (f *fakeInstances) NewestImageID(_ context.Context, filters ...ec2types.Filter) (string, error) {
	f.imageFilter = filters
	return f.imageID, f.imageErr
}

func (f *fakeInstances) CreateInstances(_ context.Context, req aws.CreateRequest) ([]string, error) {
	f.createReq = req
	return f.created, f.createErr
}

func (f *fakeInstances) DescribeDNSNames(_ context.Context, filter aws.InstanceFilter, _ bool) ([]string, error) {
	var names []string
	for _, id := range filter.IDs {
		names = append(names, f.privateDNS[id])
	}
	return names, nil
}

func (f *fakeInstances) PublicDNSNamesToIDs(_ context.Context, _ []string) ([]string, error) {
	return f.resolved, nil
}

func (f *fakeInstances) Reboot(_ context.Context, ids []string) error {
	f.rebooted = append(f.rebooted, ids)
	return nil
}

// fakeRunner records every request and fails commands containing a key of
// failures.
type fakeRunner struct {
	mu       sync.Mutex
	requests []remote.RunRequest
	failures map[string]error
	block    chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context, req remote.RunRequest) (string, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	for k, err := range f.failures {
		if strings.Contains(req.Command, k) {
			return "", err
		}
	}
	return "", nil
}

func (f *fakeRunner) Commands() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.requests))
	for _, r := range f.requests {
		out = append(out, r.Command)
	}
	return out
}

type fakeRecorder struct {
	records []models.InstanceRecord
}

func (f *fakeRecorder) Save(_ context.Context, r models.InstanceRecord) error {
	f.records = append(f.records, r)
	return nil
}

type fakeNotifier struct {
	webhook string
	message *teams.DeploymentMessage
}

func (f *fakeNotifier) SendDeployment(_ context.Context, webhook string, m teams.DeploymentMessage) error {
	f.webhook = webhook
	f.message = &m
	return nil
}
