package models

import (
	"context"
	"time"
)

// ProvisionState is the state of a provisioning run.
type ProvisionState string

const (
	ProvisionStateRunning   ProvisionState = "running"
	ProvisionStateCompleted ProvisionState = "completed"
	ProvisionStateCanceled  ProvisionState = "canceled"
	ProvisionStateError     ProvisionState = "error"
)

// ProvisionStatus holds the state of a run and the step it stopped at.
type ProvisionStatus struct {
	State ProvisionState
	Step  string
	Error error
}

// ProvisionWorkUnit is one step of the provisioning workflow.
type ProvisionWorkUnit struct {
	Name string
	Work func() func(ctx context.Context) (any, error)
}

type ProvisionWorkBuilder interface {
	Build() []ProvisionWorkUnit
}

// FeedItem is a package feed installed on an instance.
type FeedItem struct {
	Name string
	URI  string
}

// DeploymentOptions are the per-run choices of a provisioning request.
type DeploymentOptions struct {
	UseDevWorker    bool
	AMIID           string
	InstanceCount   int
	TerminationDate time.Time
	TestDay         bool
	Note            string
	SuiteBuild      string
	Feeds           []FeedItem
	SkipNotify      bool
}
