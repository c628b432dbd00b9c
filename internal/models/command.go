package models

import (
	"fmt"
	"strings"
	"time"
)

// Platform selects the remote execution document used to run a command.
type Platform string

const (
	PlatformWindows Platform = "Windows"
	PlatformLinux   Platform = "Linux"
)

func (p Platform) DocumentName() string {
	if p == PlatformLinux {
		return "AWS-RunShellScript"
	}
	return "AWS-RunPowerShellScript"
}

func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "", "windows":
		return PlatformWindows, nil
	case "linux":
		return PlatformLinux, nil
	default:
		return "", fmt.Errorf("unknown platform %q", s)
	}
}

// HostState is the per-host status reported by the remote execution service.
type HostState string

const (
	HostStatePending    HostState = "Pending"
	HostStateInProgress HostState = "InProgress"
	HostStateDelayed    HostState = "Delayed"
	HostStateSuccess    HostState = "Success"
	HostStateFailed     HostState = "Failed"
	HostStateTimedOut   HostState = "TimedOut"
	HostStateCancelling HostState = "Cancelling"
	HostStateCancelled  HostState = "Cancelled"
)

// Terminal reports whether the host will not change state again.
func (s HostState) Terminal() bool {
	switch s {
	case HostStateSuccess, HostStateFailed, HostStateTimedOut, HostStateCancelled:
		return true
	}
	return false
}

// Failed reports whether a terminal state is a failure.
func (s HostState) Failed() bool {
	return s == HostStateFailed || s == HostStateTimedOut || s == HostStateCancelled
}

// HostOutput is one status query answer for a single host.
type HostOutput struct {
	Status HostState
	Stdout string
	Stderr string
}

type HostCommandStatus struct {
	State     HostState
	Completed bool
	Stdout    string
	Stderr    string
}

// Complete marks the host as finished. Once completed a host never reopens.
func (h *HostCommandStatus) Complete(state HostState) {
	if h.Completed {
		return
	}
	h.State = state
	h.Completed = true
}

// CommandInvocation tracks one submitted command across its target hosts.
type CommandInvocation struct {
	ID    string
	Hosts map[string]*HostCommandStatus
	order []string
}

func NewCommandInvocation(id string, hostIDs []string) *CommandInvocation {
	inv := &CommandInvocation{
		ID:    id,
		Hosts: make(map[string]*HostCommandStatus, len(hostIDs)),
	}
	for _, h := range hostIDs {
		if _, ok := inv.Hosts[h]; ok {
			continue
		}
		inv.Hosts[h] = &HostCommandStatus{State: HostStatePending}
		inv.order = append(inv.order, h)
	}
	return inv
}

// HostIDs returns the hosts in submission order.
func (c *CommandInvocation) HostIDs() []string {
	return append([]string(nil), c.order...)
}

// Pending returns hosts not yet completed, in submission order.
func (c *CommandInvocation) Pending() []string {
	var pending []string
	for _, h := range c.order {
		if !c.Hosts[h].Completed {
			pending = append(pending, h)
		}
	}
	return pending
}

func (c *CommandInvocation) AllDone() bool {
	return len(c.Pending()) == 0
}

// CommandRequest is immutable once submitted.
type CommandRequest struct {
	HostIDs           []string
	Commands          []string
	Platform          Platform
	RunTimeBudget     time.Duration
	SubmitRetryCount  int
	Wait              bool
	CaptureStdout     bool
	LogErrorAsWarning bool
}

type OutputStream string

const (
	OutputStdout OutputStream = "stdout"
	OutputStderr OutputStream = "stderr"
)

// CommandResult is the output of the first host that produced any.
type CommandResult struct {
	HostID string
	Output string
	Stream OutputStream
}

// RetryContext tracks submission attempts.
type RetryContext struct {
	Attempt           int
	AttemptsRemaining int
	Elapsed           time.Duration
	RebootEvery       int
}

// ShouldReboot reports whether hosts are rebooted before the next attempt.
// Rebooting never happens after the final attempt.
func (r RetryContext) ShouldReboot() bool {
	if r.RebootEvery <= 0 || r.AttemptsRemaining <= 0 {
		return false
	}
	return r.Attempt%r.RebootEvery == 0
}
