// Package remote runs commands on EC2 instances through a remote execution
// service and drives them to completion.
//
// # Components
//
//	┌──────────┐  Run   ┌────────────┐  Send   ┌─────────┐  Poll   ┌─────────────────┐
//	│  Runner  │───────▶│ Dispatcher │───────▶│ Invoker │───────▶│ CommandService  │
//	└──────────┘        └────────────┘        └─────────┘        └─────────────────┘
//	 output checks       submission retry      status polling     Submit / Status
//	 ignore list         reboot escalation     run-time budget
//
// # Submission
//
// The Dispatcher submits a command up to SubmitRetryCount times (default 60)
// with a fixed 60s backoff. Before sleeping on attempts 0, 3, 6... it
// reboots the targets, since an agent that never registered usually needs a
// restart. A ClientError is returned immediately.
//
// # Polling
//
//	[Submitted] --settle 3s--> [Pending|InProgress] --all hosts terminal--> [Done]
//	                                  │
//	                                  └── elapsed > budget ──▶ CommandTimeoutError
//
// Hosts move Pending → InProgress → {Success | Failed | TimedOut}. Terminal
// hosts are never queried again. Hosts are polled sequentially every 5s.
//
// The first host that reports standard error (or standard output when it is
// captured) ends the invocation. Its output is the result.
//
// # Usage
//
//	d := remote.NewDispatcher(ssmService, ec2Instances)
//	r := remote.NewRunner(d, ec2Instances)
//
//	out, err := r.Run(ctx, remote.RunRequest{
//	    PublicDNSNames:   []string{"ec2-1-2-3-4.aws.natinst.com"},
//	    Command:          "nipkg feed-add ...",
//	    OutputIgnoreList: []string{"already exists"},
//	})
package remote
