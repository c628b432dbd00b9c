// Package scheduler runs work items on a fixed worker pool and hands back
// futures.
//
// The provisioning pipeline uses a single worker so its steps execute one at
// a time, in the order they were added, while each step still runs on its own
// cancellable context.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────────┐
//	│                           Scheduler                                 │
//	│                                                                     │
//	│  ┌──────────────┐      ┌──────────────┐      ┌──────────────┐       │
//	│  │   Worker 1   │      │   Worker 2   │      │   Worker N   │       │
//	│  └──────────────┘      └──────────────┘      └──────────────┘       │
//	│         ▲        idle ◄───────┼──────────────────────┘              │
//	│         └─────────────────────┤                                     │
//	│                        ┌──────┴──────┐                              │
//	│                        │  dispatch() │                              │
//	│                        └──────┬──────┘                              │
//	│  ┌────────────────────────────┴────────────────────────────┐        │
//	│  │                     Pending Queue                        │        │
//	│  └─────────────────────────────────────────────────────────┘        │
//	│                               ▲                                     │
//	│                        AddWork(ctx, fn)                             │
//	└─────────────────────────────────────────────────────────────────────┘
//
// # Event Loop
//
//	for {
//	    select {
//	    case w := <-s.work:    // new work: queue it, dispatch
//	    case <-s.idle:         // a worker finished: return it, dispatch
//	    case <-s.closing:      // fail pending work, wait for in-flight work
//	    }
//	}
//
// Worker completion and scheduler shutdown use separate channels, so Close
// always waits for the loop itself to exit.
//
// # Cancellation
//
// The context handed to a work item ends when any of these happen:
//   - the ctx passed to AddWork ends
//   - future.Stop() is called
//   - scheduler.Close() is called
//
// Work added after Close, and work still queued when Close runs, receives
// context.Canceled without ever running.
//
// # Futures
//
//	future := sched.AddWork(ctx, func(ctx context.Context) (any, error) {
//	    return deploy(ctx)
//	})
//
//	// Block until done, or until ctx ends and the work has reacted to it.
//	res := future.Await(ctx)
//
//	// Or select on the raw channel.
//	select {
//	case res := <-future.C():
//	case <-time.After(time.Minute):
//	    future.Stop()
//	}
//
// Each future receives exactly one Result. A panic in a work item is
// recovered and delivered as the error of that Result.
package scheduler
