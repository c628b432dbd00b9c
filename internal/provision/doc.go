// Package provision deploys SystemLink test instances and installs software
// on them.
//
// A Provisioner turns a DeploymentOptions request into an ordered list of
// work units and runs them through a single-worker scheduler, awaiting each
// one before the next is queued:
//
//	deploy ─▶ remove-feeds ─▶ add-feeds ─▶ update-feeds ─▶ upgrade-updater
//	   ─▶ upgrade-package-manager ─▶ install-feeds ─▶ restart ─▶ add-users
//	   ─▶ configure-web-server ─▶ restart-web-server ─▶ record ─▶ notify
//
// The first failing step ends the run. Canceling the context stops the step
// in flight. The Run returned alongside the error tells which step failed
// and which instances exist at that point.
//
// The deploy step is replaced by the configured dev worker when
// UseDevWorker is set. Package manager commands that leave "error code N"
// on standard error are translated through the package manager code table;
// codes meaning success or a pending reboot are accepted.
package provision
