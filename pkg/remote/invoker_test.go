package remote_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/syslinkats/ats-harness/internal/models"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/remote"
)

var _ = Describe("Invoker", func() {
	var (
		ctx     context.Context
		service *fakeService
		invoker *remote.Invoker
	)

	BeforeEach(func() {
		ctx = context.Background()
		service = newFakeService()
		invoker = remote.NewInvoker(service, remote.WithSettleTime(0), remote.WithPollInterval(time.Millisecond))
	})

	request := func(hosts ...string) models.CommandRequest {
		return models.CommandRequest{
			HostIDs:       hosts,
			Commands:      []string{"nipkg feed-add"},
			RunTimeBudget: time.Second,
			Wait:          true,
		}
	}

	Context("run-time budget", func() {
		// Given a host that stays InProgress forever
		// When the budget elapses
		// Then polling should stop with CommandTimeoutError
		It("should fail with CommandTimeoutError and stop polling", func() {
			req := request("i-1")
			req.RunTimeBudget = 20 * time.Millisecond

			// Act
			_, err := invoker.Poll(ctx, req, "cmd-1")

			// Assert
			Expect(srvErrors.IsCommandTimeoutError(err)).To(BeTrue())
			calls := service.StatusCalls("i-1")
			Expect(calls).To(BeNumerically(">", 0))
			Consistently(func() int { return service.StatusCalls("i-1") }, 50*time.Millisecond, 5*time.Millisecond).Should(Equal(calls))
		})
	})

	Context("host completion", func() {
		// Given one host that succeeds immediately and one that takes three polls
		// When polling runs to completion
		// Then the completed host should never be queried again
		It("should not re-query completed hosts", func() {
			service.statuses["i-1"] = []models.HostOutput{{Status: models.HostStateSuccess}}
			service.statuses["i-2"] = []models.HostOutput{
				{Status: models.HostStatePending},
				{Status: models.HostStateInProgress},
				{Status: models.HostStateSuccess},
			}

			result, err := invoker.Poll(ctx, request("i-1", "i-2"), "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeNil())
			Expect(service.StatusCalls("i-1")).To(Equal(1))
			Expect(service.StatusCalls("i-2")).To(Equal(3))
		})

		It("should treat Failed and TimedOut as terminal", func() {
			service.statuses["i-1"] = []models.HostOutput{{Status: models.HostStateFailed}}
			service.statuses["i-2"] = []models.HostOutput{{Status: models.HostStateInProgress}, {Status: models.HostStateTimedOut}}

			result, err := invoker.Poll(ctx, request("i-1", "i-2"), "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeNil())
			Expect(service.StatusCalls("i-1")).To(Equal(1))
			Expect(service.StatusCalls("i-2")).To(Equal(2))
		})
	})

	Context("output", func() {
		// Given a host reporting "feed already exists" on standard error
		// When errors are not downgraded to warnings
		// Then the text is returned as the result without an error
		It("should return standard error as the result", func() {
			service.statuses["i-1"] = []models.HostOutput{{Status: models.HostStateFailed, Stderr: "feed already exists"}}

			result, err := invoker.Poll(ctx, request("i-1"), "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result).NotTo(BeNil())
			Expect(result.Output).To(Equal("feed already exists"))
			Expect(result.Stream).To(Equal(models.OutputStderr))
			Expect(result.HostID).To(Equal("i-1"))
		})

		It("should end the invocation at the first host with output", func() {
			service.statuses["i-1"] = []models.HostOutput{{Status: models.HostStateInProgress, Stderr: "warning"}}
			service.statuses["i-2"] = []models.HostOutput{{Status: models.HostStateSuccess}}

			result, err := invoker.Poll(ctx, request("i-1", "i-2"), "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.HostID).To(Equal("i-1"))
			Expect(service.StatusCalls("i-2")).To(BeZero())
		})

		It("should return trimmed standard output when captured", func() {
			service.statuses["i-1"] = []models.HostOutput{{Status: models.HostStateSuccess, Stdout: "  19.0.0\r\n"}}
			req := request("i-1")
			req.CaptureStdout = true

			result, err := invoker.Poll(ctx, req, "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Output).To(Equal("19.0.0"))
			Expect(result.Stream).To(Equal(models.OutputStdout))
		})

		It("should ignore standard output when not captured", func() {
			service.statuses["i-1"] = []models.HostOutput{{Status: models.HostStateSuccess, Stdout: "done"}}

			result, err := invoker.Poll(ctx, request("i-1"), "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(BeNil())
		})
	})

	Context("standard error log level", func() {
		var logs *observer.ObservedLogs

		BeforeEach(func() {
			var core zapcore.Core
			core, logs = observer.New(zapcore.DebugLevel)
			DeferCleanup(zap.ReplaceGlobals(zap.New(core)))
			service.statuses["i-1"] = []models.HostOutput{{Status: models.HostStateFailed, Stderr: "feed already exists"}}
		})

		stderrEntries := func() []observer.LoggedEntry {
			return logs.FilterField(zap.String("stderr", "feed already exists")).All()
		}

		It("should log standard error at error level by default", func() {
			_, err := invoker.Poll(ctx, request("i-1"), "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			entries := stderrEntries()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Level).To(Equal(zapcore.ErrorLevel))
		})

		It("should log standard error at warn level when downgraded", func() {
			req := request("i-1")
			req.LogErrorAsWarning = true

			_, err := invoker.Poll(ctx, req, "cmd-1")

			Expect(err).NotTo(HaveOccurred())
			entries := stderrEntries()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Level).To(Equal(zapcore.WarnLevel))
		})
	})

	Context("cancellation", func() {
		It("should stop when the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()

			_, err := invoker.Poll(cctx, request("i-1"), "cmd-1")

			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
