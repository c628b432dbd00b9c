package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/store"
	"github.com/syslinkats/ats-harness/pkg/remote"
)

var _ remote.Recorder = (*store.InvocationStore)(nil)

var _ = Describe("InvocationStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()
		db, s = newLedger(ctx)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	// Given a recorded invocation
	// When we list invocations
	// Then host ids and commands should be decoded
	It("should record and list an invocation", func() {
		// Arrange
		rec := models.InvocationRecord{
			ID:       "cmd-1",
			Document: "AWS-RunPowerShellScript",
			HostIDs:  []string{"i-1", "i-2"},
			Commands: []string{"nipkg list"},
			Outcome:  models.InvocationOutcomeCompleted,
			Output:   "ok",
		}

		// Act
		err := s.Invocations().RecordInvocation(ctx, rec)
		Expect(err).NotTo(HaveOccurred())
		got, err := s.Invocations().List(ctx)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Document).To(Equal("AWS-RunPowerShellScript"))
		Expect(got[0].HostIDs).To(Equal([]string{"i-1", "i-2"}))
		Expect(got[0].Commands).To(Equal([]string{"nipkg list"}))
		Expect(got[0].Outcome).To(Equal(models.InvocationOutcomeCompleted))
		Expect(got[0].Output).To(Equal("ok"))
	})

	It("should update the outcome when an id is recorded twice", func() {
		rec := models.InvocationRecord{ID: "cmd-1", Document: "AWS-RunShellScript", Outcome: models.InvocationOutcomeSubmitted}
		Expect(s.Invocations().RecordInvocation(ctx, rec)).To(Succeed())

		rec.Outcome = models.InvocationOutcomeStderr
		rec.Output = "boom"
		Expect(s.Invocations().RecordInvocation(ctx, rec)).To(Succeed())

		got, err := s.Invocations().List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(1))
		Expect(got[0].Outcome).To(Equal(models.InvocationOutcomeStderr))
		Expect(got[0].Output).To(Equal("boom"))
		Expect(got[0].HostIDs).To(BeEmpty())
	})

	It("should filter by outcome", func() {
		Expect(s.Invocations().RecordInvocation(ctx, models.InvocationRecord{ID: "a", Document: "d", Outcome: models.InvocationOutcomeTimeout})).To(Succeed())
		Expect(s.Invocations().RecordInvocation(ctx, models.InvocationRecord{ID: "b", Document: "d", Outcome: models.InvocationOutcomeCompleted})).To(Succeed())

		got, err := s.Invocations().List(ctx, store.ByOutcomes(string(models.InvocationOutcomeTimeout)))
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(1))
		Expect(got[0].ID).To(Equal("a"))

		n, err := s.Invocations().Count(ctx, store.ByOutcomes(string(models.InvocationOutcomeCompleted)))
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(1))
	})
})
