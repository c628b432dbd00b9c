package report_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/report"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/httpverb"
	"github.com/syslinkats/ats-harness/pkg/teams"
)

type fakeRuns struct {
	saved []models.TestRunRecord
	err   error
}

func (f *fakeRuns) Save(_ context.Context, rec models.TestRunRecord) error {
	f.saved = append(f.saved, rec)
	return f.err
}

type fakeNotifier struct {
	webhooks []string
	notices  []teams.FailureNotice
}

func (f *fakeNotifier) SendFailureNotice(_ context.Context, webhook string, n teams.FailureNotice) error {
	f.webhooks = append(f.webhooks, webhook)
	f.notices = append(f.notices, n)
	return nil
}

var _ = Describe("Reporter", func() {
	var (
		ctx      context.Context
		dir      string
		fake     *fakeSystemLink
		server   *httptest.Server
		runs     *fakeRuns
		notifier *fakeNotifier
		reporter *report.Reporter
	)

	BeforeEach(func() {
		ctx = context.Background()
		dir = GinkgoT().TempDir()
		fake = &fakeSystemLink{}
		server = httptest.NewServer(fake.handler())
		runs = &fakeRuns{}
		notifier = &fakeNotifier{}
		tm := report.NewTestMonitor(httpverb.NewClient("admin", "pw", httpverb.WithRetryDelay(time.Millisecond)), server.URL)
		reporter = report.NewReporter(tm, runs, notifier)
	})

	AfterEach(func() {
		server.Close()
	})

	// Given a junit file with failures and no result id
	// When we report it
	// Then a result is created, the file attached, steps posted and the run recorded
	It("should report a junit file end to end", func() {
		// Arrange
		path := writeFile(dir, "junit.xml", junitDoc)

		// Act
		summary, err := reporter.Report(ctx, report.Request{
			Format:         report.FormatJUnit,
			Path:           path,
			Suite:          "daily",
			SerialNumber:   "19.6.0",
			ProgramName:    "SystemLink ATS",
			FailureWebhook: "https://teams/hook",
			SquadOwners:    []string{"Squad A"},
		})

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.ResultID).To(Equal("result-7"))
		Expect(fake.uploads).To(HaveLen(1))
		Expect(fake.updates).To(HaveLen(1))
		Expect(fake.stepBatches).To(HaveLen(1))
		for _, s := range fake.stepBatches[0] {
			Expect(s["resultId"]).To(Equal("result-7"))
		}

		Expect(runs.saved).To(HaveLen(1))
		Expect(runs.saved[0].Suite).To(Equal("daily"))
		Expect(runs.saved[0].Source).To(Equal("junit"))
		Expect(runs.saved[0].Failed).To(Equal(1))
		Expect(runs.saved[0].Errored).To(Equal(1))
		Expect(runs.saved[0].ResultID).To(Equal("result-7"))

		Expect(notifier.webhooks).To(Equal([]string{"https://teams/hook"}))
		Expect(notifier.notices[0].SquadOwners).To(Equal([]string{"Squad A"}))
		Expect(notifier.notices[0].Issues).To(HaveLen(2))
		Expect(notifier.notices[0].Issues[0].Name).To(Equal("daily/test_login/test_bad"))
		Expect(notifier.notices[0].Issues[0].Value).To(Equal("Failed: AssertionError"))
	})

	It("should reuse a configured result id", func() {
		path := writeFile(dir, "xunit.xml", xunitDoc)

		summary, err := reporter.Report(ctx, report.Request{
			Format:   report.FormatXUnit,
			Path:     path,
			Suite:    "api",
			ResultID: "existing",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(summary.ResultID).To(Equal("existing"))
		Expect(fake.created).To(BeEmpty())
		Expect(notifier.notices).To(BeEmpty())
	})

	It("should not send a notice when everything passed", func() {
		path := writeFile(dir, "junit.xml", `<testsuite name="s"><testcase name="a"/></testsuite>`)

		_, err := reporter.Report(ctx, report.Request{
			Format:         report.FormatJUnit,
			Path:           path,
			Suite:          "s",
			FailureWebhook: "https://teams/hook",
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(notifier.notices).To(BeEmpty())
	})

	It("should only log ledger failures", func() {
		runs.err = errors.New("disk full")
		path := writeFile(dir, "junit.xml", junitDoc)

		_, err := reporter.Report(ctx, report.Request{Format: report.FormatJUnit, Path: path, Suite: "daily"})

		Expect(err).NotTo(HaveOccurred())
	})

	It("should not upload anything for an unparsable file", func() {
		path := writeFile(dir, "junit.xml", "<testsuite")

		_, err := reporter.Report(ctx, report.Request{Format: report.FormatJUnit, Path: path, Suite: "daily"})

		Expect(err).To(HaveOccurred())
		Expect(fake.uploads).To(BeEmpty())
	})

	It("should require a suite", func() {
		_, err := reporter.Report(ctx, report.Request{Format: report.FormatJUnit, Path: "x"})

		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	It("should work offline and write a workbook", func() {
		// Arrange
		offline := report.NewReporter(nil, nil, nil)
		path := writeFile(dir, "junit.xml", junitDoc)
		xlsx := filepath.Join(dir, "summary.xlsx")

		// Act
		summary, err := offline.Report(ctx, report.Request{
			Format:       report.FormatJUnit,
			Path:         path,
			Suite:        "daily",
			WorkbookPath: xlsx,
		})

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Record.Total()).To(Equal(4))

		f, err := excelize.OpenFile(xlsx)
		Expect(err).NotTo(HaveOccurred())
		defer f.Close()

		rows, err := f.GetRows("Summary")
		Expect(err).NotTo(HaveOccurred())
		Expect(rows[0]).To(Equal([]string{"Suite", "daily"}))
		Expect(rows[3]).To(Equal([]string{"Failed", "1"}))

		steps, err := f.GetRows("Steps")
		Expect(err).NotTo(HaveOccurred())
		Expect(steps).To(HaveLen(len(summary.Tree.Steps()) + 1))
		Expect(steps[0][0]).To(Equal("Name"))
	})
})
