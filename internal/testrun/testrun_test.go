package testrun_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/syslinkats/ats-harness/internal/config"
	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/shell"
	"github.com/syslinkats/ats-harness/internal/testrun"
	"github.com/syslinkats/ats-harness/internal/util"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
)

var _ = Describe("Args", func() {
	var cfg config.TestRun

	BeforeEach(func() {
		c, err := config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())
		cfg = c.TestRun
	})

	It("should build the default command line", func() {
		args := testrun.Args(cfg, testrun.Options{ConfigPath: "ats.json", PassThrough: []string{"--foo"}})

		Expect(args).To(Equal([]string{
			"-m", "daily and not long_run_time",
			"--junitxml", "result.xml",
			"--use-dev-worker", "False",
			"--ats-config-path", "ats.json",
			"--disable-reporting", "True",
			"--operator", "NI Test",
			"--pass-through-args", "['--foo']",
			"--ignore", "common/",
			"--ignore", "buckets/nxg",
		}))
	})

	It("should add worker count and fail fast flags", func() {
		cfg.CPUCount = 4
		cfg.StopOnFirstFail = true

		args := testrun.Args(cfg, testrun.Options{UseDevWorker: true})

		Expect(args[:3]).To(Equal([]string{"-n", "4", "-x"}))
		Expect(util.ValueFromArgList(args, "--use-dev-worker", "")).To(Equal("True"))
	})

	DescribeTable("pass-through args as a Python list",
		func(items []string, want string) {
			args := testrun.Args(cfg, testrun.Options{PassThrough: items})

			Expect(util.ValueFromArgList(args, "--pass-through-args", "")).To(Equal(want))
		},
		Entry("none", []string{}, "[]"),
		Entry("several", []string{"--foo", "bar"}, "['--foo', 'bar']"),
		Entry("single quote", []string{"it's"}, `["it's"]`),
		Entry("both quotes", []string{`a'b"c`}, `['a\'b"c']`),
		Entry("backslash", []string{`C:\tmp`}, `['C:\\tmp']`),
	)
})

var _ = Describe("Runner", func() {
	var cfg config.TestRun

	BeforeEach(func() {
		c, err := config.NewConfigurationWithDefaults()
		Expect(err).NotTo(HaveOccurred())
		cfg = c.TestRun
	})

	It("should report a failing session through its exit code", func() {
		var got shell.Command
		r := testrun.NewRunner(cfg, testrun.WithExec(func(_ context.Context, cmd shell.Command) (models.ProcessOutput, error) {
			got = cmd
			return models.ProcessOutput{ReturnCode: 1}, nil
		}))

		out, err := r.Run(context.Background(), testrun.Options{Dir: "tests"})

		Expect(err).NotTo(HaveOccurred())
		Expect(out.ReturnCode).To(Equal(1))
		Expect(got.Name).To(Equal("pytest"))
		Expect(got.Dir).To(Equal("tests"))
	})

	It("should empty the report directory and write the junit file into it", func() {
		dir := filepath.Join(GinkgoT().TempDir(), "reports")
		Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dir, "stale.xml"), []byte("x"), 0o644)).To(Succeed())

		var got shell.Command
		r := testrun.NewRunner(cfg, testrun.WithExec(func(_ context.Context, cmd shell.Command) (models.ProcessOutput, error) {
			got = cmd
			return models.ProcessOutput{}, nil
		}))

		_, err := r.Run(context.Background(), testrun.Options{ReportDir: dir})

		Expect(err).NotTo(HaveOccurred())
		Expect(filepath.Join(dir, "stale.xml")).NotTo(BeAnExistingFile())
		Expect(util.ValueFromArgList(got.Args, "--junitxml", "")).To(Equal(filepath.Join(dir, "result.xml")))
	})

	It("should reject a missing working directory", func() {
		r := testrun.NewRunner(cfg, testrun.WithExec(func(context.Context, shell.Command) (models.ProcessOutput, error) {
			Fail("the session should not start")
			return models.ProcessOutput{}, nil
		}))

		_, err := r.Run(context.Background(), testrun.Options{Dir: filepath.Join(GinkgoT().TempDir(), "missing")})

		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
	})

	It("should fail when the session cannot start", func() {
		r := testrun.NewRunner(cfg, testrun.WithExec(func(context.Context, shell.Command) (models.ProcessOutput, error) {
			return models.ProcessOutput{}, errors.New("executable file not found")
		}))

		_, err := r.Run(context.Background(), testrun.Options{})

		Expect(err).To(MatchError(ContainSubstring("executable file not found")))
	})
})
