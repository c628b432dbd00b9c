package testrun

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/config"
	"github.com/syslinkats/ats-harness/internal/fsutil"
	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/shell"
)

// Options are the per-run settings passed through to the test session.
type Options struct {
	ConfigPath   string
	UseDevWorker bool
	// PassThrough is forwarded to the tests as one argument, a Python list
	// literal.
	PassThrough []string
	Dir         string
	// ReportDir is emptied before the run and receives the junit file.
	ReportDir string
}

// Args builds the pytest command line.
func Args(cfg config.TestRun, opts Options) []string {
	var args []string
	if cfg.CPUCount > 0 {
		args = append(args, "-n", strconv.Itoa(cfg.CPUCount))
	}
	if cfg.StopOnFirstFail {
		args = append(args, "-x")
	}
	args = append(args,
		"-m", cfg.MarkString,
		"--junitxml", JUnitPath(cfg, opts),
		"--use-dev-worker", pyBool(opts.UseDevWorker),
		"--ats-config-path", opts.ConfigPath,
		"--disable-reporting", pyBool(cfg.DisableReporting),
		"--operator", cfg.Operator,
		"--pass-through-args", pyList(opts.PassThrough),
	)
	for _, p := range cfg.IgnorePaths {
		args = append(args, "--ignore", p)
	}
	return args
}

// JUnitPath is where the session writes its junit file.
func JUnitPath(cfg config.TestRun, opts Options) string {
	if opts.ReportDir == "" {
		return cfg.JUnitXMLPath
	}
	return filepath.Join(opts.ReportDir, filepath.Base(cfg.JUnitXMLPath))
}

// The test session parses these with a Python bool reader.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// pyList renders items the way Python's str() renders a list of strings.
func pyList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = pyRepr(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// pyRepr quotes s with single quotes unless it holds a single quote and no
// double quote.
func pyRepr(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case quote:
			b.WriteByte('\\')
			b.WriteByte(c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

type ExecFunc func(ctx context.Context, cmd shell.Command) (models.ProcessOutput, error)

type Runner struct {
	cfg  config.TestRun
	exec ExecFunc
}

type Option func(*Runner)

func WithExec(fn ExecFunc) Option {
	return func(r *Runner) {
		r.exec = fn
	}
}

func NewRunner(cfg config.TestRun, opts ...Option) *Runner {
	r := &Runner{cfg: cfg, exec: shell.Run}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the test session and waits for it. A failing session is not an
// error; its exit code is in the returned output.
func (r *Runner) Run(ctx context.Context, opts Options) (models.ProcessOutput, error) {
	if opts.Dir != "" {
		if err := fsutil.ValidatePath("dir", opts.Dir, true); err != nil {
			return models.ProcessOutput{}, err
		}
	}
	if opts.ReportDir != "" {
		if err := fsutil.ClearOrCreateDirectory(opts.ReportDir); err != nil {
			return models.ProcessOutput{}, fmt.Errorf("failed to prepare %s: %w", opts.ReportDir, err)
		}
	}

	args := Args(r.cfg, opts)
	zap.S().Named("test_runner").Infow("starting test session", "args", args)

	out, err := r.exec(ctx, shell.Command{Name: r.cfg.Pytest, Args: args, Dir: opts.Dir})
	if err != nil {
		return out, fmt.Errorf("failed to run %s: %w", r.cfg.Pytest, err)
	}
	zap.S().Named("test_runner").Infow("test session finished", "exit_code", out.ReturnCode, "junit_xml", JUnitPath(r.cfg, opts))
	return out, nil
}
