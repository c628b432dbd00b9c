package report

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/syslinkats/ats-harness/internal/models"
	"github.com/syslinkats/ats-harness/internal/util"
	srvErrors "github.com/syslinkats/ats-harness/pkg/errors"
	"github.com/syslinkats/ats-harness/pkg/teams"
)

type Format string

const (
	FormatJUnit Format = "junit"
	FormatXUnit Format = "xunit"

	stepBatchSize = 500
	maxIssues     = 25
)

// ResultService is the subset of TestMonitor used by the reporter.
type ResultService interface {
	CreateResult(ctx context.Context, req ResultRequest) (string, error)
	UploadFile(ctx context.Context, path string) (string, error)
	AttachFiles(ctx context.Context, resultID, programName string, fileIDs ...string) error
	CreateSteps(ctx context.Context, steps []*Step, batchSize int) error
}

type TestRunSaver interface {
	Save(ctx context.Context, rec models.TestRunRecord) error
}

type FailureNotifier interface {
	SendFailureNotice(ctx context.Context, webhook string, f teams.FailureNotice) error
}

type Request struct {
	Format       Format
	Path         string
	Suite        string
	Product      string
	SerialNumber string
	ProgramName  string
	// ResultID reuses an existing result instead of creating one.
	ResultID       string
	WorkbookPath   string
	FailureWebhook string
	SquadOwners    []string
}

type Summary struct {
	ResultID string
	Record   models.TestRunRecord
	Tree     *Tree
}

// Reporter turns a result file into Test Monitor steps, a ledger entry and
// optionally a workbook and a failure notice. Nil collaborators are skipped.
type Reporter struct {
	results  ResultService
	runs     TestRunSaver
	notifier FailureNotifier
}

func NewReporter(results ResultService, runs TestRunSaver, notifier FailureNotifier) *Reporter {
	return &Reporter{results: results, runs: runs, notifier: notifier}
}

func (r *Reporter) Report(ctx context.Context, req Request) (*Summary, error) {
	log := zap.S().Named("reporter")

	if err := util.ValidateRequired(map[string]any{"path": req.Path, "suite": req.Suite}, true); err != nil {
		return nil, err
	}

	tree, err := parseFile(req.Format, req.Path, req.Suite)
	if err != nil {
		return nil, err
	}

	resultID := req.ResultID
	if r.results != nil {
		if resultID == "" {
			resultID, err = r.results.CreateResult(ctx, ResultRequest{
				Name:         req.Suite,
				Product:      req.Product,
				ProgramName:  req.ProgramName,
				SerialNumber: req.SerialNumber,
			})
			if err != nil {
				return nil, err
			}
			log.Infow("created result", "result_id", resultID, "suite", req.Suite)
		}

		fileID, err := r.results.UploadFile(ctx, req.Path)
		if err != nil {
			return nil, err
		}
		if err := r.results.AttachFiles(ctx, resultID, req.ProgramName, fileID); err != nil {
			return nil, err
		}

		tree.SetResultID(resultID)
		if err := r.results.CreateSteps(ctx, tree.Steps(), stepBatchSize); err != nil {
			return nil, err
		}
		log.Infow("uploaded steps", "result_id", resultID, "steps", len(tree.Steps()))
	} else {
		tree.SetResultID(resultID)
	}

	if req.WorkbookPath != "" {
		if err := ExportWorkbook(req.WorkbookPath, req.Suite, tree); err != nil {
			return nil, err
		}
		log.Infow("workbook written", "path", req.WorkbookPath)
	}

	counts := tree.Counts()
	rec := models.TestRunRecord{
		ID:       uuid.NewString(),
		Suite:    req.Suite,
		Source:   string(req.Format),
		Passed:   counts[StatusPassed],
		Failed:   counts[StatusFailed],
		Errored:  counts[StatusErrored],
		Skipped:  counts[StatusSkipped],
		ResultID: resultID,
	}
	if r.runs != nil {
		if err := r.runs.Save(ctx, rec); err != nil {
			log.Errorw("failed to record test run", "suite", req.Suite, "error", err)
		}
	}

	if r.notifier != nil && req.FailureWebhook != "" && rec.Failed+rec.Errored > 0 {
		if err := r.notifier.SendFailureNotice(ctx, req.FailureWebhook, failureNotice(req, tree, rec)); err != nil {
			log.Errorw("failed to send failure notice", "suite", req.Suite, "error", err)
		}
	}

	return &Summary{ResultID: resultID, Record: rec, Tree: tree}, nil
}

func parseFile(format Format, path, suite string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(format, f, suite)
}

// Parse dispatches on format. suite only renames JUnit suites.
func Parse(format Format, r io.Reader, suite string) (*Tree, error) {
	switch format {
	case FormatJUnit:
		return ParseJUnit(r, suite)
	case FormatXUnit:
		return ParseXUnit(r)
	default:
		return nil, srvErrors.NewValidationError("format", fmt.Sprintf("unknown result format %q", format))
	}
}

func failureNotice(req Request, tree *Tree, rec models.TestRunRecord) teams.FailureNotice {
	notice := teams.FailureNotice{
		Title:       fmt.Sprintf("%s: %d failed, %d errored of %d tests", req.Suite, rec.Failed, rec.Errored, rec.Total()),
		SquadOwners: req.SquadOwners,
	}
	if req.SerialNumber != "" {
		notice.Text = "Suite build " + req.SerialNumber
	}

	var failing []*Step
	for _, s := range tree.Cases() {
		if t := s.Status.StatusType; t == StatusFailed || t == StatusErrored {
			failing = append(failing, s)
		}
	}
	for i, s := range failing {
		if i == maxIssues {
			notice.Issues = append(notice.Issues, teams.Fact{Name: "More", Value: fmt.Sprintf("%d more", len(failing)-maxIssues)})
			break
		}
		value := s.Status.StatusName
		if len(s.Data.Parameters) > 0 && s.Data.Parameters[0].Type != "" {
			value += ": " + s.Data.Parameters[0].Type
		}
		notice.Issues = append(notice.Issues, teams.Fact{Name: tree.Path(s), Value: value})
	}
	return notice
}
