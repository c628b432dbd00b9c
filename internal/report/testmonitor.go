package report

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/syslinkats/ats-harness/pkg/httpverb"
)

const (
	uploadPath        = "/nifile/v1/service-groups/Default/upload-files"
	resultsPath       = "/nitestmonitor/v2/results"
	updateResultsPath = "/nitestmonitor/v2/update-results"
	stepsPath         = "/nitestmonitor/v2/steps"
)

// TestMonitor talks to the file and test monitor services of a SystemLink
// server.
type TestMonitor struct {
	client  *httpverb.Client
	baseURL string
}

func NewTestMonitor(client *httpverb.Client, baseURL string) *TestMonitor {
	return &TestMonitor{client: client, baseURL: strings.TrimRight(baseURL, "/")}
}

type ResultRequest struct {
	Name         string
	Product      string
	ProgramName  string
	SerialNumber string
}

type createResult struct {
	ProgramName  string `json:"programName,omitempty"`
	Status       Status `json:"status"`
	PartNumber   string `json:"partNumber,omitempty"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Name         string `json:"name,omitempty"`
}

type createResultsRequest struct {
	Results []createResult `json:"results"`
}

type createdResults struct {
	Results []struct {
		ID string `json:"id"`
	} `json:"results"`
}

// CreateResult creates a top-level result and returns its id.
func (t *TestMonitor) CreateResult(ctx context.Context, req ResultRequest) (string, error) {
	resp, err := t.client.PostJSON(ctx, t.baseURL+resultsPath, createResultsRequest{
		Results: []createResult{{
			ProgramName:  req.ProgramName,
			Status:       NewStatus(StatusPassed),
			PartNumber:   req.Product,
			SerialNumber: req.SerialNumber,
			Name:         req.Name,
		}},
	}, httpverb.ExpectSuccess(true), httpverb.CheckJSONErrorKey())
	if err != nil {
		return "", fmt.Errorf("failed to create result: %w", err)
	}

	var out createdResults
	if err := resp.JSON(&out); err != nil {
		return "", fmt.Errorf("failed to decode created result: %w", err)
	}
	if len(out.Results) == 0 || out.Results[0].ID == "" {
		return "", fmt.Errorf("create result returned no id")
	}
	return out.Results[0].ID, nil
}

type uploadResponse struct {
	URI string `json:"uri"`
}

// UploadFile uploads the file at path and returns the file id, which is the
// last segment of the returned uri.
func (t *TestMonitor) UploadFile(ctx context.Context, path string) (string, error) {
	resp, err := t.client.PostFiles(ctx, t.baseURL+uploadPath, map[string]string{"file": path}, nil,
		httpverb.ExpectStatus(http.StatusCreated))
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", path, err)
	}

	var out uploadResponse
	if err := resp.JSON(&out); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	id := out.URI[strings.LastIndex(out.URI, "/")+1:]
	if id == "" {
		return "", fmt.Errorf("upload response carried no file id: %q", out.URI)
	}
	return id, nil
}

type resultUpdate struct {
	ID          string   `json:"id"`
	FileIDs     []string `json:"fileIds"`
	ProgramName string   `json:"programName,omitempty"`
}

type updateResultsRequest struct {
	Results                  []resultUpdate `json:"results"`
	Replace                  bool           `json:"replace"`
	DetermineStatusFromSteps bool           `json:"determineStatusFromSteps"`
}

// AttachFiles adds fileIDs to a result without replacing existing fields.
func (t *TestMonitor) AttachFiles(ctx context.Context, resultID, programName string, fileIDs ...string) error {
	_, err := t.client.PostJSON(ctx, t.baseURL+updateResultsPath, updateResultsRequest{
		Results: []resultUpdate{{ID: resultID, FileIDs: fileIDs, ProgramName: programName}},
	}, httpverb.ExpectStatus(http.StatusOK))
	if err != nil {
		return fmt.Errorf("failed to attach files to result %s: %w", resultID, err)
	}
	return nil
}

type createStepsRequest struct {
	Steps []*Step `json:"steps"`
}

// CreateSteps uploads steps in batches. Parents must precede children.
func (t *TestMonitor) CreateSteps(ctx context.Context, steps []*Step, batchSize int) error {
	if batchSize <= 0 {
		batchSize = len(steps)
	}
	for start := 0; start < len(steps); start += batchSize {
		end := min(start+batchSize, len(steps))
		_, err := t.client.PostJSON(ctx, t.baseURL+stepsPath, createStepsRequest{Steps: steps[start:end]},
			httpverb.ExpectSuccess(true), httpverb.CheckJSONErrorKey())
		if err != nil {
			return fmt.Errorf("failed to create steps %d-%d: %w", start, end, err)
		}
	}
	return nil
}
