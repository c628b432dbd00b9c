package v1

import (
	"time"

	"github.com/syslinkats/ats-harness/internal/models"
)

// Instance is a ledger entry for a launched instance.
type Instance struct {
	Id              string    `json:"id"`
	PublicDnsName   string    `json:"publicDnsName"`
	ImageId         string    `json:"imageId"`
	InstanceType    string    `json:"instanceType"`
	State           string    `json:"state"`
	SuiteBuild      string    `json:"suiteBuild"`
	TerminationDate string    `json:"terminationDate,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Invocation is a remote command submission.
type Invocation struct {
	Id        string    `json:"id"`
	Document  string    `json:"document"`
	HostIds   []string  `json:"hostIds"`
	Commands  []string  `json:"commands"`
	Outcome   string    `json:"outcome"`
	Output    string    `json:"output,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TestRun holds the outcome counts of one reported result file.
type TestRun struct {
	Id        string    `json:"id"`
	Suite     string    `json:"suite"`
	Source    string    `json:"source"`
	Passed    int       `json:"passed"`
	Failed    int       `json:"failed"`
	Errored   int       `json:"errored"`
	Skipped   int       `json:"skipped"`
	Total     int       `json:"total"`
	ResultId  string    `json:"resultId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type InstanceListResponse struct {
	Page      int        `json:"page"`
	PageCount int        `json:"pageCount"`
	Total     int        `json:"total"`
	Instances []Instance `json:"instances"`
}

type InvocationListResponse struct {
	Page        int          `json:"page"`
	PageCount   int          `json:"pageCount"`
	Total       int          `json:"total"`
	Invocations []Invocation `json:"invocations"`
}

type TestRunListResponse struct {
	Page      int       `json:"page"`
	PageCount int       `json:"pageCount"`
	Total     int       `json:"total"`
	TestRuns  []TestRun `json:"testRuns"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// PageParams are shared by every list endpoint. Sort entries have the form
// "field" or "field:desc".
type PageParams struct {
	Page     *int     `form:"page"`
	PageSize *int     `form:"pageSize"`
	Sort     []string `form:"sort"`
}

type ListInstancesParams struct {
	PageParams
	State []string `form:"state"`
}

type ListInvocationsParams struct {
	PageParams
	Outcome []string `form:"outcome"`
}

type ListTestRunsParams struct {
	PageParams
	Suite []string `form:"suite"`
	// Since is a YYYY-MM-DD date; earlier runs are left out.
	Since string `form:"since"`
}

func NewInstanceFromModel(m models.InstanceRecord) Instance {
	return Instance{
		Id:              m.ID,
		PublicDnsName:   m.PublicDNSName,
		ImageId:         m.ImageID,
		InstanceType:    m.InstanceType,
		State:           m.State,
		SuiteBuild:      m.SuiteBuild,
		TerminationDate: m.TerminationDate,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func NewInvocationFromModel(m models.InvocationRecord) Invocation {
	inv := Invocation{
		Id:        m.ID,
		Document:  m.Document,
		HostIds:   m.HostIDs,
		Commands:  m.Commands,
		Outcome:   string(m.Outcome),
		Output:    m.Output,
		CreatedAt: m.CreatedAt,
	}
	if inv.HostIds == nil {
		inv.HostIds = []string{}
	}
	if inv.Commands == nil {
		inv.Commands = []string{}
	}
	return inv
}

func NewTestRunFromModel(m models.TestRunRecord) TestRun {
	return TestRun{
		Id:        m.ID,
		Suite:     m.Suite,
		Source:    m.Source,
		Passed:    m.Passed,
		Failed:    m.Failed,
		Errored:   m.Errored,
		Skipped:   m.Skipped,
		Total:     m.Total(),
		ResultId:  m.ResultID,
		CreatedAt: m.CreatedAt,
	}
}
