package report

import (
	"github.com/google/uuid"

	"github.com/syslinkats/ats-harness/internal/util"
)

type StatusType string

const (
	StatusPassed  StatusType = "PASSED"
	StatusFailed  StatusType = "FAILED"
	StatusErrored StatusType = "ERRORED"
	StatusSkipped StatusType = "SKIPPED"
)

// severity orders statuses for parent aggregation. Skipped never degrades a
// parent.
var severity = map[StatusType]int{
	StatusSkipped: 0,
	StatusPassed:  1,
	StatusFailed:  2,
	StatusErrored: 3,
}

var statusNames = map[StatusType]string{
	StatusPassed:  "Passed",
	StatusFailed:  "Failed",
	StatusErrored: "Errored",
	StatusSkipped: "Skipped",
}

type Status struct {
	StatusType StatusType `json:"statusType"`
	StatusName string     `json:"statusName"`
}

func NewStatus(t StatusType) Status {
	return Status{StatusType: t, StatusName: statusNames[t]}
}

type Parameter struct {
	Stdout string `json:"stdout,omitempty"`
	Stderr string `json:"stderr,omitempty"`
	Type   string `json:"Type,omitempty"`
}

type StepData struct {
	Text       string      `json:"text,omitempty"`
	Parameters []Parameter `json:"parameters,omitempty"`
}

// Step is one node of the result tree as Test Monitor stores it.
type Step struct {
	StepID             string   `json:"stepId"`
	ParentID           string   `json:"parentId,omitempty"`
	ResultID           string   `json:"resultId"`
	Name               string   `json:"name"`
	StepType           string   `json:"stepType"`
	Status             Status   `json:"status"`
	TotalTimeInSeconds float64  `json:"totalTimeInSeconds"`
	DataModel          string   `json:"dataModel,omitempty"`
	Data               StepData `json:"data"`

	children []*Step
	ownTime  float64
}

// Tree holds the steps of one result file in insertion order.
type Tree struct {
	ResultID string
	roots    []*Step
	steps    []*Step
	index    map[string]*Step
}

func NewTree(resultID string) *Tree {
	return &Tree{ResultID: resultID, index: map[string]*Step{}}
}

// Add creates a step under parent (nil for a root) and propagates its status
// and time to every ancestor.
func (t *Tree) Add(parent *Step, name, stepType string, status StatusType, seconds float64) *Step {
	s := &Step{
		StepID:             uuid.NewString(),
		ResultID:           t.ResultID,
		Name:               name,
		StepType:           stepType,
		Status:             NewStatus(status),
		TotalTimeInSeconds: seconds,
		ownTime:            seconds,
	}

	if parent == nil {
		t.roots = append(t.roots, s)
	} else {
		s.ParentID = parent.StepID
		parent.children = append(parent.children, s)
	}
	t.steps = append(t.steps, s)
	t.index[s.StepID] = s

	t.propagate(parent, status)
	return s
}

// SetResultID rebinds every step to id.
func (t *Tree) SetResultID(id string) {
	t.ResultID = id
	for _, s := range t.steps {
		s.ResultID = id
	}
}

// Steps returns every step with parents before children.
func (t *Tree) Steps() []*Step {
	return t.steps
}

func (t *Tree) Roots() []*Step {
	return t.roots
}

func (t *Tree) Find(stepID string) *Step {
	return t.index[stepID]
}

// Cases returns the test case steps.
func (t *Tree) Cases() []*Step {
	var out []*Step
	for _, s := range t.steps {
		if s.StepType == stepTypeTestCase || s.StepType == stepTypeTest {
			out = append(out, s)
		}
	}
	return out
}

// Counts tallies test case statuses.
func (t *Tree) Counts() map[StatusType]int {
	counts := map[StatusType]int{}
	for _, s := range t.Cases() {
		counts[s.Status.StatusType]++
	}
	return counts
}

func (t *Tree) propagate(parent *Step, status StatusType) {
	for p := parent; p != nil; p = t.parentOf(p) {
		if severity[status] > severity[p.Status.StatusType] {
			p.Status = NewStatus(status)
		}
		var sum float64
		for _, c := range p.children {
			sum += c.TotalTimeInSeconds
		}
		p.TotalTimeInSeconds = util.Round(max(p.ownTime, sum))
	}
}

func (t *Tree) parentOf(s *Step) *Step {
	if s.ParentID == "" {
		return nil
	}
	return t.Find(s.ParentID)
}

// Path joins the names from the root down to s with "/".
func (t *Tree) Path(s *Step) string {
	p := s.Name
	for parent := t.parentOf(s); parent != nil; parent = t.parentOf(parent) {
		p = parent.Name + "/" + p
	}
	return p
}
