package models

import "time"

type InvocationOutcome string

const (
	InvocationOutcomeSubmitted InvocationOutcome = "submitted"
	InvocationOutcomeCompleted InvocationOutcome = "completed"
	InvocationOutcomeStdout    InvocationOutcome = "stdout"
	InvocationOutcomeStderr    InvocationOutcome = "stderr"
	InvocationOutcomeTimeout   InvocationOutcome = "timeout"
	InvocationOutcomeError     InvocationOutcome = "error"
)

// InvocationRecord is the ledger entry written for every submitted command.
type InvocationRecord struct {
	ID        string
	Document  string
	HostIDs   []string
	Commands  []string
	Outcome   InvocationOutcome
	Output    string
	CreatedAt time.Time
}

// TestRunRecord is the ledger entry written for every reported result file.
type TestRunRecord struct {
	ID        string
	Suite     string
	Source    string
	Passed    int
	Failed    int
	Errored   int
	Skipped   int
	ResultID  string
	CreatedAt time.Time
}

func (t TestRunRecord) Total() int {
	return t.Passed + t.Failed + t.Errored + t.Skipped
}

// InstanceRecord is the ledger entry kept for every instance the harness
// launched or acted on.
type InstanceRecord struct {
	ID              string
	PublicDNSName   string
	ImageID         string
	InstanceType    string
	State           string
	SuiteBuild      string
	TerminationDate string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
