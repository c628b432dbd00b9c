package models

// ProcessOutput is the result of a finished process.
type ProcessOutput struct {
	ReturnCode int
	Stdout     string
	Stderr     string
}

func (p ProcessOutput) Succeeded() bool {
	return p.ReturnCode == 0
}
