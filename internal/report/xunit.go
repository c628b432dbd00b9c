package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strings"
)

const (
	stepTypeAssembly   = "assembly"
	stepTypeCollection = "collection"
	stepTypeTest       = "test"
)

type xunitAssemblies struct {
	Assemblies []xunitAssembly `xml:"assembly"`
}

type xunitAssembly struct {
	Name        string            `xml:"name,attr"`
	Time        string            `xml:"time,attr"`
	Collections []xunitCollection `xml:"collection"`
}

type xunitCollection struct {
	Name  string      `xml:"name,attr"`
	Time  string      `xml:"time,attr"`
	Tests []xunitTest `xml:"test"`
}

type xunitTest struct {
	Method   string         `xml:"method,attr"`
	Result   string         `xml:"result,attr"`
	Time     string         `xml:"time,attr"`
	Failures []xunitFailure `xml:"failure"`
	Reasons  []string       `xml:"reason"`
}

type xunitFailure struct {
	ExceptionType string `xml:"exception-type,attr"`
	Message       string `xml:"message"`
	StackTrace    string `xml:"stack-trace"`
}

// ParseXUnit builds the step tree of an xUnit.net v2 XML document
// (<assemblies><assembly><collection><test>).
func ParseXUnit(r io.Reader) (*Tree, error) {
	var doc xunitAssemblies
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid xunit document: %w", err)
	}

	tree := NewTree("")
	for _, a := range doc.Assemblies {
		assembly := tree.Add(nil, assemblyName(a.Name), stepTypeAssembly, StatusPassed, parseSeconds(a.Time))
		assembly.DataModel = dataModel

		for _, c := range a.Collections {
			collection := tree.Add(assembly, c.Name, stepTypeCollection, StatusPassed, parseSeconds(c.Time))
			collection.DataModel = dataModel

			for _, t := range c.Tests {
				addXUnitTest(tree, collection, t)
			}
		}
	}
	return tree, nil
}

func addXUnitTest(tree *Tree, parent *Step, t xunitTest) {
	var (
		status StatusType
		param  Parameter
	)
	switch t.Result {
	case "Fail":
		status = StatusFailed
		for _, f := range t.Failures {
			param.Type = f.ExceptionType
			param.Stdout = strings.TrimSpace(f.Message)
			param.Stderr = strings.TrimSpace(f.StackTrace)
		}
	case "Skip":
		status = StatusSkipped
		for _, r := range t.Reasons {
			param.Stdout = strings.TrimSpace(r)
		}
	default:
		status = StatusPassed
	}

	step := tree.Add(parent, t.Method, stepTypeTest, status, parseSeconds(t.Time))
	step.DataModel = dataModel
	step.Data = StepData{Parameters: []Parameter{param}}
}

// assemblyName strips the directory of a Windows or POSIX assembly path.
func assemblyName(p string) string {
	return path.Base(strings.ReplaceAll(p, `\`, "/"))
}
