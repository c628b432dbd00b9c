package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	stepTypeSuite    = "testsuite"
	stepTypeBucket   = "testbucket"
	stepTypeTestCase = "testcase"
	dataModel        = "Software"
)

type junitSuites struct {
	XMLName xml.Name     `xml:"testsuites"`
	Suites  []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name   string       `xml:"name,attr"`
	Time   string       `xml:"time,attr"`
	Suites []junitSuite `xml:"testsuite"`
	Cases  []junitCase  `xml:"testcase"`
}

type junitCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	Time      string        `xml:"time,attr"`
	Errors    []junitDetail `xml:"error"`
	Failures  []junitDetail `xml:"failure"`
	Skipped   []junitDetail `xml:"skipped"`
}

type junitDetail struct {
	Type    string `xml:"type,attr"`
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

// ParseJUnit builds the step tree of a JUnit XML document. The root may be
// <testsuites> or a single <testsuite>. A non-empty suiteName replaces the
// name of every suite.
func ParseJUnit(r io.Reader, suiteName string) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	root, err := rootElement(data)
	if err != nil {
		return nil, fmt.Errorf("invalid junit document: %w", err)
	}

	var suites []junitSuite
	switch root {
	case "testsuites":
		var doc junitSuites
		if err := xml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid junit document: %w", err)
		}
		suites = doc.Suites
	case "testsuite":
		var suite junitSuite
		if err := xml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("invalid junit document: %w", err)
		}
		suites = []junitSuite{suite}
	default:
		return nil, fmt.Errorf("invalid junit document: unexpected root <%s>", root)
	}

	tree := NewTree("")
	for _, s := range suites {
		addJUnitSuite(tree, nil, s, suiteName)
	}
	return tree, nil
}

func addJUnitSuite(tree *Tree, parent *Step, s junitSuite, suiteName string) {
	name := s.Name
	if suiteName != "" {
		name = suiteName
	}

	suite := tree.Add(parent, name, stepTypeSuite, StatusPassed, parseSeconds(s.Time))
	suite.DataModel = dataModel

	// classname buckets are scoped to their suite
	buckets := map[string]*Step{}
	for _, c := range s.Cases {
		status, detail := c.outcome()

		owner := suite
		if c.ClassName != "" {
			bucket, ok := buckets[c.ClassName]
			if !ok {
				bucket = tree.Add(suite, lastSegment(c.ClassName), stepTypeBucket, status, 0)
				buckets[c.ClassName] = bucket
			}
			owner = bucket
		}

		step := tree.Add(owner, c.Name, stepTypeTestCase, status, parseSeconds(c.Time))
		step.DataModel = dataModel
		step.Data = StepData{Parameters: []Parameter{{
			Stdout: detail.Message,
			Stderr: strings.TrimSpace(detail.Text),
			Type:   detail.Type,
		}}}
	}

	for _, child := range s.Suites {
		addJUnitSuite(tree, suite, child, suiteName)
	}
}

// outcome applies error over failure over skipped.
func (c junitCase) outcome() (StatusType, junitDetail) {
	switch {
	case len(c.Errors) > 0:
		return StatusErrored, c.Errors[len(c.Errors)-1]
	case len(c.Failures) > 0:
		return StatusFailed, c.Failures[len(c.Failures)-1]
	case len(c.Skipped) > 0:
		return StatusSkipped, c.Skipped[len(c.Skipped)-1]
	default:
		return StatusPassed, junitDetail{}
	}
}

func rootElement(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se.Name.Local, nil
		}
	}
}

func parseSeconds(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}

func lastSegment(className string) string {
	if i := strings.LastIndex(className, "."); i >= 0 {
		return className[i+1:]
	}
	return className
}
