package report_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/syslinkats/ats-harness/internal/report"
)

const junitDoc = `<?xml version="1.0" encoding="utf-8"?>
<testsuites>
  <testsuite name="pytest" time="12.5">
    <testcase classname="tests.buckets.auth.test_login" name="test_ok" time="1.5"/>
    <testcase classname="tests.buckets.auth.test_login" name="test_bad" time="2.0">
      <failure type="AssertionError" message="expected 200">trace line</failure>
    </testcase>
    <testcase classname="tests.buckets.files.test_upload" name="test_skip" time="0">
      <skipped type="pytest.skip" message="not today"/>
    </testcase>
    <testcase classname="tests.buckets.files.test_upload" name="test_boom" time="3">
      <error type="RuntimeError" message="setup failed">stack</error>
    </testcase>
  </testsuite>
</testsuites>`

const xunitDoc = `<?xml version="1.0" encoding="utf-8"?>
<assemblies>
  <assembly name="C:\build\Tests.Api.dll" time="4.0">
    <collection name="Api collection" time="3.5">
      <test method="Gets" result="Pass" time="1.0"/>
      <test method="Posts" result="Fail" time="2.5">
        <failure exception-type="Xunit.Sdk.EqualException">
          <message>Assert.Equal() Failure</message>
          <stack-trace>at Tests.Api.Posts()</stack-trace>
        </failure>
      </test>
      <test method="Deletes" result="Skip" time="0">
        <reason>flaky</reason>
      </test>
    </collection>
  </assembly>
</assemblies>`

func byName(tree *report.Tree, name string) *report.Step {
	for _, s := range tree.Steps() {
		if s.Name == name {
			return s
		}
	}
	return nil
}

var _ = Describe("ParseJUnit", func() {
	// Given a testsuites document with two classnames
	// When we parse it with a suite override
	// Then suites, buckets and cases should form a tree
	It("should build suite, bucket and case steps", func() {
		// Act
		tree, err := report.ParseJUnit(strings.NewReader(junitDoc), "daily")

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(tree.Roots()).To(HaveLen(1))
		suite := tree.Roots()[0]
		Expect(suite.Name).To(Equal("daily"))
		Expect(suite.StepType).To(Equal("testsuite"))

		login := byName(tree, "test_login")
		Expect(login).NotTo(BeNil())
		Expect(login.StepType).To(Equal("testbucket"))
		Expect(login.ParentID).To(Equal(suite.StepID))

		bad := byName(tree, "test_bad")
		Expect(bad.ParentID).To(Equal(login.StepID))
		Expect(bad.Status.StatusType).To(Equal(report.StatusFailed))
		Expect(bad.Data.Parameters).To(HaveLen(1))
		Expect(bad.Data.Parameters[0].Stdout).To(Equal("expected 200"))
		Expect(bad.Data.Parameters[0].Stderr).To(Equal("trace line"))
		Expect(bad.Data.Parameters[0].Type).To(Equal("AssertionError"))
	})

	It("should aggregate the worst child status and times", func() {
		tree, err := report.ParseJUnit(strings.NewReader(junitDoc), "")

		Expect(err).NotTo(HaveOccurred())
		suite := tree.Roots()[0]
		Expect(suite.Name).To(Equal("pytest"))
		Expect(suite.Status.StatusType).To(Equal(report.StatusErrored))
		Expect(suite.TotalTimeInSeconds).To(BeNumerically("~", 12.5))

		login := byName(tree, "test_login")
		Expect(login.Status.StatusType).To(Equal(report.StatusFailed))
		Expect(login.TotalTimeInSeconds).To(BeNumerically("~", 3.5))

		upload := byName(tree, "test_upload")
		Expect(upload.Status.StatusType).To(Equal(report.StatusErrored))
	})

	It("should count test cases by status", func() {
		tree, err := report.ParseJUnit(strings.NewReader(junitDoc), "")

		Expect(err).NotTo(HaveOccurred())
		Expect(tree.Counts()).To(Equal(map[report.StatusType]int{
			report.StatusPassed:  1,
			report.StatusFailed:  1,
			report.StatusSkipped: 1,
			report.StatusErrored: 1,
		}))
	})

	It("should accept a single testsuite root", func() {
		doc := `<testsuite name="one"><testcase name="a" time="1"/></testsuite>`

		tree, err := report.ParseJUnit(strings.NewReader(doc), "")

		Expect(err).NotTo(HaveOccurred())
		Expect(tree.Roots()[0].Name).To(Equal("one"))
		a := byName(tree, "a")
		Expect(a.ParentID).To(Equal(tree.Roots()[0].StepID))
		Expect(a.Status.StatusType).To(Equal(report.StatusPassed))
	})

	It("should not let a skipped case degrade a passing bucket", func() {
		doc := `<testsuite name="s">
			<testcase classname="m.C" name="a"/>
			<testcase classname="m.C" name="b"><skipped/></testcase>
		</testsuite>`

		tree, err := report.ParseJUnit(strings.NewReader(doc), "")

		Expect(err).NotTo(HaveOccurred())
		Expect(byName(tree, "C").Status.StatusType).To(Equal(report.StatusPassed))
		Expect(tree.Roots()[0].Status.StatusType).To(Equal(report.StatusPassed))
	})

	It("should reject malformed documents", func() {
		_, err := report.ParseJUnit(strings.NewReader("<testsuite"), "")
		Expect(err).To(HaveOccurred())

		_, err = report.ParseJUnit(strings.NewReader("<html/>"), "")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ParseXUnit", func() {
	It("should build assembly, collection and test steps", func() {
		// Act
		tree, err := report.ParseXUnit(strings.NewReader(xunitDoc))

		// Assert
		Expect(err).NotTo(HaveOccurred())
		assembly := tree.Roots()[0]
		Expect(assembly.Name).To(Equal("Tests.Api.dll"))
		Expect(assembly.Status.StatusType).To(Equal(report.StatusFailed))

		collection := byName(tree, "Api collection")
		Expect(collection.ParentID).To(Equal(assembly.StepID))

		posts := byName(tree, "Posts")
		Expect(posts.Status.StatusType).To(Equal(report.StatusFailed))
		Expect(posts.Data.Parameters[0].Type).To(Equal("Xunit.Sdk.EqualException"))
		Expect(posts.Data.Parameters[0].Stdout).To(Equal("Assert.Equal() Failure"))
		Expect(posts.Data.Parameters[0].Stderr).To(Equal("at Tests.Api.Posts()"))

		deletes := byName(tree, "Deletes")
		Expect(deletes.Status.StatusType).To(Equal(report.StatusSkipped))
		Expect(deletes.Data.Parameters[0].Stdout).To(Equal("flaky"))

		Expect(tree.Counts()[report.StatusPassed]).To(Equal(1))
		Expect(tree.Path(posts)).To(Equal("Tests.Api.dll/Api collection/Posts"))
	})

	It("should dispatch on format", func() {
		_, err := report.Parse("tap", strings.NewReader(""), "")

		Expect(err).To(HaveOccurred())
	})
})
