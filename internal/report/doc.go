// Package report turns JUnit and xUnit result files into Test Monitor steps.
//
// A result file is parsed into a Tree of Steps. Parents aggregate their
// children: the status is the most severe child status
// (Errored > Failed > Passed, Skipped never degrades) and the time is the
// larger of the parent's own time and the sum of its children.
//
//	JUnit                          xUnit
//	testsuite                      assembly (file name of the assembly path)
//	└── testbucket (classname)     └── collection
//	    └── testcase                   └── test (method)
//
// Reporter then creates or reuses a result, uploads the file, attaches it,
// posts the steps in batches, optionally writes an xlsx summary, records the
// run in the ledger and posts a Teams failure notice when tests failed.
package report
