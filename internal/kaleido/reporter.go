package kaleido

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structures that can display errors to
// the user. A reporter is defined to separate error reporting code from error
// displaying code.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes errors as-is to the inner writer.
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
