package kaleido

import "strings"

type mockReporter struct {
	errors []error
	hadErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	reporter.hadErr = true
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
}

func newTestParser(src string) *Parser {
	return NewParser(NewTokenizer(strings.NewReader(src)))
}
