package jack

import (
	"fmt"
	"io"
)

// Reporter defines the interface for structure that can display errors to the
// user. The parser itself never reports, it returns its diagnostic to the
// caller which decides how to present it.
type Reporter interface {
	Report(err error)
	HadError() bool
	Reset()
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer io.Writer
	hadErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer, false}
}

func (reporter *SimpleReporter) Report(err error) {
	reporter.hadErr = true
	fmt.Fprintln(reporter.writer, err)
}

// Printf writes an informational line that does not count as an error.
func (reporter *SimpleReporter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(reporter.writer, format+"\n", args...)
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
}
