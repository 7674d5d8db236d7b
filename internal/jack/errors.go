package jack

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnexpectedToken is matched by every diagnostic raised when the current
	// token does not satisfy an expectation, including end of input.
	ErrUnexpectedToken = errors.New("unexpected token")
	// ErrEndOfInput is matched when a token was required but none was left.
	ErrEndOfInput = errors.New("end of input")
	// ErrNestingTooDeep is matched when productions nest beyond the parser's
	// maximum depth.
	ErrNestingTooDeep = errors.New("nesting too deep")
)

// ParseError describes the first syntax violation of a parse. Found is nil
// when the input ran out.
type ParseError struct {
	Reason   error
	Expected Kind
	Values   []string
	Found    *Token
	Position int
	// what replaces Expected and Values in the message when the expectation
	// is a whole construct rather than a single token.
	what    string
	message string
}

func newUnexpectedTokenError(expected Kind, values []string, found *Token, position int) error {
	if found == nil {
		return &ParseError{Reason: ErrEndOfInput, Expected: expected, Values: values, Position: position}
	}
	return &ParseError{Reason: ErrUnexpectedToken, Expected: expected, Values: values, Found: found, Position: position}
}

func newExpectedConstructError(what string, found *Token, position int) error {
	reason := ErrUnexpectedToken
	if found == nil {
		reason = ErrEndOfInput
	}
	return &ParseError{Reason: reason, Found: found, Position: position, what: what}
}

func newEndOfInputError(position int) error {
	return &ParseError{Reason: ErrEndOfInput, Position: position, message: "no token left"}
}

func newNestingTooDeepError(found *Token, position int, max int) error {
	return &ParseError{
		Reason:   ErrNestingTooDeep,
		Found:    found,
		Position: position,
		message:  fmt.Sprintf("nesting exceeds maximum depth of %d", max),
	}
}

func (err *ParseError) Error() string {
	var b strings.Builder
	if err.Found != nil && err.Found.Line > 0 {
		fmt.Fprintf(&b, "[line %d] ", err.Found.Line)
	}
	if err.message != "" {
		fmt.Fprintf(&b, "%s at position %d", err.message, err.Position)
		return b.String()
	}
	what := err.what
	if what == "" {
		what = describeExpectation(err.Expected, err.Values)
	}
	fmt.Fprintf(&b, "expected %s but found ", what)
	if err.Found == nil {
		b.WriteString("end of input")
	} else {
		b.WriteString(err.Found.String())
	}
	fmt.Fprintf(&b, " at position %d", err.Position)
	return b.String()
}

func (err *ParseError) Unwrap() error {
	return err.Reason
}

// Is reports end of input as a specialization of an unexpected token.
func (err *ParseError) Is(target error) bool {
	return target == ErrUnexpectedToken && err.Reason == ErrEndOfInput
}

func describeExpectation(kind Kind, values []string) string {
	if len(values) == 0 {
		return kind.String()
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("'%s'", v)
	}
	if len(quoted) == 1 {
		return fmt.Sprintf("%s %s", kind, quoted[0])
	}
	last := len(quoted) - 1
	return fmt.Sprintf("%s %s or %s", kind, strings.Join(quoted[:last], ", "), quoted[last])
}

// ScanError is reported by the Scanner when the source contains something
// that cannot be turned into a token.
type ScanError struct {
	Line    int
	Message string
}

func newScanError(line int, message string) error {
	return &ScanError{line, message}
}

func (err *ScanError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", err.Line, err.Message)
}
