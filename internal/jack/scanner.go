package jack

import (
	"fmt"
	"strconv"
	"unicode"
)

// Scanner turns Jack source text into the token sequence the parser consumes.
// Malformed input is reported and skipped so that every error in the source
// shows up in one pass.
type Scanner struct {
	line     int
	start    int
	current  int
	source   []rune
	tokens   []*Token
	reporter Reporter
}

// NewScanner creates a new scanner over source
func NewScanner(source []rune, reporter Reporter) *Scanner {
	return &Scanner{1, 0, 0, source, make([]*Token, 0), reporter}
}

// Scan reads the source and collects all the tokens that were found. There
// is no end-of-file token, the sequence simply ends.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		switch r := scanner.advance(); {
		case r == ' ' || r == '\r' || r == '\t':
		case r == '\n':
			scanner.line++
		case r == '/' && scanner.match('/'):
			// keep the \n so line counting still works
			for scanner.peek() != '\n' && scanner.hasNext() {
				scanner.advance()
			}
		case r == '/' && scanner.match('*'):
			scanner.scanMultilineComment()
		case r == '"':
			scanner.scanString()
		case isSymbol(r):
			scanner.addToken(SYMBOL, string(r))
		case unicode.IsDigit(r):
			scanner.scanInteger()
		case isBeginIdent(r):
			scanner.scanIdentifier()
		default:
			scanner.reporter.Report(
				newScanError(scanner.line, fmt.Sprintf("Unexpected character '%c'.", r)),
			)
		}
	}
	return scanner.tokens
}

func (scanner *Scanner) scanString() {
	// strings cannot span lines
	for scanner.peek() != '"' && scanner.peek() != '\n' && scanner.hasNext() {
		scanner.advance()
	}

	if scanner.peek() != '"' {
		scanner.reporter.Report(newScanError(scanner.line, "Unterminated string."))
		return
	}
	// consume '"'
	scanner.advance()
	scanner.addToken(STRING_CONST, string(scanner.source[scanner.start+1:scanner.current-1]))
}

func (scanner *Scanner) scanInteger() {
	for unicode.IsDigit(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if n, err := strconv.Atoi(lexeme); err != nil || n > MaxIntConst {
		scanner.reporter.Report(
			newScanError(
				scanner.line,
				fmt.Sprintf("Integer constant %s is out of range.", lexeme),
			),
		)
		return
	}
	scanner.addToken(INT_CONST, lexeme)
}

func (scanner *Scanner) scanIdentifier() {
	for isIdentRune(scanner.peek()) {
		scanner.advance()
	}
	lexeme := string(scanner.source[scanner.start:scanner.current])
	if _, isKeyword := Keywords[lexeme]; isKeyword {
		scanner.addToken(KEYWORD, lexeme)
	} else {
		scanner.addToken(IDENTIFIER, lexeme)
	}
}

// scanMultilineComment skips a /* ... */ or /** ... */ comment, the opening
// delimiter has already been consumed.
func (scanner *Scanner) scanMultilineComment() {
	for {
		for scanner.peek() != '*' && scanner.hasNext() {
			if scanner.peek() == '\n' {
				scanner.line++
			}
			scanner.advance()
		}
		if !scanner.hasNext() {
			scanner.reporter.Report(
				newScanError(scanner.line, "Unterminated multiline comment."),
			)
			return
		}
		scanner.advance()
		if scanner.match('/') {
			return
		}
	}
}

func (scanner *Scanner) addToken(kind Kind, value string) {
	scanner.tokens = append(scanner.tokens, NewToken(kind, value, scanner.line))
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current position
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// match checks if the rune at the current position is equal to the given rune,
// if they are equal, consumes the rune at the current position.
func (scanner *Scanner) match(expected rune) bool {
	if !scanner.hasNext() {
		return false
	}
	if scanner.source[scanner.current] != expected {
		return false
	}
	scanner.current++
	return true
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}

func isSymbol(r rune) bool {
	_, ok := Symbols[r]
	return ok
}

func isBeginIdent(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
