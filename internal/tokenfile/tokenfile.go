// Package tokenfile reads and writes pre-lexed token streams as YAML, so that
// token sequences produced by another tokenizer can be fed to the parser.
//
// A token file is a sequence of mappings:
//
//	- kind: keyword
//	  value: class
//	  line: 1
//	- kind: identifier
//	  value: Main
//
// The line is optional.
package tokenfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ltungv/jack/gjack/internal/jack"
)

type entry struct {
	Kind  string `yaml:"kind"`
	Value string `yaml:"value"`
	Line  int    `yaml:"line,omitempty"`
}

// Read decodes a token stream.
func Read(r io.Reader) ([]*jack.Token, error) {
	var entries []entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return []*jack.Token{}, nil
		}
		return nil, fmt.Errorf("decode token stream: %w", err)
	}

	tokens := make([]*jack.Token, 0, len(entries))
	for i, e := range entries {
		kind, err := jack.ParseKind(e.Kind)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i, err)
		}
		tokens = append(tokens, jack.NewToken(kind, e.Value, e.Line))
	}
	return tokens, nil
}

// ReadFile decodes the token stream stored at path.
func ReadFile(path string) ([]*jack.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tokens, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tokens, nil
}

// Write encodes tokens as a token stream.
func Write(w io.Writer, tokens []*jack.Token) error {
	entries := make([]entry, len(tokens))
	for i, tok := range tokens {
		entries[i] = entry{tok.Kind.String(), tok.Value, tok.Line}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode token stream: %w", err)
	}
	return enc.Close()
}
