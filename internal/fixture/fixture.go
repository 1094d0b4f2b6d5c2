// Package fixture loads named sample cases for the two-pointer routines from
// YAML, and ships a default set embedded in the binary.
package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Op names the routine a Case runs.
type Op string

const (
	OpPalindrome Op = "palindrome"
	OpTwoSum     Op = "twosum"
	OpMerge      Op = "merge"
	OpDedup      Op = "dedup"
	OpThreeSum   Op = "threesum"
)

var (
	// ErrUnknownOp is returned for a case whose op is not one of the Op constants.
	ErrUnknownOp = errors.New("fixture: unknown op")

	// ErrBadCase is returned when a case lacks the fields its op needs.
	ErrBadCase = errors.New("fixture: malformed case")
)

// Case is one sample invocation. Which fields are used depends on Op:
//
//	palindrome: Word
//	twosum:     Numbers, Target
//	merge:      A, B
//	dedup:      Numbers
//	threesum:   Numbers, Target, Presort
type Case struct {
	Name    string  `yaml:"name"`
	Op      Op      `yaml:"op"`
	Word    string  `yaml:"word,omitempty"`
	Numbers []int64 `yaml:"numbers,omitempty"`
	A       []int64 `yaml:"a,omitempty"`
	B       []int64 `yaml:"b,omitempty"`
	Target  *int64  `yaml:"target,omitempty"`
	Presort bool    `yaml:"presort,omitempty"`
}

// Set is an ordered collection of cases.
type Set struct {
	Cases []Case `yaml:"cases"`
}

//go:embed samples.yaml
var samples []byte

// Default returns the embedded sample set.
func Default() Set {
	set, err := Load(bytes.NewReader(samples))
	if err != nil {
		panic(fmt.Sprintf("fixture: embedded samples are invalid: %v", err))
	}

	return set
}

// Load decodes and validates a Set from r. Unknown YAML keys are rejected.
func Load(r io.Reader) (Set, error) {
	var set Set
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, fmt.Errorf("fixture: decode: %w", err)
	}
	if err := set.Validate(); err != nil {
		return Set{}, err
	}

	return set, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("fixture: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Validate checks every case and reports the first problem found.
func (s Set) Validate() error {
	for i, c := range s.Cases {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("case %d (%q): %w", i, c.Name, err)
		}
	}

	return nil
}

// Validate checks that c names a known op and carries the inputs it needs.
func (c Case) Validate() error {
	switch c.Op {
	case OpPalindrome:
		return nil
	case OpTwoSum, OpThreeSum:
		if c.Target == nil {
			return fmt.Errorf("%w: %s needs a target", ErrBadCase, c.Op)
		}
		return nil
	case OpMerge, OpDedup:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, c.Op)
	}
}
