package project

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MaxListLength bounds the values one list may expand to.
const MaxListLength = 1000

// ParseError reports a malformed item in a value list.
type ParseError struct {
	Input string // whole list text
	Item  string // offending item, trimmed
	Pos   int    // 1-based item position
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("item %d %q in %q: %v", e.Pos, e.Item, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseList parses a comma separated list of numbers. An item of the form
// "value x count" repeats value count times, so "4.5, 3.3x9" yields ten
// values. Empty items are skipped. Values must be finite and the
// expanded list at most MaxListLength long.
func ParseList(s string) ([]float64, error) {
	var values []float64
	for i, raw := range strings.Split(s, ",") {
		item := strings.ToLower(strings.TrimSpace(raw))
		if item == "" {
			continue
		}
		fail := func(err error) ([]float64, error) {
			return nil, &ParseError{Input: s, Item: item, Pos: i + 1, Err: err}
		}

		text, count := item, 1
		if before, after, ok := strings.Cut(item, "x"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(after))
			if err != nil {
				return fail(fmt.Errorf("bad repeat count: %w", err))
			}
			if n < 1 {
				return fail(fmt.Errorf("repeat count must be at least 1, got %d", n))
			}
			text, count = strings.TrimSpace(before), n
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fail(fmt.Errorf("bad number: %w", err))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fail(fmt.Errorf("bad number: %s is not finite", text))
		}
		if count > MaxListLength-len(values) {
			return fail(fmt.Errorf("list expands past %d values", MaxListLength))
		}
		for range count {
			values = append(values, v)
		}
	}
	return values, nil
}

// FormatList renders values in the shortest form ParseList accepts,
// collapsing runs of equal values: [4.5 3.3 3.3 3.3] -> "4.5, 3.3x3".
func FormatList(values []float64) string {
	var parts []string
	for i := 0; i < len(values); {
		j := i
		for j < len(values) && values[j] == values[i] {
			j++
		}
		v := strconv.FormatFloat(values[i], 'f', -1, 64)
		if n := j - i; n > 1 {
			v = fmt.Sprintf("%sx%d", v, n)
		}
		parts = append(parts, v)
		i = j
	}
	return strings.Join(parts, ", ")
}

// List is a sequence of lengths that decodes from either a YAML/JSON
// array of numbers or a list string understood by ParseList.
type List []float64

func (l *List) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		values, err := ParseList(value.Value)
		if err != nil {
			return err
		}
		*l = values
		return nil
	}
	var values []float64
	if err := value.Decode(&values); err != nil {
		return err
	}
	*l = values
	return nil
}

func (l *List) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		values, err := ParseList(text)
		if err != nil {
			return err
		}
		*l = values
		return nil
	}
	var values []float64
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*l = values
	return nil
}

func (l List) String() string {
	return FormatList(l)
}
