package deezer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// The API wraps list-valued fields in an object with a single "data"
// key instead of sending a bare array. envelope unwraps that
// convention; a bare array is accepted too, since one endpoint
// (infos offers) uses it.
type envelope struct {
	Data []json.RawMessage `json:"data"`
}

func (e *envelope) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &e.Data)
	}
	type plain envelope
	return json.Unmarshal(data, (*plain)(e))
}

// List is an ordered collection decoded from an envelope-wrapped
// field. Decoding is strict: one malformed element fails the whole
// containing document. Element order matches the wire; a missing or
// null "data" key yields an empty list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	items := make([]T, 0, len(env.Data))
	for i, raw := range env.Data {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		items = append(items, item)
	}
	*l = items
	return nil
}

// SkipList is the lenient counterpart of List: elements that fail to
// decode are dropped instead of failing the document, and every drop
// is recorded in Skipped so callers can see what was lost.
type SkipList[T any] struct {
	Items   []T
	Skipped []SkipError
}

// SkipError describes one element dropped during lenient decoding.
type SkipError struct {
	Index int             // position in the source array
	Raw   json.RawMessage // the element that failed to decode
	Err   error
}

func (s SkipError) Error() string {
	return fmt.Sprintf("element %d: %v", s.Index, s.Err)
}

func (s SkipError) Unwrap() error { return s.Err }

func (l *SkipList[T]) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	l.Items = make([]T, 0, len(env.Data))
	l.Skipped = nil
	for i, raw := range env.Data {
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			l.Skipped = append(l.Skipped, SkipError{Index: i, Raw: raw, Err: err})
			continue
		}
		l.Items = append(l.Items, item)
	}
	return nil
}

// MarshalJSON re-emits the items as a bare array. The envelope is a
// wire-side convention, not part of the record shape.
func (l SkipList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Items)
}
