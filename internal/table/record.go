// internal/table/record.go
// Package table flattens heterogeneous JSON records into rectangular
// tables with deterministic column typing and ordering.
package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the JSON shapes a record field can hold.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	// KindNested covers objects and arrays; nested fields never enter a
	// table schema.
	KindNested
)

// Value is one decoded record field.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// scalar returns the value as an interface for coercion, or nil for null
// and nested values.
func (v Value) scalar() interface{} {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	default:
		return nil
	}
}

// Field is a named value in decode order.
type Field struct {
	Name  string
	Value Value
}

// Record is a single JSON object with its field order preserved. Plain
// map decoding would lose the order the server sent, and the natural
// column order of a table is exactly that order.
type Record []Field

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record must be a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("record key must be a string, got %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		v, err := decodeValue(raw)
		if err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		*r = append(*r, Field{Name: key, Value: v})
	}

	_, err = dec.Token() // closing brace
	return err
}

// lookup returns the first field with the given name.
func (r Record) lookup(name string) (Value, bool) {
	for _, f := range r {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

func decodeValue(raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Value{}, fmt.Errorf("empty value")
	}
	switch raw[0] {
	case '{', '[':
		return Value{Kind: KindNested}, nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, Str: s}, nil
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBool, Bool: b}, nil
	case 'n':
		return Value{Kind: KindNull}, nil
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindNumber, Num: f}, nil
	}
}
