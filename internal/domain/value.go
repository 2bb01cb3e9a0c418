package domain

import (
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a RawValue holds.
type Kind int

const (
	// KindAbsent covers both a missing key and an explicit JSON null
	KindAbsent Kind = iota
	KindNumber
	KindString
	KindList
	KindObject
	// KindOther holds anything else, e.g. booleans
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	default:
		return "other"
	}
}

// RawValue is a loosely typed dataset value. The zero value is absent.
type RawValue struct {
	kind   Kind
	num    float64
	text   string // string payload, number literal, or raw JSON for composite/other kinds
	items  []RawValue
	fields map[string]RawValue
}

// AbsentValue returns a value for a missing or null field.
func AbsentValue() RawValue {
	return RawValue{}
}

// NumberValue wraps a number.
func NumberValue(f float64) RawValue {
	return RawValue{kind: KindNumber, num: f}
}

// NumberLiteral wraps a number while keeping its literal text from the source document.
func NumberLiteral(f float64, literal string) RawValue {
	return RawValue{kind: KindNumber, num: f, text: literal}
}

// StringValue wraps a string.
func StringValue(s string) RawValue {
	return RawValue{kind: KindString, text: s}
}

// ListValue wraps an ordered list of values.
func ListValue(items ...RawValue) RawValue {
	return RawValue{kind: KindList, items: items}
}

// ObjectValue wraps a mapping.
func ObjectValue(fields map[string]RawValue) RawValue {
	return RawValue{kind: KindObject, fields: fields}
}

// OtherValue wraps a value of any other JSON type, given as raw JSON (e.g. "true").
func OtherValue(raw string) RawValue {
	return RawValue{kind: KindOther, text: raw}
}

// WithRaw attaches the source JSON text to a list or object value.
func (v RawValue) WithRaw(raw string) RawValue {
	if v.kind == KindList || v.kind == KindObject {
		v.text = raw
	}
	return v
}

func (v RawValue) Kind() Kind {
	return v.kind
}

func (v RawValue) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Number returns the numeric payload; zero for non-number kinds.
func (v RawValue) Number() float64 {
	return v.num
}

// Str returns the string payload; empty for non-string kinds.
func (v RawValue) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.text
}

// Items returns the list payload; nil for non-list kinds.
func (v RawValue) Items() []RawValue {
	return v.items
}

// Field looks up key in an object value. Missing keys and non-objects yield an absent value.
func (v RawValue) Field(key string) RawValue {
	if v.kind != KindObject {
		return RawValue{}
	}
	return v.fields[key]
}

// String coerces the value to its textual form: strings as-is, numbers as their
// literal, composites as JSON, absent as "".
func (v RawValue) String() string {
	switch v.kind {
	case KindAbsent:
		return ""
	case KindString:
		return v.text
	case KindNumber:
		if v.text != "" {
			return v.text
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	default:
		if v.text != "" {
			return v.text
		}
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// MarshalJSON renders the value back to JSON.
func (v RawValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindNumber:
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	case KindString:
		return json.Marshal(v.text)
	case KindList:
		items := v.items
		if items == nil {
			items = []RawValue{}
		}
		return json.Marshal(items)
	case KindObject:
		fields := v.fields
		if fields == nil {
			fields = map[string]RawValue{}
		}
		return json.Marshal(fields)
	default:
		if v.text == "" {
			return []byte("null"), nil
		}
		return []byte(v.text), nil
	}
}
