package types

import (
	"encoding/json"
	"fmt"
	"sort"
)

type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueString
	ValueNumber
	ValueBool
	ValueList
	ValueMap
)

// Value is a closed representation of the mixed-shape data the form
// stores in descriptor and evidence fields: a string, a number, a bool,
// an ordered list, or a key-value map. It round-trips through JSON
// without collapsing into untyped interface values at the call sites.
type Value struct {
	kind    ValueKind
	str     string
	num     float64
	boolean bool
	list    []Value
	entries map[string]Value
}

func StringValue(s string) Value        { return Value{kind: ValueString, str: s} }
func NumberValue(n float64) Value       { return Value{kind: ValueNumber, num: n} }
func BoolValue(b bool) Value            { return Value{kind: ValueBool, boolean: b} }
func ListValue(items ...Value) Value    { return Value{kind: ValueList, list: items} }
func MapValue(m map[string]Value) Value { return Value{kind: ValueMap, entries: m} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsZero() bool    { return v.kind == ValueNull }

func (v Value) AsString() (string, bool)        { return v.str, v.kind == ValueString }
func (v Value) AsNumber() (float64, bool)       { return v.num, v.kind == ValueNumber }
func (v Value) AsBool() (bool, bool)            { return v.boolean, v.kind == ValueBool }
func (v Value) AsList() ([]Value, bool)         { return v.list, v.kind == ValueList }
func (v Value) AsMap() (map[string]Value, bool) { return v.entries, v.kind == ValueMap }

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case ValueNull:
		return []byte("null"), nil
	case ValueString:
		return json.Marshal(v.str)
	case ValueNumber:
		return json.Marshal(v.num)
	case ValueBool:
		return json.Marshal(v.boolean)
	case ValueList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case ValueMap:
		if v.entries == nil {
			return []byte("{}"), nil
		}
		// Deterministic key order keeps stored jsonb stable across writes.
		keys := make([]string, 0, len(v.entries))
		for k := range v.entries {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf := []byte{'{'}
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			vb, err := json.Marshal(v.entries[k])
			if err != nil {
				return nil, err
			}
			buf = append(buf, kb...)
			buf = append(buf, ':')
			buf = append(buf, vb...)
		}
		return append(buf, '}'), nil
	}
	return nil, fmt.Errorf("unknown value kind %d", v.kind)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := valueFromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func valueFromAny(raw any) (Value, error) {
	switch typed := raw.(type) {
	case nil:
		return Value{}, nil
	case string:
		return StringValue(typed), nil
	case float64:
		return NumberValue(typed), nil
	case bool:
		return BoolValue(typed), nil
	case []any:
		items := make([]Value, 0, len(typed))
		for _, item := range typed {
			parsed, err := valueFromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, parsed)
		}
		return Value{kind: ValueList, list: items}, nil
	case map[string]any:
		entries := make(map[string]Value, len(typed))
		for k, item := range typed {
			parsed, err := valueFromAny(item)
			if err != nil {
				return Value{}, err
			}
			entries[k] = parsed
		}
		return Value{kind: ValueMap, entries: entries}, nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T", raw)
}
