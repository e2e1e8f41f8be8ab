package domain

import (
	"encoding/json"
	"sort"
)

// ValueKind tags the variant held by a Value.
type ValueKind uint8

const (
	// KindAbsent marks a member that is not sent at all.
	KindAbsent ValueKind = iota
	KindNull
	KindScalar
	KindArray
	KindObject
)

// Value is a JSON-shaped tree used for request inputs. Absent members are dropped on
// encoding, which is how the server distinguishes "leave unchanged" from "clear".
type Value struct {
	kind   ValueKind
	scalar any
	items  []Value
	fields map[string]Value
}

// Absent returns the absent value.
func Absent() Value { return Value{kind: KindAbsent} }

// Null returns an explicit null.
func Null() Value { return Value{kind: KindNull} }

// Scalar wraps a string, number or boolean.
func Scalar(v any) Value { return Value{kind: KindScalar, scalar: v} }

// Array builds an array value.
func Array(items ...Value) Value { return Value{kind: KindArray, items: items} }

// Object builds an object value.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, fields: fields}
}

// FromAny converts decoded JSON (maps, slices, scalars and nil) into a Value.
func FromAny(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			fields[k] = FromAny(item)
		}
		return Object(fields)
	case []any:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return Array(items...)
	case []string:
		items := make([]Value, len(t))
		for i, item := range t {
			items[i] = Scalar(item)
		}
		return Array(items...)
	default:
		return Scalar(t)
	}
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// Field returns an object member, or Absent when v is not an object or lacks the key.
func (v Value) Field(name string) Value {
	if v.kind != KindObject {
		return Absent()
	}
	f, ok := v.fields[name]
	if !ok {
		return Absent()
	}
	return f
}

// Items returns the elements of an array value.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.items
}

// Interface converts the tree back to plain Go values. Absent object members are
// omitted, absent array elements become nil and an absent root yields nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindArray:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.fields))
		for k, f := range v.fields {
			if f.kind == KindAbsent {
				continue
			}
			out[k] = f.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the tree, omitting absent object members.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// ValueVisitor rewrites one node of a Value tree. Children are visited first.
type ValueVisitor interface {
	Visit(v Value) Value
}

// ValueVisitorFunc adapts a function to ValueVisitor.
type ValueVisitorFunc func(Value) Value

// Visit calls f.
func (f ValueVisitorFunc) Visit(v Value) Value { return f(v) }

// Walk rebuilds v bottom-up, passing every node to the visitor.
func Walk(v Value, visitor ValueVisitor) Value {
	switch v.kind {
	case KindArray:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			items[i] = Walk(item, visitor)
		}
		v = Array(items...)
	case KindObject:
		keys := make([]string, 0, len(v.fields))
		for k := range v.fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make(map[string]Value, len(keys))
		for _, k := range keys {
			fields[k] = Walk(v.fields[k], visitor)
		}
		v = Object(fields)
	}
	return visitor.Visit(v)
}

// StripNulls maps every null in the tree to absent.
func StripNulls(v Value) Value {
	return Walk(v, ValueVisitorFunc(func(n Value) Value {
		if n.kind == KindNull {
			return Absent()
		}
		return n
	}))
}

// StripNullInput applies StripNulls to a variables map, typically one copied from a
// fetched record into an update input.
func StripNullInput(input map[string]any) map[string]any {
	if input == nil {
		return nil
	}
	out, _ := StripNulls(FromAny(input)).Interface().(map[string]any)
	return out
}
