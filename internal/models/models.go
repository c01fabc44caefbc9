package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// JSONValue is a generic type to represent any JSON value.
// It holds one of: nil, bool, json.Number, string, *JSONArray or *JSONObject.
type JSONValue interface{}

// JSONObject is a JSON object that remembers the order its keys were inserted in.
type JSONObject struct {
	keys   []string
	values map[string]JSONValue
}

// NewJSONObject creates an empty object
func NewJSONObject() *JSONObject {
	return &JSONObject{values: make(map[string]JSONValue)}
}

// Get returns the value stored under key
func (o *JSONObject) Get(key string) (JSONValue, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present
func (o *JSONObject) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Set inserts or overwrites key. An overwritten key keeps its position.
func (o *JSONObject) Set(key string, value JSONValue) {
	if o.values == nil {
		o.values = make(map[string]JSONValue)
	}
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Keys returns the keys in insertion order
func (o *JSONObject) Keys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)
	return keys
}

// Len returns the number of keys
func (o *JSONObject) Len() int {
	return len(o.keys)
}

// JSONArray is a JSON array. It is always handled by pointer so that
// appends are visible to every holder of the array.
type JSONArray struct {
	items []JSONValue
}

// NewJSONArray creates an array holding items
func NewJSONArray(items ...JSONValue) *JSONArray {
	return &JSONArray{items: items}
}

// Len returns the number of elements
func (a *JSONArray) Len() int {
	return len(a.items)
}

// At returns the element at i. It panics if i is out of range.
func (a *JSONArray) At(i int) JSONValue {
	return a.items[i]
}

// Put overwrites the element at i. It panics if i is out of range.
func (a *JSONArray) Put(i int, value JSONValue) {
	a.items[i] = value
}

// Append adds value after the last element
func (a *JSONArray) Append(value JSONValue) {
	a.items = append(a.items, value)
}

// Items returns the elements. The slice must not be modified.
func (a *JSONArray) Items() []JSONValue {
	return a.items
}

// FromNative converts values produced by encoding/json (or written by hand)
// into model values. Map keys are inserted in sorted order.
func FromNative(val interface{}) (JSONValue, error) {
	switch v := val.(type) {
	case nil, bool, string, json.Number, *JSONObject, *JSONArray:
		return v, nil
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		obj := NewJSONObject()
		for _, key := range keys {
			child, err := FromNative(v[key])
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}
			obj.Set(key, child)
		}
		return obj, nil
	case []interface{}:
		arr := &JSONArray{items: make([]JSONValue, 0, len(v))}
		for i, item := range v {
			child, err := FromNative(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(child)
		}
		return arr, nil
	case []string:
		arr := &JSONArray{items: make([]JSONValue, 0, len(v))}
		for _, item := range v {
			arr.Append(item)
		}
		return arr, nil
	case int:
		return json.Number(strconv.Itoa(v)), nil
	case int64:
		return json.Number(strconv.FormatInt(v, 10)), nil
	case float64:
		return json.Number(strconv.FormatFloat(v, 'g', -1, 64)), nil
	default:
		return nil, fmt.Errorf("unsupported type %T", val)
	}
}

// MustFromNative is like FromNative but panics on unsupported types.
// It is intended for literals in tests.
func MustFromNative(val interface{}) JSONValue {
	v, err := FromNative(val)
	if err != nil {
		panic(err)
	}
	return v
}

// Equal reports whether a and b are structurally equal. Object key order
// is ignored and numbers are compared by their numeric value.
func Equal(a, b JSONValue) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		if !ok {
			return false
		}
		if av == bv {
			return true
		}
		af, errA := av.Float64()
		bf, errB := bv.Float64()
		return errA == nil && errB == nil && af == bf
	case *JSONArray:
		bv, ok := b.(*JSONArray)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i := range av.items {
			if !Equal(av.items[i], bv.items[i]) {
				return false
			}
		}
		return true
	case *JSONObject:
		bv, ok := b.(*JSONObject)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, key := range av.keys {
			other, exists := bv.values[key]
			if !exists || !Equal(av.values[key], other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// TypeName returns the JSON type name of v, for messages
func TypeName(v JSONValue) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case *JSONArray:
		return "array"
	case *JSONObject:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
