// Package normalizer flattens the commerce backend's historically observed
// payload shapes into typed records. The backend has shipped the same lists
// as a bare array, `{result: [...]}`, `{data: {result: [...]}}` and the full
// `{isSuccess, value: {data: {result: [...]}}}` envelope; all of them decode
// here. Anything else degrades to an empty result, never an error.
package normalizer

import (
	"bytes"
	"encoding/json"
)

// wrapper keys peeled, in order, until an array (or leaf object) is found.
var wrapperKeys = []string{"value", "data", "result"}

// maxDepth bounds wrapper peeling so a pathological payload cannot recurse.
const maxDepth = 6

// List decodes any observed list shape into a slice of T. Malformed or
// unknown payloads yield a nil slice.
func List[T any](payload []byte) []T {
	raw := unwrap(payload, maxDepth, true)
	if raw == nil {
		return nil
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// One decodes a single-record payload, peeling the same envelope wrappers.
// Returns false when no record could be decoded.
func One[T any](payload []byte) (T, bool) {
	var out T
	raw := unwrap(payload, maxDepth, false)
	if raw == nil {
		return out, false
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// unwrap walks down the known wrapper keys until it reaches an array
// (wantArray) or an object with none of the wrapper keys left to peel.
func unwrap(payload []byte, depth int, wantArray bool) json.RawMessage {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || depth == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		if wantArray {
			return trimmed
		}
		return nil
	}
	if trimmed[0] != '{' {
		return nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil
	}
	for _, key := range wrapperKeys {
		if inner, ok := obj[key]; ok {
			if res := unwrap(inner, depth-1, wantArray); res != nil {
				return res
			}
		}
	}
	if !wantArray {
		// leaf object is the record itself
		return trimmed
	}
	return nil
}
