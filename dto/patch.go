package dto

import "encoding/json"

// PatchOperation is a single RFC 6902 operation. A PATCH body is a JSON array
// of these.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	From  string          `json:"from,omitempty"`
	Value json.RawMessage `json:"value,omitempty"`
}

// Replace builds a "replace" operation for the given JSON pointer path.
func Replace(path string, value any) (PatchOperation, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return PatchOperation{}, err
	}
	return PatchOperation{Op: "replace", Path: path, Value: raw}, nil
}
