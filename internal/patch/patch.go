// Package patch applies RFC 6902 JSON patch documents to transfer models.
//
// Operations are evaluated one at a time against the JSON form of the target.
// An operation that fails, or that leaves a document the target type cannot
// hold, is recorded and skipped; the target is only written when every
// operation applied cleanly and the result passes validation. Member names
// must match the target's JSON names exactly, and fields that are not
// pointers, slices or maps cannot be set to null.
package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"villa-api-backend/internal/errs"
	"villa-api-backend/internal/validation"
)

// Error describes why a patch document was rejected.
type Error struct {
	Message string
	Fields  []errs.FieldError
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Error)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Decode parses a patch document. An empty document is an error.
func Decode(body []byte) (jsonpatch.Patch, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &Error{Message: "patch document is required"}
	}
	p, err := jsonpatch.DecodePatch(body)
	if err != nil {
		return nil, &Error{Message: "malformed patch document: " + err.Error()}
	}
	if len(p) == 0 {
		return nil, &Error{Message: "patch document contains no operations"}
	}
	return p, nil
}

// Apply applies p to target. target is left untouched when an *Error is
// returned.
func Apply[T any](p jsonpatch.Patch, target *T) error {
	doc, err := json.Marshal(target)
	if err != nil {
		return fmt.Errorf("patch: encode target: %w", err)
	}

	allowed := shapeOf[T]()

	var problems []errs.FieldError
	for _, op := range p {
		field := fieldName(op)

		next, err := jsonpatch.Patch{op}.Apply(doc)
		if err != nil {
			problems = append(problems, errs.FieldError{Field: field, Error: err.Error()})
			continue
		}

		if bad := allowed.check(field, next); len(bad) > 0 {
			problems = append(problems, bad...)
			continue
		}

		var probe T
		if err := decodeStrict(next, &probe); err != nil {
			problems = append(problems, decodeProblems(field, err)...)
			continue
		}
		doc = next
	}

	if len(problems) > 0 {
		return &Error{Message: "patch could not be applied", Fields: problems}
	}

	var result T
	if err := decodeStrict(doc, &result); err != nil {
		return &Error{Message: "patch could not be applied", Fields: decodeProblems("", err)}
	}
	if err := validation.Struct(result); err != nil {
		if fields := errs.FieldErrors(err); len(fields) > 0 {
			return &Error{Message: "patched document is invalid", Fields: fields}
		}
		return fmt.Errorf("patch: validate: %w", err)
	}

	*target = result
	return nil
}

// shape maps each JSON member of a struct type to whether it may hold null.
type shape map[string]bool

func shapeOf[T any]() shape {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return nil
	}
	s := shape{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.Split(f.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		switch f.Type.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
			s[name] = true
		default:
			s[name] = false
		}
	}
	return s
}

// check reports members of doc the shape does not have, compared
// case-sensitively, and nulls in fields that cannot hold one.
func (s shape) check(field string, doc []byte) []errs.FieldError {
	if s == nil {
		return nil
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(doc, &members); err != nil {
		return []errs.FieldError{{Field: field, Error: "document must be an object"}}
	}

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var problems []errs.FieldError
	for _, k := range keys {
		nullable, known := s[k]
		switch {
		case !known:
			problems = append(problems, errs.FieldError{Field: k, Error: "is not a patchable field"})
		case !nullable && string(bytes.TrimSpace(members[k])) == "null":
			problems = append(problems, errs.FieldError{Field: k, Error: "must not be null"})
		}
	}
	return problems
}

func decodeStrict(doc []byte, out any) error {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func decodeProblems(field string, err error) []errs.FieldError {
	if fields := errs.FieldErrors(err); len(fields) > 0 {
		return fields
	}
	return []errs.FieldError{{Field: field, Error: strings.TrimPrefix(err.Error(), "json: ")}}
}

func fieldName(op jsonpatch.Operation) string {
	path, err := op.Path()
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(path, "/")
}
