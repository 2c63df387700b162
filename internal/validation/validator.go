// Package validation checks movie payloads against the movie schema and
// normalizes them into typed records.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/zhouzirui/movies-api/internal/model/movie"
)

// Validator validates movie payloads. It is safe for concurrent use.
type Validator struct {
	schema *jsonschema.Schema
}

// New compiles the movie schema.
func New() (*Validator, error) {
	schema, err := compileMovieSchema()
	if err != nil {
		return nil, err
	}
	return &Validator{schema: schema}, nil
}

// MustNew is like New but panics if the schema does not compile.
func MustNew() *Validator {
	v, err := New()
	if err != nil {
		panic(err)
	}
	return v
}

// Full validates a creation payload. Every required field must be present;
// rate defaults to 0. The returned movie has no identifier.
func (v *Validator) Full(data []byte) (movie.Movie, error) {
	obj, err := v.check(data, false)
	if err != nil {
		return movie.Movie{}, err
	}
	return movie.Movie{}.Apply(toPatch(obj)), nil
}

// Partial validates an update payload. Only the fields present are checked
// and returned.
func (v *Validator) Partial(data []byte) (movie.Patch, error) {
	obj, err := v.check(data, true)
	if err != nil {
		return movie.Patch{}, err
	}
	return toPatch(obj), nil
}

func (v *Validator) check(data []byte, partial bool) (map[string]any, error) {
	doc, err := decodeDocument(data)
	if err != nil {
		return nil, &Error{Issues: []Issue{{Code: CodeMalformed, Message: "body must be a single valid JSON document"}}}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &Error{Issues: []Issue{{Code: CodeInvalidType, Message: "expected object"}}}
	}

	verr := &Error{}
	if !partial {
		for _, f := range movieFields {
			if _, present := obj[f.name]; f.required && !present {
				verr.add(f.name, CodeMissing, "required")
			}
		}
	}

	unknown := make([]string, 0)
	for name := range obj {
		if !isKnownField(name) {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		verr.add(name, CodeUnrecognized, "unrecognized field")
	}

	if err := v.schema.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			collectIssues(ve, verr)
		} else {
			verr.add("", CodeInvalid, err.Error())
		}
	}

	if len(verr.Issues) > 0 {
		sort.SliceStable(verr.Issues, func(i, j int) bool {
			return fieldOrder(verr.Issues[i].Field) < fieldOrder(verr.Issues[j].Field)
		})
		return nil, verr
	}
	return obj, nil
}

// decodeDocument decodes exactly one JSON value, keeping numbers as
// json.Number so the schema sees their exact value.
func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON document")
	}
	return doc, nil
}

// collectIssues flattens the leaf causes of a schema error into issues.
func collectIssues(ve *jsonschema.ValidationError, verr *Error) {
	if len(ve.Causes) == 0 {
		verr.add(fieldFromPointer(ve.InstanceLocation), codeForKeyword(lastSegment(ve.KeywordLocation)), ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		collectIssues(cause, verr)
	}
}

// fieldFromPointer returns the top-level property named by a JSON pointer.
func fieldFromPointer(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if i := strings.IndexByte(ptr, '/'); i >= 0 {
		ptr = ptr[:i]
	}
	return ptr
}

func lastSegment(ptr string) string {
	if i := strings.LastIndexByte(ptr, '/'); i >= 0 {
		return ptr[i+1:]
	}
	return ptr
}

// toPatch converts a schema-valid document into a Patch.
func toPatch(obj map[string]any) movie.Patch {
	var p movie.Patch
	for name, raw := range obj {
		switch name {
		case "title":
			s := asString(raw)
			p.Title = &s
		case "genre":
			p.Genre = asStrings(raw)
		case "year":
			n := asInt(raw)
			p.Year = &n
		case "director":
			s := asString(raw)
			p.Director = &s
		case "duration":
			n := asInt(raw)
			p.Duration = &n
		case "rate":
			f := asFloat(raw)
			p.Rate = &f
		case "poster":
			s := asString(raw)
			p.Poster = &s
		}
	}
	return p
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case json.Number:
		f, _ := n.Float64()
		return f
	case float64:
		return n
	}
	return 0
}

// asInt converts a schema-checked integer. Values such as 2020.0 are
// integers for the schema but not for Int64, so they go through Float64.
func asInt(v any) int {
	n, ok := v.(json.Number)
	if !ok {
		return int(asFloat(v))
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	return int(asFloat(v))
}

func asStrings(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, asString(item))
	}
	return out
}
