package validation

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed movie.schema.json
var movieSchemaSource string

const movieSchemaURL = "movie.schema.json"

// field describes one property of the movie payload.
type field struct {
	name     string
	required bool
}

// movieFields lists the recognized properties in reporting order.
var movieFields = []field{
	{name: "title", required: true},
	{name: "genre", required: true},
	{name: "year", required: true},
	{name: "director", required: true},
	{name: "duration", required: true},
	{name: "rate", required: false},
	{name: "poster", required: true},
}

func fieldOrder(name string) int {
	for i, f := range movieFields {
		if f.name == name {
			return i
		}
	}
	return len(movieFields)
}

func isKnownField(name string) bool {
	return fieldOrder(name) < len(movieFields)
}

func compileMovieSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	if err := compiler.AddResource(movieSchemaURL, strings.NewReader(movieSchemaSource)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(movieSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile movie schema: %w", err)
	}
	return schema, nil
}
