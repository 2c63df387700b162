package movie

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed movies.json
var defaultDataset []byte

var (
	ErrMissingID   = errors.New("movie without id")
	ErrDuplicateID = errors.New("duplicate movie id")
)

// Seed returns the built-in dataset.
func Seed() ([]Movie, error) {
	return decodeJSON(defaultDataset)
}

// LoadFile reads the initial dataset from a JSON or YAML file. An empty path
// falls back to Seed.
func LoadFile(path string) ([]Movie, error) {
	if path == "" {
		return Seed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var movies []Movie
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		movies, err = decodeYAML(data)
	default:
		movies, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return movies, nil
}

func decodeJSON(data []byte) ([]Movie, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var movies []Movie
	if err := dec.Decode(&movies); err != nil {
		return nil, err
	}
	return movies, checkIDs(movies)
}

func decodeYAML(data []byte) ([]Movie, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var movies []Movie
	if err := dec.Decode(&movies); err != nil {
		return nil, err
	}
	return movies, checkIDs(movies)
}

func checkIDs(movies []Movie) error {
	seen := make(map[string]struct{}, len(movies))
	for i, m := range movies {
		if m.ID == "" {
			return fmt.Errorf("record %d: %w", i, ErrMissingID)
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("record %d: %w %q", i, ErrDuplicateID, m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}
