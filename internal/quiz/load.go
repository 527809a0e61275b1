package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a quiz file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported quiz file extension %q", filepath.Ext(path))
}

// ErrInvalidQuizFile indicates a quiz document that is malformed or does not
// conform to the quiz schema.
type ErrInvalidQuizFile struct {
	Source string
	Err    error
}

func (e *ErrInvalidQuizFile) Error() string {
	return fmt.Sprintf("invalid quiz file %s: %v", e.Source, e.Err)
}

func (e *ErrInvalidQuizFile) Unwrap() error { return e.Err }

// Load reads and decodes the quiz file at path.
func Load(path string) (Quiz, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Quiz{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Quiz{}, fmt.Errorf("open quiz file: %w", err)
	}
	defer f.Close()

	q, err := Decode(f, format)
	if err != nil {
		var invalid *ErrInvalidQuizFile
		if errors.As(err, &invalid) {
			invalid.Source = path
		}
		return Quiz{}, err
	}
	return q, nil
}

// Decode reads a quiz document in the given format. Both formats are
// normalized to JSON and checked against the quiz schema before decoding.
func Decode(r io.Reader, format Format) (Quiz, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Quiz{}, fmt.Errorf("read quiz: %w", err)
	}

	switch format {
	case FormatJSON:
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return Quiz{}, &ErrInvalidQuizFile{Source: "<input>", Err: fmt.Errorf("invalid YAML: %w", err)}
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return Quiz{}, &ErrInvalidQuizFile{Source: "<input>", Err: fmt.Errorf("convert YAML: %w", err)}
		}
		raw = b
	default:
		return Quiz{}, fmt.Errorf("unsupported quiz format %q", format)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return Quiz{}, &ErrInvalidQuizFile{Source: "<input>", Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compiledSchema()
	if err != nil {
		return Quiz{}, err
	}
	if err := compiled.Validate(doc); err != nil {
		return Quiz{}, &ErrInvalidQuizFile{Source: "<input>", Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var q Quiz
	if err := json.Unmarshal(raw, &q); err != nil {
		return Quiz{}, &ErrInvalidQuizFile{Source: "<input>", Err: err}
	}
	if q.Questions == nil {
		q.Questions = []Question{}
	}
	return q, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

// compiledSchema compiles fileSchema once.
func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// The compiler expects plain JSON values, not Go map literals
		// with typed slices.
		b, err := json.Marshal(fileSchema)
		if err != nil {
			schemaErr = fmt.Errorf("marshal quiz schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
		if err != nil {
			schemaErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://quiz.json"
		if err := c.AddResource(url, def); err != nil {
			schemaErr = fmt.Errorf("add quiz schema: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(url)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile quiz schema: %w", schemaErr)
		}
	})
	return schemaCompiled, schemaErr
}
