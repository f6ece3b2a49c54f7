package validation

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var embeddedSchemas embed.FS

// SchemaValidator validates JSON data against JSON schemas
type SchemaValidator interface {
	ValidateFile(dataPath, schema string) error
	ValidateBytes(data []byte, schema string) error
}

type validator struct {
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator. Schemas are looked up by
// name among the embedded catalog schemas first, then as a filesystem path.
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateFile validates a JSON file against a schema
func (v *validator) ValidateFile(dataPath, schema string) error {
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to read data file %s: %w", dataPath, err)
	}

	return v.ValidateBytes(data, schema)
}

// ValidateBytes validates JSON data bytes against a schema
func (v *validator) ValidateBytes(data []byte, schema string) error {
	compiled, err := v.loadSchema(schema)
	if err != nil {
		return fmt.Errorf("failed to load schema %s: %w", schema, err)
	}

	var jsonData any
	if err := json.Unmarshal(data, &jsonData); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := compiled.Validate(jsonData); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// loadSchema loads and compiles a schema, caching the result
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	raw, err := readSchema(name)
	if err != nil {
		return nil, err
	}

	var schemaJSON any
	if err := json.Unmarshal(raw, &schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to parse schema JSON: %w", err)
	}

	if err := v.compiler.AddResource(name, schemaJSON); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := v.compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	v.schemas[name] = schema
	return schema, nil
}

func readSchema(name string) ([]byte, error) {
	raw, err := embeddedSchemas.ReadFile("schemas/" + name)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read embedded schema: %w", err)
	}

	raw, err = os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("schema file not found: %s: %w", name, err)
	}
	return raw, nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) {
		var msgs []string
		collectErrors(validationErr, &msgs)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(msgs, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, msgs *[]string) {
	if msg := formatError(err); msg != "" {
		*msgs = append(*msgs, msg)
	}
	for _, cause := range err.Causes {
		collectErrors(cause, msgs)
	}
}

// formatError formats a single validation error with its instance location
// and failing keyword
func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	if err.ErrorKind != nil {
		if keywordPath := err.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
			return fmt.Sprintf("  - at %s: %s validation failed", location, strings.Join(keywordPath, "."))
		}
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
