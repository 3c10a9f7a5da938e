package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://github.com/nibzard/planner-go/config.schema.json"

// Schema is the JSON Schema every merged configuration must satisfy.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "planner configuration",
  "type": "object",
  "required": ["placeholder", "table_style", "column_width", "color", "description_limit", "ui", "log_level", "log_format"],
  "properties": {
    "categories": {
      "type": ["array", "null"],
      "items": {"type": "string", "minLength": 1, "maxLength": 64, "pattern": "^[^A-Z]*$"}
    },
    "placeholder": {"type": "string", "minLength": 1},
    "table_style": {"enum": ["classic", "grid"]},
    "column_width": {"type": "integer", "minimum": 8, "maximum": 200},
    "color": {"type": "boolean"},
    "highlight_color": {"type": "string"},
    "base_color": {"type": "string"},
    "description_limit": {"type": "integer", "minimum": 1},
    "ui": {"enum": ["menu", "tui"]},
    "log_dir": {"type": "string"},
    "log_level": {"enum": ["debug", "info", "warn", "warning", "error", "fatal"]},
    "log_format": {"enum": ["text", "json", "logfmt"]},
    "log_timestamps": {"type": "boolean"},
    "log_caller": {"type": "boolean"}
  },
  "additionalProperties": false
}`

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // dotted path to the offending key
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func configSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(Schema)); err != nil {
			compileErr = fmt.Errorf("add config schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Validate checks cfg against Schema and returns one error per violation.
func Validate(cfg *Config) []error {
	schema, err := configSchema()
	if err != nil {
		return []error{err}
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("marshal config for validation: %w", err)}}
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return []error{&ValidationError{Err: fmt.Errorf("unmarshal config for validation: %w", err)}}
	}

	if err := schema.Validate(doc); err != nil {
		var errs []error
		collectSchemaErrors(&errs, err)
		return errs
	}
	return nil
}

func collectSchemaErrors(errs *[]error, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		*errs = append(*errs, err)
		return
	}
	if len(ve.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(ve.InstanceLocation),
			Err:  fmt.Errorf("%s", ve.Message),
		})
		return
	}
	for _, cause := range ve.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath converts "/categories/1" to "categories[1]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(strings.TrimPrefix(ptr, "#"), "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
