package models

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *gojsonschema.Schema
	schemaErr      error
)

// ValidationError lists every schema violation found in a record.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("resume validation failed: %s", strings.Join(e.Errors, "; "))
}

// ResumeJSONSchema returns the JSON Schema every ResumeRecord must satisfy.
func ResumeJSONSchema() string {
	return string(resumeSchemaJSON)
}

func resumeSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchemaJSON))
		if schemaErr != nil {
			schemaErr = fmt.Errorf("failed to compile resume schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Validate checks the record against the resume schema.
func (r *ResumeRecord) Validate() error {
	return validate(gojsonschema.NewGoLoader(r))
}

// ValidateMap validates a generic map against the resume schema.
func ValidateMap(m map[string]interface{}) error {
	return validate(gojsonschema.NewGoLoader(m))
}

func validate(doc gojsonschema.JSONLoader) error {
	schema, err := resumeSchema()
	if err != nil {
		return err
	}

	res, err := schema.Validate(doc)
	if err != nil {
		return fmt.Errorf("failed to validate resume: %w", err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return &ValidationError{Errors: msgs}
}

// ParseResumeJSON decodes a serialized record, fills empty lists and
// validates it.
func ParseResumeJSON(data []byte) (*ResumeRecord, error) {
	var r ResumeRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode resume: %w", err)
	}
	r.Normalize()

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// FromMap converts a loosely typed map into a record.
func FromMap(m map[string]interface{}) (*ResumeRecord, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume map: %w", err)
	}
	return ParseResumeJSON(data)
}

// ToMap converts the record into a generic map keyed by its JSON names.
func (r *ResumeRecord) ToMap() (map[string]interface{}, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode resume: %w", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to decode resume map: %w", err)
	}
	return m, nil
}
