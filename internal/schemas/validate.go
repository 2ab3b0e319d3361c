// Package schemas provides JSON Schema validation for documents handed to
// external systems.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// screeningDocumentSchema validates the flat document emitted to the search
// index. Kept strict on required fields and bounds so a malformed document
// is caught before it leaves the process.
const screeningDocumentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["application_id", "candidate_id", "job_posting_id", "skills", "score", "confidence"],
  "properties": {
    "application_id": {"type": "string", "minLength": 1},
    "candidate_id": {"type": "string", "minLength": 1},
    "job_posting_id": {"type": "string", "minLength": 1},
    "skills": {"type": "array", "items": {"type": "string"}},
    "positions": {"type": "array", "items": {"type": "string"}},
    "employers": {"type": "array", "items": {"type": "string"}},
    "languages": {"type": "array", "items": {"type": "string"}},
    "certifications": {"type": "array", "items": {"type": "string"}},
    "score": {"type": "integer", "minimum": 0, "maximum": 100},
    "confidence": {"type": "integer", "minimum": 0, "maximum": 100},
    "experience_match": {"type": "boolean"},
    "education_match": {"type": "boolean"},
    "screened_at": {"type": "string"}
  }
}`

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range ve.Errors {
		sb.WriteString(fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message))
	}
	return sb.String()
}

// ValidateScreeningDocument validates a screening document against the
// embedded schema before it is sent to the search index.
func ValidateScreeningDocument(doc any) error {
	schemaLoader := gojsonschema.NewStringLoader(screeningDocumentSchema)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
