package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to their wire-level names so
// validation messages match what the client actually sent.
var FieldLabels = map[string]string{
	"Ref":      "ref",
	"Position": "position",
	"StateID":  "stateId",
	"ResumeID": "resumeId",
}

// FieldLabel returns the wire-level name for a struct field
func FieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return fieldName
}

// FormatFieldError converts a single validator error to a user-facing
// reason, without the field name; callers pair it with FieldLabel.
func FormatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed validation (%s)", e.Tag())
	}
}
