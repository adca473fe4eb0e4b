package utils

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldType is the closed set of JSON value types the map validators check.
// Numbers decoded from JSON arrive as float64, so TypeInt accepts only
// integral float64 values (and native Go ints from internal callers).
type FieldType int

const (
	TypeString FieldType = iota
	TypeInt
	TypeNumber
)

func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	default:
		return "number"
	}
}

// IsEmpty reports whether a decoded JSON value counts as empty. Zero numbers
// are not empty.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []any:
		return len(v) == 0
	case map[string]any:
		return len(v) == 0
	default:
		return false
	}
}

// ValidateRequiredFields appends a message for every required field absent
// from data.
func ValidateRequiredFields(data map[string]any, fields []string, errs *[]string) {
	for _, field := range fields {
		if _, ok := data[field]; !ok {
			*errs = append(*errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}
}

// ValidateNonEmptyIfPresent appends a message for every field that is
// present in data but empty.
func ValidateNonEmptyIfPresent(data map[string]any, fields []string, errs *[]string) {
	for _, field := range fields {
		if value, ok := data[field]; ok && IsEmpty(value) {
			*errs = append(*errs, fmt.Sprintf("Missing required field: %s", field))
		}
	}
}

// ValidateFieldTypes appends a message for every present field whose value
// does not match the expected type. Fields are checked in name order so
// multi-violation messages are stable.
func ValidateFieldTypes(data map[string]any, expectedTypes map[string]FieldType, errs *[]string) {
	fields := make([]string, 0, len(expectedTypes))
	for field := range expectedTypes {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		value, ok := data[field]
		if !ok {
			continue
		}
		if !matchesType(value, expectedTypes[field]) {
			*errs = append(*errs, fmt.Sprintf("Field '%s' must be of type %s", field, expectedTypes[field]))
		}
	}
}

// ValidateNonNegativeFields appends a message for every present numeric
// field with a negative value. Non-numeric values are left to the type check.
func ValidateNonNegativeFields(data map[string]any, fields []string, errs *[]string) {
	for _, field := range fields {
		value, ok := data[field]
		if !ok {
			continue
		}
		if number, ok := asNumber(value); ok && number < 0 {
			*errs = append(*errs, fmt.Sprintf("Field '%s' must be non-negative", field))
		}
	}
}

func matchesType(value any, expected FieldType) bool {
	switch expected {
	case TypeString:
		_, ok := value.(string)
		return ok
	case TypeInt:
		switch v := value.(type) {
		case int, int64:
			return true
		case float64:
			return v == math.Trunc(v)
		default:
			return false
		}
	default:
		_, ok := asNumber(value)
		return ok
	}
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}

// StringField extracts a string value from decoded JSON data.
func StringField(data map[string]any, field string) (string, bool) {
	value, ok := data[field].(string)
	return value, ok
}

// IntField extracts an integral value from decoded JSON data.
func IntField(data map[string]any, field string) (int, bool) {
	value, ok := data[field]
	if !ok || !matchesType(value, TypeInt) {
		return 0, false
	}
	number, _ := asNumber(value)
	return int(number), true
}

// NumberField extracts a numeric value from decoded JSON data.
func NumberField(data map[string]any, field string) (float64, bool) {
	value, ok := data[field]
	if !ok {
		return 0, false
	}
	return asNumber(value)
}

var validate = validator.New()

// ValidateStruct runs validator tags over a fixed-shape request DTO and
// returns human-readable messages keyed by field.
func ValidateStruct(data interface{}) map[string]string {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, err := range validationErrors {
			errors[err.Field()] = getErrorMessage(err)
		}
	}

	return errors
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Minimum length is %s", err.Param())
	case "max":
		return fmt.Sprintf("Maximum length is %s", err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("Must be one of: %s", options)
	default:
		return fmt.Sprintf("Invalid %s field", err.Field())
	}
}

// FormatValidationErrors formats a validation errors map into a single
// string with stable field ordering.
func FormatValidationErrors(errors map[string]string) string {
	fields := make([]string, 0, len(errors))
	for field := range errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var msgs []string
	for _, field := range fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, errors[field]))
	}
	return strings.Join(msgs, "; ")
}
