package validator

import (
	"errors"
	"strings"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

// ReasonValidationFailed tags request bodies rejected by struct tags.
const ReasonValidationFailed = "VALIDATION_FAILED"

var templates = map[string]string{
	"required": "{field} is required",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"oneof":    "{field} must be one of {param}",
	"gt":       "{field} must be greater than {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"lt":       "{field} must be less than {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"gtfield":  "{field} must be after {param}",
	"ltfield":  "{field} must be before {param}",
	"unique":   "{field} must not contain duplicates",
	"dive":     "{field} contains an invalid item",

	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must not exceed {param} MB",
}

// fieldTags compare against another struct field, named in Go case in the param.
var fieldTags = map[string]bool{"gtfield": true, "ltfield": true, "eqfield": true, "nefield": true}

func fieldMessage(fe val.FieldError) string {
	template, ok := templates[fe.Tag()]
	if !ok {
		return fe.Field() + " is invalid"
	}

	param := fe.Param()
	if fieldTags[fe.Tag()] {
		param = snakeCase(param)
	}

	return strings.NewReplacer("{field}", fe.Field(), "{param}", param).Replace(template)
}

// messages returns the first violation as the headline and every violation by
// field name.
func messages(err error) (string, map[string]string) {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) || len(valErrors) == 0 {
		return err.Error(), nil
	}

	fields := make(map[string]string, len(valErrors))

	for _, fe := range valErrors {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	return fieldMessage(valErrors[0]), fields
}

func snakeCase(name string) string {
	var b strings.Builder

	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
