// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs validator/v10 over a request DTO.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationErrorMap converts validator errors into the field→messages map
// used by JsonValidationError. Non-validator errors map to a generic body.
func ValidationErrorMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["body"] = []string{"invalid input"}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		out[field] = append(out[field], fe.Tag())
	}
	return out
}
