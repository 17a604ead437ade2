package serverutils

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names as they appear on the wire.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateRequest checks struct-level validate tags. The returned
// validator.ValidationErrors is translated to a 400 with per-field details
// by the error handler.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
