package pipeline

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator builds the validator used by every entity descriptor. Field
// names in violations follow the json tags so clients see the same names
// they sent.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// CheckStruct runs the tag constraints of entity and returns the ordered
// violation list, empty when the entity is valid.
func CheckStruct(v *validator.Validate, entity any) []Violation {
	if err := v.Struct(entity); err != nil {
		return violationsFromStruct(err)
	}
	return nil
}
