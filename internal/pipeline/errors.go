package pipeline

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrForbidden is returned when the operation's role predicate rejects the
// principal. Nothing is loaded and no side effect has occurred.
var ErrForbidden = errors.New("forbidden")

// NotFoundError is returned when a targeted id does not resolve to an entity.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// Violation is one failed constraint on one field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full ordered violation list of a rejected
// entity. The store is untouched when it is returned.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Violations[0].Field, e.Violations[0].Message)
}

// AsValidation unwraps err into a ValidationError if it is one.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// violationsFromStruct converts validator errors into the ordered violation
// list, using the json field names registered on the validator.
func violationsFromStruct(err error) []Violation {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Field: "", Message: err.Error()}}
	}
	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This value should not be blank"
	case "min":
		return fmt.Sprintf("This value must be at least %s characters long", fe.Param())
	case "max":
		return fmt.Sprintf("This value cannot be longer than %s characters", fe.Param())
	case "email":
		return "This value is not a valid email address"
	case "uuid":
		return "This value is not a valid UUID"
	default:
		return fmt.Sprintf("This value failed the '%s' constraint", fe.Tag())
	}
}
