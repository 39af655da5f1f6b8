package models

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rpupo63/portfolio-backend/errs"
)

// schemaValidator enforces the storage-level constraints declared on the model
// structs. These are deliberately looser than the request validators in
// places; they are the second, authoritative gate and run on every write.
var schemaValidator = newSchemaValidator()

func newSchemaValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report errors against JSON field names so storage-level failures use the
	// same field naming as the request validators.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// validateDocument validates a candidate document against its struct tags and
// converts any violations into the shared field-error shape.
func validateDocument(entity string, doc any) error {
	err := schemaValidator.Struct(doc)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewInternalErrorWithCause(fmt.Sprintf("validating %s document", entity), err)
	}

	fieldErrors := make([]errs.FieldError, 0, len(invalid))
	for _, fe := range invalid {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field:   fieldPath(fe.Namespace()),
			Message: constraintMessage(fe),
			Value:   fe.Value(),
		})
	}
	return errs.NewValidationErr(fieldErrors)
}

// fieldPath strips the root struct name from a validator namespace, leaving
// e.g. "images[0].url" instead of "Project.images[0].url".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "lowercase":
		return "must be lowercase"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s constraint", fe.Tag())
	}
}
