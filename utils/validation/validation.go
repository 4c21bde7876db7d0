// Package validation runs struct-tag rules and reports the first failing rule
// as a human readable message.
//
// Field names in messages come from the `label` tag, so a field tagged
// `label:"order number" validate:"required"` fails with
// "The order number field is required.".
package validation

import (
	goerrors "errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"sync"

	"satim-gateway/domain/constants"
	"satim-gateway/domain/value_objects"
	"satim-gateway/errors"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			if label := field.Tag.Get("label"); label != "" {
				return label
			}
			return field.Name
		})
		// registration only fails on empty tags
		_ = validate.RegisterValidation("finite", isFinite)
		_ = validate.RegisterValidation("decimal", hasDecimalPlaces)
		_ = validate.RegisterValidation("currency", isCurrency)
		_ = validate.RegisterValidation("language", isLanguage)
	})
	return validate
}

// Validate checks s field by field in declaration order and returns an
// *errors.InvalidArgumentError carrying the first failure, or nil.
func Validate(s interface{}) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if goerrors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		return errors.NewInvalidArgument(Message(fieldErrors[0]))
	}
	return errors.NewInvalidArgument(err.Error())
}

// Message renders a single rule failure.
func Message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "url":
		return fmt.Sprintf("The %s field must be a valid URL.", field)
	case "finite":
		return fmt.Sprintf("The %s field must be a number.", field)
	case "decimal":
		return fmt.Sprintf("The %s field must have %s decimal places.", field, fe.Param())
	case "currency", "language", "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}

// hasDecimalPlaces accepts floats with at most Param() fractional digits.
func hasDecimalPlaces(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	if fl.Field().Kind() != reflect.Float64 {
		return false
	}
	v := fl.Field().Float()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return value_objects.DecimalPlaces(v) <= int32(places)
}

func isFinite(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.Float64 {
		return false
	}
	return value_objects.IsFinite(fl.Field().Float())
}

func isCurrency(fl validator.FieldLevel) bool {
	return constants.Currency(fl.Field().String()).IsValid()
}

func isLanguage(fl validator.FieldLevel) bool {
	return constants.Language(fl.Field().String()).IsValid()
}
