package validator

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"myflix/proj/internal/domain/filters"

	govalidator "github.com/go-playground/validator/v10"
)

// FieldError is a single rule violation reported back to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value"`
}

func New() *govalidator.Validate {
	v := govalidator.New(govalidator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("sortbymoviefield", ValidateSortByMovieField); err != nil {
		panic(err)
	}
	return v
}

func structType(obj any) reflect.Type {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func getFieldName(obj any, origFieldName string) (fieldName string) {
	t := structType(obj)
	field, found := t.FieldByName(origFieldName)
	if !found {
		panic(fmt.Sprintf("Field %s not found in type %s", origFieldName, t.Name()))
	}
	fieldName = strings.ToLower(origFieldName[:1]) + origFieldName[1:]
	for _, key := range []string{"json", "schema"} {
		if tag := field.Tag.Get(key); tag != "" && tag != "-" {
			if name := strings.Split(tag, ",")[0]; name != "" {
				return name
			}
		}
	}
	return
}

func ProcessValidationErrors(obj any, errs govalidator.ValidationErrors) []FieldError {
	processedErrors := make([]FieldError, 0, len(errs))
	for _, e := range errs {
		processedErrors = append(processedErrors, FieldError{
			Field:   getFieldName(obj, e.StructField()),
			Message: GetErrorMsgForField(obj, e),
			Value:   e.Value(),
		})
	}
	return processedErrors
}

func ValidateStruct(validator *govalidator.Validate, obj any) (validationErrs []FieldError) {
	if err := validator.Struct(obj); err != nil {
		validationErrs = ProcessValidationErrors(obj, err.(govalidator.ValidationErrors))
	}
	return
}

// customMessage reads the errorMsg struct tag. It holds either one message for
// every rule or a ";" separated list of rule=message pairs.
func customMessage(tag, rule string) string {
	if tag == "" {
		return ""
	}
	if !strings.Contains(tag, "=") {
		return tag
	}
	for _, pair := range strings.Split(tag, ";") {
		name, msg, ok := strings.Cut(pair, "=")
		if ok && strings.TrimSpace(name) == rule {
			return strings.TrimSpace(msg)
		}
	}
	return ""
}

func GetErrorMsgForField(obj any, err govalidator.FieldError) (errorMsg string) {
	t := structType(obj)
	field, found := t.FieldByName(err.StructField())
	if !found {
		panic(fmt.Sprintf("Field %s not found in type %s", err.StructField(), t.Name()))
	}
	errorMsg = customMessage(field.Tag.Get("errorMsg"), err.Tag())
	if errorMsg == "" {
		switch err.Tag() {
		case "required":
			errorMsg = "This field is required"
		case "max":
			errorMsg = fmt.Sprintf("The maximum length is %s", err.Param())
		case "min":
			errorMsg = fmt.Sprintf("The minimum length is %s", err.Param())
		case "email":
			errorMsg = "Value must be a valid email address"
		case "alphanum":
			errorMsg = "Value must be alphanumeric"
		case "sortbymoviefield":
			errorMsg = fmt.Sprintf("Value must be one of %s, optionally prefixed with '-'", strings.Join(filters.MovieSortSafelist, ", "))
		default:
			errorMsg = "This field is invalid"
		}
	}
	return
}

// CUSTOM VALIDATORS

func ValidateSortByMovieField(fl govalidator.FieldLevel) bool {
	sort := strings.TrimPrefix(fl.Field().String(), "-")
	return slices.Contains(filters.MovieSortSafelist, sort)
}
