// Package validation contains the logic for binding and validating
// request data.
//
// It uses the `validator` library to enforce rules (like
// required fields or numeric bounds) defined in struct tags
// and extracts validation errors into a format the client can
// understand
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/deppfellow/items-api/internal/errs"
)

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required,gt=0"`)
// - Implement Validate() error that calls validation.Struct(req)
// - Return validator.ValidationErrors (or CustomValidationErrors for custom cases)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
// This is used for validation errors that cannot be expressed via validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// wireTags are checked in order to name a field in error messages.
var wireTags = []string{"json", "param", "query", "header", "cookie"}

var validate = newValidator()

var binder = &echo.DefaultBinder{}

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by the name the client sent, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range wireTags {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return ""
	})

	// Decimals are compared as decimals, never through float64.
	for tag, fn := range map[string]validator.Func{
		"decimal_bounded": decimalBounded,
		"decimal_gt":      decimalCompare(func(cmp int) bool { return cmp > 0 }),
		"decimal_lte":     decimalCompare(func(cmp int) bool { return cmp <= 0 }),
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

// Limits of a decimal accepted by decimal_bounded. Comparing or rendering
// a decimal costs time and memory proportional to its exponent.
const (
	maxDecimalExponent = 64
	maxDecimalScale    = 500
	maxDecimalBits     = 256
)

func decimalInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp >= -maxDecimalScale &&
		exp <= maxDecimalExponent &&
		d.Coefficient().BitLen() <= maxDecimalBits
}

func decimalBounded(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && decimalInRange(d)
}

// decimalCompare builds a validator comparing the field with the tag
// parameter. Out of range values always fail.
func decimalCompare(accept func(cmp int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok || !decimalInRange(d) {
			return false
		}
		return accept(d.Cmp(decimal.RequireFromString(fl.Param())))
	}
}

// Struct validates every value with the shared validator and merges the
// resulting field errors.
//
// Validating an embedded struct separately keeps its fields at the top
// level of the error paths ("price" instead of "item.price").
func Struct(values ...interface{}) error {
	var all validator.ValidationErrors
	for _, v := range values {
		err := validate.Struct(v)
		if err == nil {
			continue
		}

		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}
		all = append(all, validationErrors...)
	}

	if len(all) > 0 {
		return all
	}
	return nil
}

// Bind populates payload from path params, query params, headers, cookies
// and body, in that order. Only fields with an explicit `param`, `query`,
// `header` or `cookie` tag are bound from the request line and headers.
//
// Echo's c.Bind skips query params for non-GET requests, which is why the
// binder steps are called one by one.
func Bind(c echo.Context, payload interface{}) error {
	steps := []struct {
		tag  string
		bind func(echo.Context, interface{}) error
	}{
		{tag: "param", bind: binder.BindPathParams},
		{tag: "query", bind: binder.BindQueryParams},
		{tag: "header", bind: binder.BindHeaders},
	}

	for _, step := range steps {
		if err := step.bind(c, payload); err != nil {
			if name, typ := failingField(c, payload, step.tag, step.bind); name != "" {
				return &fieldBindError{field: name, typ: typ, err: err}
			}
			return err
		}
	}

	bindCookies(c, payload)
	return binder.BindBody(c, payload)
}

// fieldBindError is a request value that could not be converted to the
// type of its field.
type fieldBindError struct {
	field string
	typ   reflect.Type
	err   error
}

func (e *fieldBindError) Error() string {
	return e.field + ": " + e.err.Error()
}

func (e *fieldBindError) Unwrap() error {
	return e.err
}

// failingField rebinds every field carrying tag on its own and returns the
// wire name and type of the first one that fails. Echo's binder errors do
// not name the field.
func failingField(c echo.Context, payload interface{}, tag string, bind func(echo.Context, interface{}) error) (string, reflect.Type) {
	typ := reflect.TypeOf(payload)
	if typ.Kind() != reflect.Ptr || typ.Elem().Kind() != reflect.Struct {
		return "", nil
	}
	typ = typ.Elem()

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		name := field.Tag.Get(tag)
		if name == "" || !field.IsExported() {
			continue
		}

		single := reflect.StructOf([]reflect.StructField{{
			Name: field.Name,
			Type: field.Type,
			Tag:  field.Tag,
		}})
		if bind(c, reflect.New(single).Interface()) != nil {
			return name, field.Type
		}
	}
	return "", nil
}

// typeMessage describes the value a field of type t expects.
func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	case reflect.Struct, reflect.Map:
		return "must be an object"
	default:
		return "is invalid"
	}
}

// bindCookies fills string and *string fields tagged `cookie:"name"`.
// Echo's binder has no cookie source. Missing cookies leave the field as is.
func bindCookies(c echo.Context, payload interface{}) {
	val := reflect.ValueOf(payload)
	if val.Kind() != reflect.Ptr || val.Elem().Kind() != reflect.Struct {
		return
	}
	val = val.Elem()
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		name := typ.Field(i).Tag.Get("cookie")
		if name == "" {
			continue
		}
		cookie, err := c.Cookie(name)
		if err != nil {
			continue
		}

		field := val.Field(i)
		switch {
		case !field.CanSet():
		case field.Kind() == reflect.String:
			field.SetString(cookie.Value)
		case field.Kind() == reflect.Ptr && field.Type().Elem().Kind() == reflect.String:
			value := cookie.Value
			field.Set(reflect.ValueOf(&value))
		}
	}
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
// 1) Bind(c, payload) populates the request struct.
// 2) payload.Validate() applies validation rules.
// 3) Returns *errs.HTTPError (400) with field-level errors if validation fails.
//
// NOTE: payload must be a pointer so binding can mutate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := Bind(c, payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindError converts a binder error into an HTTPError, keeping the
// binder's status (400 for bad values, 415 for unknown content types).
// Values of the wrong type are reported as field errors.
func bindError(err error) *errs.HTTPError {
	var fieldErr *fieldBindError
	if errors.As(err, &fieldErr) {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
			Field: fieldErr.field,
			Error: typeMessage(fieldErr.typ),
		}})
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return errs.NewBadRequestError("Validation failed", true, nil, []errs.FieldError{{
			Field: strings.ToLower(typeErr.Field),
			Error: typeMessage(typeErr.Type),
		}})
	}

	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return errs.NewBadRequestError("Invalid request", false, nil, nil)
	}

	message := http.StatusText(echoErr.Code)
	if msg, ok := echoErr.Message.(string); ok && msg != "" {
		message = msg
	}

	if echoErr.Code != http.StatusBadRequest {
		return errs.FromStatus(echoErr.Code, message)
	}
	return errs.NewBadRequestError(message, false, nil, nil)
}

// validateStruct calls v.Validate() and extracts field errors if validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var customValidationErrors CustomValidationErrors
	if errors.As(err, &customValidationErrors) {
		for _, err := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: err.Field,
				Error: err.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "request", Error: err.Error()}}
	}

	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: fieldPath(err),
			Error: fieldMessage(err),
		})
	}

	return "Validation failed", fieldErrors
}

// fieldPath drops the root struct name from the namespace:
// "CreateItemRequest.images[0].url" -> "images[0].url".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

// fieldMessage converts one validator error into a user-friendly message.
func fieldMessage(err validator.FieldError) string {
	isString := err.Kind() == reflect.String

	switch err.Tag() {
	case "required":
		return "is required"

	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())

	case "max":
		if isString {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())

	case "gt", "decimal_gt":
		return fmt.Sprintf("must be greater than %s", err.Param())

	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", err.Param())

	case "lt":
		return fmt.Sprintf("must be less than %s", err.Param())

	case "lte", "decimal_lte":
		return fmt.Sprintf("must be less than or equal to %s", err.Param())

	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(err.Param(), " ", ", "))

	case "decimal_bounded":
		return fmt.Sprintf("is outside the supported range: at most %d decimal places and an exponent of at most %d", maxDecimalScale, maxDecimalExponent)

	case "url":
		return "must be a valid absolute URL"

	default:
		if err.Param() != "" {
			return fmt.Sprintf("failed %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed %s", err.Tag())
	}
}
