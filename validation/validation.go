// Package validation decodes request payloads and checks them against
// `validate` struct tags, reporting every violation in one message.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/yeremiapane/hotel-brand-api/utils"
)

// Decoder fills dst from the request payload. Services call it only after the
// caller has been authorized, so nothing in the body is read earlier.
type Decoder func(dst interface{}) error

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates v and turns all field violations into a single
// ValidationError.
func Struct(v interface{}) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return utils.NewValidation(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}
	return utils.NewValidation(strings.Join(messages, ", "))
}

// Decode reads the payload through decode and validates it.
func Decode[T any](decode Decoder) (*T, error) {
	var payload T
	if decode == nil {
		return nil, utils.NewValidation("request body is required")
	}
	if err := decode(&payload); err != nil {
		return nil, decodeError(err)
	}
	if err := Struct(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// JSON returns a Decoder over a raw JSON document.
func JSON(raw []byte) Decoder {
	return func(dst interface{}) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		return dec.Decode(dst)
	}
}

// Value returns a Decoder that re-encodes v as JSON before decoding it, so
// the payload goes through the same path as a request body.
func Value(v interface{}) Decoder {
	return func(dst interface{}) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dst)
	}
}

func decodeError(err error) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, io.EOF) {
		return utils.NewValidation("request body is required")
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return utils.NewValidation(fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type))
	}
	return utils.NewValidation("invalid request body: " + err.Error())
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain at least %s item(s)", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %s check", field, fe.Tag())
	}
}
