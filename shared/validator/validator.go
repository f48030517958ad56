package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"pms/shared/constant"
	"pms/shared/dto"
	"pms/shared/failure"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

func registerMimetypeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	contentType := file.Header.Get(constant.RequestHeaderContentType)
	allowedTypes := strings.Split(field.Param(), " ")

	return slices.Contains(allowedTypes, contentType)
}

func registerFileSizeValidation(field val.FieldLevel) bool {
	file, ok := field.Field().Interface().(multipart.FileHeader)
	if !ok {
		return false
	}

	maxSizeMB, err := strconv.ParseFloat(field.Param(), 64)
	if err != nil {
		return false
	}

	bytesConversion := 1024.0
	maxSizeBytes := int64(maxSizeMB * bytesConversion * bytesConversion)

	return file.Size <= maxSizeBytes
}

// decimalValue lets numeric tags (gte, lte, gt) run against money amounts.
func decimalValue(field reflect.Value) any {
	amount, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}

	f, _ := amount.Float64()

	return f
}

// optionalValue unwraps dto.Optional into a pointer so omitnil skips absent or
// null fields while a present zero value still meets the remaining tags.
func optionalValue[T any](field reflect.Value) any {
	opt, ok := field.Interface().(dto.Optional[T])
	if !ok || !opt.Valid {
		return (*T)(nil)
	}

	if amount, isDecimal := any(opt.Value).(decimal.Decimal); isDecimal {
		f, _ := amount.Float64()

		return &f
	}

	value := opt.Value

	return &value
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	validate.RegisterCustomTypeFunc(optionalValue[string], dto.Optional[string]{})
	validate.RegisterCustomTypeFunc(optionalValue[int], dto.Optional[int]{})
	validate.RegisterCustomTypeFunc(optionalValue[bool], dto.Optional[bool]{})
	validate.RegisterCustomTypeFunc(optionalValue[decimal.Decimal], dto.Optional[decimal.Decimal]{})

	err := validate.RegisterValidation("mimetypes", registerMimetypeValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("maxfilesize", registerFileSizeValidation)
	if err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct reports the first violation as the message and all of them,
// keyed by JSON field name, in the failure details.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	msg, fields := messages(err)
	if fields == nil {
		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return failure.BadRequestWithDetails(ReasonValidationFailed, msg, fields) //nolint:wrapcheck
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err == nil {
		return nil
	}

	msg, _ := messages(err)

	return failure.BadRequestFromString(msg) //nolint:wrapcheck
}

// ValidateID rejects a path identifier that is not a UUID before it reaches a
// uuid column.
func ValidateID(param, value string) error {
	if err := validate.Var(value, "required,uuid"); err != nil {
		return failure.BadRequestFromString(param + " must be a valid UUID") //nolint:wrapcheck
	}

	return nil
}

// ParseTime reads an RFC3339 query value.
func ParseTime(field, value string) (time.Time, error) {
	parsed, err := time.Parse(constant.DateFormat, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(field + " must be an RFC3339 timestamp") //nolint:wrapcheck
	}

	return parsed, nil
}
