// Ascent - Climb Detection for Route Elevation Profiles
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ascent

package validation

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/ascent/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError is one failed field constraint.
type ValidationError struct {
	field   string
	tag     string
	param   string
	value   interface{}
	message string
}

// Field returns the JSON name of the field that failed.
func (e *ValidationError) Field() string { return e.field }

// Tag returns the failed validation tag, e.g. "min".
func (e *ValidationError) Tag() string { return e.tag }

// Param returns the tag parameter, e.g. "2" for "min=2".
func (e *ValidationError) Param() string { return e.param }

// Value returns the rejected value.
func (e *ValidationError) Value() interface{} { return e.value }

func (e *ValidationError) Error() string { return e.message }

// RequestValidationError collects every failed constraint of one request.
type RequestValidationError struct {
	errors []ValidationError
}

// Errors returns the failures in struct field order.
func (ve *RequestValidationError) Errors() []ValidationError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.errors))
	for i := range ve.errors {
		messages[i] = ve.errors[i].message
	}
	return strings.Join(messages, "; ")
}

// ToAPIError converts the failures to a VALIDATION_ERROR. A single failure
// reports its field, tag and value; several are listed under "fields".
func (ve *RequestValidationError) ToAPIError() *models.APIError {
	switch len(ve.errors) {
	case 0:
		return &models.APIError{Code: models.ErrCodeValidation, Message: "Validation failed"}
	case 1:
		e := ve.errors[0]
		return &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: e.message,
			Details: map[string]interface{}{
				"field": e.field,
				"tag":   e.tag,
				"value": e.value,
			},
		}
	}

	fields := make([]map[string]interface{}, len(ve.errors))
	messages := make([]string, len(ve.errors))
	for i, e := range ve.errors {
		fields[i] = map[string]interface{}{
			"field":   e.field,
			"tag":     e.tag,
			"message": e.message,
		}
		messages[i] = e.field + ": " + e.message
	}
	return &models.APIError{
		Code:    models.ErrCodeValidation,
		Message: strings.Join(messages, "; "),
		Details: map[string]interface{}{"fields": fields},
	}
}

// GetValidator returns the shared validator with the "finite" and
// "position" tags registered. Field names are reported by their JSON name.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails for an empty tag or nil func.
		_ = validate.RegisterValidation("finite", validateFinite)
		_ = validate.RegisterValidation("position", validatePosition)
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

// ValidateStruct validates s and returns nil or the collected failures.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: s was not a struct.
		return &RequestValidationError{errors: []ValidationError{
			{field: "unknown", tag: "unknown", message: err.Error()},
		}}
	}

	out := make([]ValidationError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = ValidationError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			value:   fe.Value(),
			message: message(fe),
		}
	}
	return &RequestValidationError{errors: out}
}

// message renders a failed constraint as user-facing text.
func message(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "finite":
		return field + " must be a finite number"
	case "position":
		return field + " must be [lon, lat] or [lon, lat, ele] with lon in -180..180 and lat in -90..90"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "min":
		return fmt.Sprintf("%s must %s %s", field, boundVerb(fe.Kind(), "at least"), boundUnit(fe.Kind(), param))
	case "max":
		return fmt.Sprintf("%s must %s %s", field, boundVerb(fe.Kind(), "at most"), boundUnit(fe.Kind(), param))
	}
	return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
}

// boundVerb and boundUnit phrase min/max by kind: "be at least 3 characters",
// "contain at least 2 items", "be at least 1".
func boundVerb(kind reflect.Kind, bound string) string {
	if kind == reflect.Slice || kind == reflect.Array {
		return "contain " + bound
	}
	return "be " + bound
}

func boundUnit(kind reflect.Kind, param string) string {
	switch kind {
	case reflect.String:
		return param + " characters"
	case reflect.Slice, reflect.Array:
		return param + " items"
	}
	return param
}

// validateFinite rejects NaN and infinities. Non-float fields pass.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float32 && f.Kind() != reflect.Float64 {
		return true
	}
	return isFinite(f.Float())
}

// validatePosition checks a GeoJSON-ordered position: [lon, lat] or
// [lon, lat, ele], every value finite.
func validatePosition(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Slice || f.Len() < 2 || f.Len() > 3 {
		return false
	}
	for i := 0; i < f.Len(); i++ {
		el := f.Index(i)
		if el.Kind() != reflect.Float64 || !isFinite(el.Float()) {
			return false
		}
	}
	lon, lat := f.Index(0).Float(), f.Index(1).Float()
	return lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
