// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TagNotBlank rejects strings that are empty after trimming white space.
const TagNotBlank = "notblank"

// StructValidator validates request and domain structs using their
// `validate` struct tags.
type StructValidator struct {
	validate *validator.Validate
}

// NewValidator returns a Validator with the custom rules registered.
func NewValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// notblank on a string field; nil pointers are handled by omitnil
	_ = v.RegisterValidation(TagNotBlank, func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return strings.TrimSpace(field.String()) != ""
	})

	return &StructValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields (by Go name) are checked.
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if !isStruct(obj) {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		if unknown := unknownField(obj, fields); unknown != "" {
			return fmt.Errorf("%w: %s", ErrUnknownField, unknown)
		}
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return &FieldError{Field: first.Field(), Tag: first.Tag(), Param: first.Param()}
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
}

func isStruct(obj any) bool {
	t := reflect.TypeOf(obj)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(obj).IsNil() {
			return false
		}
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

func unknownField(obj any, fields []string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return f
		}
	}
	return ""
}
