package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks cfg against its struct tags and the cross-field rules.
func Validate(cfg Config) error {
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return ValidateTracing(cfg.Tracing)
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return err
	}
	fe := ves[0]
	field := fieldPath(fe)
	if fe.Param() != "" {
		return fmt.Errorf("%s failed validation %q (%s), got %v", field, fe.Tag(), fe.Param(), fe.Value())
	}
	return fmt.Errorf("%s failed validation %q, got %v", field, fe.Tag(), fe.Value())
}

// fieldPath turns "Config.snapshot.format" into "snapshot.format".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
