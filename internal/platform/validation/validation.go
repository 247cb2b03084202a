// Package validation envuelve go-playground/validator con las convenciones del
// servicio: nombres de campo según el tag json y violaciones en formato apierr.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"

	"github.com/go-playground/validator"
)

var (
	once     sync.Once
	instance *validator.Validate
)

// rules son los tags propios que se registran sobre la instancia.
var rules = map[string]validator.Func{
	// notblank: "required" acepta "   ", esto no.
	"notblank": func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	},
}

// Default devuelve la instancia compartida (cachea metadata de structs).
// Entra en pánico si algún tag propio no se puede registrar.
func Default() *validator.Validate {
	once.Do(func() {
		v, err := build(rules)
		if err != nil {
			panic(fmt.Sprintf("validation: %v", err))
		}
		instance = v
	})
	return instance
}

func build(custom map[string]validator.Func) (*validator.Validate, error) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %q: %w", tag, err)
		}
	}
	return v, nil
}

// Struct corre los tags `validate` de s y traduce el resultado a apierr.
func Struct(s any) error {
	err := Default().Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	vs := make([]apierr.Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		vs = append(vs, apierr.NewViolation(fe.Field(), ruleFor(fe.Tag())))
	}
	return apierr.Invalid(vs...)
}

// Email reporta si s es una dirección bien formada.
func Email(s string) bool {
	return Default().Var(s, "required,email") == nil
}

func ruleFor(tag string) string {
	switch tag {
	case "required", "notblank":
		return apierr.RuleRequired
	case "email":
		return apierr.RuleInvalidFormat
	case "max":
		return apierr.RuleTooLong
	default:
		return apierr.RuleInvalidValue
	}
}
