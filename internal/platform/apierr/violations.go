package apierr

import (
	"strings"
	"unicode"
)

// Sufijos de código de violación. El código completo es CAMPO_REGLA,
// p.ej. "vaccineName" + RuleRequired = "VACCINE_NAME_REQUIRED".
const (
	RuleRequired      = "REQUIRED"
	RuleTooLong       = "TOO_LONG"
	RuleInvalidFormat = "INVALID_FORMAT"
	RuleInvalidValue  = "INVALID_VALUE"
	RuleNotInPast     = "NOT_IN_PAST"
	RuleNotInFuture   = "NOT_IN_FUTURE"
	RuleIsMissing     = "IS_MISSING"
	RuleIsInvalid     = "IS_INVALID"
)

var ruleMessages = map[string]string{
	RuleRequired:      "is required",
	RuleTooLong:       "is too long",
	RuleInvalidFormat: "has an invalid format",
	RuleInvalidValue:  "has an invalid value",
	RuleNotInPast:     "must be in the past",
	RuleNotInFuture:   "must be in the future",
	RuleIsMissing:     "is missing",
	RuleIsInvalid:     "is not valid JSON",
}

// NewViolation arma una violación con código y mensaje derivados del nombre
// del campo (camelCase) y la regla.
func NewViolation(field, rule string) Violation {
	msg, ok := ruleMessages[rule]
	if !ok {
		msg = "is invalid"
	}
	return Violation{
		Field:   field,
		Code:    ScreamingSnake(field) + "_" + rule,
		Message: Humanize(field) + " " + msg,
	}
}

// ScreamingSnake convierte "scheduledDateTime" en "SCHEDULED_DATE_TIME".
func ScreamingSnake(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// Humanize convierte "vaccineName" en "Vaccine name".
func Humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
