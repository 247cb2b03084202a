package httpx

import (
	"strings"
	"time"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// Dates parsea las fechas de un request acumulando violaciones.
// Los valores vacíos se dejan en cero: "required" lo validan los tags.
type Dates struct {
	violations []apierr.Violation
}

func (d *Dates) Date(field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		d.violations = append(d.violations, apierr.NewViolation(field, apierr.RuleInvalidFormat))
		return time.Time{}
	}
	return t
}

func (d *Dates) OptionalDate(field string, value *string) *time.Time {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	t := d.Date(field, *value)
	if t.IsZero() {
		return nil
	}
	return &t
}

// DateTime acepta fecha-hora local (sin zona) o RFC 3339; siempre normaliza a UTC.
func (d *Dates) DateTime(field, value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(DateTimeLayout, value); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC()
	}
	d.violations = append(d.violations, apierr.NewViolation(field, apierr.RuleInvalidFormat))
	return time.Time{}
}

func (d *Dates) Err() error {
	return apierr.Invalid(d.violations...)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

func FormatDateTime(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}
