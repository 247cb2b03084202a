package owners

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/jeroenvanhattem/vethub/internal/platform/apierr"
	"github.com/jeroenvanhattem/vethub/internal/platform/validation"
)

const maxFieldLength = 255

// Campos y códigos de violación del owner.
const (
	FieldBody      = "body"
	FieldFirstName = "firstName"
	FieldLastName  = "lastName"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldTelephone = "telephone"
	FieldEmail     = "email"

	CodeBodyIsMissing          = "BODY_IS_MISSING"
	CodeFirstNameRequired      = "FIRST_NAME_REQUIRED"
	CodeFirstNameTooLong       = "FIRST_NAME_TOO_LONG"
	CodeLastNameRequired       = "LAST_NAME_REQUIRED"
	CodeLastNameTooLong        = "LAST_NAME_TOO_LONG"
	CodeAddressTooLong         = "ADDRESS_TOO_LONG"
	CodeCityTooLong            = "CITY_TOO_LONG"
	CodeTelephoneTooLong       = "TELEPHONE_TOO_LONG"
	CodeTelephoneInvalidFormat = "TELEPHONE_INVALID_FORMAT"
	CodeEmailInvalidFormat     = "EMAIL_INVALID_FORMAT"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// CreateInput / UpdateInput son los bodies de alta y modificación.
// Son tipos distintos aunque hoy compartan las mismas reglas.
type CreateInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
	Email     string
}

type UpdateInput struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
	Email     string
}

// ValidateCreate devuelve un *apierr.ValidationError con todas las violaciones,
// o nil. Un body nil corta en BODY_IS_MISSING.
func ValidateCreate(in *CreateInput) error {
	if in == nil {
		return apierr.Invalid(bodyMissing())
	}
	return validateFields(fields(*in))
}

func ValidateUpdate(in *UpdateInput) error {
	if in == nil {
		return apierr.Invalid(bodyMissing())
	}
	return validateFields(fields(*in))
}

type fields struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
	Email     string
}

// Cada campo corta en la primera regla que falla; los campos son independientes.
func validateFields(f fields) error {
	var vs []apierr.Violation

	switch {
	case isBlank(f.FirstName):
		vs = append(vs, violation(FieldFirstName, CodeFirstNameRequired, "First name is required"))
	case tooLong(f.FirstName):
		vs = append(vs, violation(FieldFirstName, CodeFirstNameTooLong, "First name must not exceed 255 characters"))
	}

	switch {
	case isBlank(f.LastName):
		vs = append(vs, violation(FieldLastName, CodeLastNameRequired, "Last name is required"))
	case tooLong(f.LastName):
		vs = append(vs, violation(FieldLastName, CodeLastNameTooLong, "Last name must not exceed 255 characters"))
	}

	if tooLong(f.Address) {
		vs = append(vs, violation(FieldAddress, CodeAddressTooLong, "Address must not exceed 255 characters"))
	}

	if tooLong(f.City) {
		vs = append(vs, violation(FieldCity, CodeCityTooLong, "City must not exceed 255 characters"))
	}

	switch {
	case tooLong(f.Telephone):
		vs = append(vs, violation(FieldTelephone, CodeTelephoneTooLong, "Telephone must not exceed 255 characters"))
	case f.Telephone != "" && !digitsOnly.MatchString(f.Telephone):
		vs = append(vs, violation(FieldTelephone, CodeTelephoneInvalidFormat, "Telephone must contain only digits"))
	}

	if f.Email != "" && !validation.Email(f.Email) {
		vs = append(vs, violation(FieldEmail, CodeEmailInvalidFormat, "Email must be a well-formed email address"))
	}

	return apierr.Invalid(vs...)
}

func bodyMissing() apierr.Violation {
	return violation(FieldBody, CodeBodyIsMissing, "Request body is missing")
}

func violation(field, code, msg string) apierr.Violation {
	return apierr.Violation{Field: field, Code: code, Message: msg}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// tooLong mide en unidades UTF-16: un emoji fuera del BMP cuenta doble.
func tooLong(s string) bool {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
		if n > maxFieldLength {
			return true
		}
	}
	return false
}
