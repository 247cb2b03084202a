package apierr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViolation(t *testing.T) {
	cases := []struct {
		field, rule string
		code, msg   string
	}{
		{"name", RuleRequired, "NAME_REQUIRED", "Name is required"},
		{"birthDate", RuleNotInPast, "BIRTH_DATE_NOT_IN_PAST", "Birth date must be in the past"},
		{"scheduledDateTime", RuleNotInFuture, "SCHEDULED_DATE_TIME_NOT_IN_FUTURE", "Scheduled date time must be in the future"},
		{"ownerId", RuleInvalidFormat, "OWNER_ID_INVALID_FORMAT", "Owner id has an invalid format"},
	}
	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			v := NewViolation(tc.field, tc.rule)
			assert.Equal(t, tc.field, v.Field)
			assert.Equal(t, tc.code, v.Code)
			assert.Equal(t, tc.msg, v.Message)
		})
	}
}

func TestInvalid_NilWithoutViolations(t *testing.T) {
	assert.NoError(t, Invalid())
}

func TestKindsSurviveWrapping(t *testing.T) {
	nf := fmt.Errorf("pets.Service.Get: %w", NotFound(PetNotFound))
	assert.True(t, IsNotFound(nf))
	assert.False(t, IsValidation(nf))

	ve := fmt.Errorf("wrapped: %w", Invalid(NewViolation("name", RuleRequired)))
	require.True(t, IsValidation(ve))
	assert.Equal(t, "validation failed: name: NAME_REQUIRED", ve.Error()[len("wrapped: "):])
}
