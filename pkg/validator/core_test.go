package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/payinput/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "postcode",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: postcode: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "postcode", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "cvv", Message: "too short"})

		assert.Equal(t, "validation failed: postcode: is required; cvv: too short", errs.Error())
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "cvv", Message: "too short"},
		{Field: "postcode", Message: "invalid"},
		{Field: "cvv", Message: "digits only"},
	}

	assert.True(t, errs.Has("cvv"))
	assert.False(t, errs.Has("card_number"))
	assert.Equal(t, []string{"too short", "digits only"}, errs.Get("cvv"))
	assert.Nil(t, errs.Get("card_number"))
	assert.Equal(t, []string{"cvv", "postcode"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "bad"},
		}
	}

	t.Run("no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, "a", errs[0].Field)
		assert.Equal(t, "b", errs[1].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("submit: %w", validator.ValidationErrors{{Field: "cvv"}})
	errs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, errs, 1)
	assert.Equal(t, "cvv", errs[0].Field)
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("plain")))

	err := validator.Apply(validator.RequiredString("postcode", "  "))
	assert.True(t, validator.IsValidationError(err))
	assert.ErrorIs(t, err, validator.ErrValidationFailed)
	assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), validator.ErrValidationFailed)
}

func TestRequiredString(t *testing.T) {
	assert.NoError(t, validator.Apply(validator.RequiredString("postcode", "SW1A 1AA")))

	err := validator.Apply(validator.RequiredString("postcode", " \t"))
	errs := validator.ExtractValidationErrors(err)
	require.NotNil(t, errs)
	assert.Equal(t, "validation.required", errs[0].TranslationKey)
	assert.Equal(t, "postcode", errs[0].TranslationValues["field"])
}
