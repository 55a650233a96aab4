package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Status   string `json:"status" validate:"omitempty,oneof=new contacted"`
}

func TestFormatValidationErrors_UsesJSONNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&sample{Email: "nope", Status: "lost"})
	require.Error(t, err)

	errs := v.FormatValidationErrors(err)
	assert.Equal(t, "fullName is required", errs["fullName"])
	assert.Equal(t, "email must be a valid email address", errs["email"])
	assert.Equal(t, "status must be one of: new contacted", errs["status"])
}

func TestValidate_Passes(t *testing.T) {
	v := NewValidator()
	assert.NoError(t, v.Validate(&sample{FullName: "Jane", Email: "jane@example.com"}))
}
