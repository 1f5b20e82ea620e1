package model_test

import (
	"testing"

	"go-event-registration/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationRequest_Normalized(t *testing.T) {
	req := model.RegistrationRequest{
		EventID:    7,
		FullName:   "  Jordan Smith  ",
		Email:      " jordan@example.com ",
		College:    "\tEngineering\n",
		Department: " Computer Science ",
	}

	got := req.Normalized()

	assert.Equal(t, 7, got.EventID)
	assert.Equal(t, "Jordan Smith", got.FullName)
	assert.Equal(t, "jordan@example.com", got.Email)
	assert.Equal(t, "Engineering", got.College)
	assert.Equal(t, "Computer Science", got.Department)

	// the receiver is untouched
	assert.Equal(t, "  Jordan Smith  ", req.FullName)
}

func TestFieldErrors_HasFormError(t *testing.T) {
	assert.False(t, model.FieldErrors{}.HasFormError())
	assert.False(t, model.FieldErrors{model.FieldEmail: "bad"}.HasFormError())
	assert.True(t, model.FieldErrors{model.FieldForm: "boom"}.HasFormError())
}
