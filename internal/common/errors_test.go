package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_IsErrValidation(t *testing.T) {
	err := fmt.Errorf("create task: %w", NewValidationError("Task title is required"))

	assert.True(t, errors.Is(err, ErrValidation))

	var ve *ValidationError
	if assert.True(t, errors.As(err, &ve)) {
		assert.Equal(t, "Task title is required", ve.Message)
	}
}
