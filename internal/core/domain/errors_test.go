package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrPosNotFound", ErrPosNotFound},
		{"ErrDuplicatePosName", ErrDuplicatePosName},
		{"ErrOsmNodeNotFound", ErrOsmNodeNotFound},
		{"ErrOsmNodeMissingFields", ErrOsmNodeMissingFields},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrNotImplemented", ErrNotImplemented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Uniqueness tests that all errors are distinct
func TestErrors_Uniqueness(t *testing.T) {
	allErrors := []error{
		ErrPosNotFound,
		ErrDuplicatePosName,
		ErrOsmNodeNotFound,
		ErrOsmNodeMissingFields,
		ErrInvalidInput,
		ErrNotImplemented,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				assert.False(t, errors.Is(err1, err2),
					"Error %v should not match error %v", err1, err2)
			}
		}
	}
}

// TestErrors_WithWrapping tests error wrapping behavior
func TestErrors_WithWrapping(t *testing.T) {
	wrapped := fmt.Errorf("osm node 42: missing or blank 'name' tag: %w", ErrOsmNodeMissingFields)

	assert.True(t, errors.Is(wrapped, ErrOsmNodeMissingFields))
	assert.False(t, errors.Is(wrapped, ErrOsmNodeNotFound))
	assert.Contains(t, wrapped.Error(), "missing required fields")
}

// TestErrors_InSwitchStatement tests using errors in switch statements
func TestErrors_InSwitchStatement(t *testing.T) {
	testErr := fmt.Errorf("lookup: %w", ErrPosNotFound)

	var result string
	switch {
	case errors.Is(testErr, ErrPosNotFound):
		result = "not found"
	case errors.Is(testErr, ErrDuplicatePosName):
		result = "duplicate"
	default:
		result = "unknown"
	}

	assert.Equal(t, "not found", result)
}
