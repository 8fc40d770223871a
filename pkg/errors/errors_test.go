// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/foldergen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "generator_syntax_error",
			code:    errors.ErrGeneratorSyntax,
			message: "int step cannot be 0",
			wantStr: "[GENERATOR_SYNTAX] int step cannot be 0",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "unknown portable mode: amiga",
			wantStr: "[INVALID_INPUT] unknown portable mode: amiga",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrExpansionTooLarge, "estimated %d > limit %d", 60000, 50000)
	assert.Equal(t, "estimated 60000 > limit 50000", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrInternal, "internal error")

		assert.Equal(t, errors.ErrInternal, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[INTERNAL] internal error: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrInternal, "internal error")
		assert.Nil(t, err)
	})

	t.Run("wrapf_formats_message", func(t *testing.T) {
		err := errors.Wrapf(baseErr, errors.ErrDirCreate, "cannot create %s", "/tmp/x")
		assert.Equal(t, "cannot create /tmp/x", err.Message)
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrVariableMissing, "missing variable").
		WithDetail("variable", "ext").
		WithDetail("template", "main.{ext}")

	assert.Equal(t, "ext", err.Details["variable"])
	assert.Equal(t, "main.{ext}", err.Details["template"])
}

func TestWithDetails(t *testing.T) {
	details := map[string]interface{}{
		"node":  "{{int:start=1;stop=9}}",
		"limit": 10,
		"bound": 81,
	}

	err := errors.New(errors.ErrExpansionTooLarge, "too large").WithDetails(details)
	for k, v := range details {
		assert.Equal(t, v, err.Details[k], k)
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrFilterUnknown, "error 1")
	err2 := errors.New(errors.ErrFilterUnknown, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrTemplateInvalid, "no dirs"),
			code:     errors.ErrTemplateInvalid,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrTemplateInvalid, "no dirs"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrFileAccess,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrFileAccess,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrGeneratorUnknown, "unknown generator").WithDetail("type", "hex")

	assert.Equal(t, errors.ErrGeneratorUnknown, errors.GetErrorCode(err))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Equal(t, "hex", errors.GetErrorDetails(err)["type"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	fileErr := errors.Wrap(rootCause, errors.ErrFileAccess, "cannot read template")
	loadErr := errors.Wrap(fileErr, errors.ErrTemplateParse, "failed to load template")

	assert.True(t, errors.IsErrorCode(loadErr, errors.ErrTemplateParse))

	var middle *errors.FoldergenError
	require.True(t, stderrors.As(loadErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFileAccess, middle.Code)

	assert.True(t, stderrors.Is(loadErr, rootCause))
}
