package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	// Test without cause
	err := New(CodeInterpreterNotFound, "Test error")
	assert.Equal(t, "[1100] Test error", err.Error())

	// Test with cause
	cause := errors.New("underlying error")
	errWithCause := Wrap(CodeInterpreterNotFound, "Test error", cause)
	assert.Contains(t, errWithCause.Error(), "underlying error")
	assert.Contains(t, errWithCause.Error(), "1100")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(CodeBuilderFailed, "Builder failed", cause)

	// Test Unwrap
	assert.Equal(t, cause, err.Unwrap())

	// Test errors.Is
	assert.True(t, errors.Is(err, cause))
}

func TestIs(t *testing.T) {
	err := New(CodeUnsetVariable, "Derived value empty")

	assert.True(t, Is(err, CodeUnsetVariable))
	assert.False(t, Is(err, CodeInterpreterNotFound))

	// Test with regular error
	regularErr := errors.New("regular error")
	assert.False(t, Is(regularErr, CodeUnsetVariable))
}

func TestGetCode(t *testing.T) {
	// AppError
	appErr := New(CodeVocabularyLoad, "Vocabulary load failed")
	assert.Equal(t, CodeVocabularyLoad, GetCode(appErr))

	// Regular error returns CodeUnknown
	regularErr := errors.New("regular error")
	assert.Equal(t, CodeUnknown, GetCode(regularErr))
}

func TestGetMessage(t *testing.T) {
	// AppError
	appErr := New(CodeVocabularyLoad, "词表读取失败 Vocabulary table load failed")
	assert.Equal(t, "词表读取失败 Vocabulary table load failed", GetMessage(appErr))

	// Regular error returns error message
	regularErr := errors.New("regular error message")
	assert.Equal(t, "regular error message", GetMessage(regularErr))
}

func TestWrapWithDetail(t *testing.T) {
	cause := errors.New("exit status 7")
	err := WrapWithDetail(CodeBuilderFailed, "Builder failed", "exit status 7: assertion failed", cause)

	assert.Equal(t, CodeBuilderFailed, err.Code)
	assert.Equal(t, "Builder failed", err.Message)
	assert.Equal(t, "exit status 7: assertion failed", err.Detail)
	assert.Equal(t, cause, err.Cause)
}

func TestPredefinedErrors(t *testing.T) {
	// Verify predefined errors have correct codes
	assert.Equal(t, CodeInvalidParams, ErrInvalidParams.Code)
	assert.Equal(t, CodeInterpreterNotFound, ErrInterpreterNotFound.Code)
	assert.Equal(t, CodeUnsetVariable, ErrUnsetVariable.Code)
	assert.Equal(t, CodeBuilderFailed, ErrBuilderFailed.Code)
	assert.Equal(t, CodeVocabularyLoad, ErrVocabularyLoad.Code)
}
