// Package errors provides structured error handling for the application.
// It defines AppError type with error codes for consistent CLI exit mapping.
package errors

import (
	"errors"
	"fmt"
)

// Error codes organized by category
const (
	// General errors (1000-1099)
	CodeSuccess       = 0
	CodeUnknown       = 1000
	CodeInvalidParams = 1001
	CodeConfigLoad    = 1002
	CodeConfigInvalid = 1003

	// Resolution errors (1100-1199)
	CodeInterpreterNotFound = 1100
	CodeInterpreterResolve  = 1101
	CodeBuilderNotFound     = 1102

	// Environment errors (1200-1299)
	CodeUnsetVariable  = 1200
	CodeWorkdirResolve = 1201

	// Invocation errors (1300-1399)
	CodeBuilderFailed = 1300
	CodeBuilderStart  = 1301

	// Preflight errors (1400-1499)
	CodeVocabularyLoad = 1400
	CodePhraseListLoad = 1401
	CodeOOVWords       = 1402
)

// AppError represents a structured application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(code int, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithDetail wraps an error with additional detail
func WrapWithDetail(code int, message string, detail string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Detail:  detail,
		Cause:   cause,
	}
}

// Is checks if the target error is an AppError with the specified code
func Is(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts error code from error, returns CodeUnknown if not AppError
func GetCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// GetMessage extracts message from error
func GetMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// Predefined common errors
var (
	ErrInvalidParams = New(CodeInvalidParams, "参数错误 Invalid parameters")
	ErrConfigInvalid = New(CodeConfigInvalid, "配置无效 Invalid configuration")

	// Resolution
	ErrInterpreterNotFound = New(CodeInterpreterNotFound, "解释器未找到 Interpreter not found")
	ErrInterpreterResolve  = New(CodeInterpreterResolve, "解释器路径解析失败 Interpreter path resolution failed")
	ErrBuilderNotFound     = New(CodeBuilderNotFound, "构建脚本未找到 Builder script not found")

	// Environment
	ErrUnsetVariable = New(CodeUnsetVariable, "环境变量值为空 Derived environment value is empty")

	// Invocation
	ErrBuilderFailed = New(CodeBuilderFailed, "构建进程退出异常 Builder process exited with an error")
	ErrBuilderStart  = New(CodeBuilderStart, "构建进程启动失败 Builder process failed to start")

	// Preflight
	ErrVocabularyLoad = New(CodeVocabularyLoad, "词表读取失败 Vocabulary table load failed")
	ErrPhraseListLoad = New(CodePhraseListLoad, "短语列表读取失败 Phrase list load failed")
	ErrOOVWords       = New(CodeOOVWords, "短语包含词表外的词 Phrases contain out-of-vocabulary words")
)
