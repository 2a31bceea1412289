package errors

import "fmt"

// Error codes
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeCache      = "CACHE_ERROR"
	CodeRepository = "REPOSITORY_ERROR"
	CodeFeed       = "FEED_ERROR"
	CodeScraper    = "SCRAPER_ERROR"
)

type AppError struct {
	Message string
	Code    string
	Context map[string]any
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func NewAppError(message, code string, context map[string]any) *AppError {
	return &AppError{
		Message: message,
		Code:    code,
		Context: context,
	}
}

type CacheError struct {
	*AppError
	Operation string
	Key       string
}

func NewCacheError(message, operation, key string, cause error) *CacheError {
	return &CacheError{
		AppError: &AppError{
			Message: message,
			Code:    CodeCache,
			Context: map[string]any{
				"operation": operation,
				"key":       key,
			},
			Cause: cause,
		},
		Operation: operation,
		Key:       key,
	}
}

type RepositoryError struct {
	*AppError
	Query string
}

func NewRepositoryError(message, query string, cause error) *RepositoryError {
	return &RepositoryError{
		AppError: &AppError{
			Message: message,
			Code:    CodeRepository,
			Context: map[string]any{
				"query": query,
			},
			Cause: cause,
		},
		Query: query,
	}
}

type FeedError struct {
	*AppError
	StatusCode int
}

func NewFeedError(message string, statusCode int, context map[string]any) *FeedError {
	return &FeedError{
		AppError: &AppError{
			Message: message,
			Code:    CodeFeed,
			Context: context,
		},
		StatusCode: statusCode,
	}
}

func (e *FeedError) WithCause(cause error) *FeedError {
	e.Cause = cause
	return e
}

type ValidationError struct {
	*AppError
	Field string
	Value any
}

func NewValidationError(message, field string, value any) *ValidationError {
	return &ValidationError{
		AppError: &AppError{
			Message: message,
			Code:    CodeValidation,
			Context: map[string]any{
				"field": field,
				"value": value,
			},
		},
		Field: field,
		Value: value,
	}
}
