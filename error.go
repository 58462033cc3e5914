package nicobar

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EINTERNAL    = "internal"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("nicobar error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Tagged pipeline errors map onto the closest application code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var se *StoreError
	if errors.As(err, &se) && se.Code != "" {
		return se.Code
	}
	var k Kinded
	if errors.As(err, &k) {
		switch k.Kind() {
		case KindAPI, KindAIService:
			return EUNAVAILABLE
		case KindMapping, KindDOMParse, KindExtractResponse, KindCleanResponse, KindJSONParse, KindArticleMapping:
			return EINVALID
		}
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var k Kinded
	if errors.As(err, &k) {
		return err.Error()
	}
	return "Internal error"
}
