package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetReason extracts the outermost domain reason from an error chain
func GetReason(err error) Reason {
	for err != nil {
		var customErr *Error
		if !errors.As(err, &customErr) {
			return ReasonNone
		}
		if customErr.Reason != ReasonNone {
			return customErr.Reason
		}
		err = customErr.Cause
	}
	return ReasonNone
}

// HasReason reports whether err carries the given domain reason
func HasReason(err error, reason Reason) bool {
	return GetReason(err) == reason
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]any {
	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}
	return nil
}

// GetMessage extracts the user-friendly message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// GetRootMessage returns the message of the innermost Error in the chain,
// which describes the original failure rather than the call path
func GetRootMessage(err error) string {
	msg := GetMessage(err)
	for err != nil {
		var customErr *Error
		if !errors.As(err, &customErr) {
			break
		}
		msg = customErr.Message
		err = customErr.Cause
	}
	return msg
}

// HTTPStatus maps an error to the HTTP status it should be reported with
func HTTPStatus(err error) int {
	return GetCode(err).HTTPStatus()
}

// GetFieldErrors returns the per-field validation messages carried by err
func GetFieldErrors(err error) map[string][]string {
	fields, _ := GetMeta(err)[metaValidationErrors].(map[string][]string)
	return fields
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsValidation checks if an error carries field validation failures
func IsValidation(err error) bool {
	return HasReason(err, ReasonValidation)
}
