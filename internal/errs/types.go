package errs

// NewNotFoundError creates a KindNotFound Error.
//
// code is optional; when nil the code defaults to "NOT_FOUND".
func NewNotFoundError(message string, override bool, code *string) *Error {
	formattedCode := MakeUpperCaseWithUnderscores("not found")
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:     KindNotFound,
		Code:     formattedCode,
		Message:  message,
		Override: override,
	}
}

// NewAlreadyExistsError creates a KindAlreadyExists Error, e.g. for a unique violation.
func NewAlreadyExistsError(message string, override bool, code *string) *Error {
	formattedCode := MakeUpperCaseWithUnderscores("already exists")
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:     KindAlreadyExists,
		Code:     formattedCode,
		Message:  message,
		Override: override,
	}
}

// NewInvalidError creates a KindInvalid Error.
//
// This supports extra payload:
//   - code: optional custom code string (if nil, defaults to "INVALID")
//   - errors: optional slice of field errors
func NewInvalidError(message string, override bool, code *string, errors []FieldError) *Error {
	formattedCode := MakeUpperCaseWithUnderscores("invalid")
	if code != nil {
		formattedCode = *code
	}

	return &Error{
		Kind:     KindInvalid,
		Code:     formattedCode,
		Message:  message,
		Override: override,
		Errors:   errors,
	}
}

// NewUnavailableError creates a KindUnavailable Error for connectivity failures.
func NewUnavailableError(message string) *Error {
	return &Error{
		Kind:    KindUnavailable,
		Code:    MakeUpperCaseWithUnderscores("database unavailable"),
		Message: message,
	}
}

// NewInternalError creates a KindInternal Error.
//
// The message is generic on purpose; the driver error stays reachable via Unwrap.
func NewInternalError() *Error {
	return &Error{
		Kind:     KindInternal,
		Code:     MakeUpperCaseWithUnderscores("internal error"),
		Message:  "An error occurred while processing your request",
		Override: false,
	}
}
