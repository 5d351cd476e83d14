// Package fitness implements the parameter defaulting and validation
// contract shared by the four tool operations, and the operations
// themselves. Validation failures and upstream failures are both values:
// nothing in this package panics across the operation boundary, and every
// outcome is a Result.
package fitness

import "errors"

// Result statuses. Successful results carry no status field at all;
// callers distinguish success from failure by shape.
const (
	StatusValidationError = "validation_error"
	StatusAPIError        = "api_error"
)

// Result is either the decoded upstream response body passed through
// verbatim, or a structured failure object {error, status}.
type Result map[string]any

// InvalidParamError describes a caller-supplied value that failed a range or
// required-field check. The message is surfaced to the caller unchanged.
type InvalidParamError struct {
	Message    string
	Suggestion string
}

func (e *InvalidParamError) Error() string {
	return e.Message
}

// resultFromError flattens any operation error into the uniform failure
// shape: InvalidParamError becomes a validation_error, everything else
// (missing credential, timeout, upstream status, transport) an api_error.
func resultFromError(err error) Result {
	var invalid *InvalidParamError
	if errors.As(err, &invalid) {
		r := Result{
			"error":  invalid.Message,
			"status": StatusValidationError,
		}
		if invalid.Suggestion != "" {
			r["suggestion"] = invalid.Suggestion
		}
		return r
	}
	return Result{
		"error":  err.Error(),
		"status": StatusAPIError,
	}
}
