package errors

import "net/http"

// Classification separates failures caused by the caller's input from
// defects in the service. Neither class is retried by this layer.
type Classification string

const (
	// ClassificationClient indicates an external tool rejected the caller's input.
	// The caller may fix the input and submit again.
	ClassificationClient Classification = "CLIENT"

	// ClassificationServer indicates an internal invariant or storage constraint
	// was violated. It is not attributable to the caller.
	ClassificationServer Classification = "SERVER"
)

// HTTPStatus returns the response status for the classification.
func (c Classification) HTTPStatus() int {
	if c == ClassificationClient {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// Classify returns the classification of a recognized failure.
// Returns false if err is nil or its chain holds no ToolFailure,
// AssertionError or IntegrityError.
func Classify(err error) (Classification, bool) {
	switch {
	case err == nil:
		return "", false
	case IsToolFailure(err):
		return ClassificationClient, true
	case IsInvariantViolation(err), IsIntegrityViolation(err):
		return ClassificationServer, true
	default:
		return "", false
	}
}
