package screens

import "errors"

// The screens share one small error taxonomy. What the user sees and whether
// anything was rendered depends on which kind a failed operation returns:
// a LoadError blocks the whole screen, a SubmitError stays inline next to the
// form that caused it, and a ValidationError never reached the network.

type LoadError struct {
	err error
}

func (e *LoadError) Error() string { return "load failed: " + e.err.Error() }
func (e *LoadError) Unwrap() error { return e.err }

func AsLoadError(err error) (*LoadError, bool) {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return loadErr, true
	}
	return nil, false
}

type SubmitError struct {
	err error
}

func (e *SubmitError) Error() string { return "submit failed: " + e.err.Error() }
func (e *SubmitError) Unwrap() error { return e.err }

func AsSubmitError(err error) (*SubmitError, bool) {
	var submitErr *SubmitError
	if errors.As(err, &submitErr) {
		return submitErr, true
	}
	return nil, false
}

// ValidationError is a purely local rejection; no backend call was made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
