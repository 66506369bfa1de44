package nodes

import (
	"errors"
	"fmt"
)

// InvalidSelectionError reports an aspect-ratio/resolution combination that is
// absent from the dimension table, or an input image that cannot fit within
// any candidate target.
type InvalidSelectionError struct {
	AspectRatio string
	Resolution  string
	Width       int
	Height      int
	Message     string
}

func (e *InvalidSelectionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return "invalid selection: " + e.Message
	}
	return "invalid selection"
}

// AuthenticationError reports a missing or rejected API key.
type AuthenticationError struct {
	Message string
	Cause   error
}

func (e *AuthenticationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return "authentication: " + e.Message
	}
	return "authentication error"
}

func (e *AuthenticationError) Unwrap() error { return e.Cause }

// GenerationError reports a failed generation call: transport failure,
// non-success status, or an undecodable response body. Status is the upstream
// HTTP status when one was received.
type GenerationError struct {
	Code    string
	Status  int
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("generation failed (status %d): %s", e.Status, e.Message)
	case e.Message != "":
		return "generation failed: " + e.Message
	default:
		return "generation failed"
	}
}

func (e *GenerationError) Unwrap() error { return e.Cause }

func IsInvalidSelection(err error) bool {
	var e *InvalidSelectionError
	return errors.As(err, &e)
}

func IsAuthentication(err error) bool {
	var e *AuthenticationError
	return errors.As(err, &e)
}

func IsGeneration(err error) bool {
	var e *GenerationError
	return errors.As(err, &e)
}
