package facade

import "fmt"

// DecodeError represents an error while decoding an object into a Go value.
type DecodeError struct {
	FieldPath string // field path (e.g., "place.location.city")
	Message   string
	Err       error
}

func (e *DecodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("decode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("decode error: %s", e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError represents an error while encoding a Go value into an object.
type EncodeError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *EncodeError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("encode error at %s: %s", e.FieldPath, e.Message)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
