package composite

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error returned by Compose matches one of them with
// errors.Is.
var (
	// ErrEmptyInput is returned when a composite request has no layers.
	ErrEmptyInput = errors.New("composite: at least one layer is required")

	// ErrBufferSizeMismatch is returned when a layer's pixel buffer does not
	// hold exactly width*height*4 bytes.
	ErrBufferSizeMismatch = errors.New("composite: layer buffer does not match width*height*4")

	// ErrReconciliation is returned when the resizer fails or returns a
	// buffer that is not canvas sized. It indicates a broken Resizer, not bad
	// input.
	ErrReconciliation = errors.New("composite: layer could not be resized to the canvas")

	// ErrOutputConstruction is returned when the final buffer cannot be
	// wrapped into an Image.
	ErrOutputConstruction = errors.New("composite: cannot build output image")
)

// BufferSizeMismatchError reports the layer whose buffer length disagrees
// with its declared dimensions.
type BufferSizeMismatchError struct {
	Index  int // position of the offending layer in the request
	Width  int
	Height int
	Got    int // len(Data)
	Want   int // Width*Height*4, or -1 when the dimensions are invalid
}

func (e *BufferSizeMismatchError) Error() string {
	if e.Want < 0 {
		return fmt.Sprintf("composite: layer %d: invalid dimensions %dx%d", e.Index, e.Width, e.Height)
	}
	return fmt.Sprintf("composite: layer %d: %dx%d needs %d bytes, got %d",
		e.Index, e.Width, e.Height, e.Want, e.Got)
}

// Is reports whether target is ErrBufferSizeMismatch.
func (e *BufferSizeMismatchError) Is(target error) bool {
	return target == ErrBufferSizeMismatch
}

// ReconciliationError reports a layer the resizer could not bring to canvas
// size. Err holds the resizer's own error, if it returned one.
type ReconciliationError struct {
	Index int
	Got   int // length of the returned buffer, -1 when the resizer failed
	Want  int
	Err   error
}

func (e *ReconciliationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("composite: layer %d: resize: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("composite: layer %d: resizer returned %d bytes, want %d", e.Index, e.Got, e.Want)
}

// Is reports whether target is ErrReconciliation.
func (e *ReconciliationError) Is(target error) bool {
	return target == ErrReconciliation
}

func (e *ReconciliationError) Unwrap() error { return e.Err }

// OutputError reports a final buffer that could not be wrapped as an Image.
type OutputError struct {
	Width  int
	Height int
	Err    error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("composite: build %dx%d output: %v", e.Width, e.Height, e.Err)
}

// Is reports whether target is ErrOutputConstruction.
func (e *OutputError) Is(target error) bool {
	return target == ErrOutputConstruction
}

func (e *OutputError) Unwrap() error { return e.Err }
