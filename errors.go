package quotepdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for generation failure conditions that are fatal to a
// single document. Optional image fetch/decode failures are never surfaced
// through these; they are logged and the stage continues without the image.
var (
	ErrFontEmbed  = errors.New("quotepdf: font embedding failed")
	ErrStationery = errors.New("quotepdf: stationery import failed")
	ErrBarcode    = errors.New("quotepdf: barcode encoding failed")
)

// RenderError reports a failure inside a specific drawing stage. It wraps the
// underlying error and names the stage for context.
type RenderError struct {
	Stage string // stage name, e.g. "header", "items"
	Err   error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quotepdf.%s: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("quotepdf.%s: unknown error", e.Stage)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// stageError wraps err with the stage name it occurred in.
func stageError(stage string, err error) *RenderError {
	return &RenderError{Stage: stage, Err: err}
}
