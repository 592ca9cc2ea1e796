package design

import "errors"

var (
	// ErrInvalidArgument reports a design parameter outside its domain:
	// sample rate, cutoff, quality factor or cascade order.
	ErrInvalidArgument = errors.New("design: invalid argument")

	// ErrUnknownKind reports a [Kind] value or name with no designer.
	ErrUnknownKind = errors.New("design: unknown filter kind")
)
