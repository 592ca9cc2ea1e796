package response

import "errors"

// ErrInvalidArgument reports a bad grid size or frequency range.
var ErrInvalidArgument = errors.New("response: invalid argument")
