// Package seatmap turns one supplier seat availability document into the
// flat per-flight seat map the client application consumes. Every stage is
// a plain function over the decoded document and the results of earlier
// stages; nothing here performs I/O or keeps state between requests.
package seatmap

import "errors"

// ErrNotFound matches every error meaning the supplier returned no usable
// seat availability. Handlers translate it into a 404 response.
var ErrNotFound = errors.New("seat availability not found")

// ErrEmptyDocument is returned when the supplier document has no content.
var ErrEmptyDocument error = &notFoundError{msg: "Invalid seat availability form request."}

// ErrNoSeatAvailable is returned when the Response section is missing or
// the supplier flagged the request with an Errors section.
var ErrNoSeatAvailable error = &notFoundError{msg: "No seat available in the airline profile."}

type notFoundError struct{ msg string }

func (e *notFoundError) Error() string        { return e.msg }
func (e *notFoundError) Is(target error) bool { return target == ErrNotFound }
