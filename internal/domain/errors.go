package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist (unknown ride id, activity missing from a day).
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. unknown record kind, malformed day).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrOutOfRange is returned by Plan.Reorder when either index falls outside
// the day's activity list.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrOutOfRange = errors.New("index out of range")

// ErrDuplicateActivity is returned by Plan.Add when the day already holds an
// activity referencing the same record.
// Handlers should map this to HTTP 409 Conflict.
var ErrDuplicateActivity = errors.New("activity already planned for this day")

// ErrUnavailable is returned when an attraction is closed for rehab on the
// requested day.
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrUnavailable = errors.New("attraction unavailable")
