// Package services contains business logic for the application
package services

import "errors"

// Sentinel errors returned by the booking core. Callers branch on
// them with errors.Is; the wrapping message names the offending show
// or seat.

// ErrNotFound is returned when a requested show or seat does not
// exist.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a requested seat is already booked,
// including a seat repeated within the same reservation request.
var ErrConflict = errors.New("already booked")

// ErrInvalidRequest is returned when a reservation request contains
// no usable seat labels.
var ErrInvalidRequest = errors.New("invalid request")
