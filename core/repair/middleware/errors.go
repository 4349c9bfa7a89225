package middleware

import "errors"

// ErrRetryExhausted is returned when every retry attempt failed. It is
// wrapped together with the last provider error.
var ErrRetryExhausted = errors.New("jsonalchemist: all retry attempts exhausted")
