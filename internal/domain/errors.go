package domain

import "errors"

// ErrNotFound is returned when a session or a recorded order does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. an unknown tier name, a regional tier passed as a
// nationwide pass).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNoMatchingTier is returned by the pricing functions when the catalog has
// no tier for the requested vehicle category and pass kind. It signals missing
// catalog data, never a zero price.
var ErrNoMatchingTier = errors.New("no matching tier")

// ErrEmptySelection is returned when a quote or checkout is requested while
// nothing is selected.
var ErrEmptySelection = errors.New("nothing selected")

// ErrNotAdjacent is returned when a region is not adjacent to any region
// already in the selection. It is an expected, recoverable condition.
var ErrNotAdjacent = errors.New("region is not adjacent to the current selection")

// ErrNotPurchasable is returned when a region cannot be bought as part of a
// multi-region selection (the capital district, or an unknown region).
var ErrNotPurchasable = errors.New("region is not available for regional passes")
