package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")

	// ErrFetchFailed is returned when a retailer page request fails
	ErrFetchFailed = errors.New("retailer request failed")

	// ErrBlocked is returned when the retailer answered with an access-denied status
	ErrBlocked = errors.New("retailer blocked the request")

	// ErrEmptyResponse is returned when the retailer answered with an empty body
	ErrEmptyResponse = errors.New("retailer returned an empty page")

	// ErrForeignHost is returned when a pasted link does not point at the retailer
	ErrForeignHost = errors.New("link is not on the retailer domain")

	// ErrProductIDNotFound is returned when no canonical product id could be located
	ErrProductIDNotFound = errors.New("canonical product id not found")
)
