package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var e InvalidRequestError
	return errors.As(err, &e)
}

// InvalidURLError is returned when github api request url can't be built.
type InvalidURLError string

// Error implements error interface
func (e InvalidURLError) Error() string {
	return string(e)
}

// IsInvalidURLError checks if given error is caused by invalid request url
func IsInvalidURLError(err error) bool {
	var e InvalidURLError
	return errors.As(err, &e)
}

// ServerError is returned when github api call fails: transport error or unexpected status code.
type ServerError string

// Error implements error interface
func (e ServerError) Error() string {
	return string(e)
}

// IsServerError checks if given error is caused by failed api call
func IsServerError(err error) bool {
	var e ServerError
	return errors.As(err, &e)
}

// DecodingError is returned when github api response body has unexpected shape.
type DecodingError string

// Error implements error interface
func (e DecodingError) Error() string {
	return string(e)
}

// IsDecodingError checks if given error is caused by invalid response body
func IsDecodingError(err error) bool {
	var e DecodingError
	return errors.As(err, &e)
}
