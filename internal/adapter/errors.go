package adapter

import "errors"

var (
	// ErrGeneration wraps every failure of a generation call.
	ErrGeneration = errors.New("content generation failed")

	ErrEmptyResponse       = errors.New("empty response from model")
	ErrUnsupportedProvider = errors.New("unsupported generation provider")
)

// HTTP errors of the chat completions endpoint.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("invalid api key")
	ErrPaymentRequired     = errors.New("insufficient credits")
	ErrRateLimited         = errors.New("rate limited")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)
