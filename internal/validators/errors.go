package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMalformedResponse marks generated content that cannot be used:
	// missing required values, values outside an enum or resources without a
	// link. Field errors below wrap it.
	ErrMalformedResponse = errors.New("malformed generated response")

	ErrEmptyProfileName    = fmt.Errorf("%w: profile name is required", ErrMalformedResponse)
	ErrEmptyModuleTitle    = fmt.Errorf("%w: module title is required", ErrMalformedResponse)
	ErrInvalidPriority     = fmt.Errorf("%w: invalid module priority", ErrMalformedResponse)
	ErrEmptyResourceURL    = fmt.Errorf("%w: resource url is required", ErrMalformedResponse)
	ErrInvalidResourceType = fmt.Errorf("%w: invalid resource type", ErrMalformedResponse)
	ErrEmptyJobTitle       = fmt.Errorf("%w: job title is required", ErrMalformedResponse)
	ErrEmptyJobURL         = fmt.Errorf("%w: job url is required", ErrMalformedResponse)

	ErrInvalidJobType    = errors.New("invalid job type filter")
	ErrInvalidExperience = errors.New("invalid experience filter")
)
