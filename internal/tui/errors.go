// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-career-path/internal/adapter"
	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/internal/extract"
	"github.com/MKhiriev/go-career-path/internal/service"
	"github.com/MKhiriev/go-career-path/internal/view"
)

// humanizeError turns an error of a collaborator into the message shown on
// screen.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, extract.ErrUnsupportedFile):
		return app.MsgUnsupportedFile
	case errors.Is(err, extract.ErrFileTooLarge):
		return "The file is too large. Please paste the text manually."
	case errors.Is(err, extract.ErrExtraction):
		return app.MsgExtractionFailed
	case errors.Is(err, view.ErrStateInvariant):
		return app.MsgStateInvariant
	case errors.Is(err, service.ErrValidation):
		return strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	case errors.Is(err, service.ErrSavingProfile):
		return app.MsgUnexpectedError
	case errors.Is(err, adapter.ErrRateLimited):
		return "The generation service is busy. Please wait a moment and try again."
	case errors.Is(err, adapter.ErrUnauthorized):
		return "The generation service rejected the API key. Check GENERATOR_API_KEY."
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "The generation service is unreachable. Check your network and try again."
	}

	return err.Error()
}
