// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package progress keeps the per-resource completion and feedback state of
// the learning plan currently on screen. The state lives only in memory and
// is replaced wholesale whenever a new plan arrives.
package progress

import (
	"sync"

	"github.com/MKhiriev/go-career-path/models"
)

// Tracker maps resource URLs to their [models.ResourceStatus]. The zero
// value tracks nothing and is ready to use.
type Tracker struct {
	mu       sync.RWMutex
	statuses map[string]models.ResourceStatus
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Initialize replaces the tracked set with fresh entries for exactly urls.
// Statuses of urls tracked before are dropped even when a url appears again.
func (t *Tracker) Initialize(urls []string) {
	statuses := make(map[string]models.ResourceStatus, len(urls))
	for _, url := range urls {
		statuses[url] = models.ResourceStatus{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.statuses = statuses
}

// ToggleCompleted flips the completed flag of url. Untracked urls are
// ignored.
func (t *Tracker) ToggleCompleted(url string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	status, ok := t.statuses[url]
	if !ok {
		return
	}
	status.Completed = !status.Completed
	t.statuses[url] = status
}

// SetFeedback sets the feedback of url to value, or clears it when it
// already equals value. Untracked urls are ignored.
func (t *Tracker) SetFeedback(url string, value models.Feedback) {
	t.mu.Lock()
	defer t.mu.Unlock()

	status, ok := t.statuses[url]
	if !ok {
		return
	}
	if status.Feedback == value {
		status.Feedback = models.FeedbackNone
	} else {
		status.Feedback = value
	}
	t.statuses[url] = status
}

// Status returns the status of url. For an untracked url it returns the
// default status and false.
func (t *Tracker) Status(url string) (models.ResourceStatus, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	status, ok := t.statuses[url]
	return status, ok
}

// Summary returns how many tracked resources are completed and how many are
// tracked in total.
func (t *Tracker) Summary() (completed, total int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, status := range t.statuses {
		if status.Completed {
			completed++
		}
	}
	return completed, len(t.statuses)
}
