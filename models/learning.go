// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Priority is the importance of a [LearningModule] for the user's goal.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// ResourceType is the kind of learning material a [Resource] points to.
type ResourceType string

const (
	ResourceVideo   ResourceType = "video"
	ResourceArticle ResourceType = "article"
	ResourceCourse  ResourceType = "course"
)

// ParsePriority maps s to a known priority ignoring case and surrounding
// spaces. Unknown values are returned as is and fail validation later.
func ParsePriority(s string) Priority {
	s = strings.TrimSpace(s)
	for _, p := range []Priority{PriorityHigh, PriorityMedium, PriorityLow} {
		if strings.EqualFold(s, string(p)) {
			return p
		}
	}
	return Priority(s)
}

// ParseResourceType is the [ResourceType] counterpart of [ParsePriority].
func ParseResourceType(s string) ResourceType {
	s = strings.TrimSpace(s)
	for _, t := range []ResourceType{ResourceVideo, ResourceArticle, ResourceCourse} {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return ResourceType(s)
}

// LearningModule is one step of a generated learning plan. Plans are not
// persisted; a fresh one is generated on every visit to the learning screen.
type LearningModule struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	Resources   []Resource `json:"resources"`
	ProjectIdea string     `json:"projectIdea"`
}

// Resource is a link to learning material. URL identifies the resource for
// progress tracking.
type Resource struct {
	Name string       `json:"name"`
	URL  string       `json:"url"`
	Type ResourceType `json:"type"`
}

// ResourceURLs returns the URLs of every resource of every module, in plan
// order.
func ResourceURLs(plan []LearningModule) []string {
	var urls []string
	for _, m := range plan {
		for _, r := range m.Resources {
			urls = append(urls, r.URL)
		}
	}
	return urls
}

// Feedback is the user's rating of a resource.
type Feedback string

const (
	FeedbackNone Feedback = ""
	FeedbackUp   Feedback = "up"
	FeedbackDown Feedback = "down"
)

// ResourceStatus is the ephemeral UI state of a single resource.
type ResourceStatus struct {
	Completed bool
	Feedback  Feedback
}
