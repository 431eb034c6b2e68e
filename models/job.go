// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Job is a single job opening returned by a job search.
type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PayScale    string `json:"payScale"`
	JobType     string `json:"jobType"`
	URL         string `json:"url"`
}

// JobType filters jobs by employment type.
type JobType string

const (
	JobTypeAny        JobType = "any"
	JobTypeFullTime   JobType = "Full-time"
	JobTypePartTime   JobType = "Part-time"
	JobTypeInternship JobType = "Internship"
	JobTypeContract   JobType = "Contract"
)

// JobTypes lists the selectable job types in display order.
var JobTypes = []JobType{JobTypeAny, JobTypeFullTime, JobTypePartTime, JobTypeInternship, JobTypeContract}

// ExperienceLevel filters jobs by required seniority.
type ExperienceLevel string

const (
	ExperienceAny     ExperienceLevel = "any"
	ExperienceFresher ExperienceLevel = "Fresher"
	ExperienceJunior  ExperienceLevel = "1-3 years"
	ExperienceSenior  ExperienceLevel = "3+ years"
)

// ExperienceLevels lists the selectable experience levels in display order.
var ExperienceLevels = []ExperienceLevel{ExperienceAny, ExperienceFresher, ExperienceJunior, ExperienceSenior}

// JobFilters narrows a job search. An empty Area means any location.
type JobFilters struct {
	Area       string          `json:"area"`
	JobType    JobType         `json:"jobType"`
	Experience ExperienceLevel `json:"experience"`
}

// DefaultJobFilters returns filters that match any job.
func DefaultJobFilters() JobFilters {
	return JobFilters{JobType: JobTypeAny, Experience: ExperienceAny}
}

// AreaOrAny returns the area filter, or "any" when it is blank.
func (f JobFilters) AreaOrAny() string {
	if f.Area == "" {
		return "any"
	}
	return f.Area
}
