// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// Profile is the structured career profile extracted from a resume.
// There is at most one profile per identity; edits replace it wholesale.
type Profile struct {
	Name       string       `json:"name"`
	Summary    string       `json:"summary"`
	Skills     []string     `json:"skills"`
	Strengths  []string     `json:"strengths"`
	Weaknesses []string     `json:"weaknesses"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	CareerGoal string       `json:"careerGoal"`
}

// Experience is a single work history entry of a [Profile].
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Education is a single education entry of a [Profile].
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// ResumeText rebuilds an editable free-text resume from the profile. It is
// used to prefill the profile form in edit mode so that a resubmission yields
// an equivalent profile.
func (p Profile) ResumeText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Summary: %s\n", p.Summary)
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))

	b.WriteString("\nExperience:\n")
	for _, e := range p.Experience {
		fmt.Fprintf(&b, "- %s at %s (%s): %s\n", e.Role, e.Company, e.Duration, e.Description)
	}

	b.WriteString("\nEducation:\n")
	for _, e := range p.Education {
		fmt.Fprintf(&b, "- %s, %s (%s)\n", e.Degree, e.Institution, e.Year)
	}

	return strings.TrimRight(b.String(), "\n")
}

// TopSkills returns at most n skills in their original order.
func (p Profile) TopSkills(n int) []string {
	if n < 0 || len(p.Skills) <= n {
		return p.Skills
	}
	return p.Skills[:n]
}
