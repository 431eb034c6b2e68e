package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_ResumeText(t *testing.T) {
	p := Profile{
		Name:    "Jane Doe",
		Summary: "Frontend developer",
		Skills:  []string{"React", "TypeScript"},
		Experience: []Experience{
			{Role: "Developer", Company: "Acme", Duration: "2019-2024", Description: "Built dashboards"},
		},
		Education: []Education{
			{Degree: "BSc Computer Science", Institution: "TU Berlin", Year: "2019"},
		},
		CareerGoal: "Senior Frontend Developer",
	}

	want := "Name: Jane Doe\n" +
		"Summary: Frontend developer\n" +
		"Skills: React, TypeScript\n" +
		"\nExperience:\n" +
		"- Developer at Acme (2019-2024): Built dashboards\n" +
		"\nEducation:\n" +
		"- BSc Computer Science, TU Berlin (2019)"

	assert.Equal(t, want, p.ResumeText())
	assert.NotContains(t, p.ResumeText(), p.CareerGoal, "goal is edited in its own field")
}

func TestProfile_ResumeTextEmptySections(t *testing.T) {
	p := Profile{Name: "Jane"}

	assert.Equal(t, "Name: Jane\nSummary: \nSkills: \n\nExperience:\n\nEducation:", p.ResumeText())
}

func TestProfile_TopSkills(t *testing.T) {
	p := Profile{Skills: []string{"a", "b", "c", "d"}}

	assert.Equal(t, []string{"a", "b"}, p.TopSkills(2))
	assert.Equal(t, []string{"a", "b", "c", "d"}, p.TopSkills(10))
	assert.Equal(t, []string{"a", "b", "c", "d"}, p.TopSkills(-1))
	assert.Empty(t, p.TopSkills(0))
	assert.Nil(t, Profile{}.TopSkills(3))
}

func TestResourceURLs(t *testing.T) {
	plan := []LearningModule{
		{Resources: []Resource{{URL: "https://a"}, {URL: "https://b"}}},
		{},
		{Resources: []Resource{{URL: "https://c"}}},
	}

	assert.Equal(t, []string{"https://a", "https://b", "https://c"}, ResourceURLs(plan))
	assert.Nil(t, ResourceURLs(nil))
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"High", PriorityHigh},
		{"high", PriorityHigh},
		{" MEDIUM ", PriorityMedium},
		{"low", PriorityLow},
		{"Urgent", Priority("Urgent")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePriority(tt.in), tt.in)
	}
}

func TestParseResourceType(t *testing.T) {
	assert.Equal(t, ResourceVideo, ParseResourceType("Video"))
	assert.Equal(t, ResourceArticle, ParseResourceType("ARTICLE"))
	assert.Equal(t, ResourceCourse, ParseResourceType("course"))
	assert.Equal(t, ResourceType("podcast"), ParseResourceType("podcast"))
}

func TestJobFilters(t *testing.T) {
	assert.Equal(t, JobFilters{JobType: JobTypeAny, Experience: ExperienceAny}, DefaultJobFilters())
	assert.Equal(t, "any", JobFilters{}.AreaOrAny())
	assert.Equal(t, "Remote", JobFilters{Area: "Remote"}.AreaOrAny())
}

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "Build version: 1.2.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}
