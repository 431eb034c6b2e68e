package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-career-path/models"
)

func profilePrompt(resumeText, careerGoal string) string {
	return fmt.Sprintf(`Analyze the following resume text and extract the user's profile information. Identify their strengths and weaknesses based on their stated career goal of being a "%s".

Resume:
---
%s
---
Career Goal: %s
`, careerGoal, resumeText, careerGoal)
}

func learningPlanPrompt(profile models.Profile) string {
	return fmt.Sprintf(`Based on the following user profile, create a personalized, step-by-step learning path to help them achieve their career goal of "%s". Focus on turning their weaknesses into strengths and enhancing their existing skills. Provide a mix of articles, videos, and official documentation as resources.

**User Profile:**
- **Skills:** %s
- **Strengths:** %s
- **Weaknesses to address:** %s

Generate a concise list of learning modules.`,
		profile.CareerGoal,
		strings.Join(profile.Skills, ", "),
		strings.Join(profile.Strengths, ", "),
		strings.Join(profile.Weaknesses, ", "),
	)
}

func jobsPrompt(profile models.Profile, filters models.JobFilters) string {
	return fmt.Sprintf(`Find relevant job opportunities for a candidate with the following profile:
- **Career Goal:** %s
- **Skills:** %s
- **Experience Summary:** %s

Apply the following filters:
- **Location/Area:** %s
- **Job Type:** %s
- **Experience Level:** %s

Provide a list of 10-15 suitable jobs.`,
		profile.CareerGoal,
		strings.Join(profile.Skills, ", "),
		profile.Summary,
		filters.AreaOrAny(),
		filters.JobType,
		filters.Experience,
	)
}
