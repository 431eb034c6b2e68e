package adapter

import "github.com/MKhiriev/go-career-path/models"

// Transfer objects mirror the JSON the models are asked to produce. Lists may
// be missing from an answer; conversion turns them into empty slices.

type profileDTO struct {
	Name       string          `json:"name"`
	Summary    string          `json:"summary"`
	Skills     []string        `json:"skills"`
	Strengths  []string        `json:"strengths"`
	Weaknesses []string        `json:"weaknesses"`
	Experience []experienceDTO `json:"experience"`
	Education  []educationDTO  `json:"education"`
	CareerGoal string          `json:"careerGoal"`
}

type experienceDTO struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type educationDTO struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type moduleDTO struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Priority    string        `json:"priority"`
	Resources   []resourceDTO `json:"resources"`
	ProjectIdea string        `json:"projectIdea"`
}

type resourceDTO struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type jobDTO struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PayScale    string `json:"payScale"`
	JobType     string `json:"jobType"`
	URL         string `json:"url"`
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// toProfile converts the answer. A blank career goal falls back to the goal
// the user typed.
func (d profileDTO) toProfile(careerGoal string) models.Profile {
	profile := models.Profile{
		Name:       d.Name,
		Summary:    d.Summary,
		Skills:     orEmpty(d.Skills),
		Strengths:  orEmpty(d.Strengths),
		Weaknesses: orEmpty(d.Weaknesses),
		Experience: make([]models.Experience, 0, len(d.Experience)),
		Education:  make([]models.Education, 0, len(d.Education)),
		CareerGoal: d.CareerGoal,
	}
	if profile.CareerGoal == "" {
		profile.CareerGoal = careerGoal
	}

	for _, e := range d.Experience {
		profile.Experience = append(profile.Experience, models.Experience(e))
	}
	for _, e := range d.Education {
		profile.Education = append(profile.Education, models.Education(e))
	}

	return profile
}

func toLearningPlan(dtos []moduleDTO) []models.LearningModule {
	plan := make([]models.LearningModule, 0, len(dtos))
	for _, d := range dtos {
		module := models.LearningModule{
			Title:       d.Title,
			Description: d.Description,
			Priority:    models.ParsePriority(d.Priority),
			Resources:   make([]models.Resource, 0, len(d.Resources)),
			ProjectIdea: d.ProjectIdea,
		}
		for _, r := range d.Resources {
			module.Resources = append(module.Resources, models.Resource{
				Name: r.Name,
				URL:  r.URL,
				Type: models.ParseResourceType(r.Type),
			})
		}
		plan = append(plan, module)
	}
	return plan
}

func toJobs(dtos []jobDTO) []models.Job {
	jobs := make([]models.Job, 0, len(dtos))
	for _, d := range dtos {
		jobs = append(jobs, models.Job(d))
	}
	return jobs
}
