package adapter

import "google.golang.org/genai"

func stringSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func stringListSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: description}
}

var profileSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name":       stringSchema("The full name of the person."),
		"summary":    stringSchema("A brief professional summary of the person."),
		"skills":     stringListSchema("A list of key technical and soft skills."),
		"strengths":  stringListSchema("A list of the person's main strengths based on their experience."),
		"weaknesses": stringListSchema("A list of potential areas for improvement or skills they lack for their career goal."),
		"experience": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"role":        {Type: genai.TypeString},
					"company":     {Type: genai.TypeString},
					"duration":    {Type: genai.TypeString},
					"description": {Type: genai.TypeString},
				},
				Required: []string{"role", "company", "duration", "description"},
			},
		},
		"education": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"degree":      {Type: genai.TypeString},
					"institution": {Type: genai.TypeString},
					"year":        {Type: genai.TypeString},
				},
				Required: []string{"degree", "institution", "year"},
			},
		},
		"careerGoal": stringSchema("The stated career goal of the individual."),
	},
	Required: []string{"name", "summary", "skills", "strengths", "weaknesses", "experience", "education", "careerGoal"},
}

var learningPlanSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       stringSchema("Title of the learning module."),
			"description": stringSchema("Brief description of what this module covers."),
			"priority": {
				Type:        genai.TypeString,
				Enum:        []string{"High", "Medium", "Low"},
				Description: "Priority of this module for the user's career goal.",
			},
			"resources": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name": {Type: genai.TypeString},
						"url":  {Type: genai.TypeString},
						"type": {Type: genai.TypeString, Enum: []string{"video", "article", "course"}},
					},
					Required: []string{"name", "url", "type"},
				},
			},
			"projectIdea": stringSchema("A small project idea to practice the skills from this module."),
		},
		Required: []string{"title", "description", "priority", "resources", "projectIdea"},
	},
}

var jobsSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":       {Type: genai.TypeString},
			"company":     {Type: genai.TypeString},
			"location":    {Type: genai.TypeString},
			"description": {Type: genai.TypeString},
			"payScale":    {Type: genai.TypeString},
			"jobType":     {Type: genai.TypeString},
			"url":         stringSchema("A direct link to apply for the job."),
		},
		Required: []string{"title", "company", "location", "description", "payScale", "jobType", "url"},
	},
}
