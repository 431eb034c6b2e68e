package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/MKhiriev/go-career-path/internal/progress"
	"github.com/MKhiriev/go-career-path/models"
)

// learningModel shows the learning plan. The plan is fetched on every visit;
// resource statuses live in the tracker and are reset with every new plan.
type learningModel struct {
	plan    []models.LearningModule
	urls    []string
	idx     int
	request int

	loading bool
	errMsg  string
	status  string
	spinner spinner.Model
	tracker *progress.Tracker
}

func newLearningModel(request int, tracker *progress.Tracker) learningModel {
	return learningModel{
		request: request,
		loading: true,
		spinner: newSpinner(),
		tracker: tracker,
	}
}

func (m *learningModel) setPlan(plan []models.LearningModule) {
	m.plan = plan
	m.urls = models.ResourceURLs(plan)
	m.idx = 0
	m.loading = false
	m.errMsg = ""
	m.tracker.Initialize(m.urls)
}

// current returns the URL of the selected resource.
func (m learningModel) current() (string, bool) {
	if len(m.urls) == 0 || m.idx < 0 || m.idx >= len(m.urls) {
		return "", false
	}
	return m.urls[m.idx], true
}

func (m learningModel) View(profile models.Profile) string {
	var b strings.Builder
	b.WriteString(renderProfileCard(profile))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Generating your learning plan...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Could not generate a learning plan: " + m.errMsg))
		b.WriteString("\n\nr: retry\n")
	case len(m.plan) == 0:
		b.WriteString("The learning plan is empty.\n\nr: retry\n")
	default:
		completed, total := m.tracker.Summary()
		fmt.Fprintf(&b, "Progress: %d/%d resources completed\n\n", completed, total)
		b.WriteString(m.renderPlan())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("LEARNING PLAN", strings.TrimRight(b.String(), "\n"),
		"↑/↓: select │ space: done │ +/-: feedback │ c: copy link │ r: regenerate │ ctrl+n: jobs │ ctrl+e: edit profile │ ctrl+o: logout")
}

func (m learningModel) renderPlan() string {
	var b strings.Builder
	pos := 0
	for i, module := range m.plan {
		fmt.Fprintf(&b, "%d. %s [%s]\n", i+1, titleStyle.Render(module.Title), module.Priority)
		if module.Description != "" {
			b.WriteString("   " + fitText(module.Description, 100) + "\n")
		}

		for _, r := range module.Resources {
			status, _ := m.tracker.Status(r.URL)
			line := fmt.Sprintf("%s %s (%s) %s", checkbox(status.Completed), r.Name, r.Type, feedbackMark(status.Feedback))
			if status.Completed {
				line = completedStyle.Render(line)
			}
			if pos == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString("   " + cursor(pos == m.idx) + line + "\n")
			pos++
		}

		if module.ProjectIdea != "" {
			b.WriteString("   Project: " + fitText(module.ProjectIdea, 100) + "\n")
		}
		b.WriteString("\n")
	}

	if url, ok := m.current(); ok {
		b.WriteString(helpStyle.Render(url))
		b.WriteString("\n")
	}
	return b.String()
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func feedbackMark(f models.Feedback) string {
	switch f {
	case models.FeedbackUp:
		return "👍"
	case models.FeedbackDown:
		return "👎"
	default:
		return ""
	}
}
