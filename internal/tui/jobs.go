package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/models"
)

const (
	focusArea = iota
	focusJobType
	focusExperience
	focusResults
	jobsFields
)

// jobsModel is the job finder: three filters and the result list of the last
// search.
type jobsModel struct {
	area    textinput.Model
	typeIdx int
	expIdx  int
	focus   int

	jobs     []models.Job
	idx      int
	searched bool
	request  int

	loading bool
	errMsg  string
	status  string
	spinner spinner.Model
}

func newJobsModel() jobsModel {
	area := textinput.New()
	area.Placeholder = "any (e.g. Remote, Berlin)"
	area.CharLimit = 100
	area.Width = 30
	area.Focus()

	m := jobsModel{area: area, spinner: newSpinner()}
	m.setFilters(models.DefaultJobFilters())
	return m
}

// setFilters selects f in the filter fields. Values that are not offered
// select the first option.
func (m *jobsModel) setFilters(f models.JobFilters) {
	m.area.SetValue(f.Area)
	m.typeIdx = max(slices.Index(models.JobTypes, f.JobType), 0)
	m.expIdx = max(slices.Index(models.ExperienceLevels, f.Experience), 0)
}

func (m jobsModel) filters() models.JobFilters {
	return models.JobFilters{
		Area:       m.area.Value(),
		JobType:    models.JobTypes[m.typeIdx],
		Experience: models.ExperienceLevels[m.expIdx],
	}
}

func (m *jobsModel) setFocus(i int) {
	m.focus = (i + jobsFields) % jobsFields
	if m.focus == focusArea {
		m.area.Focus()
	} else {
		m.area.Blur()
	}
}

// cycle moves the selected filter of the focused enum by delta.
func (m *jobsModel) cycle(delta int) {
	switch m.focus {
	case focusJobType:
		m.typeIdx = (m.typeIdx + delta + len(models.JobTypes)) % len(models.JobTypes)
	case focusExperience:
		m.expIdx = (m.expIdx + delta + len(models.ExperienceLevels)) % len(models.ExperienceLevels)
	}
}

func (m jobsModel) current() (models.Job, bool) {
	if len(m.jobs) == 0 || m.idx < 0 || m.idx >= len(m.jobs) {
		return models.Job{}, false
	}
	return m.jobs[m.idx], true
}

func (m jobsModel) View(profile models.Profile) string {
	var b strings.Builder
	b.WriteString(renderProfileCard(profile))
	b.WriteString("\n\n")

	b.WriteString(cursor(m.focus == focusArea) + "Area:        [" + m.area.View() + "]\n")
	b.WriteString(cursor(m.focus == focusJobType) + "Job type:    ‹ " + string(models.JobTypes[m.typeIdx]) + " ›\n")
	b.WriteString(cursor(m.focus == focusExperience) + "Experience:  ‹ " + string(models.ExperienceLevels[m.expIdx]) + " ›\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Searching jobs...\n")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Job search failed: " + m.errMsg))
		b.WriteString("\n")
	case !m.searched:
		b.WriteString("Set your filters and press enter to search.\n")
	case len(m.jobs) == 0:
		b.WriteString(app.MsgNoJobsFound + "\n")
	default:
		for i, job := range m.jobs {
			selected := m.focus == focusResults && i == m.idx
			line := fmt.Sprintf("%s · %s, %s", job.Title, orDash(job.Company), orDash(job.Location))
			if selected {
				line = selectedStyle.Render(line)
			}
			b.WriteString(cursor(selected) + line + "\n")
			if selected {
				b.WriteString("    " + orDash(job.JobType) + " │ " + orDash(job.PayScale) + "\n")
				b.WriteString("    " + fitText(job.Description, 100) + "\n")
				b.WriteString("    " + helpStyle.Render(job.URL) + "\n")
			}
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("JOB FINDER", strings.TrimRight(b.String(), "\n"),
		"tab: next │ ←/→: change filter │ enter: search │ c: copy link │ ctrl+n: learning plan │ ctrl+e: edit profile │ ctrl+o: logout")
}
