package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/MKhiriev/go-career-path/models"
)

const (
	focusResume = iota
	focusGoal
	focusFile
	profileFormFields
)

// profileFormModel collects resume text and a career goal. In edit mode it is
// prefilled from the stored profile and can be cancelled; in create mode it
// cannot.
type profileFormModel struct {
	resume textarea.Model
	goal   textinput.Model
	file   textinput.Model
	focus  int

	editing    bool
	pending    bool
	extracting bool
	errMsg     string
	spinner    spinner.Model
}

func newProfileFormModel(profile *models.Profile, editing bool) profileFormModel {
	resume := textarea.New()
	resume.Placeholder = "Paste your resume or describe your experience, skills and education"
	resume.SetWidth(70)
	resume.SetHeight(10)
	resume.CharLimit = 0
	resume.ShowLineNumbers = false
	resume.Focus()

	goal := textinput.New()
	goal.Placeholder = "e.g. Senior Frontend Developer"
	goal.CharLimit = 200
	goal.Width = 50

	file := textinput.New()
	file.Placeholder = "path to .txt, .pdf or .docx (enter to load)"
	file.CharLimit = 1024
	file.Width = 50

	m := profileFormModel{
		resume:  resume,
		goal:    goal,
		file:    file,
		editing: editing && profile != nil,
		spinner: newSpinner(),
	}
	if m.editing {
		m.resume.SetValue(profile.ResumeText())
		m.goal.SetValue(profile.CareerGoal)
	}
	return m
}

// busy reports whether the form refuses input.
func (m profileFormModel) busy() bool {
	return m.pending || m.extracting
}

func (m *profileFormModel) setFocus(i int) {
	m.resume.Blur()
	m.goal.Blur()
	m.file.Blur()

	m.focus = (i + profileFormFields) % profileFormFields
	switch m.focus {
	case focusResume:
		m.resume.Focus()
	case focusGoal:
		m.goal.Focus()
	case focusFile:
		m.file.Focus()
	}
}

func (m profileFormModel) View() string {
	title := "CREATE YOUR PROFILE"
	hotKeys := "tab: next field │ ctrl+s: generate profile │ ctrl+o: logout"
	if m.editing {
		title = "EDIT YOUR PROFILE"
		hotKeys = "tab: next field │ ctrl+s: update profile │ esc: cancel │ ctrl+o: logout"
	}

	var b strings.Builder
	b.WriteString("Your details / resume\n")
	b.WriteString(m.resume.View())
	b.WriteString("\n\nOr load from file: [")
	b.WriteString(m.file.View())
	b.WriteString("]\n")
	if m.extracting {
		b.WriteString(m.spinner.View() + " Reading file...\n")
	}
	b.WriteString("\nCareer goal: [")
	b.WriteString(m.goal.View())
	b.WriteString("]\n")

	switch {
	case m.pending && m.editing:
		b.WriteString("\n" + m.spinner.View() + " Updating profile...\n")
	case m.pending:
		b.WriteString("\n" + m.spinner.View() + " Generating profile...\n")
	case m.editing:
		b.WriteString("\n[Update profile]\n")
	default:
		b.WriteString("\n[Generate profile]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
