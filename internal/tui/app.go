package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/internal/extract"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/progress"
	"github.com/MKhiriev/go-career-path/internal/service"
	"github.com/MKhiriev/go-career-path/internal/view"
	"github.com/MKhiriev/go-career-path/models"
)

const statusTimeout = 2 * time.Second

// appModel is the TUI router. The view machine decides which screen is on
// display; appModel owns the screen models and turns their input into
// service calls and machine transitions.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	machine   *view.Machine
	tracker   *progress.Tracker
	buildInfo models.AppBuildInfo

	loading  loadingModel
	auth     authModel
	form     profileFormModel
	learning learningModel
	jobs     jobsModel
	failure  errorScreenModel

	// requests numbers plan and job fetches so that only the latest one is
	// applied.
	requests int

	status        string
	showBuildInfo bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, buildInfo models.AppBuildInfo) appModel {
	return appModel{
		ctx:       ctx,
		services:  services,
		machine:   view.NewMachine(),
		tracker:   progress.NewTracker(),
		buildInfo: buildInfo,
		loading:   newLoadingModel(),
		auth:      newAuthModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.loading.spinner.Tick, m.cmdStartup())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		state := m.machine.State()
		if key.Matches(msg, keys.info) && state == view.StateAuth {
			m.showBuildInfo = true
			return m, nil
		}
		if key.Matches(msg, keys.logout) && state != view.StateAuth && state != view.StateLoading {
			return m, m.logout()
		}

	case startupMsg:
		prev := m.machine.State()
		m.machine.Startup(msg.user, msg.hasSession, msg.profile)
		if msg.err != nil {
			logger.FromContext(m.ctx).Err(msg.err).
				Str("func", "appModel.Update").
				Str("username", msg.user).
				Msg("error reading profile on startup")
			m.machine.Fail(msg.err)
		}
		return m, m.enter(prev)

	case authResultMsg:
		if !m.machine.IsCurrent(msg.epoch) {
			return m, nil
		}
		m.auth.submitting = false
		if !msg.result.Success {
			m.auth.errMsg = msg.result.Message
			return m, nil
		}

		prev := m.machine.State()
		if msg.signup {
			m.machine.SignedUp(msg.username)
		} else {
			m.machine.LoggedIn(msg.username, msg.profile)
		}
		m.status = msg.result.Message
		return m, tea.Batch(m.enter(prev), cmdClearStatus())

	case extractedMsg:
		if !m.machine.IsCurrent(msg.epoch) {
			return m, nil
		}
		m.form.extracting = false
		m.form.file.SetValue("")
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.form.errMsg = ""
		m.form.resume.SetValue(msg.text)
		m.form.setFocus(focusGoal)
		return m, nil

	case profileSavedMsg:
		if !m.machine.IsCurrent(msg.epoch) {
			return m, nil
		}
		m.form.pending = false
		if msg.err != nil {
			m.form.errMsg = humanizeError(msg.err)
			return m, nil
		}

		prev := m.machine.State()
		if !m.machine.ProfileSaved(msg.epoch, msg.profile) {
			return m, nil
		}
		m.status = "Profile saved."
		return m, tea.Batch(m.enter(prev), cmdClearStatus())

	case planLoadedMsg:
		if !m.machine.IsCurrent(msg.epoch) || msg.request != m.learning.request {
			return m, nil
		}
		if msg.err != nil {
			m.learning.loading = false
			m.learning.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.learning.setPlan(msg.plan)
		return m, nil

	case jobsLoadedMsg:
		if !m.machine.IsCurrent(msg.epoch) || msg.request != m.jobs.request {
			return m, nil
		}
		m.jobs.loading = false
		m.jobs.searched = true
		if msg.err != nil {
			m.jobs.errMsg = humanizeError(msg.err)
			m.jobs.jobs = nil
			return m, nil
		}
		m.jobs.errMsg = ""
		m.jobs.jobs = msg.jobs
		m.jobs.idx = 0
		return m, nil

	case copiedMsg:
		status := "Link copied!"
		if msg.err != nil {
			status = "Could not copy the link: " + msg.err.Error()
		}
		m.learning.status = status
		m.jobs.status = status
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		m.learning.status = ""
		m.jobs.status = ""
		return m, nil

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.machine.State() {
	case view.StateLoading:
		return m.updateLoading(msg)
	case view.StateAuth:
		return m.updateAuth(msg)
	case view.StateProfile, view.StateEditing:
		return m.updateForm(msg)
	case view.StateLearning:
		return m.updateLearning(msg)
	case view.StateJobs:
		return m.updateJobs(msg)
	case view.StateError:
		return m.updateError(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var body string
	switch m.machine.State() {
	case view.StateLoading:
		body = m.loading.View()
	case view.StateAuth:
		body = m.auth.View()
	case view.StateProfile, view.StateEditing:
		body = m.form.View()
	case view.StateLearning:
		profile, _ := m.machine.Profile()
		body = m.learning.View(profile)
	case view.StateJobs:
		profile, _ := m.machine.Profile()
		body = m.jobs.View(profile)
	case view.StateError:
		body = m.failure.View()
	}

	if m.status != "" {
		body = statusStyle.Render(m.status) + "\n\n" + body
	}
	return appStyle.Render(body)
}

// enter prepares the screen the machine moved to from prev and returns the
// command that loads it.
func (m *appModel) enter(prev view.State) tea.Cmd {
	state := m.machine.Resolve()
	if state == prev && state != view.StateError {
		return nil
	}

	switch state {
	case view.StateAuth:
		m.auth = newAuthModel()
		return textinput.Blink
	case view.StateProfile:
		m.form = newProfileFormModel(nil, false)
		return textarea.Blink
	case view.StateEditing:
		profile, _ := m.machine.Profile()
		m.form = newProfileFormModel(&profile, true)
		return textarea.Blink
	case view.StateLearning:
		return m.loadPlan()
	case view.StateJobs:
		m.jobs = newJobsModel()
		return textinput.Blink
	case view.StateError:
		m.failure = newErrorScreenModel(m.machine.Err())
	}
	return nil
}

func (m *appModel) logout() tea.Cmd {
	prev := m.machine.State()
	m.services.SessionService.Logout()
	m.machine.Logout()
	m.status = ""
	return m.enter(prev)
}

func (m *appModel) loadPlan() tea.Cmd {
	m.requests++
	m.tracker.Initialize(nil)
	m.learning = newLearningModel(m.requests, m.tracker)
	profile, _ := m.machine.Profile()
	return tea.Batch(m.learning.spinner.Tick, m.cmdBuildPlan(m.machine.Epoch(), m.requests, profile))
}

func (m *appModel) searchJobs() tea.Cmd {
	m.requests++
	m.jobs.request = m.requests
	m.jobs.loading = true
	m.jobs.errMsg = ""
	profile, _ := m.machine.Profile()
	return tea.Batch(m.jobs.spinner.Tick, m.cmdSearchJobs(m.machine.Epoch(), m.requests, profile, m.jobs.filters()))
}

func (m appModel) updateLoading(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.loading.spinner, cmd = m.loading.spinner.Update(msg)
	return m, cmd
}

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.tab):
			m.auth.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.auth.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.toggleAcc):
			if !m.auth.submitting {
				m.auth.toggleMode()
			}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.auth.submitting {
				return m, nil
			}
			username, password := m.auth.username(), m.auth.password()
			if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
				m.auth.errMsg = app.MsgEmptyCredentials
				return m, nil
			}
			m.auth.errMsg = ""
			m.auth.submitting = true
			return m, m.cmdAuth(m.machine.Epoch(), username, password, m.auth.signup)
		}
	}

	var cmd tea.Cmd
	m.auth.inputs[m.auth.focus], cmd = m.auth.inputs[m.auth.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !m.form.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.form.spinner, cmd = m.form.spinner.Update(tick)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		if m.form.busy() {
			return m, nil
		}
		switch {
		case key.Matches(keyMsg, keys.esc):
			prev := m.machine.State()
			if !m.machine.CancelEdit() {
				return m, nil
			}
			return m, m.enter(prev)
		case key.Matches(keyMsg, keys.tab):
			m.form.setFocus(m.form.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.setFocus(m.form.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.submit),
			key.Matches(keyMsg, keys.enter) && m.form.focus == focusGoal:
			return m, m.submitProfile()
		case key.Matches(keyMsg, keys.enter) && m.form.focus == focusFile:
			path := strings.TrimSpace(m.form.file.Value())
			if path == "" {
				return m, nil
			}
			m.form.extracting = true
			m.form.errMsg = ""
			return m, tea.Batch(m.form.spinner.Tick, cmdExtract(m.machine.Epoch(), path))
		}
	}

	var cmd tea.Cmd
	switch m.form.focus {
	case focusResume:
		m.form.resume, cmd = m.form.resume.Update(msg)
	case focusGoal:
		m.form.goal, cmd = m.form.goal.Update(msg)
	case focusFile:
		m.form.file, cmd = m.form.file.Update(msg)
	}
	return m, cmd
}

// submitProfile starts the single generation call of a submission. Blank
// input is rejected locally.
func (m *appModel) submitProfile() tea.Cmd {
	resume, goal := m.form.resume.Value(), m.form.goal.Value()
	if strings.TrimSpace(resume) == "" || strings.TrimSpace(goal) == "" {
		m.form.errMsg = app.MsgProfileInputRequired
		return nil
	}

	m.form.errMsg = ""
	m.form.pending = true
	return tea.Batch(m.form.spinner.Tick, m.cmdSubmitProfile(m.machine.Epoch(), m.machine.User(), resume, goal))
}

func (m appModel) updateLearning(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.learning.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.learning.spinner, cmd = m.learning.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.switchTo):
			return m.navigate(view.StateJobs)
		case key.Matches(msg, keys.edit):
			return m.edit()
		case key.Matches(msg, keys.retry):
			if m.learning.loading {
				return m, nil
			}
			return m, m.loadPlan()
		case key.Matches(msg, keys.up):
			if m.learning.idx > 0 {
				m.learning.idx--
			}
		case key.Matches(msg, keys.down):
			if m.learning.idx < len(m.learning.urls)-1 {
				m.learning.idx++
			}
		case key.Matches(msg, keys.toggle):
			if url, ok := m.learning.current(); ok {
				m.tracker.ToggleCompleted(url)
			}
		case key.Matches(msg, keys.thumbUp):
			if url, ok := m.learning.current(); ok {
				m.tracker.SetFeedback(url, models.FeedbackUp)
			}
		case key.Matches(msg, keys.thumbDown):
			if url, ok := m.learning.current(); ok {
				m.tracker.SetFeedback(url, models.FeedbackDown)
			}
		case key.Matches(msg, keys.copy):
			if url, ok := m.learning.current(); ok {
				return m, cmdCopyToClipboard(url)
			}
		}
	}

	return m, nil
}

func (m appModel) updateJobs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		if !m.jobs.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.jobs.spinner, cmd = m.jobs.spinner.Update(tick)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.jobs.area, cmd = m.jobs.area.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.switchTo):
		return m.navigate(view.StateLearning)
	case key.Matches(keyMsg, keys.edit):
		return m.edit()
	case key.Matches(keyMsg, keys.tab):
		m.jobs.setFocus(m.jobs.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.jobs.setFocus(m.jobs.focus - 1)
		return m, nil
	case key.Matches(keyMsg, keys.enter) && m.jobs.focus != focusResults:
		if m.jobs.loading {
			return m, nil
		}
		return m, m.searchJobs()
	}

	switch m.jobs.focus {
	case focusArea:
		var cmd tea.Cmd
		m.jobs.area, cmd = m.jobs.area.Update(msg)
		return m, cmd
	case focusJobType, focusExperience:
		switch {
		case key.Matches(keyMsg, keys.left):
			m.jobs.cycle(-1)
		case key.Matches(keyMsg, keys.right):
			m.jobs.cycle(1)
		}
	case focusResults:
		switch {
		case key.Matches(keyMsg, keys.up):
			if m.jobs.idx > 0 {
				m.jobs.idx--
			}
		case key.Matches(keyMsg, keys.down):
			if m.jobs.idx < len(m.jobs.jobs)-1 {
				m.jobs.idx++
			}
		case key.Matches(keyMsg, keys.copy):
			if job, ok := m.jobs.current(); ok {
				return m, cmdCopyToClipboard(job.URL)
			}
		}
	}

	return m, nil
}

func (m appModel) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !key.Matches(keyMsg, keys.enter) {
		return m, nil
	}

	prev := m.machine.State()
	m.machine.Recover()
	return m, m.enter(prev)
}

func (m appModel) navigate(target view.State) (tea.Model, tea.Cmd) {
	prev := m.machine.State()
	if !m.machine.Navigate(target) {
		return m, nil
	}
	return m, m.enter(prev)
}

func (m appModel) edit() (tea.Model, tea.Cmd) {
	prev := m.machine.State()
	if !m.machine.Edit() {
		return m, nil
	}
	return m, m.enter(prev)
}

func (m appModel) cmdStartup() tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	identity := m.services.IdentityService
	return func() tea.Msg {
		user, ok := sessions.CurrentUser()
		if !ok {
			return startupMsg{}
		}
		profile, err := identity.ReadProfile(ctx, user)
		return startupMsg{user: user, hasSession: true, profile: profile, err: err}
	}
}

func (m appModel) cmdAuth(epoch uint64, username, password string, signup bool) tea.Cmd {
	ctx := m.ctx
	sessions := m.services.SessionService
	identity := m.services.IdentityService
	return func() tea.Msg {
		msg := authResultMsg{epoch: epoch, username: username, signup: signup}
		if signup {
			msg.result = sessions.Signup(ctx, username, password)
			return msg
		}

		msg.result = sessions.Login(ctx, username, password)
		if !msg.result.Success {
			return msg
		}

		profile, err := identity.ReadProfile(ctx, username)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "appModel.cmdAuth").
				Str("username", username).
				Msg("error reading profile after login")
			sessions.Logout()
			msg.result = models.AuthResult{Success: false, Message: app.MsgUnexpectedError}
			return msg
		}
		msg.profile = profile
		return msg
	}
}

func (m appModel) cmdSubmitProfile(epoch uint64, username, resume, goal string) tea.Cmd {
	ctx := m.ctx
	profiles := m.services.ProfileService
	return func() tea.Msg {
		profile, err := profiles.Submit(ctx, username, resume, goal)
		return profileSavedMsg{epoch: epoch, profile: profile, err: err}
	}
}

func (m appModel) cmdBuildPlan(epoch uint64, request int, profile models.Profile) tea.Cmd {
	ctx := m.ctx
	plans := m.services.PlanService
	return func() tea.Msg {
		plan, err := plans.Build(ctx, profile)
		return planLoadedMsg{epoch: epoch, request: request, plan: plan, err: err}
	}
}

func (m appModel) cmdSearchJobs(epoch uint64, request int, profile models.Profile, filters models.JobFilters) tea.Cmd {
	ctx := m.ctx
	jobs := m.services.JobService
	return func() tea.Msg {
		found, err := jobs.Search(ctx, profile, filters)
		return jobsLoadedMsg{epoch: epoch, request: request, jobs: found, err: err}
	}
}

func cmdExtract(epoch uint64, path string) tea.Cmd {
	return func() tea.Msg {
		text, err := extract.File(path)
		return extractedMsg{epoch: epoch, text: text, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
