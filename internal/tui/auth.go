// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// authModel is the pre-authentication screen. One form serves both login and
// signup; ctrl+t switches between the two.
type authModel struct {
	inputs     []textinput.Model
	focus      int
	signup     bool
	submitting bool
	errMsg     string
}

func newAuthModel() authModel {
	usernameInput := textinput.New()
	usernameInput.Placeholder = "username"
	usernameInput.CharLimit = 64
	usernameInput.Width = 40
	usernameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return authModel{inputs: []textinput.Model{usernameInput, passwordInput}}
}

func (m authModel) username() string {
	return m.inputs[0].Value()
}

func (m authModel) password() string {
	return m.inputs[1].Value()
}

func (m *authModel) toggleMode() {
	m.signup = !m.signup
	m.errMsg = ""
}

func (m *authModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *authModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m authModel) View() string {
	title := "LOGIN"
	action := "Login"
	toggle := "ctrl+t: create an account"
	if m.signup {
		title = "SIGN UP"
		action = "Sign up"
		toggle = "ctrl+t: already have an account"
	}

	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")
	b.WriteString("Username  │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ enter: submit │ "+toggle+" │ ctrl+v: about")
}
