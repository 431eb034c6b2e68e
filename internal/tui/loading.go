package tui

import "github.com/charmbracelet/bubbles/spinner"

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return s
}

type loadingModel struct {
	spinner spinner.Model
}

func newLoadingModel() loadingModel {
	return loadingModel{spinner: newSpinner()}
}

func (m loadingModel) View() string {
	return renderPage("CAREER PATH", m.spinner.View()+" Loading...", "")
}
