package tui

import "github.com/MKhiriev/go-career-path/internal/app"

type errorScreenModel struct {
	message string
}

func newErrorScreenModel(err error) errorScreenModel {
	message := humanizeError(err)
	if message == "" {
		message = app.MsgUnexpectedError
	}
	return errorScreenModel{message: message}
}

func (m errorScreenModel) View() string {
	content := "Error\n\n" + m.message + "\n\nenter: recover"
	return renderPage("CAREER PATH", overlayBoxStyle.Render(errorStyle.Render(content)), "ctrl+o: logout")
}
