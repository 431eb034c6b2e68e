package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/service"
	"github.com/MKhiriev/go-career-path/models"
)

// TUI is the terminal front end of the client.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, fmt.Errorf("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run shows the client until the user quits or ctx is cancelled. The session
// is recovered on start; logging out returns to the auth screen without
// leaving Run.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.buildInfo)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	if result, ok := finalModel.(appModel); ok {
		t.logger.Info().
			Str("func", "*TUI.Run").
			Str("last_screen", result.machine.State().String()).
			Msg("tui closed")
	}
	return nil
}
