package console

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Interactive reads lines from the terminal until exit, ^D or ^C. It
// returns the code given to exit, or 0.
func (s *Session) Interactive(ctx context.Context) (int, error) {
	p := tea.NewProgram(newModel(ctx, s), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return 1, err
	}

	code, _ := s.Exited()
	return code, nil
}
