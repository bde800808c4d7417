package form

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/goliatone/go-solarform/pkg/orchestrator"
	"github.com/goliatone/go-solarform/pkg/record"
)

// Actions performs the Save and Export buttons. *orchestrator.Orchestrator
// satisfies it.
type Actions interface {
	Save(ctx context.Context, rec record.InstallationRecord) (orchestrator.SaveResult, error)
	Export(ctx context.Context, rec record.InstallationRecord) (orchestrator.ExportResult, error)
}

// Previewer renders the current record for display, typically through the
// terminal renderer.
type Previewer func(ctx context.Context, rec record.InstallationRecord) (string, error)

// Styles formats alert messages.
type Styles struct {
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
}

// DefaultStyles returns the built-in alert styles.
func DefaultStyles() Styles {
	return Styles{
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Option configures a Session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithActions sets the Save/Export implementation.
func WithActions(actions Actions) Option {
	return func(s *Session) {
		s.actions = actions
	}
}

// WithPreview enables the Preview menu entry.
func WithPreview(fn Previewer) Option {
	return func(s *Session) {
		s.preview = fn
	}
}

// WithStyles replaces the alert styles.
func WithStyles(styles Styles) Option {
	return func(s *Session) {
		s.styles = styles
	}
}

// WithLocation sets the zone used to interpret typed dates.
func WithLocation(loc *time.Location) Option {
	return func(s *Session) {
		if loc != nil {
			s.loc = loc
		}
	}
}
