// Package form runs the installation record form in a terminal: one prompt
// per field over a record.Store, then an action menu for editing, adding
// panel rows, saving and exporting.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/charmbracelet/lipgloss"
	"github.com/golang-sql/civil"

	"github.com/goliatone/go-solarform/pkg/record"
	"github.com/goliatone/go-solarform/pkg/validation"
)

// Menu entries.
const (
	ActionEdit     = "Edit field"
	ActionAddPanel = "Add panel serial"
	ActionPreview  = "Preview"
	ActionSave     = "Save"
	ActionExport   = "Export PDF"
	ActionQuit     = "Quit"
)

const (
	labelClientName     = "Client name"
	labelClientNumber   = "Mobile number"
	labelClientAddress  = "Address"
	labelInstalledKW    = "Installed kW"
	labelCompany        = "Inverter company"
	labelInverterKW     = "Inverter kW"
	labelInverterSerial = "Inverter serial"
	labelInstallDate    = "Installation date"
)

// Session drives a single record through the prompt loop. It owns its Store;
// a Session must not be used from more than one goroutine.
type Session struct {
	store   *record.Store
	driver  PromptDriver
	actions Actions
	preview Previewer
	styles  Styles
	loc     *time.Location
}

// NewSession builds a session over store using the survey driver unless one is
// injected.
func NewSession(store *record.Store, options ...Option) *Session {
	s := &Session{
		store:  store,
		styles: DefaultStyles(),
		loc:    time.Local,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}
	if s.driver == nil {
		s.driver = NewSurveyDriver(nil)
	}
	if s.store == nil {
		s.store = record.NewStore()
	}
	return s
}

// Store exposes the underlying record store.
func (s *Session) Store() *record.Store {
	return s.store
}

// Run prompts every field once in screen order and then loops over the action
// menu until the user quits. ErrAborted is returned when the user interrupts.
func (s *Session) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("form: context is required")
	}
	if s.actions == nil {
		return ErrNoActions
	}
	if err := s.Fill(ctx); err != nil {
		return err
	}
	for {
		done, err := s.Step(ctx)
		if err != nil || done {
			return err
		}
	}
}

// Fill prompts every field in screen order.
func (s *Session) Fill(ctx context.Context) error {
	for _, f := range s.fields() {
		if err := f.prompt(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step shows the action menu once and performs the selected action. done is
// true after Quit.
func (s *Session) Step(ctx context.Context) (done bool, err error) {
	actions := s.menu()
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Action", Options: actions})
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(actions) {
		return false, fmt.Errorf("form: invalid action index %d", idx)
	}

	switch actions[idx] {
	case ActionEdit:
		return false, s.edit(ctx)
	case ActionAddPanel:
		i := s.store.AppendPanelSerial()
		return false, s.promptPanel(ctx, i)
	case ActionPreview:
		return false, s.runPreview(ctx)
	case ActionSave:
		return false, s.save(ctx)
	case ActionExport:
		return false, s.export(ctx)
	case ActionQuit:
		return true, nil
	}
	return false, nil
}

func (s *Session) menu() []string {
	items := []string{ActionEdit, ActionAddPanel}
	if s.preview != nil {
		items = append(items, ActionPreview)
	}
	return append(items, ActionSave, ActionExport, ActionQuit)
}

type field struct {
	label  string
	prompt func(ctx context.Context) error
}

func (s *Session) fields() []field {
	rec := s.store.Snapshot()
	text := func(label, current string, set func(string)) field {
		return field{label: label, prompt: func(ctx context.Context) error {
			v, err := s.driver.Input(ctx, textPrompt(label, current))
			if err != nil {
				return err
			}
			set(v)
			return nil
		}}
	}

	out := []field{
		text(labelClientName, rec.ClientName, s.store.SetClientName),
		text(labelClientNumber, rec.ClientNumber, s.store.SetClientNumber),
		{label: labelClientAddress, prompt: func(ctx context.Context) error {
			cfg := textPrompt(labelClientAddress, rec.ClientAddress)
			v, err := s.driver.TextArea(ctx, TextAreaConfig{Message: cfg.Message, Help: cfg.Help})
			if err != nil {
				return err
			}
			s.store.SetClientAddress(v)
			return nil
		}},
		text(labelInstalledKW, rec.InstalledKW, s.store.SetInstalledKW),
	}
	for i := range rec.PanelSerials {
		i := i
		out = append(out, field{label: panelLabel(i), prompt: func(ctx context.Context) error {
			return s.promptPanel(ctx, i)
		}})
	}
	return append(out,
		field{label: labelCompany, prompt: s.promptCompany},
		text(labelInverterKW, rec.InverterKW, s.store.SetInverterKW),
		text(labelInverterSerial, rec.InverterSerial, s.store.SetInverterSerial),
		field{label: labelInstallDate, prompt: s.promptDate},
	)
}

func panelLabel(i int) string {
	return fmt.Sprintf("Panel serial #%d", i+1)
}

// textPrompt shows the current value in the message instead of as the prompt
// default: the answer replaces the value as typed, so an empty answer clears it.
func textPrompt(label, current string) InputConfig {
	if current == "" {
		return InputConfig{Message: label}
	}
	return InputConfig{
		Message: fmt.Sprintf("%s (now: %s)", label, strings.ReplaceAll(current, "\n", " ")),
		Help:    "Type the new value; leave empty to clear",
	}
}

func (s *Session) edit(ctx context.Context) error {
	fields := s.fields()
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.label
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: "Field", Options: labels, PageSize: 12})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(fields) {
		return fmt.Errorf("form: invalid field index %d", idx)
	}
	return fields[idx].prompt(ctx)
}

func (s *Session) promptPanel(ctx context.Context, i int) error {
	rec := s.store.Snapshot()
	current := ""
	if i < len(rec.PanelSerials) {
		current = rec.PanelSerials[i].Value
	}
	v, err := s.driver.Input(ctx, textPrompt(panelLabel(i), current))
	if err != nil {
		return err
	}
	return s.store.UpdatePanelSerial(i, v)
}

func (s *Session) promptCompany(ctx context.Context) error {
	options := record.CompanyOptions()
	labels := make([]string, len(options))
	current := s.store.Snapshot().InverterCompany.String()
	def := 0
	for i, opt := range options {
		labels[i] = opt.Label
		if opt.Value == current {
			def = i
		}
	}
	idx, err := s.driver.Select(ctx, SelectConfig{Message: labelCompany, Options: labels, DefaultIndex: def})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(options) {
		return fmt.Errorf("form: invalid company index %d", idx)
	}
	company, err := record.ParseInverterCompany(options[idx].Value)
	if err != nil {
		return err
	}
	s.store.SetInverterCompany(company)
	return nil
}

// promptDate re-prompts until the input parses. Blank input keeps the current
// date.
func (s *Session) promptDate(ctx context.Context) error {
	current := s.store.Snapshot().InstallDateISO()
	for {
		v, err := s.driver.Input(ctx, InputConfig{
			Message: labelInstallDate,
			Default: current,
			Help:    "YYYY-MM-DD or any common date format",
		})
		if err != nil {
			return err
		}
		date, ok, err := s.parseDate(v)
		if err != nil {
			if infoErr := s.alert(ctx, s.styles.Error, fmt.Sprintf("Invalid date %q", v)); infoErr != nil {
				return infoErr
			}
			continue
		}
		if !ok {
			return nil
		}
		return s.store.SetInstallDate(date)
	}
}

func (s *Session) parseDate(raw string) (civil.Date, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return civil.Date{}, false, nil
	}
	t, err := dateparse.ParseIn(raw, s.loc)
	if err != nil {
		return civil.Date{}, false, err
	}
	return civil.DateOf(t), true, nil
}

func (s *Session) save(ctx context.Context) error {
	result, err := s.actions.Save(ctx, s.store.Snapshot())
	if err != nil {
		if fieldErr, ok := validation.FieldFromError(err); ok {
			return s.alert(ctx, s.styles.Error, fieldErr.Message)
		}
		return s.alert(ctx, s.styles.Error, "Save failed: "+err.Error())
	}
	return s.alert(ctx, s.styles.Success, result.Message)
}

func (s *Session) export(ctx context.Context) error {
	result, err := s.actions.Export(ctx, s.store.Snapshot())
	if err != nil {
		return s.alert(ctx, s.styles.Error, err.Error())
	}
	if result.Message != "" {
		return s.alert(ctx, s.styles.Info, result.Message)
	}
	return nil
}

func (s *Session) runPreview(ctx context.Context) error {
	out, err := s.preview(ctx, s.store.Snapshot())
	if err != nil {
		return s.alert(ctx, s.styles.Error, "Preview failed: "+err.Error())
	}
	return s.driver.Info(ctx, out)
}

func (s *Session) alert(ctx context.Context, style lipgloss.Style, msg string) error {
	return s.driver.Info(ctx, style.Render(msg))
}
