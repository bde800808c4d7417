package form

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-solarform/pkg/orchestrator"
	"github.com/goliatone/go-solarform/pkg/payload"
	"github.com/goliatone/go-solarform/pkg/printing"
	"github.com/goliatone/go-solarform/pkg/record"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	textAreas    []string
	infoMessages []string
	selectCfgs   []SelectConfig
	inputCfgs    []InputConfig
	inputPos     int
	selectPos    int
	textPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.inputCfgs = append(s.inputCfgs, cfg)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.selectCfgs = append(s.selectCfgs, cfg)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

type sinkRecorder struct {
	payloads []payload.Payload
}

func (r *sinkRecorder) Accept(_ context.Context, p payload.Payload) error {
	r.payloads = append(r.payloads, p)
	return nil
}

func newStore(rows int) *record.Store {
	clock := func() time.Time { return time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC) }
	return record.NewStore(record.WithPanelRows(rows), record.WithClock(clock), record.WithLocation(time.UTC))
}

// Menu indices with no preview configured.
const (
	menuEdit = iota
	menuAddPanel
	menuSave
	menuExport
	menuQuit
)

func TestSession_FillScreenOrder(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Jane Doe", "555-1234", "5.5", "P1", "", "5.0", "SN123", "2024-05-01"},
		textAreas: []string{"1 Main St"},
		selectIdx: []int{1},
	}
	s := NewSession(newStore(2), WithPromptDriver(driver), WithLocation(time.UTC))

	if err := s.Fill(context.Background()); err != nil {
		t.Fatalf("fill: %v", err)
	}

	want := record.InstallationRecord{
		ClientName:      "Jane Doe",
		ClientNumber:    "555-1234",
		ClientAddress:   "1 Main St",
		InstalledKW:     "5.5",
		PanelSerials:    []record.PanelSerial{{ID: 1, Value: "P1"}, {ID: 2, Value: ""}},
		InverterCompany: record.SMA,
		InverterKW:      "5.0",
		InverterSerial:  "SN123",
		InstallDate:     civil.Date{Year: 2024, Month: time.May, Day: 1},
	}
	if diff := cmp.Diff(want, s.Store().Snapshot()); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}

	companyPrompt := driver.selectCfgs[0]
	if companyPrompt.Options[0] != "Select company" || companyPrompt.Options[1] != "SMA" {
		t.Fatalf("unexpected company options %v", companyPrompt.Options)
	}
}

func TestSession_BlankDateKeepsToday(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "", "", "", "", ""},
		textAreas: []string{""},
		selectIdx: []int{0},
	}
	s := NewSession(newStore(0), WithPromptDriver(driver))
	if err := s.Fill(context.Background()); err != nil {
		t.Fatalf("fill: %v", err)
	}
	got := s.Store().Snapshot()
	if got.InstallDateISO() != "2024-06-03" {
		t.Fatalf("expected default date kept, got %s", got.InstallDateISO())
	}
	if got.InverterCompany != record.Unselected {
		t.Fatalf("expected unselected company, got %v", got.InverterCompany)
	}
}

func TestSession_InvalidDateReprompts(t *testing.T) {
	driver := &stubDriver{inputs: []string{"not a date", "May 2, 2024"}}
	s := NewSession(newStore(0), WithPromptDriver(driver), WithLocation(time.UTC))

	if err := s.promptDate(context.Background()); err != nil {
		t.Fatalf("prompt date: %v", err)
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], "Invalid date") {
		t.Fatalf("expected one invalid date alert, got %v", driver.infoMessages)
	}
	if got := s.Store().Snapshot().InstallDateISO(); got != "2024-05-02" {
		t.Fatalf("expected parsed date, got %s", got)
	}
}

func TestSession_RunSaveExportQuit(t *testing.T) {
	sink := &sinkRecorder{}
	printer := printing.PrinterFunc(func(context.Context, []byte) (printing.Location, error) {
		return printing.Location{Path: "/tmp/record.pdf"}, nil
	})
	orch := orchestrator.New(orchestrator.WithPayloadSink(sink), orchestrator.WithPrinter(printer))

	driver := &stubDriver{
		// fill: name left blank, then the edit fixes it
		inputs:    []string{"", "555-1234", "5.5", "P1", "5.0", "SN123", "", "Jane Doe"},
		textAreas: []string{"1 Main St"},
		selectIdx: []int{
			1, // company: SMA
			menuSave,
			menuEdit, 0, // client name
			menuSave,
			menuExport,
			menuQuit,
		},
	}
	s := NewSession(newStore(1), WithPromptDriver(driver), WithActions(orch))

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}

	want := []string{
		"Enter client name",
		orchestrator.SavedMessage,
		"PDF created: file:///tmp/record.pdf",
	}
	if len(driver.infoMessages) != len(want) {
		t.Fatalf("unexpected alerts %q", driver.infoMessages)
	}
	for i, msg := range want {
		if !strings.Contains(driver.infoMessages[i], msg) {
			t.Fatalf("alert %d: want %q, got %q", i, msg, driver.infoMessages[i])
		}
	}
	if len(sink.payloads) != 1 || sink.payloads[0].ClientName != "Jane Doe" {
		t.Fatalf("expected one saved payload, got %+v", sink.payloads)
	}
	if diff := cmp.Diff([]string{"P1"}, sink.payloads[0].PanelSerials); diff != "" {
		t.Fatalf("serials mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_AddPanelSerial(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"P9"},
		selectIdx: []int{menuAddPanel},
	}
	s := NewSession(newStore(6), WithPromptDriver(driver))

	if _, err := s.Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}
	rows := s.Store().Snapshot().PanelSerials
	if len(rows) != 7 || rows[6] != (record.PanelSerial{ID: 7, Value: "P9"}) {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestSession_EditClearsPanelSerial(t *testing.T) {
	store := newStore(3)
	if err := store.UpdatePanelSerial(1, "WRONG"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// Field list: name, number, address, kW, panel #1..#3, ...
	driver := &stubDriver{selectIdx: []int{menuEdit, 5}, inputs: []string{""}}
	s := NewSession(store, WithPromptDriver(driver))

	if _, err := s.Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}

	prompt := driver.inputCfgs[0]
	if prompt.Default != "" {
		t.Fatalf("current value must not be the prompt default, got %q", prompt.Default)
	}
	if prompt.Message != "Panel serial #2 (now: WRONG)" {
		t.Fatalf("unexpected prompt message %q", prompt.Message)
	}
	if got := s.Store().Snapshot().PanelSerials[1].Value; got != "" {
		t.Fatalf("expected panel row cleared, got %q", got)
	}
}

func TestSession_EditClearsTextField(t *testing.T) {
	store := newStore(0)
	store.SetInverterSerial("SN123")
	// Field list with no panel rows: name, number, address, kW, company, inverter kW, serial, date.
	driver := &stubDriver{selectIdx: []int{menuEdit, 6}, inputs: []string{""}}
	s := NewSession(store, WithPromptDriver(driver))

	if _, err := s.Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}
	if got := s.Store().Snapshot().InverterSerial; got != "" {
		t.Fatalf("expected inverter serial cleared, got %q", got)
	}
	if !strings.Contains(driver.inputCfgs[0].Message, "SN123") {
		t.Fatalf("current value not shown: %q", driver.inputCfgs[0].Message)
	}
}

func TestSession_PreviewMenu(t *testing.T) {
	driver := &stubDriver{selectIdx: []int{2}}
	s := NewSession(newStore(0), WithPromptDriver(driver), WithPreview(func(_ context.Context, rec record.InstallationRecord) (string, error) {
		return "preview " + rec.InstallDateISO(), nil
	}))

	if _, err := s.Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}
	if diff := cmp.Diff([]string{ActionEdit, ActionAddPanel, ActionPreview, ActionSave, ActionExport, ActionQuit}, driver.selectCfgs[0].Options); diff != "" {
		t.Fatalf("menu mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"preview 2024-06-03"}, driver.infoMessages); diff != "" {
		t.Fatalf("preview output mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ExportFailureSurfaced(t *testing.T) {
	orch := orchestrator.New() // no printer configured
	driver := &stubDriver{selectIdx: []int{menuExport}}
	s := NewSession(newStore(0), WithPromptDriver(driver), WithActions(orch))

	if _, err := s.Step(context.Background()); err != nil {
		t.Fatalf("step: %v", err)
	}
	if len(driver.infoMessages) != 1 || !strings.Contains(driver.infoMessages[0], "export failed at print") {
		t.Fatalf("expected export failure alert, got %v", driver.infoMessages)
	}
}

func TestSession_AbortPropagates(t *testing.T) {
	s := NewSession(newStore(0), WithPromptDriver(abortDriver{}), WithActions(orchestrator.New()))
	if err := s.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSession_RunRequiresActions(t *testing.T) {
	s := NewSession(newStore(0), WithPromptDriver(&stubDriver{}))
	if err := s.Run(context.Background()); !errors.Is(err, ErrNoActions) {
		t.Fatalf("expected ErrNoActions, got %v", err)
	}
}

type abortDriver struct{}

func (abortDriver) Input(context.Context, InputConfig) (string, error)       { return "", ErrAborted }
func (abortDriver) Select(context.Context, SelectConfig) (int, error)        { return 0, ErrAborted }
func (abortDriver) TextArea(context.Context, TextAreaConfig) (string, error) { return "", ErrAborted }
func (abortDriver) Info(context.Context, string) error                       { return nil }
