package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-sql/civil"

	"github.com/goliatone/go-solarform/pkg/record"
)

func completeRecord() record.InstallationRecord {
	return record.InstallationRecord{
		ClientName:      "Jane Doe",
		ClientNumber:    "555-1234",
		ClientAddress:   "1 Main St",
		InstalledKW:     "5.5",
		InverterCompany: record.SMA,
		InverterKW:      "5.0",
		InverterSerial:  "SN123",
		InstallDate:     civil.Date{Year: 2024, Month: time.May, Day: 1},
	}
}

func TestValidate_EachRequiredFieldMissing(t *testing.T) {
	cases := []struct {
		field   string
		message string
		clear   func(*record.InstallationRecord)
	}{
		{"clientName", "Enter client name", func(r *record.InstallationRecord) { r.ClientName = "" }},
		{"clientNumber", "Enter mobile number", func(r *record.InstallationRecord) { r.ClientNumber = "   " }},
		{"clientAddress", "Enter address", func(r *record.InstallationRecord) { r.ClientAddress = "" }},
		{"installedKw", "Enter installed kW", func(r *record.InstallationRecord) { r.InstalledKW = "\t" }},
		{"inverterCompany", "Select inverter company", func(r *record.InstallationRecord) { r.InverterCompany = record.Unselected }},
		{"inverterKw", "Enter inverter kW", func(r *record.InstallationRecord) { r.InverterKW = "" }},
		{"inverterSerial", "Enter inverter serial", func(r *record.InstallationRecord) { r.InverterSerial = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			rec := completeRecord()
			tc.clear(&rec)

			err := Validate(rec)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			fieldErr, ok := FieldFromError(err)
			if !ok {
				t.Fatalf("expected FieldError, got %T", err)
			}
			if fieldErr.Field != tc.field || fieldErr.Message != tc.message {
				t.Fatalf("unexpected error: %+v", fieldErr)
			}
		})
	}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	rec := completeRecord()
	rec.InverterSerial = ""
	rec.ClientAddress = ""
	rec.InverterCompany = record.Unselected

	err := Validate(rec)
	if err == nil || err.Error() != "Enter address" {
		t.Fatalf("expected address error first, got %v", err)
	}
}

func TestValidate_CompleteRecordPasses(t *testing.T) {
	for _, rows := range [][]record.PanelSerial{
		nil,
		{},
		{{ID: 1}, {ID: 2}},
		{{ID: 1, Value: "P1"}, {ID: 2}, {ID: 3, Value: "P2"}},
	} {
		rec := completeRecord()
		rec.PanelSerials = rows
		if err := Validate(rec); err != nil {
			t.Fatalf("expected valid record with %d rows, got %v", len(rows), err)
		}
	}
}

func TestRules_Order(t *testing.T) {
	want := []string{"clientName", "clientNumber", "clientAddress", "installedKw", "inverterCompany", "inverterKw", "inverterSerial"}
	rules := Rules()
	if len(rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(rules))
	}
	for i, rule := range rules {
		if rule.Field != want[i] {
			t.Fatalf("rule %d: want %s, got %s", i, want[i], rule.Field)
		}
	}
}
