package validation

import (
	"errors"
	"strings"

	"github.com/goliatone/go-solarform/pkg/record"
)

// ErrMissingField marks a required field left empty at submit time.
var ErrMissingField = errors.New("validation: missing required field")

// FieldError names the first required field that failed. Message is the text
// shown to the user.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return e.Message
}

// Is lets callers match any FieldError with errors.Is(err, ErrMissingField).
func (e *FieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Rule checks one required field.
type Rule struct {
	Field   string
	Message string
	Missing func(record.InstallationRecord) bool
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Rules returns the required-field checks in priority order.
func Rules() []Rule {
	return []Rule{
		{Field: "clientName", Message: "Enter client name", Missing: func(r record.InstallationRecord) bool { return blank(r.ClientName) }},
		{Field: "clientNumber", Message: "Enter mobile number", Missing: func(r record.InstallationRecord) bool { return blank(r.ClientNumber) }},
		{Field: "clientAddress", Message: "Enter address", Missing: func(r record.InstallationRecord) bool { return blank(r.ClientAddress) }},
		{Field: "installedKw", Message: "Enter installed kW", Missing: func(r record.InstallationRecord) bool { return blank(r.InstalledKW) }},
		{Field: "inverterCompany", Message: "Select inverter company", Missing: func(r record.InstallationRecord) bool { return !r.InverterCompany.Selected() }},
		{Field: "inverterKw", Message: "Enter inverter kW", Missing: func(r record.InstallationRecord) bool { return blank(r.InverterKW) }},
		{Field: "inverterSerial", Message: "Enter inverter serial", Missing: func(r record.InstallationRecord) bool { return blank(r.InverterSerial) }},
	}
}

// Validate returns nil when every required field is populated, otherwise the
// *FieldError for the first missing field. Later fields are not inspected.
func Validate(rec record.InstallationRecord) error {
	for _, rule := range Rules() {
		if rule.Missing(rec) {
			return &FieldError{Field: rule.Field, Message: rule.Message}
		}
	}
	return nil
}

// FieldFromError extracts the FieldError from err, if any.
func FieldFromError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}
