package record

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCompany is returned when a value does not match any inverter
// company option.
var ErrUnknownCompany = errors.New("record: unknown inverter company")

// InverterCompany is the closed set of inverter manufacturers offered by the
// selection widget. The zero value is Unselected.
type InverterCompany int

const (
	Unselected InverterCompany = iota
	SMA
	Fronius
	GoodWe
	Huawei
	Sungrow
	Microtek
	Other
)

var companyValues = [...]string{
	Unselected: "",
	SMA:        "SMA",
	Fronius:    "Fronius",
	GoodWe:     "GoodWe",
	Huawei:     "Huawei",
	Sungrow:    "Sungrow",
	Microtek:   "Microtek",
	Other:      "Other",
}

// Option is a (label, value) pair presented by an enumeration widget.
type Option struct {
	Label string          `json:"label"`
	Value string          `json:"value"`
	Kind  InverterCompany `json:"-"`
}

// CompanyOptions returns the selectable options in display order, starting
// with the "Select company" placeholder.
func CompanyOptions() []Option {
	out := make([]Option, 0, len(companyValues))
	for kind, value := range companyValues {
		label := value
		if InverterCompany(kind) == Unselected {
			label = "Select company"
		}
		out = append(out, Option{Label: label, Value: value, Kind: InverterCompany(kind)})
	}
	return out
}

// String returns the option value ("" for Unselected).
func (c InverterCompany) String() string {
	if c < 0 || int(c) >= len(companyValues) {
		return ""
	}
	return companyValues[c]
}

// Selected reports whether a concrete company has been chosen.
func (c InverterCompany) Selected() bool {
	return c > Unselected && int(c) < len(companyValues)
}

// ParseInverterCompany resolves an option value. Matching is case-insensitive
// and ignores surrounding whitespace; the empty string yields Unselected.
func ParseInverterCompany(raw string) (InverterCompany, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unselected, nil
	}
	for kind, value := range companyValues {
		if value != "" && strings.EqualFold(value, trimmed) {
			return InverterCompany(kind), nil
		}
	}
	return Unselected, fmt.Errorf("%w: %q", ErrUnknownCompany, raw)
}

// MarshalText encodes the company as its option value.
func (c InverterCompany) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes an option value.
func (c *InverterCompany) UnmarshalText(text []byte) error {
	parsed, err := ParseInverterCompany(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
