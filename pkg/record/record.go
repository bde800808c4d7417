package record

import (
	"strings"

	"github.com/golang-sql/civil"
)

// PanelSerial is a single editable panel row. ID is assigned on creation and
// never reused within a session.
type PanelSerial struct {
	ID    int    `json:"id" yaml:"id"`
	Value string `json:"value" yaml:"value"`
}

// Blank reports whether the row carries no serial. Whitespace-only values
// count as blank, so they are dropped from exports and payloads.
func (p PanelSerial) Blank() bool {
	return strings.TrimSpace(p.Value) == ""
}

// InstallationRecord is the complete set of form values for one solar
// installation entry.
type InstallationRecord struct {
	ClientName      string          `json:"clientName"`
	ClientNumber    string          `json:"clientNumber"`
	ClientAddress   string          `json:"clientAddress"`
	InstalledKW     string          `json:"installedKw"`
	PanelSerials    []PanelSerial   `json:"panelSerials"`
	InverterCompany InverterCompany `json:"inverterCompany"`
	InverterKW      string          `json:"inverterKw"`
	InverterSerial  string          `json:"inverterSerial"`
	InstallDate     civil.Date      `json:"installDate"`
}

// Clone returns a deep copy so callers can hand snapshots to pure transforms
// without sharing the panel slice.
func (r InstallationRecord) Clone() InstallationRecord {
	out := r
	if r.PanelSerials != nil {
		out.PanelSerials = append([]PanelSerial(nil), r.PanelSerials...)
	}
	return out
}

// NonBlankSerials returns the panel values that are not blank, in original
// order.
func (r InstallationRecord) NonBlankSerials() []string {
	out := make([]string, 0, len(r.PanelSerials))
	for _, row := range r.PanelSerials {
		if row.Blank() {
			continue
		}
		out = append(out, row.Value)
	}
	return out
}

// InstallDateISO formats the install date as YYYY-MM-DD.
func (r InstallationRecord) InstallDateISO() string {
	return r.InstallDate.String()
}

// BlankPanelRows builds n empty panel rows numbered from 1.
func BlankPanelRows(n int) []PanelSerial {
	if n <= 0 {
		return []PanelSerial{}
	}
	rows := make([]PanelSerial, n)
	for i := range rows {
		rows[i] = PanelSerial{ID: i + 1}
	}
	return rows
}
