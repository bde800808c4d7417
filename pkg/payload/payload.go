// Package payload defines the save payload produced from a validated record
// and the contract it must satisfy before being handed to a sink.
package payload

import (
	"github.com/goliatone/go-solarform/pkg/record"
)

// Inverter groups the inverter details in the save payload.
type Inverter struct {
	Company string `json:"company"`
	KW      string `json:"kw"`
	Serial  string `json:"serial"`
}

// Payload is the submitted form, with blank panel serials dropped and the
// date reduced to YYYY-MM-DD.
type Payload struct {
	ClientName    string   `json:"clientName"`
	ClientNumber  string   `json:"clientNumber"`
	ClientAddress string   `json:"clientAddress"`
	InstalledKW   string   `json:"installedKw"`
	PanelSerials  []string `json:"panelSerials"`
	Inverter      Inverter `json:"inverter"`
	InstallDate   string   `json:"installDate"`
}

// FromRecord builds the payload. Callers are expected to validate first.
func FromRecord(rec record.InstallationRecord) Payload {
	return Payload{
		ClientName:    rec.ClientName,
		ClientNumber:  rec.ClientNumber,
		ClientAddress: rec.ClientAddress,
		InstalledKW:   rec.InstalledKW,
		PanelSerials:  rec.NonBlankSerials(),
		Inverter: Inverter{
			Company: rec.InverterCompany.String(),
			KW:      rec.InverterKW,
			Serial:  rec.InverterSerial,
		},
		InstallDate: rec.InstallDateISO(),
	}
}
