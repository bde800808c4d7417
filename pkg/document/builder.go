package document

import (
	"strconv"

	"github.com/goliatone/go-solarform/pkg/record"
)

// Section identifiers, stable across renderers.
const (
	SectionClient       = "client"
	SectionSystem       = "system"
	SectionPanels       = "panels"
	SectionInverter     = "inverter"
	SectionInstallation = "installation"
)

const (
	// Title heads every generated document.
	Title = "Solar Installation Record"
	// NoSerialsText fills the panel table when no serial was entered.
	NoSerialsText = "No panel serials entered"
)

// Build maps a record snapshot to its document. It performs no validation, so
// incomplete records still produce a document.
func Build(rec record.InstallationRecord) Document {
	return Document{
		Title: Title,
		Sections: []Section{
			{
				ID:    SectionClient,
				Title: "Client",
				Kind:  SectionFields,
				Fields: []Field{
					{Label: "Name", Value: rec.ClientName},
					{Label: "Mobile", Value: rec.ClientNumber},
					{Label: "Address", Value: rec.ClientAddress},
				},
			},
			{
				ID:     SectionSystem,
				Title:  "System",
				Kind:   SectionFields,
				Fields: []Field{{Label: "Installed kW", Value: rec.InstalledKW}},
			},
			panelSection(rec.PanelSerials),
			{
				ID:    SectionInverter,
				Title: "Inverter",
				Kind:  SectionFields,
				Fields: []Field{
					{Label: "Company", Value: rec.InverterCompany.String()},
					{Label: "kW", Value: rec.InverterKW},
					{Label: "Serial", Value: rec.InverterSerial},
				},
			},
			{
				ID:     SectionInstallation,
				Title:  "Installation",
				Kind:   SectionFields,
				Fields: []Field{{Label: "Date", Value: rec.InstallDateISO()}},
			},
		},
	}
}

// panelSection numbers rows by their position in the full list, so skipped
// blanks leave gaps in the numbering.
func panelSection(rows []record.PanelSerial) Section {
	section := Section{
		ID:      SectionPanels,
		Title:   "Panels",
		Kind:    SectionTable,
		Columns: []string{"#", "Panel Serial"},
	}
	for i, row := range rows {
		if row.Blank() {
			continue
		}
		section.Rows = append(section.Rows, Row{Cells: []string{strconv.Itoa(i + 1), row.Value}})
	}
	if len(section.Rows) == 0 {
		section.Rows = []Row{{Cells: []string{NoSerialsText}, Placeholder: true}}
	}
	return section
}
