package record

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang-sql/civil"
	"gopkg.in/yaml.v3"
)

// File is the on-disk shape accepted by the non-interactive commands. It is
// decoded with yaml.v3, so JSON documents are accepted as well.
type File struct {
	ClientName    string   `yaml:"clientName"`
	ClientNumber  string   `yaml:"clientNumber"`
	ClientAddress string   `yaml:"clientAddress"`
	InstalledKW   string   `yaml:"installedKw"`
	PanelSerials  []string `yaml:"panelSerials"`
	Inverter      struct {
		Company string `yaml:"company"`
		KW      string `yaml:"kw"`
		Serial  string `yaml:"serial"`
	} `yaml:"inverter"`
	InstallDate string `yaml:"installDate"`
}

// DecodeFile reads a record file. A missing installDate falls back to today,
// the same default an interactive session gets.
func DecodeFile(r io.Reader, today civil.Date) (InstallationRecord, error) {
	var f File
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return InstallationRecord{}, fmt.Errorf("record: empty record file")
		}
		return InstallationRecord{}, fmt.Errorf("record: decode file: %w", err)
	}
	return f.Record(today)
}

// Record converts the file into an InstallationRecord.
func (f File) Record(today civil.Date) (InstallationRecord, error) {
	company, err := ParseInverterCompany(f.Inverter.Company)
	if err != nil {
		return InstallationRecord{}, err
	}

	date := today
	if raw := strings.TrimSpace(f.InstallDate); raw != "" {
		date, err = civil.ParseDate(raw)
		if err != nil {
			return InstallationRecord{}, fmt.Errorf("record: parse installDate %q: %w", raw, err)
		}
	}

	rows := make([]PanelSerial, len(f.PanelSerials))
	for i, value := range f.PanelSerials {
		rows[i] = PanelSerial{ID: i + 1, Value: value}
	}

	return InstallationRecord{
		ClientName:      f.ClientName,
		ClientNumber:    f.ClientNumber,
		ClientAddress:   f.ClientAddress,
		InstalledKW:     f.InstalledKW,
		PanelSerials:    rows,
		InverterCompany: company,
		InverterKW:      f.Inverter.KW,
		InverterSerial:  f.Inverter.Serial,
		InstallDate:     date,
	}, nil
}
