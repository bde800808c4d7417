package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// DefaultPanelRows is the number of blank panel rows a new session starts with.
const DefaultPanelRows = 6

// ErrPanelIndex is returned when a panel row index is out of range.
var ErrPanelIndex = errors.New("record: panel index out of range")

// StoreOption configures a Store at construction time.
type StoreOption func(*storeConfig)

type storeConfig struct {
	panelRows int
	now       func() time.Time
	location  *time.Location
}

// WithPanelRows overrides the number of blank panel rows seeded on creation.
func WithPanelRows(n int) StoreOption {
	return func(cfg *storeConfig) {
		if n >= 0 {
			cfg.panelRows = n
		}
	}
}

// WithClock injects the time source used for the default install date.
func WithClock(now func() time.Time) StoreOption {
	return func(cfg *storeConfig) {
		if now != nil {
			cfg.now = now
		}
	}
}

// WithLocation sets the zone used to derive today's calendar date.
func WithLocation(loc *time.Location) StoreOption {
	return func(cfg *storeConfig) {
		if loc != nil {
			cfg.location = loc
		}
	}
}

// Store holds the current values of the active record. Mutation is confined to
// the setter methods; a Store is owned by a single input loop and is not safe
// for concurrent use.
type Store struct {
	rec InstallationRecord
}

// NewStore creates a fresh record dated today with blank panel rows.
func NewStore(options ...StoreOption) *Store {
	cfg := storeConfig{
		panelRows: DefaultPanelRows,
		now:       time.Now,
		location:  time.Local,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	return &Store{
		rec: InstallationRecord{
			PanelSerials: BlankPanelRows(cfg.panelRows),
			InstallDate:  civil.DateOf(cfg.now().In(cfg.location)),
		},
	}
}

// NewStoreFrom seeds a store with an existing record. Panel IDs are
// renumbered by position when missing.
func NewStoreFrom(rec InstallationRecord) *Store {
	rec = rec.Clone()
	if rec.PanelSerials == nil {
		rec.PanelSerials = []PanelSerial{}
	}
	for i := range rec.PanelSerials {
		if rec.PanelSerials[i].ID == 0 {
			rec.PanelSerials[i].ID = i + 1
		}
	}
	return &Store{rec: rec}
}

func (s *Store) SetClientName(v string)    { s.rec.ClientName = v }
func (s *Store) SetClientNumber(v string)  { s.rec.ClientNumber = v }
func (s *Store) SetClientAddress(v string) { s.rec.ClientAddress = v }
func (s *Store) SetInstalledKW(v string)   { s.rec.InstalledKW = v }
func (s *Store) SetInverterKW(v string)    { s.rec.InverterKW = v }
func (s *Store) SetInverterSerial(v string) {
	s.rec.InverterSerial = v
}

// SetInverterCompany records the selected company.
func (s *Store) SetInverterCompany(c InverterCompany) {
	s.rec.InverterCompany = c
}

// SetInstallDate replaces the install date. Invalid dates are rejected so the
// record always carries a usable calendar date.
func (s *Store) SetInstallDate(d civil.Date) error {
	if !d.IsValid() {
		return fmt.Errorf("record: invalid install date %v", d)
	}
	s.rec.InstallDate = d
	return nil
}

// AppendPanelSerial adds a blank row and returns its index.
func (s *Store) AppendPanelSerial() int {
	s.rec.PanelSerials = append(s.rec.PanelSerials, PanelSerial{ID: len(s.rec.PanelSerials) + 1})
	return len(s.rec.PanelSerials) - 1
}

// UpdatePanelSerial edits the row at index.
func (s *Store) UpdatePanelSerial(index int, value string) error {
	if index < 0 || index >= len(s.rec.PanelSerials) {
		return fmt.Errorf("%w: %d (rows: %d)", ErrPanelIndex, index, len(s.rec.PanelSerials))
	}
	s.rec.PanelSerials[index].Value = value
	return nil
}

// PanelCount reports the number of panel rows, blank ones included.
func (s *Store) PanelCount() int {
	return len(s.rec.PanelSerials)
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() InstallationRecord {
	return s.rec.Clone()
}
