// Package document turns an installation record into a renderer-neutral,
// printable document made of titled sections.
package document

// SectionKind tells renderers how to lay a section out.
type SectionKind string

const (
	// SectionFields is a two-column label/value table.
	SectionFields SectionKind = "fields"
	// SectionTable is a tabular section with a header row.
	SectionTable SectionKind = "table"
)

// Field is a label/value pair inside a fields section.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Row is a single table row. Placeholder rows span every column and carry
// their text in Cells[0].
type Row struct {
	Cells       []string `json:"cells"`
	Placeholder bool     `json:"placeholder,omitempty"`
}

// Section groups related content under a heading.
type Section struct {
	ID      string      `json:"id"`
	Title   string      `json:"title"`
	Kind    SectionKind `json:"kind"`
	Fields  []Field     `json:"fields,omitempty"`
	Columns []string    `json:"columns,omitempty"`
	Rows    []Row       `json:"rows,omitempty"`
}

// Document is the printable form of an installation record.
type Document struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section returns the section with the given id.
func (d Document) Section(id string) (Section, bool) {
	for _, section := range d.Sections {
		if section.ID == id {
			return section, true
		}
	}
	return Section{}, false
}
