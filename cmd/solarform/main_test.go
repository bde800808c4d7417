package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const scenarioRecord = `
clientName: Jane Doe
clientNumber: 555-1234
clientAddress: 1 Main St
installedKw: "5.5"
panelSerials: ["P1", "", "P2"]
inverter:
  company: SMA
  kw: "5.0"
  serial: SN123
installDate: "2024-05-01"
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SOLARFORM_SHARE_MODE", "none")
	t.Setenv("SOLARFORM_LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return out.String(), err
}

func writeRecord(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jane.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write record: %v", err)
	}
	return path
}

func TestValidate_OK(t *testing.T) {
	out, err := runCLI(t, "validate", "--record", writeRecord(t, scenarioRecord))
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if strings.TrimSpace(out) != "ok" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestValidate_ReportsFirstMissingField(t *testing.T) {
	content := strings.Replace(scenarioRecord, "clientAddress: 1 Main St", "clientAddress: \"\"", 1)
	content = strings.Replace(content, "serial: SN123", "serial: \"\"", 1)

	_, err := runCLI(t, "validate", "--record", writeRecord(t, content))
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if err.Error() != "clientAddress: Enter address" {
		t.Fatalf("unexpected error %q", err)
	}
}

func TestExport_HTMLAndMarkdown(t *testing.T) {
	outDir := t.TempDir()
	out, err := runCLI(t, "export", "--record", writeRecord(t, scenarioRecord), "--format", "html,markdown,xlsx", "--out", outDir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	for _, name := range []string{"jane.html", "jane.md", "jane.xlsx"} {
		if !strings.Contains(out, filepath.Join(outDir, name)) {
			t.Fatalf("output does not mention %s: %q", name, out)
		}
	}

	html, err := os.ReadFile(filepath.Join(outDir, "jane.html"))
	if err != nil {
		t.Fatalf("read html: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	var serials []string
	doc.Find(`table[data-section="panels"] tr td:nth-child(2)`).Each(func(_ int, s *goquery.Selection) {
		serials = append(serials, s.Text())
	})
	if strings.Join(serials, ",") != "P1,P2" {
		t.Fatalf("unexpected panel serials %v", serials)
	}
	if !strings.Contains(string(html), "size: A4") {
		t.Fatalf("expected configured page size in stylesheet")
	}
}

func TestExport_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, "export", "--record", writeRecord(t, scenarioRecord), "--format", "docx", "--out", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), `unknown format "docx"`) {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestPreview_RendersRecord(t *testing.T) {
	out, err := runCLI(t, "preview", "--record", writeRecord(t, scenarioRecord))
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	for _, want := range []string{"Solar Installation Record", "Jane Doe", "SN123"} {
		if !strings.Contains(out, want) {
			t.Fatalf("preview missing %q:\n%s", want, out)
		}
	}
}
