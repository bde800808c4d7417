package solarform

import (
	"context"

	"github.com/goliatone/go-solarform/internal/recordfile"
)

// LoadRecord reads a YAML or JSON record file; "-" reads stdin.
func LoadRecord(ctx context.Context, path string) (InstallationRecord, error) {
	return recordfile.New().Load(ctx, path)
}
