package share

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goliatone/go-solarform/pkg/printing"
)

// Outbox copies shared files into a directory, e.g. a synced folder. It is
// available only when the directory is configured.
type Outbox struct {
	Dir string
}

func (o Outbox) Available(context.Context) bool {
	return o.Dir != ""
}

// Share copies loc into the outbox keeping its file name.
func (o Outbox) Share(ctx context.Context, loc printing.Location, _ Options) error {
	if !o.Available(ctx) {
		return ErrUnavailable
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(o.Dir, 0o755); err != nil {
		return fmt.Errorf("share: create outbox: %w", err)
	}

	src, err := os.Open(loc.Path)
	if err != nil {
		return fmt.Errorf("share: open %s: %w", loc.Path, err)
	}
	defer src.Close()

	dest := filepath.Join(o.Dir, filepath.Base(loc.Path))
	dst, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("share: create %s: %w", dest, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("share: copy to %s: %w", dest, err)
	}
	return dst.Close()
}
