// Package recordfile reads installation records for the non-interactive CLI
// commands from a path, an fs.FS or stdin ("-").
package recordfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-sql/civil"

	"github.com/goliatone/go-solarform/pkg/record"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// Loader resolves record files.
type Loader struct {
	fs    fs.FS
	stdin io.Reader
	today func() civil.Date
}

// Option configures a Loader.
type Option func(*Loader)

// WithFS resolves relative paths inside filesystem instead of the OS.
func WithFS(filesystem fs.FS) Option {
	return func(l *Loader) {
		l.fs = filesystem
	}
}

// WithStdin replaces os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(l *Loader) {
		if r != nil {
			l.stdin = r
		}
	}
}

// WithToday sets the date used when a file omits installDate.
func WithToday(fn func() civil.Date) Option {
	return func(l *Loader) {
		if fn != nil {
			l.today = fn
		}
	}
}

// New constructs a Loader.
func New(options ...Option) *Loader {
	l := &Loader{
		stdin: os.Stdin,
		today: func() civil.Date { return civil.DateOf(time.Now()) },
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load reads and decodes the record at path.
func (l *Loader) Load(ctx context.Context, path string) (record.InstallationRecord, error) {
	data, err := l.read(ctx, path)
	if err != nil {
		return record.InstallationRecord{}, err
	}
	rec, err := record.DecodeFile(bytes.NewReader(data), l.today())
	if err != nil {
		return record.InstallationRecord{}, fmt.Errorf("recordfile: %s: %w", path, err)
	}
	return rec, nil
}

func (l *Loader) read(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("recordfile: path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	switch {
	case path == Stdin:
		return io.ReadAll(l.stdin)
	case l.fs != nil:
		return fs.ReadFile(l.fs, filepath.ToSlash(path))
	default:
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		return os.ReadFile(abs)
	}
}
