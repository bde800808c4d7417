// Package share hands generated files to the platform so the user can send or
// open them.
package share

import (
	"context"
	"errors"

	"github.com/goliatone/go-solarform/pkg/printing"
)

// ErrUnavailable is returned by Share when no sharing backend exists.
var ErrUnavailable = errors.New("share: sharing unavailable")

// Options describe how a file is offered to the user.
type Options struct {
	MediaType   string
	DialogTitle string
}

// Sharer presents a generated file to the user.
type Sharer interface {
	Available(ctx context.Context) bool
	Share(ctx context.Context, loc printing.Location, opts Options) error
}

// Unavailable is a Sharer for platforms without any sharing facility.
type Unavailable struct{}

func (Unavailable) Available(context.Context) bool { return false }

func (Unavailable) Share(context.Context, printing.Location, Options) error {
	return ErrUnavailable
}
