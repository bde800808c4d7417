package share

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/goliatone/go-solarform/pkg/printing"
)

// System opens files with the desktop's default handler (xdg-open, open, or
// the Windows shell). It reports itself unavailable when no opener is found.
type System struct {
	opener []string
	lookup func(string) (string, error)
	run    func(ctx context.Context, name string, args ...string) error
	logger *zap.Logger
}

// NewSystem builds a System sharer for the running OS. A nil logger disables
// logging.
func NewSystem(logger *zap.Logger) *System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &System{
		opener: defaultOpener(runtime.GOOS),
		lookup: exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
		logger: logger,
	}
}

func defaultOpener(goos string) []string {
	switch goos {
	case "darwin":
		return []string{"open"}
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler"}
	default:
		return []string{"xdg-open"}
	}
}

// Available reports whether the opener binary is on PATH.
func (s *System) Available(context.Context) bool {
	if len(s.opener) == 0 {
		return false
	}
	_, err := s.lookup(s.opener[0])
	return err == nil
}

// Share opens loc with the platform handler. DialogTitle is logged only; the
// desktop handlers take no title.
func (s *System) Share(ctx context.Context, loc printing.Location, opts Options) error {
	if !s.Available(ctx) {
		return ErrUnavailable
	}
	args := append(append([]string(nil), s.opener[1:]...), loc.Path)
	s.logger.Info("sharing file",
		zap.String("path", loc.Path),
		zap.String("media_type", opts.MediaType),
		zap.String("title", opts.DialogTitle),
	)
	if err := s.run(ctx, s.opener[0], args...); err != nil {
		return fmt.Errorf("share: %s %s: %w", s.opener[0], loc.Path, err)
	}
	return nil
}
