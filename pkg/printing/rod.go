package printing

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaTypePDF is the media type of files produced by ChromePrinter.
const MediaTypePDF = "application/pdf"

// ChromeConfig configures the headless Chrome printer.
type ChromeConfig struct {
	// Bin is the browser executable. Empty lets the launcher find or download
	// one.
	Bin string
	// ControlURL connects to an already running browser instead of launching.
	ControlURL string
	// OutputDir receives generated files. Defaults to os.TempDir()/solarform.
	OutputDir string
	// Headless toggles the browser window.
	Headless bool
	// PrintBackground keeps CSS backgrounds in the PDF.
	PrintBackground bool
}

// ChromePrinter renders markup to PDF through the Chrome DevTools protocol.
// Each Print call starts and stops its own browser.
type ChromePrinter struct {
	cfg    ChromeConfig
	logger *zap.Logger
}

var _ Printer = (*ChromePrinter)(nil)

// NewChromePrinter constructs a printer. A nil logger disables logging.
func NewChromePrinter(cfg ChromeConfig, logger *zap.Logger) *ChromePrinter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = filepath.Join(os.TempDir(), "solarform")
	}
	return &ChromePrinter{cfg: cfg, logger: logger}
}

// Print writes markup to <OutputDir>/<uuid>.pdf.
func (p *ChromePrinter) Print(ctx context.Context, markup []byte) (Location, error) {
	if err := ctx.Err(); err != nil {
		return Location{}, err
	}
	if err := os.MkdirAll(p.cfg.OutputDir, 0o755); err != nil {
		return Location{}, fmt.Errorf("printing: create output dir: %w", err)
	}

	browser, cleanup, err := p.connect(ctx)
	if err != nil {
		return Location{}, err
	}
	defer cleanup()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return Location{}, fmt.Errorf("printing: open page: %w", err)
	}
	defer page.Close()

	if err := page.SetDocumentContent(string(markup)); err != nil {
		return Location{}, fmt.Errorf("printing: load markup: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   p.cfg.PrintBackground,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return Location{}, fmt.Errorf("printing: generate pdf: %w", err)
	}

	path := filepath.Join(p.cfg.OutputDir, uuid.NewString()+".pdf")
	if err := writeStream(path, stream); err != nil {
		return Location{}, err
	}

	p.logger.Debug("pdf generated", zap.String("path", path))
	return Location{Path: path, MediaType: MediaTypePDF}, nil
}

func (p *ChromePrinter) connect(ctx context.Context) (*rod.Browser, func(), error) {
	controlURL := p.cfg.ControlURL
	var l *launcher.Launcher
	if controlURL == "" {
		l = launcher.New().Headless(p.cfg.Headless)
		if p.cfg.Bin != "" {
			l = l.Bin(p.cfg.Bin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, nil, fmt.Errorf("%w: launch chrome: %v", ErrPrinterUnavailable, err)
		}
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		if l != nil {
			l.Kill()
		}
		return nil, nil, fmt.Errorf("%w: connect to chrome: %v", ErrPrinterUnavailable, err)
	}

	cleanup := func() {
		if err := browser.Close(); err != nil {
			p.logger.Debug("close browser", zap.Error(err))
		}
		if l != nil {
			l.Cleanup()
		}
	}
	return browser, cleanup, nil
}

func writeStream(path string, stream io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("printing: create %s: %w", path, err)
	}
	if _, err := io.Copy(f, stream); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("printing: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("printing: close %s: %w", path, err)
	}
	return nil
}
