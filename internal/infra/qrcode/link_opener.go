package qrcode

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sync"

	"engineershub/config"
	"engineershub/internal/domain/service"
	"engineershub/internal/errors"

	"github.com/skip2/go-qrcode"
)

// terminalOpener prints external links, with a scannable QR code, instead of launching a browser.
type terminalOpener struct {
	mu                   sync.Mutex
	out                  io.Writer
	showQR               bool
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// LinkOpener is the terminal link opener, exposing PNG export on top of service.LinkOpener.
type LinkOpener interface {
	service.LinkOpener

	// PNG renders the link as a QR code image.
	PNG(link string) ([]byte, error)
}

// NewTerminalOpener creates a link opener writing to out.
func NewTerminalOpener(cfg *config.BrowserConfig, out io.Writer) LinkOpener {
	opener := &terminalOpener{
		out:                  out,
		showQR:               true,
		size:                 256,
		errorCorrectionLevel: recoveryLevel(""),
	}
	if cfg != nil {
		opener.showQR = cfg.ShowQR
		opener.errorCorrectionLevel = recoveryLevel(cfg.ErrorCorrectionLevel)
		if cfg.QRSize > 0 {
			opener.size = cfg.QRSize
		}
	}

	return opener
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "M":
		return qrcode.Medium
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

func validateLink(link string) error {
	u, err := url.ParseRequestURI(link)
	if err != nil {
		return errors.Wrap(err, "invalid link")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.Errorf("unsupported link scheme: %s", u.Scheme)
	}

	return nil
}

// Open prints the link and, when enabled, its QR code.
func (o *terminalOpener) Open(ctx context.Context, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateLink(link); err != nil {
		return err
	}

	var art string
	if o.showQR {
		code, err := qrcode.New(link, o.errorCorrectionLevel)
		if err != nil {
			return errors.Wrap(err, "failed to create QR code")
		}
		art = code.ToSmallString(false)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := fmt.Fprintf(o.out, "Open this link: %s\n", link); err != nil {
		return errors.Wrap(err, "write link")
	}
	if art != "" {
		if _, err := io.WriteString(o.out, art); err != nil {
			return errors.Wrap(err, "write QR code")
		}
	}

	return nil
}

// PNG renders the link as a QR code of the configured size.
func (o *terminalOpener) PNG(link string) ([]byte, error) {
	if err := validateLink(link); err != nil {
		return nil, err
	}

	pngBytes, err := qrcode.Encode(link, o.errorCorrectionLevel, o.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
