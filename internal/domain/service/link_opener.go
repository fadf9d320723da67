package service

import (
	"context"
)

// LinkOpener hands an external URL to the user (browser, terminal QR code, ...).
type LinkOpener interface {
	Open(ctx context.Context, url string) error
}
