package share

import (
	"fmt"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/MrSnakeDoc/linkhub/internal/domain"
)

// DefaultQRSize is the edge of the QR image in pixels.
const DefaultQRSize = 250

// EncodeQR renders url as a PNG. Modules are white on the dark theme and
// black otherwise; the background is transparent.
func EncodeQR(url string, theme domain.Theme, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}

	q, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	q.BackgroundColor = color.Transparent
	q.ForegroundColor = color.Black
	if theme == domain.ThemeDark {
		q.ForegroundColor = color.White
	}

	png, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return png, nil
}

// QRFilename is the download name of the QR image for a profile. Path
// separators in the name are replaced so the result is always a single
// file name.
func QRFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '-'
		}
		return r
	}, strings.TrimSpace(name))
	if name == "" || name == "." || name == ".." {
		name = "linkhub"
	}
	return name + "-qrcode.png"
}
