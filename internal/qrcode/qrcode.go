package qrcode

import qr "github.com/skip2/go-qrcode"

// Generate creates a QR code PNG of the given pixel size for a URL,
// used for the join link shown next to the board.
func Generate(url string, size int) ([]byte, error) {
	return qr.Encode(url, qr.Medium, size)
}
