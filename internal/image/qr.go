package imagepkg

import (
    qrcode "github.com/skip2/go-qrcode"
)

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
    return qrcode.Encode(text, qrcode.Medium, size)
}
