package imagepkg

import (
    "bytes"
    "image"
    "io"

    "github.com/disintegration/imaging"
)

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
    return imaging.Encode(w, img, imaging.PNG)
}

// PNGBytes is EncodePNG into a buffer.
func PNGBytes(img image.Image) ([]byte, error) {
    buf := new(bytes.Buffer)
    if err := EncodePNG(buf, img); err != nil {
        return nil, err
    }
    return buf.Bytes(), nil
}

// Thumbnail scales img down to fit inside a size x size box, keeping the
// aspect ratio. Images already smaller are returned unchanged.
func Thumbnail(img image.Image, size int) image.Image {
    b := img.Bounds()
    if b.Dx() <= size && b.Dy() <= size {
        return img
    }
    return imaging.Fit(img, size, size, imaging.Lanczos)
}
