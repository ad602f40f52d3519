package imagepkg

import (
    "bytes"
    "fmt"
    "image"

    "github.com/disintegration/imaging"
)

// Decode parses raw response bytes into an image. The format is sniffed
// from the content; EXIF orientation is applied for JPEGs.
func Decode(b []byte) (image.Image, error) {
    if len(b) == 0 {
        return nil, fmt.Errorf("empty image payload")
    }
    img, err := imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
    if err != nil {
        return nil, err
    }
    return img, nil
}
