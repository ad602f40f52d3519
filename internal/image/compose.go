package imagepkg

import (
    "image"
    "image/color"

    "github.com/disintegration/imaging"
)

const sheetGap = 8

// ComposeGrid lays images out left to right, top to bottom, cols per row,
// each one centered in a cell x cell square. Used for the history contact
// sheet, so the order of images is the display order.
func ComposeGrid(images []image.Image, cols, cell int) image.Image {
    if cols < 1 {
        cols = 1
    }
    if len(images) == 0 {
        return imaging.New(cell, cell, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})
    }
    if len(images) < cols {
        cols = len(images)
    }
    rows := (len(images) + cols - 1) / cols
    w := cols*cell + (cols+1)*sheetGap
    h := rows*cell + (rows+1)*sheetGap
    canvas := imaging.New(w, h, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

    for i, img := range images {
        t := imaging.Fit(img, cell, cell, imaging.Lanczos)
        col := i % cols
        row := i / cols
        x := sheetGap + col*(cell+sheetGap) + (cell-t.Bounds().Dx())/2
        y := sheetGap + row*(cell+sheetGap) + (cell-t.Bounds().Dy())/2
        canvas = imaging.Paste(canvas, t, image.Pt(x, y))
    }
    return canvas
}
