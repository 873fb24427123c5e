package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/yalue/image_utils"

	"github.com/CodexForgeBR/can-exit/internal/session"
)

// DefaultCellPixels is the side of one maze cell in exported images.
const DefaultCellPixels = 16

// ErrNoGrid is returned when a snapshot has no cells to draw.
var ErrNoGrid = errors.New("snapshot has no grid")

// Image rasterises the snapshot with cellPixels pixels per cell side. Start
// and goal carry arrow markers when cells are large enough to hold them.
func Image(snap session.Snapshot, cellPixels int) (*image.RGBA, error) {
	if len(snap.Cells) == 0 {
		return nil, ErrNoGrid
	}
	if cellPixels <= 0 {
		cellPixels = DefaultCellPixels
	}

	base := image.NewRGBA(image.Rect(0, 0, snap.Width*cellPixels, snap.Height*cellPixels))
	for y, row := range snap.Cells {
		for x, c := range row {
			r := image.Rect(x*cellPixels, y*cellPixels, (x+1)*cellPixels, (y+1)*cellPixels)
			draw.Draw(base, r, image.NewUniform(cellColor(c, snap.Status)), image.Point{}, draw.Src)
		}
	}

	pic := image_utils.NewCompositeImage()
	if err := pic.AddImage(base, image.Pt(0, 0)); err != nil {
		return nil, fmt.Errorf("add maze image: %w", err)
	}

	arrow := cellPixels / 2
	if arrow >= 4 {
		inset := (cellPixels - arrow) / 2
		start := image_utils.ResizeImage(image_utils.RightArrow(markerColor), arrow, arrow)
		if err := pic.AddImage(start, image.Pt(inset, inset)); err != nil {
			return nil, fmt.Errorf("add start marker: %w", err)
		}
		goal := image_utils.ResizeImage(image_utils.DownArrow(markerColor), arrow, arrow)
		goalAt := image.Pt((snap.Width-1)*cellPixels+inset, (snap.Height-1)*cellPixels+inset)
		if err := pic.AddImage(goal, goalAt); err != nil {
			return nil, fmt.Errorf("add goal marker: %w", err)
		}
	}

	return image_utils.ToRGBA(pic), nil
}

// WritePNG encodes the snapshot image to w.
func WritePNG(w io.Writer, snap session.Snapshot, cellPixels int) error {
	img, err := Image(snap, cellPixels)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes the snapshot image to path.
func SavePNG(path string, snap session.Snapshot, cellPixels int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image file: %w", err)
	}
	if err := WritePNG(f, snap, cellPixels); err != nil {
		f.Close()
		return fmt.Errorf("encode image: %w", err)
	}
	return f.Close()
}
