package vid

import (
	"image"
	"image/png"
	"os"
)

// SaveAsPNG writes img to path.
func SaveAsPNG(img *image.RGBA, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
