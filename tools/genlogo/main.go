// Command genlogo converts an image file into the 1-bit quarter-resolution
// logo art embedded in the vid package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"image"
	_ "image/png"
	"log"
	"os"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

func main() {
	log.SetFlags(0)

	inf := flag.String("in", "", "input image (png or webp)")
	outf := flag.String("out", "logo_art.go", "output file")
	pkg := flag.String("pkg", "vid", "package name of the generated file")
	w := flag.Int("w", 24, "art width, in cells")
	h := flag.Int("h", 10, "art height, in cells")
	scale := flag.Int("scale", 4, "upscale factor applied at startup")
	threshold := flag.Int("threshold", 128, "luminance above which a cell is lit")
	flag.Parse()

	if *inf == "" {
		flag.Usage()
		os.Exit(2)
	}

	fd, err := os.Open(*inf)
	if err != nil {
		log.Fatalf("can't open %s: %s", *inf, err)
	}
	src, _, err := image.Decode(fd)
	fd.Close()
	if err != nil {
		log.Fatalf("can't decode %s: %s", *inf, err)
	}

	art := rasterize(src, *w, *h, uint32(*threshold))

	bb := &bytes.Buffer{}
	emit(bb, *pkg, *w, *h, *scale, art)

	buf, err := format.Source(bb.Bytes())
	if err != nil {
		if err := os.WriteFile(*outf, bb.Bytes(), 0644); err != nil {
			log.Fatalf("can't write to %s: %s", *outf, err)
		}
		log.Fatalf("'gofmt' failed\n%s", err)
	}

	if err := os.WriteFile(*outf, buf, 0644); err != nil {
		log.Fatalf("can't write to %s: %s", *outf, err)
	}
}

// rasterize scales the image down to a w by h cell grid and thresholds each
// cell on luminance.
func rasterize(src image.Image, w, h int, threshold uint32) []string {
	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), src, src.Bounds(), draw.Src, nil)

	rows := make([]string, h)
	for y := 0; y < h; y++ {
		row := make([]byte, w)
		for x := 0; x < w; x++ {
			r, g, b, a := small.At(x, y).RGBA()
			// Rec. 601 luma, on 8-bit channels.
			lum := (299*(r>>8) + 587*(g>>8) + 114*(b>>8)) / 1000
			if a>>8 >= 128 && lum >= threshold {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}
	return rows
}

func emit(bb *bytes.Buffer, pkg string, w, h, scale int, art []string) {
	fmt.Fprintf(bb, "// Code generated by tools/genlogo. DO NOT EDIT.\n")
	fmt.Fprintf(bb, "package %s\n\n", pkg)

	fmt.Fprintf(bb, "const (\n")
	fmt.Fprintf(bb, "\tlogoScale  = %d\n", scale)
	fmt.Fprintf(bb, "\tlogoWidth  = %d * logoScale\n", w)
	fmt.Fprintf(bb, "\tlogoHeight = %d * logoScale\n", h)
	fmt.Fprintf(bb, ")\n\n")

	fmt.Fprintf(bb, "var logoArt = [%d]string{\n", h)
	for _, row := range art {
		fmt.Fprintf(bb, "\t%q,\n", row)
	}
	fmt.Fprintf(bb, "}\n")
}
