package vid

const (
	numFillColumns = 960 // virtual columns of 2 pixels each

	fillInterval = 16384 // ticks between fill column advances
	logoInterval = 65536 // ticks between logo position updates

	hueStep = 43 // odd, decorrelated from the column count

	logoStep   = 2  // pixels per logo move, each axis
	logoMargin = 16 // bounce margin from the screen edges
)

// screensaver runs the column-wipe color transition with the bouncing logo
// overlay. The wipe sweeps a new hue across the screen two pixels at a time;
// when it completes, the roles swap and a fresh hue is picked.
type screensaver struct {
	timer      uint32
	fillColumn int
	curHue     uint8
	prevHue    uint8

	logoX, logoY   int
	logoVX, logoVY int
	logoTimer      uint32
}

func (s *screensaver) reset() {
	s.timer = 0
	s.fillColumn = 0
	s.curHue = hueStep
	s.prevHue = 0
	s.logoX = (Width - logoWidth) / 2
	s.logoY = (Height - logoHeight) / 2
	s.logoVX = logoStep
	s.logoVY = logoStep
	s.logoTimer = 0
}

func (s *screensaver) step() {
	s.timer++
	if s.timer >= fillInterval {
		s.timer = 0
		s.fillColumn++
		if s.fillColumn >= numFillColumns {
			s.fillColumn = 0
			s.prevHue = s.curHue
			s.curHue += hueStep
		}
	}

	s.logoTimer++
	if s.logoTimer >= logoInterval {
		s.logoTimer = 0
		s.logoX += s.logoVX
		s.logoY += s.logoVY
		if s.logoX <= logoMargin && s.logoVX < 0 {
			s.logoVX = -s.logoVX
		}
		if s.logoX+logoWidth >= Width-logoMargin && s.logoVX > 0 {
			s.logoVX = -s.logoVX
		}
		if s.logoY <= logoMargin && s.logoVY < 0 {
			s.logoVY = -s.logoVY
		}
		if s.logoY+logoHeight >= Height-logoMargin && s.logoVY > 0 {
			s.logoVY = -s.logoVY
		}
	}
}

func (s *screensaver) pixel(x, y int) RGB {
	if lx, ly := x-s.logoX, y-s.logoY; lx >= 0 && lx < logoWidth && ly >= 0 && ly < logoHeight {
		if logoBit(lx, ly) {
			return RGB{0xFF, 0xFF, 0xFF}
		}
	}

	hue := s.prevHue
	if x/2 < s.fillColumn {
		hue = s.curHue
	}
	return darken(hueRGB(hue))
}

// hueRGB converts an 8-bit hue to fully saturated RGB with the usual
// 6-region piecewise linear mapping.
func hueRGB(h uint8) RGB {
	region := h / 43
	rem := uint16(h-region*43) * 6 // 0..255 within the region

	t := uint8(rem)
	q := uint8(255 - rem)

	switch region {
	case 0:
		return RGB{255, t, 0}
	case 1:
		return RGB{q, 255, 0}
	case 2:
		return RGB{0, 255, t}
	case 3:
		return RGB{0, q, 255}
	case 4:
		return RGB{t, 0, 255}
	}
	return RGB{255, 0, q}
}

// darken scales a color down for contrast against the white logo.
func darken(c RGB) RGB {
	return RGB{
		uint8(uint16(c.R) * 200 >> 8),
		uint8(uint16(c.G) * 200 >> 8),
		uint8(uint16(c.B) * 200 >> 8),
	}
}

// logoBits holds one packed row per scanline, logoWidth/8 bytes each,
// expanded at startup from the quarter-resolution art in logo_art.go.
//
//go:generate go run ../tools/genlogo -in logo.png -out logo_art.go
var logoBits [logoHeight][logoWidth / 8]uint8

func init() {
	for y := 0; y < logoHeight; y++ {
		row := logoArt[y/logoScale]
		for x := 0; x < logoWidth; x++ {
			if row[x/logoScale] == '#' {
				logoBits[y][x/8] |= 0x80 >> (x % 8)
			}
		}
	}
}

func logoBit(x, y int) bool {
	return logoBits[y][x/8]&(0x80>>(x%8)) != 0
}
