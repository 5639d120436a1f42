package render

import "image/color"

// Palette is the pair of colours used for live and dead cells.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
}

// DefaultPalette draws live cells white on black.
var DefaultPalette = Palette{
	Alive: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Dead:  color.RGBA{A: 0xff},
}

// fillRGBA writes one RGBA pixel per cell into buf, which must hold
// 4*len(cells) bytes.
func fillRGBA(buf []byte, cells []uint8, p Palette) {
	for i, c := range cells {
		col := p.Dead
		if c != 0 {
			col = p.Alive
		}
		px := buf[i*4 : i*4+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}
