package animation

import (
	"math/rand"

	"github.com/Tashus/beam/pixel"
)

type drop struct {
	pos   int
	color pixel.RGB
}

// MatrixRain rains palette-colored drops across the matrix, one drop list
// per row. Drops advance one cell per frame, fade over a fixed-length tail,
// and are dropped once the tail end has left the surface. The step counter
// carries no meaning here; all progress lives in the drop lists.
type MatrixRain struct {
	cfg    *Config
	m      *pixel.Matrix
	rnd    *rand.Rand
	tail   int
	growth int
	drops  [][]drop
	step   int
}

func NewMatrixRain(cfg *Config, m *pixel.Matrix, rnd *rand.Rand) Pattern {
	return &MatrixRain{
		cfg:    cfg,
		m:      m,
		rnd:    rnd,
		tail:   4,
		growth: 4,
		drops:  make([][]drop, m.Height()),
	}
}

func (r *MatrixRain) Name() string { return "rain" }
func (r *MatrixRain) Amount() int  { return 1 }

// drawDrop draws d's head at its position and a tail fading linearly to
// near-zero behind it. Cells off the surface are skipped.
func (r *MatrixRain) drawDrop(y int, d drop) {
	for i := 0; i < r.tail; i++ {
		if d.pos-i >= 0 && d.pos-i < r.m.Width() {
			level := 255 - (255/r.tail)*i
			r.m.Set(d.pos-i, y, pixel.Scale(d.color, level))
		}
	}
}

func (r *MatrixRain) Step(amount int) {
	r.m.Clear()

	palette := r.cfg.Palette()
	for i := 0; i < r.growth; i++ {
		y := r.rnd.Intn(r.m.Height())
		c := palette[r.rnd.Intn(len(palette))]
		r.drops[y] = append(r.drops[y], drop{0, c})
	}

	for y := range r.drops {
		kept := r.drops[y][:0]
		for _, d := range r.drops[y] {
			r.drawDrop(y, d)
			d.pos++
			if d.pos-(r.tail-1) < r.m.Width() {
				kept = append(kept, d)
			}
		}
		r.drops[y] = kept
	}

	r.step = 0
}
