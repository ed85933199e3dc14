package animation

import (
	"math/rand"

	"github.com/Tashus/beam/pixel"
)

// Light paints the palette along the strip without animating it. With one
// color the whole matrix is a lamp; with several, they alternate down the
// strip. The palette is re-read every frame, so a swap lands within one
// frame period.
type Light struct {
	cfg  *Config
	m    *pixel.Matrix
	step int
}

func NewLight(cfg *Config, m *pixel.Matrix, _ *rand.Rand) Pattern {
	return &Light{cfg: cfg, m: m}
}

func (l *Light) Name() string { return "light" }
func (l *Light) Amount() int  { return 1 }

func (l *Light) Step(amount int) {
	palette := l.cfg.Palette()
	w := l.m.Width()
	for y := 0; y < l.m.Height(); y++ {
		for x := 0; x < w; x++ {
			l.m.Set(x, y, palette[(y*w+x)%len(palette)])
		}
	}
	l.step += amount
}
