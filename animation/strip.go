package animation

import (
	"math/rand"

	"github.com/Tashus/beam/pixel"
)

// Strip scrolls the palette down the strip, one position per frame.
type Strip struct {
	cfg  *Config
	m    *pixel.Matrix
	step int
}

func NewStrip(cfg *Config, m *pixel.Matrix, _ *rand.Rand) Pattern {
	return &Strip{cfg: cfg, m: m}
}

func (s *Strip) Name() string { return "strip" }
func (s *Strip) Amount() int  { return 1 }

func (s *Strip) Step(amount int) {
	palette := s.cfg.Palette()
	w := s.m.Width()
	for y := 0; y < s.m.Height(); y++ {
		for x := 0; x < w; x++ {
			s.m.Set(x, y, palette[((y*w+x)+s.step)%len(palette)])
		}
	}
	s.step += amount
}
