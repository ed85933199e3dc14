package animation

import (
	"math/rand"

	"github.com/Tashus/beam/pixel"
)

// Rainbow sweeps the 384-step color wheel across the x axis. It ignores the
// configured palette entirely.
type Rainbow struct {
	m    *pixel.Matrix
	step int
}

func NewRainbow(_ *Config, m *pixel.Matrix, _ *rand.Rand) Pattern {
	return &Rainbow{m: m}
}

func (r *Rainbow) Name() string { return "rainbow" }
func (r *Rainbow) Amount() int  { return 1 }

func (r *Rainbow) Step(amount int) {
	for y := 0; y < r.m.Height(); y++ {
		for x := 0; x < r.m.Width(); x++ {
			r.m.Set(x, y, pixel.Wheel((r.step+x)%384))
		}
	}
	r.step += amount
}
